package port

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"keyword-planner/internal/core/domain"
)

var ErrRunNotFound = errors.New("research run not found")

// RunRepository persists finished research runs.
type RunRepository interface {
	// SaveRun stores a run. The run ID must already be set.
	SaveRun(ctx context.Context, run domain.ResearchRun) error
	// GetRun returns the run with the given ID or ErrRunNotFound.
	GetRun(ctx context.Context, id uuid.UUID) (*domain.ResearchRun, error)
}
