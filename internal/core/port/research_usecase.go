package port

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"keyword-planner/internal/core/domain"
)

var ErrInvalidRequest = errors.New("invalid research request")

// ResearchUseCase defines the operations exposed by the keyword planner.
// This interface is the primary port into the application domain.
type ResearchUseCase interface {
	// ExtractAndRank gathers keywords from every applicable source and asks
	// the model to organise them into ad groups. It always returns a
	// well-formed deliverable; source and model failures degrade the result
	// instead of failing the call.
	ExtractAndRank(ctx context.Context, req domain.ResearchRequest) domain.Deliverable

	// Research validates the request, runs the pipeline and persists the run
	// when a repository is configured. The only error returned wraps
	// ErrInvalidRequest.
	Research(ctx context.Context, req domain.ResearchRequest) (*ResearchResponse, error)

	// GetRun returns a previously persisted run.
	GetRun(ctx context.Context, id uuid.UUID) (*domain.ResearchRun, error)
}

// ResearchResponse is returned to HTTP clients. ProcessingTime covers the
// keyword extraction stage only; the deliverable carries its own timing.
type ResearchResponse struct {
	RunID          *uuid.UUID          `json:"run_id,omitempty"`
	TotalKeywords  int                 `json:"total_keywords"`
	ProcessingTime float64             `json:"processing_time"`
	Deliverable    *domain.Deliverable `json:"deliverable"`
}
