package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"keyword-planner/internal/core/domain"
	"keyword-planner/internal/core/port"
)

// querier is the subset of *pgxpool.Pool used by the repository.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// RunRepository implements port.RunRepository on PostgreSQL. The
// deliverable is stored as JSONB.
type RunRepository struct {
	pool querier
}

// NewRunRepository returns a new repository instance. pool is normally a
// *pgxpool.Pool.
func NewRunRepository(pool querier) *RunRepository {
	return &RunRepository{pool: pool}
}

const insertRun = `
INSERT INTO research_runs (id, brand_website, competitor_website, location, total_keywords, processing_time, deliverable, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

const selectRun = `
SELECT id, brand_website, competitor_website, location, total_keywords, processing_time, deliverable, created_at
FROM research_runs
WHERE id = $1`

// SaveRun stores a finished run.
func (r *RunRepository) SaveRun(ctx context.Context, run domain.ResearchRun) error {
	deliverable, err := json.Marshal(run.Deliverable)
	if err != nil {
		return fmt.Errorf("encode deliverable: %w", err)
	}
	_, err = r.pool.Exec(ctx, insertRun,
		run.ID,
		run.BrandWebsite,
		run.CompetitorWebsite,
		run.Location,
		run.TotalKeywords,
		run.ProcessingTime,
		deliverable,
		run.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert research run: %w", err)
	}
	return nil
}

// GetRun returns the run with the given id or port.ErrRunNotFound.
func (r *RunRepository) GetRun(ctx context.Context, id uuid.UUID) (*domain.ResearchRun, error) {
	var (
		run         domain.ResearchRun
		deliverable []byte
	)
	err := r.pool.QueryRow(ctx, selectRun, id).Scan(
		&run.ID,
		&run.BrandWebsite,
		&run.CompetitorWebsite,
		&run.Location,
		&run.TotalKeywords,
		&run.ProcessingTime,
		&deliverable,
		&run.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrRunNotFound
	}
	if err != nil {
		return nil, err
	}
	if err = json.Unmarshal(deliverable, &run.Deliverable); err != nil {
		return nil, fmt.Errorf("decode deliverable: %w", err)
	}
	return &run, nil
}
