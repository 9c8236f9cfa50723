package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"keyword-planner/internal/core/domain"
	"keyword-planner/internal/core/port"
	"keyword-planner/internal/metrics"
)

// ResearchService implements port.ResearchUseCase on top of the aggregator
// and the planner.
type ResearchService struct {
	aggregator *Aggregator
	planner    *Planner
	runs       port.RunRepository
	logger     *slog.Logger
}

// NewResearchService wires the pipeline. runs may be nil, in which case
// results are not persisted and GetRun always reports ErrRunNotFound.
func NewResearchService(aggregator *Aggregator, planner *Planner, runs port.RunRepository, logger *slog.Logger) *ResearchService {
	return &ResearchService{aggregator: aggregator, planner: planner, runs: runs, logger: logger}
}

func (s *ResearchService) ExtractAndRank(ctx context.Context, req domain.ResearchRequest) domain.Deliverable {
	keywords := s.aggregator.ExtractAll(ctx, req)
	return s.planner.CreateAdGroups(ctx, keywords, req.SearchAdsBudget)
}

func (s *ResearchService) Research(ctx context.Context, req domain.ResearchRequest) (*port.ResearchResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", port.ErrInvalidRequest, err)
	}

	start := time.Now()
	keywords := s.aggregator.ExtractAll(ctx, req)
	extraction := time.Since(start).Seconds()

	deliverable := s.planner.CreateAdGroups(ctx, keywords, req.SearchAdsBudget)
	metrics.ObserveResearch(time.Since(start))

	resp := &port.ResearchResponse{
		TotalKeywords:  len(keywords),
		ProcessingTime: extraction,
		Deliverable:    &deliverable,
	}

	if s.runs != nil {
		run := domain.ResearchRun{
			ID:                uuid.New(),
			BrandWebsite:      req.BrandWebsite,
			CompetitorWebsite: req.CompetitorWebsite,
			Location:          req.Location,
			TotalKeywords:     len(keywords),
			ProcessingTime:    extraction,
			Deliverable:       deliverable,
			CreatedAt:         time.Now().UTC(),
		}
		if err := s.runs.SaveRun(ctx, run); err != nil {
			s.logger.Error("failed to save research run", slog.String("run_id", run.ID.String()), slog.Any("error", err))
		} else {
			resp.RunID = &run.ID
		}
	}

	s.logger.Info("research finished",
		slog.Int("total_keywords", len(keywords)),
		slog.Int("ad_groups", len(deliverable.AdGroups)),
		slog.Bool("fallback", deliverable.IsFallback()))
	return resp, nil
}

func (s *ResearchService) GetRun(ctx context.Context, id uuid.UUID) (*domain.ResearchRun, error) {
	if s.runs == nil {
		return nil, port.ErrRunNotFound
	}
	return s.runs.GetRun(ctx, id)
}
