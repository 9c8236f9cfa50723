package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"keyword-planner/internal/core/domain"
	"keyword-planner/internal/core/port"
	"keyword-planner/internal/metrics"
)

// Planner turns a keyword set into budgeted ad groups with the help of a
// language model.
type Planner struct {
	completer port.Completer
	topN      int
	logger    *slog.Logger
}

// NewPlanner creates a planner that sends the topN best keywords to the
// completer. A non-positive topN means DefaultTopN.
func NewPlanner(completer port.Completer, topN int, logger *slog.Logger) *Planner {
	if topN <= 0 {
		topN = DefaultTopN
	}
	return &Planner{completer: completer, topN: topN, logger: logger}
}

// CreateAdGroups ranks keywords, asks the model for ad groups and parses
// the answer. It never fails: a failing or panicking completer yields the
// fallback deliverable with zero processing time, an unparseable answer
// yields the fallback deliverable with the elapsed time set.
func (p *Planner) CreateAdGroups(ctx context.Context, keywords []domain.Keyword, budget float64) (out domain.Deliverable) {
	start := time.Now()
	p.logger.Info("planning ad groups", slog.Int("keywords", len(keywords)))

	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("ad group planning panicked", slog.Any("error", fmt.Errorf("%v", r)))
			metrics.RecordParse(metrics.OutcomeFallback)
			out = domain.FallbackDeliverable(budget, len(keywords))
		}
	}()

	top := p.prioritize(keywords)
	prompt, err := BuildPrompt(top, budget)
	if err != nil {
		p.logger.Error("prompt build failed", slog.Any("error", err))
		metrics.RecordParse(metrics.OutcomeFallback)
		return domain.FallbackDeliverable(budget, len(keywords))
	}

	raw, err := p.completer.Complete(ctx, prompt)
	if err != nil {
		p.logger.Error("completion failed", slog.Any("error", err))
		metrics.RecordParse(metrics.OutcomeFallback)
		return domain.FallbackDeliverable(budget, len(keywords))
	}

	out, err = ParseCompletion(raw, budget, len(keywords))
	if err != nil {
		p.logger.Error("completion parse failed, using fallback", slog.Any("error", err))
		metrics.RecordParse(metrics.OutcomeFallback)
	} else {
		p.logger.Info("ad groups created", slog.Int("groups", len(out.AdGroups)))
		metrics.RecordParse(metrics.OutcomeSuccess)
	}
	out.ProcessingTime = time.Since(start).Seconds()
	return out
}

func (p *Planner) prioritize(keywords []domain.Keyword) []domain.Keyword {
	ranked, err := rankTop(keywords, p.topN)
	if err != nil {
		p.logger.Warn("priority selection failed, using input order", slog.Any("error", err))
	} else {
		for i, r := range ranked[:min(3, len(ranked))] {
			p.logger.Debug("top keyword",
				slog.Int("rank", i+1),
				slog.String("keyword", r.Keyword.Keyword),
				slog.Float64("score", r.Score))
		}
	}

	top := make([]domain.Keyword, len(ranked))
	for i, r := range ranked {
		top[i] = r.Keyword
	}
	return top
}
