package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"keyword-planner/internal/core/domain"
	"keyword-planner/internal/core/port"
	"keyword-planner/internal/metrics"
)

// Source labels used in logs and metrics.
const (
	SourceSeedKeywords   = "seed_keywords"
	SourceBrandSite      = "brand_site"
	SourceCompetitorSite = "competitor_site"
)

type fetchTask struct {
	source string
	run    func(ctx context.Context) ([]domain.Keyword, error)
}

// fetchOutcome is the settled result of one task: keywords on success or
// the reason it failed.
type fetchOutcome struct {
	source   string
	keywords []domain.Keyword
	err      error
}

// Aggregator fans a research request out to the keyword sources and merges
// what comes back.
type Aggregator struct {
	seeds  port.SeedKeywordSource
	sites  port.SiteKeywordSource
	logger *slog.Logger
}

func NewAggregator(seeds port.SeedKeywordSource, sites port.SiteKeywordSource, logger *slog.Logger) *Aggregator {
	return &Aggregator{seeds: seeds, sites: sites, logger: logger}
}

// ExtractAll runs every applicable source concurrently and waits for all of
// them. A failing source contributes no keywords; it never fails the call.
// Results are merged in submission order (seeds, brand site, competitor
// site) and deduplicated with first-seen-wins.
func (a *Aggregator) ExtractAll(ctx context.Context, req domain.ResearchRequest) []domain.Keyword {
	tasks := a.tasks(req)
	a.logger.Info("starting keyword sources", slog.Int("tasks", len(tasks)))

	outcomes := make([]fetchOutcome, len(tasks))
	var g errgroup.Group
	for i, task := range tasks {
		i, task := i, task
		g.Go(func() error {
			outcomes[i] = runTask(ctx, task)
			return nil
		})
	}
	_ = g.Wait()

	var all []domain.Keyword
	for i, o := range outcomes {
		metrics.RecordFetch(o.source, len(o.keywords), o.err)
		if o.err != nil {
			a.logger.Warn("keyword source failed",
				slog.Int("task", i+1),
				slog.String("source", o.source),
				slog.Any("error", o.err))
			continue
		}
		a.logger.Info("keyword source returned",
			slog.Int("task", i+1),
			slog.String("source", o.source),
			slog.Int("keywords", len(o.keywords)))
		all = append(all, o.keywords...)
	}

	unique := Dedupe(all)
	a.logger.Info("keyword extraction finished", slog.Int("unique_keywords", len(unique)))
	return unique
}

func (a *Aggregator) tasks(req domain.ResearchRequest) []fetchTask {
	location, minVolume := req.Location, req.MinSearchVolume

	var tasks []fetchTask
	if seeds := req.Seeds(); len(seeds) > 0 && a.seeds != nil {
		tasks = append(tasks, fetchTask{
			source: SourceSeedKeywords,
			run: func(ctx context.Context) ([]domain.Keyword, error) {
				return a.seeds.KeywordsForKeywords(ctx, seeds, location, minVolume)
			},
		})
	}
	tasks = append(tasks,
		fetchTask{
			source: SourceBrandSite,
			run: func(ctx context.Context) ([]domain.Keyword, error) {
				return a.sites.KeywordsForSite(ctx, req.BrandWebsite, location, minVolume)
			},
		},
		fetchTask{
			source: SourceCompetitorSite,
			run: func(ctx context.Context) ([]domain.Keyword, error) {
				return a.sites.KeywordsForSite(ctx, req.CompetitorWebsite, location, minVolume)
			},
		},
	)
	return tasks
}

func runTask(ctx context.Context, task fetchTask) (out fetchOutcome) {
	out.source = task.source
	defer func() {
		if r := recover(); r != nil {
			out.keywords = nil
			out.err = fmt.Errorf("%s: panic: %v", task.source, r)
		}
	}()

	out.keywords, out.err = task.run(ctx)
	if out.err != nil {
		out.keywords = nil
	}
	return out
}

// Dedupe drops keywords whose lowercased text was already seen. The first
// occurrence is kept whole; later duplicates are discarded even when their
// numbers differ.
func Dedupe(keywords []domain.Keyword) []domain.Keyword {
	seen := make(map[string]struct{}, len(keywords))
	unique := make([]domain.Keyword, 0, len(keywords))
	for _, kw := range keywords {
		key := kw.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, kw)
	}
	return unique
}
