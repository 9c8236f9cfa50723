package dataforseo

import (
	"context"
	"log/slog"

	"keyword-planner/internal/core/domain"
)

// KeywordsForKeywords expands seeds into related keywords with one batched
// request. Keywords below minVolume are filtered out.
func (c *Client) KeywordsForKeywords(ctx context.Context, seeds []string, location string, minVolume int) ([]domain.Keyword, error) {
	task := liveTask{
		LocationName: location,
		LanguageName: c.language,
		Keywords:     seeds,
	}
	keywords, err := c.fetch(ctx, keywordsForKeywordsPath, c.seedAuth, task, minVolume)
	if err != nil {
		c.logger.Error("keywords for keywords failed", slog.Any("seeds", seeds), slog.Any("error", err))
		return nil, err
	}
	c.logger.Debug("keywords for keywords", slog.Int("seeds", len(seeds)), slog.Int("keywords", len(keywords)))
	return keywords, nil
}
