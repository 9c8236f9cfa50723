package dataforseo

import (
	"context"
	"log/slog"

	"keyword-planner/internal/core/domain"
)

// KeywordsForSite returns the keywords associated with a website. Keywords
// below minVolume are filtered out.
func (c *Client) KeywordsForSite(ctx context.Context, site string, location string, minVolume int) ([]domain.Keyword, error) {
	task := liveTask{
		LocationName: location,
		LanguageName: c.language,
		Target:       site,
	}
	keywords, err := c.fetch(ctx, keywordsForSitePath, c.siteAuth, task, minVolume)
	if err != nil {
		c.logger.Error("keywords for site failed", slog.String("site", site), slog.Any("error", err))
		return nil, err
	}
	c.logger.Debug("keywords for site", slog.String("site", site), slog.Int("keywords", len(keywords)))
	return keywords, nil
}
