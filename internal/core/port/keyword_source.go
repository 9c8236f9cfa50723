package port

import (
	"context"

	"keyword-planner/internal/core/domain"
)

// SeedKeywordSource expands seed terms into related keywords. Items below
// minVolume are never returned. A non-nil error means the whole fetch
// failed and no keywords were produced.
type SeedKeywordSource interface {
	KeywordsForKeywords(ctx context.Context, seeds []string, location string, minVolume int) ([]domain.Keyword, error)
}

// SiteKeywordSource discovers keywords associated with a website. It has
// the same filtering and failure semantics as SeedKeywordSource.
type SiteKeywordSource interface {
	KeywordsForSite(ctx context.Context, site string, location string, minVolume int) ([]domain.Keyword, error)
}
