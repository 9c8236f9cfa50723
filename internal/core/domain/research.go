package domain

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ResearchRequest describes one keyword research job: the sites to mine,
// optional seed terms and the budgets. Only SearchAdsBudget is consumed by
// the planner; the other budgets are accepted and passed through.
type ResearchRequest struct {
	SeedKeywords      []string `json:"seed_keywords" yaml:"seed_keywords"`
	BrandWebsite      string   `json:"brand_website" yaml:"brand_website"`
	CompetitorWebsite string   `json:"competitor_website" yaml:"competitor_website"`
	Location          string   `json:"location" yaml:"location"`
	ShoppingAdsBudget float64  `json:"shopping_ads_budget" yaml:"shopping_ads_budget"`
	SearchAdsBudget   float64  `json:"search_ads_budget" yaml:"search_ads_budget"`
	PmaxAdsBudget     float64  `json:"pmax_ads_budget" yaml:"pmax_ads_budget"`
	MinSearchVolume   int      `json:"min_search_volume" yaml:"min_search_volume"`
}

// Validate checks the request fields that the pipeline relies on.
func (r ResearchRequest) Validate() error {
	var errs []error
	if err := validateWebsite("brand_website", r.BrandWebsite); err != nil {
		errs = append(errs, err)
	}
	if err := validateWebsite("competitor_website", r.CompetitorWebsite); err != nil {
		errs = append(errs, err)
	}
	if strings.TrimSpace(r.Location) == "" {
		errs = append(errs, errors.New("location is required"))
	}
	if r.MinSearchVolume < 0 {
		errs = append(errs, errors.New("min_search_volume must not be negative"))
	}
	if r.ShoppingAdsBudget < 0 || r.SearchAdsBudget < 0 || r.PmaxAdsBudget < 0 {
		errs = append(errs, errors.New("budgets must not be negative"))
	}
	return errors.Join(errs...)
}

// Seeds returns the non-blank seed keywords.
func (r ResearchRequest) Seeds() []string {
	seeds := make([]string, 0, len(r.SeedKeywords))
	for _, s := range r.SeedKeywords {
		if s = strings.TrimSpace(s); s != "" {
			seeds = append(seeds, s)
		}
	}
	return seeds
}

func validateWebsite(field, raw string) error {
	u, err := url.ParseRequestURI(strings.TrimSpace(raw))
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%s must be an absolute http(s) URL", field)
	}
	return nil
}

// ResearchRun is a finished research request as stored by the run
// repository.
type ResearchRun struct {
	ID                uuid.UUID
	BrandWebsite      string
	CompetitorWebsite string
	Location          string
	TotalKeywords     int
	ProcessingTime    float64
	Deliverable       Deliverable
	CreatedAt         time.Time
}
