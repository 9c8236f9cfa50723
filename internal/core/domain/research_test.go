package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() ResearchRequest {
	return ResearchRequest{
		BrandWebsite:      "https://brand.example",
		CompetitorWebsite: "http://rival.example/shop",
		Location:          "United States",
		SearchAdsBudget:   1000,
	}
}

func TestValidateAcceptsRequest(t *testing.T) {
	assert.NoError(t, validRequest().Validate())
}

func TestValidateCollectsErrors(t *testing.T) {
	req := validRequest()
	req.BrandWebsite = "brand.example"
	req.CompetitorWebsite = "ftp://rival.example"
	req.Location = "  "
	req.MinSearchVolume = -1
	req.PmaxAdsBudget = -5

	err := req.Validate()

	require.Error(t, err)
	for _, want := range []string{"brand_website", "competitor_website", "location", "min_search_volume", "budgets"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestSeedsDropsBlanks(t *testing.T) {
	req := ResearchRequest{SeedKeywords: []string{" shoes ", "", "  ", "boots"}}

	assert.Equal(t, []string{"shoes", "boots"}, req.Seeds())
	assert.Empty(t, ResearchRequest{}.Seeds())
}

func TestParseCompetition(t *testing.T) {
	cases := map[string]Competition{
		"LOW":         CompetitionLow,
		"low":         CompetitionLow,
		"High":        CompetitionHigh,
		"MEDIUM":      CompetitionMedium,
		"":            CompetitionMedium,
		"unspecified": CompetitionMedium,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseCompetition(in), in)
	}
}

func TestKeywordKeyIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, Keyword{Keyword: "Trail Shoes"}.Key(), Keyword{Keyword: "trail shoes"}.Key())
}

func TestFallbackDeliverable(t *testing.T) {
	d := FallbackDeliverable(500, 10)

	require.Len(t, d.AdGroups, 1)
	g := d.AdGroups[0]
	assert.Equal(t, "Parsing Failed", g.Name)
	assert.Equal(t, GroupError, g.Type)
	assert.Equal(t, 500.0, g.BudgetAllocation)
	assert.Equal(t, 100.0, g.BudgetPercentage)
	assert.Zero(t, g.TotalKeywords)
	assert.NotNil(t, g.Keywords)
	assert.Equal(t, 500.0, d.TotalBudget)
	assert.Equal(t, 10, d.TotalKeywordsUsed)
	assert.Equal(t, map[string]float64{"error": 100}, d.BudgetSummary)
	assert.True(t, d.IsFallback())
	assert.False(t, Deliverable{}.IsFallback())
}
