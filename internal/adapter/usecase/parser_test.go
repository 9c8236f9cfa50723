package usecase

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keyword-planner/internal/core/domain"
)

func TestParseCompletionRoundTrip(t *testing.T) {
	want := domain.Deliverable{
		AdGroups: []domain.AdGroup{
			{
				Name: "Brand Terms",
				Type: domain.GroupBrand,
				Keywords: []domain.AdKeyword{{
					Keyword:             "acme shoes",
					SearchVolume:        1200,
					Competition:         "low",
					CPCLow:              0.5,
					CPCHigh:             1.25,
					SuggestedMatchTypes: []string{"exact", "phrase"},
				}},
				BudgetAllocation: 600,
				BudgetPercentage: 60,
				TotalKeywords:    1,
				AvgCPCRange:      "$0.50 - $1.25",
			},
			{
				Name:             "Competitor Terms",
				Type:             domain.GroupCompetitor,
				Keywords:         []domain.AdKeyword{},
				BudgetAllocation: 400,
				BudgetPercentage: 40,
				TotalKeywords:    0,
				AvgCPCRange:      "$0.00 - $0.00",
			},
		},
		TotalBudget:       1000,
		TotalKeywordsUsed: 12,
		BudgetSummary:     map[string]float64{"brand": 60, "competitor": 40},
	}
	raw, err := json.Marshal(want)
	require.NoError(t, err)

	got, err := ParseCompletion(string(raw), 1000, 12)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestParseCompletionNotJSON(t *testing.T) {
	got, err := ParseCompletion("not json at all", 500.0, 10)

	require.ErrorIs(t, err, errNoJSONObject)
	require.Len(t, got.AdGroups, 1)
	g := got.AdGroups[0]
	assert.Equal(t, domain.FallbackGroupName, g.Name)
	assert.Equal(t, domain.GroupError, g.Type)
	assert.Equal(t, 500.0, g.BudgetAllocation)
	assert.Equal(t, 100.0, g.BudgetPercentage)
	assert.Empty(t, g.Keywords)
	assert.Equal(t, map[string]float64{"error": 100}, got.BudgetSummary)
	assert.Equal(t, 10, got.TotalKeywordsUsed)
	assert.True(t, got.IsFallback())
}

func TestParseCompletionWithSurroundingProse(t *testing.T) {
	got, err := ParseCompletion(`Here is the result: {"ad_groups": []} Thanks!`, 200.0, 5)

	require.NoError(t, err)
	assert.Empty(t, got.AdGroups)
	assert.NotNil(t, got.AdGroups)
	assert.Equal(t, 200.0, got.TotalBudget)
	assert.Equal(t, 5, got.TotalKeywordsUsed)
	assert.Equal(t, defaultBudgetSummary(), got.BudgetSummary)
}

func TestParseCompletionInvalidSpan(t *testing.T) {
	cases := map[string]string{
		"reversed braces":  "} nothing here {",
		"broken object":    "{ad_groups: [}",
		"two objects":      `{"a": 1} and {"b": 2}`,
		"empty completion": "",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := ParseCompletion(raw, 300, 3)

			assert.Error(t, err)
			assert.Equal(t, domain.FallbackDeliverable(300, 3), got)
		})
	}
}

func TestParseCompletionFillsDefaults(t *testing.T) {
	raw := "```json\n" + `{"ad_groups": [
		{"keywords": [{"keyword": "boots"}, 5, "junk", {"search_volume": 30, "suggested_match_types": ["exact", 1]}]},
		"not a group",
		{"group_name": 7, "group_type": "location", "budget_allocation": "lots", "total_keywords": 9}
	]}` + "\n```"

	got, err := ParseCompletion(raw, 800, 40)
	require.NoError(t, err)
	require.Len(t, got.AdGroups, 2)

	first := got.AdGroups[0]
	assert.Equal(t, "Unknown Group", first.Name)
	assert.Equal(t, domain.GroupCategory, first.Type)
	assert.Equal(t, 0.0, first.BudgetAllocation)
	assert.Equal(t, 0.0, first.BudgetPercentage)
	assert.Equal(t, "$0.00 - $0.00", first.AvgCPCRange)
	assert.Equal(t, 2, first.TotalKeywords)
	require.Len(t, first.Keywords, 2)
	assert.Equal(t, domain.AdKeyword{
		Keyword:             "boots",
		Competition:         "medium",
		SuggestedMatchTypes: []string{"broad"},
	}, first.Keywords[0])
	assert.Equal(t, 30, first.Keywords[1].SearchVolume)
	assert.Equal(t, []string{"exact"}, first.Keywords[1].SuggestedMatchTypes)

	second := got.AdGroups[1]
	assert.Equal(t, "Unknown Group", second.Name)
	assert.Equal(t, domain.GroupLocation, second.Type)
	assert.Equal(t, 0.0, second.BudgetAllocation)
	assert.Equal(t, 9, second.TotalKeywords)
	assert.Empty(t, second.Keywords)

	assert.Equal(t, 800.0, got.TotalBudget)
	assert.Equal(t, 40, got.TotalKeywordsUsed)
}

// TestParseCompletionTrustsModelArithmetic checks that inconsistent totals
// are passed through untouched.
func TestParseCompletionTrustsModelArithmetic(t *testing.T) {
	raw := `{"ad_groups": [{"group_name": "Brand", "budget_allocation": 900, "budget_percentage": 150, "total_keywords": 3, "keywords": []}],
		"total_budget": 50, "budget_summary": {"brand": 150, "bogus": "x"}}`

	got, err := ParseCompletion(raw, 100, 7)

	require.NoError(t, err)
	assert.Equal(t, 900.0, got.AdGroups[0].BudgetAllocation)
	assert.Equal(t, 150.0, got.AdGroups[0].BudgetPercentage)
	assert.Equal(t, 3, got.AdGroups[0].TotalKeywords)
	assert.Equal(t, 50.0, got.TotalBudget)
	assert.Equal(t, map[string]float64{"brand": 150}, got.BudgetSummary)
}

func TestParseCompletionAdGroupsNotArray(t *testing.T) {
	cases := map[string]string{
		"string": `{"ad_groups": "oops"}`,
		"object": `{"ad_groups": {"group_name": "Brand"}}`,
		"null":   `{"ad_groups": null}`,
		"number": `{"ad_groups": 3, "total_budget": 10}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := ParseCompletion(raw, 600, 8)

			require.ErrorIs(t, err, errAdGroupsShape)
			assert.Equal(t, domain.FallbackDeliverable(600, 8), got)
		})
	}
}

func TestParseCompletionMissingAdGroups(t *testing.T) {
	got, err := ParseCompletion(`{"total_budget": 75}`, 600, 8)

	require.NoError(t, err)
	assert.Empty(t, got.AdGroups)
	assert.NotNil(t, got.AdGroups)
	assert.Equal(t, 75.0, got.TotalBudget)
}
