package usecase

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"keyword-planner/internal/core/domain"
)

type promptKeyword struct {
	Keyword       string   `json:"keyword"`
	SearchVolume  int      `json:"search_volume"`
	Competition   string   `json:"competition"`
	BidLow        float64  `json:"bid_low"`
	BidHigh       float64  `json:"bid_high"`
	CPC           float64  `json:"cpc"`
	ConceptGroups []string `json:"concept_groups"`
}

// promptTemplate takes the keyword JSON as %[1]s and the budget as %[2]s.
const promptTemplate = `
You are an expert Google Ads strategist.

Here are keywords with their data and semantic concept groups:

%[1]s

Organize these keywords into these 5 ad groups:

- Brand Terms
- Category Terms
- Competitor Terms
- Location-based Queries
- Long-Tail Informational Queries

BUDGET INFORMATION: Total available budget is $%[2]s
Allocate budget proportionally to the ad groups and suggest match types.
Eventual goal is to have maximum ROAS (Return on Ad Spend) on the keywords that are given.

BUDGET ALLOCATION RULES (order of high to low priority):
- Total budget is $%[2]s
- Brand Terms: decide what %% of budget (highest priority)
- Category Terms: decide what %% of budget
- Competitor Terms: decide what %% of budget
- Location-based: decide what %% of budget
- Long-tail: decide what %% of budget

Use concept groups to inform classifications:
- "Brand Names" concept -> Brand Terms
- "Product" concept -> Category Terms
- "Competitors" concept -> Competitor Terms
- "Geography" concept -> Location-based Queries
- Long keywords (4+ words) -> Long-Tail Informational

Return ONLY JSON in the following format. NOTE: The example below shows
the structure only - use the ACTUAL keywords provided above:

{
"ad_groups": [
    {
    "group_name": "Brand Terms",
    "group_type": "brand",
    "budget_allocation": 1000.0,
    "budget_percentage": 50.0,
    "total_keywords": 5,
    "avg_cpc_range": "$1.50 - $3.00",
    "keywords": [
        {
        "keyword": "example keyword",
        "search_volume": 1000,
        "competition_level": "low",
        "cpc_low": 1.50,
        "cpc_high": 3.00,
        "suggested_match_types": ["exact", "phrase"]
        }
    ]
    }
]
}

IMPORTANT: Use the actual keyword data provided to calculate the above json format,
not the placeholder examples in the format template.
`

// BuildPrompt renders the ad-group instruction for the given keywords and
// budget. The output depends only on its inputs. Non-finite numbers are
// sent as 0 so that every keyword reaches the model.
func BuildPrompt(keywords []domain.Keyword, budget float64) (string, error) {
	sample := make([]promptKeyword, len(keywords))
	for i, kw := range keywords {
		groups := kw.ConceptGroups
		if groups == nil {
			groups = []string{}
		}
		sample[i] = promptKeyword{
			Keyword:       kw.Keyword,
			SearchVolume:  kw.SearchVolume,
			Competition:   string(kw.Competition),
			BidLow:        finite(kw.BidLow),
			BidHigh:       finite(kw.BidHigh),
			CPC:           finite(kw.CPC),
			ConceptGroups: groups,
		}
	}

	data, err := json.MarshalIndent(sample, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode prompt keywords: %w", err)
	}
	return fmt.Sprintf(promptTemplate, string(data), strconv.FormatFloat(finite(budget), 'f', -1, 64)), nil
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
