package domain

// GroupType is the marketing intent bucket of an ad group. Values produced
// by the model are kept verbatim, so the set below is not exhaustive.
type GroupType string

const (
	GroupBrand      GroupType = "brand"
	GroupCategory   GroupType = "category"
	GroupCompetitor GroupType = "competitor"
	GroupLocation   GroupType = "location"
	GroupOther      GroupType = "other"
	GroupError      GroupType = "error"
)

// AdKeyword is a keyword placed into an ad group together with the match
// types suggested for it.
type AdKeyword struct {
	Keyword             string   `json:"keyword"`
	SearchVolume        int      `json:"search_volume"`
	Competition         string   `json:"competition_level"`
	CPCLow              float64  `json:"cpc_low"`
	CPCHigh             float64  `json:"cpc_high"`
	SuggestedMatchTypes []string `json:"suggested_match_types"`
}

// AdGroup is a budget-bearing bucket of keywords sharing one intent.
// BudgetPercentage is expressed in the range 0-100.
type AdGroup struct {
	Name             string      `json:"group_name"`
	Type             GroupType   `json:"group_type"`
	Keywords         []AdKeyword `json:"keywords"`
	BudgetAllocation float64     `json:"budget_allocation"`
	BudgetPercentage float64     `json:"budget_percentage"`
	TotalKeywords    int         `json:"total_keywords"`
	AvgCPCRange      string      `json:"avg_cpc_range"`
}
