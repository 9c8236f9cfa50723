package domain

// Deliverable is the final output of a research request: the ad groups
// proposed by the model plus budget bookkeeping. Allocations are taken as
// produced upstream and are never renormalised.
type Deliverable struct {
	AdGroups          []AdGroup          `json:"ad_groups"`
	TotalBudget       float64            `json:"total_budget"`
	TotalKeywordsUsed int                `json:"total_keywords_used"`
	BudgetSummary     map[string]float64 `json:"budget_summary"`
	ProcessingTime    float64            `json:"processing_time"`
}

const FallbackGroupName = "Parsing Failed"

// FallbackDeliverable returns the degenerate deliverable used whenever the
// model output cannot be recovered: a single error group holding the whole
// budget.
func FallbackDeliverable(budget float64, totalKeywords int) Deliverable {
	return Deliverable{
		AdGroups: []AdGroup{{
			Name:             FallbackGroupName,
			Type:             GroupError,
			Keywords:         []AdKeyword{},
			BudgetAllocation: budget,
			BudgetPercentage: 100.0,
			TotalKeywords:    0,
			AvgCPCRange:      "$0.00 - $0.00",
		}},
		TotalBudget:       budget,
		TotalKeywordsUsed: totalKeywords,
		BudgetSummary:     map[string]float64{"error": 100},
	}
}

// IsFallback reports whether d is the fallback deliverable shape.
func (d Deliverable) IsFallback() bool {
	return len(d.AdGroups) == 1 && d.AdGroups[0].Type == GroupError
}
