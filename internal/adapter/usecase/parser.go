package usecase

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"keyword-planner/internal/core/domain"
)

// Defaults applied when the model leaves a field out.
const (
	defaultGroupName   = "Unknown Group"
	defaultGroupType   = domain.GroupCategory
	defaultCPCRange    = "$0.00 - $0.00"
	defaultCompetition = "medium"
	defaultMatchType   = "broad"
)

var (
	errNoJSONObject  = errors.New("no JSON object in completion")
	errAdGroupsShape = errors.New("ad_groups is not an array")
)

func defaultBudgetSummary() map[string]float64 {
	return map[string]float64{"brand": 50, "category": 35, "competitor": 15}
}

// ParseCompletion recovers a Deliverable from raw model output. It always
// returns a usable deliverable: when no JSON object can be extracted, or
// ad_groups is present but not an array, the fallback deliverable is
// returned together with the reason.
func ParseCompletion(raw string, budget float64, totalKeywords int) (domain.Deliverable, error) {
	span, err := extractJSONObject(raw)
	if err != nil {
		return domain.FallbackDeliverable(budget, totalKeywords), err
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(span), &doc); err != nil {
		return domain.FallbackDeliverable(budget, totalKeywords), fmt.Errorf("decode completion: %w", err)
	}
	// A missing ad_groups key means no groups; any other non-array value
	// means the model did not follow the schema.
	if groups, ok := doc["ad_groups"]; ok {
		if _, isArray := groups.([]any); !isArray {
			return domain.FallbackDeliverable(budget, totalKeywords), errAdGroupsShape
		}
	}
	return decodeDeliverable(document(doc), budget, totalKeywords), nil
}

// extractJSONObject returns the text from the first '{' to the last '}'.
func extractJSONObject(raw string) (string, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end < start {
		return "", errNoJSONObject
	}
	return raw[start : end+1], nil
}

func decodeDeliverable(doc document, budget float64, totalKeywords int) domain.Deliverable {
	groupDocs := doc.objects("ad_groups")
	groups := make([]domain.AdGroup, 0, len(groupDocs))
	for _, g := range groupDocs {
		groups = append(groups, decodeAdGroup(g))
	}

	return domain.Deliverable{
		AdGroups:          groups,
		TotalBudget:       doc.number("total_budget", budget),
		TotalKeywordsUsed: doc.integer("total_keywords_used", totalKeywords),
		BudgetSummary:     doc.floatMap("budget_summary", defaultBudgetSummary()),
	}
}

func decodeAdGroup(doc document) domain.AdGroup {
	kwDocs := doc.objects("keywords")
	keywords := make([]domain.AdKeyword, 0, len(kwDocs))
	for _, k := range kwDocs {
		keywords = append(keywords, domain.AdKeyword{
			Keyword:             k.str("keyword", ""),
			SearchVolume:        k.integer("search_volume", 0),
			Competition:         k.str("competition_level", defaultCompetition),
			CPCLow:              k.number("cpc_low", 0),
			CPCHigh:             k.number("cpc_high", 0),
			SuggestedMatchTypes: k.stringList("suggested_match_types", []string{defaultMatchType}),
		})
	}

	return domain.AdGroup{
		Name:             doc.str("group_name", defaultGroupName),
		Type:             domain.GroupType(doc.str("group_type", string(defaultGroupType))),
		Keywords:         keywords,
		BudgetAllocation: doc.number("budget_allocation", 0),
		BudgetPercentage: doc.number("budget_percentage", 0),
		TotalKeywords:    doc.integer("total_keywords", len(keywords)),
		AvgCPCRange:      doc.str("avg_cpc_range", defaultCPCRange),
	}
}
