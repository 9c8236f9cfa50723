package dataforseo

import (
	"encoding/json"
	"math"
	"strings"

	"keyword-planner/internal/core/domain"
)

// liveTask is one entry of the request array sent to a live endpoint.
// Exactly one of Keywords and Target is set.
type liveTask struct {
	LocationName string   `json:"location_name"`
	LanguageName string   `json:"language_name"`
	Keywords     []string `json:"keywords,omitempty"`
	Target       string   `json:"target,omitempty"`
}

type liveResponse struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
	Tasks         []struct {
		StatusCode    int               `json:"status_code"`
		StatusMessage string            `json:"status_message"`
		Result        []json.RawMessage `json:"result"`
	} `json:"tasks"`
}

// resultItem mirrors a keyword entry. Absent or null numbers decode as 0.
type resultItem struct {
	Keyword            string   `json:"keyword"`
	SearchVolume       float64  `json:"search_volume"`
	Competition        *string  `json:"competition"`
	LowTopOfPageBid    float64  `json:"low_top_of_page_bid"`
	HighTopOfPageBid   float64  `json:"high_top_of_page_bid"`
	CPC                float64  `json:"cpc"`
	KeywordAnnotations *struct {
		Concepts []struct {
			ConceptGroup *struct {
				Name string `json:"name"`
			} `json:"concept_group"`
		} `json:"concepts"`
	} `json:"keyword_annotations"`
}

// decodeItems converts raw result entries into keywords. Entries that do
// not decode, carry no keyword text, hold negative prices, report a volume
// outside [0, MaxInt32] or fall below minVolume are dropped.
func decodeItems(raw []json.RawMessage, minVolume int) []domain.Keyword {
	keywords := make([]domain.Keyword, 0, len(raw))
	for _, r := range raw {
		var it resultItem
		if err := json.Unmarshal(r, &it); err != nil {
			continue
		}
		kw, ok := it.toKeyword()
		if !ok || kw.SearchVolume < minVolume {
			continue
		}
		keywords = append(keywords, kw)
	}
	return keywords
}

func (it resultItem) toKeyword() (domain.Keyword, bool) {
	text := strings.TrimSpace(it.Keyword)
	if text == "" {
		return domain.Keyword{}, false
	}
	if it.SearchVolume < 0 || it.SearchVolume > math.MaxInt32 || it.CPC < 0 || it.LowTopOfPageBid < 0 || it.HighTopOfPageBid < 0 {
		return domain.Keyword{}, false
	}

	competition := domain.CompetitionMedium
	if it.Competition != nil {
		competition = domain.ParseCompetition(*it.Competition)
	}

	return domain.Keyword{
		Keyword:       text,
		SearchVolume:  int(it.SearchVolume),
		Competition:   competition,
		BidLow:        it.LowTopOfPageBid,
		BidHigh:       it.HighTopOfPageBid,
		CPC:           it.CPC,
		ConceptGroups: it.conceptGroups(),
	}, true
}

func (it resultItem) conceptGroups() []string {
	groups := []string{}
	if it.KeywordAnnotations == nil {
		return groups
	}
	for _, c := range it.KeywordAnnotations.Concepts {
		if c.ConceptGroup != nil && c.ConceptGroup.Name != "" {
			groups = append(groups, c.ConceptGroup.Name)
		}
	}
	return groups
}
