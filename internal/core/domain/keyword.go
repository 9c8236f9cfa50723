package domain

import "strings"

// Competition is the advertiser competition level reported for a keyword.
type Competition string

const (
	CompetitionLow    Competition = "low"
	CompetitionMedium Competition = "medium"
	CompetitionHigh   Competition = "high"
)

// ParseCompetition maps a raw competition label onto one of the three
// levels. Matching is case-insensitive; anything unrecognised is medium.
func ParseCompetition(raw string) Competition {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "LOW":
		return CompetitionLow
	case "HIGH":
		return CompetitionHigh
	default:
		return CompetitionMedium
	}
}

// Keyword is a single keyword research record as returned by a source.
// Two keywords are the same keyword when their normalised text matches.
type Keyword struct {
	Keyword       string      `json:"keyword"`
	SearchVolume  int         `json:"search_volume"`
	Competition   Competition `json:"competition_level"`
	BidLow        float64     `json:"bid_low"`
	BidHigh       float64     `json:"bid_high"`
	CPC           float64     `json:"cpc"`
	ConceptGroups []string    `json:"concept_groups"`
}

// Key returns the identity used for deduplication.
func (k Keyword) Key() string {
	return strings.ToLower(k.Keyword)
}

// RankedKeyword pairs a keyword with its priority score in [0,1].
type RankedKeyword struct {
	Keyword
	Score float64 `json:"score"`
}
