package usecase

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"keyword-planner/internal/core/domain"
)

const (
	volumeWeight      = 0.4
	costWeight        = 0.3
	competitionWeight = 0.3

	// DefaultTopN is how many keywords are handed to the model.
	DefaultTopN = 20
)

var errNoScorableKeywords = errors.New("no keywords with usable volume and cost")

// Rank returns at most topN keywords ordered by descending priority score.
// When the set cannot be scored it degrades to the first topN keywords in
// input order.
func Rank(keywords []domain.Keyword, topN int) []domain.Keyword {
	ranked, _ := rankTop(keywords, topN)
	top := make([]domain.Keyword, len(ranked))
	for i, r := range ranked {
		top[i] = r.Keyword
	}
	return top
}

// rankTop is Rank that also keeps the scores. A non-nil error means the
// unranked fallback was used and every Score is zero.
func rankTop(keywords []domain.Keyword, topN int) ([]domain.RankedKeyword, error) {
	if topN < 0 {
		topN = 0
	}
	scored, err := ScoreKeywords(keywords)
	if err != nil {
		head := keywords[:min(topN, len(keywords))]
		fallback := make([]domain.RankedKeyword, len(head))
		for i, kw := range head {
			fallback[i] = domain.RankedKeyword{Keyword: kw}
		}
		return fallback, err
	}
	return scored[:min(topN, len(scored))], nil
}

// ScoreKeywords scores every keyword against the min/max of the whole set
// and returns them sorted by descending score. The sort is stable, so ties
// keep their input order.
//
// The score is 0.4*volume + 0.3*cost + 0.3*competition where volume and
// cost are min-max normalised (cost inverted, cheaper is better) and
// competition is 1 for low, 0.5 for medium and 0 for high. A dimension with
// no spread scores 0.5 for every keyword.
func ScoreKeywords(keywords []domain.Keyword) ([]domain.RankedKeyword, error) {
	if len(keywords) == 0 {
		return nil, errNoScorableKeywords
	}

	minVol, maxVol := math.MaxInt, math.MinInt
	minCPC, maxCPC := math.Inf(1), math.Inf(-1)
	for _, kw := range keywords {
		if !scorable(kw) {
			return nil, fmt.Errorf("%w: %q", errNoScorableKeywords, kw.Keyword)
		}
		minVol, maxVol = min(minVol, kw.SearchVolume), max(maxVol, kw.SearchVolume)
		minCPC, maxCPC = min(minCPC, kw.CPC), max(maxCPC, kw.CPC)
	}

	ranked := make([]domain.RankedKeyword, len(keywords))
	for i, kw := range keywords {
		volume := 0.5
		if maxVol != minVol {
			volume = float64(kw.SearchVolume-minVol) / float64(maxVol-minVol)
		}
		cost := 0.5
		if maxCPC != minCPC {
			cost = 1 - (kw.CPC-minCPC)/(maxCPC-minCPC)
		}
		score := volumeWeight*volume + costWeight*cost + competitionWeight*competitionScore(kw.Competition)
		ranked[i] = domain.RankedKeyword{Keyword: kw, Score: clamp01(score)}
	}

	slices.SortStableFunc(ranked, func(a, b domain.RankedKeyword) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})
	return ranked, nil
}

// scorable reports whether kw carries a usable volume and cost.
func scorable(kw domain.Keyword) bool {
	return kw.SearchVolume >= 0 && kw.CPC >= 0 && !math.IsInf(kw.CPC, 0) && !math.IsNaN(kw.CPC)
}

func competitionScore(c domain.Competition) float64 {
	switch c {
	case domain.CompetitionLow:
		return 1
	case domain.CompetitionHigh:
		return 0
	default:
		return 0.5
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
