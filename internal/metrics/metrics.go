package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeSuccess  = "success"
	OutcomeFailure  = "failure"
	OutcomeFallback = "fallback"
)

var (
	sourceFetches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "keyword_planner_source_fetches_total",
			Help: "Keyword source fetches by source and outcome",
		},
		[]string{"source", "outcome"},
	)
	sourceKeywords = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "keyword_planner_source_keywords_total",
			Help: "Keywords returned by each source before deduplication",
		},
		[]string{"source"},
	)
	completionParses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "keyword_planner_completion_parses_total",
			Help: "Model completions by parse outcome",
		},
		[]string{"outcome"},
	)
	researchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "keyword_planner_research_duration_seconds",
			Help:    "End to end duration of research requests",
			Buckets: []float64{1, 2.5, 5, 10, 20, 30, 60, 120},
		},
	)

	registerOnce sync.Once
)

// Init registers the collectors with reg. Must be called once at startup;
// later calls are no-ops.
func Init(reg prometheus.Registerer) {
	registerOnce.Do(func() {
		reg.MustRegister(sourceFetches, sourceKeywords, completionParses, researchDuration)
	})
}

// RecordFetch counts one source fetch and the keywords it produced.
func RecordFetch(source string, keywords int, err error) {
	if err != nil {
		sourceFetches.WithLabelValues(source, OutcomeFailure).Inc()
		return
	}
	sourceFetches.WithLabelValues(source, OutcomeSuccess).Inc()
	sourceKeywords.WithLabelValues(source).Add(float64(keywords))
}

// RecordParse counts a completion parse with the given outcome.
func RecordParse(outcome string) {
	completionParses.WithLabelValues(outcome).Inc()
}

// ObserveResearch records the duration of a full research request.
func ObserveResearch(d time.Duration) {
	researchDuration.Observe(d.Seconds())
}
