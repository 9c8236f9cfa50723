package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordFetch(t *testing.T) {
	okBefore := testutil.ToFloat64(sourceFetches.WithLabelValues("brand_site", OutcomeSuccess))
	failBefore := testutil.ToFloat64(sourceFetches.WithLabelValues("brand_site", OutcomeFailure))
	kwBefore := testutil.ToFloat64(sourceKeywords.WithLabelValues("brand_site"))

	RecordFetch("brand_site", 7, nil)
	RecordFetch("brand_site", 0, errors.New("timeout"))

	assert.Equal(t, okBefore+1, testutil.ToFloat64(sourceFetches.WithLabelValues("brand_site", OutcomeSuccess)))
	assert.Equal(t, failBefore+1, testutil.ToFloat64(sourceFetches.WithLabelValues("brand_site", OutcomeFailure)))
	assert.Equal(t, kwBefore+7, testutil.ToFloat64(sourceKeywords.WithLabelValues("brand_site")))
}

func TestInitRegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	Init(reg)
	Init(reg)

	RecordParse(OutcomeSuccess)
	n, err := testutil.GatherAndCount(reg, "keyword_planner_completion_parses_total")
	assert.NoError(t, err)
	assert.Equal(t, 1, n)
}
