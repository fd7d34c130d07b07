package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordResolution(t *testing.T) {
	before := testutil.ToFloat64(LocationResolutions.WithLabelValues("alias", "high"))

	RecordResolution("alias", "high")
	RecordResolution("alias", "high")

	after := testutil.ToFloat64(LocationResolutions.WithLabelValues("alias", "high"))
	assert.InDelta(t, 2, after-before, 1e-9)
}

func TestRecordInference(t *testing.T) {
	before := testutil.ToFloat64(InferenceFailures.WithLabelValues("timeout"))

	RecordInference(50*time.Millisecond, "")
	RecordInference(8*time.Second, "timeout")

	after := testutil.ToFloat64(InferenceFailures.WithLabelValues("timeout"))
	assert.InDelta(t, 1, after-before, 1e-9)
}

func TestRecordMatchRun(t *testing.T) {
	before := testutil.ToFloat64(MatchRuns.WithLabelValues(OutcomeEmpty))

	RecordMatchRun(OutcomeEmpty, 0, 10*time.Millisecond)

	after := testutil.ToFloat64(MatchRuns.WithLabelValues(OutcomeEmpty))
	assert.InDelta(t, 1, after-before, 1e-9)
}

func TestMetricsAreCollectable(t *testing.T) {
	RecordHTTPRequest("POST", "/api/v1/requests/:id/match", 200, time.Millisecond)

	assert.Positive(t, testutil.CollectAndCount(HTTPRequestDuration))
	assert.Positive(t, testutil.CollectAndCount(LocationResolutions))
}
