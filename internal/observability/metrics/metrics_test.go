package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveBeforeInitIsNoop(t *testing.T) {
	if reportTotal != nil {
		t.Skip("collectors already registered")
	}
	assert.NotPanics(t, func() {
		ObserveReport("recap", ResultSuccess, 1, 1, time.Millisecond)
		ObserveExport("xlsx", ResultSuccess, time.Millisecond)
	})
}

func TestObserveReport(t *testing.T) {
	Init()
	Init()

	before := testutil.ToFloat64(deliveriesSkip.WithLabelValues("memo"))
	ObserveReport("memo", ResultSuccess, 3, 2, 10*time.Millisecond)

	assert.Equal(t, before+2, testutil.ToFloat64(deliveriesSkip.WithLabelValues("memo")))
	assert.GreaterOrEqual(t, testutil.ToFloat64(reportTotal.WithLabelValues("memo", ResultSuccess)), 1.0)
	assert.GreaterOrEqual(t, testutil.ToFloat64(deliveriesValued.WithLabelValues("memo")), 3.0)
}

func TestObserveExport(t *testing.T) {
	Init()

	before := testutil.ToFloat64(exportTotal.WithLabelValues("pdf", ResultError))
	ObserveExport("pdf", ResultError, time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(exportTotal.WithLabelValues("pdf", ResultError)))
}
