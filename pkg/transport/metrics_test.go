package transport

import (
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, method, code string) float64 {
	t.Helper()

	var m dto.Metric
	require.NoError(t, requestsTotal.WithLabelValues(method, code).Write(&m))

	return m.GetCounter().GetValue()
}

func TestObserve(t *testing.T) {
	t.Parallel()

	before := counterValue(t, "PATCH", "418")

	observe("PATCH", "418", 15*time.Millisecond)
	observe("PATCH", "418", 20*time.Millisecond)

	require.InDelta(t, before+2, counterValue(t, "PATCH", "418"), 0.001)
}
