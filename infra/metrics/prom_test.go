package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	coremetrics "github.com/voltplan/voltplan/core/metrics"
)

func TestPromSinkRecordsSolves(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	require.NoError(t, err)

	events := []coremetrics.ScheduleEvent{
		{Outcome: "optimal", TopUp: false, Costs: -12.5, Duration: 3 * time.Millisecond},
		{Outcome: "optimal", TopUp: true, Costs: 4, Duration: 2 * time.Millisecond},
		{Outcome: "infeasible", TopUp: false, Duration: time.Millisecond},
	}
	for _, ev := range events {
		require.NoError(t, sink.RecordSchedule(ev))
	}

	ps := sink.(*PromSink)
	require.Equal(t, 1.0, testutil.ToFloat64(ps.solves.WithLabelValues("optimal", "false")))
	require.Equal(t, 1.0, testutil.ToFloat64(ps.solves.WithLabelValues("optimal", "true")))
	require.Equal(t, 1.0, testutil.ToFloat64(ps.solves.WithLabelValues("infeasible", "false")))
	// The gauge holds the costs of the last optimal solve only.
	require.Equal(t, 4.0, testutil.ToFloat64(ps.costs))
}

func TestPromSinkDoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	require.NoError(t, err)
	// Registering the same metrics twice must reuse the existing collectors.
	_, err = NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	require.NoError(t, err)
}
