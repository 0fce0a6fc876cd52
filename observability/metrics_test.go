package observability

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSnapshotCounterAccumulates(t *testing.T) {
	s := NewSnapshot()
	labels := map[string]string{LabelRouteID: "r1", LabelOperation: "get"}

	s.Counter(MetricRequestTotal, labels, 1)
	s.Counter(MetricRequestTotal, labels, 2.5)

	require.InDelta(t, 3.5, s.CounterValue(MetricRequestTotal, labels), 1e-9)
}

func TestSnapshotGaugeOverwrites(t *testing.T) {
	s := NewSnapshot()
	labels := map[string]string{LabelRouteID: "r1"}

	s.Gauge(MetricRequestInflight, labels, 4)
	s.Gauge(MetricRequestInflight, labels, 1)

	require.InDelta(t, 1, s.GaugeValue(MetricRequestInflight, labels), 1e-9)
}

func TestSnapshotLabelOrderIndependent(t *testing.T) {
	s := NewSnapshot()
	s.Counter(MetricRequestErrors, map[string]string{LabelRouteID: "a", LabelOperation: "b"}, 1)
	s.Counter(MetricRequestErrors, map[string]string{LabelOperation: "b", LabelRouteID: "a"}, 1)

	require.InDelta(t, 2, s.CounterValue(MetricRequestErrors, map[string]string{LabelRouteID: "a", LabelOperation: "b"}), 1e-9)
}

func TestNoOpRecorderDiscards(t *testing.T) {
	var r Recorder = NoOpRecorder{}
	require.NotPanics(t, func() {
		r.Counter(MetricRequestTotal, nil, 1)
		r.Gauge(MetricRequestInflight, nil, 1)
		r.Histogram(MetricRequestDuration, nil, 1)
	})
}
