package ready

import (
	"testing"
	"time"

	"github.com/hlieu5402-collab/spark2026-sub000/callctx"
	"github.com/stretchr/testify/require"
)

func budgetSnapshotFixture() callctx.BudgetSnapshot {
	return callctx.BudgetSnapshot{Kind: callctx.BudgetFlow, Remaining: 0, Limit: 10}
}

func TestPendingRejectsEmptyWakeSources(t *testing.T) {
	require.Panics(t, func() { Pending("next-frame") })
}

func TestPendingRoundTrip(t *testing.T) {
	s := Pending("more-bytes", WakeSource{Kind: WakeIoReady}, WakeSource{Kind: WakeTimer})

	require.Equal(t, KindPending, s.Kind())
	expected, sources := s.PendingDetailOf()
	require.Equal(t, "more-bytes", expected)
	require.Len(t, sources, 2)
}

func TestBusyAndBudgetExhaustedAreDistinctKinds(t *testing.T) {
	busy := Busy(BusyReason{Kind: BusyQueueFull})
	exhausted := BudgetExhausted(budgetSnapshotFixture())

	require.Equal(t, KindBusy, busy.Kind())
	require.Equal(t, KindBudgetExhausted, exhausted.Kind())
	require.NotEqual(t, busy.Kind(), exhausted.Kind(), "BudgetExhausted must never be representable as a Busy variant")
}

func TestAccessorsPanicOnWrongKind(t *testing.T) {
	s := Ready()
	require.Panics(t, func() { s.BusyReasonOf() })
	require.Panics(t, func() { s.BudgetSnapshotOf() })
	require.Panics(t, func() { s.RetryAdviceOf() })
	require.Panics(t, func() { s.PendingDetailOf() })
}

func TestRetryAfterVariants(t *testing.T) {
	delay := RetryAfter(RetryAdvice{Kind: RetryAfterDelay, After: 5 * time.Second})
	require.Equal(t, KindRetryAfter, delay.Kind())
	require.Equal(t, 5*time.Second, delay.RetryAdviceOf().After)

	at := RetryAfter(RetryAdvice{Kind: RetryAtInstant, At: time.Unix(1000, 0)})
	require.True(t, at.RetryAdviceOf().At.Equal(time.Unix(1000, 0)))
}

func TestMetricLabels(t *testing.T) {
	cases := []struct {
		state         State
		wantState     string
		wantDetail    string
	}{
		{Ready(), "ready", "_"},
		{Busy(BusyReason{Kind: BusyUpstream}), "busy", "upstream"},
		{Busy(BusyReason{Kind: BusyCustom, Tag: "x"}), "busy", "custom"},
		{BudgetExhausted(budgetSnapshotFixture()), "budget_exhausted", "_"},
		{RetryAfter(RetryAdvice{Kind: RetryAfterDelay}), "retry_after", "after"},
		{RetryAfter(RetryAdvice{Kind: RetryAtInstant}), "retry_after", "at"},
		{Pending("x", WakeSource{Kind: WakeIoReady}), "", ""},
	}
	for _, c := range cases {
		state, detail := MetricLabels(c.state)
		require.Equal(t, c.wantState, state)
		require.Equal(t, c.wantDetail, detail)
	}
}
