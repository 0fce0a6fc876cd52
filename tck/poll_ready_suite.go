package tck

import (
	"testing"
	"time"

	"github.com/hlieu5402-collab/spark2026-sub000/callctx"
	"github.com/hlieu5402-collab/spark2026-sub000/ready"
	"github.com/stretchr/testify/require"
)

// RunPollReadySuite exercises the poll_ready contract from spec.md §4.2
// against any ready.Poller. freshCtx must be an uncancelled, unexpired
// CallContext; cancelledCtx and expiredCtx must already be in those
// states. poller is polled against each in turn.
func RunPollReadySuite(t *testing.T, poller ready.Poller, freshCtx, cancelledCtx, expiredCtx *callctx.CallContext) {
	t.Run("cancelled context yields an error, never a ReadyState", func(t *testing.T) {
		_, err := poller.PollReady(cancelledCtx, time.Now())
		require.Error(t, err)
	})

	t.Run("expired context yields an error, never a ReadyState", func(t *testing.T) {
		_, err := poller.PollReady(expiredCtx, time.Now())
		require.Error(t, err)
	})

	t.Run("fresh context yields exactly one ReadyState", func(t *testing.T) {
		state, err := poller.PollReady(freshCtx, time.Now())
		require.NoError(t, err)
		switch state.Kind() {
		case ready.KindReady, ready.KindBusy, ready.KindBudgetExhausted, ready.KindRetryAfter, ready.KindPending:
		default:
			t.Fatalf("poll_ready returned an unrecognized Kind %v", state.Kind())
		}
	})

	t.Run("Pending always carries at least one registered wake source", func(t *testing.T) {
		state, err := poller.PollReady(freshCtx, time.Now())
		require.NoError(t, err)
		if state.Kind() == ready.KindPending {
			_, wakeSources := state.PendingDetailOf()
			require.NotEmpty(t, wakeSources, "no silent Pending: spec.md §4.2")
		}
	})

	t.Run("BudgetExhausted and Busy are mutually exclusive kinds", func(t *testing.T) {
		state, err := poller.PollReady(freshCtx, time.Now())
		require.NoError(t, err)
		// A ready.State carries exactly one Kind, so this is
		// structurally guaranteed; panics from calling the wrong
		// accessor are what would catch a violation.
		if state.Kind() == ready.KindBudgetExhausted {
			require.NotPanics(t, func() { state.BudgetSnapshotOf() })
		}
		if state.Kind() == ready.KindBusy {
			require.NotPanics(t, func() { state.BusyReasonOf() })
		}
	})
}
