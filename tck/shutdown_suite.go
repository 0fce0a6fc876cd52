package tck

import (
	"testing"
	"time"

	"github.com/hlieu5402-collab/spark2026-sub000/shutdown"
	"github.com/stretchr/testify/require"
)

// RunShutdownSuite exercises the per-target exactly-once call-count
// property from spec.md §8: trigger_graceful called exactly once,
// force_close called zero or one time, for both the in-time-completion
// and deadline-escalation paths.
func RunShutdownSuite(t *testing.T) {
	t.Run("target completing in time: trigger once, force never", func(t *testing.T) {
		coord := shutdown.New(nil, nil)

		var triggerCount, forceCount int
		done := make(chan error, 1)
		done <- nil
		require.NoError(t, coord.RegisterTarget("svc", shutdown.TargetCallbacks{
			TriggerGraceful: func(reason string) { triggerCount++ },
			AwaitClosed:     func() <-chan error { return done },
			ForceClose:      func() { forceCount++ },
		}))

		report := coord.Shutdown("test", time.Second)
		require.Equal(t, 1, triggerCount)
		require.Equal(t, 0, forceCount)
		require.True(t, report.AllCompleted())
	})

	t.Run("target never completing: trigger once, force exactly once", func(t *testing.T) {
		clock := shutdown.NewManualClock(time.Unix(0, 0))
		coord := shutdown.New(clock, nil)

		var triggerCount, forceCount int
		never := make(chan error)
		require.NoError(t, coord.RegisterTarget("stuck", shutdown.TargetCallbacks{
			TriggerGraceful: func(reason string) { triggerCount++ },
			AwaitClosed:     func() <-chan error { return never },
			ForceClose:      func() { forceCount++ },
		}))

		reportCh := make(chan shutdown.Report, 1)
		go func() { reportCh <- coord.Shutdown("timeout", time.Second) }()

		// Give the coordinator's goroutine a chance to register its
		// deadline waiter before advancing the manual clock.
		time.Sleep(20 * time.Millisecond)
		clock.Advance(time.Second)

		report := <-reportCh
		require.Equal(t, 1, triggerCount)
		require.Equal(t, 1, forceCount)
		require.Equal(t, shutdown.ForcedTimeout, report.Targets[0].Status)
	})
}
