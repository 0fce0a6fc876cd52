package ready

import (
	"time"

	"github.com/hlieu5402-collab/spark2026-sub000/callctx"
	"github.com/hlieu5402-collab/spark2026-sub000/errtax"
)

// Poller is implemented by anything exposing a poll_ready operation:
// transports, codecs consulting a budget, and application services.
type Poller interface {
	PollReady(ctx *callctx.CallContext, now time.Time) (State, error)
}

// Guard enforces step 1 of the poll_ready contract (spec.md §4.2): if ctx
// is already cancelled or its deadline has expired, it returns a non-nil
// CoreError classified Cancelled/Timeout and the caller must return that
// error instead of a State. A nil return means the implementation should
// proceed to compute and return exactly one State.
func Guard(ctx *callctx.CallContext, now time.Time) *errtax.CoreError {
	if ctx.IsCancelled() {
		return errtax.New("runtime.shutdown", nil)
	}
	if ctx.IsExpired(now) {
		return errtax.New("transport.timeout", nil)
	}
	return nil
}

// MetricLabels returns the ready.state / ready.detail label pair for a
// State, matching the enumerated values in spec.md §6
// (ready.state∈{ready,busy,budget_exhausted,retry_after}). Pending is
// deliberately absent from that enumeration — it is a transient
// suspension signal, never the basis of a ready_state metric sample — so
// MetricLabels returns empty strings for it, meaning "do not record".
func MetricLabels(s State) (state string, detail string) {
	switch s.Kind() {
	case KindReady:
		return "ready", "_"
	case KindBusy:
		reason := s.BusyReasonOf()
		switch reason.Kind {
		case BusyUpstream:
			return "busy", "upstream"
		case BusyDownstream:
			return "busy", "downstream"
		case BusyQueueFull:
			return "busy", "queue_full"
		default:
			return "busy", "custom"
		}
	case KindBudgetExhausted:
		return "budget_exhausted", "_"
	case KindRetryAfter:
		advice := s.RetryAdviceOf()
		switch advice.Kind {
		case RetryAfterDelay:
			return "retry_after", "after"
		case RetryAtInstant:
			return "retry_after", "at"
		default:
			return "retry_after", "custom"
		}
	case KindPending:
		return "", ""
	default:
		return "unknown", "_"
	}
}
