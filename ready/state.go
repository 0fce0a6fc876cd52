package ready

import (
	"fmt"
	"time"

	"github.com/hlieu5402-collab/spark2026-sub000/callctx"
)

// Kind discriminates the ReadyState tagged union.
type Kind int

const (
	KindReady Kind = iota
	KindBusy
	KindBudgetExhausted
	KindRetryAfter
	KindPending
)

func (k Kind) String() string {
	switch k {
	case KindReady:
		return "ready"
	case KindBusy:
		return "busy"
	case KindBudgetExhausted:
		return "budget_exhausted"
	case KindRetryAfter:
		return "retry_after"
	case KindPending:
		return "pending"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// BusyReasonKind enumerates why a poll_ready returned Busy.
type BusyReasonKind int

const (
	BusyUpstream BusyReasonKind = iota
	BusyDownstream
	BusyQueueFull
	BusyCustom
)

// BusyReason is the payload of a Busy ReadyState.
type BusyReason struct {
	Kind BusyReasonKind
	Tag  string // meaningful only when Kind == BusyCustom
}

// RetryAdviceKind enumerates the closed set of RetryAfter advice shapes.
// Per spec.md §9 Open Question (b), this set is closed at v1.0: a custom
// tag is permitted but must stay low-cardinality.
type RetryAdviceKind int

const (
	RetryAfterDelay RetryAdviceKind = iota
	RetryAtInstant
	RetryCustom
)

// RetryAdvice is the payload of a RetryAfter ReadyState.
type RetryAdvice struct {
	Kind  RetryAdviceKind
	After time.Duration // meaningful when Kind == RetryAfterDelay
	At    time.Time     // meaningful when Kind == RetryAtInstant
	Tag   string         // meaningful when Kind == RetryCustom
}

// WakeSourceKind enumerates the tags a suspended poll_ready registers
// against before returning Pending.
type WakeSourceKind int

const (
	WakeIoReady WakeSourceKind = iota
	WakeTimer
	WakeConfigReload
	WakeCustom
)

// WakeSource is a tag-only attribution of what will end a Pending state.
type WakeSource struct {
	Kind WakeSourceKind
	Tag  string // meaningful when Kind == WakeCustom
}

func (w WakeSource) String() string {
	switch w.Kind {
	case WakeIoReady:
		return "io_ready"
	case WakeTimer:
		return "timer"
	case WakeConfigReload:
		return "config_reload"
	case WakeCustom:
		return "custom:" + w.Tag
	default:
		return fmt.Sprintf("wake_source(%d)", int(w.Kind))
	}
}

// State is the ReadyState value produced by a single poll_ready call.
// Exactly one of the payload fields is meaningful, selected by Kind; use
// the constructors below rather than composing a State literal so the
// "no silent Pending" invariant is enforced at construction.
type State struct {
	kind        Kind
	busy        BusyReason
	budget      callctx.BudgetSnapshot
	retry       RetryAdvice
	expectedNext string
	wakeSources []WakeSource
}

func (s State) Kind() Kind { return s.kind }

// Ready constructs the Ready state.
func Ready() State { return State{kind: KindReady} }

// Busy constructs the Busy state with the given reason.
func Busy(reason BusyReason) State { return State{kind: KindBusy, busy: reason} }

// BusyReasonOf returns the payload of a Busy state. Panics if Kind() != KindBusy.
func (s State) BusyReasonOf() BusyReason {
	if s.kind != KindBusy {
		panic("ready: BusyReasonOf called on non-Busy state")
	}
	return s.busy
}

// BudgetExhausted constructs the BudgetExhausted state from a snapshot
// taken at the denial's linearization point.
func BudgetExhausted(snapshot callctx.BudgetSnapshot) State {
	return State{kind: KindBudgetExhausted, budget: snapshot}
}

// BudgetSnapshotOf returns the payload of a BudgetExhausted state. Panics
// if Kind() != KindBudgetExhausted.
func (s State) BudgetSnapshotOf() callctx.BudgetSnapshot {
	if s.kind != KindBudgetExhausted {
		panic("ready: BudgetSnapshotOf called on non-BudgetExhausted state")
	}
	return s.budget
}

// RetryAfter constructs the RetryAfter state with the given advice.
func RetryAfter(advice RetryAdvice) State { return State{kind: KindRetryAfter, retry: advice} }

// RetryAdviceOf returns the payload of a RetryAfter state. Panics if
// Kind() != KindRetryAfter.
func (s State) RetryAdviceOf() RetryAdvice {
	if s.kind != KindRetryAfter {
		panic("ready: RetryAdviceOf called on non-RetryAfter state")
	}
	return s.retry
}

// Pending constructs the Pending state. It panics if wakeSources is empty:
// spec.md §4.2 forbids a "silent Pending" with no registered wake source.
func Pending(expectedNext string, wakeSources ...WakeSource) State {
	if len(wakeSources) == 0 {
		panic("ready: Pending requires at least one registered WakeSource")
	}
	return State{kind: KindPending, expectedNext: expectedNext, wakeSources: append([]WakeSource(nil), wakeSources...)}
}

// PendingDetailOf returns the expected-next description and the
// registered wake sources of a Pending state. Panics if Kind() != KindPending.
func (s State) PendingDetailOf() (expectedNext string, wakeSources []WakeSource) {
	if s.kind != KindPending {
		panic("ready: PendingDetailOf called on non-Pending state")
	}
	return s.expectedNext, append([]WakeSource(nil), s.wakeSources...)
}
