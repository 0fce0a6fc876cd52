package callctx

import (
	"fmt"
	"sync/atomic"
)

// BudgetKind enumerates the resource a Budget tracks.
type BudgetKind int

const (
	// BudgetFlow limits raw bytes flowing through a connection.
	BudgetFlow BudgetKind = iota
	// BudgetDecode limits codec decode depth/recursion/frame count.
	BudgetDecode
	// BudgetConcurrent limits concurrently in-flight requests/operations.
	BudgetConcurrent
	// BudgetObservability limits the rate of metric/log/trace/audit records.
	BudgetObservability
)

// String renders the kind for logging and metric labels.
func (k BudgetKind) String() string {
	switch k {
	case BudgetFlow:
		return "flow"
	case BudgetDecode:
		return "decode"
	case BudgetConcurrent:
		return "concurrent"
	case BudgetObservability:
		return "observability"
	default:
		return fmt.Sprintf("budget(%d)", int(k))
	}
}

// BudgetSnapshot is a value-typed, freely copyable capture of a Budget's
// (kind, remaining, limit) at a single instant.
type BudgetSnapshot struct {
	Kind      BudgetKind
	Remaining int64
	Limit     int64
}

// Decision is the outcome of Budget.TryConsume.
type Decision int

const (
	// Granted indicates the requested amount was reserved.
	Granted Decision = iota
	// Denied indicates remaining < n at the linearization point; nothing
	// was reserved.
	Denied
)

// ConsumeResult is returned by Budget.TryConsume.
type ConsumeResult struct {
	Decision  Decision
	Remaining int64 // post-decrement remaining, meaningful on Granted
	Snapshot  BudgetSnapshot
}

// Budget is a shared atomic counter limiting consumption of one resource.
// TryConsume is linearizable via a single CAS loop over the remaining
// counter; Refund increments but clamps at limit, protecting against
// double-refund bugs.
//
// Invariant (verified for the teacher's analogous FastState machine by pure
// CAS reasoning, and intended here to hold under Loom-style model checking
// in the Rust original): at every instant, sum(granted) - sum(refunded) <=
// limit.
type Budget struct {
	remaining atomic.Int64
	limit     int64
	kind      BudgetKind
}

// UnboundedLimit marks a Budget with no effective ceiling (try_consume
// always grants, refund is a no-op past conservation bookkeeping).
const UnboundedLimit = int64(1<<63 - 1)

// NewBudget constructs a Budget of the given kind with the stated limit.
// The budget starts fully available (remaining == limit).
func NewBudget(kind BudgetKind, limit int64) *Budget {
	b := &Budget{limit: limit, kind: kind}
	b.remaining.Store(limit)
	return b
}

// Kind returns the resource kind this Budget tracks.
func (b *Budget) Kind() BudgetKind {
	return b.kind
}

// Limit returns the configured ceiling.
func (b *Budget) Limit() int64 {
	return b.limit
}

// Snapshot captures (kind, remaining, limit) at the current instant.
func (b *Budget) Snapshot() BudgetSnapshot {
	return BudgetSnapshot{Kind: b.kind, Remaining: b.remaining.Load(), Limit: b.limit}
}

// TryConsume attempts to reserve n units. It is linearizable: the CAS that
// succeeds defines the single instant at which the decision is made, and a
// Denied result carries a snapshot taken at that same point.
func (b *Budget) TryConsume(n int64) ConsumeResult {
	if n < 0 {
		panic("callctx: TryConsume with negative n")
	}
	for {
		cur := b.remaining.Load()
		if cur < n {
			return ConsumeResult{
				Decision: Denied,
				Snapshot: BudgetSnapshot{Kind: b.kind, Remaining: cur, Limit: b.limit},
			}
		}
		next := cur - n
		if b.remaining.CompareAndSwap(cur, next) {
			return ConsumeResult{
				Decision:  Granted,
				Remaining: next,
				Snapshot:  BudgetSnapshot{Kind: b.kind, Remaining: next, Limit: b.limit},
			}
		}
	}
}

// Refund adds n back to remaining, clamping at limit so a double-refund bug
// cannot push remaining above limit. Returns true if clamping occurred,
// which callers should treat as an implementation anomaly worth logging.
func (b *Budget) Refund(n int64) (clamped bool) {
	if n < 0 {
		panic("callctx: Refund with negative n")
	}
	for {
		cur := b.remaining.Load()
		next := cur + n
		if next > b.limit || next < cur /* overflow */ {
			next = b.limit
			clamped = true
		}
		if b.remaining.CompareAndSwap(cur, next) {
			return clamped
		}
	}
}
