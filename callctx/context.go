package callctx

import (
	"time"

	"github.com/hlieu5402-collab/spark2026-sub000/observability"
	"go.opentelemetry.io/otel/trace"
)

// Executor is the minimal cooperative-scheduling seam the core depends on.
// It is deliberately an abstraction only (spec.md's explicit non-goal: "a
// concrete async scheduler"), grounded in the teacher's own
// Loop.Submit/Loop.SubmitInternal split between externally- and
// internally-originated work.
type Executor interface {
	// Submit schedules fn for execution on the executor's own schedule.
	// Safe to call from any goroutine.
	Submit(fn func())
	// SubmitInternal schedules fn with priority over externally submitted
	// work, mirroring the teacher's internal-queue fast path.
	SubmitInternal(fn func())
}

// ExecutionView is a zero-copy, read-only view over a CallContext's
// cancellation/deadline/budget primitives, suitable for passing into
// poll_ready implementations without exposing mutation (DeriveChild,
// attaching a new SecurityContextSnapshot, etc).
type ExecutionView struct {
	ctx *CallContext
}

func (v ExecutionView) IsCancelled() bool { return v.ctx.IsCancelled() }
func (v ExecutionView) IsExpired(now time.Time) bool { return v.ctx.IsExpired(now) }
func (v ExecutionView) Budget(kind BudgetKind) (*Budget, bool) { return v.ctx.Budget(kind) }

// CallContext bundles cancellation, deadline, budgets, a security snapshot,
// and observability handles (logger + trace span context) for one in-flight
// operation. Instances are shared by reference; all mutation is through the
// interior atomics of Cancellation/Budget, so a CallContext is safe to pass
// to any number of goroutines.
type CallContext struct {
	parent       *CallContext
	cancellation *Cancellation
	deadline     Deadline
	budgets      map[BudgetKind]*Budget
	security     SecurityContextSnapshot
	logger       *observability.Logger
	span         trace.SpanContext
	requestID    string
}

// Builder constructs a root CallContext.
type Builder struct {
	deadline  Deadline
	budgets   map[BudgetKind]*Budget
	security  SecurityContextSnapshot
	logger    *observability.Logger
	span      trace.SpanContext
	requestID string
}

// NewBuilder returns a Builder with no deadline and an unbounded Flow
// budget, matching the default CallContext described in spec.md §4.1.
func NewBuilder() *Builder {
	return &Builder{
		budgets: map[BudgetKind]*Budget{
			BudgetFlow: NewBudget(BudgetFlow, UnboundedLimit),
		},
	}
}

func (b *Builder) WithDeadline(d Deadline) *Builder {
	b.deadline = d
	return b
}

func (b *Builder) WithBudget(budget *Budget) *Builder {
	if b.budgets == nil {
		b.budgets = make(map[BudgetKind]*Budget)
	}
	b.budgets[budget.Kind()] = budget
	return b
}

func (b *Builder) WithSecurity(s SecurityContextSnapshot) *Builder {
	b.security = s
	return b
}

func (b *Builder) WithLogger(l *observability.Logger) *Builder {
	b.logger = l
	return b
}

func (b *Builder) WithSpan(s trace.SpanContext) *Builder {
	b.span = s
	return b
}

func (b *Builder) WithRequestID(id string) *Builder {
	b.requestID = id
	return b
}

// Build finalizes the CallContext with a fresh Cancellation.
func (b *Builder) Build() *CallContext {
	logger := b.logger
	if logger == nil {
		logger = observability.NoOpLogger()
	}
	budgets := b.budgets
	if budgets == nil {
		budgets = map[BudgetKind]*Budget{BudgetFlow: NewBudget(BudgetFlow, UnboundedLimit)}
	}
	return &CallContext{
		cancellation: NewCancellation(),
		deadline:     b.deadline,
		budgets:      budgets,
		security:     b.security,
		logger:       logger,
		span:         b.span,
		requestID:    b.requestID,
	}
}

// ChildOptions tightens or extends state when deriving a child CallContext.
type ChildOptions struct {
	// Deadline, if set (IsSet()==true), tightens the inherited deadline. It
	// is ignored (and the parent's deadline kept) if it is later than the
	// parent's.
	Deadline Deadline
	// ExtraBudgets are added to (or replace, by kind) the inherited budget
	// set; budgets not mentioned are inherited by reference (shared, not
	// copied) from the parent.
	ExtraBudgets []*Budget
	// Security, if non-empty, replaces the inherited security snapshot
	// (e.g. after a re-handshake on the same logical session).
	Security SecurityContextSnapshot
	// RequestID, if set, replaces the inherited request id.
	RequestID string
}

// DeriveChild produces a child CallContext whose cancellation is linked to
// this one (see Cancellation.NewChild): cancelling the parent cancels the
// child, but cancelling the child never affects the parent. The child
// inherits deadline/budgets/security/logger/span unless opts tightens or
// replaces them.
func (c *CallContext) DeriveChild(opts ChildOptions) *CallContext {
	child := &CallContext{
		parent:       c,
		cancellation: c.cancellation.NewChild(),
		deadline:     c.deadline.Tighten(opts.Deadline),
		budgets:      make(map[BudgetKind]*Budget, len(c.budgets)),
		security:     c.security,
		logger:       c.logger,
		span:         c.span,
		requestID:    c.requestID,
	}
	for k, v := range c.budgets {
		child.budgets[k] = v
	}
	for _, b := range opts.ExtraBudgets {
		child.budgets[b.Kind()] = b
	}
	if !opts.Security.Empty() {
		child.security = opts.Security
	}
	if opts.RequestID != "" {
		child.requestID = opts.RequestID
	}
	return child
}

// Cancel cancels this context's cancellation edge, which transitively
// cancels every child derived from it. Idempotent.
func (c *CallContext) Cancel(reason any) { c.cancellation.Cancel(reason) }

// IsCancelled is monotone: see Cancellation.IsCancelled.
func (c *CallContext) IsCancelled() bool { return c.cancellation.IsCancelled() }

// Cancellation exposes the underlying primitive, e.g. for OnCancel
// registration by a transport awaiting wake-up.
func (c *CallContext) Cancellation() *Cancellation { return c.cancellation }

// Deadline returns the configured deadline (NoDeadline if none).
func (c *CallContext) Deadline() Deadline { return c.deadline }

// IsExpired treats an expired deadline as equivalent to cancelled for any
// consumer performing new work (spec.md §4.1).
func (c *CallContext) IsExpired(now time.Time) bool { return c.deadline.IsExpired(now) }

// ShouldTreatAsCancelled is the single check a poll_ready/read/write
// implementation should make before doing new work: true if either
// cancelled or the deadline has expired.
func (c *CallContext) ShouldTreatAsCancelled(now time.Time) bool {
	return c.IsCancelled() || c.IsExpired(now)
}

// Budget looks up the Budget of the given kind, if one was configured.
func (c *CallContext) Budget(kind BudgetKind) (*Budget, bool) {
	b, ok := c.budgets[kind]
	return b, ok
}

// Budgets returns a snapshot slice of every configured Budget.
func (c *CallContext) Budgets() []*Budget {
	out := make([]*Budget, 0, len(c.budgets))
	for _, b := range c.budgets {
		out = append(out, b)
	}
	return out
}

// Security returns the attached security snapshot (zero value pre-handshake).
func (c *CallContext) Security() SecurityContextSnapshot { return c.security }

// Logger returns the observability logger attached to this context.
func (c *CallContext) Logger() *observability.Logger { return c.logger }

// Span returns the attached OpenTelemetry span context, used to populate
// the traceparent/tracestate propagation keys (spec.md §6).
func (c *CallContext) Span() trace.SpanContext { return c.span }

// RequestID returns the request.id log field value for this context.
func (c *CallContext) RequestID() string { return c.requestID }

// Execution returns a zero-copy read-only view for passing to poll_ready.
func (c *CallContext) Execution() ExecutionView { return ExecutionView{ctx: c} }
