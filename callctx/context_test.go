package callctx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBuilderDefaults(t *testing.T) {
	ctx := NewBuilder().Build()

	require.False(t, ctx.IsCancelled())
	require.False(t, ctx.Deadline().IsSet())
	require.NotNil(t, ctx.Logger())

	flow, ok := ctx.Budget(BudgetFlow)
	require.True(t, ok)
	require.Equal(t, UnboundedLimit, flow.Limit())
}

func TestBuilderWithOptions(t *testing.T) {
	now := time.Now()
	decode := NewBudget(BudgetDecode, 64)
	sec := SecurityContextSnapshot{Identity: "svc-a", PeerIdentity: "svc-b"}

	ctx := NewBuilder().
		WithDeadline(At(now.Add(time.Minute))).
		WithBudget(decode).
		WithSecurity(sec).
		WithRequestID("req-1").
		Build()

	require.True(t, ctx.Deadline().IsSet())
	require.Equal(t, sec, ctx.Security())
	require.Equal(t, "req-1", ctx.RequestID())

	got, ok := ctx.Budget(BudgetDecode)
	require.True(t, ok)
	require.Same(t, decode, got)
}

func TestCallContextCancelPropagation(t *testing.T) {
	parent := NewBuilder().Build()
	child := parent.DeriveChild(ChildOptions{})
	grandchild := child.DeriveChild(ChildOptions{})

	parent.Cancel("shutdown")

	require.True(t, child.IsCancelled())
	require.True(t, grandchild.IsCancelled())
}

func TestCallContextCancelDoesNotPropagateUpward(t *testing.T) {
	parent := NewBuilder().Build()
	child := parent.DeriveChild(ChildOptions{})

	child.Cancel("local-only")

	require.False(t, parent.IsCancelled())
}

func TestDeriveChildTightensDeadline(t *testing.T) {
	now := time.Now()
	parent := NewBuilder().WithDeadline(At(now.Add(time.Hour))).Build()

	tighter := At(now.Add(time.Minute))
	child := parent.DeriveChild(ChildOptions{Deadline: tighter})

	instant, ok := child.Deadline().Instant()
	require.True(t, ok)
	require.True(t, instant.Equal(now.Add(time.Minute)))
}

func TestDeriveChildCannotLoosenDeadline(t *testing.T) {
	now := time.Now()
	parent := NewBuilder().WithDeadline(At(now.Add(time.Minute))).Build()

	looser := At(now.Add(time.Hour))
	child := parent.DeriveChild(ChildOptions{Deadline: looser})

	instant, ok := child.Deadline().Instant()
	require.True(t, ok)
	require.True(t, instant.Equal(now.Add(time.Minute)), "child deadline must never be later than parent's")
}

func TestDeriveChildInheritsBudgetsByReference(t *testing.T) {
	flow := NewBudget(BudgetFlow, 100)
	parent := NewBuilder().WithBudget(flow).Build()
	child := parent.DeriveChild(ChildOptions{})

	childFlow, ok := child.Budget(BudgetFlow)
	require.True(t, ok)
	require.Same(t, flow, childFlow)

	childFlow.TryConsume(10)
	require.EqualValues(t, 90, flow.Snapshot().Remaining, "budgets are shared by reference across derived contexts")
}

func TestDeriveChildExtraBudgetOverridesByKind(t *testing.T) {
	parent := NewBuilder().Build()
	narrower := NewBudget(BudgetDecode, 8)
	child := parent.DeriveChild(ChildOptions{ExtraBudgets: []*Budget{narrower}})

	got, ok := child.Budget(BudgetDecode)
	require.True(t, ok)
	require.Same(t, narrower, got)
}

func TestDeriveChildSecurityReplacement(t *testing.T) {
	parent := NewBuilder().WithSecurity(SecurityContextSnapshot{Identity: "old"}).Build()
	child := parent.DeriveChild(ChildOptions{Security: SecurityContextSnapshot{Identity: "new"}})

	require.Equal(t, "new", child.Security().Identity)
	require.Equal(t, "old", parent.Security().Identity)
}

func TestShouldTreatAsCancelled(t *testing.T) {
	now := time.Now()
	ctx := NewBuilder().WithDeadline(At(now.Add(-time.Second))).Build()
	require.True(t, ctx.ShouldTreatAsCancelled(now))

	fresh := NewBuilder().Build()
	require.False(t, fresh.ShouldTreatAsCancelled(now))
}

func TestExecutionViewIsReadOnly(t *testing.T) {
	ctx := NewBuilder().Build()
	view := ctx.Execution()

	require.False(t, view.IsCancelled())
	ctx.Cancel("done")
	require.True(t, view.IsCancelled(), "view reflects live state, not a stale copy")
}

type recordingExecutor struct {
	submitted []string
}

func (e *recordingExecutor) Submit(fn func())         { e.submitted = append(e.submitted, "submit"); fn() }
func (e *recordingExecutor) SubmitInternal(fn func())  { e.submitted = append(e.submitted, "internal"); fn() }

func TestExecutorAbstractionIsSatisfiable(t *testing.T) {
	var exec Executor = &recordingExecutor{}
	ran := false
	exec.Submit(func() { ran = true })
	require.True(t, ran)

	rec := exec.(*recordingExecutor)
	exec.SubmitInternal(func() {})
	require.Equal(t, []string{"submit", "internal"}, rec.submitted)
}
