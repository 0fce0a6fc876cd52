package callctx

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBudgetTryConsumeGrantsUntilExhausted(t *testing.T) {
	b := NewBudget(BudgetDecode, 10)

	r1 := b.TryConsume(6)
	require.Equal(t, Granted, r1.Decision)
	require.EqualValues(t, 4, r1.Remaining)

	r2 := b.TryConsume(5)
	require.Equal(t, Denied, r2.Decision)
	require.EqualValues(t, 4, r2.Snapshot.Remaining)

	r3 := b.TryConsume(4)
	require.Equal(t, Granted, r3.Decision)
	require.EqualValues(t, 0, r3.Remaining)
}

func TestBudgetRefundClampsAtLimit(t *testing.T) {
	b := NewBudget(BudgetFlow, 10)
	b.TryConsume(3)

	clamped := b.Refund(100)
	require.True(t, clamped)
	require.EqualValues(t, 10, b.Snapshot().Remaining)
}

func TestBudgetRefundNoClampWithinLimit(t *testing.T) {
	b := NewBudget(BudgetFlow, 10)
	b.TryConsume(5)

	clamped := b.Refund(3)
	require.False(t, clamped)
	require.EqualValues(t, 8, b.Snapshot().Remaining)
}

func TestBudgetUnboundedAlwaysGrants(t *testing.T) {
	b := NewBudget(BudgetConcurrent, UnboundedLimit)
	r := b.TryConsume(1 << 40)
	require.Equal(t, Granted, r.Decision)
}

func TestBudgetConservationUnderConcurrency(t *testing.T) {
	const limit = 1000
	b := NewBudget(BudgetObservability, limit)

	var wg sync.WaitGroup
	var granted atomic.Int64
	for i := 0; i < limit*2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if b.TryConsume(1).Decision == Granted {
				granted.Add(1)
			}
		}()
	}
	wg.Wait()

	require.EqualValues(t, limit, granted.Load())
	require.EqualValues(t, 0, b.Snapshot().Remaining)
}

func TestBudgetKindString(t *testing.T) {
	require.Equal(t, "flow", BudgetFlow.String())
	require.Equal(t, "decode", BudgetDecode.String())
	require.Equal(t, "concurrent", BudgetConcurrent.String())
	require.Equal(t, "observability", BudgetObservability.String())
}
