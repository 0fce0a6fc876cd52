package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSLOPolicyTableHysteresis(t *testing.T) {
	table := NewSLOPolicyTable([]SLORule{
		{Name: "error-rate", ActivatePercent: 5, DeactivatePercent: 2, Action: ActionCircuitBreak},
	})

	require.Empty(t, table.Evaluate(1))
	require.Empty(t, table.Evaluate(4), "below activate threshold stays inactive")

	triggered := table.Evaluate(6)
	require.Len(t, triggered, 1)
	require.Equal(t, ActionCircuitBreak, triggered[0].Action)

	// still active in the hysteresis band between deactivate and activate
	require.Len(t, table.Evaluate(3), 1)

	require.Empty(t, table.Evaluate(1), "below deactivate threshold clears")
}

func TestRateLimitEnforcer(t *testing.T) {
	enforcer := NewRateLimitEnforcer(map[time.Duration]int{time.Second: 2})

	_, ok1 := enforcer.Allow("route-a")
	_, ok2 := enforcer.Allow("route-a")
	require.True(t, ok1)
	require.True(t, ok2)

	retryAt, ok3 := enforcer.Allow("route-a")
	require.False(t, ok3)
	require.False(t, retryAt.IsZero())
}
