package ready

import (
	"testing"
	"time"

	"github.com/hlieu5402-collab/spark2026-sub000/callctx"
	"github.com/stretchr/testify/require"
)

func TestGuardPassesForFreshContext(t *testing.T) {
	ctx := callctx.NewBuilder().Build()
	require.Nil(t, Guard(ctx, time.Now()))
}

func TestGuardCatchesCancelledContext(t *testing.T) {
	ctx := callctx.NewBuilder().Build()
	ctx.Cancel("stop")

	err := Guard(ctx, time.Now())
	require.NotNil(t, err)
	require.Equal(t, "runtime.shutdown", err.Code)
}

func TestGuardCatchesExpiredDeadline(t *testing.T) {
	now := time.Now()
	ctx := callctx.NewBuilder().WithDeadline(callctx.At(now.Add(-time.Second))).Build()

	err := Guard(ctx, now)
	require.NotNil(t, err)
	require.Equal(t, "transport.timeout", err.Code)
}
