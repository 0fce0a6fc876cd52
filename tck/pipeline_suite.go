package tck

import (
	"sync"
	"testing"

	"github.com/hlieu5402-collab/spark2026-sub000/callctx"
	"github.com/hlieu5402-collab/spark2026-sub000/errtax"
	"github.com/hlieu5402-collab/spark2026-sub000/pipeline"
	"github.com/stretchr/testify/require"
)

type tckPassthroughHandler struct{}

func (tckPassthroughHandler) HandleInbound(ctx *callctx.CallContext, event any) (pipeline.Action, *errtax.CoreError) {
	return pipeline.Continue, nil
}

func (tckPassthroughHandler) HandleOutbound(ctx *callctx.CallContext, event any) (pipeline.Action, *errtax.CoreError) {
	return pipeline.Continue, nil
}

// RunHotSwapSuite exercises the hot-swap visibility and no-mixed-execution
// properties from spec.md §8 against a fresh pipeline.Pipeline.
func RunHotSwapSuite(t *testing.T, ctx *callctx.CallContext) {
	t.Run("replace_handler bumps epoch and is visible in a fresh snapshot", func(t *testing.T) {
		p := pipeline.New()
		require.NoError(t, p.AddHandlerAfter("", pipeline.HandlerEntry{
			Name: "auth", Direction: pipeline.Duplex, Handler: tckPassthroughHandler{},
		}))
		epochBefore := p.Epoch()

		replacement := tckPassthroughHandler{}
		require.NoError(t, p.ReplaceHandler("auth", pipeline.HandlerEntry{
			Name: "auth", Direction: pipeline.Duplex, Handler: replacement,
		}))

		require.Equal(t, epochBefore+1, p.Epoch())
		snap := p.Snapshot()
		require.Len(t, snap, 1)
		require.Equal(t, "auth", snap[0].Name)
	})

	t.Run("concurrent dispatch survives a handler replacement mid-flight", func(t *testing.T) {
		p := pipeline.New()
		require.NoError(t, p.AddHandlerAfter("", pipeline.HandlerEntry{
			Name: "h", Direction: pipeline.Duplex, Handler: tckPassthroughHandler{},
		}))

		var wg sync.WaitGroup
		for i := 0; i < 1000; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := p.DispatchInbound(ctx, struct{}{})
				require.Nil(t, err)
			}()
		}
		require.NoError(t, p.ReplaceHandler("h", pipeline.HandlerEntry{
			Name: "h", Direction: pipeline.Duplex, Handler: tckPassthroughHandler{},
		}))
		wg.Wait()
	})
}
