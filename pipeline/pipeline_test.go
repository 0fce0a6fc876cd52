package pipeline

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/hlieu5402-collab/spark2026-sub000/callctx"
	"github.com/hlieu5402-collab/spark2026-sub000/errtax"
	"github.com/stretchr/testify/require"
)

type stubHandler struct {
	name      string
	action    Action
	err       *errtax.CoreError
	inbound   atomic.Int64
	outbound  atomic.Int64
}

func (h *stubHandler) HandleInbound(*callctx.CallContext, any) (Action, *errtax.CoreError) {
	h.inbound.Add(1)
	return h.action, h.err
}

func (h *stubHandler) HandleOutbound(*callctx.CallContext, any) (Action, *errtax.CoreError) {
	h.outbound.Add(1)
	return h.action, h.err
}

func TestAddHandlerAfterAtHeadAndAnchor(t *testing.T) {
	p := New()
	a := &stubHandler{name: "a", action: Continue}
	b := &stubHandler{name: "b", action: Continue}
	c := &stubHandler{name: "c", action: Continue}

	require.NoError(t, p.AddHandlerAfter("", HandlerEntry{Name: "a", Direction: Duplex, Handler: a}))
	require.NoError(t, p.AddHandlerAfter("a", HandlerEntry{Name: "c", Direction: Duplex, Handler: c}))
	require.NoError(t, p.AddHandlerAfter("a", HandlerEntry{Name: "b", Direction: Duplex, Handler: b}))

	names := names(p.Snapshot())
	require.Equal(t, []string{"a", "b", "c"}, names)
	require.EqualValues(t, 3, p.Epoch())
}

func names(entries []HandlerEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestAddHandlerAfterUnknownAnchor(t *testing.T) {
	p := New()
	err := p.AddHandlerAfter("missing", HandlerEntry{Name: "x", Handler: &stubHandler{}})
	require.Error(t, err)
	var notFound *ErrHandlerNotFound
	require.ErrorAs(t, err, &notFound)
}

func TestRemoveAndReplaceHandler(t *testing.T) {
	p := New()
	require.NoError(t, p.AddHandlerAfter("", HandlerEntry{Name: "a", Direction: Duplex, Handler: &stubHandler{}}))
	require.NoError(t, p.AddHandlerAfter("a", HandlerEntry{Name: "b", Direction: Duplex, Handler: &stubHandler{}}))

	replacement := &stubHandler{name: "b2", action: Continue}
	require.NoError(t, p.ReplaceHandler("b", HandlerEntry{Name: "b2", Direction: Duplex, Handler: replacement}))
	require.Equal(t, []string{"a", "b2"}, names(p.Snapshot()))

	require.NoError(t, p.RemoveHandler("a"))
	require.Equal(t, []string{"b2"}, names(p.Snapshot()))

	require.EqualValues(t, 4, p.Epoch())
}

func TestRemoveUnknownHandler(t *testing.T) {
	p := New()
	err := p.RemoveHandler("nope")
	require.Error(t, err)
}

func TestDispatchInboundStopsOnConsume(t *testing.T) {
	p := New()
	first := &stubHandler{name: "first", action: Continue}
	second := &stubHandler{name: "second", action: Consume}
	third := &stubHandler{name: "third", action: Continue}
	require.NoError(t, p.AddHandlerAfter("", HandlerEntry{Name: "first", Direction: Duplex, Handler: first}))
	require.NoError(t, p.AddHandlerAfter("first", HandlerEntry{Name: "second", Direction: Inbound, Handler: second}))
	require.NoError(t, p.AddHandlerAfter("second", HandlerEntry{Name: "third", Direction: Duplex, Handler: third}))

	ctx := callctx.NewBuilder().Build()
	consumed, err := p.DispatchInbound(ctx, "event")

	require.True(t, consumed)
	require.Nil(t, err)
	require.EqualValues(t, 1, first.inbound.Load())
	require.EqualValues(t, 1, second.inbound.Load())
	require.EqualValues(t, 0, third.inbound.Load())
}

func TestDispatchInboundSkipsOutboundOnly(t *testing.T) {
	p := New()
	outboundOnly := &stubHandler{action: Continue}
	require.NoError(t, p.AddHandlerAfter("", HandlerEntry{Name: "out", Direction: Outbound, Handler: outboundOnly}))

	ctx := callctx.NewBuilder().Build()
	consumed, err := p.DispatchInbound(ctx, "event")
	require.False(t, consumed)
	require.Nil(t, err)
	require.EqualValues(t, 0, outboundOnly.inbound.Load())
}

func TestDispatchOutboundWalksReverse(t *testing.T) {
	p := New()
	var order []string
	var mu sync.Mutex
	makeHandler := func(name string) Handler {
		return &recordingHandler{name: name, order: &order, mu: &mu}
	}
	require.NoError(t, p.AddHandlerAfter("", HandlerEntry{Name: "a", Direction: Duplex, Handler: makeHandler("a")}))
	require.NoError(t, p.AddHandlerAfter("a", HandlerEntry{Name: "b", Direction: Duplex, Handler: makeHandler("b")}))
	require.NoError(t, p.AddHandlerAfter("b", HandlerEntry{Name: "c", Direction: Duplex, Handler: makeHandler("c")}))

	ctx := callctx.NewBuilder().Build()
	_, err := p.DispatchOutbound(ctx, "event")
	require.Nil(t, err)
	require.Equal(t, []string{"c", "b", "a"}, order)
}

type recordingHandler struct {
	name  string
	order *[]string
	mu    *sync.Mutex
}

func (h *recordingHandler) HandleInbound(*callctx.CallContext, any) (Action, *errtax.CoreError) {
	return Continue, nil
}

func (h *recordingHandler) HandleOutbound(*callctx.CallContext, any) (Action, *errtax.CoreError) {
	h.mu.Lock()
	*h.order = append(*h.order, h.name)
	h.mu.Unlock()
	return Continue, nil
}

func TestDispatchFailPropagatesCoreError(t *testing.T) {
	p := New()
	wantErr := errtax.New("protocol.decode", nil)
	failing := &stubHandler{action: Fail, err: wantErr}
	require.NoError(t, p.AddHandlerAfter("", HandlerEntry{Name: "f", Direction: Duplex, Handler: failing}))

	ctx := callctx.NewBuilder().Build()
	consumed, err := p.DispatchInbound(ctx, "event")
	require.False(t, consumed)
	require.Same(t, wantErr, err)
}

func TestBroadcasterDropsOnFullBuffer(t *testing.T) {
	b := NewBroadcaster()
	sub := b.Subscribe(1)

	b.Publish(Event{Kind: HandlerAdded})
	b.Publish(Event{Kind: HandlerAdded}) // buffer full, should drop

	require.EqualValues(t, 1, sub.Dropped())
}

// TestHotSwapUnderLoad exercises spec.md §8 scenario 5: dispatching many
// concurrent inbound events while concurrently replacing a handler must
// never observe a "mixed" chain, epoch must advance by exactly one, and
// the post-swap snapshot must contain the replacement.
func TestHotSwapUnderLoad(t *testing.T) {
	p := New()
	original := &stubHandler{name: "auth", action: Continue}
	replacement := &stubHandler{name: "auth", action: Continue}
	require.NoError(t, p.AddHandlerAfter("", HandlerEntry{Name: "auth", Direction: Duplex, Handler: original}))

	const events = 10000
	ctx := callctx.NewBuilder().Build()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		require.NoError(t, p.ReplaceHandler("auth", HandlerEntry{Name: "auth", Direction: Duplex, Handler: replacement}))
	}()

	for i := 0; i < events; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			entries := p.Snapshot()
			// every dispatch uses exactly one snapshot end-to-end: walking
			// `entries` can never observe a mix of pre- and post-swap
			// handlers because entries is an immutable slice reference.
			require.Len(t, entries, 1)
			_, _ = p.DispatchInbound(ctx, "event")
		}()
	}
	wg.Wait()

	require.EqualValues(t, 2, p.Epoch(), "add + replace")
	final := p.Snapshot()
	require.Same(t, replacement, final[0].Handler)
}
