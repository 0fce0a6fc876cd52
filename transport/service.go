package transport

import (
	"time"

	"github.com/hlieu5402-collab/spark2026-sub000/callctx"
	"github.com/hlieu5402-collab/spark2026-sub000/ready"
)

// Service is the terminal-or-intermediate request/response contract a
// pipeline's inbound chain eventually reaches (spec.md §6).
type Service interface {
	ready.Poller
	Call(ctx *callctx.CallContext, req any) (resp any, err error)
}

// Layer wraps a Service with cross-cutting behavior (metrics, auth,
// rate limiting), composing the same outer-wraps-inner shape the wider
// retrieval pack's HTTP-facing middleware uses (func(Service) Service),
// generalized here to the protocol-agnostic Service contract.
type Layer func(next Service) Service

// Chain composes layers around a terminal service so the first Layer in
// layers is outermost (the first to see a call, the last to see its
// result).
func Chain(svc Service, layers ...Layer) Service {
	for i := len(layers) - 1; i >= 0; i-- {
		svc = layers[i](svc)
	}
	return svc
}

// ServiceFunc adapts plain poll/call functions into a Service, analogous
// to http.HandlerFunc — useful for terminal services whose backpressure
// logic is simple enough to express inline.
type ServiceFunc struct {
	PollReadyFunc func(ctx *callctx.CallContext, now time.Time) (ready.State, error)
	CallFunc      func(ctx *callctx.CallContext, req any) (any, error)
}

var _ Service = ServiceFunc{}

func (f ServiceFunc) PollReady(ctx *callctx.CallContext, now time.Time) (ready.State, error) {
	if f.PollReadyFunc == nil {
		return ready.Ready(), nil
	}
	return f.PollReadyFunc(ctx, now)
}

func (f ServiceFunc) Call(ctx *callctx.CallContext, req any) (any, error) {
	return f.CallFunc(ctx, req)
}
