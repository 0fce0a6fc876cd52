package pipeline

import (
	"fmt"

	"github.com/hlieu5402-collab/spark2026-sub000/callctx"
	"github.com/hlieu5402-collab/spark2026-sub000/errtax"
)

// Direction is the set of directions a HandlerEntry participates in.
type Direction int

const (
	Inbound Direction = iota
	Outbound
	Duplex
)

func (d Direction) String() string {
	switch d {
	case Inbound:
		return "inbound"
	case Outbound:
		return "outbound"
	case Duplex:
		return "duplex"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Action is a handler's verdict after processing one event.
type Action int

const (
	// Continue forwards the event to the next matching handler in the chain.
	Continue Action = iota
	// Consume stops the dispatch successfully; no further handler runs.
	Consume
	// Fail stops the dispatch with a CoreError, which the caller routes to
	// an errtax.AutoResponder.
	Fail
)

// Handler processes inbound and/or outbound events for one pipeline
// stage. A handler registered with Direction Inbound is never asked to
// handle outbound events and vice versa; Duplex handlers see both.
type Handler interface {
	HandleInbound(ctx *callctx.CallContext, event any) (Action, *errtax.CoreError)
	HandleOutbound(ctx *callctx.CallContext, event any) (Action, *errtax.CoreError)
}

// HandlerEntry names and positions one Handler within a pipeline's chain.
type HandlerEntry struct {
	Name      string
	Direction Direction
	Category  string
	Handler   Handler
}
