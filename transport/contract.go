package transport

import (
	"github.com/hlieu5402-collab/spark2026-sub000/callctx"
	"github.com/hlieu5402-collab/spark2026-sub000/errtax"
	"github.com/hlieu5402-collab/spark2026-sub000/pipeline"
	"github.com/hlieu5402-collab/spark2026-sub000/ready"
)

// Transport is the contract every concrete transport (TCP/TLS/QUIC/UDP)
// implements and every component above it consumes uniformly (spec.md
// §6). PollReady classifies socket backpressure per the ready.Poller
// contract; Read/Write report Pending rather than blocking, consistent
// with the cooperative-task model of spec.md §5.
type Transport interface {
	ready.Poller

	// Read copies up to len(buf) bytes into buf. pending reports that no
	// bytes are currently available and the caller's waker has been
	// registered; n is meaningful only when pending is false and err is
	// nil.
	Read(ctx *callctx.CallContext, buf []byte) (n int, pending bool, err error)

	// Write copies up to len(buf) bytes from buf into the transport's
	// send buffer, with pending/n the write-direction mirror of Read.
	Write(ctx *callctx.CallContext, buf []byte) (n int, pending bool, err error)

	// Flush requests any buffered output be sent, blocking only on
	// cancellation/expiry of ctx (never on backpressure — a transport
	// that cannot flush immediately returns an error classified
	// Retryable rather than blocking the caller).
	Flush(ctx *callctx.CallContext) error

	// CloseGraceful initiates a half-close (FIN) for reason.
	CloseGraceful(reason string)
	// AwaitClosed resolves once the half-close has completed or failed.
	AwaitClosed() <-chan error
	// ForceClose immediately releases the transport's resources.
	ForceClose()
}

// PipelineInitializer populates a freshly accepted connection's Pipeline
// with the handler chain appropriate to the negotiated HandshakeOutcome.
type PipelineInitializer func(p *pipeline.Pipeline, outcome HandshakeOutcome) error

// PipelineInitializerSelector picks the PipelineInitializer for an
// accepted connection's handshake outcome, per spec.md §2's control-flow
// narrative ("the selected initializer populates a pipeline").
type PipelineInitializerSelector func(outcome HandshakeOutcome) (PipelineInitializer, *errtax.CoreError)

// ServerChannel accepts a transport's negotiated HandshakeOutcome,
// selects a PipelineInitializer, and builds the resulting Pipeline. The
// concrete transport owns the handshake bytes/negotiation timing; this
// type only wires the outcome to pipeline construction, keeping the core
// agnostic to any specific wire format (spec.md §1's non-goals).
type ServerChannel struct {
	Select PipelineInitializerSelector
}

// NewServerChannel returns a ServerChannel using selector to choose the
// pipeline initializer for each accepted connection's handshake outcome.
func NewServerChannel(selector PipelineInitializerSelector) *ServerChannel {
	return &ServerChannel{Select: selector}
}

// Accept builds and initializes a fresh Pipeline for outcome, using the
// selector's chosen PipelineInitializer.
func (s *ServerChannel) Accept(outcome HandshakeOutcome) (*pipeline.Pipeline, error) {
	init, coreErr := s.Select(outcome)
	if coreErr != nil {
		return nil, coreErr
	}
	p := pipeline.New()
	if err := init(p, outcome); err != nil {
		return nil, err
	}
	return p, nil
}
