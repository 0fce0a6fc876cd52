package transport_test

import (
	"testing"
	"time"

	"github.com/hlieu5402-collab/spark2026-sub000/callctx"
	"github.com/hlieu5402-collab/spark2026-sub000/errtax"
	"github.com/hlieu5402-collab/spark2026-sub000/pipeline"
	"github.com/hlieu5402-collab/spark2026-sub000/ready"
	"github.com/hlieu5402-collab/spark2026-sub000/transport"
	"github.com/stretchr/testify/require"
)

func echoLayer(tag string) transport.Layer {
	return func(next transport.Service) transport.Service {
		return transport.ServiceFunc{
			CallFunc: func(ctx *callctx.CallContext, req any) (any, error) {
				resp, err := next.Call(ctx, req)
				if err != nil {
					return nil, err
				}
				return tag + ":" + resp.(string), nil
			},
		}
	}
}

func TestChainWrapsOuterToInner(t *testing.T) {
	terminal := transport.ServiceFunc{
		CallFunc: func(ctx *callctx.CallContext, req any) (any, error) {
			return req.(string), nil
		},
	}

	svc := transport.Chain(terminal, echoLayer("outer"), echoLayer("inner"))

	resp, err := svc.Call(callctx.NewBuilder().Build(), "hi")
	require.NoError(t, err)
	require.Equal(t, "outer:inner:hi", resp)
}

func TestServiceFuncDefaultsToReady(t *testing.T) {
	svc := transport.ServiceFunc{
		CallFunc: func(ctx *callctx.CallContext, req any) (any, error) { return req, nil },
	}
	state, err := svc.PollReady(callctx.NewBuilder().Build(), time.Now())
	require.NoError(t, err)
	require.Equal(t, ready.KindReady, state.Kind())
}

func TestServerChannelAcceptBuildsPipelineFromSelectedInitializer(t *testing.T) {
	outcome := transport.HandshakeOutcome{Version: transport.Version{Major: 1}}

	sc := transport.NewServerChannel(func(o transport.HandshakeOutcome) (transport.PipelineInitializer, *errtax.CoreError) {
		return func(p *pipeline.Pipeline, o transport.HandshakeOutcome) error {
			return p.AddHandlerAfter("", pipeline.HandlerEntry{Name: "root", Direction: pipeline.Duplex, Handler: noopHandler{}})
		}, nil
	})

	p, err := sc.Accept(outcome)
	require.NoError(t, err)
	require.Len(t, p.Snapshot(), 1)
}

type noopHandler struct{}

func (noopHandler) HandleInbound(ctx *callctx.CallContext, event any) (pipeline.Action, *errtax.CoreError) {
	return pipeline.Continue, nil
}
func (noopHandler) HandleOutbound(ctx *callctx.CallContext, event any) (pipeline.Action, *errtax.CoreError) {
	return pipeline.Continue, nil
}
