package tck

import (
	"testing"

	"github.com/hlieu5402-collab/spark2026-sub000/callctx"
	"github.com/hlieu5402-collab/spark2026-sub000/codec"
	"github.com/stretchr/testify/require"
)

// RunCodecSuite exercises the Encode/Decode round-trip law from spec.md
// §8: decode(encode(v)) == Complete(v). equal compares a decoded value
// back against value (e.g. reflect.DeepEqual or a domain-specific
// comparator). ctx must carry no Decode budget (or a sufficiently large
// one) for the round-trip subtest to succeed unconditionally.
func RunCodecSuite(t *testing.T, c codec.Codec, ctx *callctx.CallContext, value any, bufSize int, equal func(got, want any) bool) {
	t.Run("decode(encode(v)) == Complete(v)", func(t *testing.T) {
		out := codec.NewWritableBuffer(make([]byte, 0, bufSize))
		payload, err := c.Encode(ctx, value, out)
		require.NoError(t, err)

		in := codec.NewReadableBuffer(payload.Bytes)
		outcome, err := c.Decode(ctx, in)
		require.NoError(t, err)
		require.Equal(t, codec.Complete, outcome.Kind())
		require.True(t, equal(outcome.Value(), value), "decoded value does not match the encoded value")
	})

	t.Run("truncated input reports Incomplete before FIN", func(t *testing.T) {
		out := codec.NewWritableBuffer(make([]byte, 0, bufSize))
		payload, err := c.Encode(ctx, value, out)
		require.NoError(t, err)
		if len(payload.Bytes) < 2 {
			t.Skip("encoded payload too small to truncate meaningfully")
		}

		truncated := codec.NewReadableBuffer(payload.Bytes[:len(payload.Bytes)-1])
		outcome, err := c.Decode(ctx, truncated)
		require.NoError(t, err)
		require.Equal(t, codec.Incomplete, outcome.Kind())
	})

	t.Run("decode budget denial maps to protocol.budget_exceeded", func(t *testing.T) {
		exhausted := ctx.DeriveChild(callctx.ChildOptions{
			ExtraBudgets: []*callctx.Budget{callctx.NewBudget(callctx.BudgetDecode, 0)},
		})
		out := codec.NewWritableBuffer(make([]byte, 0, bufSize))
		payload, err := c.Encode(ctx, value, out)
		require.NoError(t, err)

		in := codec.NewReadableBuffer(payload.Bytes)
		_, err = c.Decode(exhausted, in)
		require.Error(t, err, "codec must consult ctx.Budget(BudgetDecode) before decoding (spec.md §6)")
	})
}
