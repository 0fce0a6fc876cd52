package codec

import (
	"bytes"
	"fmt"

	"github.com/hlieu5402-collab/spark2026-sub000/callctx"
	"github.com/hlieu5402-collab/spark2026-sub000/errtax"
)

// LineCodec is a minimal newline-delimited Codec over string values,
// grounded in spec.md §1's "line" codec family. It exists in this module
// purely as a reference implementation exercising the Codec contract
// (budget consultation, half-close discard) — concrete wire-protocol
// codecs (RTP/RTCP/SDP/SIP) remain out of scope per spec.md §1.
type LineCodec struct {
	// Delimiter is the frame terminator; defaults to '\n' if zero.
	Delimiter byte
}

var _ Codec = (*LineCodec)(nil)

func (c *LineCodec) delimiter() byte {
	if c.Delimiter == 0 {
		return '\n'
	}
	return c.Delimiter
}

// Encode writes value (must be a string) followed by the delimiter into
// out.
func (c *LineCodec) Encode(ctx *callctx.CallContext, value any, out *WritableBuffer) (EncodedPayload, error) {
	s, ok := value.(string)
	if !ok {
		return EncodedPayload{}, errtax.New("protocol.type_mismatch", fmt.Errorf("codec: LineCodec.Encode expects string, got %T", value))
	}
	if coreErr := ConsumeBudget(ctx, int64(len(s)+1)); coreErr != nil {
		return EncodedPayload{}, coreErr
	}
	out.Write([]byte(s))
	out.Write([]byte{c.delimiter()})
	return EncodedPayload{Bytes: out.Bytes()}, nil
}

// Decode scans in for a complete delimited line. If none is found and
// FINObserved is set, the pending partial bytes are discarded and an
// Invalid outcome is returned per spec.md §6's half-close rule; otherwise
// an Incomplete outcome asks the caller to supply more bytes.
func (c *LineCodec) Decode(ctx *callctx.CallContext, in *ReadableBuffer) (DecodeOutcome, error) {
	remaining := in.Remaining()
	idx := bytes.IndexByte(remaining, c.delimiter())
	if idx < 0 {
		if in.FINObserved() {
			in.Advance(in.Len())
			return InvalidOutcome(errtax.New("protocol.decode", fmt.Errorf("codec: LineCodec.Decode: truncated frame discarded after FIN"))), nil
		}
		return IncompleteOutcome(), nil
	}

	if coreErr := ConsumeBudget(ctx, int64(idx+1)); coreErr != nil {
		return DecodeOutcome{}, coreErr
	}

	line := string(remaining[:idx])
	in.Advance(idx + 1)
	return CompleteOutcome(line), nil
}
