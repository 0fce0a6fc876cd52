package codec

import (
	"fmt"

	"github.com/hlieu5402-collab/spark2026-sub000/callctx"
	"github.com/hlieu5402-collab/spark2026-sub000/errtax"
)

// EncodedPayload is the result of a successful Encode: the bytes written
// into the caller-supplied WritableBuffer.
type EncodedPayload struct {
	Bytes []byte
}

// OutcomeKind discriminates DecodeOutcome.
type OutcomeKind int

const (
	// Complete indicates a full value was decoded.
	Complete OutcomeKind = iota
	// Incomplete indicates more bytes are needed; the caller should not
	// treat this as an error and should retry once more bytes arrive.
	Incomplete
	// Invalid indicates the bytes present could never form a valid
	// frame, carrying the CoreError describing why.
	Invalid
)

func (k OutcomeKind) String() string {
	switch k {
	case Complete:
		return "complete"
	case Incomplete:
		return "incomplete"
	case Invalid:
		return "invalid"
	default:
		return fmt.Sprintf("outcome_kind(%d)", int(k))
	}
}

// DecodeOutcome is the tagged union returned by Decode (spec.md §6):
// Complete(value), Incomplete, or Invalid(CoreError).
type DecodeOutcome struct {
	kind  OutcomeKind
	value any
	err   *errtax.CoreError
}

// CompleteOutcome constructs a Complete outcome carrying value.
func CompleteOutcome(value any) DecodeOutcome {
	return DecodeOutcome{kind: Complete, value: value}
}

// IncompleteOutcome constructs an Incomplete outcome.
func IncompleteOutcome() DecodeOutcome {
	return DecodeOutcome{kind: Incomplete}
}

// InvalidOutcome constructs an Invalid outcome carrying err.
func InvalidOutcome(err *errtax.CoreError) DecodeOutcome {
	return DecodeOutcome{kind: Invalid, err: err}
}

// Kind reports which variant this outcome holds.
func (o DecodeOutcome) Kind() OutcomeKind { return o.kind }

// Value returns the decoded value. Panics if Kind() != Complete.
func (o DecodeOutcome) Value() any {
	if o.kind != Complete {
		panic("codec: Value called on non-Complete DecodeOutcome")
	}
	return o.value
}

// Err returns the error describing an Invalid outcome. Panics if
// Kind() != Invalid.
func (o DecodeOutcome) Err() *errtax.CoreError {
	if o.kind != Invalid {
		panic("codec: Err called on non-Invalid DecodeOutcome")
	}
	return o.err
}

// Codec is the wire encode/decode contract every codec implements
// uniformly (spec.md §6). Implementations must consult ConsumeBudget
// before doing any decode work and must honor FINObserved on their
// input buffer.
type Codec interface {
	Encode(ctx *callctx.CallContext, value any, out *WritableBuffer) (EncodedPayload, error)
	Decode(ctx *callctx.CallContext, in *ReadableBuffer) (DecodeOutcome, error)
}

// ConsumeBudget consults ctx's Decode budget for n units (bytes, frames,
// or whatever unit the codec measures depth/size in), returning a
// protocol.budget_exceeded CoreError if denied. If no Decode budget is
// configured on ctx, every request is granted (spec.md §4.1's default
// unbounded-budget behavior).
func ConsumeBudget(ctx *callctx.CallContext, n int64) *errtax.CoreError {
	b, ok := ctx.Budget(callctx.BudgetDecode)
	if !ok {
		return nil
	}
	result := b.TryConsume(n)
	if result.Decision == callctx.Denied {
		return errtax.New("protocol.budget_exceeded", nil)
	}
	return nil
}
