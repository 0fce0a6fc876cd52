// Package ready implements the ReadyState tagged union and the poll_ready
// contract every transport/codec/service implements uniformly: exactly
// one ReadyState per poll, or an error when the caller's CallContext is
// already cancelled or expired.
//
// ReadyState is modeled as a flat struct carrying a Kind discriminant
// plus the payload for whichever kind is set, the same shape the
// teacher's own LoopState/FastState gives a closed enumeration
// (eventloop/state.go) — generalized here from a single atomic state
// machine to a per-poll value type, since ReadyState is "produced...
// consumed...never stored long-term" rather than a persistent state.
// Because BudgetExhausted and Busy are sibling Kind values rather than
// one nested inside the other, "BudgetExhausted wrapped in Busy" is
// structurally unrepresentable — the static guard spec.md calls for is
// the Go type system itself.
package ready
