// Package callctx provides [CallContext]: the bundle of cancellation,
// deadline, budget(s), security snapshot, and observability propagation
// shared by an in-flight operation.
//
// # Sharing model
//
// CallContext, [Cancellation], and [Budget] are shared by reference across
// goroutines. All mutation goes through interior atomics; there is no
// garbage collector dependency and no global state beyond what a caller
// explicitly constructs. Child contexts form a tree rooted at a builder's
// [CallContext.DeriveChild] call; cancellation flows down the tree and
// never forms a cycle.
//
// # Memory ordering
//
// [Cancellation.Cancel] happens-before every subsequent [Cancellation.IsCancelled]
// that observes true, so side effects published by the canceller before the
// flip are visible to any observer that sees the cancellation. Once observed
// true, a call to IsCancelled on the same Cancellation (or any of its
// children) never subsequently returns false.
package callctx
