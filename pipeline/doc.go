// Package pipeline implements the hot-swappable handler chain described
// in spec.md §4.4: an ordered list of handlers dispatching inbound events
// down the chain and outbound events back up, with lifecycle events
// broadcast to subscribers.
//
// The hot-swap mechanism generalizes the teacher's atomic FastState
// pattern (eventloop/state.go) from a single uint64 to a whole
// immutable handler slice: writers build a new []HandlerEntry under a
// mutex and publish it with one atomic.Pointer store, followed by an
// epoch bump, so readers observe snapshot and epoch together without
// ever taking a lock. Because a []HandlerEntry is never mutated after
// publication and Go slices referenced by a local variable keep their
// backing array alive, an in-flight dispatch holding an old snapshot
// reference is the entirety of this package's "deferred reclamation" —
// the garbage collector is the reclaimer, not a hand-rolled refcount.
//
// Lifecycle broadcast follows the teacher's EventTarget
// (eventloop/eventtarget.go) in spirit but not in blocking behavior:
// spec.md requires that a slow subscriber never block the pipeline, so
// Broadcaster delivers over a buffered, non-blocking channel per
// subscriber and counts drops instead of blocking Publish.
package pipeline
