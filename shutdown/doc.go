// Package shutdown implements the graceful-shutdown coordinator from
// spec.md §4.5: drive a set of registered targets through
// FIN → await half-close → release, escalating to a forced close on
// deadline expiry. A target whose await_closed reports an error is
// recorded as Failed and is not force-closed.
//
// Concurrent await_closed fan-out uses golang.org/x/sync/errgroup, the
// same dependency the teacher's wider dependency graph already commits
// to for goroutine-group lifecycle management, generalized here from
// "wait for N tasks, stop on first error" to "wait for N tasks, record
// each outcome independently" (errgroup.Group's zero value is used
// purely for the join; per-target outcomes are written to distinct
// slice indices, so there is no shared-state race).
//
// Clock is a pluggable time source, following the teacher's own
// testability pattern of injectable `timeNow`/`timeNewTicker` package
// vars (github.com/joeycumines/go-catrate, limiter.go) generalized into
// an interface so tests can drive a [ManualClock] deterministically
// instead of sleeping on a wall clock.
package shutdown
