// Package tck is the contract test kit: exported, black-box test suites
// that any transport/codec/service implementer runs against their own
// types to get conformance coverage for the testable properties in
// spec.md §8, the same way the teacher ships internal/tournament as a
// reusable adapter-conformance harness for competing promise/loop
// implementations.
//
// Every RunXxxSuite function takes *testing.T plus the implementer's
// concrete types (or factories for them) and registers subtests via
// t.Run; it never calls t.Fatal at the package level, so implementers
// can embed a suite inside their own larger test function.
package tck
