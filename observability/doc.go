// Package observability carries the fixed, CI-enforced observability
// contract from spec.md §6: a closed set of metric names, stable labels,
// log fields, trace propagation keys, and the audit event schema, plus the
// SLO policy table and runtime limit configuration that drive automatic
// responses.
//
// Nothing in this package invents a logging framework: [Logger] is a thin
// alias over [github.com/joeycumines/logiface], the teacher's own
// structured-logging dependency, wired to a [log/slog] handler via
// github.com/joeycumines/logiface-slog so that trace context
// (go.opentelemetry.io/otel/trace) flows through for free.
package observability
