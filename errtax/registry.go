package errtax

import "strings"

// CodeEntry is one row of the stable-code registry: the category it maps
// to, a canonical developer-facing message, and a remediation hint.
type CodeEntry struct {
	Category Category
	Message  string
	Hint     string
}

// codeRegistry is the enumerated set of well-known stable codes from
// spec.md §4.6/§7. Codes not present here are "unknown": LookupCode
// reports known=false and callers fall back to the raw DomainError
// message with no hint — the fallback shape a CI test enforces.
var codeRegistry = map[string]CodeEntry{
	"transport.io": {
		Category: CategoryRetryable,
		Message:  "Transport I/O error; the operation may succeed on retry",
		Hint:     "Check upstream health and connection limits before retrying",
	},
	"discovery.stale_read": {
		Category: CategoryRetryable,
		Message:  "Discovery returned a stale read",
		Hint:     "Retry after the configured discovery refresh interval",
	},
	"app.backpressure_applied": {
		Category: CategoryRetryable,
		Message:  "Application applied backpressure",
		Hint:     "Retry after the advertised RetryAfter delay",
	},
	"transport.timeout": {
		Category: CategoryTimeout,
		Message:  "Upstream timed out",
		Hint:     "Check health/limits",
	},
	"runtime.shutdown": {
		Category: CategoryCancelled,
		Message:  "Operation cancelled by runtime shutdown",
		Hint:     "Stop issuing new work against this context",
	},
	"protocol.decode": {
		Category: CategoryProtocolViolation,
		Message:  "Failed to decode a protocol frame",
		Hint:     "Verify both peers negotiated a compatible codec version",
	},
	"protocol.negotiation": {
		Category: CategoryProtocolViolation,
		Message:  "Protocol negotiation failed",
		Hint:     "Check required capability and version compatibility",
	},
	"protocol.type_mismatch": {
		Category: CategoryProtocolViolation,
		Message:  "Decoded value did not match the expected type",
		Hint:     "Verify the codec and route agree on payload schema",
	},
	"router.version_conflict": {
		Category: CategoryProtocolViolation,
		Message:  "Router detected a version conflict",
		Hint:     "Verify the router's version table is up to date",
	},
	"protocol.budget_exceeded": {
		Category: CategoryResourceExhausted,
		Message:  "Decode budget exceeded",
		Hint:     "Increase the Decode budget or reduce frame size",
	},
	"cluster.queue_overflow": {
		Category: CategoryResourceExhausted,
		Message:  "Cluster queue overflowed",
		Hint:     "Increase queue capacity or shed load upstream",
	},
	"cluster.service_not_found": {
		Category: CategoryNonRetryable,
		Message:  "Target service not found in cluster",
		Hint:     "",
	},
	"app.routing_failed": {
		Category: CategoryNonRetryable,
		Message:  "Application routing failed",
		Hint:     "",
	},
	"app.unauthorized": {
		Category: CategorySecurity,
		Message:  "Caller is not authorized for this operation",
		Hint:     "",
	},
}

// LookupCode resolves a stable code to its registry entry. The
// `cluster.*unavailable*` family from spec.md §4.6 is a wildcard: any
// code in the cluster domain whose name contains "unavailable" is
// Retryable even though it has no fixed registry row.
func LookupCode(code string) (CodeEntry, bool) {
	if entry, ok := codeRegistry[code]; ok {
		return entry, true
	}
	if strings.HasPrefix(code, "cluster.") && strings.Contains(code, "unavailable") {
		return CodeEntry{
			Category: CategoryRetryable,
			Message:  "Cluster member unavailable; the operation may succeed on retry",
			Hint:     "Retry after the advertised RetryAfter delay",
		}, true
	}
	return CodeEntry{}, false
}
