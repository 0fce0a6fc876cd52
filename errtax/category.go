package errtax

import "fmt"

// Category is the fixed ErrorCategory enumeration driving the
// auto-response matrix.
type Category int

const (
	CategoryRetryable Category = iota
	CategoryTimeout
	CategoryCancelled
	CategoryProtocolViolation
	CategoryResourceExhausted
	CategoryNonRetryable
	CategorySecurity
)

func (c Category) String() string {
	switch c {
	case CategoryRetryable:
		return "retryable"
	case CategoryTimeout:
		return "timeout"
	case CategoryCancelled:
		return "cancelled"
	case CategoryProtocolViolation:
		return "protocol_violation"
	case CategoryResourceExhausted:
		return "resource_exhausted"
	case CategoryNonRetryable:
		return "non_retryable"
	case CategorySecurity:
		return "security"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// Response is the automatic action the auto-responder takes for a given
// Category, absent an explicit per-pipeline override.
type Response int

const (
	ResponseEmitRetryBusy Response = iota
	ResponseCancelContext
	ResponseGracefulClose
	ResponseEmitBudgetExhausted
	ResponseNone
)

func (r Response) String() string {
	switch r {
	case ResponseEmitRetryBusy:
		return "emit_retry_busy"
	case ResponseCancelContext:
		return "cancel_context"
	case ResponseGracefulClose:
		return "graceful_close"
	case ResponseEmitBudgetExhausted:
		return "emit_budget_exhausted"
	case ResponseNone:
		return "none"
	default:
		return fmt.Sprintf("response(%d)", int(r))
	}
}

// DefaultResponses is the single source of truth mapping each Category to
// its default automatic response (spec.md §4.6/§7's auto-response matrix).
// It is a plain map literal so it can drive runtime dispatch and be
// rendered into documentation without drifting out of sync.
var DefaultResponses = map[Category]Response{
	CategoryRetryable:         ResponseEmitRetryBusy,
	CategoryTimeout:           ResponseCancelContext,
	CategoryCancelled:         ResponseCancelContext,
	CategoryProtocolViolation: ResponseGracefulClose,
	CategoryResourceExhausted: ResponseEmitBudgetExhausted,
	CategoryNonRetryable:      ResponseNone,
	CategorySecurity:          ResponseGracefulClose,
}

// DefaultResponseFor looks up the default response for a category. Every
// Category constant has exactly one row (error classification totality,
// spec.md §8); a missing entry is a programming error in this package.
func DefaultResponseFor(c Category) Response {
	r, ok := DefaultResponses[c]
	if !ok {
		panic(fmt.Sprintf("errtax: category %s has no default response entry", c))
	}
	return r
}
