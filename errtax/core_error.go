package errtax

import "fmt"

// CoreError is the outward-facing, stable contract layer: a stable code,
// a fixed Category, a user-facing message, an optional remediation hint,
// and the full cause chain back to the originating ImplError.
type CoreError struct {
	Code            string
	Category        Category
	Message         string
	RemediationHint string
	Cause           error
}

func (e *CoreError) Error() string {
	if e.RemediationHint == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.RemediationHint)
}

func (e *CoreError) Unwrap() error { return e.Cause }

// DefaultResponse returns the automatic response this error's category
// maps to, per DefaultResponses.
func (e *CoreError) DefaultResponse() Response {
	return DefaultResponseFor(e.Category)
}

// New constructs a CoreError directly from a stable code, bypassing the
// Impl/Domain layers — used by components (e.g. ready, codec) that must
// synthesize a well-known CoreError without first building an ImplError.
func New(code string, cause error) *CoreError {
	entry, known := LookupCode(code)
	category := CategoryNonRetryable
	message := code
	hint := ""
	if known {
		category = entry.Category
		message = entry.Message
		hint = entry.Hint
	}
	return &CoreError{
		Code:            code,
		Category:        category,
		Message:         message,
		RemediationHint: hint,
		Cause:           cause,
	}
}
