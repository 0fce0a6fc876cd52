package errtax

import "fmt"

// DomainErrorKind enumerates the business-domain areas a DomainError
// summarizes.
type DomainErrorKind int

const (
	DomainTransport DomainErrorKind = iota
	DomainProtocol
	DomainRuntime
	DomainCluster
	DomainDiscovery
	DomainRouter
	DomainApplication
	DomainBuffer
)

func (k DomainErrorKind) String() string {
	switch k {
	case DomainTransport:
		return "transport"
	case DomainProtocol:
		return "protocol"
	case DomainRuntime:
		return "runtime"
	case DomainCluster:
		return "cluster"
	case DomainDiscovery:
		return "discovery"
	case DomainRouter:
		return "router"
	case DomainApplication:
		return "application"
	case DomainBuffer:
		return "buffer"
	default:
		return fmt.Sprintf("domain_error_kind(%d)", int(k))
	}
}

// DomainError is the business-domain summary layer: a kind, a stable
// error code (e.g. "transport.timeout"), a message, and an optional
// cause chain.
type DomainError struct {
	Kind    DomainErrorKind
	Code    string
	Message string
	Cause   error
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s [%s]: %s", e.Kind, e.Code, e.Message)
}

func (e *DomainError) Unwrap() error { return e.Cause }

// IntoCore converts this DomainError into the outward-facing CoreError,
// filling category, message, and remediation hint via table lookup on
// Code. For a known code the registry's canonical message replaces the
// DomainError's message; the DomainError itself (with its original
// message and cause) is kept as the CoreError's Cause. An unknown code
// falls back to the DomainError's own message with no hint (see
// LookupCode).
func (e *DomainError) IntoCore() *CoreError {
	entry, known := LookupCode(e.Code)
	category := entry.Category
	message := e.Message
	hint := entry.Hint
	if !known {
		category = CategoryNonRetryable
		hint = ""
	} else if entry.Message != "" {
		message = entry.Message
	}
	return &CoreError{
		Code:            e.Code,
		Category:        category,
		Message:         message,
		RemediationHint: hint,
		Cause:           e,
	}
}
