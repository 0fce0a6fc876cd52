// Package errtax implements the three-layer error taxonomy: an ImplError
// with maximal implementation detail is explicitly classified into a
// DomainError (kind + stable code), which is in turn converted into a
// CoreError carrying the stable code, a fixed ErrorCategory, a
// user-facing message, a remediation hint, and the full cause chain.
//
// The category→response mapping in category.go is the single
// source of truth: it is a plain Go map literal, so it is both
// machine-readable (driving AutoResponder) and easy to render into
// documentation, following the same "explicit classification, no implicit
// jump" discipline the teacher applies to its own TypeError/RangeError/
// TimeoutError hierarchy (eventloop/errors.go).
package errtax
