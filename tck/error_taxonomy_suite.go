package tck

import (
	"errors"
	"testing"

	"github.com/hlieu5402-collab/spark2026-sub000/errtax"
	"github.com/stretchr/testify/require"
)

// RunErrorTaxonomySuite exercises the ImplError -> DomainError -> CoreError
// round-trip law from spec.md §8: message, code, and cause chain survive
// both conversions, and an unknown stable code falls back to its raw
// message with no remediation hint.
func RunErrorTaxonomySuite(t *testing.T) {
	t.Run("impl to domain to core preserves message, code, and cause chain", func(t *testing.T) {
		cause := errors.New("socket reset by peer")
		impl := &errtax.ImplError{Kind: errtax.ImplIO, Detail: "read failed", Cause: cause}
		domain := impl.IntoDomain(errtax.DomainTransport, "transport.io")
		require.Equal(t, impl.Error(), domain.Message)
		require.Same(t, impl, domain.Cause)
		require.ErrorIs(t, domain, cause)

		core := domain.IntoCore()
		require.Equal(t, "transport.io", core.Code)
		require.Equal(t, errtax.CategoryRetryable, core.Category)
		require.Same(t, domain, core.Cause)
		require.ErrorIs(t, core, cause)
	})

	t.Run("every documented category has exactly one default-response row", func(t *testing.T) {
		categories := []errtax.Category{
			errtax.CategoryRetryable, errtax.CategoryTimeout, errtax.CategoryCancelled,
			errtax.CategoryProtocolViolation, errtax.CategoryResourceExhausted,
			errtax.CategoryNonRetryable, errtax.CategorySecurity,
		}
		for _, c := range categories {
			require.NotPanics(t, func() { errtax.DefaultResponseFor(c) })
		}
	})

	t.Run("unknown code falls back to the raw message with no hint", func(t *testing.T) {
		domain := &errtax.DomainError{Kind: errtax.DomainApplication, Code: "app.totally_unknown_code", Message: "custom failure"}
		core := domain.IntoCore()
		require.Equal(t, "custom failure", core.Message)
		require.Empty(t, core.RemediationHint)
	})
}
