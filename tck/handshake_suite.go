package tck

import (
	"testing"

	"github.com/hlieu5402-collab/spark2026-sub000/transport"
	"github.com/stretchr/testify/require"
)

// RunHandshakeSuite exercises the negotiation round-trip law from
// spec.md §8: symmetric offers with overlapping required capabilities
// succeed with version = min(local.Version, remote.Version) and
// enabled = local.Required ∪ remote.Required ∪ (local.Optional ∩ remote.Optional).
func RunHandshakeSuite(t *testing.T, local, remote transport.Offer) {
	t.Run("symmetric negotiation yields the expected version and enabled set", func(t *testing.T) {
		outcome, err := transport.Negotiate(local, remote)
		require.Nil(t, err)
		require.Equal(t, local.Version.Min(remote.Version), outcome.Version)

		want := local.Required.Union(remote.Required).Union(local.Optional.Intersect(remote.Optional))
		require.Equal(t, want, outcome.Enabled)
	})

	t.Run("major version mismatch fails negotiation", func(t *testing.T) {
		mismatched := remote
		mismatched.Version.Major++
		_, err := transport.Negotiate(local, mismatched)
		require.NotNil(t, err)
		require.Equal(t, "protocol.negotiation", err.Code)
	})
}
