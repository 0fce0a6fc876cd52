package transport

import (
	"fmt"

	"github.com/hlieu5402-collab/spark2026-sub000/errtax"
)

// Version is a semantic transport/codec protocol version.
type Version struct {
	Major, Minor, Patch int
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Less reports whether v sorts strictly before other by
// (major, minor, patch).
func (v Version) Less(other Version) bool {
	if v.Major != other.Major {
		return v.Major < other.Major
	}
	if v.Minor != other.Minor {
		return v.Minor < other.Minor
	}
	return v.Patch < other.Patch
}

// Min returns the lexicographically smaller of v and other.
func (v Version) Min(other Version) Version {
	if other.Less(v) {
		return other
	}
	return v
}

// Capabilities is a bitmap of negotiable capabilities. Individual bits
// are defined by the host application; this package only manipulates the
// bitmap, never names specific capabilities.
type Capabilities uint64

// Union returns the bitwise union of c and other.
func (c Capabilities) Union(other Capabilities) Capabilities { return c | other }

// Intersect returns the bitwise intersection of c and other.
func (c Capabilities) Intersect(other Capabilities) Capabilities { return c & other }

// Without returns c with every bit set in other cleared.
func (c Capabilities) Without(other Capabilities) Capabilities { return c &^ other }

// Has reports whether every bit set in other is also set in c.
func (c Capabilities) Has(other Capabilities) bool { return c&other == other }

// List renders c as the sorted list of set bit positions, for downgrade
// reports and observability; mapping positions to human-readable names is
// the host's responsibility.
func (c Capabilities) List() []int {
	var out []int
	for i := 0; i < 64; i++ {
		if c&(1<<uint(i)) != 0 {
			out = append(out, i)
		}
	}
	return out
}

// Offer is one side's declared version and capability requirements for a
// single handshake.
type Offer struct {
	Version  Version
	Required Capabilities
	Optional Capabilities
}

// DowngradeReport lists capabilities declared locally-optional but
// disabled in the negotiated outcome (spec.md §6).
type DowngradeReport struct {
	LocalOptionalDisabled Capabilities
}

// HandshakeOutcome is the selected protocol version, enabled capability
// bitmap, and downgrade report for one connection (spec.md §6).
type HandshakeOutcome struct {
	Version   Version
	Enabled   Capabilities
	Downgrade DowngradeReport
}

// Negotiate implements the bit-exact handshake rule from spec.md §6:
//
//   - a major version mismatch fails with code "protocol.negotiation";
//   - otherwise the selected version is min(local.Version, remote.Version);
//   - enabled = local.Required ∪ remote.Required ∪ (local.Optional ∩ remote.Optional);
//   - the downgrade report lists local-optional capabilities that ended
//     up disabled.
//
// Open question resolution (see DESIGN.md): spec.md's worked example
// (§8 scenario 6) negotiates successfully even though one side's
// Required capability was never declared by the other side at all —
// Required capabilities are unconditionally enabled by the formula
// above, so there is no separate "missing required" failure mode beyond
// the major-version check; a required capability is, by construction,
// always present in Enabled.
func Negotiate(local, remote Offer) (HandshakeOutcome, *errtax.CoreError) {
	if local.Version.Major != remote.Version.Major {
		return HandshakeOutcome{}, errtax.New("protocol.negotiation",
			fmt.Errorf("transport: major version mismatch: local=%s remote=%s", local.Version, remote.Version))
	}

	version := local.Version.Min(remote.Version)
	enabled := local.Required.Union(remote.Required).Union(local.Optional.Intersect(remote.Optional))
	downgrade := DowngradeReport{LocalOptionalDisabled: local.Optional.Without(enabled)}

	return HandshakeOutcome{Version: version, Enabled: enabled, Downgrade: downgrade}, nil
}
