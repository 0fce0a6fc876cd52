package callctx

// SecurityContextSnapshot is an immutable record of identity, peer identity,
// and the negotiated security posture of a connection. It is attached to a
// CallContext once, after a handshake completes, and never mutated
// thereafter; derived children may be given a new snapshot (e.g. after a
// re-handshake) but the original is never rewritten in place.
type SecurityContextSnapshot struct {
	Identity             string
	PeerIdentity         string
	ALPN                 string
	Cipher               string
	Fingerprint          string
	NegotiatedCapability []string
}

// Empty reports whether this snapshot carries no identity information,
// i.e. it is the pre-handshake zero value.
func (s SecurityContextSnapshot) Empty() bool {
	return s.Identity == "" && s.PeerIdentity == "" && s.ALPN == "" &&
		s.Cipher == "" && s.Fingerprint == "" && len(s.NegotiatedCapability) == 0
}
