// Package transport carries the transport/service-facing contracts from
// spec.md §6: the poll_ready / read / write / close lifecycle every
// concrete transport (TCP/TLS/QUIC/UDP) implements, the bit-exact
// version/capability handshake negotiation, and the Service/Layer
// middleware shape a terminal application service is wrapped in.
//
// Concrete transports and concrete codecs are explicit non-goals (spec.md
// §1); this package defines only the interfaces they must satisfy and the
// handshake math every implementation shares, so that a host can compose
// any transport with any pipeline without either depending on the other's
// internals.
package transport
