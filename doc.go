// Package spark is the repository root for spark2026: a protocol-agnostic
// asynchronous communication contract framework.
//
// spark2026 does not implement any transport, codec, or wire protocol
// itself. It defines the vocabulary those implementations share:
// cancellation/deadline/budget propagation ([github.com/hlieu5402-collab/spark2026-sub000/callctx]),
// backpressure signaling ([github.com/hlieu5402-collab/spark2026-sub000/ready]),
// a hot-swappable handler pipeline ([github.com/hlieu5402-collab/spark2026-sub000/pipeline]),
// graceful shutdown ([github.com/hlieu5402-collab/spark2026-sub000/shutdown]),
// a three-layer error taxonomy ([github.com/hlieu5402-collab/spark2026-sub000/errtax]),
// codec and transport contracts ([github.com/hlieu5402-collab/spark2026-sub000/codec],
// [github.com/hlieu5402-collab/spark2026-sub000/transport]), the fixed
// observability key registry ([github.com/hlieu5402-collab/spark2026-sub000/observability]),
// and a black-box contract test kit ([github.com/hlieu5402-collab/spark2026-sub000/tck])
// that implementers run against their own types.
//
// Concrete transports (TCP/TLS/QUIC/UDP), concrete codecs (RTP/RTCP/SDP/SIP),
// the OpenTelemetry adapter, configuration hot-reload, CI lint scripts, and
// chaos-testing harnesses all consume these contracts but live outside this
// module.
package spark
