// Package codec implements the Encode/Decode contract from spec.md §6:
// every codec (line/RTP/RTCP/SDP/SIP, or any future wire format) encodes
// into and decodes out of an exclusively-owned, zero-copy buffer view,
// consulting the caller's [github.com/hlieu5402-collab/spark2026-sub000/callctx.Budget]
// of kind [github.com/hlieu5402-collab/spark2026-sub000/callctx.BudgetDecode]
// before doing any work.
//
// Buffers are exclusively owned (single writer or single reader at a
// time, per spec.md §5); [BufferPool] tracks outstanding leases so a host
// can assert every borrowed buffer was returned before shutdown, the same
// lending discipline the teacher's chunk/ring pools apply to task queue
// nodes (eventloop/ingress.go) generalized here from task closures to
// wire-format byte slices.
package codec
