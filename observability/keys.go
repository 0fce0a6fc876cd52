package observability

// Metric names. CI-enforced closed set: spec.md §6. All names are
// immutable after process init; no component may register a name outside
// this list.
const (
	MetricRequestTotal           = "spark.request.total"
	MetricRequestDuration        = "spark.request.duration"
	MetricRequestInflight        = "spark.request.inflight"
	MetricRequestErrors          = "spark.request.errors"
	MetricRequestReadyState      = "spark.request.ready_state"
	MetricRequestRetryAfterTotal = "spark.request.retry_after_total"
	MetricRequestRetryAfterDelay = "spark.request.retry_after_delay_ms"

	MetricCodecEncodeDuration = "spark.codec.encode.duration"
	MetricCodecEncodeBytes    = "spark.codec.encode.bytes"
	MetricCodecEncodeErrors   = "spark.codec.encode.errors"
	MetricCodecDecodeDuration = "spark.codec.decode.duration"
	MetricCodecDecodeBytes    = "spark.codec.decode.bytes"
	MetricCodecDecodeErrors   = "spark.codec.decode.errors"

	MetricTransportConnections       = "spark.transport.connections"
	MetricTransportConnAttempts      = "spark.transport.connection.attempts"
	MetricTransportConnFailures      = "spark.transport.connection.failures"
	MetricTransportHandshakeDuration = "spark.transport.handshake.duration"
	MetricTransportBytesInbound      = "spark.transport.bytes.inbound"
	MetricTransportBytesOutbound     = "spark.transport.bytes.outbound"

	MetricLimitsUsage   = "spark.limits.usage"
	MetricLimitsLimit   = "spark.limits.limit"
	MetricLimitsHit     = "spark.limits.hit"
	MetricLimitsDrop    = "spark.limits.drop"
	MetricLimitsDegrade = "spark.limits.degrade"
	MetricLimitsQueue   = "spark.limits.queue.depth"

	MetricPipelineEpoch    = "spark.pipeline.epoch"
	MetricPipelineMutation = "spark.pipeline.mutation.total"
)

// Stable label keys.
const (
	LabelServiceName       = "service.name"
	LabelRouteID           = "route.id"
	LabelOperation         = "operation"
	LabelProtocol          = "protocol"
	LabelStatusCode        = "status.code"
	LabelOutcome           = "outcome"
	LabelCodecName         = "codec.name"
	LabelCodecMode         = "codec.mode" // encode | decode
	LabelContentType       = "content.type"
	LabelErrorKind         = "error.kind"
	LabelTransportProtocol = "transport.protocol"
	LabelPeerRole          = "peer.role" // client | server
	LabelReadyState        = "ready.state"
	LabelReadyDetail       = "ready.detail"
)

// MaxLabelCardinality is the enforced ceiling on distinct values for any
// single stable label (spec.md §6).
const MaxLabelCardinality = 1000

// Log field keys.
const (
	LogFieldRequestID      = "request.id"
	LogFieldRouteID        = "route.id"
	LogFieldCallerIdentity = "caller.identity"
	LogFieldPeerIdentity   = "peer.identity"
	LogFieldBudgetKind     = "budget.kind"
)

// Trace propagation keys.
const (
	TraceParentKey = "traceparent"
	TraceStateKey  = "tracestate"
	SparkBudgetKey = "spark-budget"
)
