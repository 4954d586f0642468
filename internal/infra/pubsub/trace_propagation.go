package pubsub

import (
	"context"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const (
	headerTraceID    = "trace_id"
	headerSpanID     = "span_id"
	headerTraceFlags = "trace_flags"
)

// TraceHeaders carries a span context across the record event stream.
type TraceHeaders struct {
	TraceID    string `json:"trace_id"`
	SpanID     string `json:"span_id"`
	TraceFlags string `json:"trace_flags"`
}

func TraceHeadersFromContext(ctx context.Context) TraceHeaders {
	spanCtx := trace.SpanContextFromContext(ctx)
	if !spanCtx.IsValid() {
		return TraceHeaders{}
	}

	return TraceHeaders{
		TraceID:    spanCtx.TraceID().String(),
		SpanID:     spanCtx.SpanID().String(),
		TraceFlags: strconv.FormatUint(uint64(spanCtx.TraceFlags()), 16),
	}
}

func ParseTraceHeaders(headers map[string][]byte) TraceHeaders {
	return TraceHeaders{
		TraceID:    string(headers[headerTraceID]),
		SpanID:     string(headers[headerSpanID]),
		TraceFlags: string(headers[headerTraceFlags]),
	}
}

func (h TraceHeaders) Map() map[string][]byte {
	if h.TraceID == "" {
		return map[string][]byte{}
	}

	return map[string][]byte{
		headerTraceID:    []byte(h.TraceID),
		headerSpanID:     []byte(h.SpanID),
		headerTraceFlags: []byte(h.TraceFlags),
	}
}

// Inject returns ctx carrying the remote span context, or ctx unchanged when
// the headers do not describe a valid span.
func (h TraceHeaders) Inject(ctx context.Context) context.Context {
	traceID, err := trace.TraceIDFromHex(h.TraceID)
	if err != nil {
		return ctx
	}
	spanID, err := trace.SpanIDFromHex(h.SpanID)
	if err != nil {
		return ctx
	}

	var flags trace.TraceFlags
	if parsed, err := strconv.ParseUint(h.TraceFlags, 16, 8); err == nil {
		flags = trace.TraceFlags(parsed)
	}

	return trace.ContextWithRemoteSpanContext(ctx, trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: flags,
	}))
}

func StartConsumerSpan(ctx context.Context, topic Topic) (context.Context, trace.Span) {
	tracer := otel.Tracer("record-events")
	return tracer.Start(ctx, "consume "+string(topic), trace.WithSpanKind(trace.SpanKindConsumer))
}
