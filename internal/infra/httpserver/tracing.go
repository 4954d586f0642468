package httpserver

import (
	"net/http"

	"go.opentelemetry.io/otel/trace"
)

func GetSpanFromContext(r *http.Request) trace.Span {
	return trace.SpanFromContext(r.Context())
}
