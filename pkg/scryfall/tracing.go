package scryfall

//
// Tracing
//

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracerName is the instrumentation name of our tracer.
const tracerName = "github.com/mtgkit/scryfall-go/pkg/scryfall"

// spanAttributes returns the attributes describing spec.
func spanAttributes(spec RequestSpec) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("scryfall.operation", spec.Name),
		attribute.String("http.request.method", spec.Method),
		attribute.String("url.full", spec.URL),
	}
}

// endSpan records the outcome of the request on span.
func endSpan(span trace.Span, status int, err error) {
	span.SetAttributes(attribute.Int("http.response.status_code", status))
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
