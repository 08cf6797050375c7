package httpapi

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("fightcard/internal/interfaces/httpapi")
var noopSpan = trace.SpanFromContext(context.Background())

// Only handlers and the admin guard get their own spans; middleware and
// response helpers annotate the request span instead.
var tracedSpanPrefixes = []string{"httpapi.Handler.", "httpapi.RequireAdminToken"}

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	// Untraced routes such as /healthz have no parent; never start a root here.
	if !trace.SpanFromContext(ctx).SpanContext().IsValid() || !shouldCreateHTTPAPISpan(name) {
		return ctx, noopSpan
	}
	return apiTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func shouldCreateHTTPAPISpan(name string) bool {
	for _, prefix := range tracedSpanPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

func eventAttrs(eventID, fightKey string) []attribute.KeyValue {
	attrs := []attribute.KeyValue{attribute.String("fightcard.event_id", eventID)}
	if fightKey != "" {
		attrs = append(attrs, attribute.String("fightcard.fight_key", fightKey))
	}
	return attrs
}
