package usecase

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var usecaseTracer = otel.Tracer("fightcard/internal/usecase")
var usecaseNoopSpan = trace.SpanFromContext(context.Background())

// startUsecaseSpan only creates child spans; background card builds with no
// parent stay untraced.
func startUsecaseSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if name == "" || !trace.SpanFromContext(ctx).SpanContext().IsValid() {
		return ctx, usecaseNoopSpan
	}
	return usecaseTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// endUsecaseSpan marks the span failed for server-side errors only. Bad input
// and unknown ids are recorded as events so they don't skew error rates.
func endUsecaseSpan(span trace.Span, err error) {
	switch {
	case err == nil:
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrNotFound):
		span.AddEvent("request rejected", trace.WithAttributes(attribute.String("reason", err.Error())))
	default:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
