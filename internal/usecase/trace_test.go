package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestStartUsecaseSpan_NoParent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	got, span := startUsecaseSpan(ctx, "usecase.EventService.GetCard")
	assert.Equal(t, ctx, got)
	assert.False(t, span.SpanContext().IsValid())
}

func TestEndUsecaseSpan_Status(t *testing.T) {
	t.Parallel()

	recorder := tracetest.NewSpanRecorder()
	tracer := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)).Tracer("test")

	cases := []struct {
		err  error
		want codes.Code
	}{
		{err: nil, want: codes.Unset},
		{err: fmt.Errorf("%w: event=ufc-999", ErrNotFound), want: codes.Unset},
		{err: fmt.Errorf("%w: event id is required", ErrInvalidInput), want: codes.Unset},
		{err: fmt.Errorf("%w: load dataset", ErrDependencyUnavailable), want: codes.Error},
		{err: errors.New("boom"), want: codes.Error},
	}
	for _, tc := range cases {
		_, span := tracer.Start(context.Background(), "op")
		endUsecaseSpan(span, tc.err)
	}

	ended := recorder.Ended()
	require.Len(t, ended, len(cases))
	for i, tc := range cases {
		assert.Equal(t, tc.want, ended[i].Status().Code, "case %d", i)
	}
	assert.Len(t, ended[1].Events(), 1)
}
