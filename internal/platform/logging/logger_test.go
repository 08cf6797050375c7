package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    Level
		wantErr bool
	}{
		{raw: "", want: LevelInfo},
		{raw: "DEBUG", want: LevelDebug},
		{raw: " warning ", want: LevelWarn},
		{raw: "error", want: LevelError},
		{raw: "loud", want: LevelInfo, wantErr: true},
	}
	for _, tc := range tests {
		got, err := ParseLevel(tc.raw)
		if (err != nil) != tc.wantErr {
			t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tc.raw, err, tc.wantErr)
		}
		if got != tc.want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestLoggerContextAddsTraceFields(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.DebugLevel)
	logger := FromZap(zap.New(core)).Named("ufcdata").With("source", "file")

	spanCtx := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{1, 2, 3},
		SpanID:     trace.SpanID{4, 5, 6},
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), spanCtx)

	logger.WarnContext(ctx, "load failed", "error", errors.New("boom"), "attempt", 2)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry.LoggerName != "ufcdata" {
		t.Fatalf("unexpected logger name: %q", entry.LoggerName)
	}
	fields := entry.ContextMap()
	if fields["source"] != "file" || fields["error"] != "boom" || fields["attempt"] != int64(2) {
		t.Fatalf("unexpected fields: %v", fields)
	}
	if fields["trace_id"] != spanCtx.TraceID().String() || fields["span_id"] != spanCtx.SpanID().String() {
		t.Fatalf("expected trace fields, got %v", fields)
	}
}

func TestLoggerWithoutSpanOmitsTraceFields(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	logger := FromZap(zap.New(core))

	logger.InfoContext(context.Background(), "plain", "dangling")
	logger.Debug("filtered")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected debug entry to be filtered, got %d entries", len(entries))
	}
	fields := entries[0].ContextMap()
	if _, ok := fields["trace_id"]; ok {
		t.Fatalf("unexpected trace field: %v", fields)
	}
	if v, ok := fields["dangling"]; !ok || v != nil {
		t.Fatalf("expected dangling key logged with nil value, got %v", fields)
	}
}

func TestNewWritesJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(&buf, LevelInfo, false)
	logger.Info("hello", "event_id", "ufc-300")

	line := buf.String()
	if !strings.Contains(line, `"msg":"hello"`) || !strings.Contains(line, `"event_id":"ufc-300"`) {
		t.Fatalf("unexpected output: %s", line)
	}
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	t.Parallel()

	var logger *Logger
	logger.Info("ignored")
	if logger.Named("x") == nil || logger.With("k", "v") == nil {
		t.Fatalf("expected usable child loggers from nil receiver")
	}
	if err := logger.Sync(); err != nil {
		t.Fatalf("unexpected sync error: %v", err)
	}
}

func TestMirrorReceivesEnabledRecords(t *testing.T) {
	var got []string
	SetMirror(func(_ context.Context, level Level, msg string, args ...any) {
		got = append(got, level.String()+":"+msg)
	})
	defer SetMirror(nil)

	core, _ := observer.New(zap.InfoLevel)
	logger := FromZap(zap.New(core))
	logger.Debug("hidden")
	logger.Info("card built", "fights", 12)
	logger.WarnContext(context.Background(), "upstream slow")

	if len(got) != 2 || got[0] != "info:card built" || got[1] != "warn:upstream slow" {
		t.Fatalf("unexpected mirrored records: %v", got)
	}
}
