package observability

import (
	"context"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/riskibarqy/fightcard/internal/platform/logging"
	otellog "go.opentelemetry.io/otel/log"
	otelglobal "go.opentelemetry.io/otel/log/global"
	"go.uber.org/zap/zapcore"
)

const (
	uptraceLogInstrumentation = "fightcard/internal/platform/logging"
	maxLogValueDepth          = 3
	redactedValue             = "[REDACTED]"
)

// Request logs for these paths are probes and doc fetches; they stay in the
// local log but are not shipped.
var quietPaths = []string{"/healthz", "/openapi.yaml", "/docs"}

var sensitiveKeyParts = []string{"token", "authorization", "password", "secret", "dsn"}

func newUptraceLogMirror(serviceVersion string) logging.MirrorFunc {
	otelLogger := otelglobal.Logger(
		uptraceLogInstrumentation,
		otellog.WithInstrumentationVersion(serviceVersion),
	)

	return func(ctx context.Context, level logging.Level, msg string, args ...any) {
		if isQuietRequestLog(msg, args) {
			return
		}
		if ctx == nil {
			ctx = context.Background()
		}

		severity := toOTelSeverity(level)
		if !otelLogger.Enabled(ctx, otellog.EnabledParameters{Severity: severity, EventName: msg}) {
			return
		}

		var record otellog.Record
		now := time.Now().UTC()
		record.SetTimestamp(now)
		record.SetObservedTimestamp(now)
		record.SetSeverity(severity)
		record.SetSeverityText(strings.ToUpper(level.String()))
		record.SetEventName(msg)
		record.SetBody(otellog.StringValue(msg))
		if attrs := buildOTelLogAttributes(args); len(attrs) > 0 {
			record.AddAttributes(attrs...)
		}

		otelLogger.Emit(ctx, record)
	}
}

func isQuietRequestLog(msg string, args []any) bool {
	if msg != "http_request" {
		return false
	}
	path, ok := argValue(args, "http_path").(string)
	if !ok {
		return false
	}
	for _, quiet := range quietPaths {
		if path == quiet || strings.HasPrefix(path, quiet+"/") {
			return true
		}
	}
	return false
}

func argValue(args []any, key string) any {
	for i := 0; i+1 < len(args); i += 2 {
		if k, ok := args[i].(string); ok && k == key {
			return args[i+1]
		}
	}
	return nil
}

func isSensitiveKey(key string) bool {
	key = strings.ToLower(key)
	return slices.ContainsFunc(sensitiveKeyParts, func(part string) bool {
		return strings.Contains(key, part)
	})
}

// buildOTelLogAttributes pairs args as key/value. A non-string key becomes
// arg_N and a trailing key without a value is kept as empty.
func buildOTelLogAttributes(args []any) []otellog.KeyValue {
	if len(args) == 0 {
		return nil
	}

	attrs := make([]otellog.KeyValue, 0, (len(args)+1)/2)
	for i := 0; i < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok || strings.TrimSpace(key) == "" {
			key = fmt.Sprintf("arg_%d", i/2)
		}
		switch {
		case i+1 >= len(args):
			attrs = append(attrs, otellog.Empty(key))
		case isSensitiveKey(key):
			attrs = append(attrs, otellog.String(key, redactedValue))
		default:
			attrs = append(attrs, otellog.KeyValue{Key: key, Value: toOTelLogValue(args[i+1], 0)})
		}
	}
	return attrs
}

func toOTelSeverity(level zapcore.Level) otellog.Severity {
	switch {
	case level <= zapcore.DebugLevel:
		return otellog.SeverityDebug
	case level == zapcore.InfoLevel:
		return otellog.SeverityInfo
	case level == zapcore.WarnLevel:
		return otellog.SeverityWarn
	case level >= zapcore.DPanicLevel:
		return otellog.SeverityFatal
	default:
		return otellog.SeverityError
	}
}

func toOTelLogValue(value any, depth int) otellog.Value {
	if value == nil {
		return otellog.Value{}
	}
	if depth >= maxLogValueDepth {
		return otellog.StringValue(fmt.Sprint(value))
	}

	switch v := value.(type) {
	case string:
		return otellog.StringValue(v)
	case bool:
		return otellog.BoolValue(v)
	case []byte:
		return otellog.BytesValue(slices.Clone(v))
	case time.Time:
		return otellog.StringValue(v.UTC().Format(time.RFC3339Nano))
	case time.Duration:
		return otellog.StringValue(v.String())
	case error:
		return otellog.StringValue(v.Error())
	case fmt.Stringer:
		return otellog.StringValue(v.String())
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return otellog.Int64Value(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if u := rv.Uint(); u <= math.MaxInt64 {
			return otellog.Int64Value(int64(u))
		}
		return otellog.StringValue(fmt.Sprint(value))
	case reflect.Float32, reflect.Float64:
		return otellog.Float64Value(rv.Float())
	case reflect.String:
		return otellog.StringValue(rv.String())
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return otellog.Value{}
		}
		return toOTelLogValue(rv.Elem().Interface(), depth+1)
	case reflect.Slice, reflect.Array:
		items := make([]otellog.Value, rv.Len())
		for i := range items {
			items[i] = toOTelLogValue(rv.Index(i).Interface(), depth+1)
		}
		return otellog.SliceValue(items...)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return otellog.StringValue(fmt.Sprint(value))
		}
		keys := rv.MapKeys()
		slices.SortFunc(keys, func(a, b reflect.Value) int {
			return strings.Compare(a.String(), b.String())
		})
		kvs := make([]otellog.KeyValue, 0, len(keys))
		for _, key := range keys {
			if isSensitiveKey(key.String()) {
				kvs = append(kvs, otellog.String(key.String(), redactedValue))
				continue
			}
			kvs = append(kvs, otellog.KeyValue{
				Key:   key.String(),
				Value: toOTelLogValue(rv.MapIndex(key).Interface(), depth+1),
			})
		}
		return otellog.MapValue(kvs...)
	default:
		return otellog.StringValue(fmt.Sprint(value))
	}
}
