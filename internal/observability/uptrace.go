package observability

import (
	"context"
	"strings"

	"github.com/riskibarqy/fightcard/internal/config"
	"github.com/riskibarqy/fightcard/internal/platform/logging"
	"github.com/uptrace/uptrace-go/uptrace"
	"go.opentelemetry.io/otel/attribute"
)

// InitUptrace configures the global OpenTelemetry providers and, when log
// export is on, mirrors application logs to Uptrace. The returned function
// detaches the mirror before flushing.
func InitUptrace(cfg config.Config, logger *logging.Logger) (func(context.Context) error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	if reason := uptraceDisabledReason(cfg); reason != "" {
		logging.SetMirror(nil)
		logger.Info("uptrace disabled", "reason", reason)
		return func(context.Context) error { return nil }, nil
	}

	uptrace.ConfigureOpentelemetry(
		uptrace.WithDSN(cfg.UptraceDSN),
		uptrace.WithServiceName(cfg.ServiceName),
		uptrace.WithServiceVersion(cfg.ServiceVersion),
		uptrace.WithDeploymentEnvironment(cfg.AppEnv),
		uptrace.WithResourceAttributes(uptraceResourceAttributes(cfg)...),
		uptrace.WithLoggingEnabled(cfg.UptraceLogsEnabled),
	)

	var mirror logging.MirrorFunc
	if cfg.UptraceLogsEnabled {
		mirror = newUptraceLogMirror(cfg.ServiceVersion)
	}
	logging.SetMirror(mirror)

	logger.Info("uptrace enabled",
		"service_name", cfg.ServiceName,
		"environment", cfg.AppEnv,
		"logs_enabled", cfg.UptraceLogsEnabled,
	)

	return func(ctx context.Context) error {
		logging.SetMirror(nil)
		return uptrace.Shutdown(ctx)
	}, nil
}

func uptraceDisabledReason(cfg config.Config) string {
	switch {
	case !cfg.UptraceEnabled:
		return "UPTRACE_ENABLED=false"
	case strings.TrimSpace(cfg.UptraceDSN) == "":
		return "UPTRACE_DSN empty"
	default:
		return ""
	}
}

// uptraceResourceAttributes tags spans with where card data comes from, so
// traces from a file-backed dev run are easy to tell apart.
func uptraceResourceAttributes(cfg config.Config) []attribute.KeyValue {
	source := "file"
	if cfg.UFCDataURL != "" {
		source = "http"
	}
	return []attribute.KeyValue{
		attribute.String("fightcard.data_source", source),
		attribute.Bool("fightcard.redis_cache", cfg.RedisURL != ""),
		attribute.Int("fightcard.build_workers", cfg.BuildWorkers),
	}
}
