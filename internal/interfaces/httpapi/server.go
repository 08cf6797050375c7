package httpapi

import (
	"net/http"

	"github.com/riskibarqy/fightcard/internal/platform/id"
	"github.com/riskibarqy/fightcard/internal/platform/logging"
)

// RouterConfig carries the settings NewRouter needs from the service config.
// An empty AdminToken leaves the reload route answering 503.
type RouterConfig struct {
	CORSAllowedOrigins []string
	AdminToken         string
	RequestIDs         id.Generator
	SwaggerEnabled     bool
}

func NewRouter(handler *Handler, logger *logging.Logger, cfg RouterConfig) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}
	logger = logger.Named("http")

	mux := http.NewServeMux()
	routes := handler.routes(cfg)
	for _, rt := range routes {
		mux.Handle(rt.pattern, rt.handler)
	}
	mux.HandleFunc("/", notFound)
	logger.Debug("http routes registered", "count", len(routes), "swagger", cfg.SwaggerEnabled)

	return RequestTracing(
		RequestID(cfg.RequestIDs,
			RequestLogging(logger,
				CORS(cfg.CORSAllowedOrigins, recoverPanic(logger, mux)))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.ErrorContext(ctx, "panic recovered",
					"panic", rec,
					"http_path", r.URL.Path,
					"request_id", requestIDFromContext(ctx),
				)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
