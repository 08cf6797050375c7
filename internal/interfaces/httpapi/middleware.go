package httpapi

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/riskibarqy/fightcard/internal/platform/id"
	"github.com/riskibarqy/fightcard/internal/platform/logging"
	"github.com/riskibarqy/fightcard/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	requestIDHeader  = "X-Request-ID"
	adminTokenHeader = "X-Admin-Token"
)

// RequireAdminToken guards operator endpoints. The token is read from
// X-Admin-Token or a Bearer Authorization header.
func RequireAdminToken(token string, next http.Handler) http.Handler {
	expectedToken := strings.TrimSpace(token)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.RequireAdminToken")
		defer span.End()

		if expectedToken == "" {
			writeError(ctx, w, fmt.Errorf("%w: admin token is not configured", usecase.ErrDependencyUnavailable))
			return
		}

		providedToken := strings.TrimSpace(r.Header.Get(adminTokenHeader))
		if providedToken == "" {
			parts := strings.SplitN(strings.TrimSpace(r.Header.Get("Authorization")), " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				providedToken = strings.TrimSpace(parts[1])
			}
		}
		if providedToken == "" || subtle.ConstantTimeCompare([]byte(providedToken), []byte(expectedToken)) != 1 {
			writeError(ctx, w, fmt.Errorf("%w: invalid admin token", usecase.ErrUnauthorized))
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestID reuses a sane inbound X-Request-ID or issues a new one, and
// echoes it on the response. It also resolves the caller's address and
// country once for everything downstream.
func RequestID(ids id.Generator, next http.Handler) http.Handler {
	if ids == nil {
		ids = id.NewUUIDGenerator()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, ok := id.Inbound(r.Header.Get(requestIDHeader))
		if !ok {
			if generated, err := ids.NewID(); err == nil {
				requestID = generated
			}
		}

		info := requestInfo{
			ID:       requestID,
			ClientIP: resolveClientIP(r),
			Country:  resolveCountryCode(r),
		}
		if requestID != "" {
			w.Header().Set(requestIDHeader, requestID)
		}
		if span := trace.SpanFromContext(r.Context()); span.IsRecording() {
			span.SetAttributes(
				attribute.String("http.request_id", requestID),
				attribute.String("client.country", info.Country),
			)
		}
		next.ServeHTTP(w, r.WithContext(withRequestInfo(r.Context(), info)))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(p []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	n, err := s.ResponseWriter.Write(p)
	s.bytes += n
	return n, err
}

func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}

func RequestLogging(logger *logging.Logger, next http.Handler) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.RequestLogging")
		defer span.End()

		started := time.Now()
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r.WithContext(ctx))
		if rec.status == 0 {
			rec.status = http.StatusOK
		}

		info := requestInfoFromContext(ctx)
		args := []any{
			"http_method", r.Method,
			"http_path", r.URL.Path,
			"http_status", rec.status,
			"response_bytes", rec.bytes,
			"client_ip", info.ClientIP,
			"client_country", info.Country,
			"duration_ms", time.Since(started).Milliseconds(),
			"request_id", info.ID,
		}
		if rec.status >= http.StatusInternalServerError {
			logger.WarnContext(ctx, "http_request", args...)
			return
		}
		logger.InfoContext(ctx, "http_request", args...)
	})
}

func RequestTracing(next http.Handler) http.Handler {
	return otelhttp.NewHandler(next, "fightcard-http",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
		otelhttp.WithFilter(func(r *http.Request) bool {
			return shouldTraceRequest(r.URL.Path)
		}),
	)
}

// shouldTraceRequest keeps probes and the docs page out of traces. Trailing
// slashes and case are ignored.
func shouldTraceRequest(path string) bool {
	normalized := strings.TrimRight(strings.ToLower(strings.TrimSpace(path)), "/")
	switch normalized {
	case "/healthz", "/health", "/livez", "/readyz", "/openapi.yaml", "/docs", "/favicon.ico":
		return false
	}
	return !strings.HasPrefix(normalized, "/docs/")
}

// CORS answers browser preflights for the configured origins. Entries may
// be "*", an exact origin, or a subdomain pattern like
// "https://*.example.com". Preflights from other origins get 403.
func CORS(allowedOrigins []string, next http.Handler) http.Handler {
	policy := newOriginPolicy(allowedOrigins)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.CORS")
		defer span.End()

		origin := strings.TrimSpace(r.Header.Get("Origin"))
		if origin == "" {
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		allowed := policy.allows(origin)
		if allowed {
			h := w.Header()
			if policy.any {
				h.Set("Access-Control-Allow-Origin", "*")
			} else {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Add("Vary", "Origin")
			}
			h.Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Authorization,Content-Type,Accept,X-Admin-Token,X-Request-ID")
			h.Set("Access-Control-Expose-Headers", "X-Request-ID,Retry-After")
			h.Set("Access-Control-Max-Age", "600")
		}

		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
			if !allowed {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type originPolicy struct {
	any      bool
	exact    map[string]struct{}
	suffixes []originSuffix
}

type originSuffix struct {
	scheme string
	domain string
}

func newOriginPolicy(origins []string) originPolicy {
	p := originPolicy{exact: make(map[string]struct{}, len(origins))}
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		switch {
		case origin == "":
		case origin == "*":
			p.any = true
		case strings.Contains(origin, "://*."):
			scheme, domain, _ := strings.Cut(origin, "://*")
			p.suffixes = append(p.suffixes, originSuffix{scheme: scheme + "://", domain: strings.ToLower(domain)})
		default:
			p.exact[origin] = struct{}{}
		}
	}
	return p
}

func (p originPolicy) allows(origin string) bool {
	if p.any {
		return true
	}
	if _, ok := p.exact[origin]; ok {
		return true
	}
	for _, s := range p.suffixes {
		host, ok := strings.CutPrefix(origin, s.scheme)
		if !ok {
			continue
		}
		host = strings.ToLower(host)
		if strings.HasSuffix(host, s.domain) && len(host) > len(s.domain) {
			return true
		}
	}
	return false
}
