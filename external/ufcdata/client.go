package ufcdata

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/fightcard/internal/platform/logging"
	"github.com/riskibarqy/fightcard/internal/platform/resilience"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"
)

const (
	defaultTimeout      = 15 * time.Second
	defaultMaxBodyBytes = 32 << 20
	defaultRetryDelay   = time.Second
	maxLoggedBodyBytes  = 256
	userAgent           = "fightcard/1.0"
)

var (
	errUpstreamTransient = crerr.New("ufc data upstream transient failure")
	// ErrUpstreamUnavailable is returned while the circuit breaker is open.
	ErrUpstreamUnavailable = crerr.New("ufc data upstream is temporarily unavailable")
)

type ClientConfig struct {
	URL            string
	Token          string
	Timeout        time.Duration
	MaxRetries     int
	RetryDelay     time.Duration
	MaxBodyBytes   int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client fetches the scraped data document over HTTP. Concurrent fetches
// share one request.
type Client struct {
	http    *fasthttp.Client
	url     string
	token   string
	timeout time.Duration
	retry   resilience.RetryConfig
	logger  *logging.Logger
	breaker *resilience.CircuitBreaker
	flight  singleflight.Group
}

func NewClient(cfg ClientConfig) (*Client, error) {
	target, err := validateURL(cfg.URL)
	if err != nil {
		return nil, crerr.Wrap(err, "invalid UFC_DATA_URL")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBodyBytes
	}
	logger = logger.Named("ufcdata")
	breaker := resilience.NewCircuitBreakerFromConfig(cfg.CircuitBreaker, func(from, to resilience.CircuitState) {
		logger.Warn("ufc data circuit state changed", "url", target, "from", from, "to", to)
	})

	return &Client{
		http: &fasthttp.Client{
			Name:                userAgent,
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxResponseBodySize: maxBody,
		},
		url:     target,
		token:   strings.TrimSpace(cfg.Token),
		timeout: timeout,
		retry:   resilience.NormalizeRetryConfig(cfg.MaxRetries, cfg.RetryDelay, defaultRetryDelay),
		logger:  logger,
		breaker: breaker,
	}, nil
}

func (c *Client) String() string {
	return "http:" + c.url
}

// Fetch returns the raw document. Concurrent callers share one upstream
// fetch, which runs detached from any single caller's cancellation and is
// bounded by the retry budget instead. Each caller still stops waiting when
// its own ctx ends.
func (c *Client) Fetch(ctx context.Context) ([]byte, error) {
	results := c.flight.DoChan(c.url, func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.fetchBudget())
		defer cancel()
		return c.fetchGuarded(fetchCtx)
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-results:
	}
	if res.Err != nil {
		return nil, res.Err
	}

	body, ok := res.Val.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected response payload type %T", res.Val)
	}
	if res.Shared {
		c.logger.DebugContext(ctx, "ufc data fetch shared with concurrent caller")
	}
	return body, nil
}

// fetchBudget covers every attempt at the full timeout plus the linear
// backoff waits between them.
func (c *Client) fetchBudget() time.Duration {
	attempts := time.Duration(c.retry.MaxRetries + 1)
	waits := time.Duration(c.retry.MaxRetries*(c.retry.MaxRetries+1)/2) * c.retry.BaseDelay
	return attempts*c.timeout + waits
}

func (c *Client) fetchGuarded(ctx context.Context) ([]byte, error) {
	if c.breaker == nil {
		return c.fetchWithRetry(ctx)
	}
	var body []byte
	err := c.breaker.Execute(func() error {
		var fetchErr error
		body, fetchErr = c.fetchWithRetry(ctx)
		return fetchErr
	}, isTransient)
	if stderrors.Is(err, resilience.ErrCircuitOpen) {
		c.logger.WarnContext(ctx, "ufc data circuit breaker rejected request", "state", c.breaker.State())
		return nil, crerr.WithSecondaryError(ErrUpstreamUnavailable, err)
	}
	return body, err
}

func (c *Client) fetchWithRetry(ctx context.Context) ([]byte, error) {
	preview := buildCurlPreview(c.url, c.token != "")
	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.SetAttributes(
			attribute.String("ufcdata.url", c.url),
			attribute.String("ufcdata.request_curl_preview", preview),
		)
	}

	var body []byte
	err := resilience.Retry(ctx, c.retry, func(attempt int) (bool, error) {
		start := time.Now()
		raw, status, reqErr := c.do(ctx)
		c.logger.DebugContext(ctx, "ufc data request",
			"attempt", attempt,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"curl_preview", preview,
		)
		if reqErr != nil {
			return isTransient(reqErr), reqErr
		}
		body = raw
		return false, nil
	})
	if err != nil {
		c.logger.WarnContext(ctx, "ufc data request failed", "url", c.url, "error", err)
		return nil, err
	}
	return body, nil
}

func (c *Client) do(ctx context.Context) ([]byte, int, error) {
	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil, 0, ctx.Err()
		}
		timeout = min(timeout, remaining)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	if err := c.http.DoTimeout(req, resp, timeout); err != nil {
		return nil, 0, fmt.Errorf("%w: send request: %v", errUpstreamTransient, err)
	}

	status := resp.StatusCode()
	body := append([]byte(nil), resp.Body()...)
	if status >= 200 && status < 300 {
		return body, status, nil
	}
	if isRetryableStatus(status) {
		return nil, status, fmt.Errorf("%w: upstream status=%d body=%s", errUpstreamTransient, status, abbreviate(body))
	}
	return nil, status, crerr.Newf("upstream status=%d body=%s", status, abbreviate(body))
}

func isTransient(err error) bool {
	return err != nil && stderrors.Is(err, errUpstreamTransient)
}

func isRetryableStatus(status int) bool {
	return status == fasthttp.StatusRequestTimeout ||
		status == fasthttp.StatusTooManyRequests ||
		status >= fasthttp.StatusInternalServerError
}

func validateURL(raw string) (string, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return "", crerr.New("value is empty")
	}
	parsed, err := url.Parse(candidate)
	if err != nil {
		return "", crerr.Wrapf(err, "parse %q", candidate)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", crerr.Newf("%q uses unsupported scheme=%q; expected http or https", candidate, parsed.Scheme)
	}
	if parsed.Host == "" {
		return "", crerr.Newf("%q has empty host", candidate)
	}
	return candidate, nil
}

func buildCurlPreview(target string, withToken bool) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	appendPart := func(part string) {
		if buf.Len() > 0 {
			_ = buf.WriteByte(' ')
		}
		_, _ = buf.WriteString(part)
	}

	appendPart("curl")
	appendPart(shellQuote(target))
	appendPart("-H")
	appendPart(shellQuote("Accept: application/json"))
	if withToken {
		appendPart("-H")
		appendPart(shellQuote("Authorization: Bearer ***"))
	}
	return buf.String()
}

func shellQuote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "'\"'\"'") + "'"
}

func abbreviate(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= maxLoggedBodyBytes {
		return text
	}
	cut := maxLoggedBodyBytes
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + "...(truncated)"
}
