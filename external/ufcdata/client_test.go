package ufcdata

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/riskibarqy/fightcard/internal/platform/logging"
	"github.com/riskibarqy/fightcard/internal/platform/resilience"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, url string, retries int, breaker resilience.CircuitBreakerConfig) *Client {
	t.Helper()
	client, err := NewClient(ClientConfig{
		URL:            url,
		Token:          "secret-token",
		Timeout:        2 * time.Second,
		MaxRetries:     retries,
		RetryDelay:     time.Millisecond,
		Logger:         logging.NewNop(),
		CircuitBreaker: breaker,
	})
	require.NoError(t, err)
	return client
}

func TestClientFetch(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		_, _ = w.Write([]byte(`{"events":[]}`))
	}))
	defer server.Close()

	body, err := newTestClient(t, server.URL, 0, resilience.CircuitBreakerConfig{}).Fetch(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `{"events":[]}`, string(body))
}

func TestClientRetriesTransientStatus(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	body, err := newTestClient(t, server.URL, 2, resilience.CircuitBreakerConfig{}).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(body))
	assert.Equal(t, int32(3), calls.Load())
}

func TestClientDoesNotRetryClientErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "no such file", http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 3, resilience.CircuitBreakerConfig{Enabled: true, FailureThreshold: 1})
	_, err := client.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=404")
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, resilience.CircuitStateClosed, client.breaker.State(), "a 404 is not an outage")
}

func TestClientCircuitOpensOnOutage(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 0, resilience.CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 1,
		OpenTimeout:      time.Minute,
	})

	_, err := client.Fetch(context.Background())
	require.Error(t, err)

	_, err = client.Fetch(context.Background())
	require.True(t, errors.Is(err, ErrUpstreamUnavailable), "got %v", err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestNewClientValidatesURL(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "ftp://example.com/data.json", "http://"} {
		_, err := NewClient(ClientConfig{URL: raw})
		assert.Error(t, err, raw)
	}
}

func TestBuildCurlPreviewRedactsToken(t *testing.T) {
	t.Parallel()

	preview := buildCurlPreview("https://data.example.com/ufc.json?x='1'", true)
	assert.True(t, strings.HasPrefix(preview, "curl 'https://data.example.com/ufc.json?x='\"'\"'1'\"'\"''"))
	assert.Contains(t, preview, "Authorization: Bearer ***")
	assert.NotContains(t, buildCurlPreview("https://data.example.com", false), "Authorization")
}

func TestClientSharedFetchSurvivesCallerCancel(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			close(started)
			<-release
		}
		_, _ = w.Write([]byte(`{"events":[]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 0, resilience.CircuitBreakerConfig{Enabled: true, FailureThreshold: 1})

	ctx, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := client.Fetch(ctx)
		firstErr <- err
	}()
	<-started
	cancel()
	require.ErrorIs(t, <-firstErr, context.Canceled)

	// The upstream request is still in flight; this caller joins it.
	time.AfterFunc(100*time.Millisecond, func() { close(release) })
	body, err := client.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, `{"events":[]}`, string(body))
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, resilience.CircuitStateClosed, client.breaker.State())
}

func TestClientFetchBudget(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "https://data.example.com/ufc.json", 2, resilience.CircuitBreakerConfig{})
	// 3 attempts at 2s plus waits of 1ms and 2ms.
	assert.Equal(t, 6*time.Second+3*time.Millisecond, client.fetchBudget())
}

func TestAbbreviateKeepsRunesWhole(t *testing.T) {
	t.Parallel()

	body := []byte(strings.Repeat("a", maxLoggedBodyBytes-1) + "é" + strings.Repeat("b", 10))
	got := abbreviate(body)
	require.True(t, utf8.ValidString(got), "cut inside a rune: %q", got[len(got)-20:])
	assert.Equal(t, strings.Repeat("a", maxLoggedBodyBytes-1)+"...(truncated)", got)

	assert.Equal(t, "short body", abbreviate([]byte("  short body \n")))
}
