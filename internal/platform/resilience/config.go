package resilience

import "time"

// CircuitBreakerConfig mirrors the UFC_DATA_CIRCUIT_* settings. Zero values
// fall back to the defaults below.
type CircuitBreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenMaxReq   int
}

const (
	defaultFailureThreshold = 5
	defaultOpenTimeout      = 15 * time.Second
	defaultHalfOpenMaxReq   = 2
)

func NormalizeCircuitBreakerConfig(cfg CircuitBreakerConfig) CircuitBreakerConfig {
	if cfg.FailureThreshold < 1 {
		cfg.FailureThreshold = defaultFailureThreshold
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = defaultOpenTimeout
	}
	if cfg.HalfOpenMaxReq < 1 {
		cfg.HalfOpenMaxReq = defaultHalfOpenMaxReq
	}
	return cfg
}

// NewCircuitBreakerFromConfig returns nil when the breaker is disabled.
// onChange, when set, is registered as the state listener.
func NewCircuitBreakerFromConfig(cfg CircuitBreakerConfig, onChange func(from, to CircuitState)) *CircuitBreaker {
	if !cfg.Enabled {
		return nil
	}
	cfg = NormalizeCircuitBreakerConfig(cfg)
	b := NewCircuitBreaker(cfg.FailureThreshold, cfg.OpenTimeout, cfg.HalfOpenMaxReq)
	if onChange != nil {
		b.OnStateChange(onChange)
	}
	return b
}

// NormalizeRetryConfig clamps negative retries to zero and fills a missing
// base delay with fallback.
func NormalizeRetryConfig(maxRetries int, baseDelay, fallback time.Duration) RetryConfig {
	if baseDelay <= 0 {
		baseDelay = fallback
	}
	return RetryConfig{MaxRetries: max(maxRetries, 0), BaseDelay: baseDelay}
}
