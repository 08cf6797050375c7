package resilience

import (
	"context"
	"time"
)

type RetryConfig struct {
	MaxRetries int
	BaseDelay  time.Duration
}

// Retry calls fn until it succeeds, reports a permanent error or the
// attempts run out. Waits grow linearly with the attempt number.
func Retry(ctx context.Context, cfg RetryConfig, fn func(attempt int) (retryable bool, err error)) error {
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = time.Second
	}

	var lastErr error
	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		retryable, err := fn(attempt)
		if err == nil {
			return nil
		}
		lastErr = err
		if !retryable || attempt == cfg.MaxRetries {
			break
		}

		timer := time.NewTimer(time.Duration(attempt+1) * cfg.BaseDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	return lastErr
}
