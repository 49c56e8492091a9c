package lending

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

const (
	retryBaseDelay    = 10 * time.Millisecond
	retryJitterFactor = 0.3
)

// retryOnConflict re-runs fn with exponential backoff and jitter while it
// keeps failing with ErrConcurrencyConflict. Every other error, including a
// context timeout, fails fast.
func retryOnConflict(ctx context.Context, attempts int, fn func(ctx context.Context) error) error {
	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			delay := retryBaseDelay * time.Duration(1<<(attempt-1))
			delay += time.Duration(rand.Float64() * float64(delay) * retryJitterFactor)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		lastErr = fn(ctx)
		if lastErr == nil || !errors.Is(lastErr, ErrConcurrencyConflict) {
			return lastErr
		}
	}
	return lastErr
}
