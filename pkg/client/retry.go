package client

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// Retrier handles retry logic with exponential backoff.
// It is safe for concurrent use by multiple goroutines.
type Retrier struct {
	maxRetries   int
	retryWaitMin time.Duration
	retryWaitMax time.Duration
}

func newRetrier(opts *Options) *Retrier {
	return &Retrier{
		maxRetries:   opts.maxRetries,
		retryWaitMin: opts.retryWaitMin,
		retryWaitMax: opts.retryWaitMax,
	}
}

// Do executes fn with retry logic.
func (r *Retrier) Do(ctx context.Context, fn func() error) error {
	var lastErr error

	for attempt := 0; attempt <= r.maxRetries; attempt++ {
		// Exponential backoff before retry (skip on first attempt)
		if attempt > 0 {
			timer := time.NewTimer(r.backoff(attempt))
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			}
		}

		lastErr = fn()
		if lastErr == nil {
			return nil
		}

		if !r.shouldRetry(lastErr) {
			return lastErr
		}
	}

	return lastErr
}

// shouldRetry only retries answers the service itself marked as server
// failures. Transport, validation and decoding errors are returned as is.
func (r *Retrier) shouldRetry(err error) bool {
	var remoteErr *RemoteServiceError
	return errors.As(err, &remoteErr) && remoteErr.StatusCode >= 500
}

func (r *Retrier) backoff(attempt int) time.Duration {
	// Cap attempt to prevent overflow
	if attempt > 10 {
		attempt = 10
	}

	mult := math.Pow(2, float64(attempt))
	wait := time.Duration(mult) * r.retryWaitMin

	// Add jitter (0-100% of retryWaitMin) - using math/rand/v2 (goroutine-safe)
	jitter := time.Duration(rand.Int64N(int64(r.retryWaitMin)))
	wait += jitter

	if wait > r.retryWaitMax {
		wait = r.retryWaitMax
	}

	return wait
}
