package llm

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	maxAttempts    = 3
	retryBaseDelay = time.Second
)

// sleep is replaced in tests to avoid real backoff delays.
var sleep = func(ctx context.Context, d time.Duration) error {
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// withRetry runs fn up to maxAttempts times with exponential backoff
// (1s, 2s, 4s). Only rate-limited errors are retried; every other
// failure propagates immediately.
func withRetry(ctx context.Context, op string, fn func() (string, error)) (string, error) {
	delay := retryBaseDelay
	for attempt := 1; ; attempt++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		if !IsRateLimited(err) || attempt >= maxAttempts {
			return "", err
		}
		log.Warn().
			Str("op", op).
			Int("attempt", attempt).
			Dur("delay", delay).
			Msg("model rate limited, backing off")
		if serr := sleep(ctx, delay); serr != nil {
			return "", WrapError(KindTransport, serr, "%s cancelled during backoff: %v", op, serr)
		}
		delay *= 2
	}
}
