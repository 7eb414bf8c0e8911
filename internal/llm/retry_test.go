package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubSleep(t *testing.T, delays *[]time.Duration) {
	t.Helper()
	orig := sleep
	sleep = func(_ context.Context, d time.Duration) error {
		*delays = append(*delays, d)
		return nil
	}
	t.Cleanup(func() { sleep = orig })
}

func TestWithRetryRateLimited(t *testing.T) {
	var delays []time.Duration
	stubSleep(t, &delays)

	calls := 0
	result, err := withRetry(context.Background(), "test", func() (string, error) {
		calls++
		if calls < 3 {
			return "", RateLimitedError(nil, "rate limited")
		}
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 3, calls)
	// Exponential backoff: 1s then 2s.
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, delays)
}

func TestWithRetryExhaustsAttempts(t *testing.T) {
	var delays []time.Duration
	stubSleep(t, &delays)

	calls := 0
	_, err := withRetry(context.Background(), "test", func() (string, error) {
		calls++
		return "", RateLimitedError(nil, "rate limited")
	})

	require.Error(t, err)
	assert.True(t, IsRateLimited(err))
	assert.Equal(t, 3, calls)
	assert.Len(t, delays, 2)
}

func TestWithRetryNonRetryableFailsImmediately(t *testing.T) {
	var delays []time.Duration
	stubSleep(t, &delays)

	calls := 0
	_, err := withRetry(context.Background(), "test", func() (string, error) {
		calls++
		return "", NewError(KindTransport, "connection refused")
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.Empty(t, delays)
}

func TestErrorKinds(t *testing.T) {
	validation := NewError(KindValidation, "image too small")
	assert.Equal(t, KindValidation, KindOf(validation))
	assert.False(t, IsRateLimited(validation))

	rateLimited := RateLimitedError(errors.New("429"), "rate limited")
	assert.Equal(t, KindTransport, KindOf(rateLimited))
	assert.True(t, IsRateLimited(rateLimited))

	cause := errors.New("boom")
	wrapped := WrapError(KindParse, cause, "failed: %v", cause)
	assert.Equal(t, KindParse, KindOf(wrapped))
	assert.ErrorIs(t, wrapped, cause)

	// Errors outside the taxonomy classify as transport.
	assert.Equal(t, KindTransport, KindOf(errors.New("unknown")))
}
