package http_test

import (
	"context"
	"testing"
	"time"

	mreadhttp "github.com/fwojciec/mread/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostLimiter(t *testing.T) {
	t.Parallel()

	t.Run("allows immediate first request", func(t *testing.T) {
		t.Parallel()

		limiter := mreadhttp.NewHostLimiter(10)

		start := time.Now()
		err := limiter.Wait(context.Background(), "medium.com")

		require.NoError(t, err)
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("rate limits requests to same host", func(t *testing.T) {
		t.Parallel()

		limiter := mreadhttp.NewHostLimiter(10) // 100ms between requests

		require.NoError(t, limiter.Wait(context.Background(), "medium.com"))

		start := time.Now()
		err := limiter.Wait(context.Background(), "medium.com")

		require.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)
	})

	t.Run("different hosts have independent limits", func(t *testing.T) {
		t.Parallel()

		limiter := mreadhttp.NewHostLimiter(10)

		require.NoError(t, limiter.Wait(context.Background(), "medium.com"))

		start := time.Now()
		err := limiter.Wait(context.Background(), "freedium.cfd")

		require.NoError(t, err)
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("zero rate never waits", func(t *testing.T) {
		t.Parallel()

		limiter := mreadhttp.NewHostLimiter(0)

		start := time.Now()
		for range 5 {
			require.NoError(t, limiter.Wait(context.Background(), "medium.com"))
		}
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		limiter := mreadhttp.NewHostLimiter(1)
		require.NoError(t, limiter.Wait(context.Background(), "medium.com"))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		err := limiter.Wait(ctx, "medium.com")
		require.Error(t, err)
	})
}
