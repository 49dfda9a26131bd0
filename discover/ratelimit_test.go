package discover_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/icondeck/discover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimiter(t *testing.T) {
	t.Parallel()

	t.Run("first request per domain passes immediately", func(t *testing.T) {
		t.Parallel()

		l := discover.NewDomainLimiter(1)

		start := time.Now()
		require.NoError(t, l.Wait(context.Background(), "raw.example.com"))
		assert.Less(t, time.Since(start), 100*time.Millisecond)
	})

	t.Run("domains are limited independently", func(t *testing.T) {
		t.Parallel()

		l := discover.NewDomainLimiter(1)

		start := time.Now()
		require.NoError(t, l.Wait(context.Background(), "a.example.com"))
		require.NoError(t, l.Wait(context.Background(), "b.example.com"))
		require.NoError(t, l.Wait(context.Background(), "c.example.com"))
		assert.Less(t, time.Since(start), 100*time.Millisecond)
	})

	t.Run("second request on the same domain waits", func(t *testing.T) {
		t.Parallel()

		l := discover.NewDomainLimiter(10) // 100ms between requests

		require.NoError(t, l.Wait(context.Background(), "raw.example.com"))
		start := time.Now()
		require.NoError(t, l.Wait(context.Background(), "raw.example.com"))
		assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("cancellation interrupts the wait", func(t *testing.T) {
		t.Parallel()

		l := discover.NewDomainLimiter(0.001)

		require.NoError(t, l.Wait(context.Background(), "raw.example.com"))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		assert.Error(t, l.Wait(ctx, "raw.example.com"))
	})
}
