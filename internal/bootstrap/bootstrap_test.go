package bootstrap

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type countingCleaner struct {
	calls atomic.Int64
}

func (c *countingCleaner) CleanupExpiredTokens(ctx context.Context) (int64, error) {
	c.calls.Add(1)
	return 3, nil
}

func TestTokenJanitorRunsPeriodically(t *testing.T) {
	cleaner := &countingCleaner{}

	stop := startTokenJanitor(cleaner, 5*time.Millisecond, zerolog.Nop())
	defer stop()

	assert.Eventually(t, func() bool {
		return cleaner.calls.Load() >= 2
	}, time.Second, 5*time.Millisecond)
}

func TestTokenJanitorStops(t *testing.T) {
	cleaner := &countingCleaner{}

	stop := startTokenJanitor(cleaner, 5*time.Millisecond, zerolog.Nop())

	assert.Eventually(t, func() bool {
		return cleaner.calls.Load() >= 1
	}, time.Second, 5*time.Millisecond)

	stop()
	settled := cleaner.calls.Load()

	time.Sleep(30 * time.Millisecond)
	assert.LessOrEqual(t, cleaner.calls.Load(), settled+1)
}
