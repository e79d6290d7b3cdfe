package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/co-script/internal/logger"
	"github.com/MKhiriev/co-script/internal/service"
)

// countingWatchlistService records SyncDue calls.
type countingWatchlistService struct {
	service.WatchlistService

	mu      sync.Mutex
	calls   int
	maxAges []time.Duration
	err     error
}

func (c *countingWatchlistService) SyncDue(_ context.Context, maxAge time.Duration) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	c.maxAges = append(c.maxAges, maxAge)
	return 1, c.err
}

func (c *countingWatchlistService) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func runUntilCalls(t *testing.T, svc *countingWatchlistService, interval time.Duration, calls int) {
	t.Helper()

	worker := NewWatchlistSyncWorker(svc, interval, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	require.Eventually(t, func() bool { return svc.callCount() >= calls }, 2*time.Second, interval)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after cancellation")
	}
}

func TestWatchlistSyncWorker_SyncsEveryInterval(t *testing.T) {
	svc := &countingWatchlistService{}

	runUntilCalls(t, svc, 10*time.Millisecond, 3)

	svc.mu.Lock()
	defer svc.mu.Unlock()
	for _, maxAge := range svc.maxAges {
		assert.Equal(t, 10*time.Millisecond, maxAge)
	}
}

func TestWatchlistSyncWorker_KeepsRunningAfterErrors(t *testing.T) {
	svc := &countingWatchlistService{err: errors.New("database is locked")}

	runUntilCalls(t, svc, 10*time.Millisecond, 2)
}

func TestWatchlistSyncWorker_StopsBeforeFirstTick(t *testing.T) {
	svc := &countingWatchlistService{}
	worker := NewWatchlistSyncWorker(svc, time.Hour, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, worker.Run(ctx))
	assert.Zero(t, svc.callCount())
	assert.Equal(t, "watchlist-sync", worker.Name())
}
