// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/co-script/internal/logger"
	"github.com/MKhiriev/co-script/internal/service"
)

// watchlistSyncWorker periodically syncs every watchlist that was never
// synced or whose last sync is older than the interval.
type watchlistSyncWorker struct {
	watchlists service.WatchlistService
	interval   time.Duration

	logger *logger.Logger
}

func NewWatchlistSyncWorker(watchlists service.WatchlistService, interval time.Duration, logger *logger.Logger) Worker {
	return &watchlistSyncWorker{
		watchlists: watchlists,
		interval:   interval,
		logger:     logger.WithComponent("watchlist-sync"),
	}
}

func (w *watchlistSyncWorker) Name() string {
	return "watchlist-sync"
}

// Run ticks every interval until ctx is cancelled. A failed round is logged
// and retried on the next tick.
func (w *watchlistSyncWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.syncRound(ctx)
		}
	}
}

func (w *watchlistSyncWorker) syncRound(ctx context.Context) {
	start := time.Now()

	synced, err := w.watchlists.SyncDue(w.logger.WithContext(ctx), w.interval)
	if err != nil {
		w.logger.Warn().Err(err).Int("synced", synced).Msg("watchlist sync round finished with errors")
		return
	}
	if synced > 0 {
		w.logger.Info().Int("synced", synced).Dur("duration", time.Since(start)).Msg("watchlists synced")
	}
}
