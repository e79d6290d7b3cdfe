package workers

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/co-script/internal/config"
	"github.com/MKhiriev/co-script/internal/logger"
	"github.com/MKhiriev/co-script/internal/service"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

// NewWorkers builds the workers enabled by cfg. A zero interval disables the
// watchlist auto-sync worker.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{logger: logger}

	if cfg.WatchlistSyncInterval > 0 {
		w.workers = append(w.workers, NewWatchlistSyncWorker(services.WatchlistService, cfg.WatchlistSyncInterval, logger))
	}

	logger.Info().Int("count", len(w.workers)).Msg("background workers created")
	return w
}

// Len reports how many workers are enabled.
func (w *Workers) Len() int {
	return len(w.workers)
}

// Run starts every worker and blocks until all of them return. The first
// worker error cancels the others and is returned.
func (w *Workers) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	for _, worker := range w.workers {
		g.Go(func() error {
			w.logger.Info().Str("worker", worker.Name()).Msg("worker started")
			err := worker.Run(ctx)
			w.logger.Info().Str("worker", worker.Name()).Err(err).Msg("worker stopped")
			return err
		})
	}

	return g.Wait()
}
