// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/co-script/internal/logger"
	"github.com/MKhiriev/co-script/internal/store"
	"github.com/MKhiriev/co-script/internal/utils"
	"github.com/MKhiriev/co-script/internal/validators"
	"github.com/MKhiriev/co-script/models"
)

// watchlistService manages monitored channels. Source discovery is a stub:
// a sync only moves the watchlist through "syncing" back to "active" and
// stamps last_synced_at.
type watchlistService struct {
	watchlists store.WatchlistRepository
	ids        utils.IDGenerator
	validator  validators.Validator
	now        func() time.Time
	logger     *logger.Logger
}

func NewWatchlistService(watchlists store.WatchlistRepository, ids utils.IDGenerator, logger *logger.Logger) WatchlistService {
	return &watchlistService{
		watchlists: watchlists,
		ids:        ids,
		validator:  validators.NewRequestValidator(),
		now:        time.Now,
		logger:     logger,
	}
}

func (s *watchlistService) CreateWatchlist(ctx context.Context, userID string, watchlist models.NewWatchlist) (models.Watchlist, error) {
	if err := s.validator.Validate(ctx, watchlist); err != nil {
		return models.Watchlist{}, err
	}

	platform := watchlist.Platform
	if platform == "" {
		platform = models.YouTube
	}

	created, err := s.watchlists.CreateWatchlist(ctx, models.Watchlist{
		ID:         s.ids.Generate(),
		UserID:     userID,
		Name:       strings.TrimSpace(watchlist.Name),
		Platform:   platform,
		ChannelURL: strings.TrimSpace(watchlist.ChannelURL),
		Status:     models.WatchlistActive,
		CreatedAt:  s.now().UTC(),
	})
	if err != nil {
		return models.Watchlist{}, fmt.Errorf("error creating watchlist: %w", err)
	}

	return created, nil
}

func (s *watchlistService) ListWatchlists(ctx context.Context, userID string) ([]models.Watchlist, error) {
	watchlists, err := s.watchlists.ListWatchlists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing watchlists: %w", err)
	}
	return watchlists, nil
}

// SyncWatchlist runs a sync of a watchlist owned by userID.
func (s *watchlistService) SyncWatchlist(ctx context.Context, userID, watchlistID string) (models.WatchlistSyncResult, error) {
	if _, err := s.watchlists.GetWatchlist(ctx, userID, watchlistID); err != nil {
		return models.WatchlistSyncResult{}, fmt.Errorf("error getting watchlist: %w", err)
	}

	return s.sync(ctx, userID, watchlistID)
}

func (s *watchlistService) DeleteWatchlist(ctx context.Context, userID, watchlistID string) error {
	if err := s.watchlists.DeleteWatchlist(ctx, userID, watchlistID); err != nil {
		return fmt.Errorf("error deleting watchlist: %w", err)
	}
	return nil
}

// SyncDue syncs every watchlist of every user that was never synced or was
// last synced more than maxAge ago. A failing watchlist is marked "error"
// and does not stop the others; all failures are returned joined.
func (s *watchlistService) SyncDue(ctx context.Context, maxAge time.Duration) (int, error) {
	log := logger.FromContext(ctx)

	due, err := s.watchlists.ListWatchlistsDue(ctx, s.now().UTC().Add(-maxAge))
	if err != nil {
		return 0, fmt.Errorf("error listing due watchlists: %w", err)
	}

	var (
		synced int
		errs   []error
	)
	for _, w := range due {
		if err = ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		if _, err = s.sync(ctx, w.UserID, w.ID); err != nil {
			log.Err(err).Str("func", "*watchlistService.SyncDue").Str("watchlist_id", w.ID).Msg("watchlist sync failed")
			errs = append(errs, err)
			if _, markErr := s.watchlists.SetWatchlistStatus(ctx, w.UserID, w.ID, models.WatchlistError, nil); markErr != nil {
				errs = append(errs, markErr)
			}
			continue
		}
		synced++
	}

	return synced, errors.Join(errs...)
}

func (s *watchlistService) sync(ctx context.Context, userID, watchlistID string) (models.WatchlistSyncResult, error) {
	if _, err := s.watchlists.SetWatchlistStatus(ctx, userID, watchlistID, models.WatchlistSyncing, nil); err != nil {
		return models.WatchlistSyncResult{}, fmt.Errorf("error marking watchlist as syncing: %w", err)
	}

	syncedAt := s.now().UTC()
	watchlist, err := s.watchlists.SetWatchlistStatus(ctx, userID, watchlistID, models.WatchlistActive, &syncedAt)
	if err != nil {
		return models.WatchlistSyncResult{}, fmt.Errorf("error finishing watchlist sync: %w", err)
	}

	return models.WatchlistSyncResult{
		WatchlistID:  watchlistID,
		Status:       models.WatchlistSynced,
		SourcesFound: 0,
		Watchlist:    watchlist,
	}, nil
}
