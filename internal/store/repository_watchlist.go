package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/co-script/internal/logger"
	"github.com/MKhiriev/co-script/models"
)

var watchlistColumns = []string{
	"id", "user_id", "name", "platform", "channel_url", "status", "last_synced_at", "created_at",
}

type watchlistRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewWatchlistRepository(db *DB, logger *logger.Logger) WatchlistRepository {
	logger.Debug().Msg("creating watchlist repository")
	return &watchlistRepository{
		db:     db,
		logger: logger,
	}
}

func (r *watchlistRepository) CreateWatchlist(ctx context.Context, watchlist models.Watchlist) (models.Watchlist, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(models.Watchlist{}.TableName()).
		Columns(watchlistColumns...).
		Values(watchlist.ID, watchlist.UserID, watchlist.Name, watchlist.Platform, watchlist.ChannelURL,
			watchlist.Status, watchlist.LastSyncedAt, watchlist.CreatedAt).
		ToSql()
	if err != nil {
		return models.Watchlist{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*watchlistRepository.CreateWatchlist").Str("user_id", watchlist.UserID).Msg("error inserting watchlist")
		return models.Watchlist{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return watchlist, nil
}

// ListWatchlists returns the owner's watchlists, newest first.
func (r *watchlistRepository) ListWatchlists(ctx context.Context, userID string) ([]models.Watchlist, error) {
	return r.list(ctx, r.db.builder.
		Select(watchlistColumns...).
		From(models.Watchlist{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC"))
}

func (r *watchlistRepository) ListWatchlistsDue(ctx context.Context, syncedBefore time.Time) ([]models.Watchlist, error) {
	return r.list(ctx, r.db.builder.
		Select(watchlistColumns...).
		From(models.Watchlist{}.TableName()).
		Where(sq.Or{
			sq.Eq{"last_synced_at": nil},
			sq.Lt{"last_synced_at": syncedBefore},
		}).
		OrderBy("created_at ASC", "id ASC"))
}

func (r *watchlistRepository) GetWatchlist(ctx context.Context, userID, watchlistID string) (models.Watchlist, error) {
	query, args, err := r.db.builder.
		Select(watchlistColumns...).
		From(models.Watchlist{}.TableName()).
		Where(sq.Eq{"id": watchlistID, "user_id": userID}).
		ToSql()
	if err != nil {
		return models.Watchlist{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	watchlist, err := scanWatchlist(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Watchlist{}, ErrWatchlistNotFound
	}
	if err != nil {
		return models.Watchlist{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return watchlist, nil
}

func (r *watchlistRepository) SetWatchlistStatus(ctx context.Context, userID, watchlistID string, status models.WatchlistStatus, lastSyncedAt *time.Time) (models.Watchlist, error) {
	log := logger.FromContext(ctx)

	ub := r.db.builder.
		Update(models.Watchlist{}.TableName()).
		Set("status", status)
	if lastSyncedAt != nil {
		ub = ub.Set("last_synced_at", lastSyncedAt.UTC())
	}

	query, args, err := ub.Where(sq.Eq{"id": watchlistID, "user_id": userID}).ToSql()
	if err != nil {
		return models.Watchlist{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*watchlistRepository.SetWatchlistStatus").Str("watchlist_id", watchlistID).Msg("failed to update watchlist")
		return models.Watchlist{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if err = requireAffected(res, ErrWatchlistNotFound); err != nil {
		return models.Watchlist{}, err
	}

	return r.GetWatchlist(ctx, userID, watchlistID)
}

func (r *watchlistRepository) DeleteWatchlist(ctx context.Context, userID, watchlistID string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Delete(models.Watchlist{}.TableName()).
		Where(sq.Eq{"id": watchlistID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*watchlistRepository.DeleteWatchlist").Str("watchlist_id", watchlistID).Msg("failed to delete watchlist")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(res, ErrWatchlistNotFound)
}

func (r *watchlistRepository) list(ctx context.Context, sb sq.SelectBuilder) ([]models.Watchlist, error) {
	log := logger.FromContext(ctx)

	query, args, err := sb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*watchlistRepository.list").Msg("failed to list watchlists")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	watchlists := make([]models.Watchlist, 0)
	for rows.Next() {
		watchlist, scanErr := scanWatchlist(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		watchlists = append(watchlists, watchlist)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return watchlists, nil
}

func scanWatchlist(s scanner) (models.Watchlist, error) {
	var (
		w          models.Watchlist
		lastSynced sql.NullTime
	)
	if err := s.Scan(&w.ID, &w.UserID, &w.Name, &w.Platform, &w.ChannelURL, &w.Status, &lastSynced, &w.CreatedAt); err != nil {
		return models.Watchlist{}, err
	}

	if lastSynced.Valid {
		t := lastSynced.Time.UTC()
		w.LastSyncedAt = &t
	}
	w.CreatedAt = w.CreatedAt.UTC()
	return w, nil
}
