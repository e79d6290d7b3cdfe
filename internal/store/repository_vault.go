package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/co-script/internal/logger"
	"github.com/MKhiriev/co-script/models"
)

var vaultColumns = []string{
	"id", "user_id", "title", "content", "source_url", "source_type", "tags", "notes", "created_at",
}

type vaultRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewVaultRepository(db *DB, logger *logger.Logger) VaultRepository {
	logger.Debug().Msg("creating vault repository")
	return &vaultRepository{
		db:     db,
		logger: logger,
	}
}

func (r *vaultRepository) CreateVaultItem(ctx context.Context, item models.VaultItem) (models.VaultItem, error) {
	log := logger.FromContext(ctx)

	if item.Tags == nil {
		item.Tags = models.Tags{}
	}

	query, args, err := r.db.builder.
		Insert(models.VaultItem{}.TableName()).
		Columns(vaultColumns...).
		Values(item.ID, item.UserID, item.Title, item.Content, item.SourceURL, item.SourceType, item.Tags, item.Notes, item.CreatedAt).
		ToSql()
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*vaultRepository.CreateVaultItem").Str("user_id", item.UserID).Msg("error inserting vault item")
		return models.VaultItem{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return item, nil
}

// ListVaultItems returns the owner's items, newest first.
func (r *vaultRepository) ListVaultItems(ctx context.Context, userID string) ([]models.VaultItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(vaultColumns...).
		From(models.VaultItem{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.ListVaultItems").Str("user_id", userID).Msg("failed to list vault items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.VaultItem, 0)
	for rows.Next() {
		var item models.VaultItem
		if err = rows.Scan(&item.ID, &item.UserID, &item.Title, &item.Content, &item.SourceURL,
			&item.SourceType, &item.Tags, &item.Notes, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if item.Tags == nil {
			item.Tags = models.Tags{}
		}
		item.CreatedAt = item.CreatedAt.UTC()
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

func (r *vaultRepository) DeleteVaultItem(ctx context.Context, userID, itemID string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Delete(models.VaultItem{}.TableName()).
		Where(sq.Eq{"id": itemID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.DeleteVaultItem").Str("item_id", itemID).Msg("failed to delete vault item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(res, ErrVaultItemNotFound)
}

// requireAffected returns notFound when res touched no rows.
func requireAffected(res interface{ RowsAffected() (int64, error) }, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
