package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/co-script/internal/logger"
	"github.com/MKhiriev/co-script/models"
)

var shareLinkColumns = []string{"id", "token", "script_id", "expires_at", "created_at"}

type shareLinkRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewShareLinkRepository(db *DB, logger *logger.Logger) ShareLinkRepository {
	logger.Debug().Msg("creating share link repository")
	return &shareLinkRepository{
		db:     db,
		logger: logger,
	}
}

func (r *shareLinkRepository) CreateShareLink(ctx context.Context, link models.ShareLink) (models.ShareLink, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(models.ShareLink{}.TableName()).
		Columns(shareLinkColumns...).
		Values(link.ID, link.Token, link.ScriptID, link.ExpiresAt, link.CreatedAt).
		ToSql()
	if err != nil {
		return models.ShareLink{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*shareLinkRepository.CreateShareLink").Str("script_id", link.ScriptID).Msg("error inserting share link")
		return models.ShareLink{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return link, nil
}

func (r *shareLinkRepository) GetSharedScript(ctx context.Context, token string) (models.ShareLink, models.Script, error) {
	log := logger.FromContext(ctx)

	columns := make([]string, 0, len(shareLinkColumns)+len(scriptColumns))
	for _, c := range shareLinkColumns {
		columns = append(columns, "l."+c)
	}
	for _, c := range scriptColumns {
		columns = append(columns, "s."+c)
	}

	query, args, err := r.db.builder.
		Select(columns...).
		From(models.ShareLink{}.TableName() + " l").
		Join(models.Script{}.TableName() + " s ON s.id = l.script_id").
		Where(sq.Eq{"l.token": token}).
		ToSql()
	if err != nil {
		return models.ShareLink{}, models.Script{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		link   models.ShareLink
		script models.Script
		score  sql.NullInt64
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&link.ID, &link.Token, &link.ScriptID, &link.ExpiresAt, &link.CreatedAt,
		&script.ID, &script.UserID, &script.Title, &script.ScriptType, &script.Content,
		&script.Hook, &script.Audience, &script.Objective, &script.Tone, &script.Platform,
		&score, &script.ScoreBreakdown, &script.AIFeedback, &script.Status,
		&script.WordCount, &script.CreatedAt, &script.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ShareLink{}, models.Script{}, ErrShareLinkNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*shareLinkRepository.GetSharedScript").Msg("error scanning shared script")
		return models.ShareLink{}, models.Script{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	link.ExpiresAt = link.ExpiresAt.UTC()
	link.CreatedAt = link.CreatedAt.UTC()
	script.Score = intPtr(score)
	script.CreatedAt = script.CreatedAt.UTC()
	script.UpdatedAt = script.UpdatedAt.UTC()

	return link, script, nil
}
