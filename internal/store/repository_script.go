// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/co-script/internal/logger"
	"github.com/MKhiriev/co-script/internal/utils"
	"github.com/MKhiriev/co-script/models"
)

const (
	// versionRetries bounds how often a save is replayed after losing a
	// version number race.
	versionRetries    = 5
	versionRetryDelay = 20 * time.Millisecond
)

var scriptColumns = []string{
	"id", "user_id", "title", "script_type", "content", "hook", "audience",
	"objective", "tone", "platform", "score", "score_breakdown", "ai_feedback",
	"status", "word_count", "created_at", "updated_at",
}

var versionColumns = []string{
	"id", "script_id", "version_number", "content", "hook", "score",
	"score_breakdown", "created_at",
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

type scriptRepository struct {
	db     *DB
	ids    utils.IDGenerator
	logger *logger.Logger
}

func NewScriptRepository(db *DB, ids utils.IDGenerator, logger *logger.Logger) ScriptRepository {
	logger.Debug().Msg("creating script repository")
	return &scriptRepository{
		db:     db,
		ids:    ids,
		logger: logger,
	}
}

func (r *scriptRepository) CreateScript(ctx context.Context, script models.Script) (models.Script, error) {
	log := logger.FromContext(ctx)

	if script.ScoreBreakdown == nil {
		script.ScoreBreakdown = models.ScoreBreakdown{}
	}

	query, args, err := r.db.builder.
		Insert(models.Script{}.TableName()).
		Columns(scriptColumns...).
		Values(
			script.ID, script.UserID, script.Title, script.ScriptType, script.Content,
			script.Hook, script.Audience, script.Objective, script.Tone, script.Platform,
			script.Score, script.ScoreBreakdown, script.AIFeedback, script.Status,
			script.WordCount, script.CreatedAt, script.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return models.Script{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*scriptRepository.CreateScript").Str("user_id", script.UserID).Msg("error inserting script")
		return models.Script{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return script, nil
}

// ListScripts returns the owner's scripts, most recently updated first.
func (r *scriptRepository) ListScripts(ctx context.Context, userID string) ([]models.Script, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(scriptColumns...).
		From(models.Script{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("updated_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*scriptRepository.ListScripts").Str("user_id", userID).Msg("failed to list scripts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	scripts := make([]models.Script, 0)
	for rows.Next() {
		script, scanErr := scanScript(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*scriptRepository.ListScripts").Msg("failed to scan script row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		scripts = append(scripts, script)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return scripts, nil
}

func (r *scriptRepository) GetScript(ctx context.Context, userID, scriptID string) (models.Script, error) {
	return r.selectScript(ctx, r.db, r.db.builder.Select(scriptColumns...), userID, scriptID)
}

// UpdateScript runs the versioning transaction and replays it when another
// save took the same version number first.
func (r *scriptRepository) UpdateScript(ctx context.Context, userID, scriptID string, patch models.ScriptPatch, updatedAt time.Time) (models.Script, error) {
	log := logger.FromContext(ctx)

	var updated models.Script
	backoff := retry.WithMaxRetries(versionRetries, retry.NewConstant(versionRetryDelay))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		script, err := r.updateScript(ctx, userID, scriptID, patch, updatedAt)
		if err != nil {
			if r.isContention(err) {
				log.Warn().Err(err).Str("func", "*scriptRepository.UpdateScript").Str("script_id", scriptID).Msg("version allocation conflict, retrying")
				return retry.RetryableError(err)
			}
			return err
		}
		updated = script
		return nil
	})
	if err != nil {
		if r.isContention(err) {
			return models.Script{}, fmt.Errorf("%w: %w", ErrVersionConflict, err)
		}
		return models.Script{}, err
	}

	return updated, nil
}

func (r *scriptRepository) isContention(err error) bool {
	return r.db.errorClassificator.IsUniqueViolation(err) ||
		r.db.errorClassificator.Classify(err) == Retryable
}

func (r *scriptRepository) updateScript(ctx context.Context, userID, scriptID string, patch models.ScriptPatch, updatedAt time.Time) (models.Script, error) {
	var result models.Script

	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		current, err := r.selectScript(ctx, tx, r.db.lockForUpdate(r.db.builder.Select(scriptColumns...)), userID, scriptID)
		if err != nil {
			return err
		}

		if patch.ChangesContent(current.Content) {
			if err = r.archiveVersion(ctx, tx, current, updatedAt); err != nil {
				return err
			}
		}

		if err = r.applyPatch(ctx, tx, userID, scriptID, patch, updatedAt); err != nil {
			return err
		}

		result, err = r.selectScript(ctx, tx, r.db.builder.Select(scriptColumns...), userID, scriptID)
		return err
	})

	return result, err
}

// archiveVersion stores the pre-update content under the next version number.
func (r *scriptRepository) archiveVersion(ctx context.Context, tx *sql.Tx, current models.Script, createdAt time.Time) error {
	query, args, err := r.db.builder.
		Select("COALESCE(MAX(version_number), 0)").
		From(models.ScriptVersion{}.TableName()).
		Where(sq.Eq{"script_id": current.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var latest int
	if err = tx.QueryRowContext(ctx, query, args...).Scan(&latest); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	breakdown := current.ScoreBreakdown
	if breakdown == nil {
		breakdown = models.ScoreBreakdown{}
	}

	query, args, err = r.db.builder.
		Insert(models.ScriptVersion{}.TableName()).
		Columns(versionColumns...).
		Values(r.ids.Generate(), current.ID, latest+1, current.Content, current.Hook, current.Score, breakdown, createdAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *scriptRepository) applyPatch(ctx context.Context, tx *sql.Tx, userID, scriptID string, patch models.ScriptPatch, updatedAt time.Time) error {
	ub := r.db.builder.Update(models.Script{}.TableName())

	if patch.Title != nil {
		ub = ub.Set("title", *patch.Title)
	}
	if patch.ScriptType != nil {
		ub = ub.Set("script_type", *patch.ScriptType)
	}
	if patch.Content != nil {
		ub = ub.Set("content", *patch.Content)
	}
	if patch.Hook != nil {
		ub = ub.Set("hook", *patch.Hook)
	}
	if patch.Audience != nil {
		ub = ub.Set("audience", *patch.Audience)
	}
	if patch.Objective != nil {
		ub = ub.Set("objective", *patch.Objective)
	}
	if patch.Tone != nil {
		ub = ub.Set("tone", *patch.Tone)
	}
	if patch.Platform != nil {
		ub = ub.Set("platform", *patch.Platform)
	}
	if patch.Score.Set {
		if patch.Score.Value == nil {
			ub = ub.Set("score", nil)
		} else {
			ub = ub.Set("score", *patch.Score.Value)
		}
	}
	if patch.ScoreBreakdown != nil {
		ub = ub.Set("score_breakdown", *patch.ScoreBreakdown)
	}
	if patch.AIFeedback != nil {
		ub = ub.Set("ai_feedback", *patch.AIFeedback)
	}
	if patch.Status != nil {
		ub = ub.Set("status", *patch.Status)
	}
	if patch.WordCount != nil {
		ub = ub.Set("word_count", *patch.WordCount)
	}

	query, args, err := ub.
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": scriptID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteScript removes the script together with its versions and share links.
func (r *scriptRepository) DeleteScript(ctx context.Context, userID, scriptID string) error {
	log := logger.FromContext(ctx)

	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		if err := r.checkOwnership(ctx, tx, r.db.lockForUpdate(r.db.builder.Select("id")), userID, scriptID); err != nil {
			return err
		}

		deletes := []sq.DeleteBuilder{
			r.db.builder.Delete(models.ScriptVersion{}.TableName()).Where(sq.Eq{"script_id": scriptID}),
			r.db.builder.Delete(models.ShareLink{}.TableName()).Where(sq.Eq{"script_id": scriptID}),
			r.db.builder.Delete(models.Script{}.TableName()).Where(sq.Eq{"id": scriptID, "user_id": userID}),
		}
		for _, db := range deletes {
			query, args, err := db.ToSql()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}
			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}
		return nil
	})
	if err != nil && !errors.Is(err, ErrScriptNotFound) {
		log.Err(err).Str("func", "*scriptRepository.DeleteScript").Str("script_id", scriptID).Msg("failed to delete script")
	}

	return err
}

// ListVersions returns the archived versions of an owned script, newest first.
func (r *scriptRepository) ListVersions(ctx context.Context, userID, scriptID string) ([]models.ScriptVersion, error) {
	log := logger.FromContext(ctx)

	if err := r.checkOwnership(ctx, r.db, r.db.builder.Select("id"), userID, scriptID); err != nil {
		return nil, err
	}

	query, args, err := r.db.builder.
		Select(versionColumns...).
		From(models.ScriptVersion{}.TableName()).
		Where(sq.Eq{"script_id": scriptID}).
		OrderBy("version_number DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*scriptRepository.ListVersions").Str("script_id", scriptID).Msg("failed to list versions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	versions := make([]models.ScriptVersion, 0)
	for rows.Next() {
		var (
			v     models.ScriptVersion
			score sql.NullInt64
		)
		if err = rows.Scan(&v.ID, &v.ScriptID, &v.VersionNumber, &v.Content, &v.Hook, &score, &v.ScoreBreakdown, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		v.Score = intPtr(score)
		v.CreatedAt = v.CreatedAt.UTC()
		versions = append(versions, v)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return versions, nil
}

// querier is satisfied by *DB and *sql.Tx.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// selectScript reads one owned script.
func (r *scriptRepository) selectScript(ctx context.Context, q querier, sb sq.SelectBuilder, userID, scriptID string) (models.Script, error) {
	query, args, err := sb.
		From(models.Script{}.TableName()).
		Where(sq.Eq{"id": scriptID, "user_id": userID}).
		ToSql()
	if err != nil {
		return models.Script{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	script, err := scanScript(q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Script{}, ErrScriptNotFound
	}
	if err != nil {
		return models.Script{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return script, nil
}

// checkOwnership returns ErrScriptNotFound unless userID owns scriptID.
func (r *scriptRepository) checkOwnership(ctx context.Context, q querier, sb sq.SelectBuilder, userID, scriptID string) error {
	query, args, err := sb.
		From(models.Script{}.TableName()).
		Where(sq.Eq{"id": scriptID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id string
	err = q.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrScriptNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return nil
}

func scanScript(s scanner) (models.Script, error) {
	var (
		script models.Script
		score  sql.NullInt64
	)
	err := s.Scan(
		&script.ID, &script.UserID, &script.Title, &script.ScriptType, &script.Content,
		&script.Hook, &script.Audience, &script.Objective, &script.Tone, &script.Platform,
		&score, &script.ScoreBreakdown, &script.AIFeedback, &script.Status,
		&script.WordCount, &script.CreatedAt, &script.UpdatedAt,
	)
	if err != nil {
		return models.Script{}, err
	}

	script.Score = intPtr(score)
	script.CreatedAt = script.CreatedAt.UTC()
	script.UpdatedAt = script.UpdatedAt.UTC()
	return script, nil
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}
