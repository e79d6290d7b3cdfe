package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/co-script/internal/logger"
	"github.com/MKhiriev/co-script/models"
)

var frameworkColumns = []string{
	"id", "user_id", "name", "category", "description", "structure", "example", "source", "is_system", "created_at",
}

type frameworkRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewFrameworkRepository(db *DB, logger *logger.Logger) FrameworkRepository {
	logger.Debug().Msg("creating framework repository")
	return &frameworkRepository{
		db:     db,
		logger: logger,
	}
}

// ListFrameworks returns system frameworks followed by the caller's own,
// each group ordered by category and name.
func (r *frameworkRepository) ListFrameworks(ctx context.Context, userID string) ([]models.Framework, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(frameworkColumns...).
		From(models.Framework{}.TableName()).
		Where(sq.Or{
			sq.Eq{"is_system": true},
			sq.Eq{"user_id": userID},
		}).
		OrderBy("is_system DESC", "category ASC", "name ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*frameworkRepository.ListFrameworks").Str("user_id", userID).Msg("failed to list frameworks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	frameworks := make([]models.Framework, 0)
	for rows.Next() {
		var (
			fw    models.Framework
			owner sql.NullString
		)
		if err = rows.Scan(&fw.ID, &owner, &fw.Name, &fw.Category, &fw.Description, &fw.Structure,
			&fw.Example, &fw.Source, &fw.IsSystem, &fw.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if owner.Valid {
			fw.UserID = &owner.String
		}
		if fw.Structure == nil {
			fw.Structure = models.Steps{}
		}
		fw.CreatedAt = fw.CreatedAt.UTC()
		frameworks = append(frameworks, fw)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return frameworks, nil
}

func (r *frameworkRepository) CreateFramework(ctx context.Context, framework models.Framework) (models.Framework, error) {
	log := logger.FromContext(ctx)

	if err := r.insert(ctx, framework); err != nil {
		log.Err(err).Str("func", "*frameworkRepository.CreateFramework").Msg("error inserting framework")
		return models.Framework{}, err
	}

	return framework, nil
}

func (r *frameworkRepository) CreateSystemFramework(ctx context.Context, framework models.Framework) (bool, error) {
	framework.IsSystem = true
	framework.UserID = nil

	query, args, err := r.db.builder.
		Select("id").
		From(models.Framework{}.TableName()).
		Where(sq.Eq{"is_system": true, "name": framework.Name}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	exists := rows.Next()
	err = rows.Err()
	_ = rows.Close()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	if exists {
		return false, nil
	}

	if err = r.insert(ctx, framework); err != nil {
		// a concurrent seeder got there first
		if r.db.errorClassificator.IsUniqueViolation(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func (r *frameworkRepository) insert(ctx context.Context, fw models.Framework) error {
	if fw.Structure == nil {
		fw.Structure = models.Steps{}
	}

	query, args, err := r.db.builder.
		Insert(models.Framework{}.TableName()).
		Columns(frameworkColumns...).
		Values(fw.ID, fw.UserID, fw.Name, fw.Category, fw.Description, fw.Structure,
			fw.Example, fw.Source, fw.IsSystem, fw.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
