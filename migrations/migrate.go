// Package migrations embeds the schema migrations for both supported SQL
// dialects and the catalogue of system frameworks.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/MKhiriev/co-script/models"
	"github.com/pressly/goose/v3"
	"gopkg.in/yaml.v3"
)

//go:embed postgres/*.sql sqlite/*.sql frameworks.yaml
var embedMigrations embed.FS

const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

var (
	ErrNilDB          = errors.New("db is nil")
	ErrUnknownDialect = errors.New("unknown migration dialect")
)

// Migrate applies every pending migration of the given dialect.
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	var gooseDialect string
	switch dialect {
	case DialectPostgres:
		gooseDialect = "pgx"
	case DialectSQLite:
		gooseDialect = "sqlite3"
	default:
		return fmt.Errorf("migration error: %w: %q", ErrUnknownDialect, dialect)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(gooseDialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dialect); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// SystemFrameworks decodes the embedded framework catalogue.
func SystemFrameworks() ([]models.Framework, error) {
	raw, err := embedMigrations.ReadFile("frameworks.yaml")
	if err != nil {
		return nil, fmt.Errorf("error reading frameworks catalogue: %w", err)
	}

	var frameworks []models.Framework
	if err := yaml.Unmarshal(raw, &frameworks); err != nil {
		return nil, fmt.Errorf("error decoding frameworks catalogue: %w", err)
	}

	for i := range frameworks {
		frameworks[i].IsSystem = true
		if frameworks[i].Structure == nil {
			frameworks[i].Structure = models.Steps{}
		}
	}

	return frameworks, nil
}
