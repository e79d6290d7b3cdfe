package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/co-script/internal/logger"
	"github.com/MKhiriev/co-script/internal/utils"
	"github.com/MKhiriev/co-script/migrations"
)

// SeedSystemFrameworks inserts the built-in framework catalogue. Frameworks
// already present by name are left untouched, so seeding is idempotent.
func SeedSystemFrameworks(ctx context.Context, repo FrameworkRepository, ids utils.IDGenerator, log *logger.Logger) (int, error) {
	frameworks, err := migrations.SystemFrameworks()
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	inserted := 0
	for _, fw := range frameworks {
		fw.ID = ids.Generate()
		fw.CreatedAt = now

		created, err := repo.CreateSystemFramework(ctx, fw)
		if err != nil {
			return inserted, fmt.Errorf("error seeding framework %q: %w", fw.Name, err)
		}
		if created {
			inserted++
		}
	}

	log.Info().Int("inserted", inserted).Int("catalogue", len(frameworks)).Msg("system frameworks seeded")
	return inserted, nil
}
