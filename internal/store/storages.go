// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/co-script/internal/config"
	"github.com/MKhiriev/co-script/internal/logger"
	"github.com/MKhiriev/co-script/internal/utils"
)

// Storages bundles every repository over one database connection plus the
// session revocation store.
type Storages struct {
	DB *DB

	UserRepository      UserRepository
	ScriptRepository    ScriptRepository
	ShareLinkRepository ShareLinkRepository
	VaultRepository     VaultRepository
	WatchlistRepository WatchlistRepository
	FrameworkRepository FrameworkRepository
	SessionStore        SessionStore
}

// NewStorages connects the configured database, applies migrations, seeds the
// system frameworks and opens the session store.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}

	var sessions SessionStore
	if cfg.Redis.URL != "" {
		sessions, err = NewRedisSessionStore(ctx, cfg.Redis.URL, log)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
	} else {
		log.Warn().Msg("redis is not configured, session revocations are kept in memory")
		sessions = NewMemorySessionStore()
	}

	storages := NewStoragesFromDB(db, sessions, utils.NewUUIDGenerator(), log)

	if _, err = SeedSystemFrameworks(ctx, storages.FrameworkRepository, utils.NewUUIDGenerator(), log); err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("error seeding frameworks: %w", err)
	}

	return storages, nil
}

// NewStoragesFromDB builds the repositories over an already migrated db.
func NewStoragesFromDB(db *DB, sessions SessionStore, ids utils.IDGenerator, log *logger.Logger) *Storages {
	return &Storages{
		DB:                  db,
		UserRepository:      NewUserRepository(db, log),
		ScriptRepository:    NewScriptRepository(db, ids, log),
		ShareLinkRepository: NewShareLinkRepository(db, log),
		VaultRepository:     NewVaultRepository(db, log),
		WatchlistRepository: NewWatchlistRepository(db, log),
		FrameworkRepository: NewFrameworkRepository(db, log),
		SessionStore:        sessions,
	}
}

func (s *Storages) Close() error {
	var errs []error
	if s.SessionStore != nil {
		errs = append(errs, s.SessionStore.Close())
	}
	if s.DB != nil {
		errs = append(errs, s.DB.Close())
	}
	return errors.Join(errs...)
}
