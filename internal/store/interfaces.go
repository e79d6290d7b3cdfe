// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/co-script/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Every owner-scoped method takes the owner id explicitly and treats rows of
// other owners as absent.

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
}

type ScriptRepository interface {
	CreateScript(ctx context.Context, script models.Script) (models.Script, error)
	ListScripts(ctx context.Context, userID string) ([]models.Script, error)
	GetScript(ctx context.Context, userID, scriptID string) (models.Script, error)
	// UpdateScript applies patch and archives the previous content as a new
	// version when the content changes, atomically.
	UpdateScript(ctx context.Context, userID, scriptID string, patch models.ScriptPatch, updatedAt time.Time) (models.Script, error)
	DeleteScript(ctx context.Context, userID, scriptID string) error
	ListVersions(ctx context.Context, userID, scriptID string) ([]models.ScriptVersion, error)
}

type ShareLinkRepository interface {
	CreateShareLink(ctx context.Context, link models.ShareLink) (models.ShareLink, error)
	// GetSharedScript resolves a token to its link and the bound script
	// regardless of owner.
	GetSharedScript(ctx context.Context, token string) (models.ShareLink, models.Script, error)
}

type VaultRepository interface {
	CreateVaultItem(ctx context.Context, item models.VaultItem) (models.VaultItem, error)
	ListVaultItems(ctx context.Context, userID string) ([]models.VaultItem, error)
	DeleteVaultItem(ctx context.Context, userID, itemID string) error
}

type WatchlistRepository interface {
	CreateWatchlist(ctx context.Context, watchlist models.Watchlist) (models.Watchlist, error)
	ListWatchlists(ctx context.Context, userID string) ([]models.Watchlist, error)
	GetWatchlist(ctx context.Context, userID, watchlistID string) (models.Watchlist, error)
	// SetWatchlistStatus updates status and, when lastSyncedAt is non-nil,
	// last_synced_at.
	SetWatchlistStatus(ctx context.Context, userID, watchlistID string, status models.WatchlistStatus, lastSyncedAt *time.Time) (models.Watchlist, error)
	DeleteWatchlist(ctx context.Context, userID, watchlistID string) error
	// ListWatchlistsDue returns watchlists of every owner never synced or last
	// synced before the cutoff.
	ListWatchlistsDue(ctx context.Context, syncedBefore time.Time) ([]models.Watchlist, error)
}

type FrameworkRepository interface {
	ListFrameworks(ctx context.Context, userID string) ([]models.Framework, error)
	CreateFramework(ctx context.Context, framework models.Framework) (models.Framework, error)
	// CreateSystemFramework inserts fw unless a system framework with the same
	// name exists. It reports whether a row was inserted.
	CreateSystemFramework(ctx context.Context, framework models.Framework) (bool, error)
}

// SessionStore keeps revoked session ids until their tokens expire.
type SessionStore interface {
	Revoke(ctx context.Context, sessionID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, sessionID string) (bool, error)
	Close() error
}
