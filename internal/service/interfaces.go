// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/co-script/models"
)

// Every owner-scoped method takes the caller's user id explicitly.

type AuthService interface {
	Signup(ctx context.Context, credentials models.Credentials) (models.User, models.Token, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, models.Token, error)
	// Logout revokes the session of tokenString. Invalid tokens are ignored.
	Logout(ctx context.Context, tokenString string) error
	// ParseToken verifies the token and rejects revoked sessions.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	Session(ctx context.Context, identity models.Identity) (models.SessionInfo, error)
}

type ScriptService interface {
	CreateScript(ctx context.Context, userID string, script models.NewScript) (models.Script, error)
	ListScripts(ctx context.Context, userID string) ([]models.Script, error)
	GetScript(ctx context.Context, userID, scriptID string) (models.Script, error)
	UpdateScript(ctx context.Context, userID, scriptID string, patch models.ScriptPatch) (models.Script, error)
	DeleteScript(ctx context.Context, userID, scriptID string) error
	ListVersions(ctx context.Context, userID, scriptID string) ([]models.ScriptVersion, error)
}

// ScriptServiceWrapper decorates a ScriptService, e.g. with validation.
type ScriptServiceWrapper interface {
	Wrap(ScriptService) ScriptService
}

type ShareService interface {
	CreateShareLink(ctx context.Context, userID, scriptID string) (models.ShareLink, error)
	// ResolveShareLink returns the read-only script behind token, or
	// ErrShareLinkExpired once the link has expired.
	ResolveShareLink(ctx context.Context, token string) (models.SharedScript, error)
}

type VaultService interface {
	CreateVaultItem(ctx context.Context, userID string, item models.NewVaultItem) (models.VaultItem, error)
	ListVaultItems(ctx context.Context, userID string) ([]models.VaultItem, error)
	DeleteVaultItem(ctx context.Context, userID, itemID string) error
}

type WatchlistService interface {
	CreateWatchlist(ctx context.Context, userID string, watchlist models.NewWatchlist) (models.Watchlist, error)
	ListWatchlists(ctx context.Context, userID string) ([]models.Watchlist, error)
	SyncWatchlist(ctx context.Context, userID, watchlistID string) (models.WatchlistSyncResult, error)
	DeleteWatchlist(ctx context.Context, userID, watchlistID string) error
	// SyncDue runs the sync of every watchlist not synced within maxAge and
	// reports how many were synced.
	SyncDue(ctx context.Context, maxAge time.Duration) (int, error)
}

type FrameworkService interface {
	ListFrameworks(ctx context.Context, userID string) ([]models.Framework, error)
	CreateFramework(ctx context.Context, userID string, framework models.NewFramework) (models.Framework, error)
}

type AIService interface {
	Score(ctx context.Context, req models.ScoreRequest) (models.ScoreResult, error)
	Generate(ctx context.Context, req models.GenerateRequest) (models.ContentResult, error)
	Hooks(ctx context.Context, req models.HooksRequest) (models.HooksResult, error)
	Rewrite(ctx context.Context, req models.RewriteRequest) (models.ContentResult, error)
	AnalyzeURL(ctx context.Context, req models.AnalyzeURLRequest) (models.AnalyzeURLResult, error)
}

// AIServiceWrapper decorates an AIService, e.g. with validation.
type AIServiceWrapper interface {
	Wrap(AIService) AIService
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
