package models

import "time"

// Platform is a monitored creator platform.
type Platform string

const (
	YouTube   Platform = "youtube"
	TikTok    Platform = "tiktok"
	Instagram Platform = "instagram"
)

// Platforms lists every valid watchlist [Platform].
var Platforms = []Platform{YouTube, TikTok, Instagram}

// WatchlistStatus is the sync state of a watchlist.
type WatchlistStatus string

const (
	WatchlistActive  WatchlistStatus = "active"
	WatchlistSyncing WatchlistStatus = "syncing"
	WatchlistError   WatchlistStatus = "error"
)

// Watchlist is a monitored external creator channel.
type Watchlist struct {
	ID           string          `json:"id"`
	UserID       string          `json:"user_id"`
	Name         string          `json:"name"`
	Platform     Platform        `json:"platform"`
	ChannelURL   string          `json:"channel_url"`
	Status       WatchlistStatus `json:"status"`
	LastSyncedAt *time.Time      `json:"last_synced_at"`
	CreatedAt    time.Time       `json:"created_at"`
}

func (Watchlist) TableName() string {
	return "watchlists"
}

// NewWatchlist is the body of POST /api/watchlists.
type NewWatchlist struct {
	Name       string   `json:"name"`
	Platform   Platform `json:"platform"`
	ChannelURL string   `json:"channel_url"`
}

const WatchlistSynced = "synced"

// WatchlistSyncResult is the outcome of a sync run. Source discovery is not
// implemented, so SourcesFound is always zero.
type WatchlistSyncResult struct {
	WatchlistID  string    `json:"watchlist_id"`
	Status       string    `json:"status"`
	SourcesFound int       `json:"sources_found"`
	Watchlist    Watchlist `json:"watchlist"`
}
