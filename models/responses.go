package models

import "time"

// Response envelopes of the HTTP API.

type ScriptResponse struct {
	Script Script `json:"script"`
}

type ScriptsResponse struct {
	Scripts []Script `json:"scripts"`
}

type VersionsResponse struct {
	Versions []ScriptVersion `json:"versions"`
}

type ShareResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type VaultItemResponse struct {
	Item VaultItem `json:"item"`
}

type VaultItemsResponse struct {
	Items []VaultItem `json:"items"`
}

type WatchlistResponse struct {
	Watchlist Watchlist `json:"watchlist"`
}

type WatchlistsResponse struct {
	Watchlists []Watchlist `json:"watchlists"`
}

type FrameworkResponse struct {
	Framework Framework `json:"framework"`
}

type FrameworksResponse struct {
	Frameworks []Framework `json:"frameworks"`
}

type AuthResponse struct {
	Success bool  `json:"success"`
	User    *User `json:"user,omitempty"`
}

type OKResponse struct {
	OK bool `json:"ok"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
