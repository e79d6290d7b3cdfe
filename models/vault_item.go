package models

import "time"

const DefaultVaultSourceType = "manual"

// VaultItem is a saved reference (snippet, link, idea) kept by its owner.
type VaultItem struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	SourceURL  string    `json:"source_url"`
	SourceType string    `json:"source_type"`
	Tags       Tags      `json:"tags"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
}

func (VaultItem) TableName() string {
	return "vault_items"
}

// NewVaultItem is the body of POST /api/vault.
type NewVaultItem struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	SourceURL  string   `json:"source_url"`
	SourceType string   `json:"source_type"`
	Tags       []string `json:"tags"`
	Notes      string   `json:"notes"`
}
