package models

import "time"

// ShareLinkTTL is the fixed lifetime of a share link.
const ShareLinkTTL = 7 * 24 * time.Hour

// ShareLink grants unauthenticated read access to one script while
// now < ExpiresAt.
type ShareLink struct {
	ID        string    `json:"-"`
	Token     string    `json:"token"`
	ScriptID  string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"-"`
}

func (ShareLink) TableName() string {
	return "share_links"
}

// Expired reports whether the link is no longer valid at now.
func (l ShareLink) Expired(now time.Time) bool {
	return !now.Before(l.ExpiresAt)
}

// SharedScript is the read-only projection of a script served to share
// link holders.
type SharedScript struct {
	Title      string     `json:"title"`
	ScriptType ScriptType `json:"script_type"`
	Content    string     `json:"content"`
	Hook       string     `json:"hook"`
	Score      *int       `json:"score"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// NewSharedScript projects s into its read-only shared form.
func NewSharedScript(s Script) SharedScript {
	return SharedScript{
		Title:      s.Title,
		ScriptType: s.ScriptType,
		Content:    s.Content,
		Hook:       s.Hook,
		Score:      s.Score,
		UpdatedAt:  s.UpdatedAt,
	}
}

// Shared page states.
const (
	SharedStatusOK      = "ok"
	SharedStatusExpired = "expired"
)

// SharedView is the body of GET /shared/{token}.
type SharedView struct {
	Status  string        `json:"status"`
	Script  *SharedScript `json:"script,omitempty"`
	Message string        `json:"message,omitempty"`
}
