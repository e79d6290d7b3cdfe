package models

import "time"

// ScriptVersion is an immutable snapshot of a script taken right before a
// content-changing update. VersionNumber starts at 1 and has no gaps per
// script.
type ScriptVersion struct {
	ID             string         `json:"id"`
	ScriptID       string         `json:"script_id"`
	VersionNumber  int            `json:"version_number"`
	Content        string         `json:"content"`
	Hook           string         `json:"hook"`
	Score          *int           `json:"score"`
	ScoreBreakdown ScoreBreakdown `json:"score_breakdown"`
	CreatedAt      time.Time      `json:"created_at"`
}

func (ScriptVersion) TableName() string {
	return "script_versions"
}
