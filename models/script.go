// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// ScriptType classifies a script and selects the generation guidance.
type ScriptType string

const (
	VideoScript ScriptType = "video_script"
	SocialMedia ScriptType = "social_media"
	Blog        ScriptType = "blog"
	AdCopy      ScriptType = "ad_copy"
	Email       ScriptType = "email"
)

// ScriptTypes lists every valid [ScriptType].
var ScriptTypes = []ScriptType{VideoScript, SocialMedia, Blog, AdCopy, Email}

// ScriptStatus is the editorial state of a script.
type ScriptStatus string

const (
	StatusDraft     ScriptStatus = "draft"
	StatusReview    ScriptStatus = "review"
	StatusPublished ScriptStatus = "published"
)

// ScriptStatuses lists every valid [ScriptStatus].
var ScriptStatuses = []ScriptStatus{StatusDraft, StatusReview, StatusPublished}

const DefaultScriptTitle = "Untitled Script"

// Script is a user-authored content draft. It is owned exclusively by
// UserID and mutated only through the update operation, which snapshots
// the previous content into a [ScriptVersion] when content changes.
type Script struct {
	ID             string         `json:"id"`
	UserID         string         `json:"user_id"`
	Title          string         `json:"title"`
	ScriptType     ScriptType     `json:"script_type"`
	Content        string         `json:"content"`
	Hook           string         `json:"hook"`
	Audience       string         `json:"audience"`
	Objective      string         `json:"objective"`
	Tone           string         `json:"tone"`
	Platform       string         `json:"platform"`
	Score          *int           `json:"score"`
	ScoreBreakdown ScoreBreakdown `json:"score_breakdown"`
	AIFeedback     string         `json:"ai_feedback"`
	Status         ScriptStatus   `json:"status"`
	WordCount      int            `json:"word_count"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func (Script) TableName() string {
	return "scripts"
}

// NewScript is the body of POST /api/scripts. Missing fields take the
// defaults applied by the script service.
type NewScript struct {
	Title      string     `json:"title"`
	ScriptType ScriptType `json:"script_type"`
	Content    string     `json:"content"`
	Hook       string     `json:"hook"`
	Audience   string     `json:"audience"`
	Objective  string     `json:"objective"`
	Tone       string     `json:"tone"`
	Platform   string     `json:"platform"`
	WordCount  int        `json:"word_count"`
}

// ScriptPatch is the body of PATCH /api/scripts/{id}. Only non-nil fields
// are applied. Score also accepts an explicit null, which clears it.
type ScriptPatch struct {
	Title          *string         `json:"title,omitempty"`
	ScriptType     *ScriptType     `json:"script_type,omitempty"`
	Content        *string         `json:"content,omitempty"`
	Hook           *string         `json:"hook,omitempty"`
	Audience       *string         `json:"audience,omitempty"`
	Objective      *string         `json:"objective,omitempty"`
	Tone           *string         `json:"tone,omitempty"`
	Platform       *string         `json:"platform,omitempty"`
	Score          NullableInt     `json:"score"`
	ScoreBreakdown *ScoreBreakdown `json:"score_breakdown,omitempty"`
	AIFeedback     *string         `json:"ai_feedback,omitempty"`
	Status         *ScriptStatus   `json:"status,omitempty"`
	WordCount      *int            `json:"word_count,omitempty"`
}

// NullableInt is a patch field that tells an absent key from an explicit
// null. Set is true whenever the key was present; Value is nil for null.
type NullableInt struct {
	Set   bool
	Value *int
}

// SetInt returns a present, non-null NullableInt.
func SetInt(v int) NullableInt {
	return NullableInt{Set: true, Value: &v}
}

// ClearInt returns a present null NullableInt.
func ClearInt() NullableInt {
	return NullableInt{Set: true}
}

func (n *NullableInt) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}

	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

func (n NullableInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.Value)
}

// ChangesContent reports whether applying the patch to current content
// replaces it with a different value.
func (p ScriptPatch) ChangesContent(current string) bool {
	return p.Content != nil && *p.Content != current
}
