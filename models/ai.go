// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// CompletionRequest is a single prompt sent to the text-generation provider.
type CompletionRequest struct {
	System    string
	Prompt    string
	MaxTokens int
}

// Score breakdown keys.
const (
	BreakdownHookStrength  = "hook_strength"
	BreakdownClarity       = "clarity"
	BreakdownStructure     = "structure"
	BreakdownEmotionalPull = "emotional_pull"
	BreakdownCTAPower      = "cta_power"
)

// BreakdownKeys lists the sub-scores reported by the score feature.
var BreakdownKeys = []string{
	BreakdownHookStrength,
	BreakdownClarity,
	BreakdownStructure,
	BreakdownEmotionalPull,
	BreakdownCTAPower,
}

type ScoreRequest struct {
	Content    string     `json:"content"`
	Hook       string     `json:"hook"`
	Audience   string     `json:"audience"`
	Objective  string     `json:"objective"`
	ScriptType ScriptType `json:"script_type"`
}

type HookSuggestion struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type FrameworkFit struct {
	Name       string `json:"name"`
	Fit        int    `json:"fit"`
	Suggestion string `json:"suggestion"`
}

// ScoreResult is the fixed response shape of POST /api/ai/score.
type ScoreResult struct {
	Score            int              `json:"score"`
	Breakdown        ScoreBreakdown   `json:"breakdown"`
	Reasoning        string           `json:"reasoning"`
	Hooks            []HookSuggestion `json:"hooks"`
	Frameworks       []FrameworkFit   `json:"frameworks"`
	AudienceAnalysis string           `json:"audience_analysis"`
}

// DefaultScoreResult is returned when the provider output cannot be decoded.
// The raw text is kept in Reasoning.
func DefaultScoreResult(raw string) ScoreResult {
	return ScoreResult{
		Score:      0,
		Breakdown:  ScoreBreakdown{},
		Reasoning:  raw,
		Hooks:      []HookSuggestion{},
		Frameworks: []FrameworkFit{},
	}
}

type GenerateRequest struct {
	Hook       string     `json:"hook"`
	Audience   string     `json:"audience"`
	Objective  string     `json:"objective"`
	Tone       string     `json:"tone"`
	Platform   string     `json:"platform"`
	ScriptType ScriptType `json:"script_type"`
}

// ContentResult is the response of the free-text features.
type ContentResult struct {
	Content string `json:"content"`
}

type HooksRequest struct {
	Content    string     `json:"content"`
	Audience   string     `json:"audience"`
	Objective  string     `json:"objective"`
	ScriptType ScriptType `json:"script_type"`
}

type HooksResult struct {
	Hooks []HookSuggestion `json:"hooks"`
}

type RewriteRequest struct {
	Content     string `json:"content"`
	Instruction string `json:"instruction"`
	Tone        string `json:"tone"`
}

type AnalyzeURLRequest struct {
	URL string `json:"url"`
}

// AnalyzeURLResult is the response of POST /api/ai/analyze-url. When the
// provider output cannot be decoded only Analysis is set and the result is
// serialized as {"analysis": ...}.
type AnalyzeURLResult struct {
	Title        string   `json:"title"`
	HookUsed     string   `json:"hook_used"`
	Structure    string   `json:"structure"`
	KeyTakeaways []string `json:"key_takeaways"`
	Audience     string   `json:"audience"`
	Tone         string   `json:"tone"`
	Suggestions  string   `json:"suggestions"`

	Analysis string `json:"-"`
}

func (r AnalyzeURLResult) MarshalJSON() ([]byte, error) {
	if r.Analysis != "" {
		return json.Marshal(struct {
			Analysis string `json:"analysis"`
		}{r.Analysis})
	}

	type plain AnalyzeURLResult
	if r.KeyTakeaways == nil {
		r.KeyTakeaways = []string{}
	}
	return json.Marshal(plain(r))
}
