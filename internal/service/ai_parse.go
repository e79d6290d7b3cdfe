package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/MKhiriev/co-script/models"
)

var errNoJSONObject = errors.New("no json object in completion")

// ParseError reports provider output that could not be turned into the
// structured response of a feature. Raw holds the untouched completion.
type ParseError struct {
	Feature string
	Raw     string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s completion: %v", e.Feature, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// extractJSON returns the first balanced {...} object in text. Braces inside
// JSON strings, including escaped quotes, are ignored.
func extractJSON(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	for start >= 0 {
		if end, ok := matchObject(text, start); ok {
			return text[start : end+1], true
		}
		next := strings.IndexByte(text[start+1:], '{')
		if next < 0 {
			break
		}
		start += next + 1
	}
	return "", false
}

func matchObject(text string, start int) (int, bool) {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

func decodeCompletion(feature, raw string, dst any) error {
	object, ok := extractJSON(raw)
	if !ok {
		return &ParseError{Feature: feature, Raw: raw, Err: errNoJSONObject}
	}
	if err := json.Unmarshal([]byte(object), dst); err != nil {
		return &ParseError{Feature: feature, Raw: raw, Err: err}
	}
	return nil
}

type scoreCompletion struct {
	Score            *float64           `json:"score"`
	Breakdown        map[string]float64 `json:"breakdown"`
	Reasoning        string             `json:"reasoning"`
	Hooks            []hookCompletion   `json:"hooks"`
	Frameworks       []struct {
		Name       string  `json:"name"`
		Fit        float64 `json:"fit"`
		Suggestion string  `json:"suggestion"`
	} `json:"frameworks"`
	AudienceAnalysis string `json:"audience_analysis"`
}

type hookCompletion struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// parseScore decodes a score completion. Values are clamped to [0,100] and
// only the known breakdown keys are kept.
func parseScore(raw string) (models.ScoreResult, error) {
	var wire scoreCompletion
	if err := decodeCompletion("score", raw, &wire); err != nil {
		return models.ScoreResult{}, err
	}
	if wire.Score == nil {
		return models.ScoreResult{}, &ParseError{Feature: "score", Raw: raw, Err: errors.New("score is missing")}
	}

	result := models.ScoreResult{
		Score:            clampScore(*wire.Score),
		Breakdown:        models.ScoreBreakdown{},
		Reasoning:        wire.Reasoning,
		Hooks:            toHookSuggestions(wire.Hooks),
		Frameworks:       make([]models.FrameworkFit, 0, len(wire.Frameworks)),
		AudienceAnalysis: wire.AudienceAnalysis,
	}
	for _, key := range models.BreakdownKeys {
		if v, ok := wire.Breakdown[key]; ok {
			result.Breakdown[key] = clampScore(v)
		}
	}
	for _, fw := range wire.Frameworks {
		if strings.TrimSpace(fw.Name) == "" {
			continue
		}
		result.Frameworks = append(result.Frameworks, models.FrameworkFit{
			Name:       fw.Name,
			Fit:        clampScore(fw.Fit),
			Suggestion: fw.Suggestion,
		})
	}

	return result, nil
}

func parseHooks(raw string) (models.HooksResult, error) {
	var wire struct {
		Hooks []hookCompletion `json:"hooks"`
	}
	if err := decodeCompletion("hooks", raw, &wire); err != nil {
		return models.HooksResult{}, err
	}
	if wire.Hooks == nil {
		return models.HooksResult{}, &ParseError{Feature: "hooks", Raw: raw, Err: errors.New("hooks are missing")}
	}

	return models.HooksResult{Hooks: toHookSuggestions(wire.Hooks)}, nil
}

func parseAnalyzeURL(raw string) (models.AnalyzeURLResult, error) {
	var result models.AnalyzeURLResult
	if err := decodeCompletion("analyze-url", raw, &result); err != nil {
		return models.AnalyzeURLResult{}, err
	}
	if result.Title == "" && result.HookUsed == "" && result.Structure == "" && len(result.KeyTakeaways) == 0 {
		return models.AnalyzeURLResult{}, &ParseError{Feature: "analyze-url", Raw: raw, Err: errors.New("analysis is empty")}
	}

	return result, nil
}

func toHookSuggestions(hooks []hookCompletion) []models.HookSuggestion {
	out := make([]models.HookSuggestion, 0, len(hooks))
	for _, h := range hooks {
		if strings.TrimSpace(h.Text) == "" {
			continue
		}
		out = append(out, models.HookSuggestion{Type: h.Type, Text: h.Text})
	}
	return out
}

func clampScore(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return int(math.Round(math.Min(100, math.Max(0, v))))
}
