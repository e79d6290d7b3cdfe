package validators

import (
	"context"
	"slices"

	"github.com/MKhiriev/co-script/models"
)

const (
	minScore = 0
	maxScore = 100
)

func (v *RequestValidator) validateNewScript(ctx context.Context, s models.NewScript, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldScriptType, FieldWordCount}
	}

	for _, f := range fields {
		switch f {
		case FieldScriptType:
			if s.ScriptType != "" && !validScriptType(s.ScriptType) {
				return ErrInvalidScriptType
			}
		case FieldWordCount:
			if s.WordCount < 0 {
				return ErrInvalidWordCount
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateScriptPatch checks only the fields present in the patch. An empty
// patch is valid.
func (v *RequestValidator) validateScriptPatch(ctx context.Context, p models.ScriptPatch, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldScriptType, FieldStatus, FieldScore, FieldScoreBreakdown, FieldWordCount}
	}

	for _, f := range fields {
		switch f {
		case FieldScriptType:
			if p.ScriptType != nil && !validScriptType(*p.ScriptType) {
				return ErrInvalidScriptType
			}
		case FieldStatus:
			if p.Status != nil && !slices.Contains(models.ScriptStatuses, *p.Status) {
				return ErrInvalidStatus
			}
		case FieldScore:
			if p.Score.Value != nil && !inScoreRange(*p.Score.Value) {
				return ErrInvalidScore
			}
		case FieldScoreBreakdown:
			if p.ScoreBreakdown == nil {
				continue
			}
			for _, value := range *p.ScoreBreakdown {
				if !inScoreRange(value) {
					return ErrInvalidScoreBreakdown
				}
			}
		case FieldWordCount:
			if p.WordCount != nil && *p.WordCount < 0 {
				return ErrInvalidWordCount
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validScriptType(t models.ScriptType) bool {
	return slices.Contains(models.ScriptTypes, t)
}

func inScoreRange(v int) bool {
	return v >= minScore && v <= maxScore
}
