package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Tags is a set of strings stored as a JSON array column.
type Tags []string

// ScoreBreakdown maps named sub-scores (hook_strength, clarity, ...) to
// values in [0,100]. Stored as a JSON object column.
type ScoreBreakdown map[string]int

// Steps is an ordered list of framework structure steps stored as a JSON
// array column.
type Steps []string

func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		t = Tags{}
	}
	return jsonValue(t)
}

func (t *Tags) Scan(src any) error {
	return scanJSON(src, t)
}

func (b ScoreBreakdown) Value() (driver.Value, error) {
	if b == nil {
		b = ScoreBreakdown{}
	}
	return jsonValue(b)
}

func (b *ScoreBreakdown) Scan(src any) error {
	return scanJSON(src, b)
}

func (s Steps) Value() (driver.Value, error) {
	if s == nil {
		s = Steps{}
	}
	return jsonValue(s)
}

func (s *Steps) Scan(src any) error {
	return scanJSON(src, s)
}

// jsonValue returns the JSON text as a string so the same value binds to
// Postgres JSONB parameters and SQLite TEXT columns.
func jsonValue(v any) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal json column: %w", err)
	}
	return string(b), nil
}

func scanJSON(src any, dst any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported json column type %T", src)
	}
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("unmarshal json column: %w", err)
	}
	return nil
}
