package models

import "time"

// Framework is a reusable script structure. System frameworks are shared
// with everyone; user frameworks are visible to their author only.
type Framework struct {
	ID          string    `json:"id" yaml:"-"`
	UserID      *string   `json:"user_id" yaml:"-"`
	Name        string    `json:"name" yaml:"name"`
	Category    string    `json:"category" yaml:"category"`
	Description string    `json:"description" yaml:"description"`
	Structure   Steps     `json:"structure" yaml:"structure"`
	Example     string    `json:"example" yaml:"example"`
	Source      string    `json:"source" yaml:"source"`
	IsSystem    bool      `json:"is_system" yaml:"-"`
	CreatedAt   time.Time `json:"created_at" yaml:"-"`
}

func (Framework) TableName() string {
	return "frameworks"
}

// NewFramework is the body of POST /api/frameworks.
type NewFramework struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Structure   []string `json:"structure"`
	Example     string   `json:"example"`
	Source      string   `json:"source"`
}
