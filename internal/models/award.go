package models

import (
	"time"
)

// AwardDefinition is one recognition category of the office taxonomy.
// Rows are admin-edited; the engine treats them as read-only.
type AwardDefinition struct {
	Key       string    `json:"key" db:"key"`
	Name      string    `json:"name" db:"name"`
	Criteria  []string  `json:"criteria" db:"criteria"`
	Keywords  []string  `json:"keywords" db:"keywords"`
	Threshold int       `json:"threshold" db:"threshold"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// AwardScore is the per-award outcome of classifying one piece of text.
// It is ephemeral: only the derived Assignment rows are persisted.
type AwardScore struct {
	AwardKey          string   `json:"award_key"`
	Score             float64  `json:"score"`
	Confidence        float64  `json:"confidence"`
	MatchedKeywords   []string `json:"matched_keywords"`
	SatisfiedCriteria []string `json:"satisfied_criteria"`
}
