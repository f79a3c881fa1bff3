package models

import (
	"time"
)

// Assignment links one content item to one award. At most one row exists per
// (content_id, award_key) pair; reclassification replaces, never duplicates.
type Assignment struct {
	ContentID         string    `json:"content_id" db:"content_id"`
	AwardKey          string    `json:"award_key" db:"award_key"`
	Confidence        float64   `json:"confidence" db:"confidence"`
	Score             float64   `json:"score" db:"score"`
	MatchedKeywords   []string  `json:"matched_keywords" db:"matched_keywords"`
	SatisfiedCriteria []string  `json:"satisfied_criteria" db:"satisfied_criteria"`
	IsManualOverride  bool      `json:"is_manual_override" db:"is_manual_override"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`
}

// AssignedItem is an assignment joined with the content fields the readiness
// aggregator needs. Only the aggregator reads AnalyzableText here.
type AssignedItem struct {
	ContentID        string `json:"content_id"`
	Kind             string `json:"kind"`
	Title            string `json:"title"`
	AnalyzableText   string `json:"-"`
	IsManualOverride bool   `json:"is_manual_override"`
}

type OverrideAction string

const (
	OverrideActionAdd    OverrideAction = "add"
	OverrideActionRemove OverrideAction = "remove"
)

func (a OverrideAction) String() string {
	return string(a)
}
