package models

import (
	"time"
)

// ReadinessStatus is the award-level rollup, one row per award. It is always
// written as a complete snapshot recomputed from the assignment set, never
// patched incrementally.
type ReadinessStatus struct {
	AwardKey            string    `json:"award_key" db:"award_key"`
	TotalDocuments      int       `json:"total_documents" db:"total_documents"`
	TotalEvents         int       `json:"total_events" db:"total_events"`
	TotalItems          int       `json:"total_items" db:"total_items"`
	SatisfiedCriteria   []string  `json:"satisfied_criteria" db:"satisfied_criteria"`
	UnsatisfiedCriteria []string  `json:"unsatisfied_criteria" db:"unsatisfied_criteria"`
	ReadinessPercentage int       `json:"readiness_percentage" db:"readiness_percentage"`
	IsReady             bool      `json:"is_ready" db:"is_ready"`
	LastCalculated      time.Time `json:"last_calculated" db:"last_calculated"`
}

// Recommendation is derived on demand from ReadinessStatus and the award
// definition; it is never persisted.
type Recommendation struct {
	Type       string `json:"type"`
	AwardKey   string `json:"award_key"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
	Priority   string `json:"priority"`
}

const (
	RecommendationTypeQuantity = "quantity"
	RecommendationTypeCriteria = "criteria"

	RecommendationPriorityHigh   = "high"
	RecommendationPriorityMedium = "medium"
)

type StatusReport struct {
	Summary     ReportSummary `json:"summary"`
	Awards      []AwardReport `json:"awards"`
	GeneratedAt time.Time     `json:"generated_at"`
}

type ReportSummary struct {
	TotalAwards     int `json:"total_awards"`
	ReadyAwards     int `json:"ready_awards"`
	TotalDocuments  int `json:"total_documents"`
	TotalEvents     int `json:"total_events"`
	TotalAssigned   int `json:"total_assigned"`
	AvgReadiness    int `json:"avg_readiness"`
	ManualOverrides int `json:"manual_overrides"`
}

type AwardReport struct {
	Award           AwardDefinition  `json:"award"`
	Status          ReadinessStatus  `json:"status"`
	Recommendations []Recommendation `json:"recommendations,omitempty"`
}
