package models

import (
	"time"
)

type ContentClassifiedEvent struct {
	ContentID    string    `json:"content_id"`
	Kind         string    `json:"kind"`
	AwardKeys    []string  `json:"award_keys"`
	ClassifiedAt time.Time `json:"classified_at"`
}

type ReadinessUpdatedEvent struct {
	AwardKey            string    `json:"award_key"`
	IsReady             bool      `json:"is_ready"`
	ReadinessPercentage int       `json:"readiness_percentage"`
	TotalItems          int       `json:"total_items"`
	CalculatedAt        time.Time `json:"calculated_at"`
}

type OverrideAppliedEvent struct {
	ContentID string    `json:"content_id"`
	AwardKey  string    `json:"award_key"`
	Action    string    `json:"action"`
	AppliedAt time.Time `json:"applied_at"`
}
