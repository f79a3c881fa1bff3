package models

import (
	"time"
)

type CreateContentRequest struct {
	Kind           string  `json:"kind"`
	Title          string  `json:"title"`
	Category       string  `json:"category,omitempty"`
	AnalyzableText string  `json:"analyzable_text,omitempty"`
	SourceFileID   *string `json:"source_file_id,omitempty"`
}

type UpdateContentRequest struct {
	Title          *string `json:"title,omitempty"`
	Category       *string `json:"category,omitempty"`
	AnalyzableText *string `json:"analyzable_text,omitempty"`
}

type ContentResponse struct {
	Item        ContentItem  `json:"item"`
	Assignments []Assignment `json:"assignments"`
}

type ContentListResponse struct {
	Items []ContentItem `json:"items"`
	Total int           `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

type ClassifyRequest struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

type ClassifyResponse struct {
	Results     []AwardScore `json:"results"`
	Assignable  []Assignment `json:"assignable"`
	Threshold   float64      `json:"threshold"`
	EvaluatedAt time.Time    `json:"evaluated_at"`
}

type OverrideRequest struct {
	AwardKey string `json:"award_key"`
	Action   string `json:"action"`
}

type CreateAwardRequest struct {
	Key       string   `json:"key"`
	Name      string   `json:"name"`
	Criteria  []string `json:"criteria"`
	Keywords  []string `json:"keywords"`
	Threshold int      `json:"threshold"`
}

type UpdateAwardRequest struct {
	Name      *string  `json:"name,omitempty"`
	Criteria  []string `json:"criteria,omitempty"`
	Keywords  []string `json:"keywords,omitempty"`
	Threshold *int     `json:"threshold,omitempty"`
}

type RecalculateResponse struct {
	Recalculated int               `json:"recalculated"`
	Statuses     []ReadinessStatus `json:"statuses"`
	CompletedAt  time.Time         `json:"completed_at"`
}
