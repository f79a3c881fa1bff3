package models

import (
	"time"
)

type ContentItem struct {
	ID             string    `json:"id" db:"id"`
	Kind           string    `json:"kind" db:"kind"`
	Title          string    `json:"title" db:"title"`
	Category       string    `json:"category,omitempty" db:"category"`
	AnalyzableText string    `json:"analyzable_text" db:"analyzable_text"`
	TextHash       string    `json:"-" db:"text_hash"`
	SourceFileID   *string   `json:"source_file_id,omitempty" db:"source_file_id"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

type ContentKind string

const (
	ContentKindDocument ContentKind = "document"
	ContentKindEvent    ContentKind = "event"
)

func (k ContentKind) String() string {
	return string(k)
}

// ValidKind reports whether kind names one of the two content families.
func ValidKind(kind string) bool {
	return kind == ContentKindDocument.String() || kind == ContentKindEvent.String()
}
