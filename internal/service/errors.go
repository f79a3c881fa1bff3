package service

import "errors"

// Sentinel errors mapped to HTTP codes in the delivery layer.
var (
	// Validation / domain-state errors.
	ErrInvalidContentID = errors.New("invalid content id")
	ErrContentNotFound  = errors.New("content item not found")
	ErrInvalidKind      = errors.New("content kind must be document or event")
	ErrTitleRequired    = errors.New("title is required")
	ErrAwardNotFound    = errors.New("award not found")
	ErrAwardExists      = errors.New("award already exists")
	ErrInvalidAward     = errors.New("invalid award definition")
	ErrInvalidAction    = errors.New("override action must be add or remove")
	ErrNoTaxonomy       = errors.New("no awards configured")

	// External-dependency errors.
	ErrExtractionFailed = errors.New("extraction service error")
)
