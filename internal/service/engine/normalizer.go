package engine

import (
	"strings"
)

// Normalize builds the single analysis string for a content item: non-empty
// fields joined by one space, lower-cased, trimmed. No stemming and no
// stop-word removal happens here so that every downstream match stays
// auditable against the literal text.
func Normalize(fields ...string) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f != "" {
			parts = append(parts, f)
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}
