package utils

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/google/uuid"
)

// HashText fingerprints the analyzable fields of a content item. Used to skip
// reclassification when an update leaves the text unchanged.
func HashText(fields ...string) string {
	h := sha256.New()
	for _, f := range fields {
		h.Write([]byte(f))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// ClampPage normalizes pagination parameters to sane bounds.
func ClampPage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

func ValidateUUID(u string) bool {
	_, err := uuid.Parse(u)
	return err == nil
}
