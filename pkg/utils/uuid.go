package utils

import (
	"regexp"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// FileSafeName collapses whitespace runs into underscores so a client
// name can be embedded in an attachment filename.
func FileSafeName(s string) string {
	return whitespaceRun.ReplaceAllString(s, "_")
}
