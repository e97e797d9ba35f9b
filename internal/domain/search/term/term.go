// Package term holds the rules every caller applies to a raw search string.
package term

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/kailas-cloud/okrsearch/internal/domain"
)

const (
	// MinLength is the shortest normalized term that is sent to the stores.
	MinLength = 2
	// MaxLength is the longest normalized term the server accepts.
	MaxLength = 256
)

// Normalize trims surrounding whitespace.
func Normalize(raw string) string {
	return strings.TrimSpace(raw)
}

// IsQueryable reports whether raw, once normalized, is long enough to search for.
// Length is counted in runes.
func IsQueryable(raw string) bool {
	return utf8.RuneCountInString(Normalize(raw)) >= MinLength
}

// Validate normalizes raw and rejects terms above MaxLength.
// Short terms are not an error: callers treat them as "no query".
func Validate(raw string) (string, error) {
	t := Normalize(raw)
	if n := utf8.RuneCountInString(t); n > MaxLength {
		return "", fmt.Errorf("%w: %d chars (max %d)", domain.ErrInvalidTerm, n, MaxLength)
	}
	return t, nil
}
