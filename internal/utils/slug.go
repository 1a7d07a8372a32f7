package utils

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Slugify lowercases a title and collapses every non-alphanumeric run into a
// single dash.
func Slugify(s string) string {
	var b strings.Builder
	lastDash := true // suppress a leading dash

	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
		} else if !lastDash {
			b.WriteByte('-')
			lastDash = true
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}

// MakeSlug builds a listing slug from the title with a timestamp suffix.
// Uniqueness is best-effort, not enforced.
func MakeSlug(title string) string {
	return fmt.Sprintf("%s-%d", Slugify(title), time.Now().UnixMilli())
}
