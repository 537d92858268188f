package task

import (
	"strings"
	"time"
)

// DefaultDatePattern is used when no date format is configured.
const DefaultDatePattern = "YYYY-MM-DD"

// layoutReplacer maps moment-style date tokens to Go reference-time tokens.
var layoutReplacer = strings.NewReplacer(
	"YYYY", "2006",
	"YY", "06",
	"MM", "01",
	"DD", "02",
	"HH", "15",
	"mm", "04",
	"ss", "05",
)

// Layout translates a moment-style pattern (YYYY-MM-DD and friends) into a
// Go time layout. An empty pattern yields the layout for DefaultDatePattern.
func Layout(pattern string) string {
	if pattern == "" {
		pattern = DefaultDatePattern
	}
	return layoutReplacer.Replace(pattern)
}

// FormatDate formats t according to a moment-style pattern.
func FormatDate(t time.Time, pattern string) string {
	return t.Format(Layout(pattern))
}

// DateHeader returns the archive section header for the given day.
func DateHeader(t time.Time, pattern string) string {
	return HeaderMarker + FormatDate(t, pattern)
}
