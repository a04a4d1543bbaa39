// Package dates parses the date arguments the CLI accepts.
package dates

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DateLayout is the canonical YYYY-MM-DD layout.
const DateLayout = "2006-01-02"

var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsValidDate checks if a string is a valid YYYY-MM-DD date.
func IsValidDate(s string) bool {
	if !dateRegex.MatchString(s) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if !IsValidDate(s) {
		return time.Time{}, fmt.Errorf("invalid date: %q", s)
	}
	return time.Parse(DateLayout, s)
}

// ParseArg parses a CLI date argument:
//   - "today", "yesterday", "tomorrow" relative to now
//   - "YYYY-MM-DD" absolute
//
// The result is the start of the resolved day in now's location.
func ParseArg(arg string, now time.Time) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(arg)) {
	case "":
		return time.Time{}, fmt.Errorf("empty date")
	case "today":
		return StartOfDay(now), nil
	case "yesterday":
		return StartOfDay(now.AddDate(0, 0, -1)), nil
	case "tomorrow":
		return StartOfDay(now.AddDate(0, 0, 1)), nil
	}

	parsed, err := ParseDate(arg)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, use YYYY-MM-DD or today/yesterday", arg)
	}
	return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, now.Location()), nil
}

// StartOfDay truncates t to midnight in its location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
