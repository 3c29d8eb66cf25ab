package model

import "time"

// DateLayout is the canonical calendar-date form used everywhere in the
// store: ISO dates with no time component.
const DateLayout = "2006-01-02"

// ParseDate parses an ISO calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// ValidDate reports whether s is a well-formed ISO calendar date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// DateOf formats a time as an ISO calendar date, dropping the time component.
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}
