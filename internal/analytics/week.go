package analytics

import "time"

// Two week anchors coexist in the product: meal progress uses Monday-start
// weeks, history screens use Sunday-start. Every weekly call site names its
// anchor explicitly; mixing them shifts week boundaries by one day.

// MondayOf returns the Monday at or before t, truncated to a calendar date.
func MondayOf(t time.Time) time.Time {
	day := truncateDay(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// SundayOf returns the Sunday at or before t, truncated to a calendar date.
func SundayOf(t time.Time) time.Time {
	day := truncateDay(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// DayName returns the 3-letter day abbreviation for t.
func DayName(t time.Time) string {
	return t.Format("Mon")
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
