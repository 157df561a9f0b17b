package todo

import "time"

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// Overdue reports whether item is incomplete and due on a calendar day
// before now's. Both sides are compared as local days in now's location.
func Overdue(item Todo, now time.Time) bool {
	if item.Completed || item.DueDate == nil {
		return false
	}
	due := StartOfDay(item.DueDate.In(now.Location()))
	return due.Before(StartOfDay(now))
}

// ParseDueDate parses a YYYY-MM-DD date in loc.
func ParseDueDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(time.DateOnly, value, loc)
}
