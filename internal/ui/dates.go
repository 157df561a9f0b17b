package ui

import (
	"fmt"
	"time"
)

// FormatDueDate renders a due date as YYYY-MM-DD, or "-" when there is none.
func FormatDueDate(due *time.Time, now time.Time) string {
	if due == nil {
		return "-"
	}
	return due.In(now.Location()).Format(time.DateOnly)
}

// FormatRelativeDay describes a due date's calendar day relative to now's.
func FormatRelativeDay(due time.Time, now time.Time) string {
	days := calendarDays(due.In(now.Location()), now)
	switch {
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	case days == -1:
		return "yesterday"
	case days > 1:
		return fmt.Sprintf("in %dd", days)
	default:
		return fmt.Sprintf("%dd ago", -days)
	}
}

// FormatTimeAgo returns a compact age string like "2m ago".
func FormatTimeAgo(then time.Time, now time.Time) string {
	if then.IsZero() {
		return "-"
	}
	return FormatDurationShort(now.Sub(then)) + " ago"
}

// FormatDurationShort formats a duration using short units (s/m/h/d).
func FormatDurationShort(duration time.Duration) string {
	if duration < 0 {
		duration = 0
	}

	seconds := int64(duration.Truncate(time.Second).Seconds())
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}

	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}

	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%dh", hours)
	}

	return fmt.Sprintf("%dd", hours/24)
}

func calendarDays(from, to time.Time) int {
	fromYear, fromMonth, fromDay := from.Date()
	toYear, toMonth, toDay := to.Date()
	a := time.Date(fromYear, fromMonth, fromDay, 12, 0, 0, 0, time.UTC)
	b := time.Date(toYear, toMonth, toDay, 12, 0, 0, 0, time.UTC)
	return int(a.Sub(b).Hours() / 24)
}
