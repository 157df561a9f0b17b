package todo

import (
	"testing"
	"time"
)

func TestOverdue(t *testing.T) {
	now := time.Date(2024, 3, 15, 0, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		item Todo
		want bool
	}{
		{name: "no due date", item: Todo{}, want: false},
		{name: "yesterday", item: Todo{DueDate: dueOn(2024, 3, 14)}, want: true},
		{name: "yesterday completed", item: Todo{DueDate: dueOn(2024, 3, 14), Completed: true}, want: false},
		{name: "today", item: Todo{DueDate: dueOn(2024, 3, 15)}, want: false},
		{name: "tomorrow", item: Todo{DueDate: dueOn(2024, 3, 16)}, want: false},
		{name: "late yesterday", item: Todo{DueDate: timePtr(time.Date(2024, 3, 14, 23, 59, 0, 0, time.UTC))}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overdue(tt.item, now); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestOverdue_UsesNowLocation(t *testing.T) {
	east := time.FixedZone("east", 10*60*60)
	// 2024-03-14 20:00 UTC is already 2024-03-15 in east.
	due := time.Date(2024, 3, 14, 20, 0, 0, 0, time.UTC)
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, east)

	if Overdue(Todo{DueDate: &due}, now) {
		t.Error("due date on today's calendar day in now's zone should not be overdue")
	}
}

func TestParseDueDate(t *testing.T) {
	got, err := ParseDueDate("2024-02-29", time.UTC)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !got.Equal(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected date %v", got)
	}

	if _, err := ParseDueDate("02/29/2024", time.UTC); err == nil {
		t.Error("expected error for non-ISO date")
	}
}

func TestStartOfDay(t *testing.T) {
	got := StartOfDay(time.Date(2024, 3, 15, 17, 45, 12, 99, time.UTC))
	if !got.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected start of day %v", got)
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}
