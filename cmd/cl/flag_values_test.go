package main

import (
	"errors"
	"testing"
	"time"

	"github.com/amonks/checklist/todo"
)

func TestFilterValueSet(t *testing.T) {
	cases := []struct {
		input   string
		want    todo.Filter
		wantErr bool
	}{
		{input: "active", want: todo.FilterActive},
		{input: " Overdue ", want: todo.FilterOverdue},
		{input: "HIGH-PRIORITY", want: todo.FilterHighPriority},
		{input: "urgent", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			value := newFilterValue(todo.FilterAll)
			err := value.Set(tc.input)
			if tc.wantErr {
				if !errors.Is(err, todo.ErrInvalidFilter) {
					t.Fatalf("expected ErrInvalidFilter, got %v", err)
				}
				if value.filter != todo.FilterAll {
					t.Fatalf("expected filter to stay all, got %q", value.filter)
				}
				return
			}
			if err != nil {
				t.Fatalf("set filter: %v", err)
			}
			if value.String() != string(tc.want) {
				t.Fatalf("expected %q, got %q", tc.want, value.String())
			}
		})
	}
}

func TestPriorityValueSet(t *testing.T) {
	value := newPriorityValue(todo.PriorityMedium)
	if err := value.Set("Low"); err != nil {
		t.Fatalf("set priority: %v", err)
	}
	if value.priority != todo.PriorityLow {
		t.Fatalf("expected low, got %q", value.priority)
	}

	if err := value.Set("urgent"); !errors.Is(err, todo.ErrInvalidPriority) {
		t.Fatalf("expected ErrInvalidPriority, got %v", err)
	}
	if value.priority != todo.PriorityLow {
		t.Fatalf("expected failed set to keep low, got %q", value.priority)
	}
	if value.Type() != "priority" {
		t.Fatalf("expected type priority, got %q", value.Type())
	}
}

func TestParseDue(t *testing.T) {
	loc := time.FixedZone("test", -5*60*60)
	now := time.Date(2024, time.March, 15, 22, 30, 0, 0, loc)

	cases := []struct {
		input   string
		want    time.Time
		wantErr bool
	}{
		{input: "2024-04-01", want: time.Date(2024, time.April, 1, 0, 0, 0, 0, loc)},
		{input: "today", want: time.Date(2024, time.March, 15, 0, 0, 0, 0, loc)},
		{input: "Tomorrow", want: time.Date(2024, time.March, 16, 0, 0, 0, 0, loc)},
		{input: "03/15/2024", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := parseDue(tc.input, now)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse due: %v", err)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestDueValueKeepsRawInput(t *testing.T) {
	value := newDueValue()
	value.now = func() time.Time { return time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC) }

	if err := value.Set("tomorrow"); err != nil {
		t.Fatalf("set due: %v", err)
	}
	if value.String() != "tomorrow" {
		t.Fatalf("expected raw value tomorrow, got %q", value.String())
	}
	if got := value.date.Format(time.DateOnly); got != "2024-03-16" {
		t.Fatalf("expected 2024-03-16, got %s", got)
	}
}
