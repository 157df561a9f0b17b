package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/amonks/checklist/todo"
)

// filterValue is a pflag.Value that only accepts known filters.
type filterValue struct {
	filter todo.Filter
}

func newFilterValue(filter todo.Filter) *filterValue {
	return &filterValue{filter: filter}
}

func (v *filterValue) String() string { return string(v.filter) }

func (v *filterValue) Set(value string) error {
	filter, err := todo.ParseFilter(value)
	if err != nil {
		return err
	}
	v.filter = filter
	return nil
}

func (v *filterValue) Type() string { return "filter" }

// priorityValue is a pflag.Value that only accepts known priorities.
type priorityValue struct {
	priority todo.Priority
}

func newPriorityValue(priority todo.Priority) *priorityValue {
	return &priorityValue{priority: priority}
}

func (v *priorityValue) String() string { return string(v.priority) }

func (v *priorityValue) Set(value string) error {
	priority, err := todo.ParsePriority(value)
	if err != nil {
		return err
	}
	v.priority = priority
	return nil
}

func (v *priorityValue) Type() string { return "priority" }

// dueValue is a pflag.Value holding a due date: YYYY-MM-DD, today or
// tomorrow, in local time.
type dueValue struct {
	raw  string
	date time.Time
	now  func() time.Time
}

func newDueValue() *dueValue {
	return &dueValue{now: time.Now}
}

func (v *dueValue) String() string { return v.raw }

func (v *dueValue) Set(value string) error {
	date, err := parseDue(value, v.now())
	if err != nil {
		return err
	}
	v.raw = value
	v.date = date
	return nil
}

func (v *dueValue) Type() string { return "date" }

func parseDue(value string, now time.Time) (time.Time, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	switch value {
	case "today":
		return todo.StartOfDay(now), nil
	case "tomorrow":
		return todo.StartOfDay(now).AddDate(0, 0, 1), nil
	}
	date, err := todo.ParseDueDate(value, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid due date %q: expected YYYY-MM-DD, today or tomorrow", value)
	}
	return date, nil
}
