// Package todo manages a local task list.
//
// A Store owns the in-memory collection of todos together with the active
// filter and search query. Every successful mutation is mirrored to a
// ScopedStore under the "todos" key, and the collection can be bulk
// exported to or imported from a JSON document.
//
// The public API mirrors the CLI commands:
//   - Add, Toggle, Edit, Delete, ClearCompleted, Reorder for the collection
//   - View, Counts and the pure FilteredView/ComputeCounts for display
//   - Load, Export, Import for persistence and transfer
package todo

import "strings"

// Priority represents how important a todo is.
type Priority string

const (
	// PriorityLow is for todos that can wait.
	PriorityLow Priority = "low"

	// PriorityMedium is the default priority.
	PriorityMedium Priority = "medium"

	// PriorityHigh is for todos that should be done first.
	PriorityHigh Priority = "high"
)

// ValidPriorities returns all valid priority values, highest first.
func ValidPriorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// IsValid returns true if the priority is a known valid value.
func (p Priority) IsValid() bool {
	for _, valid := range ValidPriorities() {
		if p == valid {
			return true
		}
	}
	return false
}

// Rank returns the sort rank for a priority. Higher ranks sort first.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 2
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 0
	default:
		return -1
	}
}

// ParsePriority normalizes and validates a priority name.
func ParsePriority(value string) (Priority, error) {
	priority := Priority(strings.ToLower(strings.TrimSpace(value)))
	if !priority.IsValid() {
		return "", invalidValueError(ErrInvalidPriority, value, ValidPriorities())
	}
	return priority, nil
}

// Filter names the predicate that selects which todos are displayed.
type Filter string

const (
	// FilterAll selects every todo.
	FilterAll Filter = "all"

	// FilterActive selects todos that are not completed.
	FilterActive Filter = "active"

	// FilterCompleted selects completed todos.
	FilterCompleted Filter = "completed"

	// FilterOverdue selects incomplete todos due before today.
	FilterOverdue Filter = "overdue"

	// FilterHighPriority selects incomplete high-priority todos.
	FilterHighPriority Filter = "high-priority"

	// FilterMediumPriority selects incomplete medium-priority todos.
	FilterMediumPriority Filter = "medium-priority"

	// FilterLowPriority selects incomplete low-priority todos.
	FilterLowPriority Filter = "low-priority"
)

// ValidFilters returns all valid filter values.
func ValidFilters() []Filter {
	return []Filter{
		FilterAll,
		FilterActive,
		FilterCompleted,
		FilterOverdue,
		FilterHighPriority,
		FilterMediumPriority,
		FilterLowPriority,
	}
}

// IsValid returns true if the filter is a known valid value.
func (f Filter) IsValid() bool {
	for _, valid := range ValidFilters() {
		if f == valid {
			return true
		}
	}
	return false
}

// ParseFilter normalizes and validates a filter name.
func ParseFilter(value string) (Filter, error) {
	filter := Filter(strings.ToLower(strings.TrimSpace(value)))
	if !filter.IsValid() {
		return "", invalidValueError(ErrInvalidFilter, value, ValidFilters())
	}
	return filter, nil
}

// priority returns the priority a priority filter selects, if any.
func (f Filter) priority() (Priority, bool) {
	switch f {
	case FilterHighPriority:
		return PriorityHigh, true
	case FilterMediumPriority:
		return PriorityMedium, true
	case FilterLowPriority:
		return PriorityLow, true
	default:
		return "", false
	}
}

// MaxTextLength is the maximum allowed length for a todo's text.
const MaxTextLength = 500
