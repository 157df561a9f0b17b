package todo

import (
	"sort"
	"strings"
	"time"
)

// ViewState is everything a display projection depends on.
type ViewState struct {
	Todos       []Todo
	Filter      Filter
	SearchQuery string
	Now         time.Time
}

// Counts aggregates the collection for display.
// Priority counts only include incomplete todos.
type Counts struct {
	Active         int `json:"active"`
	Completed      int `json:"completed"`
	Overdue        int `json:"overdue"`
	HighPriority   int `json:"highPriority"`
	MediumPriority int `json:"mediumPriority"`
	LowPriority    int `json:"lowPriority"`
}

// FilteredView returns copies of the todos selected by state's filter and
// search query, sorted by priority (high first) and then by order.
// An empty or all-whitespace query disables search.
func FilteredView(state ViewState) []Todo {
	query := strings.ToLower(strings.TrimSpace(state.SearchQuery))

	result := make([]Todo, 0, len(state.Todos))
	for _, item := range state.Todos {
		if !MatchesFilter(item, state.Filter, state.Now) {
			continue
		}
		if query != "" && !matchesQuery(item, query) {
			continue
		}
		result = append(result, cloneTodo(item))
	}

	return sortForDisplay(result)
}

// MatchesFilter reports whether item is selected by filter. Unknown filters
// select everything.
func MatchesFilter(item Todo, filter Filter, now time.Time) bool {
	if priority, ok := filter.priority(); ok {
		return !item.Completed && item.Priority == priority
	}
	switch filter {
	case FilterActive:
		return !item.Completed
	case FilterCompleted:
		return item.Completed
	case FilterOverdue:
		return Overdue(item, now)
	default:
		return true
	}
}

func matchesQuery(item Todo, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(item.Text), lowerQuery) ||
		strings.Contains(strings.ToLower(item.Description), lowerQuery)
}

func sortForDisplay(todos []Todo) []Todo {
	sort.SliceStable(todos, func(i, j int) bool {
		if todos[i].Priority.Rank() != todos[j].Priority.Rank() {
			return todos[i].Priority.Rank() > todos[j].Priority.Rank()
		}
		return todos[i].Order < todos[j].Order
	})
	return todos
}

// ComputeCounts aggregates todos as of now.
func ComputeCounts(todos []Todo, now time.Time) Counts {
	var counts Counts
	for _, item := range todos {
		if item.Completed {
			counts.Completed++
			continue
		}
		counts.Active++
		if Overdue(item, now) {
			counts.Overdue++
		}
		switch item.Priority {
		case PriorityHigh:
			counts.HighPriority++
		case PriorityMedium:
			counts.MediumPriority++
		case PriorityLow:
			counts.LowPriority++
		}
	}
	return counts
}
