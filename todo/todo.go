package todo

import "time"

// Todo represents a single task.
type Todo struct {
	// ID is a unique identifier (8-char base32, derived from initial text + timestamp).
	ID string `json:"id"`

	// Text is the short summary of the todo.
	Text string `json:"text"`

	// Description provides additional context. Empty means none.
	Description string `json:"description,omitempty"`

	// Completed reports whether the todo is done.
	Completed bool `json:"completed"`

	// CreatedAt is when the todo was created.
	CreatedAt time.Time `json:"createdAt"`

	// DueDate is when the todo is due (nil if it has no due date).
	// Only its calendar day is meaningful.
	DueDate *time.Time `json:"dueDate,omitempty"`

	// Order is the manual sort position. Values are only compared to each other.
	Order int `json:"order"`

	// Priority is the importance level.
	Priority Priority `json:"priority"`
}

// HasDescription reports whether the todo carries a description.
func (t Todo) HasDescription() bool {
	return t.Description != ""
}

func cloneTodo(t Todo) Todo {
	if t.DueDate != nil {
		due := *t.DueDate
		t.DueDate = &due
	}
	return t
}

func cloneTodos(todos []Todo) []Todo {
	if todos == nil {
		return nil
	}
	cloned := make([]Todo, len(todos))
	for i := range todos {
		cloned[i] = cloneTodo(todos[i])
	}
	return cloned
}
