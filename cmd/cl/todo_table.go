package main

import (
	"fmt"
	"io"
	"time"

	"github.com/amonks/checklist/internal/ui"
	"github.com/amonks/checklist/todo"
)

// printTodoTable prints todos in a table format.
func printTodoTable(w io.Writer, todos []todo.Todo, prefixLengths map[string]int, now time.Time) {
	if len(todos) == 0 {
		fmt.Fprintln(w, "No todos found.")
		return
	}

	fmt.Fprint(w, formatTodoTable(todos, prefixLengths, ui.HighlightID, now))
}

func formatTodoTable(todos []todo.Todo, prefixLengths map[string]int, highlight func(string, int) string, now time.Time) string {
	builder := ui.NewTableBuilder([]string{"ID", "PRI", "DUE", "STATUS", "TEXT"}, len(todos))

	if prefixLengths == nil {
		prefixLengths = todoIDPrefixLengths(todos)
	}

	for _, t := range todos {
		text := ui.TruncateTableCell(t.Text)
		if t.Completed {
			text = ui.Completed(text)
		}
		builder.AddRow([]string{
			highlight(t.ID, ui.PrefixLength(prefixLengths, t.ID)),
			ui.Priority(string(t.Priority)),
			ui.FormatDueDate(t.DueDate, now),
			formatTodoStatus(t, now),
			text,
		})
	}

	return builder.String()
}

func todoIDPrefixLengths(todos []todo.Todo) map[string]int {
	index := todo.NewIDIndex(todos)
	return index.PrefixLengths()
}

func todoStatus(t todo.Todo, now time.Time) string {
	switch {
	case t.Completed:
		return "done"
	case todo.Overdue(t, now):
		return "overdue"
	default:
		return "open"
	}
}

func formatTodoStatus(t todo.Todo, now time.Time) string {
	status := todoStatus(t, now)
	switch status {
	case "done":
		return ui.Muted(status)
	case "overdue":
		return ui.Overdue(status)
	default:
		return status
	}
}
