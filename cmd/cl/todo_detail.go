package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/amonks/checklist/internal/markdown"
	"github.com/amonks/checklist/internal/ui"
	"github.com/amonks/checklist/todo"
)

const todoDetailFallbackWidth = 80

// printTodoDetail prints detailed information about a todo.
func printTodoDetail(w io.Writer, t todo.Todo, highlight func(string) string, now time.Time, width int) {
	fmt.Fprint(w, formatTodoDetail(t, highlight, now, width))
}

func formatTodoDetail(t todo.Todo, highlight func(string) string, now time.Time, width int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s       %s\n", ui.Label("ID:"), highlight(t.ID))
	fmt.Fprintf(&b, "%s     %s\n", ui.Label("Text:"), t.Text)
	fmt.Fprintf(&b, "%s %s\n", ui.Label("Priority:"), ui.Priority(string(t.Priority)))
	fmt.Fprintf(&b, "%s   %s\n", ui.Label("Status:"), formatTodoStatus(t, now))
	if t.DueDate != nil {
		fmt.Fprintf(&b, "%s      %s (%s)\n", ui.Label("Due:"), ui.FormatDueDate(t.DueDate, now), ui.FormatRelativeDay(*t.DueDate, now))
	}
	fmt.Fprintf(&b, "%s    %d\n", ui.Label("Order:"), t.Order)
	fmt.Fprintf(&b, "%s  %s (%s)\n", ui.Label("Created:"), t.CreatedAt.In(now.Location()).Format("2006-01-02 15:04:05"), ui.FormatTimeAgo(t.CreatedAt, now))

	if t.HasDescription() {
		fmt.Fprintf(&b, "\n%s\n%s\n", ui.Label("Description:"), formatTodoDescription(t.Description, width))
	}
	return b.String()
}

func formatTodoDescription(value string, width int) string {
	if width <= 0 {
		width = ui.TerminalWidth(todoDetailFallbackWidth)
	}
	rendered := markdown.SafeRender(width, 2, []byte(value))
	if len(rendered) == 0 {
		return "  -"
	}
	return string(rendered)
}
