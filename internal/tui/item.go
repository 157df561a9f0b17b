package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/amonks/checklist/todo"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
)

type todoItem struct {
	todo todo.Todo
	now  time.Time
}

func (item todoItem) FilterValue() string {
	return item.todo.Text
}

type todoItemDelegate struct{}

func (d todoItemDelegate) Height() int                             { return 1 }
func (d todoItemDelegate) Spacing() int                            { return 0 }
func (d todoItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d todoItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(todoItem)
	if !ok {
		return
	}

	line := formatTodoItem(item, m.Width())
	style := itemNormalStyle
	switch {
	case index == m.Index():
		style = itemSelectedStyle
	case item.todo.Completed:
		style = itemDoneStyle
	case todo.Overdue(item.todo, item.now):
		style = itemOverdueStyle
	}
	fmt.Fprint(w, style.Render(line))
}

func formatTodoItem(item todoItem, width int) string {
	check := "[ ]"
	if item.todo.Completed {
		check = "[x]"
	}
	line := fmt.Sprintf("%s %-6s %s", check, item.todo.Priority, item.todo.Text)
	if item.todo.DueDate != nil {
		due := item.todo.DueDate.In(item.now.Location()).Format(time.DateOnly)
		if todo.Overdue(item.todo, item.now) {
			due += " overdue"
		}
		line += "  (due " + due + ")"
	}
	return truncateText(line, width)
}

func truncateText(value string, width int) string {
	if width <= 0 {
		return value
	}
	return runewidth.Truncate(value, width, "...")
}
