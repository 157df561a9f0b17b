// Package tui implements the interactive checklist screen.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/amonks/checklist/todo"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type inputMode int

const (
	modeBrowse inputMode = iota
	modeAdd
	modeEdit
	modeSearch
)

type statusLevel int

const (
	statusNone statusLevel = iota
	statusInfo
	statusError
)

type modalKind int

const (
	modalNone modalKind = iota
	modalHelp
	modalClearCompleted
)

var errNoSelection = errors.New("no todo selected")

type model struct {
	store       *todo.Store
	now         func() time.Time
	width       int
	height      int
	list        list.Model
	input       textinput.Model
	mode        inputMode
	modal       modalKind
	editingID   string
	status      string
	statusLevel statusLevel
}

// Run shows the checklist screen until the user quits. Changes are applied
// to store as they are made.
func Run(ctx context.Context, store *todo.Store) error {
	if store == nil {
		return fmt.Errorf("todo store is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	program := tea.NewProgram(newModel(store, time.Now), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

func newModel(store *todo.Store, now func() time.Time) model {
	todoList := list.New(nil, todoItemDelegate{}, 0, 0)
	todoList.SetShowTitle(false)
	todoList.SetShowStatusBar(false)
	todoList.SetFilteringEnabled(false)
	todoList.SetShowHelp(false)
	todoList.SetShowPagination(false)
	todoList.KeyMap.Quit.SetEnabled(false)
	todoList.KeyMap.ShowFullHelp.SetEnabled(false)

	input := textinput.New()
	input.CharLimit = todo.MaxTextLength

	m := model{
		store: store,
		now:   now,
		list:  todoList,
		input: input,
	}
	m.refresh()
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	case tea.KeyMsg:
		if m.modal != modalNone {
			return m.updateModal(msg)
		}
		if m.mode != modeBrowse {
			return m.updateInput(msg)
		}
		updated, cmd, handled := m.handleKey(msg)
		if handled {
			return updated, cmd
		}
		m = updated
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit, true
	case "?":
		m.modal = modalHelp
		return m, nil, true
	case " ", "x":
		return m.toggleSelected(), nil, true
	case "d", "delete":
		return m.deleteSelected(), nil, true
	case "a", "n":
		updated, cmd := m.startInput(modeAdd, "Add: ", "")
		return updated, cmd, true
	case "e", "enter":
		item, ok := m.selected()
		if !ok {
			m.setStatus(errNoSelection.Error(), statusError)
			return m, nil, true
		}
		m.editingID = item.ID
		updated, cmd := m.startInput(modeEdit, "Edit: ", item.Text)
		return updated, cmd, true
	case "/":
		updated, cmd := m.startInput(modeSearch, "Search: ", m.store.SearchQuery())
		return updated, cmd, true
	case "esc":
		if m.store.SearchQuery() != "" {
			m.store.SetSearchQuery("")
			m.refresh()
			m.setStatus("Search cleared", statusInfo)
		}
		return m, nil, true
	case "f":
		return m.cycleFilter(1), nil, true
	case "F":
		return m.cycleFilter(-1), nil, true
	case "+", "=":
		return m.shiftPriority(1), nil, true
	case "-":
		return m.shiftPriority(-1), nil, true
	case "K", "shift+up":
		return m.moveSelected(-1), nil, true
	case "J", "shift+down":
		return m.moveSelected(1), nil, true
	case "C":
		if m.store.Counts().Completed == 0 {
			m.setStatus("No completed todos to clear", statusInfo)
			return m, nil, true
		}
		m.modal = modalClearCompleted
		return m, nil, true
	}
	return m, nil, false
}

func (m model) startInput(mode inputMode, prompt, value string) (model, tea.Cmd) {
	m.mode = mode
	m.input.Prompt = prompt
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m model) finishInput() model {
	m.mode = modeBrowse
	m.editingID = ""
	m.input.Blur()
	m.input.SetValue("")
	return m
}

func (m model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.mode == modeSearch {
			m.store.SetSearchQuery("")
			m.refresh()
		}
		return m.finishInput(), nil
	case "enter":
		return m.submitInput(), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.mode == modeSearch {
		m.store.SetSearchQuery(m.input.Value())
		m.refresh()
	}
	return m, cmd
}

func (m model) submitInput() model {
	value := m.input.Value()
	switch m.mode {
	case modeAdd:
		id, err := m.store.Add(value, todo.AddOptions{})
		if err != nil {
			m.setStatus(fmt.Sprintf("Add failed: %v", err), statusError)
			return m
		}
		m = m.finishInput()
		m.refresh()
		m.selectByID(id)
		m.setStatus("Todo added", statusInfo)
	case modeEdit:
		id := m.editingID
		found, err := m.store.Edit(id, todo.EditOptions{Text: todo.Set(value)})
		if err != nil {
			m.setStatus(fmt.Sprintf("Edit failed: %v", err), statusError)
			return m
		}
		m = m.finishInput()
		m.refresh()
		if !found {
			m.setStatus(todo.ErrTodoNotFound.Error(), statusError)
			return m
		}
		m.selectByID(id)
		m.setStatus("Todo updated", statusInfo)
	case modeSearch:
		m = m.finishInput()
	}
	return m.withSyncStatus()
}

func (m model) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	kind := m.modal
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "y", "enter":
		m.modal = modalNone
		if kind == modalClearCompleted {
			removed := m.store.ClearCompleted()
			m.refresh()
			m.setStatus(fmt.Sprintf("Cleared %d completed todo(s)", removed), statusInfo)
			return m.withSyncStatus(), nil
		}
	case "n", "esc", "q", "?":
		m.modal = modalNone
	}
	return m, nil
}

func (m model) toggleSelected() model {
	item, ok := m.selected()
	if !ok {
		m.setStatus(errNoSelection.Error(), statusError)
		return m
	}
	m.store.Toggle(item.ID)
	m.refresh()
	m.selectByID(item.ID)
	if item.Completed {
		m.setStatus("Reopened "+item.Text, statusInfo)
	} else {
		m.setStatus("Completed "+item.Text, statusInfo)
	}
	return m.withSyncStatus()
}

func (m model) deleteSelected() model {
	item, ok := m.selected()
	if !ok {
		m.setStatus(errNoSelection.Error(), statusError)
		return m
	}
	index := m.list.Index()
	m.store.Delete(item.ID)
	m.refresh()
	if count := len(m.list.Items()); count > 0 {
		m.list.Select(min(index, count-1))
	}
	m.setStatus("Deleted "+item.Text, statusInfo)
	return m.withSyncStatus()
}

func (m model) cycleFilter(delta int) model {
	filters := todo.ValidFilters()
	current := 0
	for i, filter := range filters {
		if filter == m.store.Filter() {
			current = i
		}
	}
	next := filters[(current+delta+len(filters))%len(filters)]
	if err := m.store.SetFilter(next); err != nil {
		m.setStatus(err.Error(), statusError)
		return m
	}
	m.refresh()
	m.setStatus("Filter: "+string(next), statusInfo)
	return m
}

// shiftPriority moves the selected todo one level up (delta > 0) or down.
func (m model) shiftPriority(delta int) model {
	item, ok := m.selected()
	if !ok {
		m.setStatus(errNoSelection.Error(), statusError)
		return m
	}
	priorities := todo.ValidPriorities()
	current := 0
	for i, priority := range priorities {
		if priority == item.Priority {
			current = i
		}
	}
	next := current - delta
	if next < 0 || next >= len(priorities) {
		m.setStatus("Priority is already "+string(item.Priority), statusInfo)
		return m
	}
	if _, err := m.store.Edit(item.ID, todo.EditOptions{Priority: todo.Set(priorities[next])}); err != nil {
		m.setStatus(fmt.Sprintf("Edit failed: %v", err), statusError)
		return m
	}
	m.refresh()
	m.selectByID(item.ID)
	m.setStatus(fmt.Sprintf("Priority: %s", priorities[next]), statusInfo)
	return m.withSyncStatus()
}

// moveSelected swaps the selected todo with its neighbor in the list. Todos
// only move within their priority group, since display sorts by priority.
func (m model) moveSelected(delta int) model {
	items := m.visibleTodos()
	index := m.list.Index()
	target := index + delta
	if index < 0 || index >= len(items) || target < 0 || target >= len(items) {
		return m
	}
	if items[index].Priority != items[target].Priority {
		m.setStatus("Todos only move within their priority", statusInfo)
		return m
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	ids[index], ids[target] = ids[target], ids[index]
	if err := m.store.ReorderIDs(ids); err != nil {
		m.setStatus(fmt.Sprintf("Reorder failed: %v", err), statusError)
		return m
	}
	m.refresh()
	m.selectByID(items[index].ID)
	return m.withSyncStatus()
}

func (m model) withSyncStatus() model {
	if err := m.store.SyncErr(); err != nil {
		m.setStatus(fmt.Sprintf("Not saved: %v", err), statusError)
	}
	return m
}

func (m *model) refresh() {
	selectedID := ""
	if item, ok := m.selected(); ok {
		selectedID = item.ID
	}
	now := m.now()
	view := m.store.View()
	items := make([]list.Item, 0, len(view))
	for _, item := range view {
		items = append(items, todoItem{todo: item, now: now})
	}
	m.list.SetItems(items)
	m.selectByID(selectedID)
	if len(items) > 0 && (m.list.Index() < 0 || m.list.Index() >= len(items)) {
		m.list.Select(0)
	}
}

func (m model) visibleTodos() []todo.Todo {
	items := m.list.Items()
	todos := make([]todo.Todo, 0, len(items))
	for _, item := range items {
		if current, ok := item.(todoItem); ok {
			todos = append(todos, current.todo)
		}
	}
	return todos
}

func (m model) selected() (todo.Todo, bool) {
	item := m.list.SelectedItem()
	if item == nil {
		return todo.Todo{}, false
	}
	current, ok := item.(todoItem)
	return current.todo, ok
}

func (m *model) selectByID(id string) {
	if id == "" {
		return
	}
	for i, item := range m.list.Items() {
		if current, ok := item.(todoItem); ok && current.todo.ID == id {
			m.list.Select(i)
			return
		}
	}
}

func (m *model) setStatus(text string, level statusLevel) {
	m.status = text
	m.statusLevel = level
}

func (m *model) resize() {
	listHeight := m.height - 4
	if listHeight < 1 {
		listHeight = 1
	}
	m.list.SetSize(m.width, listHeight)
	m.input.Width = m.width - lipgloss.Width(m.input.Prompt) - 1
}

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading checklist..."
	}
	if m.modal != modalNone {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.modalView())
	}

	body := m.list.View()
	if len(m.list.Items()) == 0 {
		body = lipgloss.NewStyle().Height(m.list.Height()).Render(valueMuted.Render("No todos found."))
	}
	return strings.Join([]string{m.renderHeader(), body, m.renderCounts(), m.renderFooter()}, "\n")
}

func (m model) renderHeader() string {
	title := titleStyle.Render("Checklist")
	parts := []string{"filter: " + string(m.store.Filter())}
	if query := strings.TrimSpace(m.store.SearchQuery()); query != "" {
		parts = append(parts, fmt.Sprintf("search: %q", query))
	}
	info := " " + strings.Join(parts, "  ")
	hint := valueMuted.Render("? help")
	spacerWidth := m.width - lipgloss.Width(title) - lipgloss.Width(info) - lipgloss.Width(hint)
	if spacerWidth < 1 {
		spacerWidth = 1
	}
	return headerStyle.Width(m.width).Render(title + info + strings.Repeat(" ", spacerWidth) + hint)
}

func (m model) renderCounts() string {
	counts := m.store.Counts()
	text := fmt.Sprintf("%d active | %d completed | %d overdue | high %d  medium %d  low %d",
		counts.Active, counts.Completed, counts.Overdue,
		counts.HighPriority, counts.MediumPriority, counts.LowPriority)
	return valueMuted.Render(truncateText(text, m.width))
}

func (m model) renderFooter() string {
	if m.mode != modeBrowse {
		return m.input.View()
	}
	if strings.TrimSpace(m.status) == "" {
		return ""
	}
	style := valueMuted
	switch m.statusLevel {
	case statusError:
		style = statusErrorStyle
	case statusInfo:
		style = statusSuccessStyle
	}
	return style.Render(truncateText(m.status, m.width))
}

func (m model) modalView() string {
	if m.modal == modalClearCompleted {
		message := fmt.Sprintf("Delete %d completed todo(s)?", m.store.Counts().Completed)
		return modalStyle.Render(message + "\n\n" + valueMuted.Render("[y] yes  [n] no"))
	}
	return modalStyle.Render(helpContent())
}

func helpContent() string {
	rows := [][2]string{
		{"up/down, j/k", "move"},
		{"space, x", "toggle done"},
		{"a", "add a todo"},
		{"e, enter", "edit text"},
		{"d", "delete"},
		{"+/-", "raise or lower priority"},
		{"K/J", "move up or down"},
		{"f/F", "next or previous filter"},
		{"/", "search; esc clears"},
		{"C", "clear completed"},
		{"q", "quit"},
	}
	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, labelStyle.Render("Keys"), "")
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%-14s %s", row[0], row[1]))
	}
	return strings.Join(lines, "\n")
}
