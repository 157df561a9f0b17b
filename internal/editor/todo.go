package editor

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/amonks/checklist/todo"
)

// TodoData represents the data used to render the TOML template.
type TodoData struct {
	// IsUpdate is true when editing an existing todo.
	IsUpdate bool
	// ID is the todo ID (only for updates).
	ID string
	// Text is the todo's summary line.
	Text string
	// Priority is high, medium or low.
	Priority string
	// Due is the due date as YYYY-MM-DD, or empty.
	Due string
	// Description is the todo description.
	Description string
}

// DefaultCreateData returns TodoData with default values for creating a new todo.
func DefaultCreateData() TodoData {
	return TodoData{Priority: string(todo.PriorityMedium)}
}

// DataFromTodo creates TodoData from an existing todo for editing.
func DataFromTodo(t todo.Todo) TodoData {
	data := TodoData{
		IsUpdate:    true,
		ID:          t.ID,
		Text:        t.Text,
		Priority:    string(t.Priority),
		Description: t.Description,
	}
	if t.DueDate != nil {
		data.Due = t.DueDate.In(time.Local).Format(time.DateOnly)
	}
	return data
}

var todoTemplate = template.Must(template.New("todo").Parse(`{{- if .IsUpdate }}# editing {{ .ID }}
{{ end -}}
text = {{ printf "%q" .Text }}
priority = {{ printf "%q" .Priority }} # high, medium, low
due = {{ printf "%q" .Due }} # YYYY-MM-DD, empty for none
---
{{ .Description }}
`))

// RenderTodoTOML renders the todo data as a TOML string for editing.
func RenderTodoTOML(data TodoData) (string, error) {
	var buf bytes.Buffer
	if err := todoTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return buf.String(), nil
}

// ParsedTodo represents the parsed result from the TOML editor output.
type ParsedTodo struct {
	Text        string        `toml:"text"`
	Priority    todo.Priority `toml:"priority"`
	Due         string        `toml:"due"`
	DueDate     *time.Time    `toml:"-"`
	Description string        `toml:"-"`
}

// ParseTodoTOML parses the TOML content from the editor.
func ParseTodoTOML(content string) (*ParsedTodo, error) {
	frontmatter, body := splitFrontmatter(content)

	var parsed ParsedTodo
	if _, err := toml.Decode(frontmatter, &parsed); err != nil {
		return nil, fmt.Errorf("parse TOML: %w", err)
	}
	parsed.Description = todo.NormalizeDescription(body)

	text, err := todo.NormalizeText(parsed.Text)
	if err != nil {
		return nil, err
	}
	parsed.Text = text

	if parsed.Priority == "" {
		parsed.Priority = todo.PriorityMedium
	}
	priority, err := todo.ParsePriority(string(parsed.Priority))
	if err != nil {
		return nil, err
	}
	parsed.Priority = priority

	parsed.Due = strings.TrimSpace(parsed.Due)
	if parsed.Due != "" {
		due, err := todo.ParseDueDate(parsed.Due, time.Local)
		if err != nil {
			return nil, fmt.Errorf("invalid due date %q: must be YYYY-MM-DD", parsed.Due)
		}
		parsed.DueDate = &due
	}

	return &parsed, nil
}

func splitFrontmatter(content string) (string, string) {
	content = strings.TrimLeft(content, "\n")
	if content == "" {
		return "", ""
	}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "---" {
			return strings.Join(lines[:i], "\n"), strings.Join(lines[i+1:], "\n")
		}
	}
	return content, ""
}

// EditTodo opens the editor for a todo and returns the parsed result.
// Pass nil to start from an empty todo.
func EditTodo(existing *todo.Todo) (*ParsedTodo, error) {
	data := DefaultCreateData()
	if existing != nil {
		data = DataFromTodo(*existing)
	}
	return EditTodoWithData(data)
}

// EditTodoWithData opens the editor with pre-populated data and returns the parsed result.
func EditTodoWithData(data TodoData) (*ParsedTodo, error) {
	content, err := RenderTodoTOML(data)
	if err != nil {
		return nil, err
	}

	tmpfile, err := os.CreateTemp("", "cl-todo-*.md")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpfile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpfile.WriteString(content); err != nil {
		tmpfile.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpfile.Close(); err != nil {
		return nil, fmt.Errorf("close temp file: %w", err)
	}

	if err := Edit(tmpPath); err != nil {
		return nil, err
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("read edited file: %w", err)
	}

	return ParseTodoTOML(string(edited))
}

// ToAddOptions converts a ParsedTodo to todo.AddOptions.
func (p *ParsedTodo) ToAddOptions() todo.AddOptions {
	return todo.AddOptions{
		Description: p.Description,
		DueDate:     p.DueDate,
		Priority:    p.Priority,
	}
}

// ToEditOptions converts a ParsedTodo to todo.EditOptions. Every field is
// replaced; an empty description or due date clears it.
func (p *ParsedTodo) ToEditOptions() todo.EditOptions {
	opts := todo.EditOptions{
		Text:        todo.Set(p.Text),
		Description: todo.Set(p.Description),
		Priority:    todo.Set(p.Priority),
		DueDate:     todo.Clear[time.Time](),
	}
	if p.Description == "" {
		opts.Description = todo.Clear[string]()
	}
	if p.DueDate != nil {
		opts.DueDate = todo.Set(*p.DueDate)
	}
	return opts
}
