package todo

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// Messages reported by Import.
const (
	ImportMessageReadError    = "Error reading the file."
	ImportMessageParseError   = "Error parsing JSON file. Please check the file format."
	ImportMessageInvalidShape = "Invalid file format. Expected an array of todos."
	ImportMessageNoValidTodos = "No valid todos found in the file."
)

// ImportResult reports the outcome of an import for display to the user.
type ImportResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	// Count is the number of todos added; only meaningful on success.
	Count int `json:"count,omitempty"`
}

// ExportFilename returns the suggested backup file name for a given day.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("todos-backup-%s.json", now.Format(time.DateOnly))
}

// Export returns the whole collection as an indented JSON array.
func (s *Store) Export() ([]byte, error) {
	data, _, err := s.export()
	return data, err
}

// ExportTo writes the Export document to w and returns how many todos it holds.
func (s *Store) ExportTo(w io.Writer) (int, error) {
	data, count, err := s.export()
	if err != nil {
		return 0, err
	}
	if _, err := w.Write(data); err != nil {
		return 0, fmt.Errorf("write export: %w", err)
	}
	return count, nil
}

func (s *Store) export() ([]byte, int, error) {
	s.mu.Lock()
	todos := cloneTodos(s.todos)
	s.mu.Unlock()

	if todos == nil {
		todos = []Todo{}
	}
	data, err := json.MarshalIndent(todos, "", "  ")
	if err != nil {
		return nil, 0, fmt.Errorf("encode todos: %w", err)
	}
	return append(data, '\n'), len(todos), nil
}

// ImportFrom reads a JSON document from r and imports it.
//
// The read happens without holding the store, so other operations may run
// while it is in progress; the merge itself is atomic.
func (s *Store) ImportFrom(r io.Reader) ImportResult {
	data, err := io.ReadAll(r)
	if err != nil {
		s.logger.Error("read import document", "err", err)
		return ImportResult{Message: ImportMessageReadError}
	}
	return s.Import(data)
}

// Import appends the valid todos in a JSON array document.
//
// Records must carry a string id and text, a boolean completed and a
// non-empty createdAt; a priority, when present, must be high, medium or low.
// Invalid records are dropped. A createdAt that is not a usable timestamp is
// replaced with the time of the import. Records without an order are numbered after
// the current highest order, and records without a priority become medium.
// Records whose ID is already in the collection, or repeats an earlier
// record in the document, are skipped; existing todos are never modified.
func (s *Store) Import(data []byte) ImportResult {
	var document any
	if err := json.Unmarshal(data, &document); err != nil {
		s.logger.Warn("parse import document", "err", err)
		return ImportResult{Message: ImportMessageParseError}
	}
	elements, ok := document.([]any)
	if !ok {
		return ImportResult{Message: ImportMessageInvalidShape}
	}

	importedAt := s.now()
	candidates := make([]importCandidate, 0, len(elements))
	for i, element := range elements {
		if err := validateImportRecord(element); err != nil {
			s.logger.Debug("drop imported todo", "index", i, "err", err)
			continue
		}
		candidate, err := decodeImportedTodo(element)
		if err != nil {
			s.logger.Debug("drop imported todo", "index", i, "err", err)
			continue
		}
		if !candidate.hasCreatedAt {
			s.logger.Debug("imported todo has unusable createdAt; using import time",
				"index", i, "id", candidate.todo.ID, "createdAt", element.(map[string]any)["createdAt"])
			candidate.todo.CreatedAt = importedAt
		}
		candidates = append(candidates, candidate)
	}
	if len(candidates) == 0 {
		return ImportResult{Message: ImportMessageNoValidTodos}
	}

	count := s.mergeImported(candidates)
	return ImportResult{
		Success: true,
		Message: fmt.Sprintf("Successfully imported %d todo(s)", count),
		Count:   count,
	}
}

// mergeImported appends candidates whose IDs are new, against the collection
// as it is at the moment of the merge.
func (s *Store) mergeImported(candidates []importCandidate) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]bool, len(s.todos)+len(candidates))
	for _, item := range s.todos {
		seen[item.ID] = true
	}

	next := s.nextOrder()
	added := make([]Todo, 0, len(candidates))
	for _, candidate := range candidates {
		if seen[candidate.todo.ID] {
			continue
		}
		seen[candidate.todo.ID] = true

		item := candidate.todo
		if !candidate.hasOrder {
			item.Order = next
			next++
		}
		added = append(added, item)
	}

	s.todos = append(s.todos, added...)
	s.sync()
	return len(added)
}
