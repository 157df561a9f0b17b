package todo

import (
	"fmt"
	"strconv"
	"time"
)

// AddOptions configures a new todo.
type AddOptions struct {
	// Description provides additional context. It is trimmed; empty means none.
	Description string

	// DueDate is when the todo is due. Nil means no due date.
	DueDate *time.Time

	// Priority is the importance level. Defaults to PriorityMedium when empty.
	Priority Priority
}

// Add creates a todo with the given text and returns its ID.
//
// The new todo's order is one greater than every existing order, and it is
// stored at the front of the collection.
func (s *Store) Add(text string, opts AddOptions) (string, error) {
	text, err := NormalizeText(text)
	if err != nil {
		return "", err
	}

	priority := opts.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	if err := ValidatePriority(priority); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	createdAt := s.creationTime()
	item := Todo{
		ID:          s.uniqueID(text, createdAt),
		Text:        text,
		Description: NormalizeDescription(opts.Description),
		CreatedAt:   createdAt,
		Order:       s.nextOrder(),
		Priority:    priority,
	}
	if opts.DueDate != nil {
		due := *opts.DueDate
		item.DueDate = &due
	}

	s.todos = append([]Todo{item}, s.todos...)
	s.sync()

	return item.ID, nil
}

// creationTime returns a timestamp strictly after every earlier one from
// this store, so IDs derived from it never repeat within a session.
func (s *Store) creationTime() time.Time {
	now := s.now()
	if !now.After(s.lastCreated) {
		now = s.lastCreated.Add(time.Nanosecond)
	}
	s.lastCreated = now
	return now
}

func (s *Store) uniqueID(text string, createdAt time.Time) string {
	id := GenerateID(text, createdAt)
	for attempt := 1; s.indexOf(id) >= 0; attempt++ {
		id = GenerateID(text+"#"+strconv.Itoa(attempt), createdAt)
	}
	return id
}

// Toggle flips a todo's completion. It reports false if no todo has the ID.
func (s *Store) Toggle(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.todos[i].Completed = !s.todos[i].Completed
	s.sync()
	return true
}

// Delete removes a todo. It reports false if no todo has the ID.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.todos = append(s.todos[:i], s.todos[i+1:]...)
	s.sync()
	return true
}

// EditOptions configures fields to update on a todo.
// Zero-value patches leave their field unchanged.
type EditOptions struct {
	Text        Patch[string]
	Description Patch[string]
	DueDate     Patch[time.Time]
	Priority    Patch[Priority]
}

// Edit updates the fields opts patches. It reports false if no todo has the
// ID. Invalid patches return an error and change nothing.
func (s *Store) Edit(id string, opts EditOptions) (bool, error) {
	if opts.Text.IsClear() {
		return false, fmt.Errorf("text: %w", ErrClearRequired)
	}
	if opts.Priority.IsClear() {
		return false, fmt.Errorf("priority: %w", ErrClearRequired)
	}

	var text string
	if value, ok := opts.Text.Value(); ok {
		normalized, err := NormalizeText(value)
		if err != nil {
			return false, err
		}
		text = normalized
	}
	if value, ok := opts.Priority.Value(); ok {
		if err := ValidatePriority(value); err != nil {
			return false, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}
	item := &s.todos[i]

	if opts.Text.IsSet() {
		item.Text = text
	}
	if value, ok := opts.Description.Value(); ok {
		item.Description = NormalizeDescription(value)
	} else if opts.Description.IsClear() {
		item.Description = ""
	}
	if value, ok := opts.DueDate.Value(); ok {
		item.DueDate = &value
	} else if opts.DueDate.IsClear() {
		item.DueDate = nil
	}
	if value, ok := opts.Priority.Value(); ok {
		item.Priority = value
	}

	s.sync()
	return true, nil
}

// ClearCompleted removes every completed todo and returns how many were removed.
// Remaining todos keep their relative order.
func (s *Store) ClearCompleted() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]Todo, 0, len(s.todos))
	for _, item := range s.todos {
		if !item.Completed {
			kept = append(kept, item)
		}
	}
	removed := len(s.todos) - len(kept)
	s.todos = kept
	s.sync()
	return removed
}

// Reorder replaces the collection with sequence, setting each todo's order to
// its index. sequence is expected to be a permutation of the collection.
func (s *Store) Reorder(sequence []Todo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reorder(cloneTodos(sequence))
}

func (s *Store) reorder(sequence []Todo) {
	for i := range sequence {
		sequence[i].Order = i
	}
	s.todos = sequence
	s.sync()
}

// ReorderIDs moves the todos named by ids (full IDs or unique prefixes) to the
// front in the given order. The rest follow in their current display order.
func (s *Store) ReorderIDs(ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := NewIDIndex(s.todos)
	picked := make(map[string]bool, len(ids))
	sequence := make([]Todo, 0, len(s.todos))
	for _, raw := range ids {
		id, err := index.Resolve(raw)
		if err != nil {
			return err
		}
		if picked[id] {
			return fmt.Errorf("%w: %s", ErrDuplicateID, raw)
		}
		picked[id] = true
		sequence = append(sequence, cloneTodo(s.todos[s.indexOf(id)]))
	}
	for _, item := range sortForDisplay(cloneTodos(s.todos)) {
		if !picked[item.ID] {
			sequence = append(sequence, item)
		}
	}

	s.reorder(sequence)
	return nil
}
