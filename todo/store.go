package todo

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// StorageKey is the key the collection is mirrored under in a ScopedStore.
const StorageKey = "todos"

// ScopedStore is a persistent string key-value store bound to one scope.
// Get reports whether the key exists.
type ScopedStore interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
}

// Options configures a Store.
type Options struct {
	// Storage mirrors the collection between sessions. If nil, the store
	// keeps todos in memory only and every persistence step is skipped.
	Storage ScopedStore

	// Logger receives persistence diagnostics. If nil, they are discarded.
	Logger *log.Logger

	// Now returns the current time. If nil, time.Now is used.
	Now func() time.Time
}

// Store owns the todo collection and the active filter and search query.
// It is safe for concurrent use.
type Store struct {
	mu sync.Mutex

	todos  []Todo
	filter Filter
	query  string

	storage ScopedStore
	logger  *log.Logger
	now     func() time.Time

	lastCreated time.Time
	syncErr     error
}

// New returns an empty Store. Call Load to read persisted todos.
func New(opts Options) *Store {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Store{
		filter:  FilterAll,
		storage: opts.Storage,
		logger:  logger,
		now:     now,
	}
}

// Load replaces the collection with the one persisted under StorageKey.
//
// A missing key leaves the collection empty. Unreadable or malformed data is
// logged and leaves the collection unchanged. Records written before order
// or priority existed are backfilled: order from their position, priority
// as medium.
func (s *Store) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.storage == nil {
		return
	}

	stored, ok, err := s.storage.Get(StorageKey)
	if err != nil {
		s.logger.Error("read stored todos", "key", StorageKey, "err", err)
		return
	}
	if !ok {
		s.todos = nil
		return
	}

	var elements []any
	if err := json.Unmarshal([]byte(stored), &elements); err != nil {
		s.logger.Error("parse stored todos", "key", StorageKey, "err", err)
		return
	}

	todos := make([]Todo, 0, len(elements))
	seen := make(map[string]bool, len(elements))
	for i, element := range elements {
		item, err := decodeStoredTodo(element, i)
		if err != nil {
			s.logger.Warn("skip stored todo", "index", i, "err", err)
			continue
		}
		if seen[item.ID] {
			s.logger.Warn("skip stored todo", "index", i, "err", fmt.Errorf("%w: %s", ErrDuplicateID, item.ID))
			continue
		}
		seen[item.ID] = true
		todos = append(todos, item)
	}
	s.todos = todos
}

// Purge removes every todo and deletes the persisted collection.
func (s *Store) Purge() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.todos = nil
	if s.storage == nil {
		return
	}
	if err := s.storage.Remove(StorageKey); err != nil {
		s.syncErr = fmt.Errorf("remove stored todos: %w", err)
		s.logger.Error("remove stored todos", "key", StorageKey, "err", err)
	}
}

// SyncErr returns the most recent persistence write failure, if any.
// Mutations still apply in memory when a write fails.
func (s *Store) SyncErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.syncErr
}

// sync mirrors the collection to storage. Callers hold s.mu.
func (s *Store) sync() {
	if s.storage == nil {
		return
	}

	todos := s.todos
	if todos == nil {
		todos = []Todo{}
	}
	data, err := json.Marshal(todos)
	if err != nil {
		s.syncErr = fmt.Errorf("encode todos: %w", err)
		s.logger.Error("encode todos", "err", err)
		return
	}
	if err := s.storage.Set(StorageKey, string(data)); err != nil {
		s.syncErr = fmt.Errorf("write todos: %w", err)
		s.logger.Error("write todos", "key", StorageKey, "err", err)
		return
	}
	s.syncErr = nil
	s.logger.Debug("synced todos", "count", len(todos))
}

// All returns a copy of the collection in storage order.
func (s *Store) All() []Todo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneTodos(s.todos)
}

// Len returns the number of todos in the collection.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.todos)
}

// Get returns the todo with the given ID.
func (s *Store) Get(id string) (Todo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		return cloneTodo(s.todos[i]), true
	}
	return Todo{}, false
}

// Resolve returns the full ID for an ID or unique ID prefix.
func (s *Store) Resolve(prefix string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return NewIDIndex(s.todos).Resolve(prefix)
}

// IDIndex returns an index of all todo IDs in the collection.
func (s *Store) IDIndex() IDIndex {
	s.mu.Lock()
	defer s.mu.Unlock()
	return NewIDIndex(s.todos)
}

// Filter returns the active filter.
func (s *Store) Filter() Filter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// SetFilter changes the active filter.
func (s *Store) SetFilter(filter Filter) error {
	if !filter.IsValid() {
		return invalidValueError(ErrInvalidFilter, string(filter), ValidFilters())
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = filter
	return nil
}

// SearchQuery returns the active search query.
func (s *Store) SearchQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// SetSearchQuery changes the active search query. An empty query disables search.
func (s *Store) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = query
}

// View returns the todos selected by the active filter and search query,
// in display order.
func (s *Store) View() []Todo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return FilteredView(s.viewState())
}

// Counts returns the aggregate counts over the whole collection.
func (s *Store) Counts() Counts {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ComputeCounts(s.todos, s.now())
}

func (s *Store) viewState() ViewState {
	return ViewState{
		Todos:       s.todos,
		Filter:      s.filter,
		SearchQuery: s.query,
		Now:         s.now(),
	}
}

func (s *Store) indexOf(id string) int {
	for i := range s.todos {
		if s.todos[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) maxOrder() (int, bool) {
	if len(s.todos) == 0 {
		return 0, false
	}
	max := s.todos[0].Order
	for _, item := range s.todos[1:] {
		if item.Order > max {
			max = item.Order
		}
	}
	return max, true
}

func (s *Store) nextOrder() int {
	max, ok := s.maxOrder()
	if !ok {
		return 0
	}
	return max + 1
}
