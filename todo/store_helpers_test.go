package todo

import (
	"errors"
	"sync"
	"testing"
	"time"
)

var errStorageDown = errors.New("storage unavailable")

// mapStorage is a ScopedStore backed by a map.
type mapStorage struct {
	mu      sync.Mutex
	values  map[string]string
	sets    int
	failSet bool
	failGet bool
}

func newMapStorage() *mapStorage {
	return &mapStorage{values: make(map[string]string)}
}

func (m *mapStorage) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failGet {
		return "", false, errStorageDown
	}
	value, ok := m.values[key]
	return value, ok, nil
}

func (m *mapStorage) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSet {
		return errStorageDown
	}
	m.sets++
	m.values[key] = value
	return nil
}

func (m *mapStorage) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

var testNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

// newTestStore returns a store over fresh map storage with a fixed clock.
func newTestStore(t *testing.T) (*Store, *mapStorage) {
	t.Helper()
	storage := newMapStorage()
	store := New(Options{
		Storage: storage,
		Now:     func() time.Time { return testNow },
	})
	return store, storage
}

func mustAdd(t *testing.T, store *Store, text string, opts AddOptions) string {
	t.Helper()
	id, err := store.Add(text, opts)
	if err != nil {
		t.Fatalf("add %q: %v", text, err)
	}
	return id
}

func mustGet(t *testing.T, store *Store, id string) Todo {
	t.Helper()
	item, ok := store.Get(id)
	if !ok {
		t.Fatalf("todo %s not found", id)
	}
	return item
}

func dueOn(year int, month time.Month, day int) *time.Time {
	due := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &due
}

func texts(todos []Todo) []string {
	result := make([]string, len(todos))
	for i, item := range todos {
		result[i] = item.Text
	}
	return result
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
