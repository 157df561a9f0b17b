package storage

import "sync"

// MemoryStore keeps values in a map.
type MemoryStore struct {
	mu     sync.Mutex
	scope  string
	values map[string]string
}

// NewMemoryStore returns an empty MemoryStore for scope.
func NewMemoryStore(scope string) *MemoryStore {
	return &MemoryStore{scope: scope, values: make(map[string]string)}
}

// Scope returns the store's namespace.
func (m *MemoryStore) Scope() string {
	return m.scope
}

func (m *MemoryStore) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.values[key]
	return value, ok, nil
}

func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryStore) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

func (m *MemoryStore) Close() error {
	return nil
}
