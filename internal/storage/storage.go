// Package storage provides the scoped key-value stores todo collections are
// persisted in.
package storage

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
)

// Backend names a storage implementation.
type Backend string

const (
	// BackendFile keeps each scope in a JSON file.
	BackendFile Backend = "file"

	// BackendSQLite keeps every scope in one SQLite database.
	BackendSQLite Backend = "sqlite"

	// BackendMemory keeps values for the life of the process.
	BackendMemory Backend = "memory"

	// BackendNone disables persistence.
	BackendNone Backend = "none"
)

// ValidBackends returns all valid backend names.
func ValidBackends() []Backend {
	return []Backend{BackendFile, BackendSQLite, BackendMemory, BackendNone}
}

var (
	// ErrEmptyScope is returned when a store is opened without a scope.
	ErrEmptyScope = errors.New("scope cannot be empty")

	// ErrInvalidScope is returned when a scope contains characters other than
	// letters, digits, '.', '_' or '-'.
	ErrInvalidScope = errors.New("invalid scope")

	// ErrUnknownBackend is returned when a backend name is not recognized.
	ErrUnknownBackend = errors.New("unknown storage backend")
)

// Store is a string key-value store bound to one scope.
type Store interface {
	// Get returns the value for key and whether it exists.
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
	Close() error
}

var scopePattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// ValidateScope checks that scope can be used as a namespace and file name.
func ValidateScope(scope string) error {
	if scope == "" {
		return ErrEmptyScope
	}
	if !scopePattern.MatchString(scope) || scope == "." || scope == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidScope, scope)
	}
	return nil
}

// Options configures Open.
type Options struct {
	// Backend selects the implementation. Defaults to BackendFile.
	Backend Backend

	// Dir is the directory file stores live in.
	Dir string

	// Path is the SQLite database file. Defaults to <Dir>/checklist.db.
	Path string

	// Scope namespaces the keys.
	Scope string
}

// DatabaseName is the SQLite file name used when Options.Path is empty.
const DatabaseName = "checklist.db"

// Open returns the store opts describes. BackendNone returns a nil Store.
func Open(opts Options) (Store, error) {
	backend := opts.Backend
	if backend == "" {
		backend = BackendFile
	}
	if backend == BackendNone {
		return nil, nil
	}
	if err := ValidateScope(opts.Scope); err != nil {
		return nil, err
	}

	switch backend {
	case BackendFile:
		return NewFileStore(opts.Dir, opts.Scope), nil
	case BackendMemory:
		return NewMemoryStore(opts.Scope), nil
	case BackendSQLite:
		path := opts.Path
		if path == "" {
			path = filepath.Join(opts.Dir, DatabaseName)
		}
		return OpenSQLiteStore(path, opts.Scope)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
