package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

// FileStore keeps one scope's values in <dir>/<scope>.json.
//
// Writes hold an exclusive lock on <dir>/<scope>.lock and replace the data
// file atomically, so concurrent processes never observe a partial file.
type FileStore struct {
	dir   string
	scope string
}

// NewFileStore creates a file store for scope in dir. Nothing is created on
// disk until the first write.
func NewFileStore(dir, scope string) *FileStore {
	return &FileStore{dir: dir, scope: scope}
}

// Path returns the data file path.
func (s *FileStore) Path() string {
	return filepath.Join(s.dir, s.scope+".json")
}

func (s *FileStore) lockPath() string {
	return filepath.Join(s.dir, s.scope+".lock")
}

// load reads the scope's values. A missing file is an empty scope.
func (s *FileStore) load() (map[string]string, error) {
	data, err := os.ReadFile(s.Path())
	if os.IsNotExist(err) {
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read store file: %w", err)
	}

	var values map[string]string
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("unmarshal store file: %w", err)
	}
	if values == nil {
		values = make(map[string]string)
	}
	return values, nil
}

// save writes values to disk, skipping the write if nothing changed.
func (s *FileStore) save(values map[string]string) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store file: %w", err)
	}

	if existing, err := os.ReadFile(s.Path()); err == nil {
		if bytes.Equal(existing, data) {
			return nil
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("read store file: %w", err)
	}

	tmpFile, err := os.CreateTemp(s.dir, filepath.Base(s.Path())+".tmp")
	if err != nil {
		return fmt.Errorf("create temp store file: %w", err)
	}
	name := tmpFile.Name()
	_, err = tmpFile.Write(data)
	if err1 := tmpFile.Close(); err1 != nil && err == nil {
		err = err1
	}
	if err != nil {
		os.Remove(name)
		return fmt.Errorf("write temp store file: %w", err)
	}

	if err := os.Rename(name, s.Path()); err != nil {
		os.Remove(name)
		return fmt.Errorf("rename store file: %w", err)
	}
	return nil
}

// update reads, modifies, and writes the scope's values under the lock.
func (s *FileStore) update(fn func(values map[string]string)) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}

	lockFile, err := os.OpenFile(s.lockPath(), os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("open lock file: %w", err)
	}
	defer lockFile.Close()

	if err := syscall.Flock(int(lockFile.Fd()), syscall.LOCK_EX); err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	defer syscall.Flock(int(lockFile.Fd()), syscall.LOCK_UN)

	values, err := s.load()
	if err != nil {
		return err
	}
	fn(values)
	return s.save(values)
}

func (s *FileStore) Get(key string) (string, bool, error) {
	values, err := s.load()
	if err != nil {
		return "", false, err
	}
	value, ok := values[key]
	return value, ok, nil
}

func (s *FileStore) Set(key, value string) error {
	return s.update(func(values map[string]string) {
		values[key] = value
	})
}

func (s *FileStore) Remove(key string) error {
	if _, err := os.Stat(s.Path()); os.IsNotExist(err) {
		return nil
	}
	return s.update(func(values map[string]string) {
		delete(values, key)
	})
}

func (s *FileStore) Close() error {
	return nil
}
