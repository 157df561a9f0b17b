package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// homeDirs are the per-user directories cl reads and writes, relative to HOME.
var homeDirs = []string{
	filepath.Join(".local", "state", "checklist"),
	filepath.Join(".config", "checklist"),
}

// EnsureHomeDirs creates cl's state and config directories under homeDir.
func EnsureHomeDirs(homeDir string) error {
	for _, dir := range homeDirs {
		path := filepath.Join(homeDir, dir)
		if err := os.MkdirAll(path, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
	}
	return nil
}

// SetupTestHome points HOME at a fresh temp directory with cl's directories in place.
func SetupTestHome(t testing.TB) string {
	t.Helper()

	home := t.TempDir()
	if err := EnsureHomeDirs(home); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HOME", home)
	return home
}
