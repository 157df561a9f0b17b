// Package paths resolves the directories cl reads and writes.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const appName = "checklist"

// HomeDir returns the current user's home directory.
func HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return home, nil
}

func underHome(parts ...string) (string, error) {
	home, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{home}, parts...)...), nil
}

// DefaultStateDir is ~/.local/state/checklist, where stores live.
func DefaultStateDir() (string, error) {
	return underHome(".local", "state", appName)
}

// DefaultConfigDir is ~/.config/checklist, which holds the global config file.
func DefaultConfigDir() (string, error) {
	return underHome(".config", appName)
}

// WorkingDir returns the current directory, with symlinks resolved when possible.
func WorkingDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(dir); err == nil {
		return resolved, nil
	}
	return dir, nil
}

// OrDefault returns value, or the result of fallback when value is empty.
func OrDefault(value string, fallback func() (string, error)) (string, error) {
	if value != "" {
		return value, nil
	}
	return fallback()
}

// Expand replaces a leading "~" or "~/" in path with the home directory.
// "~user" forms are returned unchanged.
func Expand(path string) (string, error) {
	rest, ok := strings.CutPrefix(path, "~")
	if !ok || (rest != "" && rest[0] != '/') {
		return path, nil
	}
	return underHome(strings.TrimPrefix(rest, "/"))
}
