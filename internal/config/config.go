// Package config handles loading checklist.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/amonks/checklist/internal/paths"
)

// ProjectFileName is the per-directory config file name.
const ProjectFileName = "checklist.toml"

// Defaults applied by Resolve when no config file sets a value.
const (
	DefaultBackend   = "file"
	DefaultScope     = "default"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Config represents the checklist.toml configuration file.
type Config struct {
	Store   Store   `toml:"store"`
	Log     Log     `toml:"log"`
	Display Display `toml:"display"`
}

// Store selects where todos are persisted.
type Store struct {
	// Backend is one of file, sqlite, memory or none.
	Backend string `toml:"backend"`

	// Dir is the directory file stores and the default database live in.
	Dir string `toml:"dir"`

	// Path is the SQLite database file.
	Path string `toml:"path"`

	// Scope namespaces todos so several lists can share a backend.
	Scope string `toml:"scope"`
}

// Log configures diagnostics written to stderr.
type Log struct {
	// Level is debug, info, warn or error.
	Level string `toml:"level"`

	// Format is text, json or logfmt.
	Format string `toml:"format"`
}

// Display configures terminal output.
type Display struct {
	// Width wraps descriptions in the detail view. Zero means the terminal width.
	Width int `toml:"width"`
}

// Load loads configuration from dir and the global config file.
// Returns an empty config if no config files exist.
func Load(dir string) (*Config, error) {
	globalPath, err := GlobalPath()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	projectCfg, projectMeta, err := loadConfigFile(filepath.Join(dir, ProjectFileName))
	if err != nil {
		return nil, err
	}

	return mergeConfigs(globalCfg, projectCfg, globalMeta, projectMeta), nil
}

// LoadFile loads a single config file. Unlike Load, the file must exist.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}
	cfg, meta, err := loadConfigFile(path)
	if err != nil {
		return nil, err
	}
	return mergeConfigs(nil, cfg, toml.MetaData{}, meta), nil
}

// GlobalPath returns the path of the global config file.
func GlobalPath() (string, error) {
	dir, err := paths.DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: unknown key %s", path, undecoded[0])
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, projectCfg *Config, globalMeta, projectMeta toml.MetaData) *Config {
	if globalCfg == nil {
		globalCfg = &Config{}
	}
	if projectCfg == nil {
		projectCfg = &Config{}
	}

	merged := Config{}
	merged.Store.Backend = mergeString(projectMeta.IsDefined("store", "backend"), projectCfg.Store.Backend, globalCfg.Store.Backend)
	merged.Store.Dir = mergeString(projectMeta.IsDefined("store", "dir"), projectCfg.Store.Dir, globalCfg.Store.Dir)
	merged.Store.Path = mergeString(projectMeta.IsDefined("store", "path"), projectCfg.Store.Path, globalCfg.Store.Path)
	merged.Store.Scope = mergeString(projectMeta.IsDefined("store", "scope"), projectCfg.Store.Scope, globalCfg.Store.Scope)
	merged.Log.Level = mergeString(projectMeta.IsDefined("log", "level"), projectCfg.Log.Level, globalCfg.Log.Level)
	merged.Log.Format = mergeString(projectMeta.IsDefined("log", "format"), projectCfg.Log.Format, globalCfg.Log.Format)
	merged.Display.Width = globalCfg.Display.Width
	if projectMeta.IsDefined("display", "width") {
		merged.Display.Width = projectCfg.Display.Width
	}

	return &merged
}

func mergeString(projectDefined bool, projectValue, globalValue string) string {
	value := globalValue
	if projectDefined {
		value = projectValue
	}
	return strings.TrimSpace(value)
}

// Resolve fills unset fields with defaults and expands "~" in paths.
func (c Config) Resolve() (Config, error) {
	resolved := c
	if resolved.Store.Backend == "" {
		resolved.Store.Backend = DefaultBackend
	}
	if resolved.Store.Scope == "" {
		resolved.Store.Scope = DefaultScope
	}
	if resolved.Log.Level == "" {
		resolved.Log.Level = DefaultLogLevel
	}
	if resolved.Log.Format == "" {
		resolved.Log.Format = DefaultLogFormat
	}

	dir, err := paths.OrDefault(resolved.Store.Dir, paths.DefaultStateDir)
	if err != nil {
		return Config{}, err
	}
	if resolved.Store.Dir, err = paths.Expand(dir); err != nil {
		return Config{}, err
	}
	if resolved.Store.Path, err = paths.Expand(resolved.Store.Path); err != nil {
		return Config{}, err
	}
	return resolved, nil
}
