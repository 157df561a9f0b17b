package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/amonks/checklist/internal/config"
	"github.com/amonks/checklist/internal/logging"
	"github.com/amonks/checklist/internal/paths"
	"github.com/amonks/checklist/internal/storage"
	"github.com/amonks/checklist/internal/todoenv"
	"github.com/amonks/checklist/todo"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// loadSettings reads the config files and applies persistent flag overrides.
func loadSettings(cmd *cobra.Command) (config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if rootConfigPath != "" {
		path, expandErr := paths.Expand(rootConfigPath)
		if expandErr != nil {
			return config.Config{}, expandErr
		}
		cfg, err = config.LoadFile(path)
	} else {
		cwd, cwdErr := paths.WorkingDir()
		if cwdErr != nil {
			return config.Config{}, cwdErr
		}
		cfg, err = config.Load(cwd)
	}
	if err != nil {
		return config.Config{}, err
	}

	if scope := todoenv.Scope(); scope != "" {
		cfg.Store.Scope = scope
	}
	if backend := todoenv.Backend(); backend != "" {
		cfg.Store.Backend = backend
	}
	if cmd.Flags().Changed("scope") {
		cfg.Store.Scope = strings.TrimSpace(rootScope)
	}
	if cmd.Flags().Changed("backend") {
		cfg.Store.Backend = strings.ToLower(strings.TrimSpace(rootBackend))
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = strings.TrimSpace(rootLogLevel)
	}
	return cfg.Resolve()
}

// todoSession is an open todo store and the backend it persists to.
type todoSession struct {
	store   *todo.Store
	backend storage.Store
	logger  *log.Logger
	config  config.Config
}

// openTodoSession loads the todo collection for the configured scope.
func openTodoSession(cmd *cobra.Command) (*todoSession, error) {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}

	backend, err := storage.Open(storage.Options{
		Backend: storage.Backend(cfg.Store.Backend),
		Dir:     cfg.Store.Dir,
		Path:    cfg.Store.Path,
		Scope:   cfg.Store.Scope,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Store.Backend, err)
	}
	logger.Debug("opened store", "backend", cfg.Store.Backend, "scope", cfg.Store.Scope)

	opts := todo.Options{Logger: logger}
	if backend != nil {
		opts.Storage = backend
	}
	store := todo.New(opts)
	store.Load()

	return &todoSession{store: store, backend: backend, logger: logger, config: cfg}, nil
}

// Close releases the backend. It returns the last persistence failure, if
// any, so commands report changes that were not saved.
func (s *todoSession) Close() error {
	syncErr := s.store.SyncErr()
	var closeErr error
	if s.backend != nil {
		closeErr = s.backend.Close()
	}
	if syncErr != nil {
		return fmt.Errorf("save todos: %w", syncErr)
	}
	if closeErr != nil {
		return fmt.Errorf("close store: %w", closeErr)
	}
	return nil
}

// withTodoSession runs fn against an open session and closes it afterwards.
func withTodoSession(cmd *cobra.Command, fn func(*todoSession) error) (err error) {
	session, err := openTodoSession(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := session.Close(); err == nil {
			err = closeErr
		}
	}()
	return fn(session)
}

// resolveTodos maps ID prefixes to todos, failing on the first unknown or
// ambiguous prefix.
func resolveTodos(store *todo.Store, ids []string) ([]todo.Todo, error) {
	index := store.IDIndex()
	items := make([]todo.Todo, 0, len(ids))
	for _, raw := range ids {
		id, err := index.Resolve(raw)
		if err != nil {
			return nil, err
		}
		item, ok := store.Get(id)
		if !ok {
			return nil, fmt.Errorf("%w: %s", todo.ErrTodoNotFound, raw)
		}
		items = append(items, item)
	}
	return items, nil
}

// resolveDescriptionFromStdin reads the description from reader when it is "-".
func resolveDescriptionFromStdin(description string, reader io.Reader) (string, error) {
	if description != "-" {
		return description, nil
	}

	input, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("read description from stdin: %w", err)
	}

	value := strings.TrimRight(string(input), "\r\n")
	return value, nil
}
