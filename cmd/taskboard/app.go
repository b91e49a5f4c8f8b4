package main

import (
	"log"
	"path/filepath"

	"taskboard/internal/app"
	"taskboard/internal/provider"
	"taskboard/internal/store"
	file "taskboard/repository/file"
	inmemory "taskboard/repository/inmemory"
	sqlite "taskboard/repository/sqlite"
)

// application is the composition root: one config, one state backend,
// the three stores. Commands construct it, run one store operation and
// exit; persistence between invocations lives in the state backend.
type application struct {
	config   *app.Config
	tasks    *store.TaskStore
	projects *store.ProjectStore
	auth     *store.AuthStore
}

func newApplication() (*application, error) {
	cfg := app.ReadConfig(configFile)
	cfg.ApplyOverrides(dataDirFlag, backendFlag)

	states := openStateStore(cfg)

	var identity store.IdentityProvider
	if cfg.GoogleClientID != "" {
		identity = provider.NewGoogle(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL)
	}

	tasks, err := store.NewTaskStore(states)
	if err != nil {
		return nil, err
	}
	projects, err := store.NewProjectStore(states)
	if err != nil {
		return nil, err
	}
	auth, err := store.NewAuthStore(states, identity)
	if err != nil {
		return nil, err
	}

	return &application{
		config:   cfg,
		tasks:    tasks,
		projects: projects,
		auth:     auth,
	}, nil
}

// openStateStore opens the configured backend and falls back to
// in-memory state when it cannot be opened, so a broken data directory
// never blocks the CLI.
func openStateStore(cfg *app.Config) store.StateStore {
	switch cfg.Backend {
	case app.BackendMemory:
		return inmemory.NewStorage()
	case app.BackendSQLite:
		states, err := sqlite.NewStorage(filepath.Join(cfg.DataDir, "taskboard.db"))
		if err != nil {
			log.Printf("[WARN] sqlite backend unavailable, using in-memory state: %v", err)
			return inmemory.NewStorage()
		}
		return states
	default:
		states, err := file.NewStorage(cfg.DataDir)
		if err != nil {
			log.Printf("[WARN] file backend unavailable, using in-memory state: %v", err)
			return inmemory.NewStorage()
		}
		return states
	}
}
