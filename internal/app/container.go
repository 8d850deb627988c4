// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"os"

	"github.com/talia-cli/talia/internal/domain"
	"github.com/talia-cli/talia/internal/infra/config"
	"github.com/talia-cli/talia/internal/infra/jsonstore"
	"github.com/talia-cli/talia/internal/infra/logging"
	"github.com/talia-cli/talia/internal/repo"
)

// Paths holds the resolved file locations for the application.
type Paths struct {
	StorePath string // Task database
	LogPath   string // Diagnostic log
}

// Container wires the store, repository, clock and logger together and hands
// them to the CLI layer.
type Container struct {
	Repo   *repo.Repo
	Store  domain.TaskStore
	Clock  domain.Clock
	Logger domain.Logger
	Paths  Paths
}

// New creates a Container using the user's home directory and config file.
// The repository is loaded eagerly; a missing or corrupt store yields an
// empty repository, never an error.
func New() (*Container, error) {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	paths := Paths{
		StorePath: domain.StorePath(home),
		LogPath:   domain.LogPath(home),
	}
	if cfg.Storage.Path != "" {
		paths.StorePath = cfg.Storage.Path
	}

	logger := logging.New(paths.LogPath, logging.ParseLevel(cfg.Log.Level))
	store := jsonstore.New(paths.StorePath, logger)

	return &Container{
		Repo:   repo.Load(store),
		Store:  store,
		Clock:  domain.RealClock{},
		Logger: logger,
		Paths:  paths,
	}, nil
}

// NewWithDeps creates a Container from explicit dependencies. Used in tests.
func NewWithDeps(store domain.TaskStore, clock domain.Clock, logger domain.Logger) *Container {
	return &Container{
		Repo:   repo.Load(store),
		Store:  store,
		Clock:  clock,
		Logger: logger,
	}
}

// Close releases resources held by the container.
func (c *Container) Close() {
	if closer, ok := c.Logger.(interface{ Close() error }); ok {
		_ = closer.Close()
	}
}
