// Package mcp parses MCP command flags and serves the companion over
// stdio.
package mcp

import (
	"context"
	"flag"
	"fmt"

	"github.com/solo-blaster/companion/internal/dice"
	mcpserver "github.com/solo-blaster/companion/internal/mcp"
	"github.com/solo-blaster/companion/internal/platform/config"
	"github.com/solo-blaster/companion/internal/random"
	"github.com/solo-blaster/companion/internal/storage"
	"github.com/solo-blaster/companion/internal/store"
)

// ParseConfig loads COMPANION_* settings from the environment and lets
// flags override them.
func ParseConfig(fs *flag.FlagSet, args []string) (config.Settings, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Settings{}, err
	}

	fs.StringVar(&cfg.StorageDriver, "driver", cfg.StorageDriver, "storage driver: bbolt, sqlite, or memory")
	fs.StringVar(&cfg.StoragePath, "db", cfg.StoragePath, "database file location")
	if err := fs.Parse(args); err != nil {
		return config.Settings{}, err
	}
	return cfg, nil
}

// Run opens storage, hydrates the store, and serves MCP on stdio until
// the context is cancelled.
func Run(ctx context.Context, cfg config.Settings) error {
	driver, err := storage.ParseDriver(cfg.StorageDriver)
	if err != nil {
		return err
	}

	backend, err := storage.Open(storage.Config{Driver: driver, Path: cfg.StoragePath})
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}

	st := store.New(backend)
	if err := st.Init(ctx); err != nil {
		backend.Close()
		return fmt.Errorf("load state: %w", err)
	}
	defer st.Close()

	seed, err := random.NewSeed()
	if err != nil {
		return err
	}

	return mcpserver.New(st, dice.New(seed)).Run(ctx)
}
