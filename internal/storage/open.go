package storage

import (
	"fmt"

	"github.com/solo-blaster/companion/internal/storage/bbolt"
	"github.com/solo-blaster/companion/internal/storage/memory"
	"github.com/solo-blaster/companion/internal/storage/sqlite"
)

// Config selects and configures a storage backend.
type Config struct {
	Driver Driver
	// Path is the database file path. Ignored by the memory driver.
	Path string
}

// Open constructs the backend named by the config.
func Open(cfg Config) (Backend, error) {
	switch cfg.Driver {
	case DriverBBolt, "":
		return bbolt.Open(cfg.Path)
	case DriverSQLite:
		return sqlite.Open(cfg.Path)
	case DriverMemory:
		return memory.New(), nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
}
