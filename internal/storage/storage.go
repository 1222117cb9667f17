// Package storage defines the persistence boundary for the companion's
// application state. State is one JSON document: every campaign plus the
// active-campaign pointer, written atomically as a whole. Backends only
// move bytes; normalization and schema migration happen above them.
package storage

import (
	"context"
	"errors"
	"strings"
)

// Backend persists the application state blob.
type Backend interface {
	// Load returns the stored state. found is false on first run, before
	// any state has been saved.
	Load(ctx context.Context) (data []byte, found bool, err error)
	// Save replaces the stored state atomically.
	Save(ctx context.Context, data []byte) error
	// Close releases the backend's resources.
	Close() error
}

// Driver names a storage backend implementation.
type Driver string

const (
	DriverBBolt  Driver = "bbolt"
	DriverSQLite Driver = "sqlite"
	DriverMemory Driver = "memory"
)

// ParseDriver maps a configuration string to a Driver. An empty string
// selects bbolt.
func ParseDriver(raw string) (Driver, error) {
	switch Driver(strings.ToLower(strings.TrimSpace(raw))) {
	case DriverBBolt, "":
		return DriverBBolt, nil
	case DriverSQLite:
		return DriverSQLite, nil
	case DriverMemory:
		return DriverMemory, nil
	}
	return "", errors.New("unknown storage driver: " + raw)
}
