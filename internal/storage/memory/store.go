// Package memory is an in-memory storage backend, used by tests and by
// the MCP server when no path is configured. It supports injected save
// failures so callers' degraded-persistence paths can be exercised.
package memory

import (
	"context"
	"errors"
	"sync"
)

var errUnavailable = errors.New("storage is unavailable")

// Store keeps the state blob in memory.
type Store struct {
	mu     sync.Mutex
	data   []byte
	found  bool
	closed bool

	// FailSaves makes every Save fail while set.
	FailSaves bool
}

// New returns an empty in-memory backend.
func New() *Store {
	return &Store{}
}

// Load returns the stored state blob.
func (s *Store) Load(ctx context.Context) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, false, errUnavailable
	}
	if !s.found {
		return nil, false, nil
	}
	return append([]byte(nil), s.data...), true, nil
}

// Save replaces the stored state blob.
func (s *Store) Save(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.FailSaves {
		return errUnavailable
	}
	s.data = append([]byte(nil), data...)
	s.found = true
	return nil
}

// Close marks the backend unavailable.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
