// Package command defines the typed mutations that can be applied to a
// campaign. Each command is a pure value: Apply takes a campaign and
// returns the updated copy, so callers decide where the result is
// persisted. The store is the only place commands are executed.
package command

import (
	"time"

	"github.com/solo-blaster/companion/internal/campaign/domain"
	"github.com/solo-blaster/companion/internal/platform/id"
)

// Command is one atomic campaign mutation.
type Command interface {
	// Name identifies the command in logs.
	Name() string
	// Apply returns the campaign with the mutation applied. Apply never
	// mutates its argument.
	Apply(c domain.Campaign, now time.Time) (domain.Campaign, error)
}

// lockExempt is implemented by the few commands that remain usable on a
// locked campaign.
type lockExempt interface {
	AllowWhileLocked() bool
}

// AllowedWhileLocked reports whether the command may run against a
// locked campaign. Only journal appends qualify: a retired campaign can
// still be written about, never changed.
func AllowedWhileLocked(cmd Command) bool {
	if exempt, ok := cmd.(lockExempt); ok {
		return exempt.AllowWhileLocked()
	}
	return false
}

// ensureID keeps a caller-supplied id and mints one otherwise.
func ensureID(existing string) (string, error) {
	if existing != "" {
		return existing, nil
	}
	return id.NewID()
}
