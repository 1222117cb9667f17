// Package random generates high-entropy seeds for the dice roller.
// Seeds come from crypto/rand so two sessions never share a roll
// sequence; the roller itself stays deterministic per seed for replay.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// NewSeed returns a seed drawn from the system entropy source.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
