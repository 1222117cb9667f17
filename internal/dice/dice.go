// Package dice implements the oracle rolls used at the table: single
// d6s, the 2d6 beat roll, and uniform picks from oracle tables. Rolls
// are deterministic with respect to an injected random source, which
// keeps them replayable in tests.
package dice

import (
	"errors"
	"math/rand"
)

// ErrInvalidSides indicates a die with fewer than one side.
var ErrInvalidSides = errors.New("dice must have at least one side")

// ErrEmptyTable indicates a pick from an empty oracle table.
var ErrEmptyTable = errors.New("oracle table is empty")

// Roller produces oracle rolls from one random source.
type Roller struct {
	rng *rand.Rand
}

// New creates a roller from a seed.
func New(seed int64) *Roller {
	return &Roller{rng: rand.New(rand.NewSource(seed))}
}

// NewWithRng creates a roller over a caller-owned source.
func NewWithRng(rng *rand.Rand) *Roller {
	return &Roller{rng: rng}
}

// Roll rolls one die with the given number of sides.
func (r *Roller) Roll(sides int) (int, error) {
	if sides < 1 {
		return 0, ErrInvalidSides
	}
	return r.rng.Intn(sides) + 1, nil
}

// D6 rolls one six-sided die.
func (r *Roller) D6() int {
	value, _ := r.Roll(6)
	return value
}

// Beat rolls the 2d6 beat roll and returns both dice with their sum.
func (r *Roller) Beat() (first, second, total int) {
	first = r.D6()
	second = r.D6()
	return first, second, first + second
}

// Pick returns a uniformly chosen entry from an oracle table.
func (r *Roller) Pick(table []string) (string, error) {
	if len(table) == 0 {
		return "", ErrEmptyTable
	}
	return table[r.rng.Intn(len(table))], nil
}
