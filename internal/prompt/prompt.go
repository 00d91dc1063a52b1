// Package prompt picks encouragement lines shown after a recorded event.
package prompt

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// Encouragements is the default line set.
var Encouragements = []string{
	"Every step counts. Keep going!",
	"Consistency beats intensity.",
	"Small wins build big quests.",
	"You showed up today. That matters.",
	"One more mark on the map!",
	"Momentum is on your side.",
	"Legends are made one day at a time.",
	"Your future self says thanks.",
}

// Picker draws lines from a fixed list using one random source. It is not
// safe for concurrent use.
type Picker struct {
	lines []string
	rng   *rand.Rand
}

// New returns a Picker over lines seeded with seed. A zero seed draws a
// seed from crypto/rand. Empty lines fall back to Encouragements.
func New(seed uint64, lines []string) (*Picker, error) {
	if seed == 0 {
		s, err := NewSeed()
		if err != nil {
			return nil, err
		}
		seed = s
	}
	if len(lines) == 0 {
		lines = Encouragements
	}
	return &Picker{
		lines: lines,
		rng:   rand.New(rand.NewPCG(seed, seed>>1|1)),
	}, nil
}

// Pick returns one line.
func (p *Picker) Pick() string {
	return p.lines[p.rng.IntN(len(p.lines))]
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}
