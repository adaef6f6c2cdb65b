package stargen

import (
	"hash/fnv"
	"math/rand"
	"time"
)

// Roller is the sole entropy source for a generation run. Every roll
// advances its internal state, so draw order is part of the observable
// contract: two runs with the same seed and the same call sequence
// produce identical results. A Roller must never be shared across
// concurrent generation runs.
type Roller struct {
	rng *rand.Rand
}

// NewRoller creates a roller self-seeded from the wall clock.
func NewRoller() *Roller {
	return &Roller{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSeededRoller creates a roller with a fixed integer seed.
func NewSeededRoller(seed int64) *Roller {
	return &Roller{rng: rand.New(rand.NewSource(seed))}
}

// NewStringSeededRoller creates a roller seeded from an arbitrary string.
func NewStringSeededRoller(seed string) *Roller {
	h := fnv.New64a()
	_, _ = h.Write([]byte(seed))
	return NewSeededRoller(int64(h.Sum64()))
}

// Roll returns the sum of n six-sided dice plus modifier. No clamping
// happens here; callers clamp when a table needs it.
func (r *Roller) Roll(n, modifier int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += r.rng.Intn(6) + 1
	}
	return sum + modifier
}
