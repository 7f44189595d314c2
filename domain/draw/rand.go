package draw

import (
	"math/rand"
	"sync"
	"time"
)

// Rand is the randomness capability consumed by the engine.
// Injecting it keeps Shuffle and ComputeMapping reproducible in tests
// without touching global generator state.
type Rand interface {
	// Intn returns a uniform random int in [0, n). Panics if n <= 0.
	Intn(n int) int
}

type lockedRand struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRand returns a thread-safe Rand backed by math/rand, seeded from the clock.
// Pseudo-randomness is sufficient here: assignments are a fairness concern,
// not a cryptographic one.
func NewRand() Rand {
	return NewSeededRand(time.Now().UnixNano())
}

// NewSeededRand returns a thread-safe Rand with a fixed seed.
// Two instances with the same seed produce the same draw sequence.
func NewSeededRand(seed int64) Rand {
	return &lockedRand{rnd: rand.New(rand.NewSource(seed))} // #nosec G404
}

func (r *lockedRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Intn(n)
}
