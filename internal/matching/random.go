package matching

import (
	"math/rand"
	"sync"
	"time"
)

// RandomSource is the randomness the selection strategies draw from.
// Tests inject seeded or scripted sources.
type RandomSource interface {
	// Float64 returns a number in [0, 1)
	Float64() float64
	// Intn returns a number in [0, n)
	Intn(n int) int
}

type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRandomSource returns a goroutine-safe source. A zero seed is time based.
func NewRandomSource(seed int64) RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &lockedSource{r: rand.New(rand.NewSource(seed))}
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Intn(n)
}
