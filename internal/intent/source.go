package intent

import (
	"math/rand/v2"
	"sync"
)

// Source picks template indexes. IntN returns a value in [0, n).
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}

// NewSeededSource returns a deterministic Source safe for concurrent use.
func NewSeededSource(seed uint64) Source {
	return &lockedSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}
