package authorizer

import (
	"math/rand"
	"sync"
)

// OutcomeSimulator decides the result of a simulated authorization draw.
// Injectable so the approval probability is deterministic under test.
type OutcomeSimulator interface {
	Draw() bool
}

// RandSimulator approves with a fixed probability using a seeded source.
type RandSimulator struct {
	mu          sync.Mutex
	rnd         *rand.Rand
	successRate float64
}

func NewRandSimulator(seed int64, successRate float64) *RandSimulator {
	return &RandSimulator{
		rnd:         rand.New(rand.NewSource(seed)),
		successRate: successRate,
	}
}

func (s *RandSimulator) Draw() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64() < s.successRate
}
