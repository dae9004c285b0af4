package domain

import (
	"math/rand"
	"sync"
)

// Sampler selects a uniform random subset of a question pool. The randomness
// source is injected so tests can seed it deterministically. A *rand.Rand is
// not safe for concurrent use, so the Sampler serializes access to it; one
// instance can be shared across request handlers.
type Sampler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSampler creates a Sampler backed by the given generator.
func NewSampler(rng *rand.Rand) *Sampler {
	return &Sampler{rng: rng}
}

// Sample draws exactly requested questions from pool, uniformly and without
// replacement, via a Fisher-Yates shuffle of a copy of the pool. The input
// slice is never mutated and the shuffled prefix order becomes the quiz
// presentation order.
//
// Outcomes:
//   - empty pool: ErrEmptyPool, no sample.
//   - |pool| < requested: ErrInsufficientPool carrying available/requested;
//     the caller must confirm explicitly and re-sample with the clamped count.
//   - otherwise: the selected questions.
func (s *Sampler) Sample(pool []Question, requested int) ([]Question, error) {
	if len(pool) == 0 {
		return nil, NewEmptyPoolError()
	}
	if len(pool) < requested {
		return nil, NewInsufficientPoolError(len(pool), requested)
	}

	shuffled := make([]Question, len(pool))
	copy(shuffled, pool)
	s.mu.Lock()
	s.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	s.mu.Unlock()
	return shuffled[:requested], nil
}

// SampleUpTo behaves like Sample but clamps the request to the pool size
// instead of returning ErrInsufficientPool. It is the confirmation path for
// callers that accepted a smaller quiz.
func (s *Sampler) SampleUpTo(pool []Question, requested int) ([]Question, error) {
	if requested > len(pool) {
		requested = len(pool)
	}
	return s.Sample(pool, requested)
}
