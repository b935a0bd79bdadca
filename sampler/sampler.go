// Package sampler provides index-ordering strategies for training and
// inference over a fixed-size item collection: per-epoch permutations and
// groupings of item indices with balance guarantees (a fixed number of
// identities per batch, or a fixed share of each camera or origin dataset),
// plus deterministic epoch-sharded plans for distributed workers.
//
// A sampler never touches items themselves. It reads the three labels a
// Source exposes, builds its groupings once at construction, and then hands
// finite index sequences to whatever loop consumes them.
package sampler

import (
	"math/rand"
	"time"
)

// Sampler is the contract every strategy satisfies: produce the index
// sequence for one full pass, and report how long that sequence is expected
// to be.
type Sampler interface {
	// Indices generates a fresh pass from the immutable base grouping.
	// Passes are independent, so a sampler can be reused across epochs.
	Indices() []int

	// Len reports the expected number of indices per pass. It is exact for
	// every strategy except IdentitySampler, whose estimate is a documented
	// upper bound.
	Len() int
}

// SequentialSampler emits indices in their natural order, one pass over the
// whole collection.
type SequentialSampler struct {
	n int
}

// NewSequentialSampler creates a sequential sampler over src.
func NewSequentialSampler(src Source) (*SequentialSampler, error) {
	if src.Len() == 0 {
		return nil, ErrEmptySource
	}
	return &SequentialSampler{n: src.Len()}, nil
}

// Indices returns 0..n-1.
func (s *SequentialSampler) Indices() []int {
	out := make([]int, s.n)
	for i := range out {
		out[i] = i
	}
	return out
}

// Len returns the collection size.
func (s *SequentialSampler) Len() int { return s.n }

// RandomSampler emits a uniform random permutation of the collection per
// pass. Passes are not reproducible across runs unless Seed is called.
type RandomSampler struct {
	n   int
	rng *rand.Rand
}

// NewRandomSampler creates a uniform-random sampler over src.
func NewRandomSampler(src Source) (*RandomSampler, error) {
	if src.Len() == 0 {
		return nil, ErrEmptySource
	}
	return &RandomSampler{
		n:   src.Len(),
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// Seed reseeds the generator so subsequent passes are reproducible.
func (s *RandomSampler) Seed(seed int64) {
	s.rng.Seed(seed)
}

// Indices returns a fresh permutation of 0..n-1.
func (s *RandomSampler) Indices() []int {
	return s.rng.Perm(s.n)
}

// Len returns the collection size.
func (s *RandomSampler) Len() int { return s.n }
