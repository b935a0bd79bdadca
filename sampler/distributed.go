package sampler

import (
	"fmt"
	"math/rand"
)

// Runtime reports the ambient distributed execution environment. The factory
// consults it when world size and rank are not set explicitly, so nothing in
// this package reads global process state.
type Runtime interface {
	WorldSize() int
	Rank() int
}

// FixedRuntime is a Runtime with explicit values, for tests and for
// launchers that already know their placement.
type FixedRuntime struct {
	World int
	Proc  int
}

func (r FixedRuntime) WorldSize() int { return r.World }
func (r FixedRuntime) Rank() int      { return r.Proc }

// DistributedSampler precomputes, for a fixed number of epochs, a
// deterministic epoch-seeded permutation truncated to a length divisible by
// worldSize*batchSize, and keeps only the strided shard owned by this rank.
// Every rank running the same configuration derives the same plan, so no
// coordination between workers is needed.
type DistributedSampler struct {
	// Epoch mirrors the epoch-settable surface of epoch-aware training
	// loops. The plan already embeds every epoch's shuffle, so setting it
	// does not change the emitted indices.
	Epoch int

	indices    []int
	numSamples int
}

// NewDistributedSampler materializes the full multi-epoch plan for one rank.
// With shuffle disabled the per-epoch permutation is the identity sequence.
func NewDistributedSampler(datasetLen, totalEpochs, batchSize, worldSize, rank int, shuffle bool) (*DistributedSampler, error) {
	if datasetLen <= 0 {
		return nil, ErrEmptySource
	}
	if totalEpochs < 1 {
		return nil, fmt.Errorf("%w: total_epochs=%d", ErrBadEpochs, totalEpochs)
	}
	if batchSize < 1 {
		return nil, fmt.Errorf("%w: batch_size=%d", ErrBatchTooSmall, batchSize)
	}
	if worldSize < 1 || rank < 0 || rank >= worldSize {
		return nil, fmt.Errorf("%w: world_size=%d rank=%d", ErrBadShard, worldSize, rank)
	}

	// Truncate so every worker gets the same number of full batches.
	effectiveBatch := worldSize * batchSize
	totalSize := datasetLen / effectiveBatch * effectiveBatch
	perReplica := totalSize / worldSize

	s := &DistributedSampler{
		indices:    make([]int, 0, perReplica*totalEpochs),
		numSamples: perReplica * totalEpochs,
	}
	for ep := 0; ep < totalEpochs; ep++ {
		var perm []int
		if shuffle {
			g := rand.New(rand.NewSource(int64(ep)))
			perm = g.Perm(datasetLen)[:totalSize]
		} else {
			perm = make([]int, totalSize)
			for i := range perm {
				perm[i] = i
			}
		}
		for i := rank; i < totalSize; i += worldSize {
			s.indices = append(s.indices, perm[i])
		}
	}
	if len(s.indices) != s.numSamples {
		return nil, fmt.Errorf("%w: built %d, want %d", ErrPlanLength, len(s.indices), s.numSamples)
	}
	return s, nil
}

// Indices returns a copy of this rank's full multi-epoch plan.
func (s *DistributedSampler) Indices() []int {
	return append([]int(nil), s.indices...)
}

// Len reports the exact plan length: samples per replica per epoch times the
// number of epochs.
func (s *DistributedSampler) Len() int { return s.numSamples }
