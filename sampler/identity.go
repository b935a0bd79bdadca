package sampler

import (
	"fmt"
	"math/rand"
	"time"
)

// IdentitySampler produces one training pass where every batch holds a fixed
// number of distinct identities, each contributing exactly NumInstances
// items. Identities with fewer than NumInstances items are redrawn with
// replacement so every identity can fill at least one instance group; an
// identity with a single item yields NumInstances copies of that item.
type IdentitySampler struct {
	batchSize       int
	numInstances    int
	numPIDsPerBatch int

	// Base grouping, built once from the full collection and never mutated.
	groups map[int][]int
	pids   []int

	length int
	rng    *rand.Rand
}

// NewIdentitySampler groups src by identity label and validates the batch
// geometry: batchSize must be at least numInstances, and the collection must
// hold at least batchSize/numInstances distinct identities.
func NewIdentitySampler(src Source, batchSize, numInstances int) (*IdentitySampler, error) {
	if src.Len() == 0 {
		return nil, ErrEmptySource
	}
	if numInstances < 1 || batchSize < numInstances {
		return nil, fmt.Errorf("%w: batch_size=%d num_instances=%d", ErrBatchTooSmall, batchSize, numInstances)
	}

	s := &IdentitySampler{
		batchSize:       batchSize,
		numInstances:    numInstances,
		numPIDsPerBatch: batchSize / numInstances,
		rng:             rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	s.groups, s.pids = groupBy(src.Len(), func(i int) int {
		pid, _, _ := src.Labels(i)
		return pid
	})
	if len(s.pids) < s.numPIDsPerBatch {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrTooFewIdentities, len(s.pids), s.numPIDsPerBatch)
	}

	// Estimate the pass length. The final rounds may leave whole chunks of
	// some identities unconsumed, so this is an upper bound on what Indices
	// emits, not an exact count.
	for _, pid := range s.pids {
		num := len(s.groups[pid])
		if num < s.numInstances {
			num = s.numInstances
		}
		s.length += num - num%s.numInstances
	}
	return s, nil
}

// Seed reseeds the sampler's generator so subsequent passes are reproducible.
func (s *IdentitySampler) Seed(seed int64) {
	s.rng.Seed(seed)
}

// Indices generates one full pass. Each identity's indices are copied,
// redrawn with replacement when fewer than numInstances, shuffled, and split
// into numInstances-sized chunks (partial trailing chunks are dropped).
// Rounds then draw numPIDsPerBatch distinct identities from those with
// unconsumed chunks and pop each one's oldest chunk, until too few
// identities remain to fill another batch.
func (s *IdentitySampler) Indices() []int {
	chunks := make(map[int][][]int, len(s.pids))
	for _, pid := range s.pids {
		idxs := append([]int(nil), s.groups[pid]...)
		if len(idxs) < s.numInstances {
			redrawn := make([]int, s.numInstances)
			for i := range redrawn {
				redrawn[i] = idxs[s.rng.Intn(len(idxs))]
			}
			idxs = redrawn
		}
		s.rng.Shuffle(len(idxs), func(i, j int) {
			idxs[i], idxs[j] = idxs[j], idxs[i]
		})
		for len(idxs) >= s.numInstances {
			chunks[pid] = append(chunks[pid], idxs[:s.numInstances:s.numInstances])
			idxs = idxs[s.numInstances:]
		}
	}

	avail := append([]int(nil), s.pids...)
	out := make([]int, 0, s.length)
	for len(avail) >= s.numPIDsPerBatch {
		selected := make([]int, s.numPIDsPerBatch)
		for i, p := range s.rng.Perm(len(avail))[:s.numPIDsPerBatch] {
			selected[i] = avail[p]
		}
		for _, pid := range selected {
			out = append(out, chunks[pid][0]...)
			chunks[pid] = chunks[pid][1:]
			if len(chunks[pid]) == 0 {
				avail = removePID(avail, pid)
			}
		}
	}
	return out
}

// Len reports the estimated pass length. See Indices for why this is an
// upper bound rather than an exact count.
func (s *IdentitySampler) Len() int { return s.length }

// removePID removes the first occurrence of pid, preserving order.
func removePID(pids []int, pid int) []int {
	for i, p := range pids {
		if p == pid {
			return append(pids[:i], pids[i+1:]...)
		}
	}
	return pids
}
