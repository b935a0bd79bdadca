package sampler

import (
	"fmt"
	"math/rand"
	"time"
)

// GroupSampler produces passes where every batch draws an equal share of
// items from a fixed number of label groups. It backs both the camera- and
// dataset-balanced strategies; the two only differ in which label they group
// by.
type GroupSampler struct {
	batchSize int
	numGroups int
	perGroup  int

	// Base grouping, copied into fresh pools by every pass.
	groups map[int][]int
	labels []int

	length int
	rng    *rand.Rand
}

// NewDomainSampler balances batches across camera labels: every batch holds
// items from numCams cameras, batchSize/numCams items each. numCams <= 0
// uses every camera present in src.
func NewDomainSampler(src Source, batchSize, numCams int) (*GroupSampler, error) {
	return newGroupSampler(src, batchSize, numCams, func(i int) int {
		_, cam, _ := src.Labels(i)
		return cam
	})
}

// NewDatasetSampler balances batches across origin-dataset labels.
// numDatasets <= 0 uses every dataset present in src.
func NewDatasetSampler(src Source, batchSize, numDatasets int) (*GroupSampler, error) {
	return newGroupSampler(src, batchSize, numDatasets, func(i int) int {
		_, _, dset := src.Labels(i)
		return dset
	})
}

func newGroupSampler(src Source, batchSize, numGroups int, label func(i int) int) (*GroupSampler, error) {
	if src.Len() == 0 {
		return nil, ErrEmptySource
	}
	s := &GroupSampler{
		batchSize: batchSize,
		numGroups: numGroups,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	s.groups, s.labels = groupBy(src.Len(), label)
	if s.numGroups <= 0 {
		s.numGroups = len(s.labels)
	}
	if s.numGroups > len(s.labels) {
		return nil, fmt.Errorf("%w: want %d groups, have %d labels", ErrTooFewGroups, s.numGroups, len(s.labels))
	}
	if batchSize <= 0 || batchSize%s.numGroups != 0 {
		return nil, fmt.Errorf("%w: batch_size=%d groups=%d", ErrIndivisibleBatch, batchSize, s.numGroups)
	}
	s.perGroup = batchSize / s.numGroups

	// Every label must start with at least one full share, otherwise a round
	// that selects it could not draw without replacement.
	for _, l := range s.labels {
		if len(s.groups[l]) < s.perGroup {
			return nil, fmt.Errorf("%w: label %d has %d items, share is %d", ErrGroupTooSmall, l, len(s.groups[l]), s.perGroup)
		}
	}

	// The pass length is whatever one full pass emits. When numGroups is
	// below the label count, later passes may stop a round earlier or later
	// than the one measured here.
	s.length = len(s.Indices())
	return s, nil
}

// Seed reseeds the sampler's generator so subsequent passes are reproducible.
func (s *GroupSampler) Seed(seed int64) {
	s.rng.Seed(seed)
}

// Indices generates one pass. Every round selects numGroups distinct labels
// from the full label set and draws perGroup items without replacement from
// each selected label's remaining pool. A round that drains any selected
// pool below perGroup is the last one, and it still completes in full.
func (s *GroupSampler) Indices() []int {
	pools := make(map[int][]int, len(s.groups))
	for l, idxs := range s.groups {
		pools[l] = append([]int(nil), idxs...)
	}

	out := make([]int, 0, s.length)
	for stop := false; !stop; {
		for _, li := range s.rng.Perm(len(s.labels))[:s.numGroups] {
			label := s.labels[li]
			pool := pools[label]
			for k := 0; k < s.perGroup; k++ {
				j := s.rng.Intn(len(pool))
				out = append(out, pool[j])
				pool[j] = pool[len(pool)-1]
				pool = pool[:len(pool)-1]
			}
			pools[label] = pool
			if len(pool) < s.perGroup {
				stop = true
			}
		}
	}
	return out
}

// Len reports the length measured from the construction-time pass.
func (s *GroupSampler) Len() int { return s.length }
