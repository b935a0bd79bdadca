package sampler

import "fmt"

// InferenceSampler splits a fixed index range into near-equal contiguous
// shards, one per worker, with no shuffling. Shard sizes are uneven on
// purpose: trailing workers may receive fewer items than the rest, possibly
// none.
type InferenceSampler struct {
	begin, end int
}

// NewInferenceSampler computes the half-open index range owned by rank.
func NewInferenceSampler(dataNum, worldSize, rank int) (*InferenceSampler, error) {
	if dataNum <= 0 {
		return nil, ErrEmptySource
	}
	if worldSize < 1 || rank < 0 || rank >= worldSize {
		return nil, fmt.Errorf("%w: world_size=%d rank=%d", ErrBadShard, worldSize, rank)
	}

	shard := (dataNum + worldSize - 1) / worldSize
	begin := shard * rank
	end := shard * (rank + 1)
	if begin > dataNum {
		begin = dataNum
	}
	if end > dataNum {
		end = dataNum
	}
	return &InferenceSampler{begin: begin, end: end}, nil
}

// Indices returns this worker's contiguous index range.
func (s *InferenceSampler) Indices() []int {
	out := make([]int, 0, s.end-s.begin)
	for i := s.begin; i < s.end; i++ {
		out = append(out, i)
	}
	return out
}

// Len reports the exact shard size, which may be zero for trailing workers.
func (s *InferenceSampler) Len() int { return s.end - s.begin }
