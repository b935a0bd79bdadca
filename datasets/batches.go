package datasets

import (
	"fmt"
	"io"

	"github.com/gomlx/gomlx/pkg/core/tensors"

	"github.com/Noofbiz/sampleBowl/sampler"
)

// LabelBatchFlat stores one batch of sampler output in flat buffers: the
// item indices in emitted order plus their identity and camera labels.
type LabelBatchFlat struct {
	Indices   []int32
	PersonIDs []int32
	CamIDs    []int32
	BatchSize int
}

// MakeLabelBatchFlat gathers the labels for a batch of indices.
func MakeLabelBatchFlat(src Source, indices []int) (*LabelBatchFlat, error) {
	b := &LabelBatchFlat{
		Indices:   make([]int32, len(indices)),
		PersonIDs: make([]int32, len(indices)),
		CamIDs:    make([]int32, len(indices)),
		BatchSize: len(indices),
	}
	for i, idx := range indices {
		if idx < 0 || idx >= src.Len() {
			return nil, fmt.Errorf("index %d out of range [0, %d)", idx, src.Len())
		}
		pid, cam, _ := src.Labels(idx)
		b.Indices[i] = int32(idx)
		b.PersonIDs[i] = int32(pid)
		b.CamIDs[i] = int32(cam)
	}
	return b, nil
}

// ToGomlxTensors converts the batch to gomlx tensors: the index vector as
// model input and the person and camera ID vectors as labels.
func (b *LabelBatchFlat) ToGomlxTensors() (indices, persons, cams *tensors.Tensor, err error) {
	// handle empty batch gracefully
	if b.BatchSize == 0 {
		empty := make([]int32, 0)
		return tensors.FromAnyValue(empty), tensors.FromAnyValue(empty), tensors.FromAnyValue(empty), nil
	}
	return tensors.FromAnyValue(b.Indices), tensors.FromAnyValue(b.PersonIDs), tensors.FromAnyValue(b.CamIDs), nil
}

// BatchDataset adapts a Source plus a Sampler to the gomlx train.Dataset
// surface: fixed-size batches of (index, person, camera) tensors in sampler
// order. A pass ends with io.EOF once fewer than BatchSize indices remain;
// Restart draws a fresh pass from the sampler for the next epoch. Trailing
// partial batches are dropped (balanced samplers emit whole multiples of
// their batch size, so normally nothing is lost).
type BatchDataset struct {
	// BatchSize for yielding batches
	BatchSize int

	src     Source
	smp     sampler.Sampler
	pending []int
	drawn   bool
}

// NewBatchDataset creates a batch dataset over src in smp's order.
func NewBatchDataset(src Source, smp sampler.Sampler, batchSize int) (*BatchDataset, error) {
	if src == nil {
		return nil, fmt.Errorf("source must not be nil")
	}
	if smp == nil {
		return nil, fmt.Errorf("sampler must not be nil")
	}
	if batchSize <= 0 {
		batchSize = 32
	}
	return &BatchDataset{BatchSize: batchSize, src: src, smp: smp}, nil
}

// Name returns the name of the dataset
func (b *BatchDataset) Name() string { return "BatchDataset" }

// Yield returns the next batch for the gomlx Dataset interface. Inputs hold
// the item index tensor; labels hold the person and camera ID tensors.
func (b *BatchDataset) Yield() (spec any, inputs []*tensors.Tensor, labels []*tensors.Tensor, err error) {
	if !b.drawn {
		b.pending = b.smp.Indices()
		b.drawn = true
	}
	if len(b.pending) < b.BatchSize {
		return nil, nil, nil, io.EOF
	}
	batch := b.pending[:b.BatchSize]
	b.pending = b.pending[b.BatchSize:]

	flat, err := MakeLabelBatchFlat(b.src, batch)
	if err != nil {
		return nil, nil, nil, err
	}
	in, pid, cam, err := flat.ToGomlxTensors()
	if err != nil {
		return nil, nil, nil, err
	}
	return nil, []*tensors.Tensor{in}, []*tensors.Tensor{pid, cam}, nil
}

// Restart resets the dataset for a new epoch. The next Yield draws a fresh
// pass from the sampler.
func (b *BatchDataset) Restart() error {
	b.pending = nil
	b.drawn = false
	return nil
}

// Batches reports how many full batches one pass yields, based on the
// sampler's reported length.
func (b *BatchDataset) Batches() int {
	return b.smp.Len() / b.BatchSize
}
