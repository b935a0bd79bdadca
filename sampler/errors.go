package sampler

import "errors"

var (
	// ErrEmptySource indicates the item collection has no items.
	ErrEmptySource = errors.New("sampler: item collection is empty")
	// ErrBatchTooSmall indicates the batch size cannot hold one instance group.
	ErrBatchTooSmall = errors.New("sampler: batch size must be at least the instance count")
	// ErrTooFewIdentities indicates fewer distinct identities than identities per batch.
	ErrTooFewIdentities = errors.New("sampler: not enough distinct identities for one batch")
	// ErrTooFewGroups indicates fewer distinct labels than groups per batch.
	ErrTooFewGroups = errors.New("sampler: not enough distinct labels for one batch")
	// ErrIndivisibleBatch indicates the batch size is not divisible by the group count.
	ErrIndivisibleBatch = errors.New("sampler: batch size must be divisible by the group count")
	// ErrGroupTooSmall indicates a label group holds fewer items than its per-batch share.
	ErrGroupTooSmall = errors.New("sampler: label group smaller than its per-batch share")
	// ErrBadEpochs indicates a non-positive epoch count for the distributed plan.
	ErrBadEpochs = errors.New("sampler: total epochs must be at least 1")
	// ErrBadShard indicates an invalid world size / rank combination.
	ErrBadShard = errors.New("sampler: rank must satisfy 0 <= rank < world size")
	// ErrNoRuntime indicates world size and rank were left unset with no runtime to query.
	ErrNoRuntime = errors.New("sampler: world size and rank unset and no distributed runtime available")
	// ErrUnknownKind indicates an unrecognized sampler kind.
	ErrUnknownKind = errors.New("sampler: unknown sampler kind")
	// ErrPlanLength indicates the materialized distributed plan missed its expected length.
	ErrPlanLength = errors.New("sampler: distributed plan length mismatch")
)
