package sampler

import "fmt"

// Config selects and parameterizes a sampling strategy. Zero values take the
// documented defaults in New.
type Config struct {
	// Kind selects the strategy.
	Kind Kind

	// BatchSize is the number of indices per emitted batch. Default 32.
	BatchSize int

	// NumInstances is the number of items per identity per batch for
	// KindIdentity. Default 4.
	NumInstances int

	// NumCams is the number of cameras per batch for KindDomain. Default 1;
	// a negative value uses every camera present in the collection.
	NumCams int

	// NumDatasets is the number of datasets per batch for KindDataset.
	// Default 1; a negative value uses every dataset present.
	NumDatasets int

	// TotalEpochs is the number of epochs KindDistributed materializes up
	// front. It must be at least 1 for that kind.
	TotalEpochs int

	// DisableShuffle turns off the epoch-seeded shuffle of KindDistributed,
	// yielding identity-order epochs instead.
	DisableShuffle bool

	// WorldSize and Rank place this process in the worker group for
	// KindDistributed and KindInference. When WorldSize is not positive,
	// both values are resolved through Runtime instead.
	WorldSize int
	Rank      int

	// Runtime supplies world size and rank when they are unset. Leaving it
	// nil in that case is a configuration error.
	Runtime Runtime
}

// New builds the configured sampler over src. All validation happens here or
// in the strategy constructors, before any pass is produced.
func New(src Source, cfg Config) (Sampler, error) {
	if cfg.BatchSize == 0 {
		cfg.BatchSize = 32
	}
	if cfg.NumInstances == 0 {
		cfg.NumInstances = 4
	}
	if cfg.NumCams == 0 {
		cfg.NumCams = 1
	}
	if cfg.NumDatasets == 0 {
		cfg.NumDatasets = 1
	}

	switch cfg.Kind {
	case KindIdentity:
		return NewIdentitySampler(src, cfg.BatchSize, cfg.NumInstances)
	case KindDomain:
		return NewDomainSampler(src, cfg.BatchSize, cfg.NumCams)
	case KindDataset:
		return NewDatasetSampler(src, cfg.BatchSize, cfg.NumDatasets)
	case KindSequential:
		return NewSequentialSampler(src)
	case KindRandom:
		return NewRandomSampler(src)
	case KindDistributed:
		world, rank, err := cfg.placement()
		if err != nil {
			return nil, err
		}
		return NewDistributedSampler(src.Len(), cfg.TotalEpochs, cfg.BatchSize, world, rank, !cfg.DisableShuffle)
	case KindInference:
		world, rank, err := cfg.placement()
		if err != nil {
			return nil, err
		}
		return NewInferenceSampler(src.Len(), world, rank)
	default:
		return nil, fmt.Errorf("%w: %v, valid kinds are %v", ErrUnknownKind, cfg.Kind, KindNames())
	}
}

// placement resolves world size and rank, falling back to the injected
// runtime when they were left unset.
func (cfg Config) placement() (world, rank int, err error) {
	if cfg.WorldSize > 0 {
		return cfg.WorldSize, cfg.Rank, nil
	}
	if cfg.Runtime == nil {
		return 0, 0, ErrNoRuntime
	}
	return cfg.Runtime.WorldSize(), cfg.Runtime.Rank(), nil
}
