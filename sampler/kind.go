package sampler

import "fmt"

// Kind enumerates the available sampling strategies. Using a closed set
// instead of raw strings lets the factory match it exhaustively; ParseKind
// keeps the string surface for CLIs and config files.
type Kind int

const (
	// KindIdentity balances batches over identity labels.
	KindIdentity Kind = iota
	// KindDomain balances batches over camera labels.
	KindDomain
	// KindDataset balances batches over origin-dataset labels.
	KindDataset
	// KindSequential emits indices in natural order.
	KindSequential
	// KindRandom emits a uniform permutation per pass.
	KindRandom
	// KindDistributed emits deterministic epoch-sharded plans.
	KindDistributed
	// KindInference splits the index range into contiguous shards.
	KindInference
)

var kindNames = map[Kind]string{
	KindIdentity:    "identity",
	KindDomain:      "domain",
	KindDataset:     "dataset",
	KindSequential:  "sequential",
	KindRandom:      "random",
	KindDistributed: "distributed",
	KindInference:   "inference",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// KindNames lists the recognized kind names in declaration order.
func KindNames() []string {
	names := make([]string, 0, len(kindNames))
	for k := KindIdentity; k <= KindInference; k++ {
		names = append(names, kindNames[k])
	}
	return names
}

// ParseKind maps a kind name to its Kind. Unknown names report the valid set.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q, valid kinds are %v", ErrUnknownKind, name, KindNames())
}
