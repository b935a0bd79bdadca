package sampler

import (
	"errors"
	"strings"
	"testing"
)

// factorySource builds a collection of nIdentities identities with
// perIdentity items each, cycling camera labels.
func factorySource(nIdentities, perIdentity, nCams int) mockSource {
	var src mockSource
	for pid := 0; pid < nIdentities; pid++ {
		for k := 0; k < perIdentity; k++ {
			src.pids = append(src.pids, pid)
			src.cams = append(src.cams, len(src.cams)%nCams)
			src.dsets = append(src.dsets, 0)
		}
	}
	return src
}

func TestParseKind(t *testing.T) {
	for _, name := range KindNames() {
		k, err := ParseKind(name)
		if err != nil {
			t.Fatalf("ParseKind(%q) failed: %v", name, err)
		}
		if k.String() != name {
			t.Fatalf("round trip mismatch: %q -> %v", name, k)
		}
	}

	_, err := ParseKind("bogus")
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
	// The error must list the valid kinds.
	if !strings.Contains(err.Error(), "identity") || !strings.Contains(err.Error(), "inference") {
		t.Fatalf("error should list valid kinds, got %q", err.Error())
	}
}

func TestNew_IdentityDefaults(t *testing.T) {
	// Default batch 32 and 4 instances need at least 8 identities.
	src := factorySource(8, 4, 2)
	s, err := New(src, Config{Kind: KindIdentity})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if s.Len() != 32 {
		t.Fatalf("expected estimated length 32, got %d", s.Len())
	}
}

func TestNew_DomainDefault(t *testing.T) {
	// Default is one camera per batch, so a single-camera collection with a
	// batch-sized group is valid.
	src := factorySource(8, 4, 1)
	s, err := New(src, Config{Kind: KindDomain})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if got := len(s.Indices()); got != 32 {
		t.Fatalf("expected one full batch of 32, got %d", got)
	}
}

func TestNew_DatasetAllLabels(t *testing.T) {
	src := mockSource{
		pids:  make([]int, 8),
		dsets: []int{0, 0, 0, 0, 1, 1, 1, 1},
	}
	// Negative count requests every dataset present.
	s, err := New(src, Config{Kind: KindDataset, BatchSize: 4, NumDatasets: -1})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if s.Len() != 8 {
		t.Fatalf("expected measured length 8, got %d", s.Len())
	}
}

func TestNew_SequentialAndRandom(t *testing.T) {
	src := factorySource(2, 3, 1)
	for _, kind := range []Kind{KindSequential, KindRandom} {
		s, err := New(src, Config{Kind: kind})
		if err != nil {
			t.Fatalf("New(%v) failed: %v", kind, err)
		}
		if s.Len() != 6 {
			t.Fatalf("New(%v): expected length 6, got %d", kind, s.Len())
		}
	}
}

func TestNew_DistributedPlacement(t *testing.T) {
	src := factorySource(8, 4, 2) // 32 items

	// Explicit placement.
	s, err := New(src, Config{Kind: KindDistributed, BatchSize: 4, TotalEpochs: 1, WorldSize: 2, Rank: 1})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if s.Len() != 16 {
		t.Fatalf("expected 16 samples per replica, got %d", s.Len())
	}

	// Placement resolved from the injected runtime.
	s, err = New(src, Config{Kind: KindDistributed, BatchSize: 4, TotalEpochs: 1, Runtime: FixedRuntime{World: 2, Proc: 0}})
	if err != nil {
		t.Fatalf("New with runtime failed: %v", err)
	}
	if s.Len() != 16 {
		t.Fatalf("expected 16 samples per replica, got %d", s.Len())
	}

	// Unset placement and no runtime is a configuration error.
	if _, err := New(src, Config{Kind: KindDistributed, BatchSize: 4, TotalEpochs: 1}); !errors.Is(err, ErrNoRuntime) {
		t.Fatalf("expected ErrNoRuntime, got %v", err)
	}
}

func TestNew_Inference(t *testing.T) {
	src := factorySource(5, 2, 1) // 10 items
	s, err := New(src, Config{Kind: KindInference, WorldSize: 3, Rank: 2})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	out := s.Indices()
	if len(out) != 2 || out[0] != 8 || out[1] != 9 {
		t.Fatalf("expected shard [8,10), got %v", out)
	}
}

func TestNew_UnknownKind(t *testing.T) {
	src := factorySource(2, 2, 1)
	if _, err := New(src, Config{Kind: Kind(99)}); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}
