// Command inspect loads a CSV manifest, runs one pass of a chosen sampler
// and reports how the emitted batches are composed: distinct identities per
// batch, per-camera usage, per-dataset usage. It also renders histograms of
// the composition as PNGs, which is handy for eyeballing whether a sampler
// configuration actually balances what it claims to balance.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"

	"github.com/Noofbiz/sampleBowl/datasets"
	"github.com/Noofbiz/sampleBowl/sampler"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func main() {
	// CLI flags
	patternFlag := flag.String("pattern", "assets/manifests/*.csv", "glob pattern for manifest CSV files (path,pid,camid[,dsetid])")
	kindFlag := flag.String("sampler", "identity", "sampler kind: identity, domain, dataset, sequential, random, distributed, inference")
	outDir := flag.String("out", "plots", "output directory for generated plots")
	seed := flag.Int64("seed", 0, "random seed for the sampler (0 = nondeterministic)")

	batchSize := flag.Int("batch-size", 32, "number of indices per batch")
	numInstances := flag.Int("num-instances", 4, "items per identity per batch (identity sampler)")
	numCams := flag.Int("num-cams", 1, "cameras per batch (domain sampler; negative = all cameras)")
	numDatasets := flag.Int("num-datasets", 1, "datasets per batch (dataset sampler; negative = all datasets)")

	totalEpochs := flag.Int("epochs", 1, "epochs materialized by the distributed sampler")
	noShuffle := flag.Bool("no-shuffle", false, "disable the epoch-seeded shuffle of the distributed sampler")
	worldSize := flag.Int("world-size", 1, "number of workers (distributed/inference samplers)")
	rank := flag.Int("rank", 0, "this worker's rank (distributed/inference samplers)")

	flag.Parse()

	ds, err := datasets.NewManifestDataset(*patternFlag)
	if err != nil {
		log.Fatalf("failed to load manifest: %v", err)
	}
	log.Printf("Loaded %d items: %d identities, %d cameras, %d datasets",
		ds.Len(), ds.NumIdentities(), ds.NumCams(), ds.NumDatasets())

	kind, err := sampler.ParseKind(*kindFlag)
	if err != nil {
		log.Fatalf("%v", err)
	}

	smp, err := sampler.New(ds, sampler.Config{
		Kind:           kind,
		BatchSize:      *batchSize,
		NumInstances:   *numInstances,
		NumCams:        *numCams,
		NumDatasets:    *numDatasets,
		TotalEpochs:    *totalEpochs,
		DisableShuffle: *noShuffle,
		WorldSize:      *worldSize,
		Rank:           *rank,
	})
	if err != nil {
		log.Fatalf("failed to build %s sampler: %v", kind, err)
	}
	if *seed != 0 {
		if seedable, ok := smp.(interface{ Seed(int64) }); ok {
			seedable.Seed(*seed)
		}
	}

	indices := smp.Indices()
	log.Printf("Sampler %s: reported length %d, emitted %d indices (%d full batches of %d)",
		kind, smp.Len(), len(indices), len(indices)/(*batchSize), *batchSize)
	if len(indices) == 0 {
		log.Printf("nothing emitted for this configuration, skipping plots")
		return
	}

	camUsage, dsetUsage, pidsPerBatch := composition(ds, indices, *batchSize)
	for cam, n := range camUsage {
		log.Printf("camera %d: %d items emitted", cam, n)
	}
	for dset, n := range dsetUsage {
		log.Printf("dataset %d: %d items emitted", dset, n)
	}

	if err := plotUsage(*outDir, "camera_usage.png", "Items emitted per camera", camUsage); err != nil {
		log.Fatalf("failed to plot camera usage: %v", err)
	}
	if err := plotBatchIdentities(*outDir, pidsPerBatch); err != nil {
		log.Fatalf("failed to plot identities per batch: %v", err)
	}
	log.Printf("Plots written to %s", *outDir)
}

// composition tallies per-camera and per-dataset usage over the emitted
// sequence and the distinct identity count of each full batch.
func composition(ds *datasets.ManifestDataset, indices []int, batchSize int) (camUsage, dsetUsage map[int]int, pidsPerBatch []int) {
	camUsage = make(map[int]int)
	dsetUsage = make(map[int]int)
	for _, idx := range indices {
		_, cam, dset := ds.Labels(idx)
		camUsage[cam]++
		dsetUsage[dset]++
	}

	for start := 0; start+batchSize <= len(indices); start += batchSize {
		seen := make(map[int]struct{}, batchSize)
		for _, idx := range indices[start : start+batchSize] {
			pid, _, _ := ds.Labels(idx)
			seen[pid] = struct{}{}
		}
		pidsPerBatch = append(pidsPerBatch, len(seen))
	}
	return camUsage, dsetUsage, pidsPerBatch
}

// plotUsage renders a bar chart of items emitted per label value.
func plotUsage(outDir, name, title string, usage map[int]int) error {
	maxLabel := 0
	for label := range usage {
		if label > maxLabel {
			maxLabel = label
		}
	}
	values := make(plotter.Values, maxLabel+1)
	for label, n := range usage {
		if label >= 0 {
			values[label] = float64(n)
		}
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "label"
	p.Y.Label.Text = "items"

	bars, err := plotter.NewBarChart(values, vg.Points(12))
	if err != nil {
		return err
	}
	bars.Color = color.RGBA{R: 20, G: 80, B: 200, A: 220}
	p.Add(bars)

	if err := ensureDir(outDir); err != nil {
		return err
	}
	return p.Save(8*vg.Inch, 6*vg.Inch, filepath.Join(outDir, name))
}

// plotBatchIdentities renders a histogram of distinct identities per batch.
func plotBatchIdentities(outDir string, pidsPerBatch []int) error {
	if len(pidsPerBatch) == 0 {
		return nil
	}
	values := make(plotter.Values, len(pidsPerBatch))
	for i, n := range pidsPerBatch {
		values[i] = float64(n)
	}

	p := plot.New()
	p.Title.Text = "Distinct identities per batch"
	p.X.Label.Text = "identities"
	p.Y.Label.Text = "batches"

	hist, err := plotter.NewHist(values, 16)
	if err != nil {
		return err
	}
	hist.FillColor = color.RGBA{R: 200, G: 30, B: 30, A: 180}
	p.Add(hist)

	if err := ensureDir(outDir); err != nil {
		return err
	}
	return p.Save(8*vg.Inch, 6*vg.Inch, filepath.Join(outDir, "identities_per_batch.png"))
}

// ensureDir creates path if missing.
func ensureDir(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	return nil
}
