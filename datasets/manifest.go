package datasets

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ManifestDataset loads item metadata from CSV manifest files matching a
// glob pattern. Each CSV is expected to have columns
// "path", "pid", "camid" and optionally "dsetid" (defaulting to 0 when the
// column is absent, for single-dataset training).
//
// All labels are read in one forward scan at construction, since every
// balanced sampler needs the full label set up front; the files named by the
// path column are never opened.
type ManifestDataset struct {
	// Pattern used to find CSV files (e.g., "assets/manifests/*.csv")
	Pattern string

	// List of CSV file paths matching the pattern
	csvPaths []string

	// Column indices for labels (discovered from first file)
	colIndex map[string]int

	// All records across all files, in file order
	records []Record
}

// NewManifestDataset creates a manifest dataset from the CSV files matching
// the given pattern.
func NewManifestDataset(pattern string) (*ManifestDataset, error) {
	csvPaths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to glob pattern %s: %w", pattern, err)
	}
	if len(csvPaths) == 0 {
		return nil, fmt.Errorf("no CSV files found matching pattern: %s", pattern)
	}

	ds := &ManifestDataset{
		Pattern:  pattern,
		csvPaths: csvPaths,
	}

	// Read the first file to determine column structure
	if err := ds.initializeColumns(); err != nil {
		return nil, err
	}

	// Scan all files and collect records
	for _, path := range ds.csvPaths {
		if err := ds.loadFile(path); err != nil {
			return nil, err
		}
	}
	if len(ds.records) == 0 {
		return nil, fmt.Errorf("manifest is empty: %s", pattern)
	}

	return ds, nil
}

// initializeColumns reads the first CSV to determine column indices
func (d *ManifestDataset) initializeColumns() error {
	file, err := os.Open(d.csvPaths[0])
	if err != nil {
		return fmt.Errorf("failed to open first CSV %s: %w", d.csvPaths[0], err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("failed to read header: %w", err)
	}

	d.colIndex = make(map[string]int)
	for i, col := range header {
		d.colIndex[strings.TrimSpace(strings.ToLower(col))] = i
	}

	// Verify required columns exist; dsetid is optional
	required := []string{"path", "pid", "camid"}
	for _, col := range required {
		if _, ok := d.colIndex[col]; !ok {
			return fmt.Errorf("required column %q not found in CSV", col)
		}
	}

	return nil
}

// loadFile appends all records of one manifest file
func (d *ManifestDataset) loadFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open CSV %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	// Skip header
	if _, err := reader.Read(); err != nil {
		return fmt.Errorf("failed to read header of %s: %w", path, err)
	}

	dsetCol, hasDset := d.colIndex["dsetid"]
	rowIdx := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read row %d of %s: %w", rowIdx, path, err)
		}

		pid, err := parseInt(record[d.colIndex["pid"]])
		if err != nil {
			return fmt.Errorf("failed to parse pid at row %d of %s: %w", rowIdx, path, err)
		}
		camID, err := parseInt(record[d.colIndex["camid"]])
		if err != nil {
			return fmt.Errorf("failed to parse camid at row %d of %s: %w", rowIdx, path, err)
		}
		dsetID := 0
		if hasDset {
			dsetID, err = parseInt(record[dsetCol])
			if err != nil {
				return fmt.Errorf("failed to parse dsetid at row %d of %s: %w", rowIdx, path, err)
			}
		}

		d.records = append(d.records, Record{
			Path:      strings.TrimSpace(record[d.colIndex["path"]]),
			PersonID:  pid,
			CamID:     camID,
			DatasetID: dsetID,
		})
		rowIdx++
	}

	return nil
}

// Len returns the total number of records across all manifest files
func (d *ManifestDataset) Len() int {
	return len(d.records)
}

// At returns the record at global index i
func (d *ManifestDataset) At(i int) (Record, error) {
	if i < 0 || i >= len(d.records) {
		return Record{}, fmt.Errorf("index %d out of range [0, %d)", i, len(d.records))
	}
	return d.records[i], nil
}

// Labels returns the three labels of the record at index i
func (d *ManifestDataset) Labels(i int) (personID, camID, datasetID int) {
	r := d.records[i]
	return r.PersonID, r.CamID, r.DatasetID
}

// NumIdentities returns the number of distinct person IDs in the manifest
func (d *ManifestDataset) NumIdentities() int {
	return countDistinct(d.records, func(r Record) int { return r.PersonID })
}

// NumCams returns the number of distinct camera IDs in the manifest
func (d *ManifestDataset) NumCams() int {
	return countDistinct(d.records, func(r Record) int { return r.CamID })
}

// NumDatasets returns the number of distinct origin-dataset IDs
func (d *ManifestDataset) NumDatasets() int {
	return countDistinct(d.records, func(r Record) int { return r.DatasetID })
}
