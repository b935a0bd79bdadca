package datasets

import (
	"os"
	"path/filepath"
	"testing"
)

// writeCSV writes a CSV file with the given header and rows to path.
func writeCSV(t *testing.T, path, header string, rows []string) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create csv %s: %v", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(header + "\n"); err != nil {
		t.Fatalf("failed to write header: %v", err)
	}
	for _, r := range rows {
		if _, err := f.WriteString(r + "\n"); err != nil {
			t.Fatalf("failed to write row: %v", err)
		}
	}
}

// TestManifestDataset_LoadAndRead creates temporary manifest files and
// verifies that NewManifestDataset, At, Labels and the distinct-label counts
// behave as expected.
func TestManifestDataset_LoadAndRead(t *testing.T) {
	tmp := t.TempDir()

	header := "path,pid,camid,dsetid"

	file1 := filepath.Join(tmp, "m1.csv")
	rows1 := []string{
		"img/0001_c1.jpg,1,1,0",
		"img/0001_c2.jpg,1,2,0",
		"img/0002_c1.jpg,2,1,0",
	}
	writeCSV(t, file1, header, rows1)

	file2 := filepath.Join(tmp, "m2.csv")
	rows2 := []string{
		"img/0003_c3.jpg,3,3,1",
		"img/0003_c1.jpg,3,1,1",
	}
	writeCSV(t, file2, header, rows2)

	pattern := filepath.Join(tmp, "*.csv")
	ds, err := NewManifestDataset(pattern)
	if err != nil {
		t.Fatalf("NewManifestDataset failed: %v", err)
	}

	if got := ds.Len(); got != 5 {
		t.Fatalf("expected len 5, got %d", got)
	}

	// Record 0 (first row of first file)
	r0, err := ds.At(0)
	if err != nil {
		t.Fatalf("At(0) error: %v", err)
	}
	if r0.Path != "img/0001_c1.jpg" || r0.PersonID != 1 || r0.CamID != 1 || r0.DatasetID != 0 {
		t.Fatalf("unexpected record 0: %+v", r0)
	}

	// Record 3 (second file, row index 0)
	pid, cam, dset := ds.Labels(3)
	if pid != 3 || cam != 3 || dset != 1 {
		t.Fatalf("unexpected labels for record 3: pid=%d cam=%d dset=%d", pid, cam, dset)
	}

	if got := ds.NumIdentities(); got != 3 {
		t.Fatalf("expected 3 identities, got %d", got)
	}
	if got := ds.NumCams(); got != 3 {
		t.Fatalf("expected 3 cameras, got %d", got)
	}
	if got := ds.NumDatasets(); got != 2 {
		t.Fatalf("expected 2 datasets, got %d", got)
	}

	if _, err := ds.At(5); err == nil {
		t.Fatalf("expected out-of-range error for At(5)")
	}
}

// TestManifestDataset_OptionalDatasetColumn verifies that dsetid defaults to
// zero when the column is absent.
func TestManifestDataset_OptionalDatasetColumn(t *testing.T) {
	tmp := t.TempDir()

	file := filepath.Join(tmp, "m.csv")
	writeCSV(t, file, "path,pid,camid", []string{
		"img/a.jpg,10,0",
		"img/b.jpg,11,1",
	})

	ds, err := NewManifestDataset(filepath.Join(tmp, "*.csv"))
	if err != nil {
		t.Fatalf("NewManifestDataset failed: %v", err)
	}
	for i := 0; i < ds.Len(); i++ {
		if _, _, dset := ds.Labels(i); dset != 0 {
			t.Fatalf("expected dsetid 0 at %d, got %d", i, dset)
		}
	}
}

// TestManifestDataset_MissingColumns ensures NewManifestDataset returns an
// error when required columns are absent in the CSV header.
func TestManifestDataset_MissingColumns(t *testing.T) {
	tmp := t.TempDir()
	// header missing camid
	writeCSV(t, filepath.Join(tmp, "bad.csv"), "path,pid", []string{"img/a.jpg,1"})

	if _, err := NewManifestDataset(filepath.Join(tmp, "*.csv")); err == nil {
		t.Fatalf("expected error when required columns missing, got nil")
	}
}

func TestManifestDataset_NoFiles(t *testing.T) {
	tmp := t.TempDir()
	if _, err := NewManifestDataset(filepath.Join(tmp, "*.csv")); err == nil {
		t.Fatalf("expected error for empty glob, got nil")
	}
}

func TestManifestDataset_HeaderOnly(t *testing.T) {
	tmp := t.TempDir()
	writeCSV(t, filepath.Join(tmp, "empty.csv"), "path,pid,camid", nil)

	if _, err := NewManifestDataset(filepath.Join(tmp, "*.csv")); err == nil {
		t.Fatalf("expected error for manifest without rows, got nil")
	}
}
