package datasets

import "fmt"

// This package provides the item metadata sources the sampler package
// consumes: in-memory record slices and CSV manifest files listing
// (path, person, camera, dataset) tuples, plus a gomlx bridge that turns
// sampler output into label tensor batches.
//
// Samplers only ever read the three labels of a record. Paths stay opaque
// and are carried for whatever consumer ultimately loads the items; nothing
// here opens an image file.

// Record is the metadata of a single item at a fixed index position.
type Record struct {
	// Path locates the item's payload. Opaque to this module.
	Path string

	// PersonID is the identity label: one subject across items.
	PersonID int

	// CamID is the domain label: the camera or viewpoint the item came from.
	CamID int

	// DatasetID is the origin label: which source dataset contributed the
	// item when several are merged for training.
	DatasetID int
}

// Source is a fixed-size collection of records.
type Source interface {
	// Len returns the number of records.
	Len() int

	// At returns the record at index i.
	At(i int) (Record, error)

	// Labels returns the identity, camera and dataset labels of the record
	// at index i. This is the method the sampler package consumes.
	Labels(i int) (personID, camID, datasetID int)
}

// SliceSource is an in-memory Source.
type SliceSource []Record

// Len returns the number of records.
func (s SliceSource) Len() int { return len(s) }

// At returns the record at index i.
func (s SliceSource) At(i int) (Record, error) {
	if i < 0 || i >= len(s) {
		return Record{}, fmt.Errorf("index %d out of range [0, %d)", i, len(s))
	}
	return s[i], nil
}

// Labels returns the three labels of the record at index i.
func (s SliceSource) Labels(i int) (personID, camID, datasetID int) {
	r := s[i]
	return r.PersonID, r.CamID, r.DatasetID
}
