package sampler

// Source is the minimal interface samplers need from an item collection.
// Declaring it here instead of importing a concrete dataset type keeps the
// package usable with any metadata store that can report its labels.
type Source interface {
	// Len returns the number of items in the collection.
	Len() int

	// Labels returns the identity, camera and dataset labels of the item at
	// index i. Samplers never read any other field of an item.
	Labels(i int) (personID, camID, datasetID int)
}
