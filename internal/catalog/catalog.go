// Package catalog builds and serves the read-only wildlife dataset: at
// startup it joins the external dataset file against a directory of photo
// files and buckets the surviving records into five fixed geographic regions.
//
// The loaded data lives in an immutable Snapshot that is swapped atomically
// on every (re)load, so request handlers always observe a consistent view
// without locking.
package catalog

import (
	"sync/atomic"

	"github.com/tahiry-dev/wildlife-atlas/models"
)

// Snapshot is one immutable result of a dataset load. All accessors are
// read-only; a new load produces a new Snapshot rather than mutating an
// existing one.
type Snapshot struct {
	animals  []models.CatalogAnimal
	byBucket map[int][]models.CatalogAnimal
}

// emptySnapshot is what a Catalog serves before the first successful load
// (and after a failed one).
func emptySnapshot() *Snapshot {
	return &Snapshot{byBucket: map[int][]models.CatalogAnimal{}}
}

// NewSnapshot builds a snapshot from already-constructed records, assigning
// each to its fixed region buckets based on the record's Region text.
func NewSnapshot(animals []models.CatalogAnimal) *Snapshot {
	s := emptySnapshot()
	for _, a := range animals {
		s.animals = append(s.animals, a)
		for _, bucketID := range classifyRegion(a.Region) {
			s.byBucket[bucketID] = append(s.byBucket[bucketID], a)
		}
	}
	return s
}

// All returns every loaded record in dataset order.
func (s *Snapshot) All() []models.CatalogAnimal {
	return s.animals
}

// ByID finds a record by its sequential ID via linear search.
// The second return value is false if no record carries the ID.
func (s *Snapshot) ByID(id int) (models.CatalogAnimal, bool) {
	for _, a := range s.animals {
		if a.ID == id {
			return a, true
		}
	}
	return models.CatalogAnimal{}, false
}

// ByBucket returns the records assigned to the given fixed region bucket.
// Unknown bucket IDs yield an empty slice.
func (s *Snapshot) ByBucket(bucketID int) []models.CatalogAnimal {
	return s.byBucket[bucketID]
}

// Len reports how many records survived the load.
func (s *Snapshot) Len() int {
	return len(s.animals)
}

// Catalog holds the current Snapshot behind an atomic pointer. It is the
// only shared mutable state of the dataset side of the application; handlers
// read it, the loader replaces it.
type Catalog struct {
	current atomic.Pointer[Snapshot]
}

// NewCatalog constructs a Catalog serving an empty snapshot until the first
// successful load replaces it.
func NewCatalog() *Catalog {
	c := &Catalog{}
	c.current.Store(emptySnapshot())
	return c
}

// Snapshot returns the currently published snapshot. The returned value is
// immutable and safe to read concurrently.
func (c *Catalog) Snapshot() *Snapshot {
	return c.current.Load()
}

// Replace atomically publishes a new snapshot. A nil snapshot resets the
// catalog to empty.
func (c *Catalog) Replace(s *Snapshot) {
	if s == nil {
		s = emptySnapshot()
	}
	c.current.Store(s)
}
