package store

import (
	"github.com/tahiry-dev/wildlife-atlas/internal/logger"
)

// Storages bundles every repository the application uses, constructed from a
// single shared database connection.
type Storages struct {
	Users   UserRepository
	Regions RegionRepository
	Animals AnimalRepository
}

// NewStorages wires all repositories onto the given connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		Users:   NewUserRepository(db, logger),
		Regions: NewRegionRepository(db, logger),
		Animals: NewAnimalRepository(db, logger),
	}
}
