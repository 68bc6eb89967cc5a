package store

import (
	"context"

	"github.com/tahiry-dev/wildlife-atlas/models"
)

// UserRepository persists and looks up user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
}

// RegionRepository persists admin-managed regions.
type RegionRepository interface {
	CreateRegion(ctx context.Context, region models.Region) (models.Region, error)
	GetRegionByID(ctx context.Context, id int64) (models.Region, error)
	ListRegions(ctx context.Context, limit, offset int) ([]models.RegionListItem, int, error)
	UpdateRegion(ctx context.Context, id int64, update models.RegionUpdate) error
	DeleteRegion(ctx context.Context, id int64) error
}

// AnimalRepository persists admin-managed animals and their region links.
type AnimalRepository interface {
	CreateAnimal(ctx context.Context, animal models.Animal, regionIDs []int64) (models.Animal, error)
	GetAnimalByID(ctx context.Context, id int64) (models.Animal, error)
	UpdateAnimal(ctx context.Context, id int64, update models.AnimalUpdate) error
	ReplaceAnimalRegions(ctx context.Context, animalID int64, regionIDs []int64) error
	DeleteAnimal(ctx context.Context, id int64) error
}
