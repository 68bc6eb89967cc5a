package service

import (
	"context"

	"github.com/tahiry-dev/wildlife-atlas/models"
)

// AuthService handles account registration, credential verification, and the
// JWT token lifecycle.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	UserByID(ctx context.Context, id int64) (models.User, error)
}

// RegionService handles admin-managed region CRUD and the paginated listing.
type RegionService interface {
	Create(ctx context.Context, req models.RegionCreate) (models.Region, error)
	List(ctx context.Context, page, perPage int) (models.RegionPage, error)
	Update(ctx context.Context, id int64, update models.RegionUpdate) error
	Delete(ctx context.Context, id int64) error
}

// AnimalService handles admin-managed animal CRUD including region links.
type AnimalService interface {
	Create(ctx context.Context, req models.AnimalCreate) (models.Animal, error)
	Update(ctx context.Context, id int64, update models.AnimalUpdate) error
	Delete(ctx context.Context, id int64) error
}
