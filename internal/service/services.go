package service

import (
	"github.com/tahiry-dev/wildlife-atlas/internal/config"
	"github.com/tahiry-dev/wildlife-atlas/internal/logger"
	"github.com/tahiry-dev/wildlife-atlas/internal/store"
)

// Services bundles every domain service the HTTP layer depends on.
type Services struct {
	Auth    AuthService
	Regions RegionService
	Animals AnimalService
}

// NewServices wires all services onto the given repositories.
func NewServices(storages *store.Storages, cfg *config.Config, logger *logger.Logger) *Services {
	return &Services{
		Auth:    NewAuthService(storages.Users, cfg.App, logger),
		Regions: NewRegionService(storages.Regions, logger),
		Animals: NewAnimalService(storages.Animals, logger),
	}
}
