package service

import (
	"context"
	"fmt"

	"github.com/tahiry-dev/wildlife-atlas/internal/logger"
	"github.com/tahiry-dev/wildlife-atlas/internal/store"
	"github.com/tahiry-dev/wildlife-atlas/models"
)

// animalService implements AnimalService on top of the animal repository.
type animalService struct {
	animals store.AnimalRepository
	logger  *logger.Logger
}

// NewAnimalService constructs an AnimalService.
func NewAnimalService(animals store.AnimalRepository, logger *logger.Logger) AnimalService {
	return &animalService{
		animals: animals,
		logger:  logger,
	}
}

// Create validates the payload (name is required) and persists a new animal,
// attaching it to the requested regions in the same transaction.
func (s *animalService) Create(ctx context.Context, req models.AnimalCreate) (models.Animal, error) {
	log := logger.FromContext(ctx)

	if req.Name == "" {
		log.Error().Msg("animal create without name")
		return models.Animal{}, ErrInvalidDataProvided
	}

	animal := models.Animal{
		Name:           req.Name,
		ScientificName: req.ScientificName,
		Description:    req.Description,
		RiskLevel:      req.RiskLevel,
		ImageURL:       req.ImageURL,
	}

	created, err := s.animals.CreateAnimal(ctx, animal, req.RegionIDs)
	if err != nil {
		log.Err(err).Str("name", req.Name).Msg("animal creation ended with error")
		return models.Animal{}, fmt.Errorf("animal creation ended with error: %w", err)
	}

	return created, nil
}

// Update applies a partial update to an existing animal. The target must
// exist (store.ErrAnimalNotFound otherwise). Scalar fields are written only
// when present in the payload; region links are replaced wholesale only when
// the region_ids key itself was present, so an absent key and an empty list
// mean different things.
func (s *animalService) Update(ctx context.Context, id int64, update models.AnimalUpdate) error {
	if _, err := s.animals.GetAnimalByID(ctx, id); err != nil {
		return err
	}

	if err := s.animals.UpdateAnimal(ctx, id, update); err != nil {
		return err
	}

	if update.RegionIDs != nil {
		if err := s.animals.ReplaceAnimalRegions(ctx, id, *update.RegionIDs); err != nil {
			return err
		}
	}

	return nil
}

// Delete removes an animal.
func (s *animalService) Delete(ctx context.Context, id int64) error {
	return s.animals.DeleteAnimal(ctx, id)
}
