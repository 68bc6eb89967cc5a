package service

import (
	"context"
	"fmt"

	"github.com/tahiry-dev/wildlife-atlas/internal/logger"
	"github.com/tahiry-dev/wildlife-atlas/internal/store"
	"github.com/tahiry-dev/wildlife-atlas/models"
)

// Pagination bounds for the region listing.
const (
	defaultPerPage = 10
	maxPerPage     = 100
)

// regionService implements RegionService on top of the region repository.
type regionService struct {
	regions store.RegionRepository
	logger  *logger.Logger
}

// NewRegionService constructs a RegionService.
func NewRegionService(regions store.RegionRepository, logger *logger.Logger) RegionService {
	return &regionService{
		regions: regions,
		logger:  logger,
	}
}

// Create validates the payload (name is required) and persists a new region.
// Coordinates, when present, are stored as serialized JSON text.
func (s *regionService) Create(ctx context.Context, req models.RegionCreate) (models.Region, error) {
	log := logger.FromContext(ctx)

	if req.Name == "" {
		log.Error().Msg("region create without name")
		return models.Region{}, ErrInvalidDataProvided
	}

	region := models.Region{
		Name:        req.Name,
		Description: req.Description,
	}
	if len(req.Coordinates) > 0 {
		region.Coordinates = string(req.Coordinates)
	}

	created, err := s.regions.CreateRegion(ctx, region)
	if err != nil {
		log.Err(err).Str("name", req.Name).Msg("region creation ended with error")
		return models.Region{}, fmt.Errorf("region creation ended with error: %w", err)
	}

	return created, nil
}

// List returns one page of regions. Page is clamped to at least 1 and
// perPage to [1, maxPerPage], defaulting to defaultPerPage when unset.
func (s *regionService) List(ctx context.Context, page, perPage int) (models.RegionPage, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	items, total, err := s.regions.ListRegions(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return models.RegionPage{}, fmt.Errorf("region listing ended with error: %w", err)
	}

	pages := total / perPage
	if total%perPage != 0 {
		pages++
	}

	return models.RegionPage{
		Items:       items,
		Total:       total,
		Pages:       pages,
		CurrentPage: page,
	}, nil
}

// Update applies a partial update to an existing region. The target must
// exist (store.ErrRegionNotFound otherwise); absent payload fields keep
// their stored values.
func (s *regionService) Update(ctx context.Context, id int64, update models.RegionUpdate) error {
	if _, err := s.regions.GetRegionByID(ctx, id); err != nil {
		return err
	}

	return s.regions.UpdateRegion(ctx, id, update)
}

// Delete removes a region.
func (s *regionService) Delete(ctx context.Context, id int64) error {
	return s.regions.DeleteRegion(ctx, id)
}
