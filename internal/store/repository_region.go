package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/tahiry-dev/wildlife-atlas/internal/logger"
	"github.com/tahiry-dev/wildlife-atlas/models"
)

// regionRepository is the PostgreSQL-backed implementation of
// [RegionRepository].
type regionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRegionRepository constructs a [RegionRepository] backed by the provided
// database connection and logger.
func NewRegionRepository(db *DB, logger *logger.Logger) RegionRepository {
	logger.Debug().Msg("creating region repository")
	return &regionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateRegion persists a new region and returns it with server-assigned
// fields populated.
func (r *regionRepository) CreateRegion(ctx context.Context, region models.Region) (models.Region, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createRegion, region.Name, region.Description, region.Coordinates)
	if err := row.Scan(&region.ID, &region.Name, &region.Description, &region.Coordinates, &region.CreatedAt); err != nil {
		log.Err(err).Str("func", "*regionRepository.CreateRegion").Msg("error: scanning error")
		return models.Region{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return region, nil
}

// GetRegionByID retrieves a region row. Returns [ErrRegionNotFound] when no
// row matches.
func (r *regionRepository) GetRegionByID(ctx context.Context, id int64) (models.Region, error) {
	log := logger.FromContext(ctx)

	var region models.Region
	row := r.db.QueryRowContext(ctx, getRegionByID, id)
	if err := row.Scan(&region.ID, &region.Name, &region.Description, &region.Coordinates, &region.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Region{}, ErrRegionNotFound
		}
		log.Err(err).Str("func", "*regionRepository.GetRegionByID").Msg("error: scanning error")
		return models.Region{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return region, nil
}

// ListRegions returns one page of regions together with the total row count.
// Each item carries its stored coordinates parsed back into JSON and the
// number of animals linked to it.
func (r *regionRepository) ListRegions(ctx context.Context, limit, offset int) ([]models.RegionListItem, int, error) {
	log := logger.FromContext(ctx)

	var total int
	if err := r.db.QueryRowContext(ctx, countRegions).Scan(&total); err != nil {
		log.Err(err).Str("func", "*regionRepository.ListRegions").Msg("error counting regions")
		return nil, 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, listRegions, limit, offset)
	if err != nil {
		log.Err(err).Str("func", "*regionRepository.ListRegions").Msg("error listing regions")
		return nil, 0, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	items := make([]models.RegionListItem, 0, limit)
	for rows.Next() {
		var (
			item        models.RegionListItem
			coordinates string
		)
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &coordinates, &item.AnimalCount); err != nil {
			log.Err(err).Str("func", "*regionRepository.ListRegions").Msg("error: scanning error")
			return nil, 0, err
		}
		if coordinates != "" {
			item.Coordinates = json.RawMessage(coordinates)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// UpdateRegion applies a partial update: only non-nil fields of update are
// written. An update with no settable field is a no-op.
// Returns [ErrRegionNotFound] when the row does not exist.
func (r *regionRepository) UpdateRegion(ctx context.Context, id int64, update models.RegionUpdate) error {
	log := logger.FromContext(ctx)

	builder := sq.Update("regions").PlaceholderFormat(sq.Dollar)
	changed := false

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
		changed = true
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
		changed = true
	}
	if update.Coordinates != nil {
		builder = builder.Set("coordinates", string(*update.Coordinates))
		changed = true
	}

	if !changed {
		return nil
	}

	query, args, err := builder.Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*regionRepository.UpdateRegion").Msg("error building update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*regionRepository.UpdateRegion").Msg("error executing update")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrRegionNotFound
	}

	return nil
}

// DeleteRegion removes a region row; animal links are removed by the
// ON DELETE CASCADE constraint on the join table.
// Returns [ErrRegionNotFound] when the row does not exist.
func (r *regionRepository) DeleteRegion(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteRegion, id)
	if err != nil {
		log.Err(err).Str("func", "*regionRepository.DeleteRegion").Msg("error executing delete")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrRegionNotFound
	}

	return nil
}
