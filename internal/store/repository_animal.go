package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/tahiry-dev/wildlife-atlas/internal/logger"
	"github.com/tahiry-dev/wildlife-atlas/models"
)

// animalRepository is the PostgreSQL-backed implementation of
// [AnimalRepository]. Region links live in the animal_region join table and
// are always replaced wholesale, never merged.
type animalRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAnimalRepository constructs an [AnimalRepository] backed by the provided
// database connection and logger.
func NewAnimalRepository(db *DB, logger *logger.Logger) AnimalRepository {
	logger.Debug().Msg("creating animal repository")
	return &animalRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAnimal persists a new animal and, when regionIDs is non-empty, links
// it to those regions in the same transaction. Region IDs that do not exist
// are ignored.
func (r *animalRepository) CreateAnimal(ctx context.Context, animal models.Animal, regionIDs []int64) (models.Animal, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*animalRepository.CreateAnimal").Msg("error beginning transaction")
		return models.Animal{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, createAnimal,
		animal.Name, animal.ScientificName, animal.Description, animal.RiskLevel, animal.ImageURL)
	if err := row.Scan(&animal.ID, &animal.Name, &animal.ScientificName, &animal.Description,
		&animal.RiskLevel, &animal.ImageURL, &animal.CreatedAt); err != nil {
		log.Err(err).Str("func", "*animalRepository.CreateAnimal").Msg("error: scanning error")
		return models.Animal{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if len(regionIDs) > 0 {
		if _, err := tx.ExecContext(ctx, linkAnimalRegions, animal.ID, regionIDs); err != nil {
			log.Err(err).Str("func", "*animalRepository.CreateAnimal").Msg("error linking regions")
			return models.Animal{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*animalRepository.CreateAnimal").Msg("error committing transaction")
		return models.Animal{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return animal, nil
}

// GetAnimalByID retrieves an animal row. Returns [ErrAnimalNotFound] when no
// row matches.
func (r *animalRepository) GetAnimalByID(ctx context.Context, id int64) (models.Animal, error) {
	log := logger.FromContext(ctx)

	var animal models.Animal
	row := r.db.QueryRowContext(ctx, getAnimalByID, id)
	if err := row.Scan(&animal.ID, &animal.Name, &animal.ScientificName, &animal.Description,
		&animal.RiskLevel, &animal.ImageURL, &animal.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Animal{}, ErrAnimalNotFound
		}
		log.Err(err).Str("func", "*animalRepository.GetAnimalByID").Msg("error: scanning error")
		return models.Animal{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return animal, nil
}

// UpdateAnimal applies a partial update: only non-nil scalar fields of
// update are written. Region links are handled separately by
// [animalRepository.ReplaceAnimalRegions]. An update with no settable field
// is a no-op. Returns [ErrAnimalNotFound] when the row does not exist.
func (r *animalRepository) UpdateAnimal(ctx context.Context, id int64, update models.AnimalUpdate) error {
	log := logger.FromContext(ctx)

	builder := sq.Update("animals").PlaceholderFormat(sq.Dollar)
	changed := false

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
		changed = true
	}
	if update.ScientificName != nil {
		builder = builder.Set("scientific_name", *update.ScientificName)
		changed = true
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
		changed = true
	}
	if update.RiskLevel != nil {
		builder = builder.Set("risk_level", *update.RiskLevel)
		changed = true
	}
	if update.ImageURL != nil {
		builder = builder.Set("image_url", *update.ImageURL)
		changed = true
	}

	if !changed {
		return nil
	}

	query, args, err := builder.Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*animalRepository.UpdateAnimal").Msg("error building update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*animalRepository.UpdateAnimal").Msg("error executing update")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAnimalNotFound
	}

	return nil
}

// ReplaceAnimalRegions replaces the animal's region links wholesale: every
// existing link is removed and links to the given regions are inserted in a
// single transaction. An empty regionIDs list simply clears all links.
func (r *animalRepository) ReplaceAnimalRegions(ctx context.Context, animalID int64, regionIDs []int64) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*animalRepository.ReplaceAnimalRegions").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, unlinkAnimalRegions, animalID); err != nil {
		log.Err(err).Str("func", "*animalRepository.ReplaceAnimalRegions").Msg("error unlinking regions")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if len(regionIDs) > 0 {
		if _, err := tx.ExecContext(ctx, linkAnimalRegions, animalID, regionIDs); err != nil {
			log.Err(err).Str("func", "*animalRepository.ReplaceAnimalRegions").Msg("error linking regions")
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*animalRepository.ReplaceAnimalRegions").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// DeleteAnimal removes an animal row; region links are removed by the
// ON DELETE CASCADE constraint on the join table.
// Returns [ErrAnimalNotFound] when the row does not exist.
func (r *animalRepository) DeleteAnimal(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteAnimal, id)
	if err != nil {
		log.Err(err).Str("func", "*animalRepository.DeleteAnimal").Msg("error executing delete")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAnimalNotFound
	}

	return nil
}
