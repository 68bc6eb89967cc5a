package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tahiry-dev/wildlife-atlas/internal/config"
	"github.com/tahiry-dev/wildlife-atlas/internal/logger"
	"github.com/tahiry-dev/wildlife-atlas/models"
)

// ImageURLPrefix is the public path under which copied photos are served.
const ImageURLPrefix = "/static/animal-images/"

// Loader reads the external dataset file and photo directory and produces
// catalog snapshots. It is safe to call Load repeatedly; every call builds a
// fresh snapshot from scratch.
type Loader struct {
	datasetPath string
	photosDir   string
	staticDir   string
	logger      *logger.Logger
}

// NewLoader constructs a Loader from the dataset configuration.
func NewLoader(cfg config.Dataset, log *logger.Logger) *Loader {
	return &Loader{
		datasetPath: cfg.FilePath,
		photosDir:   cfg.PhotosDir,
		staticDir:   cfg.StaticDir,
		logger:      log,
	}
}

// Load builds a new snapshot from the dataset file and photo directory.
//
// The load fails outright (nil snapshot, non-nil error) only when the
// dataset file or photo directory is absent, or the dataset cannot be
// parsed. Individual records are dropped, with a warning, when a required
// field is empty or no photo matches the record's name; partial success is
// the normal case, not an error.
//
// Records that survive are assigned dense sequential IDs starting at 1, so
// IDs are not stable across loads if the photo set changes. Matched photos
// are copied into the servable static directory; an existing copy is never
// overwritten, which makes repeated loads idempotent.
func (l *Loader) Load() (*Snapshot, error) {
	log := l.logger

	if _, err := os.Stat(l.datasetPath); err != nil {
		log.Err(err).Str("path", l.datasetPath).Msg("dataset file not found")
		return nil, fmt.Errorf("dataset file not found at %s: %w", l.datasetPath, err)
	}
	if _, err := os.Stat(l.photosDir); err != nil {
		log.Err(err).Str("path", l.photosDir).Msg("photos directory not found")
		return nil, fmt.Errorf("photos directory not found at %s: %w", l.photosDir, err)
	}

	photos, err := indexPhotos(l.photosDir)
	if err != nil {
		log.Err(err).Msg("error indexing photos directory")
		return nil, fmt.Errorf("error indexing photos directory: %w", err)
	}
	log.Info().Int("photos", len(photos)).Msg("indexed photo files")

	raw, err := readDataset(l.datasetPath)
	if err != nil {
		log.Err(err).Msg("error parsing dataset file")
		return nil, err
	}
	log.Info().Int("records", len(raw)).Msg("parsed dataset file")

	if err := os.MkdirAll(l.staticDir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating static directory: %w", err)
	}

	var animals []models.CatalogAnimal
	for _, record := range raw {
		if !recordComplete(record) {
			log.Warn().Str("name", record.CommonName).Msg("skipping record with missing field")
			continue
		}

		photoFile, ok := photos[strings.ToLower(record.CommonName)]
		if !ok {
			log.Warn().Str("name", record.CommonName).Msg("no photo found for record")
			continue
		}

		if err := copyIfAbsent(
			filepath.Join(l.photosDir, photoFile),
			filepath.Join(l.staticDir, photoFile),
		); err != nil {
			log.Warn().Err(err).Str("name", record.CommonName).Msg("error copying photo")
			continue
		}

		animals = append(animals, models.CatalogAnimal{
			ID:             len(animals) + 1,
			Name:           record.CommonName,
			ScientificName: record.ScientificName,
			RiskLevel:      trimRiskLevel(record.RiskLevel),
			Description:    record.Description,
			Type:           record.Type,
			Region:         record.Region,
			Habitat:        record.Habitat,
			ImageURL:       ImageURLPrefix + photoFile,
		})
	}

	snapshot := NewSnapshot(animals)

	log.Info().Int("loaded", snapshot.Len()).Msg("catalog load finished")
	for _, b := range buckets {
		log.Debug().Int("bucket", b.ID).Str("name", b.Name).
			Int("animals", len(snapshot.byBucket[b.ID])).Send()
	}

	return snapshot, nil
}

// recordComplete reports whether every dataset field required by the catalog
// is present on the raw record.
func recordComplete(r models.RawCatalogRecord) bool {
	return r.CommonName != "" &&
		r.ScientificName != "" &&
		r.RiskLevel != "" &&
		r.Description != "" &&
		r.Type != "" &&
		r.Region != "" &&
		r.Habitat != ""
}

// readDataset parses the dataset file into raw records, preserving source
// order.
func readDataset(path string) ([]models.RawCatalogRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading dataset file: %w", err)
	}

	var records []models.RawCatalogRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("error parsing dataset file: %w", err)
	}

	return records, nil
}

// indexPhotos builds a case-insensitive index of the photo directory keyed
// by filename without extension.
func indexPhotos(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	index := make(map[string]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		index[strings.ToLower(stem)] = name
	}

	return index, nil
}

// trimRiskLevel truncates a raw risk-level value at the first parenthetical
// qualifier: "Endangered (IUCN)" becomes "Endangered".
func trimRiskLevel(raw string) string {
	level, _, _ := strings.Cut(raw, "(")
	return strings.TrimSpace(level)
}

// copyIfAbsent copies src to dst unless dst already exists. Copies are never
// overwritten, so photos surviving across runs stay byte-identical.
func copyIfAbsent(src, dst string) error {
	if _, err := os.Stat(dst); err == nil {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}

	return out.Close()
}
