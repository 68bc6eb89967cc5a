package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tahiry-dev/wildlife-atlas/internal/config"
	"github.com/tahiry-dev/wildlife-atlas/internal/logger"
	"github.com/tahiry-dev/wildlife-atlas/models"
)

// newTestLoader lays out a dataset file, a photos directory, and a static
// target directory under a temp root and returns a Loader over them.
func newTestLoader(t *testing.T, records []models.RawCatalogRecord, photoNames []string) (*Loader, config.Dataset) {
	t.Helper()

	root := t.TempDir()
	cfg := config.Dataset{
		FilePath:  filepath.Join(root, "Animals_Madagascar.json"),
		PhotosDir: filepath.Join(root, "Animals_Photo"),
		StaticDir: filepath.Join(root, "static", "animal-images"),
	}

	data, err := json.Marshal(records)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(cfg.FilePath, data, 0o644))

	require.NoError(t, os.MkdirAll(cfg.PhotosDir, 0o755))
	for _, name := range photoNames {
		require.NoError(t, os.WriteFile(filepath.Join(cfg.PhotosDir, name), []byte("jpeg-bytes-"+name), 0o644))
	}

	return NewLoader(cfg, logger.Nop()), cfg
}

func record(name, region string) models.RawCatalogRecord {
	return models.RawCatalogRecord{
		CommonName:     name,
		ScientificName: "Genus " + strings.ToLower(name),
		RiskLevel:      "Least Concern",
		Description:    name + " description",
		Type:           "Mammal",
		Region:         region,
		Habitat:        "Rainforest",
	}
}

func TestLoad_AllRecordsMatched(t *testing.T) {
	records := []models.RawCatalogRecord{
		record("Indri", "Eastern rainforests"),
		record("Fossa", "Found throughout Madagascar"),
		record("Aye-Aye", "Northern regions"),
	}
	loader, _ := newTestLoader(t, records, []string{"Indri.jpg", "Fossa.jpg", "Aye-Aye.jpg"})

	snapshot, err := loader.Load()
	require.NoError(t, err)
	require.Equal(t, 3, snapshot.Len())

	for i, animal := range snapshot.All() {
		assert.Equal(t, i+1, animal.ID)
	}
	assert.Equal(t, "/static/animal-images/Indri.jpg", snapshot.All()[0].ImageURL)
}

func TestLoad_PhotoMatchIsCaseInsensitive(t *testing.T) {
	loader, _ := newTestLoader(t,
		[]models.RawCatalogRecord{record("Ring-Tailed Lemur", "Western forests")},
		[]string{"RING-TAILED LEMUR.JPG"},
	)

	snapshot, err := loader.Load()
	require.NoError(t, err)
	require.Equal(t, 1, snapshot.Len())
}

func TestLoad_RecordWithoutPhotoIsSkippedEverywhere(t *testing.T) {
	records := []models.RawCatalogRecord{
		record("Indri", "Eastern rainforests"),
		record("Ghost Lemur", "Eastern rainforests"), // no photo on disk
		record("Fossa", "Eastern rainforests"),
	}
	loader, _ := newTestLoader(t, records, []string{"Indri.jpg", "Fossa.jpg"})

	snapshot, err := loader.Load()
	require.NoError(t, err)
	require.Equal(t, 2, snapshot.Len())

	// IDs stay dense: the skipped record consumes none.
	assert.Equal(t, 1, snapshot.All()[0].ID)
	assert.Equal(t, "Indri", snapshot.All()[0].Name)
	assert.Equal(t, 2, snapshot.All()[1].ID)
	assert.Equal(t, "Fossa", snapshot.All()[1].Name)

	for _, b := range Buckets() {
		for _, a := range snapshot.ByBucket(b.ID) {
			assert.NotEqual(t, "Ghost Lemur", a.Name)
		}
	}
}

func TestLoad_RecordWithMissingFieldIsSkipped(t *testing.T) {
	broken := record("Fossa", "Western forests")
	broken.Habitat = ""
	records := []models.RawCatalogRecord{record("Indri", "Eastern rainforests"), broken}
	loader, _ := newTestLoader(t, records, []string{"Indri.jpg", "Fossa.jpg"})

	snapshot, err := loader.Load()
	require.NoError(t, err)
	require.Equal(t, 1, snapshot.Len())
	assert.Equal(t, "Indri", snapshot.All()[0].Name)
}

func TestLoad_ThroughoutGoesToAllBuckets(t *testing.T) {
	loader, _ := newTestLoader(t,
		[]models.RawCatalogRecord{record("Fossa", "Found throughout Madagascar")},
		[]string{"Fossa.jpg"},
	)

	snapshot, err := loader.Load()
	require.NoError(t, err)

	for _, b := range Buckets() {
		require.Len(t, snapshot.ByBucket(b.ID), 1, "bucket %d", b.ID)
	}
}

func TestLoad_NorthernAndCentralClassification(t *testing.T) {
	loader, _ := newTestLoader(t,
		[]models.RawCatalogRecord{record("Aye-Aye", "Northern and Central regions")},
		[]string{"Aye-Aye.jpg"},
	)

	snapshot, err := loader.Load()
	require.NoError(t, err)

	assert.Len(t, snapshot.ByBucket(1), 1)
	assert.Len(t, snapshot.ByBucket(3), 1)
	assert.Empty(t, snapshot.ByBucket(2))
	assert.Empty(t, snapshot.ByBucket(4))
	assert.Empty(t, snapshot.ByBucket(5))
}

func TestLoad_RiskLevelTruncatedAtParenthetical(t *testing.T) {
	rec := record("Indri", "Eastern rainforests")
	rec.RiskLevel = "Endangered (IUCN)"
	loader, _ := newTestLoader(t, []models.RawCatalogRecord{rec}, []string{"Indri.jpg"})

	snapshot, err := loader.Load()
	require.NoError(t, err)
	require.Equal(t, 1, snapshot.Len())
	assert.Equal(t, "Endangered", snapshot.All()[0].RiskLevel)
}

func TestLoad_SecondLoadLeavesCopiesByteIdentical(t *testing.T) {
	loader, cfg := newTestLoader(t,
		[]models.RawCatalogRecord{record("Indri", "Eastern rainforests")},
		[]string{"Indri.jpg"},
	)

	_, err := loader.Load()
	require.NoError(t, err)

	copied := filepath.Join(cfg.StaticDir, "Indri.jpg")
	first, err := os.ReadFile(copied)
	require.NoError(t, err)

	// Mutate the source: the copy must not be overwritten on reload.
	require.NoError(t, os.WriteFile(filepath.Join(cfg.PhotosDir, "Indri.jpg"), []byte("changed"), 0o644))

	snapshot, err := loader.Load()
	require.NoError(t, err)
	require.Equal(t, 1, snapshot.Len())

	second, err := os.ReadFile(copied)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLoad_MissingDatasetFileFails(t *testing.T) {
	loader, cfg := newTestLoader(t, nil, nil)
	require.NoError(t, os.Remove(cfg.FilePath))

	_, err := loader.Load()
	require.Error(t, err)
}

func TestLoad_MissingPhotosDirFails(t *testing.T) {
	loader, cfg := newTestLoader(t, nil, nil)
	require.NoError(t, os.RemoveAll(cfg.PhotosDir))

	_, err := loader.Load()
	require.Error(t, err)
}

func TestLoad_MalformedDatasetFails(t *testing.T) {
	loader, cfg := newTestLoader(t, nil, nil)
	require.NoError(t, os.WriteFile(cfg.FilePath, []byte("{not json"), 0o644))

	_, err := loader.Load()
	require.Error(t, err)
}
