package models

// CatalogAnimal is a read-only catalog entry built by the dataset loader at
// startup. It is a separate, parallel in-memory dataset and is never
// persisted; the relational Animal rows cover the admin-editable catalog.
type CatalogAnimal struct {
	// ID is the 1-based position of the record among the records that
	// survived loading. IDs are dense but not stable across loads if the
	// photo set changes.
	ID             int    `json:"id"`
	Name           string `json:"name"`
	ScientificName string `json:"scientific_name"`
	RiskLevel      string `json:"risk_level"`
	Description    string `json:"description"`
	Type           string `json:"type"`
	Region         string `json:"region"`
	Habitat        string `json:"habitat"`
	ImageURL       string `json:"image_url"`
}

// RegionBucket is one of the five fixed geographic groupings used by the
// read-only dataset endpoints. Its animals are resolved against the current
// catalog snapshot, not stored on the bucket itself.
type RegionBucket struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// RawCatalogRecord mirrors one object of the external dataset file
// (Animals_Madagascar.json). Field names follow the source file verbatim.
type RawCatalogRecord struct {
	CommonName     string `json:"Common Name"`
	ScientificName string `json:"Scientific Name"`
	RiskLevel      string `json:"Risk Level"`
	Description    string `json:"Description"`
	Type           string `json:"Type"`
	Region         string `json:"Region"`
	Habitat        string `json:"Habitat"`
}
