package models

import "time"

// Animal is an admin-managed species record stored in the relational
// database, related to Region via the animal_region join table.
type Animal struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	ScientificName string `json:"scientific_name,omitempty"`
	Description    string `json:"description,omitempty"`

	// RiskLevel is a free-text conservation classification,
	// e.g. "Endangered" or "Vulnerable".
	RiskLevel string `json:"risk_level,omitempty"`

	// ImageURL is a servable path to the animal's photo, if any.
	ImageURL string `json:"image_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// AnimalCreate is the request payload for POST /api/animals.
// Name is required; RegionIDs optionally attaches the new animal to
// existing regions.
type AnimalCreate struct {
	Name           string  `json:"name"`
	ScientificName string  `json:"scientific_name"`
	Description    string  `json:"description"`
	RiskLevel      string  `json:"risk_level"`
	ImageURL       string  `json:"image_url"`
	RegionIDs      []int64 `json:"region_ids"`
}

// AnimalUpdate is the request payload for PUT /api/animals/{id}.
//
// Every field is a pointer so the handler can distinguish "key absent"
// (nil, keep the stored value) from an explicit value. RegionIDs carries the
// same tri-state: nil leaves the associations alone, while any non-nil slice,
// even an empty one, replaces them wholesale.
type AnimalUpdate struct {
	Name           *string  `json:"name"`
	ScientificName *string  `json:"scientific_name"`
	Description    *string  `json:"description"`
	RiskLevel      *string  `json:"risk_level"`
	ImageURL       *string  `json:"image_url"`
	RegionIDs      *[]int64 `json:"region_ids"`
}

// TableName returns the name of the database table
// associated with the Animal model.
func (a Animal) TableName() string {
	return "animals"
}
