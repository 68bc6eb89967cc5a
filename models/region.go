package models

import (
	"encoding/json"
	"time"
)

// Region is an admin-managed geographic area stored in the relational
// database. It is distinct from the fixed catalog buckets used by the
// read-only dataset endpoints (see RegionBucket).
type Region struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// Coordinates holds an arbitrary geometry payload serialized as JSON
	// text. Empty string means no coordinates were provided.
	Coordinates string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// RegionListItem is the shape returned by the paginated region listing:
// the stored coordinates parsed back into JSON plus an aggregate count of
// associated animals.
type RegionListItem struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Coordinates json.RawMessage `json:"coordinates"`
	AnimalCount int             `json:"animal_count"`
}

// RegionCreate is the request payload for POST /api/regions.
// Name is required; everything else is optional.
type RegionCreate struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// RegionUpdate is the request payload for PUT /api/regions/{id}.
// All fields are pointers so that absent keys can be distinguished from
// explicit values: a nil field keeps the stored value untouched.
type RegionUpdate struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Coordinates *json.RawMessage `json:"coordinates"`
}

// TableName returns the name of the database table
// associated with the Region model.
func (r Region) TableName() string {
	return "regions"
}
