package models

// RegionPage is the response shape of the paginated region listing.
type RegionPage struct {
	Items       []RegionListItem `json:"items"`
	Total       int              `json:"total"`
	Pages       int              `json:"pages"`
	CurrentPage int              `json:"current_page"`
}
