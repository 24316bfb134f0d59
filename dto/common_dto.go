package dto

// PaginatedResponse wraps list results the way the API paginates everywhere:
// total row count plus the current page of results.
type PaginatedResponse struct {
	Count   int64 `json:"count"`
	Results any   `json:"results"`
}
