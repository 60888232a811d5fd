package dto

import "time"

// APIResponse is the standard response envelope for API endpoints.
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// PageMeta describes a paginated result window.
type PageMeta struct {
	Size          int   `json:"size" example:"2"`
	Number        int   `json:"number" example:"0"`
	TotalElements int64 `json:"totalElements" example:"7"`
	TotalPages    int   `json:"totalPages" example:"4"`
}

// HasNext reports whether a page after this one exists.
func (m PageMeta) HasNext() bool {
	return m.Number < m.TotalPages-1
}

// HasPrevious reports whether a page before this one exists.
func (m PageMeta) HasPrevious() bool {
	return m.Number > 0
}

// Link is a hypermedia (relation, method, URL) triple embedded in responses.
type Link struct {
	Rel    string `json:"rel" example:"self"`
	Method string `json:"method" example:"GET"`
	Href   string `json:"href" example:"/api/v1/partner-universities/1"`
}
