package models

// SortDirection is the direction applied to the name sort of a listing.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ParseSortDirection maps a query value to a direction, defaulting to asc.
func ParseSortDirection(s string) SortDirection {
	if SortDirection(s) == SortDesc {
		return SortDesc
	}
	return SortAsc
}

// Opposite returns the other sort direction.
func (d SortDirection) Opposite() SortDirection {
	if d == SortDesc {
		return SortAsc
	}
	return SortDesc
}

// PageRequest describes the requested page window of a listing.
// Page numbers are 0-based.
type PageRequest struct {
	Page int
	Size int
	Sort SortDirection
}
