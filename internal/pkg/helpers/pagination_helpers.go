package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/thws/management/internal/app/models"
	"github.com/thws/management/internal/app/models/dto"
)

const (
	DefaultPageSize = 2
	MaxPageSize     = 100
	DefaultPage     = 0 // pages are 0-based
)

// CalculateOffsetLimit calculates the offset and limit for SQL queries based
// on a 0-based page index.
func CalculateOffsetLimit(page, size int) (offset uint64, limit int) {
	if size <= 0 || size > MaxPageSize {
		limit = DefaultPageSize
	} else {
		limit = size
	}

	if page < 0 {
		page = DefaultPage
	}

	offset = uint64(page * limit)
	return offset, limit
}

// NewPageMeta creates the standard page metadata DTO for a 0-based page.
// Size falls back the same way CalculateOffsetLimit does, so the metadata
// always describes the window that was actually queried.
func NewPageMeta(totalElements int64, page, size int) dto.PageMeta {
	if size <= 0 || size > MaxPageSize {
		size = DefaultPageSize
	}
	if page < 0 {
		page = DefaultPage
	}

	totalPages := 0
	if totalElements > 0 {
		totalPages = int(math.Ceil(float64(totalElements) / float64(size)))
	}

	return dto.PageMeta{
		Size:          size,
		Number:        page,
		TotalElements: totalElements,
		TotalPages:    totalPages,
	}
}

// ParsePageRequest extracts page, size and sort parameters from the request.
func ParsePageRequest(c *gin.Context) models.PageRequest {
	page, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(DefaultPage)))
	if err != nil || page < 0 {
		page = DefaultPage
	}

	size, err := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(DefaultPageSize)))
	if err != nil || size <= 0 || size > MaxPageSize {
		size = DefaultPageSize
	}

	return models.PageRequest{
		Page: page,
		Size: size,
		Sort: models.ParseSortDirection(c.DefaultQuery("sort", string(models.SortAsc))),
	}
}
