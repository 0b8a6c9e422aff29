package pagination

import (
	"math"
	"net/http"
	"strconv"
	"strings"
)

// Params carries the common listing query parameters shared by every entity
// collection endpoint: page, limit, sort_by, sort_order.
type Params struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// Meta is the pagination block of the response envelope.
type Meta struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	Total       int64 `json:"total"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// ParseParams reads the shared listing parameters from the request. Invalid or
// missing values fall back to page 1 and defaultLimit.
func ParseParams(r *http.Request, defaultLimit int) Params {
	p := Params{Page: 1, Limit: defaultLimit}

	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			p.Page = n
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			p.Limit = n
		}
	}
	p.SortBy = r.URL.Query().Get("sortBy")
	if order := strings.ToLower(r.URL.Query().Get("sortOrder")); order == "asc" || order == "desc" {
		p.SortOrder = order
	}

	return p
}

// Offset returns the row offset for the current page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// NewMeta derives the pagination metadata from the total row count.
func NewMeta(page, limit int, total int64) Meta {
	totalPages := 0
	if limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(limit)))
	}
	return Meta{
		CurrentPage: page,
		TotalPages:  totalPages,
		Total:       total,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}
