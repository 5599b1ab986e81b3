// internal/pagination/pagination.go
package pagination

import (
	"strconv"

	"github.com/issuetrackhq/issuetrack/internal/domain"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 50
)

// Params holds normalized pagination parameters. Page starts at 1; Limit is
// clamped to MaxLimit rather than rejected.
type Params struct {
	Page  int
	Limit int
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Parse validates raw query values. Empty strings fall back to defaults;
// page < 1 and limit < 1 fail BadRequest; limit above MaxLimit is clamped.
func Parse(pageStr, limitStr string) (Params, error) {
	params := Params{Page: DefaultPage, Limit: DefaultLimit}

	if pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil {
			return Params{}, domain.BadRequest("page must be an integer")
		}
		params.Page = page
	}
	if limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return Params{}, domain.BadRequest("limit must be an integer")
		}
		params.Limit = limit
	}

	if params.Page < 1 {
		return Params{}, domain.BadRequest("page must be greater than or equal to 1")
	}
	if params.Limit < 1 {
		return Params{}, domain.BadRequest("limit must be greater than or equal to 1")
	}
	if params.Limit > MaxLimit {
		params.Limit = MaxLimit
	}

	return params, nil
}

// Meta describes the position of a page within the full result set.
type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// Page is the shape of every paginated response.
type Page[T any] struct {
	Data       []T  `json:"data"`
	Pagination Meta `json:"pagination"`
}

// NewPage wraps data with pagination metadata. TotalPages is
// ceil(total/limit), 0 when total is 0.
func NewPage[T any](data []T, params Params, total int64) Page[T] {
	if data == nil {
		data = []T{}
	}
	totalPages := int64(0)
	if total > 0 {
		totalPages = (total + int64(params.Limit) - 1) / int64(params.Limit)
	}
	return Page[T]{
		Data: data,
		Pagination: Meta{
			Page:       params.Page,
			Limit:      params.Limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}
}
