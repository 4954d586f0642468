package httpserver

import (
	"math"
	"net/http"
	"strconv"
)

const (
	_defaultPageLimit = 15
	_maxPageLimit     = 100
)

// PaginationParams uses 0-based pages.
type PaginationParams struct {
	Page  int
	Limit int
}

func (p PaginationParams) Offset() int {
	if p.Limit > 0 && p.Page > math.MaxInt/p.Limit {
		return math.MaxInt / p.Limit * p.Limit
	}
	return p.Page * p.Limit
}

type PaginatedResponse struct {
	Data       any                `json:"data"`
	Pagination PaginationMetadata `json:"pagination"`
}

type PaginationMetadata struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

func DefaultPaginationParams() PaginationParams {
	return PaginationParams{Page: 0, Limit: _defaultPageLimit}
}

func ExtractPaginationParams(r *http.Request) PaginationParams {
	params := DefaultPaginationParams()

	if page, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && page >= 0 {
		params.Page = page
	}

	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && limit > 0 && limit <= _maxPageLimit {
		params.Limit = limit
	}

	return params
}

func ReplyWithPaginatedData(w http.ResponseWriter, statusCode int, data any, total int, params PaginationParams) {
	totalPages := 0
	if params.Limit > 0 {
		totalPages = (total + params.Limit - 1) / params.Limit
	}

	ReplyJSONResponse(w, statusCode, PaginatedResponse{
		Data: data,
		Pagination: PaginationMetadata{
			Page:       params.Page,
			Limit:      params.Limit,
			Total:      total,
			TotalPages: totalPages,
		},
	})
}
