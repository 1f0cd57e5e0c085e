package models

import "math"

type PaginatedList[T any] struct {
	TotalCount         int64 `json:"totalCount"`
	TotalPages         int   `json:"totalPages"`
	CurrentPage        int   `json:"currentPage"`
	CountOnCurrentPage int   `json:"countOnCurrentPage"`
	Data               []T   `json:"data"`
}

// NewPaginatedList assembles a page of items out of total matching rows.
// A pageSize <= 0 means the whole result set was returned as a single page.
func NewPaginatedList[T any](items []T, total int64, pageSize, currentPage int) *PaginatedList[T] {
	if items == nil {
		items = []T{}
	}
	if currentPage < 1 {
		currentPage = 1
	}

	totalPages := 1
	if pageSize > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(pageSize)))
	}

	return &PaginatedList[T]{
		TotalCount:         total,
		TotalPages:         totalPages,
		CurrentPage:        currentPage,
		CountOnCurrentPage: len(items),
		Data:               items,
	}
}
