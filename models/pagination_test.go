package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginatedList(t *testing.T) {
	tests := []struct {
		name        string
		items       []int
		total       int64
		pageSize    int
		currentPage int
		wantPages   int
		wantCurrent int
		wantOnPage  int
	}{
		{name: "first of three", items: []int{1, 2}, total: 5, pageSize: 2, currentPage: 1, wantPages: 3, wantCurrent: 1, wantOnPage: 2},
		{name: "last page holds remainder", items: []int{5}, total: 5, pageSize: 2, currentPage: 3, wantPages: 3, wantCurrent: 3, wantOnPage: 1},
		{name: "exact multiple", items: []int{1, 2, 3}, total: 9, pageSize: 3, currentPage: 2, wantPages: 3, wantCurrent: 2, wantOnPage: 3},
		{name: "no page size", items: []int{1, 2, 3, 4}, total: 4, pageSize: 0, currentPage: 0, wantPages: 1, wantCurrent: 1, wantOnPage: 4},
		{name: "empty", items: nil, total: 0, pageSize: 10, currentPage: 1, wantPages: 0, wantCurrent: 1, wantOnPage: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := NewPaginatedList(tt.items, tt.total, tt.pageSize, tt.currentPage)

			assert.Equal(t, tt.total, list.TotalCount)
			assert.Equal(t, tt.wantPages, list.TotalPages)
			assert.Equal(t, tt.wantCurrent, list.CurrentPage)
			assert.Equal(t, tt.wantOnPage, list.CountOnCurrentPage)
			assert.NotNil(t, list.Data)
		})
	}
}
