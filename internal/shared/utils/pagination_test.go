package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPageMeta(t *testing.T) {
	tests := []struct {
		name            string
		totalCount      int64
		pageIndex       int
		pageSize        int
		wantTotalPages  int
		wantHasPrevious bool
		wantHasNext     bool
	}{
		{
			name:            "first page of several",
			totalCount:      25,
			pageIndex:       1,
			pageSize:        10,
			wantTotalPages:  3,
			wantHasPrevious: false,
			wantHasNext:     true,
		},
		{
			name:            "middle page",
			totalCount:      25,
			pageIndex:       2,
			pageSize:        10,
			wantTotalPages:  3,
			wantHasPrevious: true,
			wantHasNext:     true,
		},
		{
			name:            "last page",
			totalCount:      25,
			pageIndex:       3,
			pageSize:        10,
			wantTotalPages:  3,
			wantHasPrevious: true,
			wantHasNext:     false,
		},
		{
			name:            "exact multiple of page size",
			totalCount:      20,
			pageIndex:       2,
			pageSize:        10,
			wantTotalPages:  2,
			wantHasPrevious: true,
			wantHasNext:     false,
		},
		{
			name:            "empty result set",
			totalCount:      0,
			pageIndex:       1,
			pageSize:        10,
			wantTotalPages:  0,
			wantHasPrevious: false,
			wantHasNext:     false,
		},
		{
			name:            "page past the end",
			totalCount:      5,
			pageIndex:       4,
			pageSize:        10,
			wantTotalPages:  1,
			wantHasPrevious: true,
			wantHasNext:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := NewPageMeta(tt.totalCount, tt.pageIndex, tt.pageSize)

			assert.Equal(t, tt.pageIndex, meta.PageIndex)
			assert.Equal(t, tt.pageSize, meta.PageSize)
			assert.Equal(t, tt.totalCount, meta.TotalCount)
			assert.Equal(t, tt.wantTotalPages, meta.TotalPages)
			assert.Equal(t, tt.wantHasPrevious, meta.HasPrevious)
			assert.Equal(t, tt.wantHasNext, meta.HasNext)
		})
	}
}

func TestPageOffset(t *testing.T) {
	tests := []struct {
		name       string
		pageIndex  int
		pageSize   int
		wantLimit  int
		wantOffset int
	}{
		{
			name:       "first page starts at zero",
			pageIndex:  1,
			pageSize:   10,
			wantLimit:  10,
			wantOffset: 0,
		},
		{
			name:       "third page",
			pageIndex:  3,
			pageSize:   10,
			wantLimit:  10,
			wantOffset: 20,
		},
		{
			name:       "page zero lands past the end",
			pageIndex:  0,
			pageSize:   10,
			wantLimit:  10,
			wantOffset: 1 << 30,
		},
		{
			name:       "negative page lands past the end",
			pageIndex:  -2,
			pageSize:   10,
			wantLimit:  10,
			wantOffset: 1 << 30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset := PageOffset(tt.pageIndex, tt.pageSize)

			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 3, TotalPages(25, 10))
	assert.Equal(t, 2, TotalPages(20, 10))
	assert.Equal(t, 1, TotalPages(1, 10))
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 0, TotalPages(10, 0))
}
