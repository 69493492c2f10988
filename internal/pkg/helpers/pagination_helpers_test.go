package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		size       int
		wantOffset uint64
		wantLimit  int
	}{
		{"first page", 1, 10, 0, 10},
		{"third page", 3, 25, 50, 25},
		{"zero page falls back to first", 0, 10, 0, 10},
		{"negative page falls back to first", -2, 10, 0, 10},
		{"zero size uses default", 2, 0, 10, DefaultPageSize},
		{"oversized page size uses default", 2, 500, 10, DefaultPageSize},
		{"max page size allowed", 1, MaxPageSize, 0, MaxPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := CalculateOffsetLimit(tt.page, tt.size)
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(45, 2, 10)
	assert.Equal(t, 2, info.CurrentPage)
	assert.Equal(t, 5, info.TotalPages)
	assert.Equal(t, 10, info.PageSize)
	assert.Equal(t, int64(45), info.TotalItems)

	t.Run("empty result set still reports one page", func(t *testing.T) {
		info := NewPaginationInfo(0, 1, 10)
		assert.Equal(t, 1, info.CurrentPage)
		assert.Equal(t, 1, info.TotalPages)
	})

	t.Run("page beyond the end is clamped", func(t *testing.T) {
		info := NewPaginationInfo(20, 9, 10)
		assert.Equal(t, 2, info.CurrentPage)
		assert.Equal(t, 2, info.TotalPages)
	})

	t.Run("exact multiple of page size", func(t *testing.T) {
		info := NewPaginationInfo(30, 1, 10)
		assert.Equal(t, 3, info.TotalPages)
	})
}
