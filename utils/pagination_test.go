package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculatePagination(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		pageSize   int
		wantOffset int
		wantLimit  int
	}{
		{name: "defaults", page: 0, pageSize: 0, wantOffset: 0, wantLimit: DefaultPageSize},
		{name: "first page", page: 1, pageSize: 10, wantOffset: 0, wantLimit: 10},
		{name: "third page", page: 3, pageSize: 25, wantOffset: 50, wantLimit: 25},
		{name: "negative page", page: -2, pageSize: 10, wantOffset: 0, wantLimit: 10},
		{name: "oversized page size falls back to default", page: 1, pageSize: MaxPageSize + 1, wantOffset: 0, wantLimit: DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := CalculatePagination(tt.page, tt.pageSize)
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}
