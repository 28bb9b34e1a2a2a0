package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{"coleção vazia é uma página", 0, 10, 1},
		{"divisão exata", 30, 10, 3},
		{"resto vira página extra", 23, 10, 3},
		{"limite inválido usa o padrão", 25, 0, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.total, tt.limit))
		})
	}
}

func TestPaginateSliceVazio(t *testing.T) {
	page, totalPages := PaginateSlice([]int{}, &PaginationParams{Page: 3, Limit: 10})
	assert.Empty(t, page)
	assert.Equal(t, 1, totalPages)
}
