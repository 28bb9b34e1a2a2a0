package pkg

// PaginationParams descreve a janela de página pedida pelo cliente.
// Page é 1-based.
type PaginationParams struct {
	Page  int
	Limit int
}

func (p *PaginationParams) Offset() int {
	if p == nil {
		return 0
	}
	if p.Page < 1 {
		p.Page = 1
	}
	return (p.Page - 1) * p.Limit
}

func (p *PaginationParams) Normalize() {
	if p == nil {
		return
	}
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
}

func NormalizePagination(p *PaginationParams) *PaginationParams {
	if p == nil {
		return &PaginationParams{Page: 1, Limit: 10}
	}
	p.Normalize()
	return p
}

type PaginatedResponse[T any] struct {
	Data       []T   `json:"data"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

func NewPaginatedResponse[T any](data []T, page, limit int, total int64) *PaginatedResponse[T] {
	return &PaginatedResponse[T]{
		Data:       data,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: TotalPages(int(total), limit),
	}
}

// TotalPages é ceil(total/limit), com piso em 1: uma listagem vazia ainda
// corresponde à página 1.
func TotalPages(total, limit int) int {
	if limit < 1 {
		limit = 10
	}
	pages := total / limit
	if total%limit > 0 {
		pages++
	}
	if pages == 0 {
		pages = 1
	}
	return pages
}

// PaginateSlice corta a janela pedida de um slice já ordenado. Se a página
// pedida passa do fim, volta para a primeira página em vez de devolver vazio.
func PaginateSlice[T any](items []T, pagination *PaginationParams) ([]T, int) {
	pagination = NormalizePagination(pagination)

	totalPages := TotalPages(len(items), pagination.Limit)
	if pagination.Page > totalPages {
		pagination.Page = 1
	}

	start := pagination.Offset()
	if start >= len(items) {
		return []T{}, totalPages
	}
	end := start + pagination.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], totalPages
}
