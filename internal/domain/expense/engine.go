package expense

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iclubstoree/iclub-financeiro/internal/pkg"
)

// SummaryBucket agrega total monetário e contagem de um dos seis cards
// da listagem.
type SummaryBucket struct {
	ID         string          `json:"id"`
	TotalValue decimal.Decimal `json:"totalValue"`
	Count      int             `json:"count"`
}

// View é o resultado completo de uma consulta: página atual, totais e os
// seis cards de resumo calculados sobre o conjunto filtrado (sem paginação).
type View struct {
	PageItems  []Expense       `json:"pageItems"`
	TotalItems int             `json:"totalItems"`
	TotalPages int             `json:"totalPages"`
	Page       int             `json:"page"`
	Buckets    []SummaryBucket `json:"buckets"`
}

// Engine computa a listagem de saídas: filtro, ordenação estável,
// janela de página e cards de resumo. É uma função pura dos argumentos;
// o relógio é injetável apenas para os testes.
type Engine struct {
	now func() time.Time
}

func NewEngine() *Engine {
	return &Engine{now: time.Now}
}

// NewEngineAt fixa o instante usado como "agora".
func NewEngineAt(now time.Time) *Engine {
	return &Engine{now: func() time.Time { return now }}
}

// Query aplica filtro, ordenação e paginação sobre a coleção completa.
// Nenhuma combinação de filtros é fatal: página fora do intervalo volta
// para a primeira e dimensões vazias significam "sem filtro".
func (e *Engine) Query(expenses []Expense, filter FilterSpec, sortSpec SortSpec, pagination *pkg.PaginationParams) *View {
	now := e.now()

	filtered := Filter(expenses, filter, now)
	sorted := Sort(filtered, sortSpec)

	pagination = pkg.NormalizePagination(pagination)
	pageItems, totalPages := pkg.PaginateSlice(sorted, pagination)

	return &View{
		PageItems:  pageItems,
		TotalItems: len(sorted),
		TotalPages: totalPages,
		Page:       pagination.Page,
		Buckets:    Summarize(sorted, now),
	}
}

// Summarize calcula os seis cards sobre o conjunto filtrado. Os cards não
// são cumulativos: vencidas/hoje/próximas particionam apenas as não pagas,
// recorrentes/avulsas particionam tudo e o total cobre tudo.
func Summarize(expenses []Expense, now time.Time) []SummaryBucket {
	cards := []string{CardOverdue, CardToday, CardUpcoming, CardRecurring, CardNonRecurring, CardTotal}

	buckets := make([]SummaryBucket, 0, len(cards))
	for _, card := range cards {
		bucket := SummaryBucket{ID: card, TotalValue: decimal.Zero}
		for _, e := range expenses {
			if matchesCard(e, card, now) {
				bucket.TotalValue = bucket.TotalValue.Add(e.Value)
				bucket.Count++
			}
		}
		buckets = append(buckets, bucket)
	}
	return buckets
}
