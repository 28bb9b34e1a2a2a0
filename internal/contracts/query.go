package contracts

import (
	"strings"
	"time"

	"github.com/iclubstoree/iclub-financeiro/internal/domain/expense"
	apperrors "github.com/iclubstoree/iclub-financeiro/internal/errors"
	"github.com/iclubstoree/iclub-financeiro/internal/pkg"
)

// ExpenseQueryRequest reúne os parâmetros de listagem vindos da query
// string. Listas chegam separadas por vírgula; campos ausentes significam
// "sem filtro".
type ExpenseQueryRequest struct {
	Search        string `form:"search"`
	DateRange     string `form:"dateRange"`
	StartDate     string `form:"startDate"`
	EndDate       string `form:"endDate"`
	Stores        string `form:"stores"`
	Categories    string `form:"categories"`
	CostCenters   string `form:"costCenters"`
	Types         string `form:"types"`
	PaymentStatus string `form:"paymentStatus"`
	Recurrence    string `form:"recurrence"`
	CardFilter    string `form:"cardFilter"`
	SortField     string `form:"sortField"`
	SortDirection string `form:"sortDirection"`
	Page          int    `form:"page"`
	Limit         int    `form:"limit"`
}

func (r *ExpenseQueryRequest) ToFilterSpec() (expense.FilterSpec, error) {
	spec := expense.FilterSpec{
		SearchTerm:    r.Search,
		DateRange:     r.DateRange,
		Stores:        splitList(r.Stores),
		Categories:    splitList(r.Categories),
		CostCenters:   splitList(r.CostCenters),
		Types:         splitList(r.Types),
		PaymentStatus: r.PaymentStatus,
		Recurrence:    r.Recurrence,
		CardFilter:    r.CardFilter,
	}

	if r.StartDate != "" {
		start, err := time.Parse(dateLayout, r.StartDate)
		if err != nil {
			return spec, apperrors.NewValidationError("startDate", "Data deve estar no formato AAAA-MM-DD")
		}
		spec.CustomStartDate = &start
	}
	if r.EndDate != "" {
		end, err := time.Parse(dateLayout, r.EndDate)
		if err != nil {
			return spec, apperrors.NewValidationError("endDate", "Data deve estar no formato AAAA-MM-DD")
		}
		spec.CustomEndDate = &end
	}
	return spec, nil
}

func (r *ExpenseQueryRequest) ToSortSpec() expense.SortSpec {
	return expense.SortSpec{Field: r.SortField, Direction: r.SortDirection}
}

func (r *ExpenseQueryRequest) ToPagination(defaultLimit int) *pkg.PaginationParams {
	limit := r.Limit
	if limit == 0 {
		limit = defaultLimit
	}
	p := &pkg.PaginationParams{Page: r.Page, Limit: limit}
	p.Normalize()
	return p
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
