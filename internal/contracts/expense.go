package contracts

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iclubstoree/iclub-financeiro/internal/domain/expense"
	apperrors "github.com/iclubstoree/iclub-financeiro/internal/errors"
)

const dateLayout = "2006-01-02"

// ExpenseRequest é o corpo de criação/edição de saída. Datas chegam como
// AAAA-MM-DD; valor como decimal em string ou número.
type ExpenseRequest struct {
	Date        string          `json:"date"`
	DueDate     string          `json:"dueDate" binding:"required"`
	Store       string          `json:"store" binding:"required"`
	Category    string          `json:"category"`
	CostCenter  string          `json:"costCenter"`
	Type        string          `json:"type"`
	Description string          `json:"description" binding:"required"`
	Value       decimal.Decimal `json:"value"`
	Paid        bool            `json:"paid"`
	Recurring   bool            `json:"recurring"`
	Recurrence  *string         `json:"recurrence"`
	Notes       string          `json:"notes"`
}

// ToDomain converte o corpo validado em entidade de domínio.
func (r *ExpenseRequest) ToDomain() (*expense.Expense, error) {
	dueDate, err := time.Parse(dateLayout, r.DueDate)
	if err != nil {
		return nil, apperrors.NewValidationError("dueDate", "Data deve estar no formato AAAA-MM-DD")
	}

	date := dueDate
	if r.Date != "" {
		date, err = time.Parse(dateLayout, r.Date)
		if err != nil {
			return nil, apperrors.NewValidationError("date", "Data deve estar no formato AAAA-MM-DD")
		}
	}

	return &expense.Expense{
		Date:        date,
		DueDate:     dueDate,
		Store:       r.Store,
		Category:    r.Category,
		CostCenter:  r.CostCenter,
		Type:        r.Type,
		Description: r.Description,
		Value:       r.Value,
		Paid:        r.Paid,
		Recurring:   r.Recurring,
		Recurrence:  r.Recurrence,
		Notes:       r.Notes,
	}, nil
}

// DeleteExpenseRequest carrega o flag de remoção de recorrências futuras.
type DeleteExpenseRequest struct {
	DeleteFutureRecurrences bool `json:"deleteFutureRecurrences"`
}
