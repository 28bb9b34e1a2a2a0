package chat

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iclubstoree/iclub-financeiro/internal/domain/expense"
	"github.com/iclubstoree/iclub-financeiro/internal/pkg"
)

// Campos obrigatórios rastreados em MissingFields.
const (
	FieldDescription = "description"
	FieldValue       = "value"
	FieldStore       = "store"
	FieldDueDate     = "dueDate"
)

// ExpenseDraft é o rascunho transitório produzido pelo interpretador.
// Nunca é persistido: vira Expense apenas quando todos os campos
// obrigatórios estão presentes e o usuário confirma.
type ExpenseDraft struct {
	ID            string          `json:"id"`
	Description   string          `json:"description"`
	Value         decimal.Decimal `json:"value"`
	Store         string          `json:"store,omitempty"`
	Category      string          `json:"category,omitempty"`
	CostCenter    string          `json:"costCenter,omitempty"`
	Type          string          `json:"type,omitempty"`
	DueDate       *time.Time      `json:"dueDate,omitempty"`
	MissingFields []string        `json:"missingFields"`
	EditMode      bool            `json:"editMode,omitempty"`
}

func newDraft() ExpenseDraft {
	return ExpenseDraft{ID: pkg.GenerateULID(), Value: decimal.Zero}
}

// refreshMissing recalcula MissingFields. A descrição nunca falta de fato,
// já que cai no padrão "Despesa", mas a checagem é mantida por completude.
func (d *ExpenseDraft) refreshMissing() {
	missing := make([]string, 0, 4)
	if d.Description == "" {
		missing = append(missing, FieldDescription)
	}
	if d.Value.LessThanOrEqual(decimal.Zero) {
		missing = append(missing, FieldValue)
	}
	if d.Store == "" {
		missing = append(missing, FieldStore)
	}
	if d.DueDate == nil {
		missing = append(missing, FieldDueDate)
	}
	d.MissingFields = missing
}

func (d *ExpenseDraft) complete() bool {
	return len(d.MissingFields) == 0
}

func (d *ExpenseDraft) missing(field string) bool {
	for _, f := range d.MissingFields {
		if f == field {
			return true
		}
	}
	return false
}

// ToExpense promove um rascunho completo a saída com origem de chat.
func (d *ExpenseDraft) ToExpense() expense.Expense {
	e := expense.Expense{
		Description: d.Description,
		Value:       d.Value,
		Store:       d.Store,
		Category:    d.Category,
		CostCenter:  d.CostCenter,
		Type:        d.Type,
		Origin:      expense.OriginChat,
	}
	if d.DueDate != nil {
		e.DueDate = *d.DueDate
		e.Date = *d.DueDate
	}
	return e
}
