package expense

import (
	"time"

	"github.com/shopspring/decimal"
)

// Origens possíveis de uma saída.
const (
	OriginForm   = "form"
	OriginChat   = "chat"
	OriginImport = "import"
)

// Valores padrão aplicados na criação quando o campo não é informado.
const (
	DefaultCategory   = "Outros"
	DefaultCostCenter = "Administrativo"
	DefaultType       = "Variável"
)

// Expense é a saída financeira, entidade central do sistema.
// Date é a data de competência e DueDate a data de vencimento; ambas são
// datas de calendário, sem componente de hora relevante.
type Expense struct {
	ID          int             `json:"id" gorm:"primaryKey;autoIncrement"`
	Date        time.Time       `json:"date" gorm:"type:date;not null;index"`
	DueDate     time.Time       `json:"dueDate" gorm:"type:date;not null;index"`
	Store       string          `json:"store" gorm:"not null;index"`
	Category    string          `json:"category" gorm:"not null;index"`
	CostCenter  string          `json:"costCenter" gorm:"column:cost_center;not null"`
	Type        string          `json:"type" gorm:"not null"`
	Description string          `json:"description" gorm:"not null"`
	Value       decimal.Decimal `json:"value" gorm:"type:decimal(15,2);not null"`
	Paid        bool            `json:"paid" gorm:"default:false"`
	Recurring   bool            `json:"recurring" gorm:"default:false"`
	Recurrence  *string         `json:"recurrence,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	Origin      string          `json:"origin" gorm:"default:form"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func (Expense) TableName() string {
	return "expenses"
}

// TruncateDay zera o componente de hora preservando o fuso.
func TruncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
