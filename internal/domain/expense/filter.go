package expense

import (
	"strings"
	"time"
)

// Enums do intervalo de datas pré-definido, avaliado sobre Date.
const (
	DateRangeToday      = "today"
	DateRangeYesterday  = "yesterday"
	DateRangeLast7Days  = "last7days"
	DateRangeLast30Days = "last30days"
	DateRangeThisMonth  = "thisMonth"
	DateRangeLastMonth  = "lastMonth"
	DateRangeThisYear   = "thisYear"
	DateRangeCustom     = "custom"
)

// Enums de status de pagamento.
const (
	PaymentStatusPaid    = "paid"
	PaymentStatusPending = "pending"
	PaymentStatusOverdue = "overdue"
)

// Enums de recorrência.
const (
	RecurrenceRecurring    = "recurring"
	RecurrenceNonRecurring = "non-recurring"
)

// Cards de resumo usados como filtro-atalho. Quando presente, o card
// substitui paymentStatus/recurrence e é avaliado sobre DueDate truncado
// ao dia.
const (
	CardOverdue      = "overdue"
	CardToday        = "today"
	CardUpcoming     = "upcoming"
	CardRecurring    = "recurring"
	CardNonRecurring = "non-recurring"
	CardTotal        = "total"
)

// FilterSpec descreve todos os filtros da listagem de saídas. Campos
// vazios significam "sem filtro" naquela dimensão; dimensões distintas
// são combinadas com AND e valores dentro de uma mesma dimensão com OR.
type FilterSpec struct {
	SearchTerm      string
	DateRange       string
	CustomStartDate *time.Time
	CustomEndDate   *time.Time
	Stores          []string
	Categories      []string
	CostCenters     []string
	Types           []string
	PaymentStatus   string
	Recurrence      string
	CardFilter      string
}

// Filter devolve o subconjunto de expenses que satisfaz todos os
// predicados do FilterSpec, preservando a ordem de entrada.
func Filter(expenses []Expense, spec FilterSpec, now time.Time) []Expense {
	out := make([]Expense, 0, len(expenses))
	for _, e := range expenses {
		if matches(e, spec, now) {
			out = append(out, e)
		}
	}
	return out
}

func matches(e Expense, spec FilterSpec, now time.Time) bool {
	if !matchesSearch(e, spec.SearchTerm) {
		return false
	}
	if !matchesDateRange(e, spec, now) {
		return false
	}
	if !containsOrEmpty(spec.Stores, e.Store) {
		return false
	}
	if !containsOrEmpty(spec.Categories, e.Category) {
		return false
	}
	if !containsOrEmpty(spec.CostCenters, e.CostCenter) {
		return false
	}
	if !containsOrEmpty(spec.Types, e.Type) {
		return false
	}

	if spec.CardFilter != "" {
		return matchesCard(e, spec.CardFilter, now)
	}
	if !matchesPaymentStatus(e, spec.PaymentStatus, now) {
		return false
	}
	if !matchesRecurrence(e, spec.Recurrence) {
		return false
	}
	return true
}

func matchesSearch(e Expense, term string) bool {
	if term == "" {
		return true
	}
	t := strings.ToLower(term)
	return strings.Contains(strings.ToLower(e.Description), t) ||
		strings.Contains(strings.ToLower(e.Store), t) ||
		strings.Contains(strings.ToLower(e.Category), t)
}

// matchesDateRange avalia o intervalo pré-definido (ou custom) sobre Date,
// com granularidade de dia e extremos inclusivos.
func matchesDateRange(e Expense, spec FilterSpec, now time.Time) bool {
	if spec.DateRange == "" {
		return true
	}

	day := TruncateDay(e.Date)
	today := TruncateDay(now)

	switch spec.DateRange {
	case DateRangeToday:
		return day.Equal(today)
	case DateRangeYesterday:
		return day.Equal(today.AddDate(0, 0, -1))
	case DateRangeLast7Days:
		return !day.Before(today.AddDate(0, 0, -7)) && !day.After(today)
	case DateRangeLast30Days:
		return !day.Before(today.AddDate(0, 0, -30)) && !day.After(today)
	case DateRangeThisMonth:
		return day.Year() == today.Year() && day.Month() == today.Month()
	case DateRangeLastMonth:
		lastMonth := today.AddDate(0, -1, 0)
		return day.Year() == lastMonth.Year() && day.Month() == lastMonth.Month()
	case DateRangeThisYear:
		return day.Year() == today.Year()
	case DateRangeCustom:
		if spec.CustomStartDate != nil && day.Before(TruncateDay(*spec.CustomStartDate)) {
			return false
		}
		if spec.CustomEndDate != nil && day.After(TruncateDay(*spec.CustomEndDate)) {
			return false
		}
		return true
	default:
		return true
	}
}

func matchesPaymentStatus(e Expense, status string, now time.Time) bool {
	switch status {
	case "":
		return true
	case PaymentStatusPaid:
		return e.Paid
	case PaymentStatusPending:
		return !e.Paid && !e.DueDate.Before(now)
	case PaymentStatusOverdue:
		return !e.Paid && e.DueDate.Before(now)
	default:
		return true
	}
}

func matchesRecurrence(e Expense, recurrence string) bool {
	switch recurrence {
	case "":
		return true
	case RecurrenceRecurring:
		return e.Recurring
	case RecurrenceNonRecurring:
		return !e.Recurring
	default:
		return true
	}
}

// matchesCard usa DueDate truncado ao dia para que os cards vencidas/hoje/
// próximas sejam disjuntos entre si.
func matchesCard(e Expense, card string, now time.Time) bool {
	due := TruncateDay(e.DueDate)
	today := TruncateDay(now)

	switch card {
	case CardOverdue:
		return !e.Paid && due.Before(today)
	case CardToday:
		return !e.Paid && due.Equal(today)
	case CardUpcoming:
		return !e.Paid && due.After(today)
	case CardRecurring:
		return e.Recurring
	case CardNonRecurring:
		return !e.Recurring
	case CardTotal:
		return true
	default:
		return true
	}
}

func containsOrEmpty(values []string, v string) bool {
	if len(values) == 0 {
		return true
	}
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
