package expense

import (
	"sort"
	"strings"
)

// Campos ordenáveis.
const (
	SortByDate       = "date"
	SortByDueDate    = "dueDate"
	SortByStore      = "store"
	SortByCategory   = "category"
	SortByValue      = "value"
	SortByPaid       = "paid"
	SortAscending    = "asc"
	SortDescending   = "desc"
	defaultSortField = SortByDueDate
)

// SortSpec é o par campo/direção ativo na listagem.
type SortSpec struct {
	Field     string
	Direction string
}

func (s SortSpec) normalized() SortSpec {
	if s.Field == "" {
		s.Field = defaultSortField
	}
	if s.Direction != SortAscending && s.Direction != SortDescending {
		s.Direction = SortDescending
	}
	return s
}

// Sort ordena uma cópia do slice de forma estável. Campos texto comparam
// sem diferenciar maiúsculas; paid compara como 0/1; datas comparam como
// instantes. Empate em dueDate desempata por date na mesma direção, e
// vice-versa; demais campos mantêm a ordem de inserção (sort estável).
func Sort(expenses []Expense, spec SortSpec) []Expense {
	spec = spec.normalized()

	out := make([]Expense, len(expenses))
	copy(out, expenses)

	sort.SliceStable(out, func(i, j int) bool {
		cmp := compareField(out[i], out[j], spec.Field)
		if cmp == 0 {
			switch spec.Field {
			case SortByDueDate:
				cmp = compareField(out[i], out[j], SortByDate)
			case SortByDate:
				cmp = compareField(out[i], out[j], SortByDueDate)
			}
		}
		if spec.Direction == SortDescending {
			return cmp > 0
		}
		return cmp < 0
	})
	return out
}

func compareField(a, b Expense, field string) int {
	switch field {
	case SortByDate:
		return a.Date.Compare(b.Date)
	case SortByDueDate:
		return a.DueDate.Compare(b.DueDate)
	case SortByStore:
		return compareFold(a.Store, b.Store)
	case SortByCategory:
		return compareFold(a.Category, b.Category)
	case SortByValue:
		return a.Value.Cmp(b.Value)
	case SortByPaid:
		return boolToInt(a.Paid) - boolToInt(b.Paid)
	default:
		return a.DueDate.Compare(b.DueDate)
	}
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
