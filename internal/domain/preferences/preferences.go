package preferences

import "time"

// Valores padrão das preferências do usuário.
const (
	DefaultUpcomingDays = 7
	DefaultPageSize     = 10
	DefaultSortByDate   = true
)

// Preferences guarda as preferências de exibição da listagem: janela de
// dias considerada "próxima", tamanho de página e ordenação padrão por
// data. Registro único, sem multiusuário.
type Preferences struct {
	ID           int       `json:"-" gorm:"primaryKey"`
	UpcomingDays int       `json:"nDiasProximas" gorm:"column:upcoming_days;default:7"`
	PageSize     int       `json:"pageSize" gorm:"column:page_size;default:10"`
	SortByDate   bool      `json:"sortByDate" gorm:"column:sort_by_date;default:true"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (Preferences) TableName() string { return "preferences" }

// Default devolve as preferências iniciais.
func Default() Preferences {
	return Preferences{
		ID:           1,
		UpcomingDays: DefaultUpcomingDays,
		PageSize:     DefaultPageSize,
		SortByDate:   DefaultSortByDate,
	}
}

// Normalize repõe os padrões em valores fora de faixa.
func (p *Preferences) Normalize() {
	if p.UpcomingDays < 1 {
		p.UpcomingDays = DefaultUpcomingDays
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
}
