package contracts

import "github.com/iclubstoree/iclub-financeiro/internal/domain/preferences"

type PreferencesRequest struct {
	UpcomingDays int   `json:"nDiasProximas" binding:"required,min=1"`
	PageSize     int   `json:"pageSize" binding:"required,min=1,max=100"`
	SortByDate   *bool `json:"sortByDate" binding:"required"`
}

func (r *PreferencesRequest) ToDomain() *preferences.Preferences {
	return &preferences.Preferences{
		UpcomingDays: r.UpcomingDays,
		PageSize:     r.PageSize,
		SortByDate:   *r.SortByDate,
	}
}
