package infrastructure

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/iclubstoree/iclub-financeiro/internal/domain/preferences"
)

type preferencesRepository struct {
	db *gorm.DB
}

func NewPreferencesRepository(db *gorm.DB) preferences.Repository {
	return &preferencesRepository{db: db}
}

func (r *preferencesRepository) Load(ctx context.Context) (*preferences.Preferences, error) {
	var prefs preferences.Preferences
	err := r.db.WithContext(ctx).First(&prefs, 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &prefs, nil
}

func (r *preferencesRepository) Save(ctx context.Context, prefs *preferences.Preferences) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(prefs).Error
}
