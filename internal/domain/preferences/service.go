package preferences

import (
	"context"

	apperrors "github.com/iclubstoree/iclub-financeiro/internal/errors"
	"github.com/iclubstoree/iclub-financeiro/internal/logger"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get carrega as preferências salvas, caindo nos padrões quando nada foi
// salvo ainda.
func (s *Service) Get(ctx context.Context) (*Preferences, error) {
	prefs, err := s.repo.Load(ctx)
	if err != nil {
		return nil, apperrors.FromError(err)
	}
	if prefs == nil {
		defaults := Default()
		return &defaults, nil
	}
	prefs.Normalize()
	return prefs, nil
}

// Update persiste as preferências normalizadas.
func (s *Service) Update(ctx context.Context, prefs *Preferences) (*Preferences, error) {
	prefs.ID = 1
	prefs.Normalize()

	if err := s.repo.Save(ctx, prefs); err != nil {
		return nil, apperrors.FromError(err)
	}

	logger.Info().
		Int("nDiasProximas", prefs.UpcomingDays).
		Int("pageSize", prefs.PageSize).
		Bool("sortByDate", prefs.SortByDate).
		Msg("preferências atualizadas")
	return prefs, nil
}
