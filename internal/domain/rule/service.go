package rule

import (
	"context"
	"strings"

	apperrors "github.com/iclubstoree/iclub-financeiro/internal/errors"
	"github.com/iclubstoree/iclub-financeiro/internal/logger"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, rule *AiRule) (*AiRule, error) {
	if err := validateRule(rule); err != nil {
		return nil, err
	}

	if rule.Priority == 0 {
		total, err := s.repo.Count(ctx)
		if err != nil {
			return nil, apperrors.FromError(err)
		}
		rule.Priority = int(total) + 1
	}

	if err := s.repo.Create(ctx, rule); err != nil {
		logger.Error().Err(err).Str("nome", rule.Name).Msg("falha ao criar regra")
		return nil, apperrors.FromError(err)
	}
	return rule, nil
}

func (s *Service) GetByID(ctx context.Context, id int) (*AiRule, error) {
	rule, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.FromError(err)
	}
	if rule == nil {
		return nil, apperrors.ErrRuleNotFound
	}
	return rule, nil
}

// List devolve todas as regras, opcionalmente filtradas por termo de busca
// sobre nome, descrição e condição.
func (s *Service) List(ctx context.Context, searchTerm string) ([]AiRule, error) {
	rules, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.FromError(err)
	}
	if searchTerm == "" {
		return rules, nil
	}

	term := strings.ToLower(searchTerm)
	filtered := make([]AiRule, 0, len(rules))
	for _, r := range rules {
		if strings.Contains(strings.ToLower(r.Name), term) ||
			strings.Contains(strings.ToLower(r.Description), term) ||
			strings.Contains(strings.ToLower(r.Condition), term) {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

func (s *Service) Update(ctx context.Context, id int, updated *AiRule) (*AiRule, error) {
	if err := validateRule(updated); err != nil {
		return nil, err
	}

	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = updated.Name
	existing.Description = updated.Description
	existing.Condition = updated.Condition
	existing.Category = updated.Category
	existing.CostCenter = updated.CostCenter
	existing.Type = updated.Type
	existing.Store = updated.Store
	existing.Active = updated.Active
	existing.Priority = updated.Priority

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, apperrors.FromError(err)
	}
	return existing, nil
}

// ToggleActive inverte o estado ativo/inativo de uma regra.
func (s *Service) ToggleActive(ctx context.Context, id int) (*AiRule, error) {
	rule, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rule.Active = !rule.Active
	if err := s.repo.Update(ctx, rule); err != nil {
		return nil, apperrors.FromError(err)
	}
	logger.Info().Int("id", rule.ID).Bool("ativo", rule.Active).Msg("regra alternada")
	return rule, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperrors.FromError(err)
	}
	return nil
}

// Seed insere as regras padrão quando a tabela está vazia.
func (s *Service) Seed(ctx context.Context) error {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return apperrors.FromError(err)
	}
	if total > 0 {
		return nil
	}

	for _, seed := range SeedRules() {
		r := seed
		if err := s.repo.Create(ctx, &r); err != nil {
			return apperrors.FromError(err)
		}
	}
	logger.Info().Msg("regras padrão cadastradas")
	return nil
}

func validateRule(rule *AiRule) error {
	fields := map[string]string{}
	if strings.TrimSpace(rule.Name) == "" {
		fields["nome"] = "Nome é obrigatório"
	}
	if strings.TrimSpace(rule.Description) == "" {
		fields["descricao"] = "Descrição é obrigatória"
	}
	if strings.TrimSpace(rule.Condition) == "" {
		fields["condicao"] = "Condição é obrigatória"
	}
	if len(fields) > 0 {
		return apperrors.NewFieldErrors(fields)
	}
	return nil
}
