package expense

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	apperrors "github.com/iclubstoree/iclub-financeiro/internal/errors"
	"github.com/iclubstoree/iclub-financeiro/internal/logger"
	"github.com/iclubstoree/iclub-financeiro/internal/pkg"
)

type Service struct {
	repo   Repository
	engine *Engine
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, engine: NewEngine()}
}

// Create valida e persiste uma nova saída, aplicando os valores padrão de
// categoria, centro de custo e tipo quando não informados.
func (s *Service) Create(ctx context.Context, e *Expense) (*Expense, error) {
	applyDefaults(e)
	if err := validateExpense(e); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, e); err != nil {
		logger.Error().Err(err).Str("descricao", e.Description).Msg("falha ao criar saída")
		return nil, apperrors.FromError(err)
	}

	logger.Info().Int("id", e.ID).Str("origem", e.Origin).Msg("saída criada")
	return e, nil
}

// CreateBatch persiste um lote já validado (importação ou confirmação de
// chat). Nunca comete parcialmente: o chamador só envia linhas válidas.
func (s *Service) CreateBatch(ctx context.Context, expenses []Expense) ([]Expense, error) {
	for i := range expenses {
		applyDefaults(&expenses[i])
		if err := validateExpense(&expenses[i]); err != nil {
			return nil, err
		}
	}

	created, err := s.repo.CreateBatch(ctx, expenses)
	if err != nil {
		return nil, apperrors.FromError(err)
	}
	logger.Info().Int("quantidade", len(created)).Msg("lote de saídas criado")
	return created, nil
}

func (s *Service) GetByID(ctx context.Context, id int) (*Expense, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.FromError(err)
	}
	if e == nil {
		return nil, apperrors.ErrExpenseNotFound
	}
	return e, nil
}

// Query carrega a coleção completa e delega ao engine o filtro, a
// ordenação e a paginação em memória.
func (s *Service) Query(ctx context.Context, filter FilterSpec, sortSpec SortSpec, pagination *pkg.PaginationParams) (*View, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.FromError(err)
	}
	return s.engine.Query(all, filter, sortSpec, pagination), nil
}

// ListFiltered devolve o conjunto filtrado e ordenado completo, sem
// janela de página. Usado pela exportação.
func (s *Service) ListFiltered(ctx context.Context, filter FilterSpec, sortSpec SortSpec) ([]Expense, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.FromError(err)
	}
	return Sort(Filter(all, filter, s.engine.now()), sortSpec), nil
}

func (s *Service) Update(ctx context.Context, id int, updated *Expense) (*Expense, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyDefaults(updated)
	if err := validateExpense(updated); err != nil {
		return nil, err
	}

	existing.Date = updated.Date
	existing.DueDate = updated.DueDate
	existing.Store = updated.Store
	existing.Category = updated.Category
	existing.CostCenter = updated.CostCenter
	existing.Type = updated.Type
	existing.Description = updated.Description
	existing.Value = updated.Value
	existing.Paid = updated.Paid
	existing.Recurring = updated.Recurring
	existing.Recurrence = updated.Recurrence
	existing.Notes = updated.Notes

	if !existing.Recurring {
		existing.Recurrence = nil
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, apperrors.FromError(err)
	}
	return existing, nil
}

// MarkPaid marca a saída como paga. Operação idempotente.
func (s *Service) MarkPaid(ctx context.Context, id int) (*Expense, error) {
	e, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	e.Paid = true
	if err := s.repo.Update(ctx, e); err != nil {
		return nil, apperrors.FromError(err)
	}
	logger.Info().Int("id", id).Msg("saída marcada como paga")
	return e, nil
}

// Delete remove uma saída. O flag deleteFutureRecurrences é aceito para
// saídas recorrentes, mas remove apenas o registro indicado: instâncias
// futuras não são materializadas como linhas próprias.
func (s *Service) Delete(ctx context.Context, id int, deleteFutureRecurrences bool) error {
	e, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if deleteFutureRecurrences && e.Recurring {
		logger.Debug().Int("id", id).Msg("remoção de recorrências futuras solicitada; removendo apenas o registro")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return apperrors.FromError(err)
	}
	logger.Info().Int("id", id).Msg("saída removida")
	return nil
}

func applyDefaults(e *Expense) {
	if e.Category == "" {
		e.Category = DefaultCategory
	}
	if e.CostCenter == "" {
		e.CostCenter = DefaultCostCenter
	}
	if e.Type == "" {
		e.Type = DefaultType
	}
	if e.Origin == "" {
		e.Origin = OriginForm
	}
	if e.DueDate.IsZero() && !e.Date.IsZero() {
		e.DueDate = e.Date
	}
	if e.Date.IsZero() && !e.DueDate.IsZero() {
		e.Date = e.DueDate
	}
}

func validateExpense(e *Expense) error {
	fields := map[string]string{}
	if strings.TrimSpace(e.Description) == "" {
		fields["description"] = "Descrição é obrigatória"
	}
	if strings.TrimSpace(e.Store) == "" {
		fields["store"] = "Loja é obrigatória"
	}
	if e.Value.LessThanOrEqual(decimal.Zero) {
		fields["value"] = "Valor deve ser maior que zero"
	}
	if e.DueDate.IsZero() {
		fields["dueDate"] = "Data de vencimento é obrigatória"
	}
	if e.Recurrence != nil && !e.Recurring {
		fields["recurrence"] = "Recorrência só pode ser definida em saídas recorrentes"
	}
	if len(fields) > 0 {
		return apperrors.NewFieldErrors(fields)
	}
	return nil
}
