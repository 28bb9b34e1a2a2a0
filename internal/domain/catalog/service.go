package catalog

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

// Seed popula os cadastros padrão quando o banco está vazio. Usa a
// contagem de lojas como sentinela do primeiro boot.
func (s *Service) Seed(ctx context.Context) error {
	total, err := s.repo.CountStores(ctx)
	if err != nil {
		return apperrors.FromError(err)
	}
	if total > 0 {
		return nil
	}

	for _, store := range SeedStores() {
		st := store
		if err := s.repo.CreateStore(ctx, &st); err != nil {
			return apperrors.FromError(err)
		}
	}
	for _, category := range SeedCategories() {
		c := category
		if err := s.repo.CreateCategory(ctx, &c); err != nil {
			return apperrors.FromError(err)
		}
	}
	for _, costCenter := range SeedCostCenters() {
		cc := costCenter
		if err := s.repo.CreateCostCenter(ctx, &cc); err != nil {
			return apperrors.FromError(err)
		}
	}
	for _, expenseType := range SeedExpenseTypes() {
		et := expenseType
		if err := s.repo.CreateExpenseType(ctx, &et); err != nil {
			return apperrors.FromError(err)
		}
	}
	for _, member := range SeedMembers() {
		m := member
		if err := s.repo.CreateMember(ctx, &m); err != nil {
			return apperrors.FromError(err)
		}
	}

	logger.Info().Msg("cadastros padrão criados")
	return nil
}

func (s *Service) CreateStore(ctx context.Context, store *Store) (*Store, error) {
	if strings.TrimSpace(store.Name) == "" {
		return nil, apperrors.NewValidationError("nome", "Nome da loja é obrigatório")
	}

	existing, err := s.repo.FindStoreByName(ctx, store.Name)
	if err != nil {
		return nil, apperrors.FromError(err)
	}
	if existing != nil {
		return nil, apperrors.NewConflictError("Loja")
	}

	if err := s.repo.CreateStore(ctx, store); err != nil {
		return nil, apperrors.FromError(err)
	}
	return store, nil
}

func (s *Service) ListStores(ctx context.Context) ([]Store, error) {
	stores, err := s.repo.FindStores(ctx)
	if err != nil {
		return nil, apperrors.FromError(err)
	}
	return stores, nil
}

func (s *Service) UpdateStore(ctx context.Context, id int, updated *Store) (*Store, error) {
	store, err := s.repo.FindStoreByID(ctx, id)
	if err != nil {
		return nil, apperrors.FromError(err)
	}
	if store == nil {
		return nil, apperrors.ErrStoreNotFound
	}

	store.Name = updated.Name
	store.Address = updated.Address
	store.Phone = updated.Phone
	store.Email = updated.Email

	if err := s.repo.UpdateStore(ctx, store); err != nil {
		return nil, apperrors.FromError(err)
	}
	return store, nil
}

func (s *Service) DeleteStore(ctx context.Context, id int) error {
	store, err := s.repo.FindStoreByID(ctx, id)
	if err != nil {
		return apperrors.FromError(err)
	}
	if store == nil {
		return apperrors.ErrStoreNotFound
	}
	return apperrors.FromErrorOrNil(s.repo.DeleteStore(ctx, id))
}

func (s *Service) CreateCategory(ctx context.Context, category *Category) (*Category, error) {
	if strings.TrimSpace(category.Name) == "" {
		return nil, apperrors.NewValidationError("nome", "Nome da categoria é obrigatório")
	}

	existing, err := s.repo.FindCategoryByName(ctx, category.Name)
	if err != nil {
		return nil, apperrors.FromError(err)
	}
	if existing != nil {
		return nil, apperrors.NewConflictError("Categoria")
	}

	if err := s.repo.CreateCategory(ctx, category); err != nil {
		return nil, apperrors.FromError(err)
	}
	return category, nil
}

func (s *Service) ListCategories(ctx context.Context) ([]Category, error) {
	categories, err := s.repo.FindCategories(ctx)
	if err != nil {
		return nil, apperrors.FromError(err)
	}
	return categories, nil
}

func (s *Service) UpdateCategory(ctx context.Context, id int, updated *Category) (*Category, error) {
	category, err := s.repo.FindCategoryByID(ctx, id)
	if err != nil {
		return nil, apperrors.FromError(err)
	}
	if category == nil {
		return nil, apperrors.ErrCategoryNotFound
	}

	category.Name = updated.Name
	category.Description = updated.Description
	category.Color = updated.Color

	if err := s.repo.UpdateCategory(ctx, category); err != nil {
		return nil, apperrors.FromError(err)
	}
	return category, nil
}

func (s *Service) DeleteCategory(ctx context.Context, id int) error {
	category, err := s.repo.FindCategoryByID(ctx, id)
	if err != nil {
		return apperrors.FromError(err)
	}
	if category == nil {
		return apperrors.ErrCategoryNotFound
	}
	return apperrors.FromErrorOrNil(s.repo.DeleteCategory(ctx, id))
}

func (s *Service) CreateCostCenter(ctx context.Context, costCenter *CostCenter) (*CostCenter, error) {
	if strings.TrimSpace(costCenter.Name) == "" {
		return nil, apperrors.NewValidationError("nome", "Nome do centro de custo é obrigatório")
	}

	existing, err := s.repo.FindCostCenterByName(ctx, costCenter.Name)
	if err != nil {
		return nil, apperrors.FromError(err)
	}
	if existing != nil {
		return nil, apperrors.NewConflictError("Centro de custo")
	}

	if err := s.repo.CreateCostCenter(ctx, costCenter); err != nil {
		return nil, apperrors.FromError(err)
	}
	return costCenter, nil
}

func (s *Service) ListCostCenters(ctx context.Context) ([]CostCenter, error) {
	costCenters, err := s.repo.FindCostCenters(ctx)
	if err != nil {
		return nil, apperrors.FromError(err)
	}
	return costCenters, nil
}

func (s *Service) UpdateCostCenter(ctx context.Context, id int, updated *CostCenter) (*CostCenter, error) {
	costCenter, err := s.repo.FindCostCenterByID(ctx, id)
	if err != nil {
		return nil, apperrors.FromError(err)
	}
	if costCenter == nil {
		return nil, apperrors.ErrCostCenterNotFound
	}

	costCenter.Name = updated.Name
	costCenter.Description = updated.Description
	costCenter.Code = updated.Code

	if err := s.repo.UpdateCostCenter(ctx, costCenter); err != nil {
		return nil, apperrors.FromError(err)
	}
	return costCenter, nil
}

func (s *Service) DeleteCostCenter(ctx context.Context, id int) error {
	costCenter, err := s.repo.FindCostCenterByID(ctx, id)
	if err != nil {
		return apperrors.FromError(err)
	}
	if costCenter == nil {
		return apperrors.ErrCostCenterNotFound
	}
	return apperrors.FromErrorOrNil(s.repo.DeleteCostCenter(ctx, id))
}

func (s *Service) CreateExpenseType(ctx context.Context, expenseType *ExpenseType) (*ExpenseType, error) {
	if strings.TrimSpace(expenseType.Name) == "" {
		return nil, apperrors.NewValidationError("nome", "Nome do tipo é obrigatório")
	}

	existing, err := s.repo.FindExpenseTypeByName(ctx, expenseType.Name)
	if err != nil {
		return nil, apperrors.FromError(err)
	}
	if existing != nil {
		return nil, apperrors.NewConflictError("Tipo de despesa")
	}

	if err := s.repo.CreateExpenseType(ctx, expenseType); err != nil {
		return nil, apperrors.FromError(err)
	}
	return expenseType, nil
}

func (s *Service) ListExpenseTypes(ctx context.Context) ([]ExpenseType, error) {
	types, err := s.repo.FindExpenseTypes(ctx)
	if err != nil {
		return nil, apperrors.FromError(err)
	}
	return types, nil
}

func (s *Service) UpdateExpenseType(ctx context.Context, id int, updated *ExpenseType) (*ExpenseType, error) {
	expenseType, err := s.repo.FindExpenseTypeByID(ctx, id)
	if err != nil {
		return nil, apperrors.FromError(err)
	}
	if expenseType == nil {
		return nil, apperrors.ErrTypeNotFound
	}

	expenseType.Name = updated.Name
	expenseType.Description = updated.Description
	expenseType.Recurring = updated.Recurring

	if err := s.repo.UpdateExpenseType(ctx, expenseType); err != nil {
		return nil, apperrors.FromError(err)
	}
	return expenseType, nil
}

func (s *Service) DeleteExpenseType(ctx context.Context, id int) error {
	expenseType, err := s.repo.FindExpenseTypeByID(ctx, id)
	if err != nil {
		return apperrors.FromError(err)
	}
	if expenseType == nil {
		return apperrors.ErrTypeNotFound
	}
	return apperrors.FromErrorOrNil(s.repo.DeleteExpenseType(ctx, id))
}

func (s *Service) CreateMember(ctx context.Context, member *Member) (*Member, error) {
	fields := map[string]string{}
	if strings.TrimSpace(member.Name) == "" {
		fields["nome"] = "Nome é obrigatório"
	}
	if strings.TrimSpace(member.Email) == "" {
		fields["email"] = "Email é obrigatório"
	}
	if len(fields) > 0 {
		return nil, apperrors.NewFieldErrors(fields)
	}

	existing, err := s.repo.FindMemberByEmail(ctx, member.Email)
	if err != nil {
		return nil, apperrors.FromError(err)
	}
	if existing != nil {
		return nil, apperrors.NewConflictError("Usuário")
	}

	if err := s.repo.CreateMember(ctx, member); err != nil {
		return nil, apperrors.FromError(err)
	}
	return member, nil
}

func (s *Service) ListMembers(ctx context.Context) ([]Member, error) {
	members, err := s.repo.FindMembers(ctx)
	if err != nil {
		return nil, apperrors.FromError(err)
	}
	return members, nil
}

func (s *Service) UpdateMember(ctx context.Context, id int, updated *Member) (*Member, error) {
	member, err := s.repo.FindMemberByID(ctx, id)
	if err != nil {
		return nil, apperrors.FromError(err)
	}
	if member == nil {
		return nil, apperrors.ErrMemberNotFound
	}

	member.Name = updated.Name
	member.Email = updated.Email
	member.Role = updated.Role
	member.Active = updated.Active

	if err := s.repo.UpdateMember(ctx, member); err != nil {
		return nil, apperrors.FromError(err)
	}
	return member, nil
}

func (s *Service) DeleteMember(ctx context.Context, id int) error {
	member, err := s.repo.FindMemberByID(ctx, id)
	if err != nil {
		return apperrors.FromError(err)
	}
	if member == nil {
		return apperrors.ErrMemberNotFound
	}
	return apperrors.FromErrorOrNil(s.repo.DeleteMember(ctx, id))
}
