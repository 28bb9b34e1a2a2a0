package infrastructure

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/iclubstoree/iclub-financeiro/internal/domain/catalog"
)

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) catalog.Repository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) CreateStore(ctx context.Context, store *catalog.Store) error {
	return r.db.WithContext(ctx).Create(store).Error
}

func (r *catalogRepository) FindStores(ctx context.Context) ([]catalog.Store, error) {
	var stores []catalog.Store
	if err := r.db.WithContext(ctx).Order("id").Find(&stores).Error; err != nil {
		return nil, err
	}
	return stores, nil
}

func (r *catalogRepository) FindStoreByID(ctx context.Context, id int) (*catalog.Store, error) {
	var store catalog.Store
	err := r.db.WithContext(ctx).First(&store, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *catalogRepository) FindStoreByName(ctx context.Context, name string) (*catalog.Store, error) {
	var store catalog.Store
	err := r.db.WithContext(ctx).Where("nome = ?", name).First(&store).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *catalogRepository) UpdateStore(ctx context.Context, store *catalog.Store) error {
	return r.db.WithContext(ctx).Save(store).Error
}

func (r *catalogRepository) DeleteStore(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&catalog.Store{}, id).Error
}

func (r *catalogRepository) CreateCategory(ctx context.Context, category *catalog.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *catalogRepository) FindCategories(ctx context.Context) ([]catalog.Category, error) {
	var categories []catalog.Category
	if err := r.db.WithContext(ctx).Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *catalogRepository) FindCategoryByID(ctx context.Context, id int) (*catalog.Category, error) {
	var category catalog.Category
	err := r.db.WithContext(ctx).First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *catalogRepository) FindCategoryByName(ctx context.Context, name string) (*catalog.Category, error) {
	var category catalog.Category
	err := r.db.WithContext(ctx).Where("nome = ?", name).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *catalogRepository) UpdateCategory(ctx context.Context, category *catalog.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *catalogRepository) DeleteCategory(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&catalog.Category{}, id).Error
}

func (r *catalogRepository) CreateCostCenter(ctx context.Context, costCenter *catalog.CostCenter) error {
	return r.db.WithContext(ctx).Create(costCenter).Error
}

func (r *catalogRepository) FindCostCenters(ctx context.Context) ([]catalog.CostCenter, error) {
	var costCenters []catalog.CostCenter
	if err := r.db.WithContext(ctx).Order("id").Find(&costCenters).Error; err != nil {
		return nil, err
	}
	return costCenters, nil
}

func (r *catalogRepository) FindCostCenterByID(ctx context.Context, id int) (*catalog.CostCenter, error) {
	var costCenter catalog.CostCenter
	err := r.db.WithContext(ctx).First(&costCenter, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &costCenter, nil
}

func (r *catalogRepository) FindCostCenterByName(ctx context.Context, name string) (*catalog.CostCenter, error) {
	var costCenter catalog.CostCenter
	err := r.db.WithContext(ctx).Where("nome = ?", name).First(&costCenter).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &costCenter, nil
}

func (r *catalogRepository) UpdateCostCenter(ctx context.Context, costCenter *catalog.CostCenter) error {
	return r.db.WithContext(ctx).Save(costCenter).Error
}

func (r *catalogRepository) DeleteCostCenter(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&catalog.CostCenter{}, id).Error
}

func (r *catalogRepository) CreateExpenseType(ctx context.Context, expenseType *catalog.ExpenseType) error {
	return r.db.WithContext(ctx).Create(expenseType).Error
}

func (r *catalogRepository) FindExpenseTypes(ctx context.Context) ([]catalog.ExpenseType, error) {
	var types []catalog.ExpenseType
	if err := r.db.WithContext(ctx).Order("id").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

func (r *catalogRepository) FindExpenseTypeByID(ctx context.Context, id int) (*catalog.ExpenseType, error) {
	var expenseType catalog.ExpenseType
	err := r.db.WithContext(ctx).First(&expenseType, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &expenseType, nil
}

func (r *catalogRepository) FindExpenseTypeByName(ctx context.Context, name string) (*catalog.ExpenseType, error) {
	var expenseType catalog.ExpenseType
	err := r.db.WithContext(ctx).Where("nome = ?", name).First(&expenseType).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &expenseType, nil
}

func (r *catalogRepository) UpdateExpenseType(ctx context.Context, expenseType *catalog.ExpenseType) error {
	return r.db.WithContext(ctx).Save(expenseType).Error
}

func (r *catalogRepository) DeleteExpenseType(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&catalog.ExpenseType{}, id).Error
}

func (r *catalogRepository) CreateMember(ctx context.Context, member *catalog.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *catalogRepository) FindMembers(ctx context.Context) ([]catalog.Member, error) {
	var members []catalog.Member
	if err := r.db.WithContext(ctx).Order("id").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *catalogRepository) FindMemberByID(ctx context.Context, id int) (*catalog.Member, error) {
	var member catalog.Member
	err := r.db.WithContext(ctx).First(&member, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *catalogRepository) FindMemberByEmail(ctx context.Context, email string) (*catalog.Member, error) {
	var member catalog.Member
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *catalogRepository) UpdateMember(ctx context.Context, member *catalog.Member) error {
	return r.db.WithContext(ctx).Save(member).Error
}

func (r *catalogRepository) DeleteMember(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&catalog.Member{}, id).Error
}

func (r *catalogRepository) CountStores(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&catalog.Store{}).Count(&total).Error
	return total, err
}
