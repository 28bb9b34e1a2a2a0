package catalog

import "context"

// Repository agrupa a persistência dos cinco cadastros. Cada entidade tem
// o mesmo ciclo CRUD simples, então as operações são declaradas por tipo.
type Repository interface {
	CreateStore(ctx context.Context, store *Store) error
	FindStores(ctx context.Context) ([]Store, error)
	FindStoreByID(ctx context.Context, id int) (*Store, error)
	FindStoreByName(ctx context.Context, name string) (*Store, error)
	UpdateStore(ctx context.Context, store *Store) error
	DeleteStore(ctx context.Context, id int) error

	CreateCategory(ctx context.Context, category *Category) error
	FindCategories(ctx context.Context) ([]Category, error)
	FindCategoryByID(ctx context.Context, id int) (*Category, error)
	FindCategoryByName(ctx context.Context, name string) (*Category, error)
	UpdateCategory(ctx context.Context, category *Category) error
	DeleteCategory(ctx context.Context, id int) error

	CreateCostCenter(ctx context.Context, costCenter *CostCenter) error
	FindCostCenters(ctx context.Context) ([]CostCenter, error)
	FindCostCenterByID(ctx context.Context, id int) (*CostCenter, error)
	FindCostCenterByName(ctx context.Context, name string) (*CostCenter, error)
	UpdateCostCenter(ctx context.Context, costCenter *CostCenter) error
	DeleteCostCenter(ctx context.Context, id int) error

	CreateExpenseType(ctx context.Context, expenseType *ExpenseType) error
	FindExpenseTypes(ctx context.Context) ([]ExpenseType, error)
	FindExpenseTypeByID(ctx context.Context, id int) (*ExpenseType, error)
	FindExpenseTypeByName(ctx context.Context, name string) (*ExpenseType, error)
	UpdateExpenseType(ctx context.Context, expenseType *ExpenseType) error
	DeleteExpenseType(ctx context.Context, id int) error

	CreateMember(ctx context.Context, member *Member) error
	FindMembers(ctx context.Context) ([]Member, error)
	FindMemberByID(ctx context.Context, id int) (*Member, error)
	FindMemberByEmail(ctx context.Context, email string) (*Member, error)
	UpdateMember(ctx context.Context, member *Member) error
	DeleteMember(ctx context.Context, id int) error

	CountStores(ctx context.Context) (int64, error)
}
