package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/iclubstoree/iclub-financeiro/internal/errors"
)

type fakeCatalogRepository struct {
	stores       map[int]*Store
	categories   map[int]*Category
	costCenters  map[int]*CostCenter
	expenseTypes map[int]*ExpenseType
	members      map[int]*Member
	nextID       int
}

func newFakeCatalogRepository() *fakeCatalogRepository {
	return &fakeCatalogRepository{
		stores:       map[int]*Store{},
		categories:   map[int]*Category{},
		costCenters:  map[int]*CostCenter{},
		expenseTypes: map[int]*ExpenseType{},
		members:      map[int]*Member{},
		nextID:       1,
	}
}

func (f *fakeCatalogRepository) id() int {
	id := f.nextID
	f.nextID++
	return id
}

func (f *fakeCatalogRepository) CreateStore(_ context.Context, s *Store) error {
	s.ID = f.id()
	copied := *s
	f.stores[s.ID] = &copied
	return nil
}

func (f *fakeCatalogRepository) FindStores(_ context.Context) ([]Store, error) {
	out := make([]Store, 0, len(f.stores))
	for i := 1; i < f.nextID; i++ {
		if s, ok := f.stores[i]; ok {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeCatalogRepository) FindStoreByID(_ context.Context, id int) (*Store, error) {
	if s, ok := f.stores[id]; ok {
		copied := *s
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeCatalogRepository) FindStoreByName(_ context.Context, name string) (*Store, error) {
	for _, s := range f.stores {
		if s.Name == name {
			copied := *s
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeCatalogRepository) UpdateStore(_ context.Context, s *Store) error {
	copied := *s
	f.stores[s.ID] = &copied
	return nil
}

func (f *fakeCatalogRepository) DeleteStore(_ context.Context, id int) error {
	delete(f.stores, id)
	return nil
}

func (f *fakeCatalogRepository) CreateCategory(_ context.Context, c *Category) error {
	c.ID = f.id()
	copied := *c
	f.categories[c.ID] = &copied
	return nil
}

func (f *fakeCatalogRepository) FindCategories(_ context.Context) ([]Category, error) {
	out := make([]Category, 0, len(f.categories))
	for i := 1; i < f.nextID; i++ {
		if c, ok := f.categories[i]; ok {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCatalogRepository) FindCategoryByID(_ context.Context, id int) (*Category, error) {
	if c, ok := f.categories[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeCatalogRepository) FindCategoryByName(_ context.Context, name string) (*Category, error) {
	for _, c := range f.categories {
		if c.Name == name {
			copied := *c
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeCatalogRepository) UpdateCategory(_ context.Context, c *Category) error {
	copied := *c
	f.categories[c.ID] = &copied
	return nil
}

func (f *fakeCatalogRepository) DeleteCategory(_ context.Context, id int) error {
	delete(f.categories, id)
	return nil
}

func (f *fakeCatalogRepository) CreateCostCenter(_ context.Context, cc *CostCenter) error {
	cc.ID = f.id()
	copied := *cc
	f.costCenters[cc.ID] = &copied
	return nil
}

func (f *fakeCatalogRepository) FindCostCenters(_ context.Context) ([]CostCenter, error) {
	out := make([]CostCenter, 0, len(f.costCenters))
	for i := 1; i < f.nextID; i++ {
		if cc, ok := f.costCenters[i]; ok {
			out = append(out, *cc)
		}
	}
	return out, nil
}

func (f *fakeCatalogRepository) FindCostCenterByID(_ context.Context, id int) (*CostCenter, error) {
	if cc, ok := f.costCenters[id]; ok {
		copied := *cc
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeCatalogRepository) FindCostCenterByName(_ context.Context, name string) (*CostCenter, error) {
	for _, cc := range f.costCenters {
		if cc.Name == name {
			copied := *cc
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeCatalogRepository) UpdateCostCenter(_ context.Context, cc *CostCenter) error {
	copied := *cc
	f.costCenters[cc.ID] = &copied
	return nil
}

func (f *fakeCatalogRepository) DeleteCostCenter(_ context.Context, id int) error {
	delete(f.costCenters, id)
	return nil
}

func (f *fakeCatalogRepository) CreateExpenseType(_ context.Context, et *ExpenseType) error {
	et.ID = f.id()
	copied := *et
	f.expenseTypes[et.ID] = &copied
	return nil
}

func (f *fakeCatalogRepository) FindExpenseTypes(_ context.Context) ([]ExpenseType, error) {
	out := make([]ExpenseType, 0, len(f.expenseTypes))
	for i := 1; i < f.nextID; i++ {
		if et, ok := f.expenseTypes[i]; ok {
			out = append(out, *et)
		}
	}
	return out, nil
}

func (f *fakeCatalogRepository) FindExpenseTypeByID(_ context.Context, id int) (*ExpenseType, error) {
	if et, ok := f.expenseTypes[id]; ok {
		copied := *et
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeCatalogRepository) FindExpenseTypeByName(_ context.Context, name string) (*ExpenseType, error) {
	for _, et := range f.expenseTypes {
		if et.Name == name {
			copied := *et
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeCatalogRepository) UpdateExpenseType(_ context.Context, et *ExpenseType) error {
	copied := *et
	f.expenseTypes[et.ID] = &copied
	return nil
}

func (f *fakeCatalogRepository) DeleteExpenseType(_ context.Context, id int) error {
	delete(f.expenseTypes, id)
	return nil
}

func (f *fakeCatalogRepository) CreateMember(_ context.Context, m *Member) error {
	m.ID = f.id()
	copied := *m
	f.members[m.ID] = &copied
	return nil
}

func (f *fakeCatalogRepository) FindMembers(_ context.Context) ([]Member, error) {
	out := make([]Member, 0, len(f.members))
	for i := 1; i < f.nextID; i++ {
		if m, ok := f.members[i]; ok {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeCatalogRepository) FindMemberByID(_ context.Context, id int) (*Member, error) {
	if m, ok := f.members[id]; ok {
		copied := *m
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeCatalogRepository) FindMemberByEmail(_ context.Context, email string) (*Member, error) {
	for _, m := range f.members {
		if m.Email == email {
			copied := *m
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeCatalogRepository) UpdateMember(_ context.Context, m *Member) error {
	copied := *m
	f.members[m.ID] = &copied
	return nil
}

func (f *fakeCatalogRepository) DeleteMember(_ context.Context, id int) error {
	delete(f.members, id)
	return nil
}

func (f *fakeCatalogRepository) CountStores(_ context.Context) (int64, error) {
	return int64(len(f.stores)), nil
}

func TestSeedPopulatesAllCatalogs(t *testing.T) {
	repo := newFakeCatalogRepository()
	svc := NewService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Seed(ctx))

	stores, _ := svc.ListStores(ctx)
	assert.Len(t, stores, 4)

	categories, _ := svc.ListCategories(ctx)
	assert.Len(t, categories, 5)

	costCenters, _ := svc.ListCostCenters(ctx)
	assert.Len(t, costCenters, 5)

	types, _ := svc.ListExpenseTypes(ctx)
	assert.Len(t, types, 4)

	members, _ := svc.ListMembers(ctx)
	assert.Len(t, members, 4)

	// segunda chamada não duplica
	require.NoError(t, svc.Seed(ctx))
	stores, _ = svc.ListStores(ctx)
	assert.Len(t, stores, 4)
}

func TestCreateStoreRejectsDuplicateName(t *testing.T) {
	svc := NewService(newFakeCatalogRepository())
	ctx := context.Background()

	_, err := svc.CreateStore(ctx, &Store{Name: "Loja Nova"})
	require.NoError(t, err)

	_, err = svc.CreateStore(ctx, &Store{Name: "Loja Nova"})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 409, appErr.StatusCode)
}

func TestCreateCategoryRequiresName(t *testing.T) {
	svc := NewService(newFakeCatalogRepository())

	_, err := svc.CreateCategory(context.Background(), &Category{Name: "   "})
	require.Error(t, err)
}

func TestCreateMemberRejectsDuplicateEmail(t *testing.T) {
	svc := NewService(newFakeCatalogRepository())
	ctx := context.Background()

	_, err := svc.CreateMember(ctx, &Member{Name: "Ana", Email: "ana@iclub.com"})
	require.NoError(t, err)

	_, err = svc.CreateMember(ctx, &Member{Name: "Outra Ana", Email: "ana@iclub.com"})
	require.Error(t, err)
}

func TestUpdateMissingCostCenter(t *testing.T) {
	svc := NewService(newFakeCatalogRepository())

	_, err := svc.UpdateCostCenter(context.Background(), 10, &CostCenter{Name: "Novo"})
	require.ErrorIs(t, err, apperrors.ErrCostCenterNotFound)
}

func TestDeleteExpenseType(t *testing.T) {
	svc := NewService(newFakeCatalogRepository())
	ctx := context.Background()

	created, err := svc.CreateExpenseType(ctx, &ExpenseType{Name: "Sazonal"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteExpenseType(ctx, created.ID))
	require.Error(t, svc.DeleteExpenseType(ctx, created.ID))
}
