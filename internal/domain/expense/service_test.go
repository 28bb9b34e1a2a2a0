package expense

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/iclubstoree/iclub-financeiro/internal/errors"
)

type fakeExpenseRepository struct {
	expenses map[int]*Expense
	nextID   int
}

func newFakeExpenseRepository() *fakeExpenseRepository {
	return &fakeExpenseRepository{expenses: make(map[int]*Expense), nextID: 1}
}

func (f *fakeExpenseRepository) Create(_ context.Context, e *Expense) error {
	e.ID = f.nextID
	f.nextID++
	copied := *e
	f.expenses[e.ID] = &copied
	return nil
}

func (f *fakeExpenseRepository) CreateBatch(ctx context.Context, expenses []Expense) ([]Expense, error) {
	out := make([]Expense, 0, len(expenses))
	for i := range expenses {
		if err := f.Create(ctx, &expenses[i]); err != nil {
			return nil, err
		}
		out = append(out, expenses[i])
	}
	return out, nil
}

func (f *fakeExpenseRepository) FindByID(_ context.Context, id int) (*Expense, error) {
	e, ok := f.expenses[id]
	if !ok {
		return nil, nil
	}
	copied := *e
	return &copied, nil
}

func (f *fakeExpenseRepository) FindAll(_ context.Context) ([]Expense, error) {
	out := make([]Expense, 0, len(f.expenses))
	for i := 1; i < f.nextID; i++ {
		if e, ok := f.expenses[i]; ok {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeExpenseRepository) Update(_ context.Context, e *Expense) error {
	copied := *e
	f.expenses[e.ID] = &copied
	return nil
}

func (f *fakeExpenseRepository) Delete(_ context.Context, id int) error {
	delete(f.expenses, id)
	return nil
}

func validExpense() *Expense {
	return &Expense{
		Date:        day(0),
		DueDate:     day(2),
		Store:       "loja-centro",
		Description: "Compra de material",
		Value:       decimal.RequireFromString("150.00"),
	}
}

func TestServiceCreateAppliesDefaults(t *testing.T) {
	svc := NewService(newFakeExpenseRepository())

	created, err := svc.Create(context.Background(), validExpense())
	require.NoError(t, err)

	assert.Equal(t, DefaultCategory, created.Category)
	assert.Equal(t, DefaultCostCenter, created.CostCenter)
	assert.Equal(t, DefaultType, created.Type)
	assert.Equal(t, OriginForm, created.Origin)
	assert.Equal(t, 1, created.ID)
}

func TestServiceCreateValidatesRequiredFields(t *testing.T) {
	svc := NewService(newFakeExpenseRepository())

	_, err := svc.Create(context.Background(), &Expense{Description: "  ", Value: decimal.Zero})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)

	fields, ok := appErr.Details["fields"].(map[string]string)
	require.True(t, ok)
	assert.Contains(t, fields, "description")
	assert.Contains(t, fields, "store")
	assert.Contains(t, fields, "value")
	assert.Contains(t, fields, "dueDate")
}

func TestServiceCreateRejectsRecurrenceWithoutRecurring(t *testing.T) {
	svc := NewService(newFakeExpenseRepository())

	e := validExpense()
	monthly := "mensal"
	e.Recurrence = &monthly

	_, err := svc.Create(context.Background(), e)
	require.Error(t, err)
}

func TestServiceCreateMirrorsMissingDate(t *testing.T) {
	svc := NewService(newFakeExpenseRepository())

	e := validExpense()
	e.Date = time.Time{}

	created, err := svc.Create(context.Background(), e)
	require.NoError(t, err)
	assert.True(t, created.Date.Equal(created.DueDate))
}

func TestServiceUpdateClearsRecurrenceWhenNotRecurring(t *testing.T) {
	repo := newFakeExpenseRepository()
	svc := NewService(repo)
	ctx := context.Background()

	e := validExpense()
	e.Recurring = true
	monthly := "mensal"
	e.Recurrence = &monthly
	created, err := svc.Create(ctx, e)
	require.NoError(t, err)

	updated := validExpense()
	updated.Recurring = false
	result, err := svc.Update(ctx, created.ID, updated)
	require.NoError(t, err)
	assert.Nil(t, result.Recurrence)
}

func TestServiceMarkPaid(t *testing.T) {
	svc := NewService(newFakeExpenseRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, validExpense())
	require.NoError(t, err)
	require.False(t, created.Paid)

	paid, err := svc.MarkPaid(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, paid.Paid)

	// idempotente
	paid, err = svc.MarkPaid(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, paid.Paid)
}

func TestServiceDeleteRemovesSingleRow(t *testing.T) {
	repo := newFakeExpenseRepository()
	svc := NewService(repo)
	ctx := context.Background()

	e := validExpense()
	e.Recurring = true
	created, err := svc.Create(ctx, e)
	require.NoError(t, err)

	other, err := svc.Create(ctx, validExpense())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID, true))

	_, err = svc.GetByID(ctx, created.ID)
	require.Error(t, err)

	// o flag de recorrências futuras nunca alcança outras linhas
	_, err = svc.GetByID(ctx, other.ID)
	require.NoError(t, err)
}

func TestServiceDeleteMissing(t *testing.T) {
	svc := NewService(newFakeExpenseRepository())

	err := svc.Delete(context.Background(), 42, false)
	require.ErrorIs(t, err, apperrors.ErrExpenseNotFound)
}

func TestServiceCreateBatchAllOrNothing(t *testing.T) {
	repo := newFakeExpenseRepository()
	svc := NewService(repo)
	ctx := context.Background()

	invalid := validExpense()
	invalid.Value = decimal.Zero

	_, err := svc.CreateBatch(ctx, []Expense{*validExpense(), *invalid})
	require.Error(t, err)
	assert.Empty(t, repo.expenses)
}
