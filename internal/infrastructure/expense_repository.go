package infrastructure

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/iclubstoree/iclub-financeiro/internal/domain/expense"
)

type expenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) expense.Repository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(ctx context.Context, e *expense.Expense) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *expenseRepository) CreateBatch(ctx context.Context, expenses []expense.Expense) ([]expense.Expense, error) {
	if len(expenses) == 0 {
		return expenses, nil
	}
	if err := r.db.WithContext(ctx).Create(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

func (r *expenseRepository) FindByID(ctx context.Context, id int) (*expense.Expense, error) {
	var e expense.Expense
	err := r.db.WithContext(ctx).First(&e, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *expenseRepository) FindAll(ctx context.Context) ([]expense.Expense, error) {
	var expenses []expense.Expense
	if err := r.db.WithContext(ctx).Order("id").Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

func (r *expenseRepository) Update(ctx context.Context, e *expense.Expense) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *expenseRepository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&expense.Expense{}, id).Error
}
