package expense

import "context"

type Repository interface {
	Create(ctx context.Context, expense *Expense) error
	CreateBatch(ctx context.Context, expenses []Expense) ([]Expense, error)
	FindByID(ctx context.Context, id int) (*Expense, error)
	FindAll(ctx context.Context) ([]Expense, error)
	Update(ctx context.Context, expense *Expense) error
	Delete(ctx context.Context, id int) error
}
