package rule

import "context"

type Repository interface {
	Create(ctx context.Context, rule *AiRule) error
	FindByID(ctx context.Context, id int) (*AiRule, error)
	FindAll(ctx context.Context) ([]AiRule, error)
	Update(ctx context.Context, rule *AiRule) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int64, error)
}
