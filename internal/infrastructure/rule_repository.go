package infrastructure

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/iclubstoree/iclub-financeiro/internal/domain/rule"
)

type ruleRepository struct {
	db *gorm.DB
}

func NewRuleRepository(db *gorm.DB) rule.Repository {
	return &ruleRepository{db: db}
}

func (r *ruleRepository) Create(ctx context.Context, aiRule *rule.AiRule) error {
	return r.db.WithContext(ctx).Create(aiRule).Error
}

func (r *ruleRepository) FindByID(ctx context.Context, id int) (*rule.AiRule, error) {
	var aiRule rule.AiRule
	err := r.db.WithContext(ctx).First(&aiRule, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &aiRule, nil
}

func (r *ruleRepository) FindAll(ctx context.Context) ([]rule.AiRule, error) {
	var rules []rule.AiRule
	if err := r.db.WithContext(ctx).Order("prioridade, id").Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *ruleRepository) Update(ctx context.Context, aiRule *rule.AiRule) error {
	return r.db.WithContext(ctx).Save(aiRule).Error
}

func (r *ruleRepository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&rule.AiRule{}, id).Error
}

func (r *ruleRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&rule.AiRule{}).Count(&total).Error
	return total, err
}
