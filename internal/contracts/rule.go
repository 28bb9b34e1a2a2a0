package contracts

import "github.com/iclubstoree/iclub-financeiro/internal/domain/rule"

type RuleRequest struct {
	Name        string `json:"nome" binding:"required"`
	Description string `json:"descricao" binding:"required"`
	Condition   string `json:"condicao" binding:"required"`
	Category    string `json:"categoria"`
	CostCenter  string `json:"centroCusto"`
	Type        string `json:"tipo"`
	Store       string `json:"store"`
	Active      *bool  `json:"ativo"`
	Priority    int    `json:"prioridade"`
}

func (r *RuleRequest) ToDomain() *rule.AiRule {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return &rule.AiRule{
		Name:        r.Name,
		Description: r.Description,
		Condition:   r.Condition,
		Category:    r.Category,
		CostCenter:  r.CostCenter,
		Type:        r.Type,
		Store:       r.Store,
		Active:      active,
		Priority:    r.Priority,
	}
}
