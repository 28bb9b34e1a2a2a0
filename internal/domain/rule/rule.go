package rule

import (
	"strings"
	"time"
)

// ClassificationRule é uma regra estática aplicada pelo interpretador de
// texto: quando qualquer gatilho aparece no segmento, o patch de ação é
// mesclado no rascunho. Regras são percorridas em ordem de prioridade
// (menor executa primeiro) e a última que casar vence em campos conflitantes.
type ClassificationRule struct {
	Triggers   []string
	Category   string
	CostCenter string
	Type       string
	Priority   int
}

// ActionPatch é o conjunto de campos que uma regra pode preencher.
type ActionPatch struct {
	Category   string
	CostCenter string
	Type       string
}

// DefaultClassificationRules são as regras embutidas de classificação
// automática, na ordem de prioridade em que devem ser aplicadas.
var DefaultClassificationRules = []ClassificationRule{
	{
		Triggers:   []string{"propaganda", "anúncio", "publicidade", "ads", "facebook", "google", "tráfego"},
		Category:   "marketing",
		CostCenter: "marketing",
		Priority:   1,
	},
	{
		Triggers: []string{"aluguel", "locação"},
		Category: "aluguel",
		Type:     "fixo",
		Priority: 2,
	},
	{
		Triggers:   []string{"salário", "folha"},
		Category:   "salarios",
		CostCenter: "rh",
		Type:       "fixo",
		Priority:   3,
	},
	{
		Triggers: []string{"fornecedor", "compra"},
		Category: "fornecedores",
		Priority: 4,
	},
	{
		Triggers: []string{"luz", "água", "energia", "internet"},
		Category: "utilities",
		Type:     "fixo",
		Priority: 5,
	},
}

// Classify percorre todas as regras em ordem de prioridade e acumula os
// patches de ação das que casam com o texto. Não há curto-circuito: regras
// posteriores sobrescrevem campos já preenchidos por regras anteriores.
func Classify(text string, rules []ClassificationRule) ActionPatch {
	lower := strings.ToLower(text)
	var patch ActionPatch
	for _, r := range rules {
		if !r.matches(lower) {
			continue
		}
		if r.Category != "" {
			patch.Category = r.Category
		}
		if r.CostCenter != "" {
			patch.CostCenter = r.CostCenter
		}
		if r.Type != "" {
			patch.Type = r.Type
		}
	}
	return patch
}

func (r ClassificationRule) matches(lowerText string) bool {
	for _, trigger := range r.Triggers {
		if strings.Contains(lowerText, strings.ToLower(trigger)) {
			return true
		}
	}
	return false
}

// AiRule é a regra gerenciável pela tela de configuração. Diferente das
// regras de classificação embutidas, ela é persistida e pode ser ativada,
// desativada e reordenada pelo usuário.
type AiRule struct {
	ID          int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"nome" gorm:"column:nome;not null"`
	Description string    `json:"descricao" gorm:"column:descricao;not null"`
	Condition   string    `json:"condicao" gorm:"column:condicao;not null"`
	Category    string    `json:"categoria,omitempty" gorm:"column:categoria"`
	CostCenter  string    `json:"centroCusto,omitempty" gorm:"column:centro_custo"`
	Type        string    `json:"tipo,omitempty" gorm:"column:tipo"`
	Store       string    `json:"store,omitempty" gorm:"column:store"`
	Active      bool      `json:"ativo" gorm:"column:ativo;default:true"`
	Priority    int       `json:"prioridade" gorm:"column:prioridade"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (AiRule) TableName() string {
	return "ai_rules"
}

// SeedRules são as regras gerenciáveis pré-cadastradas.
func SeedRules() []AiRule {
	return []AiRule{
		{
			Name:        "Aluguel Automático",
			Description: "Classifica pagamentos de aluguel automaticamente",
			Condition:   `descrição contém "aluguel" ou "locação"`,
			Category:    "Aluguel",
			CostCenter:  "Administrativo",
			Type:        "Fixo",
			Active:      true,
			Priority:    1,
		},
		{
			Name:        "Fornecedores",
			Description: "Identifica compras de fornecedores",
			Condition:   `valor > 1000 e descrição contém "compra" ou "fornecedor"`,
			Category:    "Fornecedores",
			CostCenter:  "Vendas",
			Active:      true,
			Priority:    2,
		},
		{
			Name:        "Utilities",
			Description: "Classifica contas de utilidades públicas",
			Condition:   `descrição contém "água" ou "luz" ou "energia" ou "internet"`,
			Category:    "Utilities",
			CostCenter:  "Administrativo",
			Type:        "Fixo",
			Active:      false,
			Priority:    3,
		},
	}
}
