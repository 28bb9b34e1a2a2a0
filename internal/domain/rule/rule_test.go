package rule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want ActionPatch
	}{
		{
			name: "aluguel vira categoria aluguel tipo fixo",
			text: "aluguel 1000 castanhal hoje",
			want: ActionPatch{Category: "aluguel", Type: "fixo"},
		},
		{
			name: "propaganda facebook vira marketing",
			text: "adicionar propaganda facebook 500 matriz",
			want: ActionPatch{Category: "marketing", CostCenter: "marketing"},
		},
		{
			name: "trafego pago vira marketing",
			text: "tráfego pago 1000 belém amanhã",
			want: ActionPatch{Category: "marketing", CostCenter: "marketing"},
		},
		{
			name: "salario vira rh fixo",
			text: "folha de pagamento 20000",
			want: ActionPatch{Category: "salarios", CostCenter: "rh", Type: "fixo"},
		},
		{
			name: "case insensitive",
			text: "ALUGUEL da loja",
			want: ActionPatch{Category: "aluguel", Type: "fixo"},
		},
		{
			name: "sem gatilho devolve patch vazio",
			text: "despesa qualquer 50",
			want: ActionPatch{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.text, DefaultClassificationRules)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyLastMatchWins(t *testing.T) {
	rules := []ClassificationRule{
		{Triggers: []string{"conta"}, Category: "primeira", Priority: 1},
		{Triggers: []string{"luz"}, Category: "segunda", Type: "fixo", Priority: 2},
	}

	got := Classify("conta de luz", rules)
	assert.Equal(t, "segunda", got.Category)
	assert.Equal(t, "fixo", got.Type)
}

type fakeRuleRepository struct {
	rules  map[int]*AiRule
	nextID int
}

func newFakeRuleRepository() *fakeRuleRepository {
	return &fakeRuleRepository{rules: make(map[int]*AiRule), nextID: 1}
}

func (f *fakeRuleRepository) Create(_ context.Context, rule *AiRule) error {
	rule.ID = f.nextID
	f.nextID++
	copied := *rule
	f.rules[rule.ID] = &copied
	return nil
}

func (f *fakeRuleRepository) FindByID(_ context.Context, id int) (*AiRule, error) {
	rule, ok := f.rules[id]
	if !ok {
		return nil, nil
	}
	copied := *rule
	return &copied, nil
}

func (f *fakeRuleRepository) FindAll(_ context.Context) ([]AiRule, error) {
	out := make([]AiRule, 0, len(f.rules))
	for i := 1; i < f.nextID; i++ {
		if rule, ok := f.rules[i]; ok {
			out = append(out, *rule)
		}
	}
	return out, nil
}

func (f *fakeRuleRepository) Update(_ context.Context, rule *AiRule) error {
	copied := *rule
	f.rules[rule.ID] = &copied
	return nil
}

func (f *fakeRuleRepository) Delete(_ context.Context, id int) error {
	delete(f.rules, id)
	return nil
}

func (f *fakeRuleRepository) Count(_ context.Context) (int64, error) {
	return int64(len(f.rules)), nil
}

func TestServiceCreateValidation(t *testing.T) {
	svc := NewService(newFakeRuleRepository())

	_, err := svc.Create(context.Background(), &AiRule{Name: "Sem condição", Description: "x"})
	require.Error(t, err)
}

func TestServiceCreateAssignsPriority(t *testing.T) {
	svc := NewService(newFakeRuleRepository())
	ctx := context.Background()

	require.NoError(t, svc.Seed(ctx))

	created, err := svc.Create(ctx, &AiRule{
		Name:        "Nova",
		Description: "Regra nova",
		Condition:   `descrição contém "teste"`,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, created.Priority)
}

func TestServiceSeedIsIdempotent(t *testing.T) {
	repo := newFakeRuleRepository()
	svc := NewService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Seed(ctx))
	require.NoError(t, svc.Seed(ctx))

	rules, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, rules, 3)
}

func TestServiceListSearch(t *testing.T) {
	svc := NewService(newFakeRuleRepository())
	ctx := context.Background()
	require.NoError(t, svc.Seed(ctx))

	rules, err := svc.List(ctx, "fornecedor")
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "Fornecedores", rules[0].Name)
}

func TestServiceToggleActive(t *testing.T) {
	svc := NewService(newFakeRuleRepository())
	ctx := context.Background()
	require.NoError(t, svc.Seed(ctx))

	rule, err := svc.ToggleActive(ctx, 3)
	require.NoError(t, err)
	assert.True(t, rule.Active)

	rule, err = svc.ToggleActive(ctx, 3)
	require.NoError(t, err)
	assert.False(t, rule.Active)
}

func TestServiceDeleteMissing(t *testing.T) {
	svc := NewService(newFakeRuleRepository())

	err := svc.Delete(context.Background(), 99)
	require.Error(t, err)
}
