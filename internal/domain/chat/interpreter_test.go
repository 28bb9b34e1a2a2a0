package chat

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

func dayAt(offset int) time.Time {
	return time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func TestParseSingleCompleteExpense(t *testing.T) {
	i := NewInterpreterAt(testNow)

	drafts := i.Parse("aluguel 1000 castanhal hoje")
	require.Len(t, drafts, 1)

	d := drafts[0]
	assert.True(t, d.Value.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, "loja-centro", d.Store)
	require.NotNil(t, d.DueDate)
	assert.True(t, d.DueDate.Equal(dayAt(0)))
	assert.Equal(t, "aluguel", d.Category)
	assert.Equal(t, "fixo", d.Type)
	assert.Empty(t, d.MissingFields)
}

func TestParseMultipleSegments(t *testing.T) {
	i := NewInterpreterAt(testNow)

	drafts := i.Parse("aluguel 1000 castanhal hoje e tráfego pago 1000 belém amanhã")
	require.Len(t, drafts, 2)

	second := drafts[1]
	assert.Equal(t, "loja-shopping", second.Store)
	require.NotNil(t, second.DueDate)
	assert.True(t, second.DueDate.Equal(dayAt(1)))
	assert.True(t, second.Value.Equal(decimal.NewFromInt(1000)))
}

func TestParseMissingDueDateAndClassification(t *testing.T) {
	i := NewInterpreterAt(testNow)

	drafts := i.Parse("adicionar propaganda facebook 500 matriz")
	require.Len(t, drafts, 1)

	d := drafts[0]
	assert.Equal(t, "marketing", d.CostCenter)
	assert.Equal(t, "marketing", d.Category)
	assert.Equal(t, "matriz", d.Store)
	assert.True(t, d.Value.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, []string{FieldDueDate}, d.MissingFields)
}

func TestParseSegmentSeparators(t *testing.T) {
	i := NewInterpreterAt(testNow)

	drafts := i.Parse("luz 200 centro hoje, internet 150 online amanhã; folha 9000 matriz hoje\naluguel 1200 shopping hj")
	assert.Len(t, drafts, 4)
}

func TestMatchDateRelativeWords(t *testing.T) {
	tests := []struct {
		text string
		want time.Time
	}{
		{"pagar hoje", dayAt(0)},
		{"pagar hj", dayAt(0)},
		{"pagar amanhã", dayAt(1)},
		{"pagar amanha", dayAt(1)},
		{"pagar pela manhã", dayAt(1)},
		{"pagar depois de amanhã", dayAt(2)},
		{"pagar depois amanha", dayAt(2)},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := MatchDate(tt.text, testNow)
			require.True(t, ok)
			assert.True(t, got.Equal(tt.want), "got %s want %s", got, tt.want)
		})
	}
}

func TestMatchDateNumericFormats(t *testing.T) {
	tests := []struct {
		text string
		want time.Time
	}{
		{"conta 20/04/2025", time.Date(2025, time.April, 20, 0, 0, 0, 0, time.UTC)},
		{"conta 20-04-2025", time.Date(2025, time.April, 20, 0, 0, 0, 0, time.UTC)},
		{"conta 2025-04-20", time.Date(2025, time.April, 20, 0, 0, 0, 0, time.UTC)},
		{"conta 5/7", time.Date(2025, time.July, 5, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := MatchDate(tt.text, testNow)
			require.True(t, ok)
			assert.True(t, got.Equal(tt.want), "got %s want %s", got, tt.want)
		})
	}
}

func TestMatchDateAbsent(t *testing.T) {
	_, ok := MatchDate("aluguel 1000 castanhal", testNow)
	assert.False(t, ok)
}

func TestMatchValue(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"aluguel 1000", "1000"},
		{"aluguel R$ 1500,50", "1500.5"},
		{"aluguel r$ 99.90", "99.9"},
		{"conta de 80 reais", "80"},
		{"1 real", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, _, ok := MatchValue(tt.text)
			require.True(t, ok)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

func TestMatchValueAbsent(t *testing.T) {
	_, _, ok := MatchValue("aluguel da loja")
	assert.False(t, ok)
}

func TestMatchStorePriority(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"compra em castanhal", "loja-centro"},
		{"compra em belém", "loja-shopping"},
		{"compra loja centro", "loja-centro"},
		{"compra loja shopping", "loja-shopping"},
		{"compra loja online", "loja-online"},
		{"compra matriz", "matriz"},
		{"compra no centro", "loja-centro"},
		{"compra no shopping", "loja-shopping"},
		{"compra online", "loja-online"},
		// castanhal vence mesmo com outra palavra-chave depois
		{"castanhal shopping", "loja-centro"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := MatchStore(tt.text)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeriveDescriptionFallsBackToDespesa(t *testing.T) {
	i := NewInterpreterAt(testNow)

	drafts := i.Parse("1000 castanhal hoje")
	require.Len(t, drafts, 1)
	assert.Equal(t, "Despesa", drafts[0].Description)
	assert.Empty(t, drafts[0].MissingFields)
}

func TestInterpretAsksForDueDateWhenMissing(t *testing.T) {
	i := NewInterpreterAt(testNow)

	result := i.Interpret("adicionar propaganda facebook 500 matriz", Conversation{})

	require.Len(t, result.Drafts, 1)
	assert.Equal(t, FieldDueDate, result.State.PendingField)
	assert.Equal(t, dateChoices, result.OfferedChoices)
	assert.Contains(t, result.Reply, "data de vencimento")
}

func TestInterpretNumberedDateChoice(t *testing.T) {
	i := NewInterpreterAt(testNow)

	first := i.Interpret("adicionar propaganda facebook 500 matriz", Conversation{})
	require.Equal(t, FieldDueDate, first.State.PendingField)

	second := i.Interpret("2", first.State)
	require.Len(t, second.Drafts, 1)
	require.NotNil(t, second.Drafts[0].DueDate)
	assert.True(t, second.Drafts[0].DueDate.Equal(dayAt(1)))
	assert.True(t, second.State.AwaitingConfirm)
	assert.Contains(t, second.OfferedChoices, "Confirmar")
}

func TestInterpretNumberedStoreChoice(t *testing.T) {
	i := NewInterpreterAt(testNow)

	first := i.Interpret("aluguel 1000 hoje", Conversation{})
	require.Equal(t, FieldStore, first.State.PendingField)
	require.Len(t, first.OfferedChoices, 4)

	second := i.Interpret("4", first.State)
	require.Len(t, second.Drafts, 1)
	assert.Equal(t, "matriz", second.Drafts[0].Store)
	assert.True(t, second.State.AwaitingConfirm)
}

func TestInterpretInvalidChoiceReasks(t *testing.T) {
	i := NewInterpreterAt(testNow)

	first := i.Interpret("aluguel 1000 hoje", Conversation{})
	second := i.Interpret("9", first.State)

	assert.Equal(t, FieldStore, second.State.PendingField)
	assert.Contains(t, second.Reply, "Opção inválida")
}

func TestInterpretSpecificDateAfterChoice(t *testing.T) {
	i := NewInterpreterAt(testNow)

	first := i.Interpret("adicionar propaganda facebook 500 matriz", Conversation{})
	second := i.Interpret("3", first.State)
	require.Equal(t, FieldDueDate, second.State.PendingField)

	third := i.Interpret("20/04/2025", second.State)
	require.Len(t, third.Drafts, 1)
	require.NotNil(t, third.Drafts[0].DueDate)
	assert.Equal(t, time.April, third.Drafts[0].DueDate.Month())
	assert.True(t, third.State.AwaitingConfirm)
}

func TestInterpretConfirmFlow(t *testing.T) {
	i := NewInterpreterAt(testNow)

	first := i.Interpret("aluguel 1000 castanhal hoje", Conversation{})
	assert.True(t, first.State.AwaitingConfirm)
	assert.Contains(t, first.Reply, "Saída identificada")

	second := i.Interpret("Confirmar", first.State)
	assert.True(t, second.Confirmed)
	require.Len(t, second.Drafts, 1)
	assert.False(t, second.State.AwaitingConfirm)
}

func TestInterpretEditBeforeConfirm(t *testing.T) {
	i := NewInterpreterAt(testNow)

	first := i.Interpret("aluguel 1000 castanhal hoje", Conversation{})
	second := i.Interpret("Editar antes de confirmar", first.State)

	assert.False(t, second.Confirmed)
	require.Len(t, second.Drafts, 1)
	assert.True(t, second.Drafts[0].EditMode)
	assert.True(t, second.State.AwaitingConfirm)
}

func TestInterpretNewUtteranceWhileAwaitingConfirm(t *testing.T) {
	i := NewInterpreterAt(testNow)

	first := i.Interpret("aluguel 1000 castanhal hoje", Conversation{})
	second := i.Interpret("luz 200 matriz amanhã", first.State)

	assert.False(t, second.Confirmed)
	require.Len(t, second.Drafts, 1)
	assert.Equal(t, "utilities", second.Drafts[0].Category)
}

func TestDraftToExpense(t *testing.T) {
	due := dayAt(1)
	draft := ExpenseDraft{
		Description: "Aluguel",
		Value:       decimal.NewFromInt(1000),
		Store:       "loja-centro",
		Category:    "aluguel",
		Type:        "fixo",
		DueDate:     &due,
	}

	e := draft.ToExpense()
	assert.Equal(t, "chat", e.Origin)
	assert.False(t, e.Paid)
	assert.False(t, e.Recurring)
	assert.True(t, e.DueDate.Equal(due))
	assert.True(t, e.Date.Equal(due))
}
