package chat

import (
	"context"

	"github.com/iclubstoree/iclub-financeiro/internal/domain/expense"
	"github.com/iclubstoree/iclub-financeiro/internal/logger"
)

// Service conduz a conversa e efetiva os rascunhos confirmados como
// saídas com origem de chat.
type Service struct {
	interpreter *Interpreter
	expenses    *expense.Service
}

func NewService(expenses *expense.Service) *Service {
	return &Service{interpreter: NewInterpreter(), expenses: expenses}
}

// HandleMessage processa uma fala do usuário. Quando o resultado é uma
// confirmação, os rascunhos viram saídas persistidas e são devolvidos
// junto com a resposta.
func (s *Service) HandleMessage(ctx context.Context, text string, state Conversation) (*Result, []expense.Expense, error) {
	result := s.interpreter.Interpret(text, state)
	if !result.Confirmed {
		return &result, nil, nil
	}

	batch := make([]expense.Expense, 0, len(result.Drafts))
	for _, draft := range result.Drafts {
		batch = append(batch, draft.ToExpense())
	}

	created, err := s.expenses.CreateBatch(ctx, batch)
	if err != nil {
		logger.Error().Err(err).Int("rascunhos", len(batch)).Msg("falha ao efetivar saídas do chat")
		return nil, nil, err
	}

	logger.Info().Int("quantidade", len(created)).Msg("saídas confirmadas via chat")
	return &result, created, nil
}
