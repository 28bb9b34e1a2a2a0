package contracts

import "github.com/iclubstoree/iclub-financeiro/internal/domain/chat"

// ChatRequest carrega a fala do usuário e o estado da conversa devolvido
// na rodada anterior.
type ChatRequest struct {
	Message string            `json:"message" binding:"required"`
	State   chat.Conversation `json:"state"`
}
