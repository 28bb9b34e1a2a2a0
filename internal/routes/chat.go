package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iclubstoree/iclub-financeiro/internal/contracts"
)

// InterpretChat processa uma rodada da conversa. O cliente devolve o
// campo state recebido aqui na próxima requisição.
func (h *Handler) InterpretChat(c *gin.Context) {
	var req contracts.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, created, err := h.Chat.HandleMessage(c.Request.Context(), req.Message, req.State)
	if err != nil {
		respondError(c, err)
		return
	}

	body := gin.H{
		"drafts":    result.Drafts,
		"reply":     result.Reply,
		"state":     result.State,
		"confirmed": result.Confirmed,
	}
	if len(result.OfferedChoices) > 0 {
		body["offeredChoices"] = result.OfferedChoices
	}
	if len(created) > 0 {
		body["expenses"] = created
	}
	c.JSON(http.StatusOK, body)
}
