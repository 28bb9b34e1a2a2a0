package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iclubstoree/iclub-financeiro/internal/contracts"
)

func (h *Handler) GetPreferences(c *gin.Context) {
	prefs, err := h.Preferences.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, prefs)
}

func (h *Handler) UpdatePreferences(c *gin.Context) {
	var req contracts.PreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	updated, err := h.Preferences.Update(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
