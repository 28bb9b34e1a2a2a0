package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iclubstoree/iclub-financeiro/internal/contracts"
)

func (h *Handler) ListRules(c *gin.Context) {
	rules, err := h.Rules.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rules)
}

func (h *Handler) GetRule(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	found, err := h.Rules.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

func (h *Handler) CreateRule(c *gin.Context) {
	var req contracts.RuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	created, err := h.Rules.Create(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdateRule(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req contracts.RuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	updated, err := h.Rules.Update(c.Request.Context(), id, req.ToDomain())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) ToggleRule(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	toggled, err := h.Rules.ToggleActive(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toggled)
}

func (h *Handler) DeleteRule(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Rules.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
