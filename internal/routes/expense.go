package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iclubstoree/iclub-financeiro/internal/contracts"
)

// ListExpenses computa a listagem: filtros, ordenação, página e cards.
// O tamanho de página padrão vem das preferências salvas.
func (h *Handler) ListExpenses(c *gin.Context) {
	var req contracts.ExpenseQueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return
	}

	filter, err := req.ToFilterSpec()
	if err != nil {
		respondError(c, err)
		return
	}

	prefs, err := h.Preferences.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	sortSpec := req.ToSortSpec()
	if sortSpec.Field == "" && prefs.SortByDate {
		sortSpec.Field = "dueDate"
	}

	view, err := h.Expenses.Query(c.Request.Context(), filter, sortSpec, req.ToPagination(prefs.PageSize))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) CreateExpense(c *gin.Context) {
	var req contracts.ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	e, err := req.ToDomain()
	if err != nil {
		respondError(c, err)
		return
	}

	created, err := h.Expenses.Create(c.Request.Context(), e)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) GetExpense(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	e, err := h.Expenses.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *Handler) UpdateExpense(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req contracts.ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	e, err := req.ToDomain()
	if err != nil {
		respondError(c, err)
		return
	}

	updated, err := h.Expenses.Update(c.Request.Context(), id, e)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteExpense(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	// corpo opcional; ausência significa remover só a ocorrência
	var req contracts.DeleteExpenseRequest
	_ = c.ShouldBindJSON(&req)

	if err := h.Expenses.Delete(c.Request.Context(), id, req.DeleteFutureRecurrences); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) MarkExpensePaid(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	e, err := h.Expenses.MarkPaid(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}
