package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iclubstoree/iclub-financeiro/internal/contracts"
)

func (h *Handler) registerCatalogRoutes(api *gin.RouterGroup) {
	lojas := api.Group("/lojas")
	{
		lojas.GET("", h.ListStores)
		lojas.POST("", h.CreateStore)
		lojas.PUT("/:id", h.UpdateStore)
		lojas.DELETE("/:id", h.DeleteStore)
	}

	categorias := api.Group("/categorias")
	{
		categorias.GET("", h.ListCategories)
		categorias.POST("", h.CreateCategory)
		categorias.PUT("/:id", h.UpdateCategory)
		categorias.DELETE("/:id", h.DeleteCategory)
	}

	centros := api.Group("/centros-custo")
	{
		centros.GET("", h.ListCostCenters)
		centros.POST("", h.CreateCostCenter)
		centros.PUT("/:id", h.UpdateCostCenter)
		centros.DELETE("/:id", h.DeleteCostCenter)
	}

	tipos := api.Group("/tipos")
	{
		tipos.GET("", h.ListExpenseTypes)
		tipos.POST("", h.CreateExpenseType)
		tipos.PUT("/:id", h.UpdateExpenseType)
		tipos.DELETE("/:id", h.DeleteExpenseType)
	}

	usuarios := api.Group("/usuarios")
	{
		usuarios.GET("", h.ListMembers)
		usuarios.POST("", h.CreateMember)
		usuarios.PUT("/:id", h.UpdateMember)
		usuarios.DELETE("/:id", h.DeleteMember)
	}
}

func (h *Handler) ListStores(c *gin.Context) {
	stores, err := h.Catalog.ListStores(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stores)
}

func (h *Handler) CreateStore(c *gin.Context) {
	var req contracts.StoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	created, err := h.Catalog.CreateStore(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdateStore(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req contracts.StoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	updated, err := h.Catalog.UpdateStore(c.Request.Context(), id, req.ToDomain())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteStore(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Catalog.DeleteStore(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.Catalog.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var req contracts.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	created, err := h.Catalog.CreateCategory(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdateCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req contracts.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	updated, err := h.Catalog.UpdateCategory(c.Request.Context(), id, req.ToDomain())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Catalog.DeleteCategory(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ListCostCenters(c *gin.Context) {
	costCenters, err := h.Catalog.ListCostCenters(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, costCenters)
}

func (h *Handler) CreateCostCenter(c *gin.Context) {
	var req contracts.CostCenterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	created, err := h.Catalog.CreateCostCenter(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdateCostCenter(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req contracts.CostCenterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	updated, err := h.Catalog.UpdateCostCenter(c.Request.Context(), id, req.ToDomain())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteCostCenter(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Catalog.DeleteCostCenter(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ListExpenseTypes(c *gin.Context) {
	types, err := h.Catalog.ListExpenseTypes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

func (h *Handler) CreateExpenseType(c *gin.Context) {
	var req contracts.ExpenseTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	created, err := h.Catalog.CreateExpenseType(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdateExpenseType(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req contracts.ExpenseTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	updated, err := h.Catalog.UpdateExpenseType(c.Request.Context(), id, req.ToDomain())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteExpenseType(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Catalog.DeleteExpenseType(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ListMembers(c *gin.Context) {
	members, err := h.Catalog.ListMembers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

func (h *Handler) CreateMember(c *gin.Context) {
	var req contracts.MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	created, err := h.Catalog.CreateMember(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdateMember(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req contracts.MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	updated, err := h.Catalog.UpdateMember(c.Request.Context(), id, req.ToDomain())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteMember(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Catalog.DeleteMember(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
