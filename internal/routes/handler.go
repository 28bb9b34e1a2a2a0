package routes

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/iclubstoree/iclub-financeiro/internal/domain/catalog"
	"github.com/iclubstoree/iclub-financeiro/internal/domain/chat"
	"github.com/iclubstoree/iclub-financeiro/internal/domain/expense"
	"github.com/iclubstoree/iclub-financeiro/internal/domain/preferences"
	"github.com/iclubstoree/iclub-financeiro/internal/domain/rule"
	"github.com/iclubstoree/iclub-financeiro/internal/domain/spreadsheet"
	apperrors "github.com/iclubstoree/iclub-financeiro/internal/errors"
	"github.com/iclubstoree/iclub-financeiro/internal/logger"
)

// Handler agrupa os serviços expostos pela API.
type Handler struct {
	Expenses    *expense.Service
	Chat        *chat.Service
	Catalog     *catalog.Service
	Rules       *rule.Service
	Preferences *preferences.Service
	Spreadsheet *spreadsheet.Service
}

func NewHandler(
	expenses *expense.Service,
	chatSvc *chat.Service,
	catalogSvc *catalog.Service,
	rules *rule.Service,
	prefs *preferences.Service,
	sheets *spreadsheet.Service,
) *Handler {
	return &Handler{
		Expenses:    expenses,
		Chat:        chatSvc,
		Catalog:     catalogSvc,
		Rules:       rules,
		Preferences: prefs,
		Spreadsheet: sheets,
	}
}

// RegisterRoutes monta a árvore de rotas sob /api.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")

	saidas := api.Group("/saidas")
	{
		saidas.GET("", h.ListExpenses)
		saidas.POST("", h.CreateExpense)
		saidas.GET("/:id", h.GetExpense)
		saidas.PUT("/:id", h.UpdateExpense)
		saidas.DELETE("/:id", h.DeleteExpense)
		saidas.PATCH("/:id/pay", h.MarkExpensePaid)
	}

	api.POST("/chat/interpret", h.InterpretChat)

	api.POST("/import", h.ImportSpreadsheet)
	api.GET("/export", h.ExportSpreadsheet)

	h.registerCatalogRoutes(api)

	regras := api.Group("/regras")
	{
		regras.GET("", h.ListRules)
		regras.POST("", h.CreateRule)
		regras.GET("/:id", h.GetRule)
		regras.PUT("/:id", h.UpdateRule)
		regras.PATCH("/:id/toggle", h.ToggleRule)
		regras.DELETE("/:id", h.DeleteRule)
	}

	api.GET("/preferencias", h.GetPreferences)
	api.PUT("/preferencias", h.UpdatePreferences)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// respondError traduz qualquer erro para o envelope JSON padrão.
func respondError(c *gin.Context, err error) {
	appErr := apperrors.FromError(err)

	if appErr.StatusCode >= http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("erro interno")
	} else {
		logger.Debug().Err(err).Str("path", c.FullPath()).Msg("requisição rejeitada")
	}

	body := gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
	}
	if len(appErr.Details) > 0 {
		body["details"] = appErr.Details
	}
	c.JSON(appErr.StatusCode, body)
}

// bindError converte falhas de binding do gin/validator em erro de
// validação com mensagens em português.
func bindError(c *gin.Context, err error) {
	respondError(c, apperrors.ParseValidationErrors(err))
}

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		respondError(c, apperrors.NewValidationError("id", "Identificador inválido"))
		return 0, false
	}
	return id, true
}
