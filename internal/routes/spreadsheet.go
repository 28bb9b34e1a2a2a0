package routes

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/iclubstoree/iclub-financeiro/internal/contracts"
	apperrors "github.com/iclubstoree/iclub-financeiro/internal/errors"
)

// ImportSpreadsheet recebe um arquivo CSV ou XLSX via multipart e importa
// as linhas válidas. Linhas rejeitadas voltam no corpo da resposta.
func (h *Handler) ImportSpreadsheet(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, apperrors.NewValidationError("file", "Arquivo é obrigatório"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, apperrors.WrapError(err, "IMPORT_READ_ERROR", "Erro ao abrir o arquivo", http.StatusBadRequest))
		return
	}
	defer file.Close()

	summary, err := h.Spreadsheet.Import(c.Request.Context(), file, fileHeader.Filename)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// ExportSpreadsheet devolve o conjunto filtrado como CSV (padrão) ou
// XLSX quando format=xlsx.
func (h *Handler) ExportSpreadsheet(c *gin.Context) {
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
	sortSpec := req.ToSortSpec()

	if strings.EqualFold(c.Query("format"), "xlsx") {
		out, err := h.Spreadsheet.ExportXLSX(c.Request.Context(), filter, sortSpec)
		if err != nil {
			respondError(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="saidas.xlsx"`)
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", out)
		return
	}

	out, err := h.Spreadsheet.ExportCSV(c.Request.Context(), filter, sortSpec)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="saidas.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", out)
}
