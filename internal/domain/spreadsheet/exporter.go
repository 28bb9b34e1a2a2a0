package spreadsheet

import (
	"bytes"
	"encoding/csv"

	"github.com/xuri/excelize/v2"

	"github.com/iclubstoree/iclub-financeiro/internal/domain/expense"
	apperrors "github.com/iclubstoree/iclub-financeiro/internal/errors"
)

// exportHeaders é o cabeçalho completo de exportação, com as colunas
// opcionais incluídas.
func exportHeaders() []string {
	return append(append([]string{}, RequiredHeaders...), OptionalHeaders...)
}

func exportRow(e expense.Expense) []string {
	recurrence := ""
	if e.Recurrence != nil {
		recurrence = *e.Recurrence
	}
	return []string{
		e.Date.Format(dateLayout),
		e.DueDate.Format(dateLayout),
		e.Store,
		e.Category,
		e.CostCenter,
		e.Type,
		e.Description,
		e.Value.StringFixed(2),
		formatBool(e.Paid),
		formatBool(e.Recurring),
		recurrence,
		e.Notes,
	}
}

func formatBool(b bool) string {
	if b {
		return "Sim"
	}
	return "Não"
}

// ExportCSV serializa as saídas no formato de importação: datas
// AAAA-MM-DD e booleanos Sim/Não.
func ExportCSV(expenses []expense.Expense) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeaders()); err != nil {
		return nil, apperrors.WrapError(err, "EXPORT_ERROR", "Erro ao gerar o CSV", 500)
	}
	for _, e := range expenses {
		if err := w.Write(exportRow(e)); err != nil {
			return nil, apperrors.WrapError(err, "EXPORT_ERROR", "Erro ao gerar o CSV", 500)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, apperrors.WrapError(err, "EXPORT_ERROR", "Erro ao gerar o CSV", 500)
	}
	return buf.Bytes(), nil
}

// ExportXLSX monta uma planilha com as mesmas colunas do CSV.
func ExportXLSX(expenses []expense.Expense) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	for col, header := range exportHeaders() {
		cellName, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, apperrors.WrapError(err, "EXPORT_ERROR", "Erro ao gerar a planilha", 500)
		}
		if err := f.SetCellValue(sheet, cellName, header); err != nil {
			return nil, apperrors.WrapError(err, "EXPORT_ERROR", "Erro ao gerar a planilha", 500)
		}
	}

	for rowIdx, e := range expenses {
		for col, value := range exportRow(e) {
			cellName, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return nil, apperrors.WrapError(err, "EXPORT_ERROR", "Erro ao gerar a planilha", 500)
			}
			if err := f.SetCellValue(sheet, cellName, value); err != nil {
				return nil, apperrors.WrapError(err, "EXPORT_ERROR", "Erro ao gerar a planilha", 500)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, apperrors.WrapError(err, "EXPORT_ERROR", "Erro ao gravar a planilha", 500)
	}
	return buf.Bytes(), nil
}
