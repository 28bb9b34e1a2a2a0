package spreadsheet

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iclubstoree/iclub-financeiro/internal/domain/expense"
	apperrors "github.com/iclubstoree/iclub-financeiro/internal/errors"
)

const dateLayout = "2006-01-02"

// ParseRows valida o cabeçalho e cada linha de dados. Linhas que falham a
// validação de algum campo entram em Errors com linha, campo, mensagem e
// valor original; as demais viram saídas prontas para persistir, com
// origem de importação. Um erro em uma linha nunca é fatal para o lote.
func ParseRows(rows [][]string) (*ParseResult, error) {
	if len(rows) < 2 {
		return nil, apperrors.NewAppError("IMPORT_EMPTY", "Arquivo deve conter pelo menos um cabeçalho e uma linha de dados", 400)
	}

	headers := rows[0]
	index, err := headerIndex(headers)
	if err != nil {
		return nil, err
	}

	result := &ParseResult{Valid: []expense.Expense{}, Errors: []RowError{}}

	for i, row := range rows[1:] {
		rowNumber := i + 2
		e, rowErrors := parseRow(row, index, rowNumber)
		if len(rowErrors) > 0 {
			result.Errors = append(result.Errors, rowErrors...)
			continue
		}
		result.Valid = append(result.Valid, e)
	}
	return result, nil
}

func headerIndex(headers []string) (map[string]int, error) {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.TrimSpace(h)] = i
	}

	missing := make([]string, 0)
	for _, required := range RequiredHeaders {
		if _, ok := index[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return nil, apperrors.NewAppError(
			"IMPORT_INVALID_HEADER",
			fmt.Sprintf("Cabeçalhos obrigatórios não encontrados: %s", strings.Join(missing, ", ")),
			400,
		)
	}
	return index, nil
}

func parseRow(row []string, index map[string]int, rowNumber int) (expense.Expense, []RowError) {
	var e expense.Expense
	var rowErrors []RowError

	cell := func(header string) string {
		i, ok := index[header]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	fail := func(field, message, value string) {
		rowErrors = append(rowErrors, RowError{Row: rowNumber, Field: field, Message: message, Value: value})
	}

	if date, ok := parseDate(cell("Data")); ok {
		e.Date = date
	} else {
		fail("Data", "Data deve estar no formato AAAA-MM-DD", cell("Data"))
	}

	if dueDate, ok := parseDate(cell("Data de Vencimento")); ok {
		e.DueDate = dueDate
	} else {
		fail("Data de Vencimento", "Data deve estar no formato AAAA-MM-DD", cell("Data de Vencimento"))
	}

	textFields := []struct {
		header string
		target *string
	}{
		{"Loja", &e.Store},
		{"Categoria", &e.Category},
		{"Centro de Custo", &e.CostCenter},
		{"Tipo", &e.Type},
		{"Descrição", &e.Description},
	}
	for _, field := range textFields {
		value := cell(field.header)
		if value == "" {
			fail(field.header, "Campo obrigatório não pode estar vazio", value)
			continue
		}
		*field.target = value
	}

	if value, ok := parseValue(cell("Valor")); ok {
		e.Value = value
	} else {
		fail("Valor", "Valor deve ser um número positivo", cell("Valor"))
	}

	if paid, ok := parseBool(cell("Pago")); ok {
		e.Paid = paid
	} else {
		fail("Pago", `Deve ser "Sim", "Não", "True", "False", "1" ou "0"`, cell("Pago"))
	}

	if recurring, ok := parseBool(cell("Recorrente")); ok {
		e.Recurring = recurring
	} else {
		fail("Recorrente", `Deve ser "Sim", "Não", "True", "False", "1" ou "0"`, cell("Recorrente"))
	}

	if recurrence := cell("Recorrência"); recurrence != "" && e.Recurring {
		e.Recurrence = &recurrence
	}
	e.Notes = cell("Observações")
	e.Origin = expense.OriginImport

	return e, rowErrors
}

func parseDate(value string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// parseValue aceita decimal tolerante a formato local: prefixo "R$"
// opcional, ponto como separador de milhar quando a vírgula é decimal.
func parseValue(value string) (decimal.Decimal, bool) {
	cleaned := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(value), "R$"))
	if cleaned == "" {
		return decimal.Zero, false
	}

	if strings.Contains(cleaned, ",") {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil || d.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, false
	}
	return d, true
}

func parseBool(value string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "sim", "true", "1":
		return true, true
	case "não", "nao", "false", "0":
		return false, true
	default:
		return false, false
	}
}
