package spreadsheet

import (
	"github.com/iclubstoree/iclub-financeiro/internal/domain/expense"
)

// Cabeçalho fixo do arquivo de importação/exportação, na ordem esperada.
// As duas últimas colunas são opcionais.
var (
	RequiredHeaders = []string{
		"Data",
		"Data de Vencimento",
		"Loja",
		"Categoria",
		"Centro de Custo",
		"Tipo",
		"Descrição",
		"Valor",
		"Pago",
		"Recorrente",
	}
	OptionalHeaders = []string{"Recorrência", "Observações"}
)

// RowError descreve a falha de validação de uma linha. Linhas com erro são
// reportadas e excluídas do lote; não há recuperação parcial de campos.
type RowError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   string `json:"value"`
}

// ParseResult separa as linhas válidas das rejeitadas.
type ParseResult struct {
	Valid  []expense.Expense `json:"valid"`
	Errors []RowError        `json:"errors"`
}
