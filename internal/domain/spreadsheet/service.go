package spreadsheet

import (
	"context"
	"io"

	"github.com/iclubstoree/iclub-financeiro/internal/domain/expense"
	"github.com/iclubstoree/iclub-financeiro/internal/logger"
	"github.com/iclubstoree/iclub-financeiro/internal/pkg"
)

// ImportSummary é o resultado de uma importação: o identificador do lote,
// as saídas efetivadas e os erros por linha.
type ImportSummary struct {
	BatchID  string            `json:"batchId"`
	Imported []expense.Expense `json:"imported"`
	Errors   []RowError        `json:"errors"`
}

// Service liga a leitura de planilhas à persistência de saídas.
type Service struct {
	expenses *expense.Service
}

func NewService(expenses *expense.Service) *Service {
	return &Service{expenses: expenses}
}

// Import lê o arquivo (CSV ou XLSX), valida linha a linha e persiste
// somente as linhas válidas. Linhas rejeitadas voltam no resumo; um lote
// com erros ainda importa as demais.
func (s *Service) Import(ctx context.Context, r io.Reader, filename string) (*ImportSummary, error) {
	rows, err := ReadFile(r, filename)
	if err != nil {
		return nil, err
	}

	result, err := ParseRows(rows)
	if err != nil {
		return nil, err
	}

	summary := &ImportSummary{
		BatchID:  pkg.GenerateULID(),
		Imported: []expense.Expense{},
		Errors:   result.Errors,
	}

	if len(result.Valid) > 0 {
		created, err := s.expenses.CreateBatch(ctx, result.Valid)
		if err != nil {
			return nil, err
		}
		summary.Imported = created
	}

	logger.Info().
		Str("lote", summary.BatchID).
		Str("arquivo", filename).
		Int("importadas", len(summary.Imported)).
		Int("rejeitadas", len(summary.Errors)).
		Msg("importação concluída")
	return summary, nil
}

// ExportCSV exporta o conjunto filtrado no formato de importação.
func (s *Service) ExportCSV(ctx context.Context, filter expense.FilterSpec, sortSpec expense.SortSpec) ([]byte, error) {
	expenses, err := s.expenses.ListFiltered(ctx, filter, sortSpec)
	if err != nil {
		return nil, err
	}
	return ExportCSV(expenses)
}

// ExportXLSX exporta o conjunto filtrado como planilha.
func (s *Service) ExportXLSX(ctx context.Context, filter expense.FilterSpec, sortSpec expense.SortSpec) ([]byte, error) {
	expenses, err := s.expenses.ListFiltered(ctx, filter, sortSpec)
	if err != nil {
		return nil, err
	}
	return ExportXLSX(expenses)
}
