package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	apperrors "github.com/iclubstoree/iclub-financeiro/internal/errors"
	"github.com/iclubstoree/iclub-financeiro/internal/logger"
)

// ReadCSV lê todas as linhas de um CSV. Arquivos que não são UTF-8 válido
// (planilhas exportadas pelo Excel brasileiro costumam vir em Windows-1252)
// são decodificados com fallback de charset.
func ReadCSV(r io.Reader) ([][]string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, apperrors.WrapError(err, "IMPORT_READ_ERROR", "Erro ao ler o arquivo", 400)
	}

	// BOM de UTF-8 no começo do arquivo
	raw = bytes.TrimPrefix(raw, []byte{0xEF, 0xBB, 0xBF})

	var reader *csv.Reader
	if utf8.Valid(raw) {
		reader = csv.NewReader(bytes.NewReader(raw))
	} else {
		logger.Debug().Msg("arquivo não é UTF-8 válido; decodificando como Windows-1252")
		decoder := charmap.Windows1252.NewDecoder()
		reader = csv.NewReader(transform.NewReader(bytes.NewReader(raw), decoder))
	}
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, apperrors.WrapError(err, "IMPORT_PARSE_ERROR", "Erro ao interpretar o CSV", 400)
	}
	return trimRows(rows), nil
}

// ReadXLSX lê a primeira planilha de um arquivo XLSX.
func ReadXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, apperrors.WrapError(err, "IMPORT_PARSE_ERROR", "Erro ao abrir a planilha", 400)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.NewAppError("IMPORT_EMPTY", "Planilha sem abas", 400)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, apperrors.WrapError(err, "IMPORT_PARSE_ERROR", "Erro ao ler a planilha", 400)
	}
	return trimRows(rows), nil
}

// ReadFile escolhe o leitor pela extensão do nome do arquivo.
func ReadFile(r io.Reader, filename string) ([][]string, error) {
	if strings.HasSuffix(strings.ToLower(filename), ".xlsx") {
		return ReadXLSX(r)
	}
	return ReadCSV(r)
}

func trimRows(rows [][]string) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		trimmed := make([]string, len(row))
		empty := true
		for i, cell := range row {
			trimmed[i] = strings.TrimSpace(cell)
			if trimmed[i] != "" {
				empty = false
			}
		}
		if !empty {
			out = append(out, trimmed)
		}
	}
	return out
}
