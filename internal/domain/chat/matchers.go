package chat

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Cada matcher é independente e opera sobre o segmento original, devolvendo
// o valor extraído (quando houver) e o trecho casado, usado depois na
// derivação da descrição.

// Padrões de data relativa em português. RE2 avalia \b com semântica ASCII,
// então palavras terminadas em "ã" não podem carregar \b no final.
var (
	reHoje         = regexp.MustCompile(`(?i)\b(hoje|hj)\b`)
	reDepoisAmanha = regexp.MustCompile(`(?i)\b(depois\s*de\s*amanhã|depois\s*amanha\b)`)
	reAmanha       = regexp.MustCompile(`(?i)\b(amanhã|amanha\b|manhã)`)

	reDateFull  = regexp.MustCompile(`\b(\d{1,2})[/\-](\d{1,2})[/\-](\d{4})\b`)
	reDateISO   = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)
	reDateShort = regexp.MustCompile(`\b(\d{1,2})[/\-](\d{1,2})\b`)

	reValue      = regexp.MustCompile(`(?i)(?:r\$\s*)?(\d+(?:[.,]\d{1,3})?)`)
	reValueReais = regexp.MustCompile(`(?i)(\d+)\s*(?:reais?|real)`)

	reStripDates = regexp.MustCompile(`(?i)\b(hoje|hj|amanhã|amanha|manhã|depois\s*de\s*amanhã|\d{1,2}[/\-]\d{1,2}(?:[/\-]\d{2,4})?|\d{4}-\d{2}-\d{2})`)
	reStripStore = regexp.MustCompile(`(?i)\b(loja\s+centro|loja\s+shopping|loja\s+online|matriz|castanhal|belém)`)
	reStripReais = regexp.MustCompile(`(?i)\b(reais?|real)\b`)
	reSpaces     = regexp.MustCompile(`\s+`)
)

// MatchDate resolve a data de vencimento de um segmento. Palavras relativas
// têm prioridade sobre formatos numéricos; "depois de amanhã" é testado
// antes de "amanhã" para que o prefixo mais longo vença. A primeira forma
// que casar decide; sem casamento a data fica indefinida.
func MatchDate(segment string, now time.Time) (time.Time, bool) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if reHoje.MatchString(segment) {
		return today, true
	}
	if reDepoisAmanha.MatchString(segment) {
		return today.AddDate(0, 0, 2), true
	}
	if reAmanha.MatchString(segment) {
		return today.AddDate(0, 0, 1), true
	}

	if m := reDateFull.FindStringSubmatch(segment); m != nil {
		return buildDate(m[3], m[2], m[1], now.Location())
	}
	if m := reDateISO.FindStringSubmatch(segment); m != nil {
		return buildDate(m[1], m[2], m[3], now.Location())
	}
	if m := reDateShort.FindStringSubmatch(segment); m != nil {
		return buildDate(fmt.Sprintf("%d", now.Year()), m[2], m[1], now.Location())
	}
	return time.Time{}, false
}

func buildDate(year, month, day string, loc *time.Location) (time.Time, bool) {
	t, err := time.ParseInLocation("2006-1-2", fmt.Sprintf("%s-%s-%s", year, month, day), loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// MatchValue extrai o valor monetário: prefixo "R$" opcional seguido de
// número com até três casas (vírgula ou ponto), ou número seguido de
// "reais"/"real". O primeiro casamento vence; vírgula decimal é
// normalizada para ponto.
func MatchValue(segment string) (decimal.Decimal, string, bool) {
	m := reValue.FindStringSubmatch(segment)
	if m == nil {
		m = reValueReais.FindStringSubmatch(segment)
	}
	if m == nil {
		return decimal.Zero, "", false
	}

	normalized := strings.ReplaceAll(m[1], ",", ".")
	value, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, "", false
	}
	return value, m[0], true
}

type storePattern struct {
	re    *regexp.Regexp
	store string
}

// Ordem fixa de prioridade: nomes de cidade e frases explícitas antes dos
// sinônimos soltos.
var storePatterns = []storePattern{
	{regexp.MustCompile(`(?i)\bcastanhal\b`), "loja-centro"},
	{regexp.MustCompile(`(?i)\bbelém\b`), "loja-shopping"},
	{regexp.MustCompile(`(?i)\bloja\s+centro\b`), "loja-centro"},
	{regexp.MustCompile(`(?i)\bloja\s+shopping\b`), "loja-shopping"},
	{regexp.MustCompile(`(?i)\bloja\s+online\b`), "loja-online"},
	{regexp.MustCompile(`(?i)\bmatriz\b`), "matriz"},
	{regexp.MustCompile(`(?i)\bcentro\b`), "loja-centro"},
	{regexp.MustCompile(`(?i)\bshopping\b`), "loja-shopping"},
	{regexp.MustCompile(`(?i)\bonline\b`), "loja-online"},
}

// MatchStore mapeia palavras-chave de localização para a chave da loja.
// O primeiro padrão da lista que casar vence.
func MatchStore(segment string) (string, bool) {
	for _, p := range storePatterns {
		if p.re.MatchString(segment) {
			return p.store, true
		}
	}
	return "", false
}

// DeriveDescription remove do segmento o token de valor casado, os tokens
// de data, as palavras de loja e "reais"/"real". Resto vazio vira "Despesa".
func DeriveDescription(segment, valueToken string) string {
	description := segment
	if valueToken != "" {
		description = strings.Replace(description, valueToken, "", 1)
	} else {
		description = reValue.ReplaceAllString(description, "")
	}
	description = reStripDates.ReplaceAllString(description, "")
	description = reStripStore.ReplaceAllString(description, "")
	description = reStripReais.ReplaceAllString(description, "")
	description = strings.TrimSpace(reSpaces.ReplaceAllString(description, " "))

	if description == "" {
		return "Despesa"
	}
	return description
}
