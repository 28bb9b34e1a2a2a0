package chat

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/iclubstoree/iclub-financeiro/internal/domain/rule"
)

var (
	reSplitSegments = regexp.MustCompile(`\s+e\s+|[,;\n]`)
	reBareInteger   = regexp.MustCompile(`^\d+$`)
)

// Result é a resposta de uma rodada de interpretação: os rascunhos atuais,
// a mensagem ao usuário, as opções oferecidas e o estado a carregar na
// próxima rodada. Confirmed indica que o usuário efetivou o lote.
type Result struct {
	Drafts         []ExpenseDraft `json:"drafts"`
	Reply          string         `json:"reply"`
	OfferedChoices []string       `json:"offeredChoices,omitempty"`
	State          Conversation   `json:"state"`
	Confirmed      bool           `json:"confirmed,omitempty"`
}

// Interpreter converte texto livre em rascunhos de saída e conduz o
// protocolo de completamento de campos faltantes. Nenhuma entrada é
// fatal: o pior caso é um rascunho com todos os campos faltando exceto
// a descrição.
type Interpreter struct {
	rules []rule.ClassificationRule
	now   func() time.Time
}

func NewInterpreter() *Interpreter {
	return &Interpreter{rules: rule.DefaultClassificationRules, now: time.Now}
}

// NewInterpreterAt fixa o relógio, para os testes de datas relativas.
func NewInterpreterAt(now time.Time) *Interpreter {
	return &Interpreter{rules: rule.DefaultClassificationRules, now: func() time.Time { return now }}
}

// Parse converte uma frase em rascunhos ordenados, um por segmento.
// Segmentos são separados pelo conectivo " e ", vírgula, ponto-e-vírgula
// ou quebra de linha; cada um é processado de forma independente, e todos
// os extratores operam sobre o texto original do segmento.
func (i *Interpreter) Parse(text string) []ExpenseDraft {
	now := i.now()

	drafts := make([]ExpenseDraft, 0, 2)
	for _, raw := range reSplitSegments.Split(text, -1) {
		segment := strings.TrimSpace(raw)
		if segment == "" {
			continue
		}

		draft := newDraft()

		if due, ok := MatchDate(segment, now); ok {
			draft.DueDate = &due
		}

		value, valueToken, _ := MatchValue(segment)
		draft.Value = value

		draft.Description = DeriveDescription(segment, valueToken)

		patch := rule.Classify(segment, i.rules)
		if patch.Category != "" {
			draft.Category = patch.Category
		}
		if patch.CostCenter != "" {
			draft.CostCenter = patch.CostCenter
		}
		if patch.Type != "" {
			draft.Type = patch.Type
		}

		if store, ok := MatchStore(segment); ok {
			draft.Store = store
		}

		draft.refreshMissing()
		drafts = append(drafts, draft)
	}
	return drafts
}

// Interpret processa uma fala do usuário dentro do estado corrente da
// conversa e devolve a próxima resposta.
func (i *Interpreter) Interpret(text string, state Conversation) Result {
	trimmed := strings.TrimSpace(text)

	if state.AwaitingConfirm {
		switch {
		case strings.EqualFold(trimmed, "Confirmar"):
			drafts := state.Drafts
			state.reset()
			return Result{
				Drafts:    drafts,
				Reply:     confirmationDone(len(drafts)),
				State:     state,
				Confirmed: true,
			}
		case strings.EqualFold(trimmed, "Editar antes de confirmar"):
			for idx := range state.Drafts {
				state.Drafts[idx].EditMode = true
			}
			return Result{
				Drafts:         state.Drafts,
				Reply:          "✏️ Tudo bem! Ajuste os campos que quiser e confirme em seguida.",
				OfferedChoices: []string{"Confirmar", "Cancelar"},
				State:          state,
			}
		case strings.EqualFold(trimmed, "Cancelar"):
			state.reset()
			return Result{Reply: "Operação cancelada. Como posso ajudar?", State: state}
		default:
			// qualquer outra fala reinicia o fluxo como frase nova
			state.reset()
		}
	}

	if state.PendingField != "" && len(state.Drafts) > 0 {
		if result, handled := i.resolvePending(trimmed, state); handled {
			return result
		}
		state.reset()
	}

	drafts := i.Parse(trimmed)
	return i.respond(drafts, Conversation{})
}

// resolvePending aplica a resposta do usuário ao campo que estava sendo
// perguntado. Respostas que não encaixam no campo pendente devolvem
// handled=false e a fala é tratada como frase nova.
func (i *Interpreter) resolvePending(text string, state Conversation) (Result, bool) {
	draft := &state.Drafts[0]

	switch state.PendingField {
	case FieldStore:
		if !reBareInteger.MatchString(text) {
			return Result{}, false
		}
		idx := atoi(text)
		if idx < 1 || idx > len(storeChoices) {
			return Result{
				Drafts:         state.Drafts,
				Reply:          fmt.Sprintf("Opção inválida. Digite um número de 1 a %d.", len(storeChoices)),
				OfferedChoices: storeChoiceLabels(),
				State:          state,
			}, true
		}
		draft.Store = storeChoices[idx-1].Value

	case FieldDueDate:
		if reBareInteger.MatchString(text) {
			today := dayOf(i.now())
			switch atoi(text) {
			case 1:
				due := today
				draft.DueDate = &due
			case 2:
				due := today.AddDate(0, 0, 1)
				draft.DueDate = &due
			case 3:
				return Result{
					Drafts: state.Drafts,
					Reply:  "📅 Digite a data desejada no formato DD/MM/AAAA.",
					State:  state,
				}, true
			default:
				return Result{
					Drafts:         state.Drafts,
					Reply:          "Opção inválida. Digite 1, 2 ou 3.",
					OfferedChoices: dateChoices,
					State:          state,
				}, true
			}
		} else if due, ok := MatchDate(text, i.now()); ok {
			draft.DueDate = &due
		} else {
			return Result{}, false
		}

	case FieldValue:
		value, _, ok := MatchValue(text)
		if !ok {
			return Result{}, false
		}
		draft.Value = value

	default:
		return Result{}, false
	}

	draft.refreshMissing()
	state.PendingField = ""
	return i.respond(state.Drafts, Conversation{}), true
}

// respond decide a próxima mensagem: resumo de confirmação quando todos os
// rascunhos estão completos, ou uma única pergunta dirigida ao campo mais
// relevante do primeiro rascunho incompleto.
func (i *Interpreter) respond(drafts []ExpenseDraft, state Conversation) Result {
	if len(drafts) == 0 {
		return Result{
			Reply: "Não identifiquei nenhuma saída nessa mensagem. Tente algo como \"aluguel 1000 castanhal hoje\".",
			State: state,
		}
	}

	allComplete := true
	var incomplete *ExpenseDraft
	for idx := range drafts {
		if !drafts[idx].complete() {
			allComplete = false
			incomplete = &drafts[idx]
			break
		}
	}

	if allComplete {
		state.AwaitingConfirm = true
		state.Drafts = drafts
		return Result{
			Drafts:         drafts,
			Reply:          confirmationSummary(drafts),
			OfferedChoices: []string{"Confirmar", "Editar antes de confirmar", "Cancelar"},
			State:          state,
		}
	}

	state.Drafts = drafts

	switch {
	case incomplete.missing(FieldStore):
		state.PendingField = FieldStore
		return Result{
			Drafts:         drafts,
			Reply:          storeQuestion(incomplete),
			OfferedChoices: storeChoiceLabels(),
			State:          state,
		}
	case incomplete.missing(FieldDueDate):
		state.PendingField = FieldDueDate
		return Result{
			Drafts:         drafts,
			Reply:          dueDateQuestion(incomplete),
			OfferedChoices: dateChoices,
			State:          state,
		}
	case incomplete.missing(FieldValue):
		state.PendingField = FieldValue
		return Result{
			Drafts: drafts,
			Reply:  fmt.Sprintf("💰 Qual o valor para %q? Informe em reais (ex: 1000 ou R$ 1.500,00).", incomplete.Description),
			State:  state,
		}
	default:
		return Result{
			Drafts: drafts,
			Reply:  fmt.Sprintf("Faltam informações para %q. Complete os campos: %s.", incomplete.Description, strings.Join(incomplete.MissingFields, ", ")),
			State:  state,
		}
	}
}

func storeQuestion(d *ExpenseDraft) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📍 Qual a loja para %q?\n\nPor favor, escolha uma opção:\n", d.Description)
	for idx, choice := range storeChoices {
		fmt.Fprintf(&b, "%d. %s\n", idx+1, choice.Label)
	}
	b.WriteString("\nDigite apenas o número da sua escolha.")
	return b.String()
}

func dueDateQuestion(d *ExpenseDraft) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📅 Qual a data de vencimento para %q?\n\nEscolha uma opção:\n", d.Description)
	for idx, choice := range dateChoices {
		fmt.Fprintf(&b, "%d. %s\n", idx+1, choice)
	}
	b.WriteString("\nDigite o número da sua escolha.")
	return b.String()
}

func confirmationSummary(drafts []ExpenseDraft) string {
	var b strings.Builder
	if len(drafts) == 1 {
		b.WriteString("✅ Saída identificada:\n\n")
	} else {
		b.WriteString("✅ Saídas identificadas:\n\n")
	}
	for idx, d := range drafts {
		fmt.Fprintf(&b, "%d. %s - R$ %s", idx+1, d.Description, d.Value.StringFixed(2))
		if d.Store != "" {
			fmt.Fprintf(&b, " | Loja: %s", storeLabel(d.Store))
		}
		if d.DueDate != nil {
			fmt.Fprintf(&b, " | Vencimento: %s", d.DueDate.Format("02/01/2006"))
		}
		if d.Category != "" {
			fmt.Fprintf(&b, " | Categoria: %s", d.Category)
		}
		b.WriteString("\n")
	}
	if len(drafts) == 1 {
		b.WriteString("\nConfirma a adição desta saída?")
	} else {
		b.WriteString("\nConfirma a adição destas saídas?")
	}
	return b.String()
}

func confirmationDone(count int) string {
	if count == 1 {
		return "✅ Saída adicionada com sucesso!"
	}
	return fmt.Sprintf("✅ %d saídas adicionadas com sucesso!", count)
}

func storeChoiceLabels() []string {
	labels := make([]string, 0, len(storeChoices))
	for _, c := range storeChoices {
		labels = append(labels, c.Label)
	}
	return labels
}

func storeLabel(value string) string {
	for _, c := range storeChoices {
		if c.Value == value {
			return c.Label
		}
	}
	return value
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
