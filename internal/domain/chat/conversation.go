package chat

// Conversation é o estado explícito do protocolo de completamento: qual
// campo está sendo perguntado, quais rascunhos aguardam resposta e se o
// próximo "Confirmar" deve efetivar o lote.
type Conversation struct {
	PendingField    string         `json:"pendingField,omitempty"`
	AwaitingConfirm bool           `json:"awaitingConfirm,omitempty"`
	Drafts          []ExpenseDraft `json:"drafts,omitempty"`
}

func (c *Conversation) reset() {
	c.PendingField = ""
	c.AwaitingConfirm = false
	c.Drafts = nil
}

// storeChoices são as opções enumeradas oferecidas quando a loja falta,
// na ordem fixa 1..4.
var storeChoices = []struct {
	Value string
	Label string
}{
	{"loja-centro", "Loja Centro"},
	{"loja-shopping", "Loja Shopping"},
	{"loja-online", "Loja Online"},
	{"matriz", "Matriz"},
}

// dateChoices são as opções enumeradas quando a data de vencimento falta.
var dateChoices = []string{"Hoje", "Amanhã", "Escolher data específica"}
