package template

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/erp-servicos/internal/domain/lifecycle"
)

var (
	ErrEmptyName      = errors.New("nome não pode ser vazio")
	ErrEmptyBody      = errors.New("conteúdo da mensagem não pode ser vazio")
	ErrInvalidType    = errors.New("tipo de template inválido")
	ErrInvalidChannel = errors.New("canal inválido")
)

// Channel define o canal de envio da mensagem
type Channel string

const (
	ChannelLine  Channel = "line"
	ChannelSMS   Channel = "sms"
	ChannelEmail Channel = "email"
)

// IsValid verifica se o canal é conhecido
func (c Channel) IsValid() bool {
	switch c {
	case ChannelLine, ChannelSMS, ChannelEmail:
		return true
	}
	return false
}

var placeholderPattern = regexp.MustCompile(`\{\{\s*([a-zA-Z0-9_]+)\s*\}\}`)

// MessageTemplate representa um modelo de mensagem de uma fase do fluxo
type MessageTemplate struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Type      lifecycle.Phase `json:"type"`
	Channel   Channel         `json:"channel"`
	Body      string          `json:"body"`
	Variables []string        `json:"variables"`
	IsDefault bool            `json:"is_default"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// NewMessageTemplate cria um novo template; as variáveis são extraídas do conteúdo
func NewMessageTemplate(name string, phase lifecycle.Phase, channel Channel, body string) (*MessageTemplate, error) {
	t := &MessageTemplate{ID: uuid.New().String(), CreatedAt: time.Now()}
	if err := t.Update(name, phase, channel, body); err != nil {
		return nil, err
	}
	return t, nil
}

// Update atualiza os dados do template
func (t *MessageTemplate) Update(name string, phase lifecycle.Phase, channel Channel, body string) error {
	if name == "" {
		return ErrEmptyName
	}

	if body == "" {
		return ErrEmptyBody
	}

	if !phase.IsValid() {
		return ErrInvalidType
	}

	if !channel.IsValid() {
		return ErrInvalidChannel
	}

	t.Name = name
	t.Type = phase
	t.Channel = channel
	t.Body = body
	t.Variables = ExtractVariables(body)
	t.UpdatedAt = time.Now()
	return nil
}

// Render substitui os marcadores {{variavel}} pelos valores informados.
// Marcadores sem valor permanecem no texto.
func (t *MessageTemplate) Render(values map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(t.Body, func(match string) string {
		name := placeholderPattern.FindStringSubmatch(match)[1]
		if v, ok := values[name]; ok {
			return v
		}
		return match
	})
}

// ExtractVariables lista os nomes dos marcadores na ordem em que aparecem, sem repetição
func ExtractVariables(body string) []string {
	vars := make([]string, 0)
	seen := make(map[string]bool)
	for _, m := range placeholderPattern.FindAllStringSubmatch(body, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			vars = append(vars, m[1])
		}
	}
	return vars
}
