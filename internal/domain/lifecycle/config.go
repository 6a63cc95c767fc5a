package lifecycle

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidFlowConfig ocorre quando o JSON de configuração do fluxo não pode ser lido
var ErrInvalidFlowConfig = errors.New("configuração de fluxo de serviço inválida")

// Phase representa uma fase do fluxo de serviço
type Phase string

const (
	PhaseOnboarding Phase = "onboarding" // Boas-vindas (mês 0)
	PhaseRetention  Phase = "retention"  // Manutenção periódica
	PhaseMaturity   Phase = "maturity"   // Fim do ciclo / renovação
)

// Phases lista as fases na ordem em que acontecem
var Phases = []Phase{PhaseOnboarding, PhaseRetention, PhaseMaturity}

// IsValid verifica se a fase é conhecida
func (p Phase) IsValid() bool {
	switch p {
	case PhaseOnboarding, PhaseRetention, PhaseMaturity:
		return true
	}
	return false
}

// TaskPhaseConfig configura as fases pontuais (boas-vindas e maturidade)
type TaskPhaseConfig struct {
	Enabled           bool    `json:"enabled"`
	TaskName          string  `json:"task_name,omitempty"`
	MessageTemplateID *string `json:"message_template_id"`
}

// RetentionPhaseConfig configura a fase recorrente de manutenção
type RetentionPhaseConfig struct {
	Enabled            bool    `json:"enabled"`
	ReminderDaysBefore int     `json:"reminder_days_before"`
	MessageTemplateID  *string `json:"message_template_id"`
}

// FlowConfig é a configuração do fluxo de serviço de um produto.
// As três fases são campos nomeados para que toda configuração tenha as três partes.
type FlowConfig struct {
	Onboarding TaskPhaseConfig      `json:"onboarding"`
	Retention  RetentionPhaseConfig `json:"retention"`
	Maturity   TaskPhaseConfig      `json:"maturity"`
}

// AnyEnabled indica se ao menos uma fase está habilitada
func (c FlowConfig) AnyEnabled() bool {
	return c.Onboarding.Enabled || c.Retention.Enabled || c.Maturity.Enabled
}

// TemplateFor retorna o template explícito configurado para a fase, se houver
func (c FlowConfig) TemplateFor(phase Phase) *string {
	var id *string
	switch phase {
	case PhaseOnboarding:
		id = c.Onboarding.MessageTemplateID
	case PhaseRetention:
		id = c.Retention.MessageTemplateID
	case PhaseMaturity:
		id = c.Maturity.MessageTemplateID
	}
	if id == nil || *id == "" {
		return nil
	}
	return id
}

// Validate verifica valores numéricos da configuração
func (c FlowConfig) Validate() error {
	if c.Retention.ReminderDaysBefore < 0 {
		return fmt.Errorf("%w: reminder_days_before não pode ser negativo", ErrInvalidFlowConfig)
	}
	return nil
}

// Clone retorna uma cópia independente da configuração
func (c FlowConfig) Clone() FlowConfig {
	out := c
	out.Onboarding.MessageTemplateID = cloneString(c.Onboarding.MessageTemplateID)
	out.Retention.MessageTemplateID = cloneString(c.Retention.MessageTemplateID)
	out.Maturity.MessageTemplateID = cloneString(c.Maturity.MessageTemplateID)
	return out
}

// ParseFlowConfig lê a configuração a partir do JSON armazenado (jsonb).
// Conteúdo vazio ou null resulta na configuração com todas as fases desabilitadas.
func ParseFlowConfig(data []byte) (FlowConfig, error) {
	var cfg FlowConfig
	if len(data) == 0 || string(data) == "null" {
		return cfg, nil
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return FlowConfig{}, fmt.Errorf("%w: %v", ErrInvalidFlowConfig, err)
	}
	return cfg, nil
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
