package touchpoint

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/erp-servicos/internal/domain/lifecycle"
)

var (
	ErrInvalidStatus     = errors.New("status de tarefa inválido")
	ErrInvalidTransition = errors.New("transição de status da tarefa não permitida")
)

// Status representa a situação de entrega de uma tarefa agendada
type Status string

const (
	StatusPending   Status = "pending"
	StatusSent      Status = "sent"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// IsValid verifica se o status é conhecido
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusSent, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

var transitions = map[Status][]Status{
	StatusPending: {StatusSent, StatusCompleted, StatusCancelled},
	StatusSent:    {StatusCompleted, StatusCancelled},
}

// CanTransitionTo verifica se a mudança de status é permitida
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Touchpoint é uma tarefa de serviço agendada (tabela scheduled_service_tasks)
type Touchpoint struct {
	ID                string          `json:"id"`
	CustomerProductID string          `json:"customer_product_id"`
	CustomerID        string          `json:"customer_id"`
	Phase             lifecycle.Phase `json:"phase"`
	MonthOffset       int             `json:"month_offset"`
	ScheduledDate     time.Time       `json:"scheduled_date"`
	TaskName          string          `json:"task_name"`
	MessageTemplateID *string         `json:"message_template_id"`
	Status            Status          `json:"status"`
	SentAt            *time.Time      `json:"sent_at"`
	CompletedAt       *time.Time      `json:"completed_at"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// FromNode cria uma tarefa pendente a partir de um nó da agenda
func FromNode(customerProductID, customerID string, node lifecycle.Node, templateID *string) *Touchpoint {
	now := time.Now()
	return &Touchpoint{
		ID:                uuid.New().String(),
		CustomerProductID: customerProductID,
		CustomerID:        customerID,
		Phase:             node.Phase,
		MonthOffset:       node.Month,
		ScheduledDate:     node.Date,
		TaskName:          node.Action,
		MessageTemplateID: templateID,
		Status:            StatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// ChangeStatus altera o status registrando os horários de envio e conclusão
func (t *Touchpoint) ChangeStatus(next Status, at time.Time) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}

	if !t.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, t.Status, next)
	}

	switch next {
	case StatusSent:
		t.SentAt = &at
	case StatusCompleted:
		t.CompletedAt = &at
	}

	t.Status = next
	t.UpdatedAt = at
	return nil
}
