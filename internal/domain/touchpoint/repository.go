package touchpoint

import (
	"context"
	"errors"
	"time"
)

// ErrTouchpointNotFound ocorre quando a tarefa não existe
var ErrTouchpointNotFound = errors.New("tarefa agendada não encontrada")

// Filter restringe a listagem de tarefas
type Filter struct {
	Status    Status
	DueBefore *time.Time
	Limit     int
	Offset    int
}

// Repository define a interface para operações de repositório de tarefas agendadas
type Repository interface {
	// CreateBatch grava todas as tarefas; falha de uma invalida o lote
	CreateBatch(ctx context.Context, touchpoints []*Touchpoint) error

	// FindByID busca uma tarefa pelo ID
	FindByID(ctx context.Context, id string) (*Touchpoint, error)

	// FindByCustomerProduct lista as tarefas de um cliente-produto em ordem de data
	FindByCustomerProduct(ctx context.Context, customerProductID string) ([]*Touchpoint, error)

	// List lista tarefas conforme o filtro, em ordem de data
	List(ctx context.Context, filter Filter) ([]*Touchpoint, error)

	// UpdateStatus grava status e horários de envio/conclusão
	UpdateStatus(ctx context.Context, t *Touchpoint) error
}
