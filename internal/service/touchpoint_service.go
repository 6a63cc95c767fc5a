package service

import (
	"context"

	"github.com/hugohenrick/erp-servicos/internal/domain/touchpoint"
	"github.com/hugohenrick/erp-servicos/internal/domain/unitofwork"
	"github.com/hugohenrick/erp-servicos/pkg/logger"
)

// TouchpointService atende o colaborador externo que entrega as mensagens
type TouchpointService struct {
	uow    unitofwork.UnitOfWork
	clock  Clock
	logger logger.Logger
}

// NewTouchpointService cria um TouchpointService
func NewTouchpointService(uow unitofwork.UnitOfWork, clock Clock, logger logger.Logger) *TouchpointService {
	return &TouchpointService{uow: uow, clock: clock, logger: logger}
}

// List lista as tarefas conforme o filtro
func (s *TouchpointService) List(ctx context.Context, filter touchpoint.Filter) ([]*touchpoint.Touchpoint, error) {
	return s.uow.Touchpoints().List(ctx, filter)
}

// ListByCustomerProduct lista as tarefas de um cliente-produto
func (s *TouchpointService) ListByCustomerProduct(ctx context.Context, customerProductID string) ([]*touchpoint.Touchpoint, error) {
	if _, err := s.uow.CustomerProducts().FindByID(ctx, customerProductID); err != nil {
		return nil, err
	}
	return s.uow.Touchpoints().FindByCustomerProduct(ctx, customerProductID)
}

// ChangeStatus aplica uma transição de status à tarefa
func (s *TouchpointService) ChangeStatus(ctx context.Context, id string, status touchpoint.Status) (*touchpoint.Touchpoint, error) {
	var updated *touchpoint.Touchpoint
	err := s.uow.Do(ctx, func(repos unitofwork.Repositories) error {
		t, err := repos.Touchpoints().FindByID(ctx, id)
		if err != nil {
			return err
		}

		if err := t.ChangeStatus(status, s.clock.Now()); err != nil {
			return err
		}

		if err := repos.Touchpoints().UpdateStatus(ctx, t); err != nil {
			return err
		}
		updated = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Status da tarefa alterado", "touchpoint_id", id, "status", status)
	return updated, nil
}
