package service

import (
	"context"
	"fmt"

	"github.com/hugohenrick/erp-servicos/internal/domain/customerproduct"
	"github.com/hugohenrick/erp-servicos/internal/domain/touchpoint"
	"github.com/hugohenrick/erp-servicos/internal/domain/unitofwork"
)

// Materializer transforma a agenda de um cliente-produto em tarefas agendadas
type Materializer struct {
	templates *TemplateResolver
}

// NewMaterializer cria um Materializer
func NewMaterializer(templates *TemplateResolver) *Materializer {
	return &Materializer{templates: templates}
}

// Materialize gera a agenda a partir do snapshot e grava uma tarefa pendente por nó
func (m *Materializer) Materialize(ctx context.Context, repos unitofwork.Repositories, cp *customerproduct.CustomerProduct) ([]*touchpoint.Touchpoint, error) {
	nodes := cp.Schedule()
	touchpoints := make([]*touchpoint.Touchpoint, 0, len(nodes))

	for _, node := range nodes {
		templateID, err := m.templates.Resolve(ctx, repos.Templates(), cp.FlowConfig, node.Phase)
		if err != nil {
			return nil, fmt.Errorf("erro ao resolver template da fase %s: %w", node.Phase, err)
		}
		touchpoints = append(touchpoints, touchpoint.FromNode(cp.ID, cp.CustomerID, node, templateID))
	}

	if len(touchpoints) == 0 {
		return touchpoints, nil
	}

	if err := repos.Touchpoints().CreateBatch(ctx, touchpoints); err != nil {
		return nil, err
	}

	return touchpoints, nil
}
