package template

import (
	"context"
	"errors"

	"github.com/hugohenrick/erp-servicos/internal/domain/lifecycle"
)

// ErrTemplateNotFound ocorre quando o template não existe
var ErrTemplateNotFound = errors.New("template de mensagem não encontrado")

// Repository define a interface para operações de repositório de templates
type Repository interface {
	// Create grava um novo template
	Create(ctx context.Context, t *MessageTemplate) error

	// FindByID busca um template pelo ID
	FindByID(ctx context.Context, id string) (*MessageTemplate, error)

	// FindDefault busca o template padrão de uma fase; retorna ErrTemplateNotFound se não houver
	FindDefault(ctx context.Context, phase lifecycle.Phase) (*MessageTemplate, error)

	// List lista os templates, opcionalmente filtrando pela fase
	List(ctx context.Context, phase lifecycle.Phase) ([]*MessageTemplate, error)

	// Update atualiza um template existente
	Update(ctx context.Context, t *MessageTemplate) error

	// ClearDefault remove a marcação de padrão dos templates da fase, exceto o informado
	ClearDefault(ctx context.Context, phase lifecycle.Phase, exceptID string) error
}
