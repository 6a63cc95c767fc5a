package customer

import (
	"context"
	"errors"
	"time"
)

// ErrCustomerNotFound ocorre quando o cliente não existe
var ErrCustomerNotFound = errors.New("cliente não encontrado")

// Repository define a interface para operações de repositório de clientes
type Repository interface {
	// Create cria um novo cliente
	Create(ctx context.Context, c *Customer) error

	// FindByID busca um cliente pelo ID
	FindByID(ctx context.Context, id string) (*Customer, error)

	// List lista os clientes com paginação
	List(ctx context.Context, limit, offset int) ([]*Customer, error)

	// FindByName busca clientes pelo nome
	FindByName(ctx context.Context, name string, limit, offset int) ([]*Customer, error)

	// Count conta quantos clientes existem
	Count(ctx context.Context) (int, error)

	// Update atualiza os dados de um cliente existente
	Update(ctx context.Context, c *Customer) error

	// Delete remove um cliente
	Delete(ctx context.Context, id string) error

	// UpdateStatus atualiza o status de um cliente
	UpdateStatus(ctx context.Context, id string, status Status) error

	// TouchLastPurchase registra a data da última compra
	TouchLastPurchase(ctx context.Context, id string, at time.Time) error
}
