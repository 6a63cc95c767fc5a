package customerproduct

import (
	"context"
	"errors"
)

var (
	// ErrCustomerProductNotFound ocorre quando o cliente-produto não existe
	ErrCustomerProductNotFound = errors.New("produto do cliente não encontrado")

	// ErrAlreadyExists ocorre quando o item da transação já possui ciclo de vida
	ErrAlreadyExists = errors.New("item da transação já possui ciclo de vida")
)

// Repository define a interface para operações de repositório de clientes-produtos.
// Não há operação que altere o snapshot depois da criação.
type Repository interface {
	// Create grava um novo cliente-produto
	Create(ctx context.Context, cp *CustomerProduct) error

	// FindByID busca um cliente-produto pelo ID
	FindByID(ctx context.Context, id string) (*CustomerProduct, error)

	// FindByCustomer lista os produtos de um cliente
	FindByCustomer(ctx context.Context, customerID string) ([]*CustomerProduct, error)

	// ExistsForItem verifica se o item da transação já gerou um cliente-produto
	ExistsForItem(ctx context.Context, transactionItemID string) (bool, error)

	// UpdateStatus atualiza o status do ciclo de vida
	UpdateStatus(ctx context.Context, id string, status Status) error
}
