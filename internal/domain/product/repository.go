package product

import (
	"context"
	"errors"
)

// ErrProductNotFound ocorre quando o produto referenciado não existe
var ErrProductNotFound = errors.New("produto não encontrado")

// Repository define a interface para operações de repositório de produtos
type Repository interface {
	// Create cria um novo produto
	Create(ctx context.Context, p *Product) error

	// FindByID busca um produto pelo ID
	FindByID(ctx context.Context, id string) (*Product, error)

	// List lista os produtos com paginação
	List(ctx context.Context, limit, offset int) ([]*Product, error)

	// Count conta quantos produtos existem
	Count(ctx context.Context) (int, error)

	// Update atualiza os dados de um produto existente
	Update(ctx context.Context, p *Product) error

	// Delete remove um produto
	Delete(ctx context.Context, id string) error
}
