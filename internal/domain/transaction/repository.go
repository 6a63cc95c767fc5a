package transaction

import (
	"context"
	"errors"
)

// ErrTransactionNotFound ocorre quando a transação não existe
var ErrTransactionNotFound = errors.New("transação não encontrada")

// Repository define a interface para operações de repositório de transações
type Repository interface {
	// Create grava a transação e seus itens
	Create(ctx context.Context, t *Transaction) error

	// FindByID busca uma transação com seus itens
	FindByID(ctx context.Context, id string) (*Transaction, error)

	// List lista as transações com paginação, das mais recentes para as mais antigas
	List(ctx context.Context, limit, offset int) ([]*Transaction, error)

	// Count conta quantas transações existem
	Count(ctx context.Context) (int, error)

	// CountByNumberPrefix conta transações cujo número começa com o prefixo
	CountByNumberPrefix(ctx context.Context, prefix string) (int, error)

	// UpdatePaymentStatus atualiza o status de pagamento
	UpdatePaymentStatus(ctx context.Context, id string, status PaymentStatus) error
}
