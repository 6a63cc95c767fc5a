package unitofwork

import (
	"context"

	"github.com/hugohenrick/erp-servicos/internal/domain/activity"
	"github.com/hugohenrick/erp-servicos/internal/domain/customer"
	"github.com/hugohenrick/erp-servicos/internal/domain/customerproduct"
	"github.com/hugohenrick/erp-servicos/internal/domain/product"
	"github.com/hugohenrick/erp-servicos/internal/domain/template"
	"github.com/hugohenrick/erp-servicos/internal/domain/touchpoint"
	"github.com/hugohenrick/erp-servicos/internal/domain/transaction"
)

// Repositories agrupa os repositórios de um mesmo armazenamento
type Repositories interface {
	Products() product.Repository
	Customers() customer.Repository
	Transactions() transaction.Repository
	CustomerProducts() customerproduct.Repository
	Touchpoints() touchpoint.Repository
	Templates() template.Repository
	Activities() activity.Repository
}

// UnitOfWork dá acesso aos repositórios e executa funções dentro de uma transação.
// Se fn retornar erro nada do que foi gravado por ela é mantido.
type UnitOfWork interface {
	Repositories
	Do(ctx context.Context, fn func(repos Repositories) error) error
}
