package repository

import (
	"context"
	"errors"

	"github.com/hugohenrick/erp-servicos/internal/domain/activity"
	"github.com/hugohenrick/erp-servicos/internal/domain/customer"
	"github.com/hugohenrick/erp-servicos/internal/domain/customerproduct"
	"github.com/hugohenrick/erp-servicos/internal/domain/product"
	"github.com/hugohenrick/erp-servicos/internal/domain/template"
	"github.com/hugohenrick/erp-servicos/internal/domain/touchpoint"
	"github.com/hugohenrick/erp-servicos/internal/domain/transaction"
	"github.com/hugohenrick/erp-servicos/internal/domain/unitofwork"
	"github.com/hugohenrick/erp-servicos/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// DBTX é satisfeita tanto pelo pool quanto por uma transação aberta
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

type repositories struct {
	products         product.Repository
	customers        customer.Repository
	transactions     transaction.Repository
	customerProducts customerproduct.Repository
	touchpoints      touchpoint.Repository
	templates        template.Repository
	activities       activity.Repository
}

func newRepositories(db DBTX) *repositories {
	return &repositories{
		products:         NewProductRepository(db),
		customers:        NewCustomerRepository(db),
		transactions:     NewTransactionRepository(db),
		customerProducts: NewCustomerProductRepository(db),
		touchpoints:      NewTouchpointRepository(db),
		templates:        NewTemplateRepository(db),
		activities:       NewActivityRepository(db),
	}
}

func (r *repositories) Products() product.Repository                 { return r.products }
func (r *repositories) Customers() customer.Repository               { return r.customers }
func (r *repositories) Transactions() transaction.Repository         { return r.transactions }
func (r *repositories) CustomerProducts() customerproduct.Repository { return r.customerProducts }
func (r *repositories) Touchpoints() touchpoint.Repository           { return r.touchpoints }
func (r *repositories) Templates() template.Repository               { return r.templates }
func (r *repositories) Activities() activity.Repository              { return r.activities }

// Store implementa unitofwork.UnitOfWork sobre o PostgreSQL
type Store struct {
	*repositories
	db *database.PostgresDB
}

// NewStore cria um Store cujos repositórios usam o pool de conexões
func NewStore(db *database.PostgresDB) *Store {
	return &Store{
		repositories: newRepositories(db.Pool()),
		db:           db,
	}
}

// Do executa fn com repositórios ligados a uma única transação do banco
func (s *Store) Do(ctx context.Context, fn func(repos unitofwork.Repositories) error) error {
	return s.db.Transaction(ctx, func(tx pgx.Tx) error {
		return fn(newRepositories(tx))
	})
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func nullableString(s *string) any {
	if s == nil || *s == "" {
		return nil
	}
	return *s
}
