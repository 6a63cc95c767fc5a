// Package memory mantém todos os dados em memória, para desenvolvimento e testes.
package memory

import (
	"context"
	"sync"

	"github.com/hugohenrick/erp-servicos/internal/domain/activity"
	"github.com/hugohenrick/erp-servicos/internal/domain/customer"
	"github.com/hugohenrick/erp-servicos/internal/domain/customerproduct"
	"github.com/hugohenrick/erp-servicos/internal/domain/product"
	"github.com/hugohenrick/erp-servicos/internal/domain/template"
	"github.com/hugohenrick/erp-servicos/internal/domain/touchpoint"
	"github.com/hugohenrick/erp-servicos/internal/domain/transaction"
	"github.com/hugohenrick/erp-servicos/internal/domain/unitofwork"
)

// state guarda ponteiros para cópias; um registro nunca é alterado no lugar,
// apenas substituído, o que permite ao rollback saber se ainda é o dono da chave.
type state struct {
	products         map[string]*product.Product
	customers        map[string]*customer.Customer
	transactions     map[string]*transaction.Transaction
	transactionOrder []string
	customerProducts map[string]*customerproduct.CustomerProduct
	touchpoints      map[string]*touchpoint.Touchpoint
	templates        map[string]*template.MessageTemplate
	activities       []*activity.Log
}

func newState() *state {
	return &state{
		products:         make(map[string]*product.Product),
		customers:        make(map[string]*customer.Customer),
		transactions:     make(map[string]*transaction.Transaction),
		customerProducts: make(map[string]*customerproduct.CustomerProduct),
		touchpoints:      make(map[string]*touchpoint.Touchpoint),
		templates:        make(map[string]*template.MessageTemplate),
	}
}

// undoLog acumula, na ordem das escritas de um Do, como desfazer cada uma.
// As operações rodam com Store.mu travado.
type undoLog struct {
	ops []func()
}

func (u *undoLog) add(op func()) {
	if u != nil {
		u.ops = append(u.ops, op)
	}
}

func (u *undoLog) revert() {
	for i := len(u.ops) - 1; i >= 0; i-- {
		u.ops[i]()
	}
}

// put grava v em m[key]. O rollback só restaura o valor anterior se a chave
// ainda guardar v, preservando gravações feitas depois por outros.
func put[V any](u *undoLog, m map[string]*V, key string, v *V) {
	prev, existed := m[key]
	m[key] = v
	u.add(func() {
		if m[key] != v {
			return
		}
		if existed {
			m[key] = prev
		} else {
			delete(m, key)
		}
	})
}

func remove[V any](u *undoLog, m map[string]*V, key string) {
	prev, ok := m[key]
	if !ok {
		return
	}
	delete(m, key)
	u.add(func() {
		if _, taken := m[key]; !taken {
			m[key] = prev
		}
	})
}

func removeFirst[T any](items []T, match func(T) bool) []T {
	for i, item := range items {
		if match(item) {
			return append(items[:i], items[i+1:]...)
		}
	}
	return items
}

// Store implementa unitofwork.UnitOfWork em memória
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex
	data *state
}

// NewStore cria um armazenamento vazio
func NewStore() *Store {
	return &Store{data: newState()}
}

// Do executa fn e, se ela falhar, desfaz apenas as escritas feitas por fn.
// Gravações concorrentes fora do Do são mantidas. Chamadas a Do são
// serializadas entre si.
func (s *Store) Do(ctx context.Context, fn func(repos unitofwork.Repositories) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	tx := &txRepositories{s: s, undo: &undoLog{}}
	if err := fn(tx); err != nil {
		s.mu.Lock()
		tx.undo.revert()
		s.mu.Unlock()
		return err
	}

	return nil
}

func (s *Store) Products() product.Repository                 { return &productRepository{s: s} }
func (s *Store) Customers() customer.Repository               { return &customerRepository{s: s} }
func (s *Store) Transactions() transaction.Repository         { return &transactionRepository{s: s} }
func (s *Store) CustomerProducts() customerproduct.Repository { return &customerProductRepository{s: s} }
func (s *Store) Touchpoints() touchpoint.Repository           { return &touchpointRepository{s: s} }
func (s *Store) Templates() template.Repository               { return &templateRepository{s: s} }
func (s *Store) Activities() activity.Repository              { return &activityRepository{s: s} }

// txRepositories são os repositórios entregues a fn dentro de um Do
type txRepositories struct {
	s    *Store
	undo *undoLog
}

func (t *txRepositories) Products() product.Repository {
	return &productRepository{s: t.s, undo: t.undo}
}

func (t *txRepositories) Customers() customer.Repository {
	return &customerRepository{s: t.s, undo: t.undo}
}

func (t *txRepositories) Transactions() transaction.Repository {
	return &transactionRepository{s: t.s, undo: t.undo}
}

func (t *txRepositories) CustomerProducts() customerproduct.Repository {
	return &customerProductRepository{s: t.s, undo: t.undo}
}

func (t *txRepositories) Touchpoints() touchpoint.Repository {
	return &touchpointRepository{s: t.s, undo: t.undo}
}

func (t *txRepositories) Templates() template.Repository {
	return &templateRepository{s: t.s, undo: t.undo}
}

func (t *txRepositories) Activities() activity.Repository {
	return &activityRepository{s: t.s, undo: t.undo}
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return make([]T, 0)
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
