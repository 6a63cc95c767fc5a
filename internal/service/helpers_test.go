package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/hugohenrick/erp-servicos/internal/adapter/repository/memory"
	"github.com/hugohenrick/erp-servicos/internal/domain/customer"
	"github.com/hugohenrick/erp-servicos/internal/domain/lifecycle"
	"github.com/hugohenrick/erp-servicos/internal/domain/product"
	"github.com/hugohenrick/erp-servicos/internal/domain/transaction"
	"github.com/hugohenrick/erp-servicos/internal/domain/unitofwork"
	"github.com/hugohenrick/erp-servicos/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type recordingPublisher struct {
	mu     sync.Mutex
	topics []string
}

func (p *recordingPublisher) Publish(_ context.Context, topic string, _ any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.topics = append(p.topics, topic)
	return nil
}

func (p *recordingPublisher) Topics() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.topics...)
}

type fixture struct {
	store     *memory.Store
	resolver  *TemplateResolver
	publisher *recordingPublisher
	clock     fixedClock
	customer  *customer.Customer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()

	c, err := customer.NewCustomer("Somchai", "0800000000", "somchai@example.com")
	require.NoError(t, err)
	require.NoError(t, store.Customers().Create(context.Background(), c))

	return &fixture{
		store:     store,
		resolver:  NewTemplateResolver(time.Minute),
		publisher: &recordingPublisher{},
		clock:     fixedClock{now: time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC)},
		customer:  c,
	}
}

func (f *fixture) purchaseService(uow unitofwork.UnitOfWork) *PurchaseService {
	return NewPurchaseService(
		uow,
		NewMaterializer(f.resolver),
		f.publisher,
		transaction.VATSettings{Enabled: true, Rate: decimal.RequireFromString("0.07")},
		f.clock,
		logger.NewNop(),
	)
}

func allPhases() lifecycle.FlowConfig {
	return lifecycle.FlowConfig{
		Onboarding: lifecycle.TaskPhaseConfig{Enabled: true},
		Retention:  lifecycle.RetentionPhaseConfig{Enabled: true},
		Maturity:   lifecycle.TaskPhaseConfig{Enabled: true},
	}
}

func (f *fixture) createProduct(t *testing.T, name string, productType product.Type, price int64, lifecycleMonths, interval int, cfg lifecycle.FlowConfig) *product.Product {
	t.Helper()
	p, err := product.NewProduct(name, productType, decimal.NewFromInt(price))
	require.NoError(t, err)
	require.NoError(t, p.SetLifecycle(lifecycleMonths, interval, nil, cfg))
	require.NoError(t, f.store.Products().Create(context.Background(), p))
	return p
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
