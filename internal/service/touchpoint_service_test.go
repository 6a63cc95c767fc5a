package service

import (
	"context"
	"testing"

	"github.com/hugohenrick/erp-servicos/internal/domain/customerproduct"
	"github.com/hugohenrick/erp-servicos/internal/domain/product"
	"github.com/hugohenrick/erp-servicos/internal/domain/touchpoint"
	"github.com/hugohenrick/erp-servicos/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTouchpointService(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	p := f.createProduct(t, "Purificador", product.TypeTangible, 1000, 12, 6, allPhases())

	result, err := f.purchaseService(f.store).RecordPurchase(ctx, PurchaseInput{
		CustomerID: f.customer.ID,
		Items:      []PurchaseItemInput{{ProductID: p.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	svc := NewTouchpointService(f.store, f.clock, logger.NewNop())

	due := f.clock.Now()
	pending, err := svc.List(ctx, touchpoint.Filter{Status: touchpoint.StatusPending, DueBefore: &due})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	onboarding := pending[0]

	sent, err := svc.ChangeStatus(ctx, onboarding.ID, touchpoint.StatusSent)
	require.NoError(t, err)
	assert.Equal(t, touchpoint.StatusSent, sent.Status)
	require.NotNil(t, sent.SentAt)
	assert.Equal(t, f.clock.Now(), *sent.SentAt)

	_, err = svc.ChangeStatus(ctx, onboarding.ID, touchpoint.StatusPending)
	assert.ErrorIs(t, err, touchpoint.ErrInvalidTransition)

	completed, err := svc.ChangeStatus(ctx, onboarding.ID, touchpoint.StatusCompleted)
	require.NoError(t, err)
	assert.NotNil(t, completed.CompletedAt)

	_, err = svc.ChangeStatus(ctx, "nao-existe", touchpoint.StatusSent)
	assert.ErrorIs(t, err, touchpoint.ErrTouchpointNotFound)

	all, err := svc.ListByCustomerProduct(ctx, result.CustomerProducts[0].ID)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, touchpoint.StatusCompleted, all[0].Status)

	_, err = svc.ListByCustomerProduct(ctx, "nao-existe")
	assert.ErrorIs(t, err, customerproduct.ErrCustomerProductNotFound)
}
