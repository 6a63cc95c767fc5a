package controller_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-servicos/internal/adapter/api/dto"
	"github.com/hugohenrick/erp-servicos/internal/adapter/repository/memory"
	"github.com/hugohenrick/erp-servicos/internal/domain/touchpoint"
	"github.com/hugohenrick/erp-servicos/internal/domain/unitofwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBatchFailed = errors.New("falha simulada ao gravar tarefas")

type failingTouchpoints struct{ touchpoint.Repository }

func (failingTouchpoints) CreateBatch(context.Context, []*touchpoint.Touchpoint) error {
	return errBatchFailed
}

type failingRepos struct{ unitofwork.Repositories }

func (r failingRepos) Touchpoints() touchpoint.Repository {
	return failingTouchpoints{r.Repositories.Touchpoints()}
}

type failingUoW struct{ unitofwork.UnitOfWork }

func (u failingUoW) Do(ctx context.Context, fn func(repos unitofwork.Repositories) error) error {
	return u.UnitOfWork.Do(ctx, func(repos unitofwork.Repositories) error {
		return fn(failingRepos{repos})
	})
}

func failing(uow unitofwork.UnitOfWork) unitofwork.UnitOfWork { return failingUoW{uow} }

func TestTransactionController_Create(t *testing.T) {
	s := newTestServer(t, nil, nil)
	productID := s.createProduct("Purificador", "tangible", "1000", 12, 6)
	customerID := s.createCustomer("Somchai")

	w := s.do(http.MethodPost, "/transactions", gin.H{
		"customer_id":     customerID,
		"discount_amount": "100",
		"payment_method":  "cash",
		"items": []gin.H{
			{"product_id": productID, "quantity": 1, "service_start_date": "2024-01-31"},
		},
	})
	requireStatus(t, w, http.StatusCreated)
	resp := decode[dto.PurchaseResponse](t, w)

	assert.Nil(t, resp.ScheduleError)
	assert.NotEmpty(t, resp.Transaction.TransactionNo)
	assert.Equal(t, "2024-01-15", resp.Transaction.TransactionDate)
	assert.Equal(t, "1000.00", resp.Transaction.Subtotal)
	assert.Equal(t, "63.00", resp.Transaction.TaxAmount)
	assert.Equal(t, "963.00", resp.Transaction.NetAmount)
	assert.Equal(t, "Pending", resp.Transaction.PaymentStatus)

	require.Len(t, resp.CustomerProducts, 1)
	cp := resp.CustomerProducts[0]
	assert.Equal(t, "2024-01-31", cp.InstallationDate)
	assert.Equal(t, "2025-01-25", cp.WarrantyEndDate)
	assert.Equal(t, "2024-07-29", cp.NextServiceDate)

	require.Len(t, resp.Touchpoints, 3)
	assert.Equal(t, "2024-01-31", resp.Touchpoints[0].ScheduledDate)
	assert.Equal(t, "2024-07-31", resp.Touchpoints[1].ScheduledDate)
	assert.Equal(t, "2025-01-31", resp.Touchpoints[2].ScheduledDate)

	w = s.do(http.MethodGet, "/transactions/"+resp.Transaction.ID, nil)
	requireStatus(t, w, http.StatusOK)
	assert.Equal(t, resp.Transaction.TransactionNo, decode[dto.TransactionResponse](t, w).TransactionNo)

	w = s.do(http.MethodGet, "/transactions", nil)
	requireStatus(t, w, http.StatusOK)
	assert.Equal(t, 1, decode[dto.TransactionListResponse](t, w).Total)
}

func TestTransactionController_CreateValidation(t *testing.T) {
	s := newTestServer(t, nil, nil)
	productID := s.createProduct("Purificador", "tangible", "1000", 12, 6)
	customerID := s.createCustomer("Somchai")

	tests := []struct {
		name   string
		body   gin.H
		status int
	}{
		{"sem itens", gin.H{"customer_id": customerID, "items": []gin.H{}}, http.StatusBadRequest},
		{"quantidade zero", gin.H{"customer_id": customerID, "items": []gin.H{{"product_id": productID, "quantity": 0}}}, http.StatusBadRequest},
		{"data inválida", gin.H{"customer_id": customerID, "transaction_date": "15/01/2024", "items": []gin.H{{"product_id": productID, "quantity": 1}}}, http.StatusBadRequest},
		{"cliente inexistente", gin.H{"customer_id": "nao-existe", "items": []gin.H{{"product_id": productID, "quantity": 1}}}, http.StatusNotFound},
		{"produto inexistente", gin.H{"customer_id": customerID, "items": []gin.H{{"product_id": "nao-existe", "quantity": 1}}}, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireStatus(t, s.do(http.MethodPost, "/transactions", tt.body), tt.status)
		})
	}

	w := s.do(http.MethodGet, "/transactions", nil)
	assert.Equal(t, 0, decode[dto.TransactionListResponse](t, w).Total)
}

func TestTransactionController_ScheduleFailureAndRetry(t *testing.T) {
	store := memory.NewStore()
	broken := newTestServer(t, store, failing)
	productID := broken.createProduct("Purificador", "tangible", "1000", 12, 6)
	customerID := broken.createCustomer("Somchai")

	w := broken.do(http.MethodPost, "/transactions", gin.H{
		"customer_id": customerID,
		"items":       []gin.H{{"product_id": productID, "quantity": 1}},
	})
	requireStatus(t, w, http.StatusMultiStatus)
	resp := decode[dto.PurchaseResponse](t, w)

	require.NotNil(t, resp.ScheduleError)
	require.Len(t, resp.ScheduleError.Failures, 1)
	assert.Equal(t, resp.Transaction.Items[0].ID, resp.ScheduleError.Failures[0].TransactionItemID)
	assert.Empty(t, resp.CustomerProducts)
	assert.Empty(t, resp.Touchpoints)

	healthy := newTestServer(t, store, nil)
	w = healthy.do(http.MethodPost, "/transactions/"+resp.Transaction.ID+"/schedule", nil)
	requireStatus(t, w, http.StatusOK)
	retried := decode[dto.PurchaseResponse](t, w)
	assert.Nil(t, retried.ScheduleError)
	assert.Len(t, retried.CustomerProducts, 1)
	assert.Len(t, retried.Touchpoints, 3)

	w = healthy.do(http.MethodPost, "/transactions/"+resp.Transaction.ID+"/schedule", nil)
	requireStatus(t, w, http.StatusOK)
	assert.Empty(t, decode[dto.PurchaseResponse](t, w).CustomerProducts)
}

func TestTransactionController_PaymentStatus(t *testing.T) {
	s := newTestServer(t, nil, nil)
	productID := s.createProduct("Limpeza", "service", "300", 0, 0)
	customerID := s.createCustomer("Somchai")

	w := s.do(http.MethodPost, "/transactions", gin.H{
		"customer_id": customerID,
		"items":       []gin.H{{"product_id": productID, "quantity": 2}},
	})
	requireStatus(t, w, http.StatusCreated)
	resp := decode[dto.PurchaseResponse](t, w)
	assert.Empty(t, resp.CustomerProducts)
	id := resp.Transaction.ID

	w = s.do(http.MethodPatch, "/transactions/"+id+"/payment-status", gin.H{"status": "Paid"})
	requireStatus(t, w, http.StatusOK)
	assert.Equal(t, "Paid", decode[dto.TransactionResponse](t, w).PaymentStatus)

	requireStatus(t, s.do(http.MethodPatch, "/transactions/"+id+"/payment-status", gin.H{"status": "Pending"}), http.StatusConflict)
	requireStatus(t, s.do(http.MethodPatch, "/transactions/"+id+"/payment-status", gin.H{"status": "Refunded"}), http.StatusBadRequest)
	requireStatus(t, s.do(http.MethodPatch, "/transactions/nao-existe/payment-status", gin.H{"status": "Paid"}), http.StatusNotFound)
}
