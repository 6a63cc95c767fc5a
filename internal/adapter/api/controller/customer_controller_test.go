package controller_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-servicos/internal/adapter/api/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerController_CRUD(t *testing.T) {
	s := newTestServer(t, nil, nil)
	id := s.createCustomer("Somchai Jaidee")
	s.createCustomer("Malee Srisuk")

	w := s.do(http.MethodGet, "/customers/"+id, nil)
	requireStatus(t, w, http.StatusOK)
	got := decode[dto.CustomerResponse](t, w)
	assert.Equal(t, "Somchai Jaidee", got.Name)
	assert.Equal(t, "active", got.Status)

	w = s.do(http.MethodPut, "/customers/"+id, gin.H{"name": "Somchai J.", "email": "somchai@example.com", "line_user_id": "U123"})
	requireStatus(t, w, http.StatusOK)
	assert.Equal(t, "U123", decode[dto.CustomerResponse](t, w).LineUserID)

	w = s.do(http.MethodGet, "/customers/search?name=somchai", nil)
	requireStatus(t, w, http.StatusOK)
	found := decode[dto.CustomerListResponse](t, w)
	require.Len(t, found.Items, 1)
	assert.Equal(t, id, found.Items[0].ID)

	requireStatus(t, s.do(http.MethodGet, "/customers/search", nil), http.StatusBadRequest)

	w = s.do(http.MethodGet, "/customers", nil)
	requireStatus(t, w, http.StatusOK)
	assert.Equal(t, 2, decode[dto.CustomerListResponse](t, w).Total)

	requireStatus(t, s.do(http.MethodPatch, "/customers/"+id+"/status", gin.H{"status": "blocked"}), http.StatusOK)
	requireStatus(t, s.do(http.MethodPatch, "/customers/"+id+"/status", gin.H{"status": "vip"}), http.StatusBadRequest)

	w = s.do(http.MethodGet, "/customers/"+id, nil)
	assert.Equal(t, "blocked", decode[dto.CustomerResponse](t, w).Status)

	requireStatus(t, s.do(http.MethodDelete, "/customers/"+id, nil), http.StatusOK)
	requireStatus(t, s.do(http.MethodGet, "/customers/"+id, nil), http.StatusNotFound)
}

func TestCustomerController_Validation(t *testing.T) {
	s := newTestServer(t, nil, nil)

	requireStatus(t, s.do(http.MethodPost, "/customers", gin.H{"phone": "0800000000"}), http.StatusBadRequest)
	requireStatus(t, s.do(http.MethodPost, "/customers", gin.H{"name": "X", "email": "não-é-email"}), http.StatusBadRequest)
}

func TestCustomerController_ProductsAndActivities(t *testing.T) {
	s := newTestServer(t, nil, nil)
	productID := s.createProduct("Purificador", "tangible", "1000", 12, 6)
	customerID := s.createCustomer("Somchai")
	s.purchase(customerID, productID, "2024-01-31")

	w := s.do(http.MethodGet, "/customers/"+customerID+"/products", nil)
	requireStatus(t, w, http.StatusOK)
	products := decode[[]dto.CustomerProductResponse](t, w)
	require.Len(t, products, 1)
	assert.Equal(t, productID, products[0].ProductID)

	w = s.do(http.MethodGet, "/customers/"+customerID, nil)
	assert.NotNil(t, decode[dto.CustomerResponse](t, w).LastPurchaseAt)

	requireStatus(t, s.do(http.MethodGet, "/customers/"+customerID+"/activities", nil), http.StatusOK)
	requireStatus(t, s.do(http.MethodGet, "/customers/nao-existe/products", nil), http.StatusNotFound)
	requireStatus(t, s.do(http.MethodGet, "/customers/nao-existe/activities", nil), http.StatusNotFound)
}
