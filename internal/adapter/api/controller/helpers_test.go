package controller_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-servicos/internal/adapter/api/controller"
	"github.com/hugohenrick/erp-servicos/internal/adapter/api/route"
	"github.com/hugohenrick/erp-servicos/internal/adapter/api/validation"
	"github.com/hugohenrick/erp-servicos/internal/adapter/repository/memory"
	"github.com/hugohenrick/erp-servicos/internal/domain/transaction"
	"github.com/hugohenrick/erp-servicos/internal/domain/unitofwork"
	"github.com/hugohenrick/erp-servicos/internal/service"
	"github.com/hugohenrick/erp-servicos/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, string, any) error { return nil }

type testServer struct {
	t      *testing.T
	router *gin.Engine
	store  *memory.Store
}

// newTestServer monta a API sobre o store em memória; wrap permite trocar a unidade de trabalho
func newTestServer(t *testing.T, store *memory.Store, wrap func(unitofwork.UnitOfWork) unitofwork.UnitOfWork) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, validation.Register())

	if store == nil {
		store = memory.NewStore()
	}
	var uow unitofwork.UnitOfWork = store
	if wrap != nil {
		uow = wrap(store)
	}

	log := logger.NewNop()
	clock := fixedClock{now: time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC)}
	resolver := service.NewTemplateResolver(time.Minute)
	vat := transaction.VATSettings{Enabled: true, Rate: decimal.RequireFromString("0.07")}
	purchaseService := service.NewPurchaseService(uow, service.NewMaterializer(resolver), nopPublisher{}, vat, clock, log)
	touchpointService := service.NewTouchpointService(uow, clock, log)
	templateService := service.NewTemplateService(uow, resolver)

	router := gin.New()
	api := router.Group("/api/v1")
	route.RegisterHealthRoutes(api, "memory")
	route.RegisterProductRoutes(api, controller.NewProductController(uow.Products(), clock, log))
	route.RegisterCustomerRoutes(api, controller.NewCustomerController(uow.Customers(), uow.CustomerProducts(), uow.Activities(), log))
	route.RegisterTransactionRoutes(api, controller.NewTransactionController(purchaseService, uow.Transactions(), log))
	route.RegisterLifecycleRoutes(api, controller.NewLifecycleController(uow.CustomerProducts(), touchpointService, log))
	route.RegisterTouchpointRoutes(api, controller.NewTouchpointController(touchpointService, log))
	route.RegisterTemplateRoutes(api, controller.NewTemplateController(templateService, log))

	return &testServer{t: t, router: router, store: store}
}

func (s *testServer) do(method, path string, body any) *httptest.ResponseRecorder {
	s.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, "/api/v1"+path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, status int) {
	t.Helper()
	require.Equal(t, status, w.Code, w.Body.String())
}

func allPhases() gin.H {
	return gin.H{
		"onboarding": gin.H{"enabled": true},
		"retention":  gin.H{"enabled": true},
		"maturity":   gin.H{"enabled": true},
	}
}

func (s *testServer) createProduct(name, productType string, price string, lifecycleMonths, interval int) string {
	s.t.Helper()
	w := s.do(http.MethodPost, "/products", gin.H{
		"name":                    name,
		"product_type":            productType,
		"price":                   price,
		"lifecycle_months":        lifecycleMonths,
		"service_interval_months": interval,
		"service_flow_config":     allPhases(),
	})
	requireStatus(s.t, w, http.StatusCreated)
	return decode[map[string]any](s.t, w)["id"].(string)
}

func (s *testServer) createCustomer(name string) string {
	s.t.Helper()
	w := s.do(http.MethodPost, "/customers", gin.H{"name": name, "phone": "0811111111"})
	requireStatus(s.t, w, http.StatusCreated)
	return decode[map[string]any](s.t, w)["id"].(string)
}
