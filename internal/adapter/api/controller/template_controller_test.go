package controller_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-servicos/internal/adapter/api/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *testServer) createTemplate(name, phase string, isDefault bool) dto.TemplateResponse {
	s.t.Helper()
	w := s.do(http.MethodPost, "/message-templates", gin.H{
		"name":       name,
		"type":       phase,
		"body":       "Olá {{customer_name}}, sua manutenção de {{product_name}} está chegando.",
		"is_default": isDefault,
	})
	requireStatus(s.t, w, http.StatusCreated)
	return decode[dto.TemplateResponse](s.t, w)
}

func TestTemplateController_CRUDAndRender(t *testing.T) {
	s := newTestServer(t, nil, nil)
	tpl := s.createTemplate("Lembrete", "retention", true)

	assert.Equal(t, "line", tpl.Channel)
	assert.Equal(t, []string{"customer_name", "product_name"}, tpl.Variables)

	w := s.do(http.MethodPost, "/message-templates/"+tpl.ID+"/render", gin.H{
		"values": gin.H{"customer_name": "Somchai", "product_name": "Purificador"},
	})
	requireStatus(t, w, http.StatusOK)
	assert.Equal(t, "Olá Somchai, sua manutenção de Purificador está chegando.", decode[dto.RenderTemplateResponse](t, w).Content)

	second := s.createTemplate("Lembrete novo", "retention", true)
	w = s.do(http.MethodGet, "/message-templates/"+tpl.ID, nil)
	requireStatus(t, w, http.StatusOK)
	assert.False(t, decode[dto.TemplateResponse](t, w).IsDefault)

	w = s.do(http.MethodPut, "/message-templates/"+second.ID, gin.H{
		"name": "Boas-vindas", "type": "onboarding", "channel": "sms", "body": "Bem-vindo!",
	})
	requireStatus(t, w, http.StatusOK)
	updated := decode[dto.TemplateResponse](t, w)
	assert.Equal(t, "sms", updated.Channel)
	assert.Empty(t, updated.Variables)

	w = s.do(http.MethodGet, "/message-templates?type=retention", nil)
	requireStatus(t, w, http.StatusOK)
	assert.Len(t, decode[[]dto.TemplateResponse](t, w), 1)

	requireStatus(t, s.do(http.MethodGet, "/message-templates?type=welcome", nil), http.StatusBadRequest)
	requireStatus(t, s.do(http.MethodGet, "/message-templates/nao-existe", nil), http.StatusNotFound)
	requireStatus(t, s.do(http.MethodPost, "/message-templates", gin.H{"name": "X", "type": "welcome", "body": "b"}), http.StatusBadRequest)
	requireStatus(t, s.do(http.MethodPost, "/message-templates", gin.H{"name": "X", "type": "retention", "channel": "fax", "body": "b"}), http.StatusBadRequest)
}

func TestTemplateController_DefaultUsedByPurchase(t *testing.T) {
	s := newTestServer(t, nil, nil)
	tpl := s.createTemplate("Lembrete", "retention", true)
	productID := s.createProduct("Purificador", "tangible", "1000", 12, 6)
	customerID := s.createCustomer("Somchai")

	resp := s.purchase(customerID, productID, "2024-01-31")
	require.Len(t, resp.Touchpoints, 3)

	for _, tp := range resp.Touchpoints {
		if tp.Phase == "retention" {
			require.NotNil(t, tp.MessageTemplateID)
			assert.Equal(t, tpl.ID, *tp.MessageTemplateID)
		} else {
			assert.Nil(t, tp.MessageTemplateID)
		}
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, nil, nil)
	w := s.do(http.MethodGet, "/health", nil)
	requireStatus(t, w, http.StatusOK)
	assert.Equal(t, "ok", decode[map[string]any](t, w)["status"])
}
