package template

import (
	"testing"

	"github.com/hugohenrick/erp-servicos/internal/domain/lifecycle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessageTemplate(t *testing.T) {
	tpl, err := NewMessageTemplate(
		"Lembrete de manutenção",
		lifecycle.PhaseRetention,
		ChannelLine,
		"Olá {{customer_name}}, a manutenção do {{ product_name }} está marcada para {{scheduled_date}}. {{customer_name}}",
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"customer_name", "product_name", "scheduled_date"}, tpl.Variables)

	_, err = NewMessageTemplate("", lifecycle.PhaseRetention, ChannelLine, "x")
	assert.ErrorIs(t, err, ErrEmptyName)
	_, err = NewMessageTemplate("n", lifecycle.PhaseRetention, ChannelLine, "")
	assert.ErrorIs(t, err, ErrEmptyBody)
	_, err = NewMessageTemplate("n", lifecycle.Phase("renewal"), ChannelLine, "x")
	assert.ErrorIs(t, err, ErrInvalidType)
	_, err = NewMessageTemplate("n", lifecycle.PhaseMaturity, Channel("fax"), "x")
	assert.ErrorIs(t, err, ErrInvalidChannel)
}

func TestRender(t *testing.T) {
	tpl := &MessageTemplate{Body: "Olá {{ customer_name }}, seu {{product_name}} vence em {{date}}."}

	got := tpl.Render(map[string]string{
		"customer_name": "Ana",
		"product_name":  "purificador",
	})
	assert.Equal(t, "Olá Ana, seu purificador vence em {{date}}.", got)
}

func TestExtractVariables_None(t *testing.T) {
	assert.Empty(t, ExtractVariables("sem marcadores { nem } {{ }}"))
}
