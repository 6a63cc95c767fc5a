package service

import (
	"context"
	"testing"
	"time"

	"github.com/hugohenrick/erp-servicos/internal/adapter/repository/memory"
	"github.com/hugohenrick/erp-servicos/internal/domain/lifecycle"
	"github.com/hugohenrick/erp-servicos/internal/domain/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateService_DefaultSwitching(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	resolver := NewTemplateResolver(time.Minute)
	svc := NewTemplateService(store, resolver)

	first, err := svc.Create(ctx, TemplateInput{
		Name: "Lembrete 1", Type: lifecycle.PhaseRetention, Channel: template.ChannelLine,
		Body: "Olá {{customer_name}}", IsDefault: true,
	})
	require.NoError(t, err)

	resolved, err := resolver.Resolve(ctx, store.Templates(), lifecycle.FlowConfig{}, lifecycle.PhaseRetention)
	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, first.ID, *resolved)

	second, err := svc.Create(ctx, TemplateInput{
		Name: "Lembrete 2", Type: lifecycle.PhaseRetention, Channel: template.ChannelSMS,
		Body: "Oi {{customer_name}}, sua manutenção é em {{date}}", IsDefault: true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"customer_name", "date"}, second.Variables)

	// o cache foi invalidado pela gravação
	resolved, err = resolver.Resolve(ctx, store.Templates(), lifecycle.FlowConfig{}, lifecycle.PhaseRetention)
	require.NoError(t, err)
	assert.Equal(t, second.ID, *resolved)

	reloaded, err := svc.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.IsDefault)

	list, err := svc.List(ctx, lifecycle.PhaseRetention)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	rendered, err := svc.Render(ctx, second.ID, map[string]string{"customer_name": "Somchai"})
	require.NoError(t, err)
	assert.Equal(t, "Oi Somchai, sua manutenção é em {{date}}", rendered)
}

func TestTemplateService_Update(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewTemplateService(store, NewTemplateResolver(time.Minute))

	created, err := svc.Create(ctx, TemplateInput{
		Name: "Boas-vindas", Type: lifecycle.PhaseOnboarding, Channel: template.ChannelLine, Body: "Bem-vindo",
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, TemplateInput{
		Name: "Boas-vindas", Type: lifecycle.PhaseOnboarding, Channel: template.ChannelEmail, Body: "Bem-vindo, {{customer_name}}",
	})
	require.NoError(t, err)
	assert.Equal(t, template.ChannelEmail, updated.Channel)

	_, err = svc.Update(ctx, created.ID, TemplateInput{Name: "", Type: lifecycle.PhaseOnboarding, Channel: template.ChannelLine, Body: "x"})
	assert.ErrorIs(t, err, template.ErrEmptyName)

	_, err = svc.Update(ctx, "nao-existe", TemplateInput{Name: "x", Type: lifecycle.PhaseOnboarding, Channel: template.ChannelLine, Body: "x"})
	assert.ErrorIs(t, err, template.ErrTemplateNotFound)
}

func TestTemplateResolver_MissingDefaultIsNil(t *testing.T) {
	store := memory.NewStore()
	resolver := NewTemplateResolver(time.Minute)

	id, err := resolver.Resolve(context.Background(), store.Templates(), lifecycle.FlowConfig{}, lifecycle.PhaseMaturity)
	require.NoError(t, err)
	assert.Nil(t, id)

	empty := ""
	cfg := lifecycle.FlowConfig{Maturity: lifecycle.TaskPhaseConfig{Enabled: true, MessageTemplateID: &empty}}
	id, err = resolver.Resolve(context.Background(), store.Templates(), cfg, lifecycle.PhaseMaturity)
	require.NoError(t, err)
	assert.Nil(t, id)
}

// slowDefaults executa afterLookup entre a leitura do padrão e o retorno ao resolvedor
type slowDefaults struct {
	template.Repository
	afterLookup func()
}

func (r *slowDefaults) FindDefault(ctx context.Context, phase lifecycle.Phase) (*template.MessageTemplate, error) {
	def, err := r.Repository.FindDefault(ctx, phase)
	if r.afterLookup != nil {
		hook := r.afterLookup
		r.afterLookup = nil
		hook()
	}
	return def, err
}

func TestTemplateResolver_InvalidateDuringLookupIsNotCached(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	resolver := NewTemplateResolver(time.Minute)
	svc := NewTemplateService(store, resolver)

	var created *template.MessageTemplate
	repo := &slowDefaults{Repository: store.Templates()}
	repo.afterLookup = func() {
		var err error
		created, err = svc.Create(ctx, TemplateInput{
			Name: "Lembrete", Type: lifecycle.PhaseRetention, Channel: template.ChannelLine,
			Body: "Olá {{customer_name}}", IsDefault: true,
		})
		require.NoError(t, err)
	}

	// a busca viu o estado anterior à gravação
	id, err := resolver.Resolve(ctx, repo, lifecycle.FlowConfig{}, lifecycle.PhaseRetention)
	require.NoError(t, err)
	assert.Nil(t, id)

	id, err = resolver.Resolve(ctx, repo, lifecycle.FlowConfig{}, lifecycle.PhaseRetention)
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, created.ID, *id)
}
