package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/hugohenrick/erp-servicos/internal/domain/lifecycle"
	"github.com/hugohenrick/erp-servicos/internal/domain/template"
	"github.com/patrickmn/go-cache"
)

// DefaultTemplateCacheTTL é o tempo que o template padrão de cada fase fica em cache
const DefaultTemplateCacheTTL = 5 * time.Minute

// TemplateResolver escolhe o template de mensagem de cada tarefa agendada
type TemplateResolver struct {
	defaults *cache.Cache

	// generation muda a cada Invalidate; uma busca iniciada antes dela não grava no cache
	mu         sync.Mutex
	generation uint64
}

// NewTemplateResolver cria um resolvedor com cache dos templates padrão
func NewTemplateResolver(ttl time.Duration) *TemplateResolver {
	return &TemplateResolver{defaults: cache.New(ttl, 2*ttl)}
}

// Resolve retorna o template explícito da fase, senão o padrão da fase, senão nil
func (r *TemplateResolver) Resolve(ctx context.Context, repo template.Repository, cfg lifecycle.FlowConfig, phase lifecycle.Phase) (*string, error) {
	if id := cfg.TemplateFor(phase); id != nil {
		explicit := *id
		return &explicit, nil
	}

	id, err := r.defaultFor(ctx, repo, phase)
	if err != nil || id == "" {
		return nil, err
	}
	return &id, nil
}

// Invalidate descarta os templates padrão em cache
func (r *TemplateResolver) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.generation++
	r.defaults.Flush()
}

func (r *TemplateResolver) defaultFor(ctx context.Context, repo template.Repository, phase lifecycle.Phase) (string, error) {
	key := string(phase)
	if cached, found := r.defaults.Get(key); found {
		return cached.(string), nil
	}

	r.mu.Lock()
	generation := r.generation
	r.mu.Unlock()

	id := ""
	def, err := repo.FindDefault(ctx, phase)
	switch {
	case err == nil:
		id = def.ID
	case !errors.Is(err, template.ErrTemplateNotFound):
		return "", err
	}

	r.mu.Lock()
	if generation == r.generation {
		r.defaults.SetDefault(key, id)
	}
	r.mu.Unlock()
	return id, nil
}
