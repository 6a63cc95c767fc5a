package service

import (
	"context"

	"github.com/hugohenrick/erp-servicos/internal/domain/lifecycle"
	"github.com/hugohenrick/erp-servicos/internal/domain/template"
	"github.com/hugohenrick/erp-servicos/internal/domain/unitofwork"
)

// TemplateInput são os dados editáveis de um template
type TemplateInput struct {
	Name      string
	Type      lifecycle.Phase
	Channel   template.Channel
	Body      string
	IsDefault bool
}

// TemplateService gerencia os templates de mensagem
type TemplateService struct {
	uow      unitofwork.UnitOfWork
	resolver *TemplateResolver
}

// NewTemplateService cria um TemplateService
func NewTemplateService(uow unitofwork.UnitOfWork, resolver *TemplateResolver) *TemplateService {
	return &TemplateService{uow: uow, resolver: resolver}
}

// Create cria um template; se for padrão, deixa de ser padrão o anterior da mesma fase
func (s *TemplateService) Create(ctx context.Context, in TemplateInput) (*template.MessageTemplate, error) {
	t, err := template.NewMessageTemplate(in.Name, in.Type, in.Channel, in.Body)
	if err != nil {
		return nil, err
	}
	t.IsDefault = in.IsDefault

	err = s.uow.Do(ctx, func(repos unitofwork.Repositories) error {
		if err := repos.Templates().Create(ctx, t); err != nil {
			return err
		}
		return s.clearOtherDefaults(ctx, repos, t)
	})
	if err != nil {
		return nil, err
	}

	s.resolver.Invalidate()
	return t, nil
}

// Update altera um template existente
func (s *TemplateService) Update(ctx context.Context, id string, in TemplateInput) (*template.MessageTemplate, error) {
	var t *template.MessageTemplate
	err := s.uow.Do(ctx, func(repos unitofwork.Repositories) error {
		var err error
		if t, err = repos.Templates().FindByID(ctx, id); err != nil {
			return err
		}

		if err := t.Update(in.Name, in.Type, in.Channel, in.Body); err != nil {
			return err
		}
		t.IsDefault = in.IsDefault

		if err := repos.Templates().Update(ctx, t); err != nil {
			return err
		}
		return s.clearOtherDefaults(ctx, repos, t)
	})
	if err != nil {
		return nil, err
	}

	s.resolver.Invalidate()
	return t, nil
}

// Get busca um template pelo ID
func (s *TemplateService) Get(ctx context.Context, id string) (*template.MessageTemplate, error) {
	return s.uow.Templates().FindByID(ctx, id)
}

// List lista os templates, opcionalmente de uma fase
func (s *TemplateService) List(ctx context.Context, phase lifecycle.Phase) ([]*template.MessageTemplate, error) {
	return s.uow.Templates().List(ctx, phase)
}

// Render substitui os placeholders do template pelos valores informados
func (s *TemplateService) Render(ctx context.Context, id string, values map[string]string) (string, error) {
	t, err := s.uow.Templates().FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	return t.Render(values), nil
}

func (s *TemplateService) clearOtherDefaults(ctx context.Context, repos unitofwork.Repositories, t *template.MessageTemplate) error {
	if !t.IsDefault {
		return nil
	}
	return repos.Templates().ClearDefault(ctx, t.Type, t.ID)
}
