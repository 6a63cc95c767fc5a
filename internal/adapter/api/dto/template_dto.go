package dto

import (
	"time"

	"github.com/hugohenrick/erp-servicos/internal/domain/template"
)

// TemplateRequest representa a requisição de criação/atualização de template
type TemplateRequest struct {
	Name      string `json:"name" binding:"required,max=150"`
	Type      string `json:"type" binding:"required,phase" example:"retention"`
	Channel   string `json:"channel" binding:"omitempty,channel" example:"line"`
	Body      string `json:"body" binding:"required" example:"Olá {{customer_name}}, sua manutenção está chegando."`
	IsDefault bool   `json:"is_default"`
}

// ChannelOrDefault retorna o canal informado ou LINE
func (r TemplateRequest) ChannelOrDefault() template.Channel {
	if r.Channel == "" {
		return template.ChannelLine
	}
	return template.Channel(r.Channel)
}

// RenderTemplateRequest contém os valores dos placeholders
type RenderTemplateRequest struct {
	Values map[string]string `json:"values"`
}

// RenderTemplateResponse contém a mensagem pronta
type RenderTemplateResponse struct {
	Content string `json:"content"`
}

// TemplateResponse representa a resposta de template
type TemplateResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Channel   string    `json:"channel"`
	Body      string    `json:"body"`
	Variables []string  `json:"variables"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToTemplateResponse converte um template do domínio para DTO
func ToTemplateResponse(t *template.MessageTemplate) *TemplateResponse {
	return &TemplateResponse{
		ID:        t.ID,
		Name:      t.Name,
		Type:      string(t.Type),
		Channel:   string(t.Channel),
		Body:      t.Body,
		Variables: t.Variables,
		IsDefault: t.IsDefault,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// ToTemplateResponses converte uma lista de templates para DTO
func ToTemplateResponses(templates []*template.MessageTemplate) []TemplateResponse {
	items := make([]TemplateResponse, len(templates))
	for i, t := range templates {
		items[i] = *ToTemplateResponse(t)
	}
	return items
}
