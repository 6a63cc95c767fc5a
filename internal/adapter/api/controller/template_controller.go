package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-servicos/internal/adapter/api/dto"
	"github.com/hugohenrick/erp-servicos/internal/domain/lifecycle"
	"github.com/hugohenrick/erp-servicos/internal/domain/template"
	"github.com/hugohenrick/erp-servicos/internal/service"
	"github.com/hugohenrick/erp-servicos/pkg/logger"
)

// TemplateController gerencia os templates de mensagem
type TemplateController struct {
	templateService *service.TemplateService
	logger          logger.Logger
}

// NewTemplateController cria uma nova instância de TemplateController
func NewTemplateController(templateService *service.TemplateService, logger logger.Logger) *TemplateController {
	return &TemplateController{
		templateService: templateService,
		logger:          logger,
	}
}

// Create cria um template
// @Summary Criar template
// @Description Cria um template de mensagem; se for padrão substitui o padrão anterior da fase
// @Tags message-templates
// @Accept json
// @Produce json
// @Param template body dto.TemplateRequest true "Dados do template"
// @Success 201 {object} dto.TemplateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /message-templates [post]
func (c *TemplateController) Create(ctx *gin.Context) {
	var req dto.TemplateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "dados inválidos", err)
		return
	}

	t, err := c.templateService.Create(ctx, toTemplateInput(req))
	if err != nil {
		respondError(ctx, c.logger, "erro ao criar template", err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTemplateResponse(t))
}

// Get retorna um template pelo ID
// @Summary Buscar template
// @Tags message-templates
// @Produce json
// @Param id path string true "ID do template"
// @Success 200 {object} dto.TemplateResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /message-templates/{id} [get]
func (c *TemplateController) Get(ctx *gin.Context) {
	t, err := c.templateService.Get(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar template", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTemplateResponse(t))
}

// List lista os templates
// @Summary Listar templates
// @Tags message-templates
// @Produce json
// @Param type query string false "Fase (onboarding, retention, maturity)"
// @Success 200 {array} dto.TemplateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /message-templates [get]
func (c *TemplateController) List(ctx *gin.Context) {
	phase := lifecycle.Phase(ctx.Query("type"))
	if phase != "" && !phase.IsValid() {
		respondError(ctx, c.logger, "tipo inválido", template.ErrInvalidType)
		return
	}

	templates, err := c.templateService.List(ctx, phase)
	if err != nil {
		respondError(ctx, c.logger, "erro ao listar templates", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTemplateResponses(templates))
}

// Update atualiza um template
// @Summary Atualizar template
// @Tags message-templates
// @Accept json
// @Produce json
// @Param id path string true "ID do template"
// @Param template body dto.TemplateRequest true "Dados do template"
// @Success 200 {object} dto.TemplateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /message-templates/{id} [put]
func (c *TemplateController) Update(ctx *gin.Context) {
	var req dto.TemplateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "dados inválidos", err)
		return
	}

	t, err := c.templateService.Update(ctx, ctx.Param("id"), toTemplateInput(req))
	if err != nil {
		respondError(ctx, c.logger, "erro ao atualizar template", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTemplateResponse(t))
}

// Render substitui os placeholders do template
// @Summary Renderizar template
// @Tags message-templates
// @Accept json
// @Produce json
// @Param id path string true "ID do template"
// @Param values body dto.RenderTemplateRequest true "Valores dos placeholders"
// @Success 200 {object} dto.RenderTemplateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /message-templates/{id}/render [post]
func (c *TemplateController) Render(ctx *gin.Context) {
	var req dto.RenderTemplateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "dados inválidos", err)
		return
	}

	content, err := c.templateService.Render(ctx, ctx.Param("id"), req.Values)
	if err != nil {
		respondError(ctx, c.logger, "erro ao renderizar template", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.RenderTemplateResponse{Content: content})
}

func toTemplateInput(req dto.TemplateRequest) service.TemplateInput {
	return service.TemplateInput{
		Name:      req.Name,
		Type:      lifecycle.Phase(req.Type),
		Channel:   req.ChannelOrDefault(),
		Body:      req.Body,
		IsDefault: req.IsDefault,
	}
}
