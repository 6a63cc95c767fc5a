package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-servicos/internal/adapter/api/dto"
	"github.com/hugohenrick/erp-servicos/internal/domain/customerproduct"
	"github.com/hugohenrick/erp-servicos/internal/domain/lifecycle"
	"github.com/hugohenrick/erp-servicos/internal/service"
	"github.com/hugohenrick/erp-servicos/pkg/logger"
)

// LifecycleController expõe a geração de agenda e os ciclos de vida vendidos
type LifecycleController struct {
	customerProductRepo customerproduct.Repository
	touchpointService   *service.TouchpointService
	logger              logger.Logger
}

// NewLifecycleController cria uma nova instância de LifecycleController
func NewLifecycleController(
	customerProductRepo customerproduct.Repository,
	touchpointService *service.TouchpointService,
	logger logger.Logger,
) *LifecycleController {
	return &LifecycleController{
		customerProductRepo: customerProductRepo,
		touchpointService:   touchpointService,
		logger:              logger,
	}
}

// Preview calcula a agenda a partir de parâmetros informados
// @Summary Pré-visualizar agenda
// @Description Calcula os pontos de contato sem gravar nada
// @Tags lifecycle
// @Accept json
// @Produce json
// @Param request body dto.SchedulePreviewRequest true "Parâmetros do ciclo de vida"
// @Success 200 {object} dto.SchedulePreviewResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /lifecycle/preview [post]
func (c *LifecycleController) Preview(ctx *gin.Context) {
	var req dto.SchedulePreviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "dados inválidos", err)
		return
	}

	anchor, err := dto.ParseDate(req.AnchorDate)
	if err != nil {
		badRequest(ctx, "data inválida", err)
		return
	}

	if err := req.ServiceFlowConfig.Validate(); err != nil {
		respondError(ctx, c.logger, "configuração de fluxo inválida", err)
		return
	}

	nodes := lifecycle.GenerateSchedule(*anchor, req.LifecycleMonths, req.ServiceIntervalMonths, req.ServiceFlowConfig)
	ctx.JSON(http.StatusOK, dto.ToSchedulePreviewResponse(*anchor, nodes))
}

// GetCustomerProduct retorna um ciclo de vida pelo ID
// @Summary Buscar cliente-produto
// @Tags lifecycle
// @Produce json
// @Param id path string true "ID do cliente-produto"
// @Success 200 {object} dto.CustomerProductResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /customer-products/{id} [get]
func (c *LifecycleController) GetCustomerProduct(ctx *gin.Context) {
	cp, err := c.customerProductRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar cliente-produto", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerProductResponse(cp))
}

// Touchpoints lista as tarefas de um ciclo de vida
// @Summary Tarefas do cliente-produto
// @Tags lifecycle
// @Produce json
// @Param id path string true "ID do cliente-produto"
// @Success 200 {array} dto.TouchpointResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /customer-products/{id}/touchpoints [get]
func (c *LifecycleController) Touchpoints(ctx *gin.Context) {
	touchpoints, err := c.touchpointService.ListByCustomerProduct(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao listar tarefas", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTouchpointResponses(touchpoints))
}
