package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-servicos/internal/adapter/api/dto"
	"github.com/hugohenrick/erp-servicos/internal/domain/touchpoint"
	"github.com/hugohenrick/erp-servicos/internal/service"
	"github.com/hugohenrick/erp-servicos/pkg/logger"
)

// TouchpointController gerencia as tarefas agendadas
type TouchpointController struct {
	touchpointService *service.TouchpointService
	logger            logger.Logger
}

// NewTouchpointController cria uma nova instância de TouchpointController
func NewTouchpointController(touchpointService *service.TouchpointService, logger logger.Logger) *TouchpointController {
	return &TouchpointController{
		touchpointService: touchpointService,
		logger:            logger,
	}
}

// List lista as tarefas agendadas
// @Summary Listar tarefas
// @Description Lista tarefas por status e data limite, em ordem de data
// @Tags touchpoints
// @Produce json
// @Param status query string false "Status (pending, sent, completed, cancelled)"
// @Param due_before query string false "Data limite (AAAA-MM-DD)"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Success 200 {array} dto.TouchpointResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /touchpoints [get]
func (c *TouchpointController) List(ctx *gin.Context) {
	status := touchpoint.Status(ctx.Query("status"))
	if status != "" && !status.IsValid() {
		respondError(ctx, c.logger, "status inválido", touchpoint.ErrInvalidStatus)
		return
	}

	dueBefore, err := dto.ParseDate(ctx.Query("due_before"))
	if err != nil {
		badRequest(ctx, "data inválida", err)
		return
	}

	p := pagination(ctx)
	touchpoints, err := c.touchpointService.List(ctx, touchpoint.Filter{
		Status:    status,
		DueBefore: dueBefore,
		Limit:     p.PageSize,
		Offset:    p.Offset(),
	})
	if err != nil {
		respondError(ctx, c.logger, "erro ao listar tarefas", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTouchpointResponses(touchpoints))
}

// UpdateStatus altera o status de uma tarefa
// @Summary Alterar status da tarefa
// @Tags touchpoints
// @Accept json
// @Produce json
// @Param id path string true "ID da tarefa"
// @Param status body dto.TouchpointStatusRequest true "Novo status"
// @Success 200 {object} dto.TouchpointResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /touchpoints/{id}/status [patch]
func (c *TouchpointController) UpdateStatus(ctx *gin.Context) {
	var req dto.TouchpointStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "dados inválidos", err)
		return
	}

	t, err := c.touchpointService.ChangeStatus(ctx, ctx.Param("id"), touchpoint.Status(req.Status))
	if err != nil {
		respondError(ctx, c.logger, "erro ao alterar status da tarefa", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTouchpointResponse(t))
}
