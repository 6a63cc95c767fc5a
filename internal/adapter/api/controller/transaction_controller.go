package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-servicos/internal/adapter/api/dto"
	"github.com/hugohenrick/erp-servicos/internal/domain/transaction"
	"github.com/hugohenrick/erp-servicos/internal/service"
	"github.com/hugohenrick/erp-servicos/pkg/logger"
)

// TransactionController gerencia as requisições relacionadas a compras
type TransactionController struct {
	purchaseService *service.PurchaseService
	transactionRepo transaction.Repository
	logger          logger.Logger
}

// NewTransactionController cria uma nova instância de TransactionController
func NewTransactionController(
	purchaseService *service.PurchaseService,
	transactionRepo transaction.Repository,
	logger logger.Logger,
) *TransactionController {
	return &TransactionController{
		purchaseService: purchaseService,
		transactionRepo: transactionRepo,
		logger:          logger,
	}
}

// Create registra uma compra e cria o ciclo de vida dos itens elegíveis
// @Summary Registrar compra
// @Description Grava a transação e gera as tarefas de serviço dos itens. Retorna 207 quando a compra foi gravada mas o agendamento falhou.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.TransactionRequest true "Dados da compra"
// @Success 201 {object} dto.PurchaseResponse
// @Success 207 {object} dto.PurchaseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /transactions [post]
func (c *TransactionController) Create(ctx *gin.Context) {
	var req dto.TransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "dados inválidos", err)
		return
	}

	input, err := toPurchaseInput(req)
	if err != nil {
		badRequest(ctx, "data inválida", err)
		return
	}

	result, err := c.purchaseService.RecordPurchase(ctx, input)
	c.respondPurchase(ctx, http.StatusCreated, result, err)
}

// RetrySchedule tenta novamente gerar o ciclo de vida dos itens de uma compra
// @Summary Reprocessar agendamento
// @Description Cria o ciclo de vida dos itens elegíveis que ainda não o possuem
// @Tags transactions
// @Produce json
// @Param id path string true "ID da transação"
// @Success 200 {object} dto.PurchaseResponse
// @Success 207 {object} dto.PurchaseResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /transactions/{id}/schedule [post]
func (c *TransactionController) RetrySchedule(ctx *gin.Context) {
	result, err := c.purchaseService.RetrySchedule(ctx, ctx.Param("id"))
	c.respondPurchase(ctx, http.StatusOK, result, err)
}

// Get retorna uma transação pelo ID
// @Summary Buscar transação
// @Tags transactions
// @Produce json
// @Param id path string true "ID da transação"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /transactions/{id} [get]
func (c *TransactionController) Get(ctx *gin.Context) {
	t, err := c.transactionRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar transação", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(t))
}

// List retorna a lista de transações
// @Summary Listar transações
// @Tags transactions
// @Produce json
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Success 200 {object} dto.TransactionListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /transactions [get]
func (c *TransactionController) List(ctx *gin.Context) {
	p := pagination(ctx)

	transactions, err := c.transactionRepo.List(ctx, p.PageSize, p.Offset())
	if err != nil {
		respondError(ctx, c.logger, "erro ao listar transações", err)
		return
	}

	total, err := c.transactionRepo.Count(ctx)
	if err != nil {
		respondError(ctx, c.logger, "erro ao contar transações", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(transactions, total, p.Page, p.PageSize))
}

// UpdatePaymentStatus altera o status de pagamento
// @Summary Alterar status de pagamento
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "ID da transação"
// @Param status body dto.PaymentStatusRequest true "Novo status"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /transactions/{id}/payment-status [patch]
func (c *TransactionController) UpdatePaymentStatus(ctx *gin.Context) {
	var req dto.PaymentStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "dados inválidos", err)
		return
	}

	t, err := c.purchaseService.ChangePaymentStatus(ctx, ctx.Param("id"), transaction.PaymentStatus(req.Status))
	if err != nil {
		respondError(ctx, c.logger, "erro ao alterar status de pagamento", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(t))
}

func (c *TransactionController) respondPurchase(ctx *gin.Context, status int, result *service.PurchaseResult, err error) {
	var scheduleErr *service.ScheduleError
	if err != nil && !errors.As(err, &scheduleErr) {
		respondError(ctx, c.logger, "erro ao registrar compra", err)
		return
	}

	resp := dto.PurchaseResponse{
		Transaction:      *dto.ToTransactionResponse(result.Transaction),
		CustomerProducts: dto.ToCustomerProductResponses(result.CustomerProducts),
		Touchpoints:      dto.ToTouchpointResponses(result.Touchpoints),
	}

	if scheduleErr != nil {
		c.logger.Warn("Compra gravada com falha de agendamento",
			"transaction_id", scheduleErr.TransactionID,
			"failures", len(scheduleErr.Failures))

		failures := make([]dto.ScheduleFailureResponse, len(scheduleErr.Failures))
		for i, f := range scheduleErr.Failures {
			failures[i] = dto.ScheduleFailureResponse{
				TransactionItemID: f.TransactionItemID,
				ProductID:         f.ProductID,
				Error:             f.Err.Error(),
			}
		}
		resp.ScheduleError = &dto.ScheduleErrorResponse{
			Message:  service.ErrScheduleMaterialization.Error(),
			Failures: failures,
		}
		status = http.StatusMultiStatus
	}

	ctx.JSON(status, resp)
}

func toPurchaseInput(req dto.TransactionRequest) (service.PurchaseInput, error) {
	transactionDate, err := dto.ParseDate(req.TransactionDate)
	if err != nil {
		return service.PurchaseInput{}, err
	}

	items := make([]service.PurchaseItemInput, len(req.Items))
	for i, item := range req.Items {
		startDate, err := dto.ParseDate(item.ServiceStartDate)
		if err != nil {
			return service.PurchaseInput{}, err
		}
		items[i] = service.PurchaseItemInput{
			ProductID:        item.ProductID,
			Quantity:         item.Quantity,
			UnitPrice:        item.UnitPrice,
			ServiceStartDate: startDate,
		}
	}

	return service.PurchaseInput{
		CustomerID:      req.CustomerID,
		TransactionNo:   req.TransactionNo,
		TransactionDate: transactionDate,
		Items:           items,
		Discount:        req.DiscountAmount,
		PaymentMethod:   req.PaymentMethod,
		Notes:           req.Notes,
	}, nil
}
