package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-servicos/internal/adapter/api/dto"
	"github.com/hugohenrick/erp-servicos/internal/domain/activity"
	customerdomain "github.com/hugohenrick/erp-servicos/internal/domain/customer"
	"github.com/hugohenrick/erp-servicos/internal/domain/customerproduct"
	"github.com/hugohenrick/erp-servicos/pkg/logger"
)

// CustomerController gerencia as requisições relacionadas a clientes
type CustomerController struct {
	customerRepo        customerdomain.Repository
	customerProductRepo customerproduct.Repository
	activityRepo        activity.Repository
	logger              logger.Logger
}

// NewCustomerController cria uma nova instância de CustomerController
func NewCustomerController(
	customerRepo customerdomain.Repository,
	customerProductRepo customerproduct.Repository,
	activityRepo activity.Repository,
	logger logger.Logger,
) *CustomerController {
	return &CustomerController{
		customerRepo:        customerRepo,
		customerProductRepo: customerProductRepo,
		activityRepo:        activityRepo,
		logger:              logger,
	}
}

// Create cria um novo cliente
// @Summary Criar cliente
// @Description Cria um novo cliente no sistema
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body dto.CustomerRequest true "Dados do cliente"
// @Success 201 {object} dto.CustomerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers [post]
func (c *CustomerController) Create(ctx *gin.Context) {
	var req dto.CustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "dados inválidos", err)
		return
	}

	customer, err := customerdomain.NewCustomer(req.Name, req.Phone, req.Email)
	if err != nil {
		respondError(ctx, c.logger, "erro ao criar cliente", err)
		return
	}

	if err := customer.Update(req.Name, req.Phone, req.Email, req.LineUserID, req.Address, req.Notes); err != nil {
		respondError(ctx, c.logger, "erro ao atualizar dados do cliente", err)
		return
	}

	if err := c.customerRepo.Create(ctx, customer); err != nil {
		respondError(ctx, c.logger, "erro ao salvar cliente", err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCustomerResponse(customer))
}

// Get retorna um cliente pelo ID
// @Summary Buscar cliente
// @Tags customers
// @Produce json
// @Param id path string true "ID do cliente"
// @Success 200 {object} dto.CustomerResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers/{id} [get]
func (c *CustomerController) Get(ctx *gin.Context) {
	customer, err := c.customerRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar cliente", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// List retorna a lista de clientes
// @Summary Listar clientes
// @Tags customers
// @Produce json
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Success 200 {object} dto.CustomerListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers [get]
func (c *CustomerController) List(ctx *gin.Context) {
	p := pagination(ctx)

	customers, err := c.customerRepo.List(ctx, p.PageSize, p.Offset())
	if err != nil {
		respondError(ctx, c.logger, "erro ao listar clientes", err)
		return
	}

	total, err := c.customerRepo.Count(ctx)
	if err != nil {
		respondError(ctx, c.logger, "erro ao contar clientes", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerListResponse(customers, total, p.Page, p.PageSize))
}

// FindByName busca clientes pelo nome
// @Summary Buscar clientes por nome
// @Tags customers
// @Produce json
// @Param name query string true "Parte do nome"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Success 200 {object} dto.CustomerListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers/search [get]
func (c *CustomerController) FindByName(ctx *gin.Context) {
	name := ctx.Query("name")
	if name == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "nome não informado", ""))
		return
	}

	p := pagination(ctx)
	customers, err := c.customerRepo.FindByName(ctx, name, p.PageSize, p.Offset())
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar clientes", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerListResponse(customers, len(customers), p.Page, p.PageSize))
}

// Update atualiza os dados de um cliente
// @Summary Atualizar cliente
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "ID do cliente"
// @Param customer body dto.CustomerRequest true "Dados do cliente"
// @Success 200 {object} dto.CustomerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers/{id} [put]
func (c *CustomerController) Update(ctx *gin.Context) {
	var req dto.CustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "dados inválidos", err)
		return
	}

	customer, err := c.customerRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar cliente", err)
		return
	}

	if err := customer.Update(req.Name, req.Phone, req.Email, req.LineUserID, req.Address, req.Notes); err != nil {
		respondError(ctx, c.logger, "erro ao atualizar cliente", err)
		return
	}

	if err := c.customerRepo.Update(ctx, customer); err != nil {
		respondError(ctx, c.logger, "erro ao salvar cliente", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// Delete remove um cliente
// @Summary Remover cliente
// @Tags customers
// @Produce json
// @Param id path string true "ID do cliente"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers/{id} [delete]
func (c *CustomerController) Delete(ctx *gin.Context) {
	if err := c.customerRepo.Delete(ctx, ctx.Param("id")); err != nil {
		respondError(ctx, c.logger, "erro ao remover cliente", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("cliente removido com sucesso", nil))
}

// UpdateStatus altera o status do cliente
// @Summary Alterar status do cliente
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "ID do cliente"
// @Param status body dto.CustomerStatusRequest true "Novo status"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /customers/{id}/status [patch]
func (c *CustomerController) UpdateStatus(ctx *gin.Context) {
	var req dto.CustomerStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "dados inválidos", err)
		return
	}

	if err := c.customerRepo.UpdateStatus(ctx, ctx.Param("id"), customerdomain.Status(req.Status)); err != nil {
		respondError(ctx, c.logger, "erro ao atualizar status do cliente", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("status atualizado com sucesso", gin.H{"status": req.Status}))
}

// Products lista os produtos com ciclo de vida do cliente
// @Summary Produtos do cliente
// @Tags customers
// @Produce json
// @Param id path string true "ID do cliente"
// @Success 200 {array} dto.CustomerProductResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /customers/{id}/products [get]
func (c *CustomerController) Products(ctx *gin.Context) {
	customerID := ctx.Param("id")
	if _, err := c.customerRepo.FindByID(ctx, customerID); err != nil {
		respondError(ctx, c.logger, "erro ao buscar cliente", err)
		return
	}

	cps, err := c.customerProductRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		respondError(ctx, c.logger, "erro ao listar produtos do cliente", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerProductResponses(cps))
}

// Activities lista o histórico do cliente
// @Summary Histórico do cliente
// @Tags customers
// @Produce json
// @Param id path string true "ID do cliente"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Success 200 {array} dto.ActivityResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /customers/{id}/activities [get]
func (c *CustomerController) Activities(ctx *gin.Context) {
	customerID := ctx.Param("id")
	if _, err := c.customerRepo.FindByID(ctx, customerID); err != nil {
		respondError(ctx, c.logger, "erro ao buscar cliente", err)
		return
	}

	p := pagination(ctx)
	logs, err := c.activityRepo.FindByCustomer(ctx, customerID, p.PageSize, p.Offset())
	if err != nil {
		respondError(ctx, c.logger, "erro ao listar histórico do cliente", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToActivityResponses(logs))
}
