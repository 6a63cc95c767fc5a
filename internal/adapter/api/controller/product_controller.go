package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-servicos/internal/adapter/api/dto"
	"github.com/hugohenrick/erp-servicos/internal/domain/lifecycle"
	productdomain "github.com/hugohenrick/erp-servicos/internal/domain/product"
	"github.com/hugohenrick/erp-servicos/internal/service"
	"github.com/hugohenrick/erp-servicos/pkg/logger"
)

// ProductController gerencia as requisições relacionadas a produtos
type ProductController struct {
	productRepo productdomain.Repository
	clock       service.Clock
	logger      logger.Logger
}

// NewProductController cria uma nova instância de ProductController
func NewProductController(productRepo productdomain.Repository, clock service.Clock, logger logger.Logger) *ProductController {
	return &ProductController{
		productRepo: productRepo,
		clock:       clock,
		logger:      logger,
	}
}

// Create cria um novo produto
// @Summary Criar produto
// @Description Cria um novo produto com sua configuração de ciclo de vida
// @Tags products
// @Accept json
// @Produce json
// @Param product body dto.ProductRequest true "Dados do produto"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [post]
func (c *ProductController) Create(ctx *gin.Context) {
	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "dados inválidos", err)
		return
	}

	product, err := productdomain.NewProduct(req.Name, productdomain.Type(req.ProductType), req.Price)
	if err != nil {
		respondError(ctx, c.logger, "erro ao criar produto", err)
		return
	}

	if err := c.apply(product, req); err != nil {
		respondError(ctx, c.logger, "erro ao criar produto", err)
		return
	}

	if err := c.productRepo.Create(ctx, product); err != nil {
		respondError(ctx, c.logger, "erro ao salvar produto", err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProductResponse(product))
}

// Get retorna um produto pelo ID
// @Summary Buscar produto
// @Tags products
// @Produce json
// @Param id path string true "ID do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [get]
func (c *ProductController) Get(ctx *gin.Context) {
	product, err := c.productRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar produto", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// List retorna a lista de produtos
// @Summary Listar produtos
// @Tags products
// @Produce json
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Success 200 {object} dto.ProductListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [get]
func (c *ProductController) List(ctx *gin.Context) {
	p := pagination(ctx)

	products, err := c.productRepo.List(ctx, p.PageSize, p.Offset())
	if err != nil {
		respondError(ctx, c.logger, "erro ao listar produtos", err)
		return
	}

	total, err := c.productRepo.Count(ctx)
	if err != nil {
		respondError(ctx, c.logger, "erro ao contar produtos", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductListResponse(products, total, p.Page, p.PageSize))
}

// Update atualiza um produto. Ciclos de vida já vendidos não são afetados.
// @Summary Atualizar produto
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "ID do produto"
// @Param product body dto.ProductRequest true "Dados do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [put]
func (c *ProductController) Update(ctx *gin.Context) {
	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "dados inválidos", err)
		return
	}

	product, err := c.productRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar produto", err)
		return
	}

	if err := c.apply(product, req); err != nil {
		respondError(ctx, c.logger, "erro ao atualizar produto", err)
		return
	}

	if err := c.productRepo.Update(ctx, product); err != nil {
		respondError(ctx, c.logger, "erro ao salvar produto", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// Delete remove um produto
// @Summary Remover produto
// @Tags products
// @Produce json
// @Param id path string true "ID do produto"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [delete]
func (c *ProductController) Delete(ctx *gin.Context) {
	if err := c.productRepo.Delete(ctx, ctx.Param("id")); err != nil {
		respondError(ctx, c.logger, "erro ao remover produto", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("produto removido com sucesso", nil))
}

// SchedulePreview calcula a agenda que uma venda do produto geraria
// @Summary Pré-visualizar agenda do produto
// @Tags products
// @Produce json
// @Param id path string true "ID do produto"
// @Param anchor_date query string false "Data de início (AAAA-MM-DD), padrão hoje"
// @Success 200 {object} dto.SchedulePreviewResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/{id}/schedule-preview [get]
func (c *ProductController) SchedulePreview(ctx *gin.Context) {
	anchor := lifecycle.DateOnly(c.clock.Now())
	if value := ctx.Query("anchor_date"); value != "" {
		parsed, err := dto.ParseDate(value)
		if err != nil {
			badRequest(ctx, "data inválida", err)
			return
		}
		anchor = *parsed
	}

	product, err := c.productRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar produto", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSchedulePreviewResponse(anchor, product.PreviewSchedule(anchor)))
}

func (c *ProductController) apply(product *productdomain.Product, req dto.ProductRequest) error {
	err := product.Update(
		req.Name,
		req.SKU,
		req.Description,
		productdomain.Type(req.ProductType),
		req.Price,
		req.IsActive(),
	)
	if err != nil {
		return err
	}

	return product.SetLifecycle(
		req.LifecycleMonths,
		req.ServiceIntervalMonths,
		req.UsageDurationDays,
		req.ServiceFlowConfig,
	)
}
