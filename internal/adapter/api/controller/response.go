package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-servicos/internal/adapter/api/dto"
	"github.com/hugohenrick/erp-servicos/internal/domain/customer"
	"github.com/hugohenrick/erp-servicos/internal/domain/customerproduct"
	"github.com/hugohenrick/erp-servicos/internal/domain/lifecycle"
	"github.com/hugohenrick/erp-servicos/internal/domain/product"
	"github.com/hugohenrick/erp-servicos/internal/domain/template"
	"github.com/hugohenrick/erp-servicos/internal/domain/touchpoint"
	"github.com/hugohenrick/erp-servicos/internal/domain/transaction"
	"github.com/hugohenrick/erp-servicos/pkg/logger"
)

type errorMapping struct {
	err    error
	status int
}

var errorMappings = []errorMapping{
	{product.ErrProductNotFound, http.StatusNotFound},
	{customer.ErrCustomerNotFound, http.StatusNotFound},
	{transaction.ErrTransactionNotFound, http.StatusNotFound},
	{customerproduct.ErrCustomerProductNotFound, http.StatusNotFound},
	{touchpoint.ErrTouchpointNotFound, http.StatusNotFound},
	{template.ErrTemplateNotFound, http.StatusNotFound},

	{transaction.ErrInvalidPaymentTransition, http.StatusConflict},
	{touchpoint.ErrInvalidTransition, http.StatusConflict},
	{customerproduct.ErrAlreadyExists, http.StatusConflict},

	{lifecycle.ErrInvalidFlowConfig, http.StatusBadRequest},
	{product.ErrEmptyName, http.StatusBadRequest},
	{product.ErrNegativePrice, http.StatusBadRequest},
	{product.ErrInvalidProductType, http.StatusBadRequest},
	{product.ErrNegativeLifecycle, http.StatusBadRequest},
	{product.ErrNegativeInterval, http.StatusBadRequest},
	{product.ErrInvalidUsageDuration, http.StatusBadRequest},
	{customer.ErrEmptyName, http.StatusBadRequest},
	{customer.ErrInvalidEmail, http.StatusBadRequest},
	{customer.ErrInvalidStatus, http.StatusBadRequest},
	{transaction.ErrEmptyCustomer, http.StatusBadRequest},
	{transaction.ErrNoItems, http.StatusBadRequest},
	{transaction.ErrInvalidQuantity, http.StatusBadRequest},
	{transaction.ErrNegativeUnitPrice, http.StatusBadRequest},
	{transaction.ErrInvalidPaymentStatus, http.StatusBadRequest},
	{transaction.ErrNegativeDiscount, http.StatusBadRequest},
	{transaction.ErrDiscountTooLarge, http.StatusBadRequest},
	{transaction.ErrInvalidVATRate, http.StatusBadRequest},
	{touchpoint.ErrInvalidStatus, http.StatusBadRequest},
	{template.ErrEmptyName, http.StatusBadRequest},
	{template.ErrEmptyBody, http.StatusBadRequest},
	{template.ErrInvalidType, http.StatusBadRequest},
	{template.ErrInvalidChannel, http.StatusBadRequest},
}

// statusForError retorna o status HTTP correspondente a um erro de domínio
func statusForError(err error) int {
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

// respondError escreve a resposta de erro; erros inesperados são registrados no log
func respondError(ctx *gin.Context, log logger.Logger, message string, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		log.Error(message, "error", err, "path", ctx.FullPath())
	}
	ctx.JSON(status, dto.NewErrorResponse(status, message, err.Error()))
}

func badRequest(ctx *gin.Context, message string, err error) {
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, message, err.Error()))
}

func pagination(ctx *gin.Context) dto.Pagination {
	page, size := 1, 10
	if v, ok := ctx.GetQuery("page"); ok {
		page = atoiOr(v, page)
	}
	if v, ok := ctx.GetQuery("size"); ok {
		size = atoiOr(v, size)
	}
	return dto.GetPagination(page, size)
}

func atoiOr(value string, fallback int) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
