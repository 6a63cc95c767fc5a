// Package validation registra no gin as regras de validação do domínio.
package validation

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/hugohenrick/erp-servicos/internal/domain/lifecycle"
	"github.com/hugohenrick/erp-servicos/internal/domain/product"
	"github.com/hugohenrick/erp-servicos/internal/domain/template"
	"github.com/hugohenrick/erp-servicos/internal/domain/touchpoint"
	"github.com/hugohenrick/erp-servicos/internal/domain/transaction"
)

var rules = map[string]validator.Func{
	"phase": func(fl validator.FieldLevel) bool {
		return lifecycle.Phase(fl.Field().String()).IsValid()
	},
	"channel": func(fl validator.FieldLevel) bool {
		return template.Channel(fl.Field().String()).IsValid()
	},
	"product_type": func(fl validator.FieldLevel) bool {
		return product.Type(fl.Field().String()).IsValid()
	},
	"payment_status": func(fl validator.FieldLevel) bool {
		return transaction.PaymentStatus(fl.Field().String()).IsValid()
	},
	"touchpoint_status": func(fl validator.FieldLevel) bool {
		return touchpoint.Status(fl.Field().String()).IsValid()
	},
}

// Register adiciona as regras ao validador usado pelo binding do gin
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("validador do gin não é go-playground/validator")
	}
	return RegisterOn(v)
}

// RegisterOn adiciona as regras a um validador
func RegisterOn(v *validator.Validate) error {
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("erro ao registrar validação %s: %w", tag, err)
		}
	}
	return nil
}
