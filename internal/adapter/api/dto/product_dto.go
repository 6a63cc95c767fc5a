package dto

import (
	"time"

	"github.com/hugohenrick/erp-servicos/internal/domain/lifecycle"
	"github.com/hugohenrick/erp-servicos/internal/domain/product"
	"github.com/shopspring/decimal"
)

// ProductRequest representa a requisição de criação/atualização de produto
type ProductRequest struct {
	SKU                   string               `json:"sku" binding:"max=60"`
	Name                  string               `json:"name" binding:"required,max=200"`
	Description           string               `json:"description"`
	Price                 decimal.Decimal      `json:"price" swaggertype:"string" example:"1500.00"`
	ProductType           string               `json:"product_type" binding:"required,product_type" example:"tangible"`
	LifecycleMonths       int                  `json:"lifecycle_months" binding:"min=0" example:"12"`
	ServiceIntervalMonths int                  `json:"service_interval_months" binding:"min=0" example:"6"`
	UsageDurationDays     *int                 `json:"usage_duration_days" binding:"omitempty,min=1"`
	ServiceFlowConfig     lifecycle.FlowConfig `json:"service_flow_config"`
	Active                *bool                `json:"active"`
}

// IsActive retorna o valor de active, padrão verdadeiro
func (r ProductRequest) IsActive() bool {
	return r.Active == nil || *r.Active
}

// ProductResponse representa a resposta de produto
type ProductResponse struct {
	ID                    string               `json:"id"`
	SKU                   string               `json:"sku"`
	Name                  string               `json:"name"`
	Description           string               `json:"description"`
	Price                 string               `json:"price"`
	ProductType           string               `json:"product_type"`
	LifecycleMonths       int                  `json:"lifecycle_months"`
	ServiceIntervalMonths int                  `json:"service_interval_months"`
	UsageDurationDays     *int                 `json:"usage_duration_days"`
	ServiceFlowConfig     lifecycle.FlowConfig `json:"service_flow_config"`
	Active                bool                 `json:"active"`
	CreatedAt             time.Time            `json:"created_at"`
	UpdatedAt             time.Time            `json:"updated_at"`
}

// ProductListResponse representa a resposta de lista de produtos
type ProductListResponse struct {
	Items      []ProductResponse `json:"items"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	Size       int               `json:"size"`
	TotalPages int               `json:"total_pages"`
}

// ToProductResponse converte um produto do domínio para DTO
func ToProductResponse(p *product.Product) *ProductResponse {
	return &ProductResponse{
		ID:                    p.ID,
		SKU:                   p.SKU,
		Name:                  p.Name,
		Description:           p.Description,
		Price:                 p.Price.StringFixed(2),
		ProductType:           string(p.ProductType),
		LifecycleMonths:       p.LifecycleMonths,
		ServiceIntervalMonths: p.ServiceIntervalMonths,
		UsageDurationDays:     p.UsageDurationDays,
		ServiceFlowConfig:     p.ServiceFlowConfig,
		Active:                p.Active,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}
}

// ToProductListResponse converte uma lista de produtos do domínio para DTO
func ToProductListResponse(products []*product.Product, total, page, size int) *ProductListResponse {
	items := make([]ProductResponse, len(products))
	for i, p := range products {
		items[i] = *ToProductResponse(p)
	}

	return &ProductListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: CalculateTotalPages(total, size),
	}
}
