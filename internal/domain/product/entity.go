package product

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/erp-servicos/internal/domain/lifecycle"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName            = errors.New("nome não pode ser vazio")
	ErrNegativePrice        = errors.New("preço não pode ser negativo")
	ErrInvalidProductType   = errors.New("tipo de produto inválido")
	ErrNegativeLifecycle    = errors.New("ciclo de vida não pode ser negativo")
	ErrNegativeInterval     = errors.New("intervalo de manutenção não pode ser negativo")
	ErrInvalidUsageDuration = errors.New("duração de uso deve ser positiva")
)

// Type define o tipo do produto
type Type string

const (
	TypeTangible Type = "tangible" // Produto físico (instalado no cliente)
	TypeService  Type = "service"  // Serviço
)

// IsValid verifica se o tipo é conhecido
func (t Type) IsValid() bool {
	return t == TypeTangible || t == TypeService
}

// Product representa um produto do catálogo
type Product struct {
	ID                    string               `json:"id"`
	SKU                   string               `json:"sku"`
	Name                  string               `json:"name"`
	Description           string               `json:"description"`
	Price                 decimal.Decimal      `json:"price"`
	ProductType           Type                 `json:"product_type"`
	LifecycleMonths       int                  `json:"lifecycle_months"`        // 0 = sem acompanhamento
	ServiceIntervalMonths int                  `json:"service_interval_months"` // Espaçamento das manutenções
	UsageDurationDays     *int                 `json:"usage_duration_days"`     // Garantia quando não há ciclo de vida
	ServiceFlowConfig     lifecycle.FlowConfig `json:"service_flow_config"`
	Active                bool                 `json:"active"`
	CreatedAt             time.Time            `json:"created_at"`
	UpdatedAt             time.Time            `json:"updated_at"`
}

// NewProduct cria um novo produto
func NewProduct(name string, productType Type, price decimal.Decimal) (*Product, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	if !productType.IsValid() {
		return nil, ErrInvalidProductType
	}

	if price.IsNegative() {
		return nil, ErrNegativePrice
	}

	now := time.Now()
	return &Product{
		ID:          uuid.New().String(),
		Name:        name,
		Price:       price,
		ProductType: productType,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// SetLifecycle define o ciclo de vida e o fluxo de serviço do produto
func (p *Product) SetLifecycle(lifecycleMonths, intervalMonths int, usageDurationDays *int, cfg lifecycle.FlowConfig) error {
	if lifecycleMonths < 0 {
		return ErrNegativeLifecycle
	}

	if intervalMonths < 0 {
		return ErrNegativeInterval
	}

	if usageDurationDays != nil && *usageDurationDays <= 0 {
		return ErrInvalidUsageDuration
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	p.LifecycleMonths = lifecycleMonths
	p.ServiceIntervalMonths = intervalMonths
	p.UsageDurationDays = usageDurationDays
	p.ServiceFlowConfig = cfg
	p.UpdatedAt = time.Now()
	return nil
}

// Update atualiza os dados cadastrais do produto
func (p *Product) Update(name, sku, description string, productType Type, price decimal.Decimal, active bool) error {
	if name == "" {
		return ErrEmptyName
	}

	if !productType.IsValid() {
		return ErrInvalidProductType
	}

	if price.IsNegative() {
		return ErrNegativePrice
	}

	p.Name = name
	p.SKU = sku
	p.Description = description
	p.ProductType = productType
	p.Price = price
	p.Active = active
	p.UpdatedAt = time.Now()
	return nil
}

// TracksLifecycle indica se o produto possui acompanhamento de ciclo de vida
func (p *Product) TracksLifecycle() bool {
	return p.LifecycleMonths > 0
}

// QualifiesForLifecycleRecord indica se a venda do produto gera um cliente-produto:
// produtos físicos sempre geram, serviços apenas quando possuem ciclo de vida.
func (p *Product) QualifiesForLifecycleRecord() bool {
	return p.ProductType == TypeTangible || p.TracksLifecycle()
}

// PreviewSchedule calcula a agenda que o produto geraria a partir de uma data
func (p *Product) PreviewSchedule(anchor time.Time) []lifecycle.Node {
	return lifecycle.GenerateSchedule(anchor, p.LifecycleMonths, p.ServiceIntervalMonths, p.ServiceFlowConfig)
}
