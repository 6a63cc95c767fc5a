package dto

import (
	"time"

	"github.com/hugohenrick/erp-servicos/internal/domain/customerproduct"
	"github.com/hugohenrick/erp-servicos/internal/domain/lifecycle"
)

// SchedulePreviewRequest representa a requisição de pré-visualização da agenda
type SchedulePreviewRequest struct {
	AnchorDate            string               `json:"anchor_date" binding:"required,datetime=2006-01-02" example:"2024-01-31"`
	LifecycleMonths       int                  `json:"lifecycle_months" binding:"min=0" example:"12"`
	ServiceIntervalMonths int                  `json:"service_interval_months" binding:"min=0" example:"6"`
	ServiceFlowConfig     lifecycle.FlowConfig `json:"service_flow_config"`
}

// ScheduleNodeResponse representa um ponto de contato calculado
type ScheduleNodeResponse struct {
	Month  int    `json:"month"`
	Date   string `json:"date"`
	Phase  string `json:"phase"`
	Action string `json:"action"`
}

// SchedulePreviewResponse representa a agenda calculada
type SchedulePreviewResponse struct {
	AnchorDate string                 `json:"anchor_date"`
	Nodes      []ScheduleNodeResponse `json:"nodes"`
	Total      int                    `json:"total"`
}

// CustomerProductResponse representa um ciclo de vida de produto do cliente
type CustomerProductResponse struct {
	ID                            string               `json:"id"`
	CustomerID                    string               `json:"customer_id"`
	ProductID                     string               `json:"product_id"`
	TransactionID                 string               `json:"transaction_id"`
	TransactionItemID             string               `json:"transaction_item_id"`
	InstallationDate              string               `json:"installation_date"`
	WarrantyEndDate               string               `json:"warranty_end_date"`
	NextServiceDate               string               `json:"next_service_date"`
	Status                        string               `json:"status"`
	ServiceFlowConfigSnapshot     lifecycle.FlowConfig `json:"service_flow_config_snapshot"`
	LifecycleMonthsSnapshot       int                  `json:"lifecycle_months_snapshot"`
	ServiceIntervalMonthsSnapshot int                  `json:"service_interval_months_snapshot"`
	CreatedAt                     time.Time            `json:"created_at"`
}

// ToSchedulePreviewResponse converte os nós calculados para DTO
func ToSchedulePreviewResponse(anchor time.Time, nodes []lifecycle.Node) *SchedulePreviewResponse {
	items := make([]ScheduleNodeResponse, len(nodes))
	for i, n := range nodes {
		items[i] = ScheduleNodeResponse{
			Month:  n.Month,
			Date:   FormatDate(n.Date),
			Phase:  string(n.Phase),
			Action: n.Action,
		}
	}

	return &SchedulePreviewResponse{
		AnchorDate: FormatDate(lifecycle.DateOnly(anchor)),
		Nodes:      items,
		Total:      len(items),
	}
}

// ToCustomerProductResponse converte um cliente-produto do domínio para DTO
func ToCustomerProductResponse(cp *customerproduct.CustomerProduct) *CustomerProductResponse {
	return &CustomerProductResponse{
		ID:                            cp.ID,
		CustomerID:                    cp.CustomerID,
		ProductID:                     cp.ProductID,
		TransactionID:                 cp.TransactionID,
		TransactionItemID:             cp.TransactionItemID,
		InstallationDate:              FormatDate(cp.InstallationDate),
		WarrantyEndDate:               FormatDate(cp.WarrantyEndDate),
		NextServiceDate:               FormatDate(cp.NextServiceDate),
		Status:                        string(cp.Status),
		ServiceFlowConfigSnapshot:     cp.FlowConfig,
		LifecycleMonthsSnapshot:       cp.LifecycleMonths,
		ServiceIntervalMonthsSnapshot: cp.ServiceIntervalMonths,
		CreatedAt:                     cp.CreatedAt,
	}
}

// ToCustomerProductResponses converte uma lista de clientes-produtos para DTO
func ToCustomerProductResponses(cps []*customerproduct.CustomerProduct) []CustomerProductResponse {
	items := make([]CustomerProductResponse, len(cps))
	for i, cp := range cps {
		items[i] = *ToCustomerProductResponse(cp)
	}
	return items
}
