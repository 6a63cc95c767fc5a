package dto

import (
	"time"

	"github.com/hugohenrick/erp-servicos/internal/domain/activity"
	"github.com/hugohenrick/erp-servicos/internal/domain/customer"
)

// CustomerRequest representa a requisição de criação/atualização de cliente
type CustomerRequest struct {
	Name       string `json:"name" binding:"required,max=200"`
	Phone      string `json:"phone" binding:"max=40"`
	Email      string `json:"email" binding:"omitempty,email"`
	LineUserID string `json:"line_user_id" binding:"max=100"`
	Address    string `json:"address"`
	Notes      string `json:"notes"`
}

// CustomerStatusRequest representa a requisição de alteração de status
type CustomerStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active inactive blocked"`
}

// CustomerResponse representa a resposta de cliente
type CustomerResponse struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Phone          string     `json:"phone"`
	Email          string     `json:"email"`
	LineUserID     string     `json:"line_user_id"`
	Address        string     `json:"address"`
	Notes          string     `json:"notes"`
	Status         string     `json:"status"`
	LastPurchaseAt *time.Time `json:"last_purchase_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// CustomerListResponse representa a resposta de lista de clientes
type CustomerListResponse struct {
	Items      []CustomerResponse `json:"items"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	Size       int                `json:"size"`
	TotalPages int                `json:"total_pages"`
}

// ActivityResponse representa um registro do histórico do cliente
type ActivityResponse struct {
	ID           string    `json:"id"`
	ActivityType string    `json:"activity_type"`
	Description  string    `json:"description"`
	ReferenceID  string    `json:"reference_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// ToCustomerResponse converte um cliente do domínio para DTO
func ToCustomerResponse(c *customer.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:             c.ID,
		Name:           c.Name,
		Phone:          c.Phone,
		Email:          c.Email,
		LineUserID:     c.LineUserID,
		Address:        c.Address,
		Notes:          c.Notes,
		Status:         string(c.Status),
		LastPurchaseAt: c.LastPurchaseAt,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// ToCustomerListResponse converte uma lista de clientes do domínio para DTO
func ToCustomerListResponse(customers []*customer.Customer, total, page, size int) *CustomerListResponse {
	items := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		items[i] = *ToCustomerResponse(c)
	}

	return &CustomerListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: CalculateTotalPages(total, size),
	}
}

// ToActivityResponses converte o histórico do cliente para DTO
func ToActivityResponses(logs []*activity.Log) []ActivityResponse {
	items := make([]ActivityResponse, len(logs))
	for i, l := range logs {
		items[i] = ActivityResponse{
			ID:           l.ID,
			ActivityType: string(l.ActivityType),
			Description:  l.Description,
			ReferenceID:  l.ReferenceID,
			CreatedAt:    l.CreatedAt,
		}
	}
	return items
}
