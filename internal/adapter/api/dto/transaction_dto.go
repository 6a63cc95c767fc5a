package dto

import (
	"time"

	"github.com/hugohenrick/erp-servicos/internal/domain/transaction"
	"github.com/shopspring/decimal"
)

// TransactionItemRequest representa um item da compra
type TransactionItemRequest struct {
	ProductID        string           `json:"product_id" binding:"required"`
	Quantity         int              `json:"quantity" binding:"required,min=1" example:"1"`
	UnitPrice        *decimal.Decimal `json:"unit_price" swaggertype:"string" example:"1500.00"`
	ServiceStartDate string           `json:"service_start_date" binding:"omitempty,datetime=2006-01-02" example:"2024-01-31"`
}

// TransactionRequest representa a requisição de registro de compra
type TransactionRequest struct {
	CustomerID      string                   `json:"customer_id" binding:"required"`
	TransactionNo   string                   `json:"transaction_no" binding:"max=40"`
	TransactionDate string                   `json:"transaction_date" binding:"omitempty,datetime=2006-01-02" example:"2024-01-15"`
	Items           []TransactionItemRequest `json:"items" binding:"required,min=1,dive"`
	DiscountAmount  decimal.Decimal          `json:"discount_amount" swaggertype:"string" example:"0"`
	PaymentMethod   string                   `json:"payment_method" binding:"max=40" example:"cash"`
	Notes           string                   `json:"notes"`
}

// PaymentStatusRequest representa a requisição de alteração do status de pagamento
type PaymentStatusRequest struct {
	Status string `json:"status" binding:"required,payment_status" example:"Paid"`
}

// TransactionItemResponse representa um item da transação
type TransactionItemResponse struct {
	ID               string  `json:"id"`
	ProductID        string  `json:"product_id"`
	ProductName      string  `json:"product_name"`
	Quantity         int     `json:"quantity"`
	UnitPrice        string  `json:"unit_price"`
	TotalPrice       string  `json:"total_price"`
	ServiceStartDate *string `json:"service_start_date"`
}

// TransactionResponse representa a resposta de transação
type TransactionResponse struct {
	ID              string                    `json:"id"`
	TransactionNo   string                    `json:"transaction_no"`
	CustomerID      string                    `json:"customer_id"`
	TransactionDate string                    `json:"transaction_date"`
	Items           []TransactionItemResponse `json:"items"`
	Subtotal        string                    `json:"subtotal"`
	DiscountAmount  string                    `json:"discount_amount"`
	VATRate         string                    `json:"vat_rate"`
	TaxAmount       string                    `json:"tax_amount"`
	NetAmount       string                    `json:"net_amount"`
	PaymentStatus   string                    `json:"payment_status"`
	PaymentMethod   string                    `json:"payment_method"`
	Notes           string                    `json:"notes"`
	CreatedAt       time.Time                 `json:"created_at"`
	UpdatedAt       time.Time                 `json:"updated_at"`
}

// TransactionListResponse representa a resposta de lista de transações
type TransactionListResponse struct {
	Items      []TransactionResponse `json:"items"`
	Total      int                   `json:"total"`
	Page       int                   `json:"page"`
	Size       int                   `json:"size"`
	TotalPages int                   `json:"total_pages"`
}

// ScheduleFailureResponse descreve a falha de agendamento de um item
type ScheduleFailureResponse struct {
	TransactionItemID string `json:"transaction_item_id"`
	ProductID         string `json:"product_id"`
	Error             string `json:"error"`
}

// ScheduleErrorResponse informa que a compra foi gravada mas o agendamento falhou
type ScheduleErrorResponse struct {
	Message  string                    `json:"message"`
	Failures []ScheduleFailureResponse `json:"failures"`
}

// PurchaseResponse representa o resultado do registro de uma compra
type PurchaseResponse struct {
	Transaction      TransactionResponse       `json:"transaction"`
	CustomerProducts []CustomerProductResponse `json:"customer_products"`
	Touchpoints      []TouchpointResponse      `json:"touchpoints"`
	ScheduleError    *ScheduleErrorResponse    `json:"schedule_error,omitempty"`
}

// ToTransactionResponse converte uma transação do domínio para DTO
func ToTransactionResponse(t *transaction.Transaction) *TransactionResponse {
	items := make([]TransactionItemResponse, len(t.Items))
	for i, item := range t.Items {
		items[i] = TransactionItemResponse{
			ID:               item.ID,
			ProductID:        item.ProductID,
			ProductName:      item.ProductName,
			Quantity:         item.Quantity,
			UnitPrice:        item.UnitPrice.StringFixed(2),
			TotalPrice:       item.TotalPrice.StringFixed(2),
			ServiceStartDate: formatOptionalDate(item.ServiceStartDate),
		}
	}

	return &TransactionResponse{
		ID:              t.ID,
		TransactionNo:   t.TransactionNo,
		CustomerID:      t.CustomerID,
		TransactionDate: FormatDate(t.TransactionDate),
		Items:           items,
		Subtotal:        t.Subtotal.StringFixed(2),
		DiscountAmount:  t.DiscountAmount.StringFixed(2),
		VATRate:         t.VATRate.String(),
		TaxAmount:       t.TaxAmount.StringFixed(2),
		NetAmount:       t.NetAmount.StringFixed(2),
		PaymentStatus:   string(t.PaymentStatus),
		PaymentMethod:   t.PaymentMethod,
		Notes:           t.Notes,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

// ToTransactionListResponse converte uma lista de transações do domínio para DTO
func ToTransactionListResponse(transactions []*transaction.Transaction, total, page, size int) *TransactionListResponse {
	items := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		items[i] = *ToTransactionResponse(t)
	}

	return &TransactionListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: CalculateTotalPages(total, size),
	}
}
