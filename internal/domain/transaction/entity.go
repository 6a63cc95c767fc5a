package transaction

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/erp-servicos/internal/domain/lifecycle"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCustomer            = errors.New("cliente não informado")
	ErrNoItems                  = errors.New("transação sem itens")
	ErrInvalidQuantity          = errors.New("quantidade deve ser maior que zero")
	ErrNegativeUnitPrice        = errors.New("preço unitário não pode ser negativo")
	ErrInvalidPaymentStatus     = errors.New("status de pagamento inválido")
	ErrInvalidPaymentTransition = errors.New("transição de status de pagamento não permitida")
)

// PaymentStatus representa a situação de pagamento da transação
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentPaid      PaymentStatus = "Paid"
	PaymentCancelled PaymentStatus = "Cancelled"
)

// IsValid verifica se o status é conhecido
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentCancelled:
		return true
	}
	return false
}

var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentPending: {PaymentPaid, PaymentCancelled},
	PaymentPaid:    {PaymentCancelled},
}

// CanTransitionTo verifica se a mudança de status é permitida
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	for _, allowed := range paymentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Item representa um item da transação
type Item struct {
	ID               string          `json:"id"`
	TransactionID    string          `json:"transaction_id"`
	ProductID        string          `json:"product_id"`
	ProductName      string          `json:"product_name"`
	Quantity         int             `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	TotalPrice       decimal.Decimal `json:"total_price"`
	ServiceStartDate *time.Time      `json:"service_start_date"`
}

// NewItem cria um item calculando o preço total
func NewItem(productID, productName string, quantity int, unitPrice decimal.Decimal, serviceStartDate *time.Time) (*Item, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	if unitPrice.IsNegative() {
		return nil, ErrNegativeUnitPrice
	}

	if serviceStartDate != nil {
		d := lifecycle.DateOnly(*serviceStartDate)
		serviceStartDate = &d
	}

	return &Item{
		ID:               uuid.New().String(),
		ProductID:        productID,
		ProductName:      productName,
		Quantity:         quantity,
		UnitPrice:        unitPrice,
		TotalPrice:       unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
		ServiceStartDate: serviceStartDate,
	}, nil
}

// AnchorDate retorna a data de início do serviço do item, ou a data de processamento
func (i *Item) AnchorDate(processingDate time.Time) time.Time {
	if i.ServiceStartDate != nil {
		return lifecycle.DateOnly(*i.ServiceStartDate)
	}
	return lifecycle.DateOnly(processingDate)
}

// Transaction representa uma venda no ponto de venda
type Transaction struct {
	ID              string          `json:"id"`
	TransactionNo   string          `json:"transaction_no"`
	CustomerID      string          `json:"customer_id"`
	TransactionDate time.Time       `json:"transaction_date"`
	Items           []*Item         `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	VATRate         decimal.Decimal `json:"vat_rate"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
	NetAmount       decimal.Decimal `json:"net_amount"`
	PaymentStatus   PaymentStatus   `json:"payment_status"`
	PaymentMethod   string          `json:"payment_method"`
	Notes           string          `json:"notes"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// NewTransaction cria uma transação pendente com os itens informados
func NewTransaction(customerID string, transactionDate time.Time, items []*Item) (*Transaction, error) {
	if customerID == "" {
		return nil, ErrEmptyCustomer
	}

	if len(items) == 0 {
		return nil, ErrNoItems
	}

	id := uuid.New().String()
	for _, item := range items {
		item.TransactionID = id
	}

	now := time.Now()
	return &Transaction{
		ID:              id,
		CustomerID:      customerID,
		TransactionDate: lifecycle.DateOnly(transactionDate),
		Items:           items,
		Subtotal:        decimal.Zero,
		DiscountAmount:  decimal.Zero,
		VATRate:         decimal.Zero,
		TaxAmount:       decimal.Zero,
		NetAmount:       decimal.Zero,
		PaymentStatus:   PaymentPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// ApplyTotals calcula e grava os totais da transação
func (t *Transaction) ApplyTotals(discount decimal.Decimal, vat VATSettings) error {
	totals, err := CalculateTotals(t.Items, discount, vat)
	if err != nil {
		return err
	}

	t.Subtotal = totals.Subtotal
	t.DiscountAmount = totals.Discount
	t.VATRate = totals.VATRate
	t.TaxAmount = totals.Tax
	t.NetAmount = totals.Net
	t.UpdatedAt = time.Now()
	return nil
}

// ChangePaymentStatus altera o status de pagamento respeitando as transições permitidas
func (t *Transaction) ChangePaymentStatus(next PaymentStatus) error {
	if !next.IsValid() {
		return ErrInvalidPaymentStatus
	}

	if !t.PaymentStatus.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidPaymentTransition, t.PaymentStatus, next)
	}

	t.PaymentStatus = next
	t.UpdatedAt = time.Now()
	return nil
}
