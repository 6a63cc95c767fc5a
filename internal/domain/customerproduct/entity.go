package customerproduct

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/erp-servicos/internal/domain/lifecycle"
)

var (
	ErrEmptyCustomer = errors.New("cliente não informado")
	ErrEmptyProduct  = errors.New("produto não informado")
	ErrEmptyItem     = errors.New("item da transação não informado")
)

// Status representa o estado do ciclo de vida
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Snapshot é a cópia da configuração do produto no momento da compra.
// Depois de criada não é relida do produto.
type Snapshot struct {
	FlowConfig            lifecycle.FlowConfig `json:"service_flow_config_snapshot"`
	LifecycleMonths       int                  `json:"lifecycle_months_snapshot"`
	ServiceIntervalMonths int                  `json:"service_interval_months_snapshot"`
}

// CustomerProduct é a instância de ciclo de vida de um produto vendido a um cliente
type CustomerProduct struct {
	ID                string    `json:"id"`
	CustomerID        string    `json:"customer_id"`
	ProductID         string    `json:"product_id"`
	TransactionID     string    `json:"transaction_id"`
	TransactionItemID string    `json:"transaction_item_id"`
	InstallationDate  time.Time `json:"installation_date"`
	WarrantyEndDate   time.Time `json:"warranty_end_date"`
	NextServiceDate   time.Time `json:"next_service_date"`
	Status            Status    `json:"status"`
	Snapshot
	CreatedAt time.Time `json:"created_at"`
}

// NewCustomerProduct cria a instância a partir do snapshot e da data de instalação.
// As datas de resumo usam meses fixos de 30 dias.
func NewCustomerProduct(
	customerID string,
	productID string,
	transactionID string,
	transactionItemID string,
	installationDate time.Time,
	snapshot Snapshot,
	usageDurationDays *int,
) (*CustomerProduct, error) {
	if customerID == "" {
		return nil, ErrEmptyCustomer
	}

	if productID == "" {
		return nil, ErrEmptyProduct
	}

	if transactionItemID == "" {
		return nil, ErrEmptyItem
	}

	installationDate = lifecycle.DateOnly(installationDate)
	summary := lifecycle.ComputeSummaryDates(
		installationDate,
		snapshot.LifecycleMonths,
		snapshot.ServiceIntervalMonths,
		usageDurationDays,
	)

	snapshot.FlowConfig = snapshot.FlowConfig.Clone()

	return &CustomerProduct{
		ID:                uuid.New().String(),
		CustomerID:        customerID,
		ProductID:         productID,
		TransactionID:     transactionID,
		TransactionItemID: transactionItemID,
		InstallationDate:  installationDate,
		WarrantyEndDate:   summary.WarrantyEnd,
		NextServiceDate:   summary.NextService,
		Status:            StatusActive,
		Snapshot:          snapshot,
		CreatedAt:         time.Now(),
	}, nil
}

// Schedule calcula a agenda a partir do snapshot gravado
func (cp *CustomerProduct) Schedule() []lifecycle.Node {
	return lifecycle.GenerateSchedule(
		cp.InstallationDate,
		cp.LifecycleMonths,
		cp.ServiceIntervalMonths,
		cp.FlowConfig,
	)
}
