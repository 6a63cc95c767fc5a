package events

import "time"

// PurchaseRecorded é publicado depois que a transação é gravada
type PurchaseRecorded struct {
	TransactionID string    `json:"transaction_id"`
	TransactionNo string    `json:"transaction_no"`
	CustomerID    string    `json:"customer_id"`
	NetAmount     string    `json:"net_amount"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// LifecycleCreated é publicado para cada cliente-produto criado
type LifecycleCreated struct {
	CustomerProductID string    `json:"customer_product_id"`
	CustomerID        string    `json:"customer_id"`
	ProductID         string    `json:"product_id"`
	TransactionID     string    `json:"transaction_id"`
	Touchpoints       int       `json:"touchpoints"`
	OccurredAt        time.Time `json:"occurred_at"`
}

// ScheduleFailed é publicado quando o agendamento de um item falha
type ScheduleFailed struct {
	TransactionID     string    `json:"transaction_id"`
	TransactionItemID string    `json:"transaction_item_id"`
	CustomerID        string    `json:"customer_id"`
	Reason            string    `json:"reason"`
	OccurredAt        time.Time `json:"occurred_at"`
}
