package activity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Type identifica o tipo de atividade registrada
type Type string

const (
	TypePurchaseRecorded              Type = "purchase_recorded"
	TypeLifecycleCreated              Type = "lifecycle_created"
	TypeScheduleMaterializationFailed Type = "schedule_materialization_failed"
)

// Log é uma entrada do histórico de atividades do cliente
type Log struct {
	ID           string    `json:"id"`
	CustomerID   string    `json:"customer_id"`
	ActivityType Type      `json:"activity_type"`
	Description  string    `json:"description"`
	ReferenceID  string    `json:"reference_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewLog cria uma entrada de atividade
func NewLog(customerID string, activityType Type, description, referenceID string) *Log {
	return &Log{
		ID:           uuid.New().String(),
		CustomerID:   customerID,
		ActivityType: activityType,
		Description:  description,
		ReferenceID:  referenceID,
		CreatedAt:    time.Now(),
	}
}

// Repository define a interface para o histórico de atividades
type Repository interface {
	// Create grava uma atividade
	Create(ctx context.Context, l *Log) error

	// FindByCustomer lista as atividades do cliente, das mais recentes para as mais antigas
	FindByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*Log, error)
}
