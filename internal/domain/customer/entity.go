package customer

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errors.New("nome não pode ser vazio")
	ErrInvalidEmail  = errors.New("email inválido")
	ErrInvalidStatus = errors.New("status inválido")
)

// Status representa o estado do cliente
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusBlocked  Status = "blocked"
)

// IsValid verifica se o status é conhecido
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusBlocked:
		return true
	}
	return false
}

// Customer representa um cliente da loja
type Customer struct {
	ID             string     `json:"id"`               // ID do Cliente
	Name           string     `json:"name"`             // Nome
	Phone          string     `json:"phone"`            // Telefone
	Email          string     `json:"email"`            // Email
	LineUserID     string     `json:"line_user_id"`     // Identificador no canal de mensagens
	Address        string     `json:"address"`          // Endereço
	Notes          string     `json:"notes"`            // Observações
	Status         Status     `json:"status"`           // Status do Cliente
	LastPurchaseAt *time.Time `json:"last_purchase_at"` // Data da Última Compra
	CreatedAt      time.Time  `json:"created_at"`       // Data de Criação
	UpdatedAt      time.Time  `json:"updated_at"`       // Data de Atualização
}

// NewCustomer cria um novo cliente
func NewCustomer(name, phone, email string) (*Customer, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	if email != "" && !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}

	now := time.Now()
	return &Customer{
		ID:        uuid.New().String(),
		Name:      name,
		Phone:     phone,
		Email:     email,
		Status:    StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// IsActive verifica se o cliente está ativo
func (c *Customer) IsActive() bool {
	return c.Status == StatusActive
}

// Activate ativa o cliente
func (c *Customer) Activate() {
	c.Status = StatusActive
	c.UpdatedAt = time.Now()
}

// Deactivate desativa o cliente
func (c *Customer) Deactivate() {
	c.Status = StatusInactive
	c.UpdatedAt = time.Now()
}

// Block bloqueia o cliente
func (c *Customer) Block() {
	c.Status = StatusBlocked
	c.UpdatedAt = time.Now()
}

// Update atualiza os dados do cliente
func (c *Customer) Update(name, phone, email, lineUserID, address, notes string) error {
	if name == "" {
		return ErrEmptyName
	}

	if email != "" && !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}

	c.Name = name
	c.Phone = phone
	c.Email = email
	c.LineUserID = lineUserID
	c.Address = address
	c.Notes = notes
	c.UpdatedAt = time.Now()

	return nil
}

// UpdateLastPurchase atualiza a data da última compra
func (c *Customer) UpdateLastPurchase(at time.Time) {
	c.LastPurchaseAt = &at
	c.UpdatedAt = time.Now()
}
