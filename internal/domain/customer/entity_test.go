package customer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	c, err := NewCustomer("Somchai Jaidee", "0812345678", "somchai@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.True(t, c.IsActive())

	_, err = NewCustomer("", "", "")
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewCustomer("Ana", "", "sem-arroba")
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestCustomerStatus(t *testing.T) {
	c, err := NewCustomer("Ana", "", "")
	require.NoError(t, err)

	c.Block()
	assert.Equal(t, StatusBlocked, c.Status)
	c.Deactivate()
	assert.Equal(t, StatusInactive, c.Status)
	c.Activate()
	assert.True(t, c.IsActive())

	assert.True(t, StatusBlocked.IsValid())
	assert.False(t, Status("deleted").IsValid())
}

func TestCustomerUpdate(t *testing.T) {
	c, err := NewCustomer("Ana", "", "")
	require.NoError(t, err)

	require.NoError(t, c.Update("Ana Souza", "11999990000", "ana@example.com", "U123", "Rua A, 10", "cliente VIP"))
	assert.Equal(t, "Ana Souza", c.Name)
	assert.Equal(t, "U123", c.LineUserID)

	assert.ErrorIs(t, c.Update("", "", "", "", "", ""), ErrEmptyName)

	at := time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC)
	c.UpdateLastPurchase(at)
	require.NotNil(t, c.LastPurchaseAt)
	assert.Equal(t, at, *c.LastPurchaseAt)
}
