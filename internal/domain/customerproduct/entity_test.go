package customerproduct

import (
	"testing"
	"time"

	"github.com/hugohenrick/erp-servicos/internal/domain/lifecycle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomerProduct(t *testing.T) {
	tplID := "tpl-onboarding"
	snapshot := Snapshot{
		FlowConfig: lifecycle.FlowConfig{
			Onboarding: lifecycle.TaskPhaseConfig{Enabled: true, MessageTemplateID: &tplID},
			Retention:  lifecycle.RetentionPhaseConfig{Enabled: true},
			Maturity:   lifecycle.TaskPhaseConfig{Enabled: true},
		},
		LifecycleMonths:       24,
		ServiceIntervalMonths: 6,
	}
	installed := time.Date(2025, time.January, 15, 9, 0, 0, 0, time.UTC)

	cp, err := NewCustomerProduct("c-1", "p-1", "t-1", "i-1", installed, snapshot, nil)
	require.NoError(t, err)

	assert.Equal(t, StatusActive, cp.Status)
	assert.Equal(t, time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC), cp.InstallationDate)
	assert.Equal(t, cp.InstallationDate.AddDate(0, 0, 720), cp.WarrantyEndDate)
	assert.Equal(t, cp.InstallationDate.AddDate(0, 0, 180), cp.NextServiceDate)

	// alterar a configuração de origem não afeta o snapshot
	tplID = "outro"
	snapshot.FlowConfig.Onboarding.Enabled = false
	assert.True(t, cp.FlowConfig.Onboarding.Enabled)
	assert.Equal(t, "tpl-onboarding", *cp.FlowConfig.Onboarding.MessageTemplateID)

	nodes := cp.Schedule()
	require.Len(t, nodes, 5)
	assert.Equal(t, lifecycle.PhaseMaturity, nodes[4].Phase)
	assert.Equal(t, time.Date(2027, time.January, 15, 0, 0, 0, 0, time.UTC), nodes[4].Date)
}

func TestNewCustomerProduct_Validation(t *testing.T) {
	now := time.Now()
	_, err := NewCustomerProduct("", "p", "t", "i", now, Snapshot{}, nil)
	assert.ErrorIs(t, err, ErrEmptyCustomer)
	_, err = NewCustomerProduct("c", "", "t", "i", now, Snapshot{}, nil)
	assert.ErrorIs(t, err, ErrEmptyProduct)
	_, err = NewCustomerProduct("c", "p", "t", "", now, Snapshot{}, nil)
	assert.ErrorIs(t, err, ErrEmptyItem)
}
