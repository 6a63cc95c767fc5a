package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func allEnabled() FlowConfig {
	return FlowConfig{
		Onboarding: TaskPhaseConfig{Enabled: true},
		Retention:  RetentionPhaseConfig{Enabled: true, ReminderDaysBefore: 3},
		Maturity:   TaskPhaseConfig{Enabled: true},
	}
}

func months(nodes []Node) []int {
	out := make([]int, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Month)
	}
	return out
}

func phases(nodes []Node) []Phase {
	out := make([]Phase, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Phase)
	}
	return out
}

func TestGenerateSchedule_Scenarios(t *testing.T) {
	anchor := date(2025, time.January, 15)

	tests := []struct {
		name       string
		lifecycle  int
		interval   int
		cfg        FlowConfig
		wantMonths []int
		wantPhases []Phase
	}{
		{
			name:       "all phases enabled",
			lifecycle:  24,
			interval:   6,
			cfg:        allEnabled(),
			wantMonths: []int{0, 6, 12, 18, 24},
			wantPhases: []Phase{PhaseOnboarding, PhaseRetention, PhaseRetention, PhaseRetention, PhaseMaturity},
		},
		{
			name:       "retention only",
			lifecycle:  12,
			interval:   6,
			cfg:        FlowConfig{Retention: RetentionPhaseConfig{Enabled: true}},
			wantMonths: []int{6},
			wantPhases: []Phase{PhaseRetention},
		},
		{
			name:       "no lifecycle",
			lifecycle:  0,
			interval:   6,
			cfg:        allEnabled(),
			wantMonths: []int{},
			wantPhases: []Phase{},
		},
		{
			name:       "negative lifecycle",
			lifecycle:  -3,
			interval:   1,
			cfg:        allEnabled(),
			wantMonths: []int{},
			wantPhases: []Phase{},
		},
		{
			name:       "interval equal to lifecycle",
			lifecycle:  12,
			interval:   12,
			cfg:        allEnabled(),
			wantMonths: []int{0, 12},
			wantPhases: []Phase{PhaseOnboarding, PhaseMaturity},
		},
		{
			name:       "interval greater than lifecycle",
			lifecycle:  6,
			interval:   12,
			cfg:        allEnabled(),
			wantMonths: []int{0, 6},
			wantPhases: []Phase{PhaseOnboarding, PhaseMaturity},
		},
		{
			name:       "interval zero with retention enabled",
			lifecycle:  12,
			interval:   0,
			cfg:        allEnabled(),
			wantMonths: []int{0, 12},
			wantPhases: []Phase{PhaseOnboarding, PhaseMaturity},
		},
		{
			name:       "non divisible interval",
			lifecycle:  10,
			interval:   4,
			cfg:        FlowConfig{Retention: RetentionPhaseConfig{Enabled: true}},
			wantMonths: []int{4, 8},
			wantPhases: []Phase{PhaseRetention, PhaseRetention},
		},
		{
			name:       "all phases disabled",
			lifecycle:  24,
			interval:   6,
			cfg:        FlowConfig{},
			wantMonths: []int{},
			wantPhases: []Phase{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes := GenerateSchedule(anchor, tt.lifecycle, tt.interval, tt.cfg)
			require.NotNil(t, nodes)
			assert.Equal(t, tt.wantMonths, months(nodes))
			assert.Equal(t, tt.wantPhases, phases(nodes))
		})
	}
}

func TestGenerateSchedule_CalendarMonths(t *testing.T) {
	cfg := FlowConfig{
		Onboarding: TaskPhaseConfig{Enabled: true},
		Maturity:   TaskPhaseConfig{Enabled: true},
	}

	nodes := GenerateSchedule(date(2025, time.January, 15), 6, 3, cfg)

	require.Len(t, nodes, 2)
	assert.Equal(t, 0, nodes[0].Month)
	assert.Equal(t, date(2025, time.January, 15), nodes[0].Date)
	assert.Equal(t, 6, nodes[1].Month)
	assert.Equal(t, date(2025, time.July, 15), nodes[1].Date)
	assert.NotEqual(t, date(2025, time.January, 15).AddDate(0, 0, 180), nodes[1].Date)
}

func TestGenerateSchedule_Labels(t *testing.T) {
	cfg := allEnabled()
	nodes := GenerateSchedule(date(2025, time.March, 1), 12, 6, cfg)
	require.Len(t, nodes, 3)
	assert.Equal(t, DefaultOnboardingAction, nodes[0].Action)
	assert.Equal(t, "Manutenção - mês 6", nodes[1].Action)
	assert.Equal(t, DefaultMaturityAction, nodes[2].Action)

	cfg.Onboarding.TaskName = "Instalação e treinamento"
	cfg.Maturity.TaskName = "Oferta de renovação do contrato"
	nodes = GenerateSchedule(date(2025, time.March, 1), 12, 6, cfg)
	assert.Equal(t, "Instalação e treinamento", nodes[0].Action)
	assert.Equal(t, "Oferta de renovação do contrato", nodes[2].Action)
}

func TestGenerateSchedule_AnchorTimeOfDayIgnored(t *testing.T) {
	anchor := time.Date(2025, time.May, 10, 17, 45, 0, 0, time.FixedZone("ICT", 7*3600))
	nodes := GenerateSchedule(anchor, 3, 1, allEnabled())
	require.NotEmpty(t, nodes)
	assert.Equal(t, date(2025, time.May, 10), nodes[0].Date)
	assert.Equal(t, date(2025, time.June, 10), nodes[1].Date)
}

func TestGenerateSchedule_Properties(t *testing.T) {
	anchors := []time.Time{
		date(2024, time.February, 29),
		date(2025, time.January, 31),
		date(2025, time.December, 15),
	}
	configs := []FlowConfig{
		{},
		allEnabled(),
		{Retention: RetentionPhaseConfig{Enabled: true}},
		{Onboarding: TaskPhaseConfig{Enabled: true}, Maturity: TaskPhaseConfig{Enabled: true}},
	}

	for _, anchor := range anchors {
		for _, cfg := range configs {
			for lifecycle := -1; lifecycle <= 36; lifecycle++ {
				for interval := -1; interval <= 13; interval++ {
					first := GenerateSchedule(anchor, lifecycle, interval, cfg)
					second := GenerateSchedule(anchor, lifecycle, interval, cfg)
					require.Equal(t, first, second, "resultado deve ser determinístico")

					if !cfg.AnyEnabled() || lifecycle <= 0 {
						require.Empty(t, first)
					}

					for i, n := range first {
						if n.Phase == PhaseRetention {
							require.Greater(t, n.Month, 0)
							require.Less(t, n.Month, lifecycle)
						}
						if i > 0 {
							require.GreaterOrEqual(t, n.Month, first[i-1].Month)
							require.False(t, n.Date.Before(first[i-1].Date))
						}
					}

					if interval <= 0 {
						for _, n := range first {
							require.NotEqual(t, PhaseRetention, n.Phase)
						}
					}
				}
			}
		}
	}
}
