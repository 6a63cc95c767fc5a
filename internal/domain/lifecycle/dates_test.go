package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name   string
		anchor time.Time
		months int
		want   time.Time
	}{
		{"same day next month", date(2025, time.January, 15), 1, date(2025, time.February, 15)},
		{"crosses year", date(2025, time.November, 30), 3, date(2026, time.February, 28)},
		{"clamps to february", date(2025, time.January, 31), 1, date(2025, time.February, 28)},
		{"clamps to leap february", date(2024, time.January, 31), 1, date(2024, time.February, 29)},
		{"leap day plus a year", date(2024, time.February, 29), 12, date(2025, time.February, 28)},
		{"thirty day month", date(2025, time.March, 31), 1, date(2025, time.April, 30)},
		{"zero months", date(2025, time.June, 9), 0, date(2025, time.June, 9)},
		{"many years", date(2025, time.January, 15), 60, date(2030, time.January, 15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddMonths(tt.anchor, tt.months))
		})
	}
}

func TestAddSummaryMonths(t *testing.T) {
	assert.Equal(t, date(2025, time.July, 14), AddSummaryMonths(date(2025, time.January, 15), 6))
	assert.Equal(t, date(2025, time.January, 15), AddSummaryMonths(date(2025, time.January, 15), 0))
}

func TestComputeSummaryDates(t *testing.T) {
	anchor := date(2025, time.January, 15)

	t.Run("lifecycle drives warranty", func(t *testing.T) {
		got := ComputeSummaryDates(anchor, 12, 3, nil)
		assert.Equal(t, anchor.AddDate(0, 0, 360), got.WarrantyEnd)
		assert.Equal(t, anchor.AddDate(0, 0, 90), got.NextService)
	})

	t.Run("usage duration fallback", func(t *testing.T) {
		days := 90
		got := ComputeSummaryDates(anchor, 0, 0, &days)
		assert.Equal(t, anchor.AddDate(0, 0, 90), got.WarrantyEnd)
		assert.Equal(t, anchor.AddDate(0, 0, 180), got.NextService)
	})

	t.Run("default usage duration", func(t *testing.T) {
		got := ComputeSummaryDates(anchor, 0, 2, nil)
		assert.Equal(t, anchor.AddDate(0, 0, 365), got.WarrantyEnd)
		assert.Equal(t, anchor.AddDate(0, 0, 60), got.NextService)
	})
}
