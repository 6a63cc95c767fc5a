package transaction

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, qty int, unit string) *Item {
	t.Helper()
	item, err := NewItem("p-1", "Produto", qty, decimal.RequireFromString(unit), nil)
	require.NoError(t, err)
	return item
}

func TestCalculateTotals(t *testing.T) {
	vat7 := VATSettings{Enabled: true, Rate: decimal.RequireFromString("0.07")}

	tests := []struct {
		name     string
		items    []*Item
		discount string
		vat      VATSettings
		wantSub  string
		wantTax  string
		wantNet  string
	}{
		{
			name:     "no vat",
			items:    []*Item{mustItem(t, 2, "150.50"), mustItem(t, 1, "99")},
			discount: "0",
			vat:      VATSettings{},
			wantSub:  "400",
			wantTax:  "0",
			wantNet:  "400",
		},
		{
			name:     "vat after discount",
			items:    []*Item{mustItem(t, 1, "1000")},
			discount: "100",
			vat:      vat7,
			wantSub:  "1000",
			wantTax:  "63",
			wantNet:  "963",
		},
		{
			name:     "tax rounded to nearest unit",
			items:    []*Item{mustItem(t, 1, "107")},
			discount: "0",
			vat:      vat7,
			wantSub:  "107",
			wantTax:  "7",
			wantNet:  "114",
		},
		{
			name:     "tax rounds half up",
			items:    []*Item{mustItem(t, 1, "50")},
			discount: "0",
			vat:      vat7,
			wantSub:  "50",
			wantTax:  "4",
			wantNet:  "54",
		},
		{
			name:     "vat disabled ignores rate",
			items:    []*Item{mustItem(t, 3, "10")},
			discount: "5",
			vat:      VATSettings{Enabled: false, Rate: decimal.RequireFromString("0.07")},
			wantSub:  "30",
			wantTax:  "0",
			wantNet:  "25",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateTotals(tt.items, decimal.RequireFromString(tt.discount), tt.vat)
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.wantSub).Equal(got.Subtotal), "subtotal %s", got.Subtotal)
			assert.True(t, decimal.RequireFromString(tt.wantTax).Equal(got.Tax), "tax %s", got.Tax)
			assert.True(t, decimal.RequireFromString(tt.wantNet).Equal(got.Net), "net %s", got.Net)
			assert.True(t, got.Net.Equal(got.Subtotal.Sub(got.Discount).Add(got.Tax)))
		})
	}
}

func TestCalculateTotals_Errors(t *testing.T) {
	items := []*Item{mustItem(t, 1, "10")}

	_, err := CalculateTotals(items, decimal.NewFromInt(-1), VATSettings{})
	assert.ErrorIs(t, err, ErrNegativeDiscount)

	_, err = CalculateTotals(items, decimal.NewFromInt(11), VATSettings{})
	assert.ErrorIs(t, err, ErrDiscountTooLarge)

	_, err = CalculateTotals(items, decimal.Zero, VATSettings{Enabled: true, Rate: decimal.NewFromInt(2)})
	assert.ErrorIs(t, err, ErrInvalidVATRate)
}

func TestNewItem(t *testing.T) {
	start := time.Date(2025, time.February, 1, 15, 30, 0, 0, time.UTC)
	item, err := NewItem("p-1", "Filtro", 3, decimal.RequireFromString("19.90"), &start)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("59.70").Equal(item.TotalPrice))
	assert.Equal(t, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), *item.ServiceStartDate)

	_, err = NewItem("p-1", "Filtro", 0, decimal.Zero, nil)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = NewItem("p-1", "Filtro", 1, decimal.NewFromInt(-5), nil)
	assert.ErrorIs(t, err, ErrNegativeUnitPrice)
}

func TestItemAnchorDate(t *testing.T) {
	today := time.Date(2025, time.March, 10, 15, 30, 0, 0, time.UTC)

	withoutStart := mustItem(t, 1, "10")
	assert.Equal(t, time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), withoutStart.AnchorDate(today))

	start := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	withStart, err := NewItem("p-1", "Filtro", 1, decimal.NewFromInt(10), &start)
	require.NoError(t, err)
	assert.Equal(t, start, withStart.AnchorDate(today))
}
