package transaction

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrNegativeDiscount = errors.New("desconto não pode ser negativo")
	ErrDiscountTooLarge = errors.New("desconto maior que o subtotal")
	ErrInvalidVATRate   = errors.New("alíquota de IVA inválida")
)

// VATSettings é a configuração de IVA da loja, passada explicitamente ao cálculo
type VATSettings struct {
	Enabled bool
	Rate    decimal.Decimal // fração, ex.: 0.07 = 7%
}

// Totals contém os valores calculados de uma transação
type Totals struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	VATRate  decimal.Decimal
	Tax      decimal.Decimal
	Net      decimal.Decimal
}

// CalculateTotals calcula subtotal, imposto e valor líquido.
// net = (soma dos itens - desconto) + imposto; o imposto é arredondado para a unidade monetária.
func CalculateTotals(items []*Item, discount decimal.Decimal, vat VATSettings) (Totals, error) {
	if discount.IsNegative() {
		return Totals{}, ErrNegativeDiscount
	}

	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.TotalPrice)
	}

	if discount.GreaterThan(subtotal) {
		return Totals{}, ErrDiscountTooLarge
	}

	taxable := subtotal.Sub(discount)
	tax := decimal.Zero
	rate := decimal.Zero
	if vat.Enabled {
		if vat.Rate.IsNegative() || vat.Rate.GreaterThan(decimal.NewFromInt(1)) {
			return Totals{}, ErrInvalidVATRate
		}
		rate = vat.Rate
		tax = taxable.Mul(rate).Round(0)
	}

	return Totals{
		Subtotal: subtotal,
		Discount: discount,
		VATRate:  rate,
		Tax:      tax,
		Net:      taxable.Add(tax),
	}, nil
}
