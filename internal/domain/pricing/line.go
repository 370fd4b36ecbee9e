package pricing

import "github.com/shopspring/decimal"

// LinePrice precio resuelto de una línea.
type LinePrice struct {
	Eligible bool
	Gross    decimal.Decimal
	Discount decimal.Decimal
	Extended decimal.Decimal
}

// PriceLine calcula bruto, descuento y monto extendido de una línea.
// Líneas con cantidad o precio no positivos no aportan nada a las sumas.
func PriceLine(item LineItem) LinePrice {
	if item.Quantity <= 0 || !item.UnitPrice.IsPositive() {
		return LinePrice{Gross: decimal.Zero, Discount: decimal.Zero, Extended: decimal.Zero}
	}
	gross := decimal.NewFromInt(item.Quantity).Mul(item.UnitPrice)
	discount := item.Discount.amountOn(gross)
	return LinePrice{
		Eligible: true,
		Gross:    gross,
		Discount: discount,
		Extended: gross.Sub(discount), // sin recorte a cero
	}
}
