package pricing

import "github.com/shopspring/decimal"

// Rounding total entero y diferencia de redondeo.
type Rounding struct {
	GrandTotal decimal.Decimal
	RoundOff   decimal.Decimal
}

// Round redondea el subtotal a la unidad más cercana (mitad lejos de cero) y guarda
// la diferencia con signo. Es el único punto donde se colapsan los decimales.
func Round(subtotal decimal.Decimal) Rounding {
	grand := subtotal.Round(0)
	return Rounding{
		GrandTotal: grand,
		RoundOff:   grand.Sub(subtotal),
	}
}
