package pricing

import "github.com/shopspring/decimal"

// Tasa de cada componente del GST doméstico (CGST y SGST). Suman 18%.
var componentRate = decimal.New(9, -2)

// TaxResolution resultado del cálculo de impuestos.
type TaxResolution struct {
	TaxableAmount decimal.Decimal
	TaxComponentA decimal.Decimal
	TaxComponentB decimal.Decimal
	TotalTax      decimal.Decimal
	AutoDiscount  decimal.Decimal
	Subtotal      decimal.Decimal
}

// ResolveTax calcula CGST/SGST sobre el monto después de descuentos según el modo.
//
//   - none: sin impuesto, subtotal = monto.
//   - standard: impuesto sumado al subtotal.
//   - reverse_inclusive: impuesto calculado igual que standard, reportado como
//     AutoDiscount y NO sumado al subtotal.
//
// Un modo desconocido se trata como none; los flujos lo rechazan antes de llegar aquí.
func ResolveTax(amountAfterDiscount decimal.Decimal, mode TaxMode) TaxResolution {
	res := TaxResolution{
		TaxableAmount: amountAfterDiscount,
		TaxComponentA: decimal.Zero,
		TaxComponentB: decimal.Zero,
		TotalTax:      decimal.Zero,
		AutoDiscount:  decimal.Zero,
		Subtotal:      amountAfterDiscount,
	}
	if mode != TaxStandard && mode != TaxReverseInclusive {
		return res
	}

	component := res.TaxableAmount.Mul(componentRate)
	res.TaxComponentA = component
	res.TaxComponentB = component
	res.TotalTax = component.Add(component)

	if mode == TaxReverseInclusive {
		res.AutoDiscount = res.TotalTax
		return res
	}
	res.Subtotal = res.TaxableAmount.Add(res.TotalTax)
	return res
}
