package pricing

import "github.com/shopspring/decimal"

// Compute ejecuta el pipeline completo: línea → pedido → impuesto → redondeo.
func Compute(items []LineItem, orderDiscount DiscountSpec, mode TaxMode) TotalsBreakdown {
	order := Aggregate(items, orderDiscount)
	tax := ResolveTax(order.AmountAfterDiscount, mode)
	rounding := Round(tax.Subtotal)

	return TotalsBreakdown{
		GrossAmount:         order.GrossAmount,
		LineDiscountTotal:   order.LineDiscountTotal,
		OrderDiscountAmount: order.OrderDiscountAmount,
		TotalDiscountAmount: order.TotalDiscountAmount,
		TaxableAmount:       tax.TaxableAmount,
		TaxComponentA:       tax.TaxComponentA,
		TaxComponentB:       tax.TaxComponentB,
		TotalTax:            tax.TotalTax,
		AutoDiscount:        tax.AutoDiscount,
		RoundOff:            rounding.RoundOff,
		GrandTotal:          rounding.GrandTotal,
	}
}

// Subtotal monto previo al redondeo (GrandTotal - RoundOff).
func (b TotalsBreakdown) Subtotal() decimal.Decimal {
	return b.GrandTotal.Sub(b.RoundOff)
}
