package pricing

import "github.com/shopspring/decimal"

// OrderTotals sumas del pedido antes de impuestos.
type OrderTotals struct {
	GrossAmount         decimal.Decimal
	LineDiscountTotal   decimal.Decimal
	OrderDiscountAmount decimal.Decimal
	TotalDiscountAmount decimal.Decimal
	AmountAfterDiscount decimal.Decimal
}

// Aggregate suma las líneas y aplica el descuento de pedido.
// El porcentaje de pedido se calcula sobre el monto ya descontado por línea, por eso
// los descuentos de línea se resuelven primero. Los montos negativos se propagan tal cual.
func Aggregate(items []LineItem, orderDiscount DiscountSpec) OrderTotals {
	gross := decimal.Zero
	lineDiscounts := decimal.Zero
	for _, item := range items {
		p := PriceLine(item)
		if !p.Eligible {
			continue
		}
		gross = gross.Add(p.Gross)
		lineDiscounts = lineDiscounts.Add(p.Discount)
	}

	orderAmount := orderDiscount.amountOn(gross.Sub(lineDiscounts))
	totalDiscount := lineDiscounts.Add(orderAmount)

	return OrderTotals{
		GrossAmount:         gross,
		LineDiscountTotal:   lineDiscounts,
		OrderDiscountAmount: orderAmount,
		TotalDiscountAmount: totalDiscount,
		AmountAfterDiscount: gross.Sub(totalDiscount),
	}
}

