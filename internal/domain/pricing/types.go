// Package pricing resuelve los totales de una factura en borrador: precio por línea,
// descuentos de línea y de pedido, GST dividido en CGST/SGST, redondeo y estado de pago.
//
// Todas las funciones son puras: no guardan estado entre llamadas y se pueden invocar
// en cada edición del borrador, desde el flujo de creación o el de edición.
package pricing

import "github.com/shopspring/decimal"

// DiscountKind tipo de descuento: monto fijo o porcentaje.
type DiscountKind string

const (
	DiscountAmount     DiscountKind = "amount"
	DiscountPercentage DiscountKind = "percentage"
)

// DiscountSpec descuento aplicable a una línea o al pedido completo.
// El valor cero (Kind vacío) equivale a un descuento de monto cero.
type DiscountSpec struct {
	Value decimal.Decimal
	Kind  DiscountKind
}

// Valid indica si Kind es uno de los tipos enumerados (o vacío).
func (d DiscountSpec) Valid() bool {
	switch d.Kind {
	case "", DiscountAmount, DiscountPercentage:
		return true
	}
	return false
}

// amountOn devuelve el monto del descuento sobre base. No recorta a la base.
func (d DiscountSpec) amountOn(base decimal.Decimal) decimal.Decimal {
	if d.Kind == DiscountPercentage {
		return base.Mul(d.Value).Div(hundred)
	}
	return d.Value
}

// NoDiscount descuento nulo.
func NoDiscount() DiscountSpec {
	return DiscountSpec{Value: decimal.Zero, Kind: DiscountAmount}
}

// TaxMode modo de cálculo del GST.
type TaxMode string

const (
	TaxNone     TaxMode = "none"
	TaxStandard TaxMode = "standard"
	// TaxReverseInclusive calcula el impuesto pero no lo suma al subtotal; se
	// muestra como descuento automático. Solo existe en el flujo de creación.
	TaxReverseInclusive TaxMode = "reverse_inclusive"
)

// Valid indica si el modo es uno de los enumerados.
func (m TaxMode) Valid() bool {
	switch m {
	case TaxNone, TaxStandard, TaxReverseInclusive:
		return true
	}
	return false
}

// LineItem fila del borrador. ProductID y Description son opacos para el motor.
type LineItem struct {
	ProductID   string
	Description string
	Quantity    int64
	UnitPrice   decimal.Decimal
	Discount    DiscountSpec
}

// TotalsBreakdown resultado inmutable de un cálculo completo.
type TotalsBreakdown struct {
	GrossAmount         decimal.Decimal
	LineDiscountTotal   decimal.Decimal
	OrderDiscountAmount decimal.Decimal
	TotalDiscountAmount decimal.Decimal
	TaxableAmount       decimal.Decimal
	TaxComponentA       decimal.Decimal // CGST
	TaxComponentB       decimal.Decimal // SGST
	TotalTax            decimal.Decimal
	AutoDiscount        decimal.Decimal
	RoundOff            decimal.Decimal // con signo, positivo si se redondeó hacia arriba
	GrandTotal          decimal.Decimal // siempre entero
}

// DisplayedDiscount descuento que ve el usuario: incluye el descuento automático del
// modo reverse_inclusive. No afecta subtotal ni GrandTotal.
func (b TotalsBreakdown) DisplayedDiscount() decimal.Decimal {
	return b.TotalDiscountAmount.Add(b.AutoDiscount)
}

var hundred = decimal.NewFromInt(100)
