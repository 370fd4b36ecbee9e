package pricing

import "github.com/shopspring/decimal"

// PaymentState clasificación del pago frente al total.
type PaymentState string

const (
	PaymentPaid    PaymentState = "paid"
	PaymentPartial PaymentState = "partial"
	PaymentUnpaid  PaymentState = "unpaid"
)

// Valid indica si el estado es uno de los enumerados.
func (s PaymentState) Valid() bool {
	switch s {
	case PaymentPaid, PaymentPartial, PaymentUnpaid:
		return true
	}
	return false
}

// Payment monto pagado y el estado derivado de él.
type Payment struct {
	PaidAmount decimal.Decimal
	State      PaymentState
}

// PaymentSource punto de entrada de la última edición del usuario.
type PaymentSource string

const (
	SourceStatus PaymentSource = "status" // el usuario cambió el selector de estado
	SourceAmount PaymentSource = "amount" // el usuario escribió el monto pagado
)

// PaymentInput última edición del usuario sobre el pago.
type PaymentInput struct {
	Source     PaymentSource
	State      PaymentState
	PaidAmount decimal.Decimal
}

// PaymentForState deriva el monto desde el selector de estado.
// Partial deja el monto en cero a la espera de que el usuario lo escriba.
func PaymentForState(grandTotal decimal.Decimal, state PaymentState) Payment {
	switch state {
	case PaymentPaid:
		return Payment{PaidAmount: grandTotal, State: PaymentPaid}
	case PaymentPartial:
		return Payment{PaidAmount: decimal.Zero, State: PaymentPartial}
	default:
		return Payment{PaidAmount: decimal.Zero, State: PaymentUnpaid}
	}
}

// PaymentForAmount deriva el estado desde el monto pagado. No recorta el monto.
// Un monto negativo cae en partial y no es consistente; los casos de uso lo rechazan antes.
func PaymentForAmount(grandTotal, amount decimal.Decimal) Payment {
	switch {
	case amount.IsZero():
		return Payment{PaidAmount: amount, State: PaymentUnpaid}
	case amount.GreaterThanOrEqual(grandTotal):
		return Payment{PaidAmount: amount, State: PaymentPaid}
	default:
		return Payment{PaidAmount: amount, State: PaymentPartial}
	}
}

// ResolvePayment aplica la edición según su punto de entrada.
func ResolvePayment(grandTotal decimal.Decimal, in PaymentInput) Payment {
	if in.Source == SourceStatus {
		return PaymentForState(grandTotal, in.State)
	}
	return PaymentForAmount(grandTotal, in.PaidAmount)
}

// RecomputePayment reclasifica un pago existente cuando cambia el total:
// paid sigue al total, unpaid queda en cero y partial se reclasifica por monto.
func RecomputePayment(grandTotal decimal.Decimal, prev Payment) Payment {
	switch prev.State {
	case PaymentPaid:
		return PaymentForState(grandTotal, PaymentPaid)
	case PaymentPartial:
		return PaymentForAmount(grandTotal, prev.PaidAmount)
	default:
		return PaymentForState(grandTotal, PaymentUnpaid)
	}
}

// Consistent verifica la invariante del estado frente al total:
// paid ⇒ pagado ≥ total, unpaid ⇒ pagado = 0, partial ⇒ 0 < pagado < total.
func (p Payment) Consistent(grandTotal decimal.Decimal) bool {
	switch p.State {
	case PaymentPaid:
		return p.PaidAmount.GreaterThanOrEqual(grandTotal)
	case PaymentUnpaid:
		return p.PaidAmount.IsZero()
	case PaymentPartial:
		return p.PaidAmount.IsPositive() && p.PaidAmount.LessThan(grandTotal)
	}
	return false
}
