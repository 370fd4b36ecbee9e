package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados.
const (
	PaymentMethodCash = "cash"
	PaymentMethodCard = "card"
	PaymentMethodUPI  = "upi"
	PaymentMethodBank = "bank_transfer"
)

// Invoice representa la cabecera de una factura con su desglose de totales GST.
// Los montos son los que devolvió el motor de precios al momento de guardar.
type Invoice struct {
	ID                  string
	CompanyID           string
	CustomerID          string
	CreatedBy           string
	Prefix              string
	Number              string
	Date                time.Time
	TaxMode             string // none, standard, reverse_inclusive
	OrderDiscountValue  decimal.Decimal
	OrderDiscountKind   string // amount, percentage
	GrossAmount         decimal.Decimal
	LineDiscountTotal   decimal.Decimal
	OrderDiscountAmount decimal.Decimal
	TotalDiscount       decimal.Decimal // sin el descuento automático
	TaxableAmount       decimal.Decimal
	CGST                decimal.Decimal
	SGST                decimal.Decimal
	TotalTax            decimal.Decimal
	AutoDiscount        decimal.Decimal // solo informativo (reverse_inclusive)
	RoundOff            decimal.Decimal
	GrandTotal          decimal.Decimal
	PaymentMethod       string
	PaidAmount          decimal.Decimal
	PaymentStatus       string // paid, partial, unpaid
	Notes               string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
