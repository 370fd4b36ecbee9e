package entity

import "github.com/shopspring/decimal"

// InvoiceDetail representa una línea de detalle de una factura.
type InvoiceDetail struct {
	ID             string
	InvoiceID      string
	ProductID      string
	Description    string
	Quantity       int64
	UnitPrice      decimal.Decimal
	DiscountValue  decimal.Decimal
	DiscountKind   string
	DiscountAmount decimal.Decimal
	Amount         decimal.Decimal // cantidad × precio − descuento
	Position       int
}
