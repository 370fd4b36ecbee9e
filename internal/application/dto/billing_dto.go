package dto

import "github.com/shopspring/decimal"

// CreateCustomerRequest body para POST /api/customers.
type CreateCustomerRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=200"`
	GSTIN string `json:"gstin,omitempty" validate:"omitempty,len=15,alphanum"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
	Phone string `json:"phone,omitempty" validate:"omitempty,max=20"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	Name      string `json:"name"`
	GSTIN     string `json:"gstin,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// DiscountRequest descuento de línea o de pedido.
type DiscountRequest struct {
	Value decimal.Decimal `json:"value"`
	Kind  string          `json:"kind" validate:"omitempty,oneof=amount percentage"`
}

// InvoiceItemRequest línea del borrador.
// Las filas sin producto, con cantidad o precio no positivos se descartan antes de guardar.
type InvoiceItemRequest struct {
	ProductID   string          `json:"product_id"`
	Description string          `json:"description,omitempty"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Discount    DiscountRequest `json:"discount"`
}

// PaymentRequest última edición del usuario sobre el pago.
// Source "status" deriva el monto desde Status; "amount" deriva el estado desde PaidAmount.
type PaymentRequest struct {
	Source     string          `json:"source" validate:"required,oneof=status amount"`
	Status     string          `json:"status,omitempty" validate:"omitempty,oneof=paid partial unpaid"`
	PaidAmount decimal.Decimal `json:"paid_amount"`
	Method     string          `json:"method,omitempty" validate:"omitempty,oneof=cash card upi bank_transfer"`
}

// InvoiceDraftRequest borrador compartido por creación, edición y vista previa.
type InvoiceDraftRequest struct {
	CustomerID    string               `json:"customer_id"`
	Items         []InvoiceItemRequest `json:"items" validate:"dive"`
	OrderDiscount DiscountRequest      `json:"order_discount"`
	TaxMode       string               `json:"tax_mode" validate:"required,oneof=none standard reverse_inclusive"`
	Payment       *PaymentRequest      `json:"payment,omitempty"`
	Notes         string               `json:"notes,omitempty" validate:"max=500"`
}

// CreateInvoiceRequest body para POST /api/invoices.
type CreateInvoiceRequest struct {
	InvoiceDraftRequest
	Prefix string `json:"prefix,omitempty" validate:"omitempty,max=10"`
	Number string `json:"number,omitempty" validate:"omitempty,max=30"`
}

// UpdateInvoiceRequest body para PUT /api/invoices/:id (flujo de edición).
type UpdateInvoiceRequest struct {
	InvoiceDraftRequest
}

// TotalsResponse desglose numérico completo.
type TotalsResponse struct {
	GrossAmount         decimal.Decimal `json:"gross_amount"`
	LineDiscountTotal   decimal.Decimal `json:"line_discount_total"`
	OrderDiscountAmount decimal.Decimal `json:"order_discount_amount"`
	TotalDiscountAmount decimal.Decimal `json:"total_discount_amount"`
	TaxableAmount       decimal.Decimal `json:"taxable_amount"`
	CGST                decimal.Decimal `json:"cgst"`
	SGST                decimal.Decimal `json:"sgst"`
	TotalTax            decimal.Decimal `json:"total_tax"`
	AutoDiscount        decimal.Decimal `json:"auto_discount"`
	RoundOff            decimal.Decimal `json:"round_off"`
	GrandTotal          decimal.Decimal `json:"grand_total"`
}

// TotalsDisplay los mismos campos como strings de moneda.
// TotalDiscountAmount incluye el descuento automático del modo reverse_inclusive.
type TotalsDisplay struct {
	GrossAmount         string `json:"gross_amount"`
	LineDiscountTotal   string `json:"line_discount_total"`
	OrderDiscountAmount string `json:"order_discount_amount"`
	TotalDiscountAmount string `json:"total_discount_amount"`
	TaxableAmount       string `json:"taxable_amount"`
	CGST                string `json:"cgst"`
	SGST                string `json:"sgst"`
	TotalTax            string `json:"total_tax"`
	AutoDiscount        string `json:"auto_discount,omitempty"`
	RoundOff            string `json:"round_off"`
	GrandTotal          string `json:"grand_total"`
	PaidAmount          string `json:"paid_amount"`
}

// PaymentResponse pago resuelto.
type PaymentResponse struct {
	PaidAmount decimal.Decimal `json:"paid_amount"`
	Status     string          `json:"status"`
	Method     string          `json:"method,omitempty"`
	Consistent bool            `json:"consistent"`
}

// LinePreviewResponse precio resuelto de una línea del borrador.
type LinePreviewResponse struct {
	Index    int             `json:"index"`
	Valid    bool            `json:"valid"`
	Gross    decimal.Decimal `json:"gross"`
	Discount decimal.Decimal `json:"discount"`
	Amount   decimal.Decimal `json:"amount"`
}

// PreviewResponse respuesta de POST /api/invoices/preview.
type PreviewResponse struct {
	Flow    string                `json:"flow"`
	TaxMode string                `json:"tax_mode"`
	Lines   []LinePreviewResponse `json:"lines"`
	Totals  TotalsResponse        `json:"totals"`
	Display TotalsDisplay         `json:"display"`
	Payment PaymentResponse       `json:"payment"`
}

// InvoiceResponse factura con detalle para GET /api/invoices/:id.
type InvoiceResponse struct {
	ID            string                  `json:"id"`
	CompanyID     string                  `json:"company_id"`
	CustomerID    string                  `json:"customer_id"`
	CustomerName  string                  `json:"customer_name,omitempty"`
	Prefix        string                  `json:"prefix"`
	Number        string                  `json:"number"`
	Date          string                  `json:"date"`
	TaxMode       string                  `json:"tax_mode"`
	OrderDiscount DiscountRequest         `json:"order_discount"`
	Totals        TotalsResponse          `json:"totals"`
	Display       TotalsDisplay           `json:"display"`
	Payment       PaymentResponse         `json:"payment"`
	Notes         string                  `json:"notes,omitempty"`
	Details       []InvoiceDetailResponse `json:"details"`
}

// InvoiceDetailResponse línea de detalle en la respuesta.
type InvoiceDetailResponse struct {
	ID             string          `json:"id"`
	ProductID      string          `json:"product_id"`
	Description    string          `json:"description,omitempty"`
	Quantity       int64           `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	Discount       DiscountRequest `json:"discount"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	Amount         decimal.Decimal `json:"amount"`
}

// InvoiceSummaryResponse fila del listado de facturas.
type InvoiceSummaryResponse struct {
	ID            string          `json:"id"`
	Number        string          `json:"number"`
	Date          string          `json:"date"`
	CustomerID    string          `json:"customer_id"`
	GrandTotal    decimal.Decimal `json:"grand_total"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	PaymentStatus string          `json:"payment_status"`
}

// InvoiceListResponse lista paginada de facturas.
type InvoiceListResponse struct {
	Items []InvoiceSummaryResponse `json:"items"`
	Page  PageResponse             `json:"page"`
}
