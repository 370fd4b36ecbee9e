package billing

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

// BillingTxRunner ejecuta una función dentro de una transacción con los repos de facturación.
// Si fn retorna error se hace rollback de cabecera y líneas.
type BillingTxRunner interface {
	RunBilling(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		customerRepo repository.CustomerRepository,
		invoiceRepo repository.InvoiceRepository,
	) error) error
}

// MetricsRecorder registra eventos de facturación. Las etiquetas van como string
// para que la implementación no dependa de este paquete.
type MetricsRecorder interface {
	ObserveInvoice(flow, taxMode, paymentState string, grandTotal decimal.Decimal)
	ObservePaymentTransition(from, to string)
}

// NopMetrics descarta todo; útil en tests y cuando las métricas están deshabilitadas.
type NopMetrics struct{}

func (NopMetrics) ObserveInvoice(string, string, string, decimal.Decimal) {}
func (NopMetrics) ObservePaymentTransition(string, string)                {}

// InvoicePDFGenerator genera la representación impresa de una factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(
		ctx context.Context,
		invoice *entity.Invoice,
		company *entity.Company,
		customer *entity.Customer,
		details []InvoiceDetailForPDF,
	) ([]byte, error)
}

// InvoiceDetailForPDF línea de detalle con el nombre del producto ya resuelto.
type InvoiceDetailForPDF struct {
	entity.InvoiceDetail
	ProductName string
	HSNCode     string
}
