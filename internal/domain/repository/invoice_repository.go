package repository

import "github.com/jhoicas/Facturacion-api/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para Invoice y detalles.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	CreateDetail(detail *entity.InvoiceDetail) error
	// Update reescribe cabecera y totales (flujo de edición).
	Update(invoice *entity.Invoice) error
	// UpdatePayment actualiza solo método, monto pagado y estado de pago.
	UpdatePayment(invoice *entity.Invoice) error
	// DeleteDetails elimina las líneas antes de reescribirlas.
	DeleteDetails(invoiceID string) error
	GetByID(id string) (*entity.Invoice, error)
	GetDetailsByInvoiceID(invoiceID string) ([]*entity.InvoiceDetail, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Invoice, error)
}
