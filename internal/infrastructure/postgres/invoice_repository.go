package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `
	id, company_id, customer_id, created_by, prefix, number, date, tax_mode,
	order_discount_value, order_discount_kind,
	gross_amount, line_discount_total, order_discount_amount, total_discount,
	taxable_amount, cgst, sgst, total_tax, auto_discount, round_off, grand_total,
	payment_method, paid_amount, payment_status, notes, created_at, updated_at`

// rowScanner lo cumplen pgx.Row y pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanInvoice(row rowScanner) (*entity.Invoice, error) {
	var inv entity.Invoice
	var createdBy, method *string
	err := row.Scan(
		&inv.ID, &inv.CompanyID, &inv.CustomerID, &createdBy, &inv.Prefix, &inv.Number, &inv.Date, &inv.TaxMode,
		&inv.OrderDiscountValue, &inv.OrderDiscountKind,
		&inv.GrossAmount, &inv.LineDiscountTotal, &inv.OrderDiscountAmount, &inv.TotalDiscount,
		&inv.TaxableAmount, &inv.CGST, &inv.SGST, &inv.TotalTax, &inv.AutoDiscount, &inv.RoundOff, &inv.GrandTotal,
		&method, &inv.PaidAmount, &inv.PaymentStatus, &inv.Notes, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	inv.CreatedBy = derefStr(createdBy)
	inv.PaymentMethod = derefStr(method)
	return &inv, nil
}

// Create persiste la cabecera de la factura con el desglose completo.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	if invoice.ID == "" {
		invoice.ID = uuid.New().String()
	}
	query := `INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27)`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.CompanyID, invoice.CustomerID, nullIfEmpty(invoice.CreatedBy),
		invoice.Prefix, invoice.Number, invoice.Date, invoice.TaxMode,
		invoice.OrderDiscountValue, invoice.OrderDiscountKind,
		invoice.GrossAmount, invoice.LineDiscountTotal, invoice.OrderDiscountAmount, invoice.TotalDiscount,
		invoice.TaxableAmount, invoice.CGST, invoice.SGST, invoice.TotalTax, invoice.AutoDiscount,
		invoice.RoundOff, invoice.GrandTotal,
		nullIfEmpty(invoice.PaymentMethod), invoice.PaidAmount, invoice.PaymentStatus, invoice.Notes,
		invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("número de factura ya existe: %w", domain.ErrDuplicate)
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// CreateDetail persiste una línea de detalle.
func (r *InvoiceRepo) CreateDetail(detail *entity.InvoiceDetail) error {
	if detail.ID == "" {
		detail.ID = uuid.New().String()
	}
	query := `
		INSERT INTO invoice_items (id, invoice_id, product_id, description, quantity, unit_price,
		                           discount_value, discount_kind, discount_amount, amount, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		detail.ID, detail.InvoiceID, detail.ProductID, detail.Description, detail.Quantity, detail.UnitPrice,
		detail.DiscountValue, detail.DiscountKind, detail.DiscountAmount, detail.Amount, detail.Position,
	)
	if err != nil {
		return fmt.Errorf("insert invoice item: %w", err)
	}
	return nil
}

// Update reescribe cliente, modo, descuentos, totales y pago (flujo de edición).
func (r *InvoiceRepo) Update(invoice *entity.Invoice) error {
	query := `
		UPDATE invoices
		SET customer_id           = $2,
		    tax_mode              = $3,
		    order_discount_value  = $4,
		    order_discount_kind   = $5,
		    gross_amount          = $6,
		    line_discount_total   = $7,
		    order_discount_amount = $8,
		    total_discount        = $9,
		    taxable_amount        = $10,
		    cgst                  = $11,
		    sgst                  = $12,
		    total_tax             = $13,
		    auto_discount         = $14,
		    round_off             = $15,
		    grand_total           = $16,
		    payment_method        = $17,
		    paid_amount           = $18,
		    payment_status        = $19,
		    notes                 = $20,
		    updated_at            = $21
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.CustomerID, invoice.TaxMode,
		invoice.OrderDiscountValue, invoice.OrderDiscountKind,
		invoice.GrossAmount, invoice.LineDiscountTotal, invoice.OrderDiscountAmount, invoice.TotalDiscount,
		invoice.TaxableAmount, invoice.CGST, invoice.SGST, invoice.TotalTax, invoice.AutoDiscount,
		invoice.RoundOff, invoice.GrandTotal,
		nullIfEmpty(invoice.PaymentMethod), invoice.PaidAmount, invoice.PaymentStatus, invoice.Notes,
		invoice.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdatePayment actualiza solo método, monto pagado y estado.
func (r *InvoiceRepo) UpdatePayment(invoice *entity.Invoice) error {
	query := `
		UPDATE invoices
		SET payment_method = $2, paid_amount = $3, payment_status = $4, updated_at = $5
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		invoice.ID, nullIfEmpty(invoice.PaymentMethod), invoice.PaidAmount, invoice.PaymentStatus, invoice.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update invoice payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteDetails elimina las líneas de una factura.
func (r *InvoiceRepo) DeleteDetails(invoiceID string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM invoice_items WHERE invoice_id = $1`, invoiceID); err != nil {
		return fmt.Errorf("delete invoice items: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`
	inv, err := scanInvoice(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

// GetDetailsByInvoiceID obtiene las líneas en el orden en que se capturaron.
func (r *InvoiceRepo) GetDetailsByInvoiceID(invoiceID string) ([]*entity.InvoiceDetail, error) {
	query := `
		SELECT id, invoice_id, product_id, description, quantity, unit_price,
		       discount_value, discount_kind, discount_amount, amount, position
		FROM invoice_items WHERE invoice_id = $1 ORDER BY position`
	rows, err := r.q.Query(context.Background(), query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice items: %w", err)
	}
	defer rows.Close()
	var list []*entity.InvoiceDetail
	for rows.Next() {
		var d entity.InvoiceDetail
		if err := rows.Scan(
			&d.ID, &d.InvoiceID, &d.ProductID, &d.Description, &d.Quantity, &d.UnitPrice,
			&d.DiscountValue, &d.DiscountKind, &d.DiscountAmount, &d.Amount, &d.Position,
		); err != nil {
			return nil, fmt.Errorf("scan invoice item: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// ListByCompany lista facturas de la empresa, más recientes primero.
func (r *InvoiceRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + `
		FROM invoices WHERE company_id = $1 ORDER BY date DESC, number DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}
