package billing

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/pricing"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
	"github.com/jhoicas/Facturacion-api/pkg/money"
)

// CreateInvoiceUseCase crea facturas (flujo de creación) y las consulta.
type CreateInvoiceUseCase struct {
	txRunner      BillingTxRunner
	customerRepo  repository.CustomerRepository
	invoiceRepo   repository.InvoiceRepository
	formatter     *money.Formatter
	metrics       MetricsRecorder
	log           zerolog.Logger
	defaultPrefix string
	now           func() time.Time
}

// NewCreateInvoiceUseCase construye el caso de uso.
func NewCreateInvoiceUseCase(
	txRunner BillingTxRunner,
	customerRepo repository.CustomerRepository,
	invoiceRepo repository.InvoiceRepository,
	formatter *money.Formatter,
	metrics MetricsRecorder,
	log zerolog.Logger,
	defaultPrefix string,
) *CreateInvoiceUseCase {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return &CreateInvoiceUseCase{
		txRunner:      txRunner,
		customerRepo:  customerRepo,
		invoiceRepo:   invoiceRepo,
		formatter:     formatter,
		metrics:       metrics,
		log:           log,
		defaultPrefix: defaultPrefix,
		now:           time.Now,
	}
}

// CreateInvoice valida el borrador, calcula totales y pago, y guarda cabecera y líneas
// en una sola transacción.
func (uc *CreateInvoiceUseCase) CreateInvoice(ctx context.Context, companyID, userID string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.CustomerID == "" {
		return nil, domain.ErrInvalidInput
	}
	draft, err := priceDraft(FlowCreate, in.InvoiceDraftRequest, true)
	if err != nil {
		return nil, err
	}
	if err := checkSavable(draft.breakdown); err != nil {
		return nil, err
	}
	payment, err := resolveForSave(in.Payment, draft.breakdown.GrandTotal)
	if err != nil {
		return nil, err
	}

	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil || customer == nil {
		return nil, domain.ErrNotFound
	}
	if customer.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}

	now := uc.now()
	prefix := strings.TrimSpace(in.Prefix)
	if prefix == "" {
		prefix = uc.defaultPrefix
	}
	number := strings.TrimSpace(in.Number)
	if number == "" {
		number = strconv.FormatInt(now.Unix(), 10)
	}

	inv := &entity.Invoice{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		CustomerID: in.CustomerID,
		CreatedBy:  userID,
		Prefix:     prefix,
		Number:     number,
		Date:       now,
		Notes:      in.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	applyBreakdown(inv, draft)
	applyPayment(inv, payment)
	if in.Payment != nil {
		inv.PaymentMethod = in.Payment.Method
	}

	var details []*entity.InvoiceDetail
	err = uc.txRunner.RunBilling(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.CustomerRepository,
		invoiceRepo repository.InvoiceRepository,
	) error {
		built, err := buildDetails(productRepo, companyID, inv.ID, draft.lines)
		if err != nil {
			return err
		}
		details = built
		if err := invoiceRepo.Create(inv); err != nil {
			return err
		}
		for _, d := range details {
			if err := invoiceRepo.CreateDetail(d); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.ObserveInvoice(string(FlowCreate), inv.TaxMode, inv.PaymentStatus, inv.GrandTotal)
	uc.log.Info().
		Str("company_id", companyID).
		Str("invoice_id", inv.ID).
		Str("tax_mode", inv.TaxMode).
		Str("grand_total", inv.GrandTotal.String()).
		Str("payment_state", inv.PaymentStatus).
		Msg("factura creada")

	return toInvoiceResponse(uc.formatter, inv, customer.Name, details), nil
}

// buildDetails verifica que cada producto exista y sea de la empresa, y arma las líneas
// con el precio resuelto por el motor.
func buildDetails(productRepo repository.ProductRepository, companyID, invoiceID string, lines []pricing.LineItem) ([]*entity.InvoiceDetail, error) {
	details := make([]*entity.InvoiceDetail, 0, len(lines))
	for i, li := range lines {
		product, err := productRepo.GetByID(li.ProductID)
		if err != nil {
			return nil, fmt.Errorf("obtener producto %s: %w", li.ProductID, err)
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		if product.CompanyID != companyID {
			return nil, domain.ErrForbidden
		}
		desc := li.Description
		if desc == "" {
			desc = product.Name
		}
		lp := pricing.PriceLine(li)
		details = append(details, &entity.InvoiceDetail{
			ID:             uuid.New().String(),
			InvoiceID:      invoiceID,
			ProductID:      li.ProductID,
			Description:    desc,
			Quantity:       li.Quantity,
			UnitPrice:      li.UnitPrice,
			DiscountValue:  li.Discount.Value,
			DiscountKind:   string(li.Discount.Kind),
			DiscountAmount: lp.Discount,
			Amount:         lp.Extended,
			Position:       i + 1,
		})
	}
	return details, nil
}

// GetInvoice obtiene una factura por ID con su detalle completo.
func (uc *CreateInvoiceUseCase) GetInvoice(ctx context.Context, companyID, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil || inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	details, err := uc.invoiceRepo.GetDetailsByInvoiceID(id)
	if err != nil {
		return nil, err
	}
	customerName := ""
	if customer, _ := uc.customerRepo.GetByID(inv.CustomerID); customer != nil {
		customerName = customer.Name
	}
	return toInvoiceResponse(uc.formatter, inv, customerName, details), nil
}

// ListInvoices lista las facturas de la empresa, más recientes primero.
func (uc *CreateInvoiceUseCase) ListInvoices(ctx context.Context, companyID string, limit, offset int) (*dto.InvoiceListResponse, error) {
	page := dto.PageRequest{Limit: limit, Offset: offset}
	page.DefaultPage()
	list, err := uc.invoiceRepo.ListByCompany(companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.InvoiceListResponse{
		Items: make([]dto.InvoiceSummaryResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, inv := range list {
		out.Items = append(out.Items, toInvoiceSummary(inv))
	}
	return out, nil
}
