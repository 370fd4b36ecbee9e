package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/pricing"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
	"github.com/jhoicas/Facturacion-api/pkg/money"
)

// UpdateInvoiceUseCase flujo de edición: recalcula con el mismo motor que la creación.
type UpdateInvoiceUseCase struct {
	txRunner     BillingTxRunner
	customerRepo repository.CustomerRepository
	invoiceRepo  repository.InvoiceRepository
	formatter    *money.Formatter
	metrics      MetricsRecorder
	log          zerolog.Logger
	now          func() time.Time
}

// NewUpdateInvoiceUseCase construye el caso de uso.
func NewUpdateInvoiceUseCase(
	txRunner BillingTxRunner,
	customerRepo repository.CustomerRepository,
	invoiceRepo repository.InvoiceRepository,
	formatter *money.Formatter,
	metrics MetricsRecorder,
	log zerolog.Logger,
) *UpdateInvoiceUseCase {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return &UpdateInvoiceUseCase{
		txRunner:     txRunner,
		customerRepo: customerRepo,
		invoiceRepo:  invoiceRepo,
		formatter:    formatter,
		metrics:      metrics,
		log:          log,
		now:          time.Now,
	}
}

// UpdateInvoice reescribe totales y líneas de una factura existente.
// Sin pago en la petición, el pago guardado se reclasifica contra el nuevo total.
func (uc *UpdateInvoiceUseCase) UpdateInvoice(ctx context.Context, companyID, id string, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	draft, err := priceDraft(FlowEdit, in.InvoiceDraftRequest, true)
	if err != nil {
		return nil, err
	}
	if err := checkSavable(draft.breakdown); err != nil {
		return nil, err
	}
	grand := draft.breakdown.GrandTotal

	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil || inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	previous := paymentOf(inv)

	var payment pricing.Payment
	if in.Payment != nil {
		payment, err = resolveForSave(in.Payment, grand)
		if err != nil {
			return nil, err
		}
		if in.Payment.Method != "" {
			inv.PaymentMethod = in.Payment.Method
		}
	} else {
		payment = pricing.RecomputePayment(grand, previous)
		if !payment.Consistent(grand) {
			return nil, fmt.Errorf("%w: %s con %s", domain.ErrPaymentInconsistent, payment.State, payment.PaidAmount)
		}
	}

	customerID := inv.CustomerID
	if in.CustomerID != "" {
		customerID = in.CustomerID
	}
	customer, err := uc.customerRepo.GetByID(customerID)
	if err != nil || customer == nil {
		return nil, domain.ErrNotFound
	}
	if customer.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}

	inv.CustomerID = customerID
	inv.Notes = in.Notes
	inv.UpdatedAt = uc.now()
	applyBreakdown(inv, draft)
	applyPayment(inv, payment)

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
		if err := invoiceRepo.Update(inv); err != nil {
			return err
		}
		if err := invoiceRepo.DeleteDetails(inv.ID); err != nil {
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

	uc.metrics.ObserveInvoice(string(FlowEdit), inv.TaxMode, inv.PaymentStatus, inv.GrandTotal)
	if previous.State != payment.State {
		uc.metrics.ObservePaymentTransition(string(previous.State), string(payment.State))
	}
	uc.log.Info().
		Str("company_id", companyID).
		Str("invoice_id", inv.ID).
		Str("tax_mode", inv.TaxMode).
		Str("grand_total", inv.GrandTotal.String()).
		Str("payment_state", inv.PaymentStatus).
		Msg("factura actualizada")

	return toInvoiceResponse(uc.formatter, inv, customer.Name, details), nil
}
