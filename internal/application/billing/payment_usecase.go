package billing

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

// PaymentUseCase registra cambios de pago sobre una factura guardada.
type PaymentUseCase struct {
	invoiceRepo repository.InvoiceRepository
	metrics     MetricsRecorder
	log         zerolog.Logger
	now         func() time.Time
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(invoiceRepo repository.InvoiceRepository, metrics MetricsRecorder, log zerolog.Logger) *PaymentUseCase {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return &PaymentUseCase{invoiceRepo: invoiceRepo, metrics: metrics, log: log, now: time.Now}
}

// UpdatePayment aplica la edición (selector de estado o monto) contra el total guardado.
func (uc *PaymentUseCase) UpdatePayment(ctx context.Context, companyID, id string, in dto.PaymentRequest) (*dto.PaymentResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil || inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}

	payment, err := resolveForSave(&in, inv.GrandTotal)
	if err != nil {
		return nil, err
	}
	previous := paymentOf(inv)

	applyPayment(inv, payment)
	if in.Method != "" {
		inv.PaymentMethod = in.Method
	}
	inv.UpdatedAt = uc.now()
	if err := uc.invoiceRepo.UpdatePayment(inv); err != nil {
		return nil, err
	}

	if previous.State != payment.State {
		uc.metrics.ObservePaymentTransition(string(previous.State), string(payment.State))
	}
	uc.log.Info().
		Str("company_id", companyID).
		Str("invoice_id", inv.ID).
		Str("from", string(previous.State)).
		Str("to", string(payment.State)).
		Str("paid_amount", payment.PaidAmount.String()).
		Msg("pago actualizado")

	resp := paymentResponse(payment, inv.PaymentMethod, inv.GrandTotal)
	return &resp, nil
}
