package billing

import (
	"github.com/rs/zerolog"

	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/domain/pricing"
	"github.com/jhoicas/Facturacion-api/pkg/money"
)

// PreviewUseCase recalcula el borrador en cada edición sin guardar nada.
type PreviewUseCase struct {
	formatter *money.Formatter
	log       zerolog.Logger
}

// NewPreviewUseCase construye el caso de uso.
func NewPreviewUseCase(formatter *money.Formatter, log zerolog.Logger) *PreviewUseCase {
	return &PreviewUseCase{formatter: formatter, log: log}
}

// Preview devuelve precios por línea, desglose, strings de moneda y el pago resuelto.
// Un borrador sin líneas válidas da todo en cero. El pago no se valida contra el rango:
// se informa si quedó consistente para que el cliente muestre el aviso.
func (uc *PreviewUseCase) Preview(companyID string, flow Flow, in dto.InvoiceDraftRequest) (*dto.PreviewResponse, error) {
	draft, err := priceDraft(flow, in, false)
	if err != nil {
		return nil, err
	}
	pi, err := paymentInput(in.Payment)
	if err != nil {
		return nil, err
	}
	b := draft.breakdown
	payment := pricing.ResolvePayment(b.GrandTotal, pi)

	lines := make([]dto.LinePreviewResponse, 0, len(in.Items))
	for i, it := range in.Items {
		li, err := toLineItem(it)
		if err != nil {
			return nil, err
		}
		lp := pricing.PriceLine(li)
		lines = append(lines, dto.LinePreviewResponse{
			Index:    i,
			Valid:    isValidLine(li, i),
			Gross:    lp.Gross,
			Discount: lp.Discount,
			Amount:   lp.Extended,
		})
	}

	method := ""
	if in.Payment != nil {
		method = in.Payment.Method
	}

	uc.log.Debug().
		Str("company_id", companyID).
		Str("flow", string(flow)).
		Str("tax_mode", string(draft.mode)).
		Str("grand_total", b.GrandTotal.String()).
		Msg("vista previa calculada")

	return &dto.PreviewResponse{
		Flow:    string(flow),
		TaxMode: string(draft.mode),
		Lines:   lines,
		Totals:  TotalsResponse(b),
		Display: FormatBreakdown(uc.formatter, b, payment.PaidAmount),
		Payment: paymentResponse(payment, method, b.GrandTotal),
	}, nil
}
