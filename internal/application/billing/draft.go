package billing

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/pricing"
)

// pricedDraft resultado de pasar un borrador por el motor.
type pricedDraft struct {
	lines     []pricing.LineItem // al guardar solo las válidas; en vista previa todas
	discount  pricing.DiscountSpec
	mode      pricing.TaxMode
	breakdown pricing.TotalsBreakdown
}

// ToDiscount convierte y valida un descuento. Kind vacío con valor se toma como monto.
func ToDiscount(in dto.DiscountRequest) (pricing.DiscountSpec, error) {
	spec := pricing.DiscountSpec{Value: in.Value, Kind: pricing.DiscountKind(in.Kind)}
	if !spec.Valid() {
		return spec, fmt.Errorf("%w: tipo %q", domain.ErrInvalidDiscount, in.Kind)
	}
	if spec.Value.IsNegative() {
		return spec, fmt.Errorf("%w: valor negativo", domain.ErrInvalidDiscount)
	}
	if spec.Kind == "" {
		spec.Kind = pricing.DiscountAmount
	}
	return spec, nil
}

func toLineItem(in dto.InvoiceItemRequest) (pricing.LineItem, error) {
	disc, err := ToDiscount(in.Discount)
	if err != nil {
		return pricing.LineItem{}, err
	}
	return pricing.LineItem{
		ProductID:   strings.TrimSpace(in.ProductID),
		Description: strings.TrimSpace(in.Description),
		Quantity:    in.Quantity,
		UnitPrice:   in.UnitPrice,
		Discount:    disc,
	}, nil
}

// isValidLine fila con producto, cantidad y precio positivos.
func isValidLine(li pricing.LineItem, _ int) bool {
	return li.ProductID != "" && pricing.PriceLine(li).Eligible
}

// ValidLines convierte las filas del borrador y descarta las que no se guardarían:
// sin producto, cantidad ≤ 0 o precio ≤ 0. Sin filas válidas retorna ErrNoValidItems.
func ValidLines(items []dto.InvoiceItemRequest) ([]pricing.LineItem, error) {
	lines, err := toLineItems(items)
	if err != nil {
		return nil, err
	}
	valid := lo.Filter(lines, isValidLine)
	if len(valid) == 0 {
		return nil, domain.ErrNoValidItems
	}
	return valid, nil
}

func toLineItems(items []dto.InvoiceItemRequest) ([]pricing.LineItem, error) {
	lines := make([]pricing.LineItem, 0, len(items))
	for _, it := range items {
		li, err := toLineItem(it)
		if err != nil {
			return nil, err
		}
		lines = append(lines, li)
	}
	return lines, nil
}

// priceDraft valida el borrador para el flujo y calcula los totales.
// requireItems=false es la vista previa: todas las filas pasan al motor y solo
// cantidad o precio no positivos las excluyen. El filtro por producto es de guardado.
func priceDraft(flow Flow, in dto.InvoiceDraftRequest, requireItems bool) (*pricedDraft, error) {
	mode, err := flow.TaxModeFor(in.TaxMode)
	if err != nil {
		return nil, err
	}
	discount, err := ToDiscount(in.OrderDiscount)
	if err != nil {
		return nil, err
	}
	var lines []pricing.LineItem
	if requireItems {
		lines, err = ValidLines(in.Items)
	} else {
		lines, err = toLineItems(in.Items)
	}
	if err != nil {
		return nil, err
	}
	return &pricedDraft{
		lines:     lines,
		discount:  discount,
		mode:      mode,
		breakdown: pricing.Compute(lines, discount, mode),
	}, nil
}

// paymentInput convierte la última edición del usuario. Sin pago se asume unpaid.
func paymentInput(in *dto.PaymentRequest) (pricing.PaymentInput, error) {
	if in == nil {
		return pricing.PaymentInput{Source: pricing.SourceStatus, State: pricing.PaymentUnpaid}, nil
	}
	switch pricing.PaymentSource(in.Source) {
	case pricing.SourceStatus:
		state := pricing.PaymentState(in.Status)
		if !state.Valid() {
			return pricing.PaymentInput{}, fmt.Errorf("%w: estado de pago %q", domain.ErrInvalidInput, in.Status)
		}
		return pricing.PaymentInput{Source: pricing.SourceStatus, State: state}, nil
	case pricing.SourceAmount:
		return pricing.PaymentInput{Source: pricing.SourceAmount, PaidAmount: in.PaidAmount}, nil
	}
	return pricing.PaymentInput{}, fmt.Errorf("%w: origen de pago %q", domain.ErrInvalidInput, in.Source)
}

// checkPaidRange valida un monto escrito por el usuario: 0 ≤ pagado ≤ total.
func checkPaidRange(in pricing.PaymentInput, grandTotal decimal.Decimal) error {
	if in.Source != pricing.SourceAmount {
		return nil
	}
	upper := decimal.Max(grandTotal, decimal.Zero)
	if in.PaidAmount.IsNegative() || in.PaidAmount.GreaterThan(upper) {
		return fmt.Errorf("%w: %s de %s", domain.ErrPaymentOutOfRange, in.PaidAmount, grandTotal)
	}
	return nil
}

// resolveForSave resuelve el pago de una edición del usuario y exige que quede consistente.
func resolveForSave(in *dto.PaymentRequest, grandTotal decimal.Decimal) (pricing.Payment, error) {
	pi, err := paymentInput(in)
	if err != nil {
		return pricing.Payment{}, err
	}
	if err := checkPaidRange(pi, grandTotal); err != nil {
		return pricing.Payment{}, err
	}
	p := pricing.ResolvePayment(grandTotal, pi)
	if !p.Consistent(grandTotal) {
		return pricing.Payment{}, fmt.Errorf("%w: %s con %s", domain.ErrPaymentInconsistent, p.State, p.PaidAmount)
	}
	return p, nil
}

// checkSavable rechaza totales negativos: el motor los propaga pero no se guardan.
func checkSavable(b pricing.TotalsBreakdown) error {
	if b.GrandTotal.IsNegative() {
		return fmt.Errorf("%w: el descuento excede el bruto", domain.ErrInvalidDiscount)
	}
	return nil
}
