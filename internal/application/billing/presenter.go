package billing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/pricing"
	"github.com/jhoicas/Facturacion-api/pkg/money"
)

// TotalsResponse desglose numérico tal como lo devuelve el motor.
func TotalsResponse(b pricing.TotalsBreakdown) dto.TotalsResponse {
	return dto.TotalsResponse{
		GrossAmount:         b.GrossAmount,
		LineDiscountTotal:   b.LineDiscountTotal,
		OrderDiscountAmount: b.OrderDiscountAmount,
		TotalDiscountAmount: b.TotalDiscountAmount,
		TaxableAmount:       b.TaxableAmount,
		CGST:                b.TaxComponentA,
		SGST:                b.TaxComponentB,
		TotalTax:            b.TotalTax,
		AutoDiscount:        b.AutoDiscount,
		RoundOff:            b.RoundOff,
		GrandTotal:          b.GrandTotal,
	}
}

// FormatBreakdown formatea cada campo como moneda. El descuento mostrado incluye
// el descuento automático; AutoDiscount solo aparece cuando no es cero.
func FormatBreakdown(f *money.Formatter, b pricing.TotalsBreakdown, paid decimal.Decimal) dto.TotalsDisplay {
	out := dto.TotalsDisplay{
		GrossAmount:         f.Format(b.GrossAmount),
		LineDiscountTotal:   f.Format(b.LineDiscountTotal),
		OrderDiscountAmount: f.Format(b.OrderDiscountAmount),
		TotalDiscountAmount: f.Format(b.DisplayedDiscount()),
		TaxableAmount:       f.Format(b.TaxableAmount),
		CGST:                f.Format(b.TaxComponentA),
		SGST:                f.Format(b.TaxComponentB),
		TotalTax:            f.Format(b.TotalTax),
		RoundOff:            f.Format(b.RoundOff),
		GrandTotal:          f.Format(b.GrandTotal),
		PaidAmount:          f.Format(paid),
	}
	if !b.AutoDiscount.IsZero() {
		out.AutoDiscount = f.Format(b.AutoDiscount)
	}
	return out
}

// BreakdownFromInvoice reconstruye el desglose guardado en la cabecera.
func BreakdownFromInvoice(inv *entity.Invoice) pricing.TotalsBreakdown {
	return pricing.TotalsBreakdown{
		GrossAmount:         inv.GrossAmount,
		LineDiscountTotal:   inv.LineDiscountTotal,
		OrderDiscountAmount: inv.OrderDiscountAmount,
		TotalDiscountAmount: inv.TotalDiscount,
		TaxableAmount:       inv.TaxableAmount,
		TaxComponentA:       inv.CGST,
		TaxComponentB:       inv.SGST,
		TotalTax:            inv.TotalTax,
		AutoDiscount:        inv.AutoDiscount,
		RoundOff:            inv.RoundOff,
		GrandTotal:          inv.GrandTotal,
	}
}

// applyBreakdown copia los totales del motor a la cabecera.
func applyBreakdown(inv *entity.Invoice, d *pricedDraft) {
	b := d.breakdown
	inv.TaxMode = string(d.mode)
	inv.OrderDiscountValue = d.discount.Value
	inv.OrderDiscountKind = string(d.discount.Kind)
	inv.GrossAmount = b.GrossAmount
	inv.LineDiscountTotal = b.LineDiscountTotal
	inv.OrderDiscountAmount = b.OrderDiscountAmount
	inv.TotalDiscount = b.TotalDiscountAmount
	inv.TaxableAmount = b.TaxableAmount
	inv.CGST = b.TaxComponentA
	inv.SGST = b.TaxComponentB
	inv.TotalTax = b.TotalTax
	inv.AutoDiscount = b.AutoDiscount
	inv.RoundOff = b.RoundOff
	inv.GrandTotal = b.GrandTotal
}

func applyPayment(inv *entity.Invoice, p pricing.Payment) {
	inv.PaidAmount = p.PaidAmount
	inv.PaymentStatus = string(p.State)
}

func paymentOf(inv *entity.Invoice) pricing.Payment {
	return pricing.Payment{PaidAmount: inv.PaidAmount, State: pricing.PaymentState(inv.PaymentStatus)}
}

func paymentResponse(p pricing.Payment, method string, grandTotal decimal.Decimal) dto.PaymentResponse {
	return dto.PaymentResponse{
		PaidAmount: p.PaidAmount,
		Status:     string(p.State),
		Method:     method,
		Consistent: p.Consistent(grandTotal),
	}
}

// toInvoiceResponse arma la respuesta completa de una factura guardada.
func toInvoiceResponse(f *money.Formatter, inv *entity.Invoice, customerName string, details []*entity.InvoiceDetail) *dto.InvoiceResponse {
	b := BreakdownFromInvoice(inv)
	resp := &dto.InvoiceResponse{
		ID:           inv.ID,
		CompanyID:    inv.CompanyID,
		CustomerID:   inv.CustomerID,
		CustomerName: customerName,
		Prefix:       inv.Prefix,
		Number:       inv.Number,
		Date:         inv.Date.Format("2006-01-02"),
		TaxMode:      inv.TaxMode,
		OrderDiscount: dto.DiscountRequest{
			Value: inv.OrderDiscountValue,
			Kind:  inv.OrderDiscountKind,
		},
		Totals:  TotalsResponse(b),
		Display: FormatBreakdown(f, b, inv.PaidAmount),
		Payment: paymentResponse(paymentOf(inv), inv.PaymentMethod, inv.GrandTotal),
		Notes:   inv.Notes,
		Details: make([]dto.InvoiceDetailResponse, 0, len(details)),
	}
	for _, d := range details {
		resp.Details = append(resp.Details, dto.InvoiceDetailResponse{
			ID:             d.ID,
			ProductID:      d.ProductID,
			Description:    d.Description,
			Quantity:       d.Quantity,
			UnitPrice:      d.UnitPrice,
			Discount:       dto.DiscountRequest{Value: d.DiscountValue, Kind: d.DiscountKind},
			DiscountAmount: d.DiscountAmount,
			Amount:         d.Amount,
		})
	}
	return resp
}

func toInvoiceSummary(inv *entity.Invoice) dto.InvoiceSummaryResponse {
	return dto.InvoiceSummaryResponse{
		ID:            inv.ID,
		Number:        inv.Prefix + "-" + inv.Number,
		Date:          inv.Date.Format("2006-01-02"),
		CustomerID:    inv.CustomerID,
		GrandTotal:    inv.GrandTotal,
		PaidAmount:    inv.PaidAmount,
		PaymentStatus: inv.PaymentStatus,
	}
}
