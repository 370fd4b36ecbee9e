package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturacion-api/internal/application/billing"
	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/domain"
)

func standardDraft() dto.InvoiceDraftRequest {
	return dto.InvoiceDraftRequest{
		CustomerID: "c1",
		Items: []dto.InvoiceItemRequest{
			{ProductID: "p1", Quantity: 1, UnitPrice: d("100")},
			{ProductID: "p1", Quantity: 1, UnitPrice: d("100")},
		},
		OrderDiscount: dto.DiscountRequest{Value: d("10"), Kind: "percentage"},
		TaxMode:       "standard",
	}
}

func TestPreview_PipelineCompleto(t *testing.T) {
	uc := billing.NewPreviewUseCase(inr(), nopLog())
	out, err := uc.Preview(companyA, billing.FlowCreate, standardDraft())
	require.NoError(t, err)

	assertDec(t, "200", out.Totals.GrossAmount, "bruto")
	assertDec(t, "20", out.Totals.OrderDiscountAmount, "descuento de pedido")
	assertDec(t, "180", out.Totals.TaxableAmount, "base")
	assertDec(t, "16.2", out.Totals.CGST, "CGST")
	assertDec(t, "16.2", out.Totals.SGST, "SGST")
	assertDec(t, "212", out.Totals.GrandTotal, "total")
	assertDec(t, "-0.4", out.Totals.RoundOff, "redondeo")
	assert.Equal(t, "unpaid", out.Payment.Status, "sin pago se asume unpaid")
	assert.True(t, out.Payment.Consistent)
	assert.Len(t, out.Lines, 2)
}

func TestPreview_CrearYEditarDanMismoResultado(t *testing.T) {
	uc := billing.NewPreviewUseCase(inr(), nopLog())
	create, err := uc.Preview(companyA, billing.FlowCreate, standardDraft())
	require.NoError(t, err)
	edit, err := uc.Preview(companyA, billing.FlowEdit, standardDraft())
	require.NoError(t, err)

	assert.Equal(t, create.Totals, edit.Totals)
	assert.Equal(t, create.Display, edit.Display)
}

func TestPreview_EdicionRechazaReverseInclusive(t *testing.T) {
	uc := billing.NewPreviewUseCase(inr(), nopLog())
	draft := standardDraft()
	draft.TaxMode = "reverse_inclusive"

	_, err := uc.Preview(companyA, billing.FlowEdit, draft)
	assert.ErrorIs(t, err, domain.ErrTaxModeNotAllowed)

	out, err := uc.Preview(companyA, billing.FlowCreate, draft)
	require.NoError(t, err)
	assertDec(t, "180", out.Totals.GrandTotal, "el impuesto no se suma")
	assertDec(t, "32.4", out.Totals.AutoDiscount, "descuento automático")
	assert.Equal(t, "₹52.40", out.Display.TotalDiscountAmount)
}

func TestPreview_BorradorVacioEnCero(t *testing.T) {
	uc := billing.NewPreviewUseCase(inr(), nopLog())
	out, err := uc.Preview(companyA, billing.FlowCreate, dto.InvoiceDraftRequest{
		Items:   []dto.InvoiceItemRequest{{ProductID: "p1", Quantity: 0, UnitPrice: d("10")}},
		TaxMode: "standard",
	})
	require.NoError(t, err)
	assertDec(t, "0", out.Totals.GrandTotal, "total")
	require.Len(t, out.Lines, 1)
	assert.False(t, out.Lines[0].Valid)
}

func TestPreview_PagoPorMontoDerivaEstado(t *testing.T) {
	uc := billing.NewPreviewUseCase(inr(), nopLog())
	draft := standardDraft()
	draft.Payment = &dto.PaymentRequest{Source: "amount", PaidAmount: d("100")}

	out, err := uc.Preview(companyA, billing.FlowCreate, draft)
	require.NoError(t, err)
	assert.Equal(t, "partial", out.Payment.Status)
	assert.Equal(t, "₹100.00", out.Display.PaidAmount)

	draft.Payment = &dto.PaymentRequest{Source: "status", Status: "paid"}
	out, err = uc.Preview(companyA, billing.FlowCreate, draft)
	require.NoError(t, err)
	assertDec(t, "212", out.Payment.PaidAmount, "paid toma el total")
}

// Partial desde el selector deja el monto en cero hasta que el usuario lo escriba.
func TestPreview_PartialDesdeSelectorNoEsConsistente(t *testing.T) {
	uc := billing.NewPreviewUseCase(inr(), nopLog())
	draft := standardDraft()
	draft.Payment = &dto.PaymentRequest{Source: "status", Status: "partial"}

	out, err := uc.Preview(companyA, billing.FlowCreate, draft)
	require.NoError(t, err)
	assert.Equal(t, "partial", out.Payment.Status)
	assert.False(t, out.Payment.Consistent)
}

func TestPreview_FilaSinProductoSumaEnTotales(t *testing.T) {
	uc := billing.NewPreviewUseCase(inr(), nopLog())
	out, err := uc.Preview(companyA, billing.FlowCreate, dto.InvoiceDraftRequest{
		Items: []dto.InvoiceItemRequest{
			{ProductID: "p1", Quantity: 1, UnitPrice: d("100")},
			{ProductID: "", Quantity: 2, UnitPrice: d("50")},
		},
		TaxMode: "none",
	})
	require.NoError(t, err)

	assertDec(t, "200", out.Totals.GrossAmount, "la fila sin producto suma en la vista previa")
	assertDec(t, "200", out.Totals.GrandTotal, "total")
	require.Len(t, out.Lines, 2)
	assert.False(t, out.Lines[1].Valid, "no se guardaría")
	assertDec(t, "100", out.Lines[1].Amount, "importe de la fila")
}
