package billing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturacion-api/internal/application/billing"
	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/domain"
)

func seedInvoice(t *testing.T, s *memStore, payment *dto.PaymentRequest) *dto.InvoiceResponse {
	t.Helper()
	out, err := newCreateUC(s, nil).CreateInvoice(context.Background(), companyA, userID, createReq(payment))
	require.NoError(t, err)
	return out
}

func newUpdateUC(s *memStore, m billing.MetricsRecorder) *billing.UpdateInvoiceUseCase {
	return billing.NewUpdateInvoiceUseCase(txRunner{s}, customerRepo{s}, invoiceRepo{s}, inr(), m, nopLog())
}

func editReq(items ...dto.InvoiceItemRequest) dto.UpdateInvoiceRequest {
	return dto.UpdateInvoiceRequest{InvoiceDraftRequest: dto.InvoiceDraftRequest{
		Items:   items,
		TaxMode: "standard",
	}}
}

func TestUpdateInvoice_PaidSigueAlNuevoTotal(t *testing.T) {
	s := newStore()
	m := &fakeMetrics{}
	inv := seedInvoice(t, s, &dto.PaymentRequest{Source: "status", Status: "paid"})

	// 3 × 100 = 300 + 54 = 354
	out, err := newUpdateUC(s, m).UpdateInvoice(context.Background(), companyA, inv.ID,
		editReq(dto.InvoiceItemRequest{ProductID: "p1", Quantity: 3, UnitPrice: d("100")}))
	require.NoError(t, err)

	assertDec(t, "354", out.Totals.GrandTotal, "nuevo total")
	assert.Equal(t, "paid", out.Payment.Status)
	assertDec(t, "354", out.Payment.PaidAmount, "paid sigue al total")
	assert.Len(t, s.details[inv.ID], 1, "las líneas se reemplazan")
	assert.Equal(t, inv.Number, out.Number, "el número no cambia")
	require.Len(t, m.invoices, 1)
	assert.Equal(t, "edit", m.invoices[0].flow)
	assert.Empty(t, m.transitions, "paid → paid no es transición")
}

func TestUpdateInvoice_PartialSeReclasifica(t *testing.T) {
	s := newStore()
	m := &fakeMetrics{}
	inv := seedInvoice(t, s, &dto.PaymentRequest{Source: "amount", PaidAmount: d("100")})

	// 1 × 50 = 50 + 9 = 59 ≤ 100 pagado
	out, err := newUpdateUC(s, m).UpdateInvoice(context.Background(), companyA, inv.ID,
		editReq(dto.InvoiceItemRequest{ProductID: "p2", Quantity: 1, UnitPrice: d("50")}))
	require.NoError(t, err)

	assertDec(t, "59", out.Totals.GrandTotal, "nuevo total")
	assert.Equal(t, "paid", out.Payment.Status)
	assertDec(t, "100", out.Payment.PaidAmount, "el monto no se recorta")
	assert.Equal(t, [][2]string{{"partial", "paid"}}, m.transitions)
}

func TestUpdateInvoice_PagoExplicitoSeValidaContraNuevoTotal(t *testing.T) {
	s := newStore()
	inv := seedInvoice(t, s, nil)
	req := editReq(dto.InvoiceItemRequest{ProductID: "p2", Quantity: 1, UnitPrice: d("50")})
	req.Payment = &dto.PaymentRequest{Source: "amount", PaidAmount: d("100")}

	_, err := newUpdateUC(s, nil).UpdateInvoice(context.Background(), companyA, inv.ID, req)
	assert.ErrorIs(t, err, domain.ErrPaymentOutOfRange)
	assertDec(t, "212", s.invoices[inv.ID].GrandTotal, "la factura no cambia")
}

func TestUpdateInvoice_RechazaReverseInclusive(t *testing.T) {
	s := newStore()
	inv := seedInvoice(t, s, nil)
	req := editReq(dto.InvoiceItemRequest{ProductID: "p1", Quantity: 1, UnitPrice: d("100")})
	req.TaxMode = "reverse_inclusive"

	_, err := newUpdateUC(s, nil).UpdateInvoice(context.Background(), companyA, inv.ID, req)
	assert.ErrorIs(t, err, domain.ErrTaxModeNotAllowed)
}

// Editar con el mismo borrador da el mismo desglose que al crear.
func TestUpdateInvoice_MismoBorradorMismoDesglose(t *testing.T) {
	s := newStore()
	inv := seedInvoice(t, s, nil)
	req := dto.UpdateInvoiceRequest{InvoiceDraftRequest: standardDraft()}

	out, err := newUpdateUC(s, nil).UpdateInvoice(context.Background(), companyA, inv.ID, req)
	require.NoError(t, err)
	assert.Equal(t, inv.Totals, out.Totals)
	assert.Equal(t, inv.Display, out.Display)
}

func TestUpdateInvoice_OtraEmpresa(t *testing.T) {
	s := newStore()
	inv := seedInvoice(t, s, nil)

	_, err := newUpdateUC(s, nil).UpdateInvoice(context.Background(), companyB, inv.ID,
		editReq(dto.InvoiceItemRequest{ProductID: "p1", Quantity: 1, UnitPrice: d("100")}))
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = newUpdateUC(s, nil).UpdateInvoice(context.Background(), companyA, "nope",
		editReq(dto.InvoiceItemRequest{ProductID: "p1", Quantity: 1, UnitPrice: d("100")}))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
