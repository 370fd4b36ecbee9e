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

func TestUpdatePayment_Transiciones(t *testing.T) {
	s := newStore()
	m := &fakeMetrics{}
	inv := seedInvoice(t, s, nil) // total 212, unpaid
	uc := billing.NewPaymentUseCase(invoiceRepo{s}, m, nopLog())
	ctx := context.Background()

	out, err := uc.UpdatePayment(ctx, companyA, inv.ID, dto.PaymentRequest{Source: "amount", PaidAmount: d("50"), Method: "cash"})
	require.NoError(t, err)
	assert.Equal(t, "partial", out.Status)
	assert.Equal(t, "cash", out.Method)

	out, err = uc.UpdatePayment(ctx, companyA, inv.ID, dto.PaymentRequest{Source: "status", Status: "paid"})
	require.NoError(t, err)
	assertDec(t, "212", out.PaidAmount, "paid toma el total")
	assert.Equal(t, "cash", out.Method, "el método se conserva")

	out, err = uc.UpdatePayment(ctx, companyA, inv.ID, dto.PaymentRequest{Source: "amount", PaidAmount: d("0")})
	require.NoError(t, err)
	assert.Equal(t, "unpaid", out.Status)

	assert.Equal(t, [][2]string{{"unpaid", "partial"}, {"partial", "paid"}, {"paid", "unpaid"}}, m.transitions)
	assert.Equal(t, "unpaid", s.invoices[inv.ID].PaymentStatus)
}

func TestUpdatePayment_Rechazos(t *testing.T) {
	s := newStore()
	inv := seedInvoice(t, s, nil)
	uc := billing.NewPaymentUseCase(invoiceRepo{s}, nil, nopLog())
	ctx := context.Background()

	_, err := uc.UpdatePayment(ctx, companyA, inv.ID, dto.PaymentRequest{Source: "amount", PaidAmount: d("212.01")})
	assert.ErrorIs(t, err, domain.ErrPaymentOutOfRange)

	_, err = uc.UpdatePayment(ctx, companyA, inv.ID, dto.PaymentRequest{Source: "status", Status: "partial"})
	assert.ErrorIs(t, err, domain.ErrPaymentInconsistent)

	_, err = uc.UpdatePayment(ctx, companyA, inv.ID, dto.PaymentRequest{Source: "status", Status: "refunded"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.UpdatePayment(ctx, companyB, inv.ID, dto.PaymentRequest{Source: "status", Status: "paid"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.UpdatePayment(ctx, companyA, "nope", dto.PaymentRequest{Source: "status", Status: "paid"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Equal(t, "unpaid", s.invoices[inv.ID].PaymentStatus, "nada cambió")
}

// Pagar exactamente el total deja la factura en paid; re-aplicar el mismo monto no cambia nada.
func TestUpdatePayment_Idempotente(t *testing.T) {
	s := newStore()
	m := &fakeMetrics{}
	inv := seedInvoice(t, s, nil)
	uc := billing.NewPaymentUseCase(invoiceRepo{s}, m, nopLog())

	for i := 0; i < 2; i++ {
		out, err := uc.UpdatePayment(context.Background(), companyA, inv.ID, dto.PaymentRequest{Source: "amount", PaidAmount: d("212")})
		require.NoError(t, err)
		assert.Equal(t, "paid", out.Status)
	}
	assert.Len(t, m.transitions, 1)
}
