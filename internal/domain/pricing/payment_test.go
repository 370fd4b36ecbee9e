package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Facturacion-api/internal/domain/pricing"
)

func TestPaymentForAmount_Clasificacion(t *testing.T) {
	grand := d("500")
	cases := []struct {
		paid string
		want pricing.PaymentState
	}{
		{"500", pricing.PaymentPaid},
		{"0", pricing.PaymentUnpaid},
		{"200", pricing.PaymentPartial},
		{"499.99", pricing.PaymentPartial},
		{"650", pricing.PaymentPaid}, // el motor no recorta
	}
	for _, c := range cases {
		t.Run(c.paid, func(t *testing.T) {
			p := pricing.PaymentForAmount(grand, d(c.paid))
			assert.Equal(t, c.want, p.State)
			assertDec(t, c.paid, p.PaidAmount, "monto pagado")
			assert.True(t, p.Consistent(grand))
		})
	}
}

func TestPaymentForState_RecalculaMonto(t *testing.T) {
	grand := d("500")

	paid := pricing.PaymentForState(grand, pricing.PaymentPaid)
	assertDec(t, "500", paid.PaidAmount, "paid toma el total")

	unpaid := pricing.PaymentForState(grand, pricing.PaymentUnpaid)
	assertDec(t, "0", unpaid.PaidAmount, "unpaid queda en cero")

	partial := pricing.PaymentForState(grand, pricing.PaymentPartial)
	assert.Equal(t, pricing.PaymentPartial, partial.State)
	assertDec(t, "0", partial.PaidAmount, "partial espera captura manual")
	assert.False(t, partial.Consistent(grand), "partial con cero aún no es consistente")
}

func TestResolvePayment_PuntosDeEntrada(t *testing.T) {
	grand := d("500")

	byStatus := pricing.ResolvePayment(grand, pricing.PaymentInput{
		Source: pricing.SourceStatus, State: pricing.PaymentPaid, PaidAmount: d("10"),
	})
	assertDec(t, "500", byStatus.PaidAmount, "el estado manda sobre el monto")

	byAmount := pricing.ResolvePayment(grand, pricing.PaymentInput{
		Source: pricing.SourceAmount, State: pricing.PaymentPaid, PaidAmount: d("200"),
	})
	assert.Equal(t, pricing.PaymentPartial, byAmount.State, "el monto manda sobre el estado")
}

func TestResolvePayment_Idempotente(t *testing.T) {
	grand := d("731")
	in := pricing.PaymentInput{Source: pricing.SourceAmount, PaidAmount: d("300")}
	first := pricing.ResolvePayment(grand, in)
	second := pricing.ResolvePayment(grand, pricing.PaymentInput{Source: pricing.SourceAmount, PaidAmount: first.PaidAmount})
	assert.Equal(t, first.State, second.State)
	assert.True(t, first.PaidAmount.Equal(second.PaidAmount))
}

func TestRecomputePayment_CambioDeTotal(t *testing.T) {
	paid := pricing.RecomputePayment(d("620"), pricing.Payment{PaidAmount: d("500"), State: pricing.PaymentPaid})
	assertDec(t, "620", paid.PaidAmount, "paid sigue al total")
	assert.Equal(t, pricing.PaymentPaid, paid.State)

	partial := pricing.RecomputePayment(d("150"), pricing.Payment{PaidAmount: d("200"), State: pricing.PaymentPartial})
	assert.Equal(t, pricing.PaymentPaid, partial.State, "partial que cubre el nuevo total pasa a paid")

	stillPartial := pricing.RecomputePayment(d("900"), pricing.Payment{PaidAmount: d("200"), State: pricing.PaymentPartial})
	assert.Equal(t, pricing.PaymentPartial, stillPartial.State)

	unpaid := pricing.RecomputePayment(d("900"), pricing.Payment{PaidAmount: d("0"), State: pricing.PaymentUnpaid})
	assertDec(t, "0", unpaid.PaidAmount, "unpaid queda en cero")

	again := pricing.RecomputePayment(d("620"), paid)
	assert.Equal(t, paid.State, again.State)
	assert.True(t, paid.PaidAmount.Equal(again.PaidAmount), "recalcular dos veces no cambia nada")
}

func TestPayment_ConsistentRechazaEstadoInvalido(t *testing.T) {
	assert.False(t, pricing.Payment{PaidAmount: d("0"), State: "refunded"}.Consistent(d("10")))
	assert.False(t, pricing.Payment{PaidAmount: d("5"), State: pricing.PaymentUnpaid}.Consistent(d("10")))
	assert.False(t, pricing.Payment{PaidAmount: d("5"), State: pricing.PaymentPaid}.Consistent(d("10")))
}

func TestPaymentForAmount_NegativoQuedaPartialInconsistente(t *testing.T) {
	grand := d("500")
	p := pricing.PaymentForAmount(grand, d("-10"))
	assert.Equal(t, pricing.PaymentPartial, p.State)
	assert.False(t, p.Consistent(grand))
}
