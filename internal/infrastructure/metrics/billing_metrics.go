// Package metrics expone métricas Prometheus de facturación.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

// BillingMetrics implementa billing.MetricsRecorder sobre colectores Prometheus.
type BillingMetrics struct {
	invoices    *prometheus.CounterVec
	grandTotal  *prometheus.HistogramVec
	transitions *prometheus.CounterVec
}

// NewBillingMetrics crea y registra los colectores. Si reg es nil usa el registro por defecto.
func NewBillingMetrics(namespace string, reg prometheus.Registerer) (*BillingMetrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &BillingMetrics{
		invoices: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invoices_total",
			Help:      "Facturas guardadas por flujo, modo de impuesto y estado de pago.",
		}, []string{"flow", "tax_mode", "payment_state"}),
		grandTotal: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "invoice_grand_total",
			Help:      "Total a pagar de las facturas guardadas.",
			Buckets:   []float64{100, 500, 1000, 5000, 10000, 50000, 100000, 500000},
		}, []string{"tax_mode"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invoice_payment_transitions_total",
			Help:      "Cambios de estado de pago de facturas existentes.",
		}, []string{"from", "to"}),
	}
	for _, c := range []prometheus.Collector{m.invoices, m.grandTotal, m.transitions} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ObserveInvoice cuenta una factura guardada y su total.
func (m *BillingMetrics) ObserveInvoice(flow, taxMode, paymentState string, grandTotal decimal.Decimal) {
	m.invoices.WithLabelValues(flow, taxMode, paymentState).Inc()
	m.grandTotal.WithLabelValues(taxMode).Observe(grandTotal.InexactFloat64())
}

// ObservePaymentTransition cuenta un cambio de estado de pago.
func (m *BillingMetrics) ObservePaymentTransition(from, to string) {
	if from == to {
		return
	}
	m.transitions.WithLabelValues(from, to).Inc()
}
