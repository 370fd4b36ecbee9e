// Package pdf genera la factura impresa (tax invoice GST) con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Razón Social + GSTIN │  N° Factura + Fecha          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  EMISOR: Dirección / Tel / Email                             │
//	│  RECEPTOR: Nombre + GSTIN + contacto                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Descripción | HSN | P.Unit | Desc. | Importe  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Bruto / Descuento / Base / CGST / SGST / Redondeo  │
//	│  PAGO: Estado / Pagado / Saldo                   + QR        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appbilling "github.com/jhoicas/Facturacion-api/internal/application/billing"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/pricing"
	"github.com/jhoicas/Facturacion-api/pkg/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appbilling.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	fmt *money.Formatter
}

// NewMarotoPDFGenerator construye el generador. Las fuentes core del PDF no tienen
// el glifo ₹, por eso el formateador suele venir con símbolo "Rs.".
func NewMarotoPDFGenerator(formatter *money.Formatter) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{fmt: formatter}
}

// GenerateInvoicePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(
	_ context.Context,
	invoice *entity.Invoice,
	company *entity.Company,
	customer *entity.Customer,
	details []appbilling.InvoiceDetailForPDF,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Tax Invoice "+invoiceNumber(invoice), true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(invoice, company))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(emisorRow(company))
	m.AddRows(receptorRow(customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(g.tableDetailRows(details)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalsRow(invoice))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(g.paymentRow(invoice, company))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func invoiceNumber(invoice *entity.Invoice) string {
	return invoice.Prefix + "-" + invoice.Number
}

// headerRow: razón social + GSTIN (izq) y N° factura + fecha (der).
func headerRow(invoice *entity.Invoice, company *entity.Company) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("GSTIN: "+nonEmpty(company.GSTIN, "-"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("TAX INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(invoiceNumber(invoice), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+invoice.Date.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// emisorRow: datos del emisor (empresa).
func emisorRow(company *entity.Company) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("DATOS DEL EMISOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Dirección: %s   |   Tel: %s   |   Email: %s",
				nonEmpty(company.Address, "-"),
				nonEmpty(company.Phone, "-"),
				nonEmpty(company.Email, "-"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// receptorRow: datos del cliente.
func receptorRow(customer *entity.Customer) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("FACTURAR A", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(customer.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("GSTIN: %s   |   Email: %s   |   Tel: %s",
				nonEmpty(customer.GSTIN, "No registrado"),
				nonEmpty(customer.Email, "-"),
				nonEmpty(customer.Phone, "-"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de detalles.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Descripción", 4, align.Left),
		h("HSN", 1, align.Center),
		h("Precio Unit.", 2, align.Right),
		h("Desc.", 2, align.Right),
		h("Importe", 2, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableDetailRows: una fila por línea de detalle.
func (g *MarotoPDFGenerator) tableDetailRows(details []appbilling.InvoiceDetailForPDF) []core.Row {
	result := make([]core.Row, 0, len(details))
	for _, d := range details {
		desc := d.ProductName
		if d.Description != "" && d.Description != d.ProductName {
			desc += " - " + d.Description
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", d.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(4).Add(text.New(desc,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(1).Add(text.New(nonEmpty(d.HSNCode, "-"),
				props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(g.fmt.Format(d.UnitPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(discountLabel(g.fmt, d.DiscountKind, d.DiscountValue, d.DiscountAmount),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(g.fmt.Format(d.Amount),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// discountLabel muestra el porcentaje cuando el descuento se capturó así.
func discountLabel(f *money.Formatter, kind string, value, amount decimal.Decimal) string {
	if amount.IsZero() {
		return "-"
	}
	if pricing.DiscountKind(kind) == pricing.DiscountPercentage {
		return fmt.Sprintf("%s (%s%%)", f.Format(amount), value.String())
	}
	return f.Format(amount)
}

// totalsRow: bloque de totales alineado a la derecha.
func (g *MarotoPDFGenerator) totalsRow(invoice *entity.Invoice) core.Row {
	b := appbilling.BreakdownFromInvoice(invoice)

	labels := []string{"Bruto:", "Descuento:", "Base imponible:"}
	values := []string{g.fmt.Format(b.GrossAmount), g.fmt.Format(b.DisplayedDiscount()), g.fmt.Format(b.TaxableAmount)}
	switch pricing.TaxMode(invoice.TaxMode) {
	case pricing.TaxStandard:
		labels = append(labels, "CGST 9%:", "SGST 9%:")
		values = append(values, g.fmt.Format(b.TaxComponentA), g.fmt.Format(b.TaxComponentB))
	case pricing.TaxReverseInclusive:
		labels = append(labels, "GST incluido (desc.):")
		values = append(values, g.fmt.Format(b.AutoDiscount))
	}
	labels = append(labels, "Redondeo:")
	values = append(values, g.fmt.Format(b.RoundOff))

	labelCol := col.New(3)
	valueCol := col.New(3)
	for i := range labels {
		top := float64(i) * 5
		labelCol.Add(text.New(labels[i], props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top}))
		valueCol.Add(text.New(values[i], props.Text{Size: 9, Align: align.Right, Right: 1, Top: top}))
	}
	grandTop := float64(len(labels))*5 + 1
	labelCol.Add(text.New("TOTAL A PAGAR:", props.Text{
		Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: grandTop,
	}))
	valueCol.Add(text.New(g.fmt.Format(b.GrandTotal), props.Text{
		Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: grandTop,
	}))

	return row.New(grandTop+8).Add(col.New(6), labelCol, valueCol)
}

// paymentRow: estado de pago, saldo y QR con el resumen de la factura.
func (g *MarotoPDFGenerator) paymentRow(invoice *entity.Invoice, company *entity.Company) core.Row {
	balance := invoice.GrandTotal.Sub(invoice.PaidAmount)
	if balance.IsNegative() {
		balance = decimal.Zero
	}
	status := strings.ToUpper(nonEmpty(invoice.PaymentStatus, string(pricing.PaymentUnpaid)))
	method := nonEmpty(invoice.PaymentMethod, "-")

	return row.New(40).Add(
		col.New(8).Add(
			text.New("PAGO", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
			text.New("Estado: "+status, props.Text{Style: fontstyle.Bold, Size: 10, Top: 8}),
			text.New("Método: "+method, props.Text{Size: 8, Top: 15, Color: colorGray}),
			text.New("Pagado: "+g.fmt.Format(invoice.PaidAmount), props.Text{Size: 9, Top: 21}),
			text.New("Saldo: "+g.fmt.Format(balance), props.Text{Size: 9, Top: 27}),
		),
		col.New(4).Add(code.NewQr(qrPayload(invoice, company), props.Rect{Percent: 90, Center: true})),
	)
}

// qrPayload resumen verificable: GSTIN|número|fecha|total|impuesto.
func qrPayload(invoice *entity.Invoice, company *entity.Company) string {
	return strings.Join([]string{
		company.GSTIN,
		invoiceNumber(invoice),
		invoice.Date.Format("2006-01-02"),
		invoice.GrandTotal.StringFixed(2),
		invoice.TotalTax.StringFixed(2),
	}, "|")
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
