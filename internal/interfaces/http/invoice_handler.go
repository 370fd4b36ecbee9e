package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Facturacion-api/internal/application/billing"
	"github.com/jhoicas/Facturacion-api/internal/application/dto"
)

// InvoiceHandler maneja las peticiones HTTP de facturación (protegido).
type InvoiceHandler struct {
	create  *billing.CreateInvoiceUseCase
	update  *billing.UpdateInvoiceUseCase
	preview *billing.PreviewUseCase
	payment *billing.PaymentUseCase
	pdf     *billing.PDFUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(
	create *billing.CreateInvoiceUseCase,
	update *billing.UpdateInvoiceUseCase,
	preview *billing.PreviewUseCase,
	payment *billing.PaymentUseCase,
	pdf *billing.PDFUseCase,
) *InvoiceHandler {
	return &InvoiceHandler{create: create, update: update, preview: preview, payment: payment, pdf: pdf}
}

// Preview godoc
// @Summary      Recalcular borrador de factura
// @Description  Devuelve el desglose y el pago resuelto sin guardar. flow=create|edit.
// @Tags         invoices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        flow  query  string                   false  "create (default) o edit"
// @Param        body  body   dto.InvoiceDraftRequest  true   "Borrador"
// @Success      200   {object}  dto.PreviewResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/invoices/preview [post]
func (h *InvoiceHandler) Preview(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	flow, err := billing.ParseFlow(c.Query("flow"))
	if err != nil {
		return writeError(c, err)
	}
	var in dto.InvoiceDraftRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.preview.Preview(companyID, flow, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear factura
// @Tags         invoices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInvoiceRequest  true  "Borrador + numeración opcional"
// @Success      201   {object}  dto.InvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/invoices [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	userID := GetUserID(c)
	if companyID == "" || userID == "" {
		return unauthorized(c)
	}
	var in dto.CreateInvoiceRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	invoice, err := h.create.CreateInvoice(c.Context(), companyID, userID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// List GET /api/invoices?limit=20&offset=0
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	page := pageFromQuery(c)
	out, err := h.create.ListInvoices(c.Context(), companyID, page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID obtiene el detalle completo de una factura.
// GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	invoice, err := h.create.GetInvoice(c.Context(), companyID, c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(invoice)
}

// Update godoc
// @Summary      Editar factura
// @Description  Recalcula con el flujo de edición (reverse_inclusive no permitido) y reemplaza las líneas.
// @Tags         invoices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID de la factura"
// @Param        body  body  dto.UpdateInvoiceRequest  true  "Borrador"
// @Success      200   {object}  dto.InvoiceResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/invoices/{id} [put]
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var in dto.UpdateInvoiceRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	invoice, err := h.update.UpdateInvoice(c.Context(), companyID, c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(invoice)
}

// UpdatePayment PATCH /api/invoices/:id/payment
func (h *InvoiceHandler) UpdatePayment(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var in dto.PaymentRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.payment.UpdatePayment(c.Context(), companyID, c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DownloadPDF GET /api/invoices/:id/pdf
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	pdfBytes, filename, err := h.pdf.DownloadInvoicePDF(c.Context(), companyID, c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
