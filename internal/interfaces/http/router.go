package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/Facturacion-api/internal/application/auth"
	"github.com/jhoicas/Facturacion-api/internal/application/billing"
	"github.com/jhoicas/Facturacion-api/internal/application/usecase"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC     *usecase.CompanyUseCase
	ProductUC     *usecase.ProductUseCase
	CustomerUC    *billing.CustomerUseCase
	CreateInvoice *billing.CreateInvoiceUseCase
	UpdateInvoice *billing.UpdateInvoiceUseCase
	Preview       *billing.PreviewUseCase
	Payment       *billing.PaymentUseCase
	InvoicePDF    *billing.PDFUseCase
	AuthUC        *auth.AuthUseCase
	UserUC        *usecase.UserUseCase
	JWTSecret     string
	// Gatherer expone métricas en MetricsPath; nil lo deshabilita.
	Gatherer    prometheus.Gatherer
	MetricsPath string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Gatherer != nil {
		path := deps.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.UserUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Companies (público: se crea la empresa antes que su primer usuario)
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	anyRole := RequireRole(entity.RoleAdmin, entity.RoleAccountant, entity.RoleSeller)
	backOffice := RequireRole(entity.RoleAdmin, entity.RoleAccountant)

	protected.Get("/auth/me", anyRole, authHandler.Me)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", backOffice, productHandler.Create)
	products.Get("/", anyRole, productHandler.List)
	products.Get("/:id", anyRole, productHandler.GetByID)

	// Customers
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", anyRole, customerHandler.Create)
	customers.Get("/", anyRole, customerHandler.List)

	// Invoices
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.CreateInvoice, deps.UpdateInvoice, deps.Preview, deps.Payment, deps.InvoicePDF)
	invoices.Post("/preview", anyRole, invoiceHandler.Preview)
	invoices.Post("/", anyRole, invoiceHandler.Create)
	invoices.Get("/", anyRole, invoiceHandler.List)
	invoices.Get("/:id", anyRole, invoiceHandler.GetByID)
	invoices.Put("/:id", backOffice, invoiceHandler.Update)
	invoices.Patch("/:id/payment", anyRole, invoiceHandler.UpdatePayment)
	invoices.Get("/:id/pdf", anyRole, invoiceHandler.DownloadPDF)
}
