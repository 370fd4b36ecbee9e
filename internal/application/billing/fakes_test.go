package billing_test

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
	"github.com/jhoicas/Facturacion-api/pkg/money"
)

// ── helpers ───────────────────────────────────────────────────────────────────

const (
	companyA = "00000000-0000-0000-0000-00000000000a"
	companyB = "00000000-0000-0000-0000-00000000000b"
	userID   = "00000000-0000-0000-0000-000000000001"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertDec(t *testing.T, want string, got decimal.Decimal, msg string) {
	t.Helper()
	assert.True(t, d(want).Equal(got), "%s: esperado %s, obtenido %s", msg, want, got.String())
}

func inr() *money.Formatter { return money.NewFormatter("₹", "en-IN") }

// ── repos en memoria ──────────────────────────────────────────────────────────

type memStore struct {
	mu        sync.Mutex
	products  map[string]*entity.Product
	customers map[string]*entity.Customer
	invoices  map[string]*entity.Invoice
	details   map[string][]*entity.InvoiceDetail
	companies map[string]*entity.Company
	failOn    string // "create_detail" fuerza un error para probar rollback
}

func newStore() *memStore {
	s := &memStore{
		products:  map[string]*entity.Product{},
		customers: map[string]*entity.Customer{},
		invoices:  map[string]*entity.Invoice{},
		details:   map[string][]*entity.InvoiceDetail{},
		companies: map[string]*entity.Company{},
	}
	s.companies[companyA] = &entity.Company{ID: companyA, Name: "Acme Traders", GSTIN: "29ABCDE1234F1Z5"}
	s.products["p1"] = &entity.Product{ID: "p1", CompanyID: companyA, SKU: "SKU-1", Name: "Tornillo", HSNCode: "7318", Price: d("100")}
	s.products["p2"] = &entity.Product{ID: "p2", CompanyID: companyA, SKU: "SKU-2", Name: "Tuerca", Price: d("50")}
	s.products["px"] = &entity.Product{ID: "px", CompanyID: companyB, SKU: "SKU-X", Name: "Ajeno", Price: d("10")}
	s.customers["c1"] = &entity.Customer{ID: "c1", CompanyID: companyA, Name: "Ravi Kumar"}
	s.customers["cx"] = &entity.Customer{ID: "cx", CompanyID: companyB, Name: "Otro"}
	return s
}

type productRepo struct{ s *memStore }

func (r productRepo) Create(p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.products[p.ID] = p
	return nil
}

func (r productRepo) GetByID(id string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.products[id], nil
}

func (r productRepo) GetByCompanyAndSKU(companyID, sku string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.products {
		if p.CompanyID == companyID && p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (r productRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Product
	for _, p := range r.s.products {
		if p.CompanyID == companyID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SKU < out[j].SKU })
	return page(out, limit, offset), nil
}

type customerRepo struct{ s *memStore }

func (r customerRepo) Create(c *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.customers[c.ID] = c
	return nil
}

func (r customerRepo) GetByID(id string) (*entity.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.customers[id], nil
}

func (r customerRepo) GetByCompanyAndGSTIN(companyID, gstin string) (*entity.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.customers {
		if c.CompanyID == companyID && c.GSTIN == gstin {
			return c, nil
		}
	}
	return nil, nil
}

func (r customerRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Customer
	for _, c := range r.s.customers {
		if c.CompanyID == companyID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return page(out, limit, offset), nil
}

type invoiceRepo struct{ s *memStore }

func (r invoiceRepo) Create(inv *entity.Invoice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *inv
	r.s.invoices[inv.ID] = &cp
	return nil
}

func (r invoiceRepo) CreateDetail(det *entity.InvoiceDetail) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failOn == "create_detail" {
		return assert.AnError
	}
	r.s.details[det.InvoiceID] = append(r.s.details[det.InvoiceID], det)
	return nil
}

func (r invoiceRepo) Update(inv *entity.Invoice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *inv
	r.s.invoices[inv.ID] = &cp
	return nil
}

func (r invoiceRepo) UpdatePayment(inv *entity.Invoice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored := r.s.invoices[inv.ID]
	stored.PaidAmount = inv.PaidAmount
	stored.PaymentStatus = inv.PaymentStatus
	stored.PaymentMethod = inv.PaymentMethod
	stored.UpdatedAt = inv.UpdatedAt
	return nil
}

func (r invoiceRepo) DeleteDetails(invoiceID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.details, invoiceID)
	return nil
}

func (r invoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	inv, ok := r.s.invoices[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (r invoiceRepo) GetDetailsByInvoiceID(invoiceID string) ([]*entity.InvoiceDetail, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return append([]*entity.InvoiceDetail(nil), r.s.details[invoiceID]...), nil
}

func (r invoiceRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Invoice, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Invoice
	for _, inv := range r.s.invoices {
		if inv.CompanyID == companyID {
			out = append(out, inv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number > out[j].Number })
	return page(out, limit, offset), nil
}

type companyRepo struct{ s *memStore }

func (r companyRepo) Create(c *entity.Company) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.companies[c.ID] = c
	return nil
}

func (r companyRepo) GetByID(id string) (*entity.Company, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.companies[id], nil
}

func (r companyRepo) GetByGSTIN(gstin string) (*entity.Company, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.companies {
		if c.GSTIN == gstin {
			return c, nil
		}
	}
	return nil, nil
}

func page[T any](in []T, limit, offset int) []T {
	if offset >= len(in) {
		return nil
	}
	end := offset + limit
	if end > len(in) {
		end = len(in)
	}
	return in[offset:end]
}

// txRunner simula la transacción: si fn falla se restauran facturas y líneas.
type txRunner struct{ s *memStore }

func (t txRunner) RunBilling(_ context.Context, fn func(
	repository.ProductRepository,
	repository.CustomerRepository,
	repository.InvoiceRepository,
) error) error {
	t.s.mu.Lock()
	invSnap := make(map[string]*entity.Invoice, len(t.s.invoices))
	for k, v := range t.s.invoices {
		cp := *v
		invSnap[k] = &cp
	}
	detSnap := make(map[string][]*entity.InvoiceDetail, len(t.s.details))
	for k, v := range t.s.details {
		detSnap[k] = append([]*entity.InvoiceDetail(nil), v...)
	}
	t.s.mu.Unlock()

	if err := fn(productRepo{t.s}, customerRepo{t.s}, invoiceRepo{t.s}); err != nil {
		t.s.mu.Lock()
		t.s.invoices = invSnap
		t.s.details = detSnap
		t.s.mu.Unlock()
		return err
	}
	return nil
}

// ── métricas ──────────────────────────────────────────────────────────────────

type invoiceObs struct {
	flow, taxMode, state string
	grand                decimal.Decimal
}

type fakeMetrics struct {
	mu          sync.Mutex
	invoices    []invoiceObs
	transitions [][2]string
}

func (m *fakeMetrics) ObserveInvoice(flow, taxMode, state string, grand decimal.Decimal) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invoices = append(m.invoices, invoiceObs{flow, taxMode, state, grand})
}

func (m *fakeMetrics) ObservePaymentTransition(from, to string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transitions = append(m.transitions, [2]string{from, to})
}

func nopLog() zerolog.Logger { return zerolog.Nop() }
