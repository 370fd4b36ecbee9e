package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturacion-api/internal/application/billing"
	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/domain"
)

func TestCustomerUseCase_GSTINUnicoPorEmpresa(t *testing.T) {
	s := newStore()
	uc := billing.NewCustomerUseCase(customerRepo{s})

	out, err := uc.Create(companyA, dto.CreateCustomerRequest{Name: "Priya", GSTIN: " 27aapfu0939f1zv "})
	require.NoError(t, err)
	assert.Equal(t, "27AAPFU0939F1ZV", out.GSTIN, "se normaliza a mayúsculas")

	_, err = uc.Create(companyA, dto.CreateCustomerRequest{Name: "Priya 2", GSTIN: "27AAPFU0939F1ZV"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Create(companyB, dto.CreateCustomerRequest{Name: "Priya", GSTIN: "27AAPFU0939F1ZV"})
	assert.NoError(t, err, "otra empresa puede registrar el mismo GSTIN")

	_, err = uc.Create(companyA, dto.CreateCustomerRequest{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCustomerUseCase_SinGSTINNoSeCompara(t *testing.T) {
	s := newStore()
	uc := billing.NewCustomerUseCase(customerRepo{s})

	_, err := uc.Create(companyA, dto.CreateCustomerRequest{Name: "Mostrador"})
	require.NoError(t, err)
	_, err = uc.Create(companyA, dto.CreateCustomerRequest{Name: "Mostrador 2"})
	require.NoError(t, err)

	list, err := uc.List(companyA, 0, 0)
	require.NoError(t, err)
	assert.Len(t, list, 3, "c1 + los dos nuevos")
}
