package money_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Facturacion-api/pkg/money"
)

func TestFormat_DosDecimales(t *testing.T) {
	f := money.NewFormatter("₹", "en-IN")
	assert.Equal(t, "₹212.40", f.Format(decimal.RequireFromString("212.4")))
	assert.Equal(t, "₹16.20", f.Format(decimal.RequireFromString("16.2")))
	assert.Equal(t, "₹0.00", f.Format(decimal.Zero))
}

func TestFormat_NegativoAntesDelSimbolo(t *testing.T) {
	f := money.NewFormatter("₹", "en-IN")
	assert.Equal(t, "-₹0.40", f.Format(decimal.RequireFromString("-0.4")))
}

func TestFormat_Agrupacion(t *testing.T) {
	f := money.NewFormatter("₹", "en")
	s := f.Format(decimal.RequireFromString("1234567.891"))
	assert.True(t, strings.HasPrefix(s, "₹"))
	assert.True(t, strings.HasSuffix(s, ".89"), "redondea a dos decimales: %s", s)
	assert.Contains(t, s, ",", "usa separador de miles: %s", s)
}

func TestFormat_LocaleInvalido(t *testing.T) {
	f := money.NewFormatter("$", "no es un locale")
	assert.Equal(t, "$5.00", f.Format(decimal.NewFromInt(5)))
	assert.Equal(t, "$", f.Symbol())
}

func TestFormat_MontoGrandeSinPerderDigitos(t *testing.T) {
	f := money.NewFormatter("₹", "en")
	s := f.Format(decimal.RequireFromString("12345678901234567.89"))
	assert.Equal(t, "₹12,345,678,901,234,567.89", s)
}

func TestFormat_SignoDespuesDeRedondear(t *testing.T) {
	f := money.NewFormatter("₹", "en-IN")
	assert.Equal(t, "₹0.00", f.Format(decimal.RequireFromString("-0.004")), "-0.004 redondea a cero sin signo")
	assert.Equal(t, "-₹0.01", f.Format(decimal.RequireFromString("-0.005")))
}
