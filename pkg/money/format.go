// Package money formatea montos para presentación (símbolo + separadores del locale).
package money

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var maxInt64 = decimal.NewFromInt(math.MaxInt64)

// Formatter convierte decimales en strings de moneda con dos decimales.
type Formatter struct {
	symbol   string
	printer  *message.Printer
	decimalS string
}

// NewFormatter construye el formateador. Un locale inválido cae a inglés.
func NewFormatter(symbol, locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	p := message.NewPrinter(tag)
	// "0.5" en el locale: el separador decimal es lo que queda entre los dígitos.
	sep := strings.Trim(p.Sprint(number.Decimal(0.5, number.Scale(1))), "05")
	if sep == "" {
		sep = "."
	}
	return &Formatter{symbol: symbol, printer: p, decimalS: sep}
}

// Format devuelve el monto con símbolo y dos decimales. Negativos: "-₹0.40".
// La parte entera se agrupa según el locale; los dígitos salen del decimal, sin float.
func (f *Formatter) Format(v decimal.Decimal) string {
	v = v.Round(2)
	sign := ""
	if v.IsNegative() {
		sign = "-"
		v = v.Neg()
	}
	fixed := v.StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	grouped := intPart
	if v.LessThanOrEqual(maxInt64) {
		grouped = f.printer.Sprint(number.Decimal(v.IntPart()))
	}
	return sign + f.symbol + grouped + f.decimalS + frac
}

// Symbol devuelve el símbolo configurado.
func (f *Formatter) Symbol() string { return f.symbol }
