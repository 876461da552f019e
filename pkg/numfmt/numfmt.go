// Package numfmt formatea montos según el locale configurado para los reportes.
package numfmt

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter imprime montos con separadores de miles y decimales del locale.
type Formatter struct {
	p        *message.Printer
	currency string
}

// New construye un Formatter. Un locale inválido cae a español.
func New(locale, currency string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Spanish
	}
	return &Formatter{p: message.NewPrinter(tag), currency: strings.TrimSpace(currency)}
}

// Amount monto con dos decimales, sin símbolo.
func (f *Formatter) Amount(d decimal.Decimal) string {
	v, _ := d.Round(2).Float64()
	return f.p.Sprint(number.Decimal(v, number.Scale(2)))
}

// Money monto con dos decimales precedido por el símbolo de moneda (si hay).
func (f *Formatter) Money(d decimal.Decimal) string {
	if f.currency == "" {
		return f.Amount(d)
	}
	return f.currency + " " + f.Amount(d)
}

// Multiplier peso o multiplicador con dos decimales, ej. "1,50x".
func (f *Formatter) Multiplier(m float64) string {
	return f.p.Sprint(number.Decimal(m, number.Scale(2))) + "x"
}
