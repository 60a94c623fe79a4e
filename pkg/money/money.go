// Package money formatea montos en pesos colombianos (COP) con el locale
// es-CO, igual que el cliente web (Intl.NumberFormat con minimumFractionDigits 0).
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.MustParse("es-CO"))

// FormatCOP devuelve el monto formateado como moneda colombiana, sin centavos.
// Ej: 240000 -> "$ 240.000".
func FormatCOP(amount decimal.Decimal) string {
	f, _ := amount.Round(0).Float64()
	return printer.Sprintf("$ %v", number.Decimal(f, number.MaxFractionDigits(0)))
}
