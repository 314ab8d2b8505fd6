package pricing

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ptBR formats numbers the way the storefront renders them:
// dot thousands separator, comma decimals.
var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL renders an amount as "R$ 1.234,56".
func FormatBRL(amount decimal.Decimal) string {
	v, _ := amount.Round(2).Float64()
	return ptBR.Sprintf("R$ %v",
		number.Decimal(v, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
