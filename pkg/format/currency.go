// Package format provides plain currency string helpers.
package format

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/iwvelando/mortgage-compare/pkg/money"
)

var printer = message.NewPrinter(language.English)

// Currency returns a currency string with a dollar sign and thousands
// separators (e.g., "-$1,234.56").
func Currency(amount decimal.Decimal) string {
	formatted := printer.Sprintf("%.2f", money.DisplayFloat(amount.Abs()))
	if amount.IsNegative() {
		return "-$" + formatted
	}
	return "$" + formatted
}

// SignedCurrency returns a currency string with an explicit leading sign,
// used when rendering deltas against a baseline (e.g., "+$1,234.56").
func SignedCurrency(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return Currency(amount)
	}
	return "+" + Currency(amount)
}
