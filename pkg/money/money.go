// Package money provides decimal currency utilities with a consistent
// rounding policy. All monetary amounts in this application are
// decimal.Decimal; float64 appears only at configuration and display
// boundaries.
package money

import (
	"github.com/shopspring/decimal"

	"github.com/iwvelando/mortgage-compare/pkg/constants"
)

// RoundCents rounds an amount to the currency minor unit using banker's
// rounding (round half to even). This is the single rounding routine used
// for schedule arithmetic and reported figures; mixing rounding modes would
// make totals irreproducible.
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(constants.CurrencyPlaces)
}

// FromFloat converts a configuration-supplied float into a Decimal. Values
// parsed from YAML arrive as float64; the conversion uses the shortest
// decimal representation that round-trips, so literals like 0.06 convert
// exactly.
func FromFloat(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

// StringCents renders an amount with exactly two decimal places, applying
// banker's rounding when the amount carries more precision.
func StringCents(d decimal.Decimal) string {
	return d.StringFixedBank(constants.CurrencyPlaces)
}

// DisplayFloat returns the amount as a float64 suitable for formatted
// output. Amounts are rounded to cents first so the conversion error stays
// far below display precision.
func DisplayFloat(d decimal.Decimal) float64 {
	return RoundCents(d).InexactFloat64()
}
