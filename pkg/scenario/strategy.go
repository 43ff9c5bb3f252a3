package scenario

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/iwvelando/mortgage-compare/pkg/money"
)

// Strategy names accepted in configuration files.
const (
	StrategyNone                = "none"
	StrategyFixedExtra          = "fixedExtra"
	StrategyOneTimeExtra        = "oneTimeExtra"
	StrategyPercentAcceleration = "percentAcceleration"
)

// OverpaymentStrategy computes the extra principal payment for a period.
// Implementations are value types; the amortization engine clips the
// returned amount so the balance never goes below zero.
type OverpaymentStrategy interface {
	// ExtraFor returns the extra principal for the given 1-based period.
	// projectedBalance is the remaining balance after the period's scheduled
	// principal portion has been applied.
	ExtraFor(periodIndex int, projectedBalance decimal.Decimal) decimal.Decimal

	// Describe returns a short human-readable description for output and logs.
	Describe() string
}

// PaymentAware is implemented by strategies whose extra amount depends on
// the scheduled payment. The engine rebinds such strategies once the
// payment is known.
type PaymentAware interface {
	BindPayment(payment decimal.Decimal) OverpaymentStrategy
}

// NoOverpayment makes only the scheduled payments.
type NoOverpayment struct{}

// ExtraFor always returns zero.
func (NoOverpayment) ExtraFor(int, decimal.Decimal) decimal.Decimal { return decimal.Zero }

// Describe returns the strategy description.
func (NoOverpayment) Describe() string { return "none" }

// FixedExtra pays a fixed extra amount toward principal every period.
type FixedExtra struct {
	Amount decimal.Decimal
}

// ExtraFor returns the fixed extra amount.
func (s FixedExtra) ExtraFor(int, decimal.Decimal) decimal.Decimal { return s.Amount }

// Describe returns the strategy description.
func (s FixedExtra) Describe() string {
	return fmt.Sprintf("extra %s per period", money.StringCents(s.Amount))
}

// OneTimeExtra pays a single extra amount in one specific period.
type OneTimeExtra struct {
	Period int
	Amount decimal.Decimal
}

// ExtraFor returns the extra amount in the configured period and zero
// otherwise.
func (s OneTimeExtra) ExtraFor(periodIndex int, _ decimal.Decimal) decimal.Decimal {
	if periodIndex == s.Period {
		return s.Amount
	}
	return decimal.Zero
}

// Describe returns the strategy description.
func (s OneTimeExtra) Describe() string {
	return fmt.Sprintf("one-time extra %s in period %d", money.StringCents(s.Amount), s.Period)
}

// PercentAcceleration pays a fraction of the scheduled payment as extra
// principal every period.
type PercentAcceleration struct {
	Fraction decimal.Decimal

	payment decimal.Decimal
}

// BindPayment returns a copy bound to the scheduled payment.
func (s PercentAcceleration) BindPayment(payment decimal.Decimal) OverpaymentStrategy {
	s.payment = payment
	return s
}

// ExtraFor returns the configured fraction of the scheduled payment,
// rounded to cents.
func (s PercentAcceleration) ExtraFor(int, decimal.Decimal) decimal.Decimal {
	return money.RoundCents(s.Fraction.Mul(s.payment))
}

// Describe returns the strategy description.
func (s PercentAcceleration) Describe() string {
	return fmt.Sprintf("accelerate by %s%% of the payment", s.Fraction.Mul(decimal.NewFromInt(100)))
}

// Descriptor selects an overpayment strategy in configuration files and API
// requests.
type Descriptor struct {
	Strategy string  `yaml:"strategy" json:"strategy"`
	Amount   float64 `yaml:"amount" json:"amount"`
	Period   int     `yaml:"period" json:"period"`
	Fraction float64 `yaml:"fraction" json:"fraction"`
}

// ParseStrategy maps a Descriptor onto a strategy value. An empty strategy
// name selects NoOverpayment.
func ParseStrategy(d Descriptor) (OverpaymentStrategy, error) {
	switch d.Strategy {
	case "", StrategyNone:
		return NoOverpayment{}, nil
	case StrategyFixedExtra:
		if d.Amount < 0 {
			return nil, fmt.Errorf("%w: overpayment amount must be non-negative, got %v", ErrInvalidParameter, d.Amount)
		}
		return FixedExtra{Amount: money.FromFloat(d.Amount)}, nil
	case StrategyOneTimeExtra:
		if d.Amount < 0 {
			return nil, fmt.Errorf("%w: overpayment amount must be non-negative, got %v", ErrInvalidParameter, d.Amount)
		}
		if d.Period < 1 {
			return nil, fmt.Errorf("%w: overpayment period must be at least 1, got %d", ErrInvalidParameter, d.Period)
		}
		return OneTimeExtra{Period: d.Period, Amount: money.FromFloat(d.Amount)}, nil
	case StrategyPercentAcceleration:
		if d.Fraction < 0 {
			return nil, fmt.Errorf("%w: overpayment fraction must be non-negative, got %v", ErrInvalidParameter, d.Fraction)
		}
		return PercentAcceleration{Fraction: money.FromFloat(d.Fraction)}, nil
	default:
		return nil, fmt.Errorf("%w: unknown overpayment strategy %q", ErrInvalidParameter, d.Strategy)
	}
}

func validateStrategy(s OverpaymentStrategy, termMonths int) error {
	switch v := s.(type) {
	case NoOverpayment:
	case FixedExtra:
		if v.Amount.IsNegative() {
			return fmt.Errorf("%w: overpayment amount must be non-negative, got %s", ErrInvalidParameter, v.Amount)
		}
	case OneTimeExtra:
		if v.Amount.IsNegative() {
			return fmt.Errorf("%w: overpayment amount must be non-negative, got %s", ErrInvalidParameter, v.Amount)
		}
		if v.Period < 1 || v.Period > termMonths {
			return fmt.Errorf("%w: overpayment period %d is outside the loan term", ErrInvalidParameter, v.Period)
		}
	case PercentAcceleration:
		if v.Fraction.IsNegative() {
			return fmt.Errorf("%w: overpayment fraction must be non-negative, got %s", ErrInvalidParameter, v.Fraction)
		}
	}
	return nil
}
