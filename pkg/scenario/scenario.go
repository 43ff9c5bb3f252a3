// Package scenario defines the validated parameter bundle for a single
// mortgage scenario and the overpayment strategies that can be attached to
// it. A Config is constructed once, validated at construction, and never
// mutated afterwards.
package scenario

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/iwvelando/mortgage-compare/pkg/money"
)

// ErrInvalidParameter indicates that a scenario parameter violated a
// construction invariant. Returned errors wrap this sentinel and name the
// offending field and value.
var ErrInvalidParameter = errors.New("scenario: invalid parameter")

// Discount point policy. One point costs CostPerPoint of the loan principal
// upfront and lowers the nominal annual rate by RateReductionPerPoint.
var (
	// RateReductionPerPoint is the annual rate reduction purchased by one
	// discount point (12.5 basis points).
	RateReductionPerPoint = decimal.RequireFromString("0.00125")

	// CostPerPoint is the upfront cost of one discount point as a fraction
	// of the loan principal (1%).
	CostPerPoint = decimal.RequireFromString("0.01")
)

var one = decimal.NewFromInt(1)

// Params holds the raw inputs for constructing a Config.
type Params struct {
	Principal        decimal.Decimal
	AnnualRate       decimal.Decimal
	TermMonths       int
	DiscountPoints   decimal.Decimal
	BaseClosingCosts decimal.Decimal
	HomeValue        decimal.Decimal
	Strategy         OverpaymentStrategy
}

// Config is an immutable, validated mortgage scenario.
type Config struct {
	principal        decimal.Decimal
	annualRate       decimal.Decimal
	termMonths       int
	discountPoints   decimal.Decimal
	baseClosingCosts decimal.Decimal
	homeValue        decimal.Decimal
	strategy         OverpaymentStrategy
	effectiveRate    decimal.Decimal
}

// New validates the given parameters and returns a Config. A nil Strategy is
// treated as no overpayment.
func New(p Params) (Config, error) {
	if !p.Principal.IsPositive() {
		return Config{}, fmt.Errorf("%w: principal must be positive, got %s", ErrInvalidParameter, p.Principal)
	}
	if p.AnnualRate.IsNegative() {
		return Config{}, fmt.Errorf("%w: annualRate must be non-negative, got %s", ErrInvalidParameter, p.AnnualRate)
	}
	if p.AnnualRate.GreaterThanOrEqual(one) {
		return Config{}, fmt.Errorf("%w: annualRate must be below 1, got %s", ErrInvalidParameter, p.AnnualRate)
	}
	if p.TermMonths < 1 {
		return Config{}, fmt.Errorf("%w: termMonths must be at least 1, got %d", ErrInvalidParameter, p.TermMonths)
	}
	if p.DiscountPoints.IsNegative() {
		return Config{}, fmt.Errorf("%w: discountPoints must be non-negative, got %s", ErrInvalidParameter, p.DiscountPoints)
	}
	if p.BaseClosingCosts.IsNegative() {
		return Config{}, fmt.Errorf("%w: baseClosingCosts must be non-negative, got %s", ErrInvalidParameter, p.BaseClosingCosts)
	}
	if p.HomeValue.IsNegative() {
		return Config{}, fmt.Errorf("%w: homeValue must be non-negative, got %s", ErrInvalidParameter, p.HomeValue)
	}
	if p.HomeValue.IsPositive() && p.HomeValue.LessThan(p.Principal) {
		return Config{}, fmt.Errorf("%w: homeValue %s is below principal %s", ErrInvalidParameter, p.HomeValue, p.Principal)
	}

	effectiveRate := p.AnnualRate.Sub(p.DiscountPoints.Mul(RateReductionPerPoint))
	if effectiveRate.IsNegative() {
		return Config{}, fmt.Errorf("%w: %s discount points reduce the rate below zero (effective rate %s)",
			ErrInvalidParameter, p.DiscountPoints, effectiveRate)
	}

	strategy := p.Strategy
	if strategy == nil {
		strategy = NoOverpayment{}
	}
	if err := validateStrategy(strategy, p.TermMonths); err != nil {
		return Config{}, err
	}

	return Config{
		principal:        p.Principal,
		annualRate:       p.AnnualRate,
		termMonths:       p.TermMonths,
		discountPoints:   p.DiscountPoints,
		baseClosingCosts: p.BaseClosingCosts,
		homeValue:        p.HomeValue,
		strategy:         strategy,
		effectiveRate:    effectiveRate,
	}, nil
}

// Principal returns the loan amount.
func (c Config) Principal() decimal.Decimal { return c.principal }

// AnnualRate returns the nominal annual interest rate as a fraction.
func (c Config) AnnualRate() decimal.Decimal { return c.annualRate }

// TermMonths returns the loan duration in months.
func (c Config) TermMonths() int { return c.termMonths }

// DiscountPoints returns the number of discount points purchased.
func (c Config) DiscountPoints() decimal.Decimal { return c.discountPoints }

// BaseClosingCosts returns the upfront closing costs excluding points.
func (c Config) BaseClosingCosts() decimal.Decimal { return c.baseClosingCosts }

// HomeValue returns the purchase price, or zero when not configured.
func (c Config) HomeValue() decimal.Decimal { return c.homeValue }

// Strategy returns the overpayment strategy; never nil.
func (c Config) Strategy() OverpaymentStrategy { return c.strategy }

// EffectiveRate returns the annual rate after the discount point reduction.
func (c Config) EffectiveRate() decimal.Decimal { return c.effectiveRate }

// PointsCost returns the upfront cost of the purchased discount points,
// rounded to cents.
func (c Config) PointsCost() decimal.Decimal {
	return money.RoundCents(c.principal.Mul(c.discountPoints).Mul(CostPerPoint))
}

// UpfrontCosts returns the total amount due at closing: points plus base
// closing costs.
func (c Config) UpfrontCosts() decimal.Decimal {
	return c.PointsCost().Add(c.baseClosingCosts)
}

// DownPayment returns the difference between home value and principal, or
// zero when no home value is configured.
func (c Config) DownPayment() decimal.Decimal {
	if !c.homeValue.IsPositive() {
		return decimal.Zero
	}
	return c.homeValue.Sub(c.principal)
}
