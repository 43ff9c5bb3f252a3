// Package amortize computes mortgage amortization schedules and cost
// summaries for validated scenarios.
package amortize

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/iwvelando/mortgage-compare/pkg/constants"
	"github.com/iwvelando/mortgage-compare/pkg/money"
	"github.com/iwvelando/mortgage-compare/pkg/scenario"
)

// ErrNonAmortizing indicates a degenerate configuration whose scheduled
// payment can never cover the first period's interest, so the balance would
// never decrease.
var ErrNonAmortizing = errors.New("amortize: payment does not cover interest")

// compoundingPlaces is the decimal precision carried while accumulating the
// compounding factor (1+r)^n. The cap keeps coefficient growth bounded while
// leaving the result accurate to many orders of magnitude below one cent.
const compoundingPlaces = 24

var one = decimal.NewFromInt(1)

// PeriodRecord holds the values for a single payment period. Interest and
// Extra are exact cent amounts; Payment, Principal, and RemainingBalance
// carry full precision so the schedule's column sums reconcile exactly with
// the Summary. Presentation layers round for display.
type PeriodRecord struct {
	Period           int             `json:"period"`
	Payment          decimal.Decimal `json:"payment"`
	Interest         decimal.Decimal `json:"interest"`
	Principal        decimal.Decimal `json:"principal"`
	Extra            decimal.Decimal `json:"extra"`
	RemainingBalance decimal.Decimal `json:"remainingBalance"`
}

// Schedule is the ordered sequence of period records for one scenario. Each
// record's opening balance is the prior record's closing balance; the final
// record's balance is always exactly zero.
type Schedule []PeriodRecord

// Summary aggregates a schedule into reported figures, rounded to cents.
type Summary struct {
	PeriodsPaid      int             `json:"periodsPaid"`
	Payment          decimal.Decimal `json:"payment"`
	TotalInterest    decimal.Decimal `json:"totalInterest"`
	TotalPrincipal   decimal.Decimal `json:"totalPrincipal"`
	TotalOverpayment decimal.Decimal `json:"totalOverpayment"`
	PointsCost       decimal.Decimal `json:"pointsCost"`
	UpfrontCosts     decimal.Decimal `json:"upfrontCosts"`
	DownPayment      decimal.Decimal `json:"downPayment"`
	TotalCost        decimal.Decimal `json:"totalCost"`
}

// Engine generates amortization schedules.
type Engine struct {
	logger *zap.Logger
}

// NewEngine creates a new engine instance.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger}
}

// ComputeSchedule produces the period-by-period schedule and summary for a
// scenario. The computation is pure and deterministic; on error no partial
// schedule is returned.
func (e *Engine) ComputeSchedule(cfg scenario.Config) (Schedule, Summary, error) {
	principal := cfg.Principal()
	termMonths := cfg.TermMonths()
	periodicRate := cfg.EffectiveRate().Div(decimal.NewFromInt(constants.PeriodsPerYear))

	payment := scheduledPayment(principal, periodicRate, termMonths)

	strategy := cfg.Strategy()
	if aware, ok := strategy.(scenario.PaymentAware); ok {
		strategy = aware.BindPayment(payment)
	}

	if periodicRate.IsPositive() {
		firstInterest := money.RoundCents(principal.Mul(periodicRate))
		if payment.LessThanOrEqual(firstInterest) {
			return nil, Summary{}, fmt.Errorf("%w: payment %s is at or below first-period interest %s",
				ErrNonAmortizing, money.StringCents(payment), money.StringCents(firstInterest))
		}
	}

	e.logger.Debug(fmt.Sprintf("scheduled payment %s for principal %s over %d months",
		money.StringCents(payment), money.StringCents(principal), termMonths),
		zap.String("op", "amortize.ComputeSchedule"),
	)

	schedule := make(Schedule, 0, termMonths)
	balance := principal
	totalInterest := decimal.Zero
	totalPrincipal := decimal.Zero
	totalExtra := decimal.Zero

	for period := 1; period <= termMonths && balance.IsPositive(); period++ {
		interest := money.RoundCents(balance.Mul(periodicRate))

		principalPortion := payment.Sub(interest)
		if principalPortion.GreaterThan(balance) {
			principalPortion = balance
		}

		projected := balance.Sub(principalPortion)
		extra := strategy.ExtraFor(period, projected)
		if extra.IsNegative() {
			extra = decimal.Zero
		}
		if extra.GreaterThan(projected) {
			extra = projected
		}

		balance = balance.Sub(principalPortion).Sub(extra)

		if period == termMonths && balance.IsPositive() {
			// Rounding residue after the last scheduled period; fold it into
			// the final principal portion so the loan amortizes to exactly zero.
			principalPortion = principalPortion.Add(balance)
			balance = decimal.Zero
		}

		schedule = append(schedule, PeriodRecord{
			Period:           period,
			Payment:          payment,
			Interest:         interest,
			Principal:        principalPortion,
			Extra:            extra,
			RemainingBalance: balance,
		})

		totalInterest = totalInterest.Add(interest)
		totalPrincipal = totalPrincipal.Add(principalPortion)
		totalExtra = totalExtra.Add(extra)
	}

	if len(schedule) < termMonths {
		e.logger.Debug(fmt.Sprintf("loan paid off early at period %d of %d", len(schedule), termMonths),
			zap.String("op", "amortize.ComputeSchedule"),
		)
	}

	summary := Summary{
		PeriodsPaid:      len(schedule),
		Payment:          money.RoundCents(payment),
		TotalInterest:    money.RoundCents(totalInterest),
		TotalPrincipal:   money.RoundCents(totalPrincipal),
		TotalOverpayment: money.RoundCents(totalExtra),
		PointsCost:       cfg.PointsCost(),
		UpfrontCosts:     cfg.UpfrontCosts(),
		DownPayment:      cfg.DownPayment(),
	}
	summary.TotalCost = summary.TotalInterest.Add(summary.UpfrontCosts).Add(summary.DownPayment)

	return schedule, summary, nil
}

// scheduledPayment computes the level payment via the standard annuity
// formula. The result is kept at full precision; quantizing it to cents
// inside the recurrence would misstate total interest over a long term.
func scheduledPayment(principal, periodicRate decimal.Decimal, termMonths int) decimal.Decimal {
	if periodicRate.IsZero() {
		return principal.Div(decimal.NewFromInt(int64(termMonths)))
	}
	growth := compoundingFactor(periodicRate, termMonths)
	return principal.Mul(periodicRate).Mul(growth).Div(growth.Sub(one))
}

// compoundingFactor returns (1+r)^n by repeated multiplication so schedules
// are reproducible bit for bit across platforms.
func compoundingFactor(periodicRate decimal.Decimal, periods int) decimal.Decimal {
	base := one.Add(periodicRate)
	factor := one
	for i := 0; i < periods; i++ {
		factor = factor.Mul(base).Round(compoundingPlaces)
	}
	return factor
}
