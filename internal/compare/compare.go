// Package compare runs the amortization engine across the configured
// scenarios and derives the cross-scenario deltas used in reports.
package compare

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/iwvelando/mortgage-compare/internal/config"
	"github.com/iwvelando/mortgage-compare/pkg/amortize"
	"github.com/iwvelando/mortgage-compare/pkg/datetime"
)

// Result holds the computed schedule and summary for one scenario.
type Result struct {
	Name       string            `json:"name"`
	Strategy   string            `json:"strategy"`
	TermMonths int               `json:"termMonths"`
	Summary    amortize.Summary  `json:"summary"`
	PayoffDate string            `json:"payoffDate,omitempty"`
	Schedule   amortize.Schedule `json:"schedule,omitempty"`
}

// Delta holds one scenario's differences against the baseline. Negative
// amounts mean the scenario is cheaper than the baseline.
type Delta struct {
	Name          string          `json:"name"`
	TotalInterest decimal.Decimal `json:"totalInterest"`
	TotalCost     decimal.Decimal `json:"totalCost"`
	PeriodsPaid   int             `json:"periodsPaid"`
}

// Comparison relates every non-baseline scenario to the baseline, which is
// the first active scenario in configuration order.
type Comparison struct {
	Baseline string  `json:"baseline"`
	Deltas   []Delta `json:"deltas,omitempty"`
}

// Run computes the Results for all active scenarios.
func Run(logger *zap.Logger, conf *config.Configuration) ([]Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	engine := amortize.NewEngine(logger)

	var results []Result
	for i := range conf.Scenarios {
		s := &conf.Scenarios[i]
		if !s.Active {
			logger.Debug(fmt.Sprintf("skipping scenario %s because it is inactive", s.Name),
				zap.String("op", "compare.Run"),
			)
			continue
		}

		cfg, err := s.ToScenarioConfig()
		if err != nil {
			return results, err
		}

		schedule, summary, err := engine.ComputeSchedule(cfg)
		if err != nil {
			return results, fmt.Errorf("scenario %s: %w", s.Name, err)
		}

		result := Result{
			Name:       s.Name,
			Strategy:   cfg.Strategy().Describe(),
			TermMonths: cfg.TermMonths(),
			Summary:    summary,
			Schedule:   schedule,
		}

		if conf.Common.StartMonth != "" {
			payoffDate, err := datetime.PeriodDate(conf.Common.StartMonth, summary.PeriodsPaid)
			if err != nil {
				return results, fmt.Errorf("scenario %s: %w", s.Name, err)
			}
			result.PayoffDate = payoffDate
		}

		logger.Debug(fmt.Sprintf("scenario %s pays %s over %d periods",
			s.Name, result.Summary.Payment, result.Summary.PeriodsPaid),
			zap.String("op", "compare.Run"),
		)

		results = append(results, result)
	}

	return results, nil
}

// Compare relates each scenario to the first one. With fewer than two
// results there is nothing to relate and the comparison is empty.
func Compare(results []Result) Comparison {
	if len(results) == 0 {
		return Comparison{}
	}

	baseline := results[0]
	comparison := Comparison{Baseline: baseline.Name}

	for _, result := range results[1:] {
		comparison.Deltas = append(comparison.Deltas, Delta{
			Name:          result.Name,
			TotalInterest: result.Summary.TotalInterest.Sub(baseline.Summary.TotalInterest),
			TotalCost:     result.Summary.TotalCost.Sub(baseline.Summary.TotalCost),
			PeriodsPaid:   result.Summary.PeriodsPaid - baseline.Summary.PeriodsPaid,
		})
	}

	return comparison
}
