// Package config defines conversion utilities for configuration objects.
package config

import (
	"fmt"

	"github.com/iwvelando/mortgage-compare/pkg/money"
	"github.com/iwvelando/mortgage-compare/pkg/scenario"
)

// ToScenarioConfig converts a raw config scenario into a validated engine
// scenario. This is the single place where config floats become decimals.
func (s *Scenario) ToScenarioConfig() (scenario.Config, error) {
	if s == nil {
		return scenario.Config{}, fmt.Errorf("nil scenario")
	}

	strategy, err := scenario.ParseStrategy(s.Overpayment)
	if err != nil {
		return scenario.Config{}, fmt.Errorf("scenario %s: %w", s.Name, err)
	}

	cfg, err := scenario.New(scenario.Params{
		Principal:        money.FromFloat(s.Principal),
		AnnualRate:       money.FromFloat(s.AnnualRate),
		TermMonths:       s.TermMonths,
		DiscountPoints:   money.FromFloat(s.DiscountPoints),
		BaseClosingCosts: money.FromFloat(s.BaseClosingCosts),
		HomeValue:        money.FromFloat(s.HomeValue),
		Strategy:         strategy,
	})
	if err != nil {
		return scenario.Config{}, fmt.Errorf("scenario %s: %w", s.Name, err)
	}

	return cfg, nil
}
