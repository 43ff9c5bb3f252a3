// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/mortgage-compare/pkg/datetime"
)

// ScenarioInfo carries the scenario fields the validator inspects.
type ScenarioInfo struct {
	Name           string
	Active         bool
	AnnualRate     float64
	TermMonths     int
	DiscountPoints float64
	RateReduction  float64
}

// ConfigValidator aggregates non-fatal configuration warnings. Hard
// invariants are enforced at scenario construction; everything here is
// advisory.
type ConfigValidator struct {
	StartMonth string
	Scenarios  []ScenarioInfo
}

// ValidateStartMonth checks that the start month is parseable when set. An
// unset start month is allowed; payoff dates are simply omitted.
func ValidateStartMonth(startMonth string) (string, error) {
	if startMonth == "" {
		return "no startMonth configured; payoff dates will be omitted from output", nil
	}
	if err := datetime.ValidateMonth(startMonth); err != nil {
		return "", err
	}
	return "", nil
}

// ValidateScenarioNames warns about empty and duplicated scenario names,
// which make comparison output ambiguous.
func ValidateScenarioNames(scenarios []ScenarioInfo) []string {
	var warnings []string

	seen := make(map[string]bool)
	for _, s := range scenarios {
		if s.Name == "" {
			warnings = append(warnings, "a scenario has no name; output rows will be hard to tell apart")
			continue
		}
		if seen[s.Name] {
			warnings = append(warnings, fmt.Sprintf("Scenario '%s' is defined more than once", s.Name))
		}
		seen[s.Name] = true
	}

	return warnings
}

// ValidateRateBuydown warns when discount points buy the rate all the way
// down to zero, which usually indicates a misconfigured points count.
func ValidateRateBuydown(s ScenarioInfo) string {
	if s.DiscountPoints <= 0 {
		return ""
	}
	effective := s.AnnualRate - s.DiscountPoints*s.RateReduction
	if effective <= 0 {
		return fmt.Sprintf("Scenario '%s' buys the rate down to zero with %.3g points; check discountPoints",
			s.Name, s.DiscountPoints)
	}
	return ""
}

// ValidateAll validates the entire configuration and returns warnings.
func (cv *ConfigValidator) ValidateAll() []string {
	var warnings []string

	if warning, err := ValidateStartMonth(cv.StartMonth); err != nil {
		warnings = append(warnings, fmt.Sprintf("startMonth %q is not a valid %s month: %s",
			cv.StartMonth, datetime.DateTimeLayout, err))
	} else if warning != "" {
		warnings = append(warnings, warning)
	}

	active := 0
	for _, s := range cv.Scenarios {
		if s.Active {
			active++
		}
	}
	if len(cv.Scenarios) == 0 {
		warnings = append(warnings, "no scenarios configured")
	} else if active == 0 {
		warnings = append(warnings, "no active scenarios; nothing will be computed")
	}

	warnings = append(warnings, ValidateScenarioNames(cv.Scenarios)...)

	for _, s := range cv.Scenarios {
		if !s.Active {
			continue
		}
		if warning := ValidateRateBuydown(s); warning != "" {
			warnings = append(warnings, warning)
		}
		if s.TermMonths > 480 {
			warnings = append(warnings, fmt.Sprintf("Scenario '%s' has a %d-month term; terms beyond 40 years are unusual",
				s.Name, s.TermMonths))
		}
	}

	return warnings
}
