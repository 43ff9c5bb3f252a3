// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/iwvelando/mortgage-compare/pkg/constants"
	"github.com/iwvelando/mortgage-compare/pkg/scenario"
	"github.com/iwvelando/mortgage-compare/pkg/validation"
)

// DateTimeLayout is the format expected in config files and is also the output
// date format.
const DateTimeLayout = constants.DateTimeLayout

// Configuration holds all configuration for mortgage-compare.
type Configuration struct {
	Common    Common        `yaml:"common" json:"common"`
	Scenarios []Scenario    `yaml:"scenarios" json:"scenarios"`
	Logging   LoggingConfig `yaml:"logging,omitempty" json:"logging,omitempty"`
	Output    OutputConfig  `yaml:"output,omitempty" json:"output,omitempty"`
	Server    ServerConfig  `yaml:"server,omitempty" json:"server,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty" json:"level,omitempty"`           // debug, info, warn, error
	Format     string `yaml:"format,omitempty" json:"format,omitempty"`         // json, console
	OutputFile string `yaml:"outputFile,omitempty" json:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty" json:"format,omitempty"` // pretty, csv
}

// ServerConfig holds the options for the HTTP API mode.
type ServerConfig struct {
	Address         string `yaml:"address,omitempty" json:"address,omitempty"`
	MaxRequestBytes string `yaml:"maxRequestBytes,omitempty" json:"maxRequestBytes,omitempty"` // e.g. "256K", "10M"
}

// Common holds the parameters shared between all scenarios.
type Common struct {
	// StartMonth anchors period 1 of every schedule. Optional; when empty,
	// payoff dates are omitted from output.
	StartMonth string `yaml:"startMonth,omitempty" json:"startMonth,omitempty"`
}

// Scenario holds the loan terms for one mortgage scenario.
type Scenario struct {
	Name             string              `yaml:"name" json:"name"`
	Active           bool                `yaml:"active" json:"active"`
	Principal        float64             `yaml:"principal" json:"principal"`
	AnnualRate       float64             `yaml:"annualRate" json:"annualRate"`
	TermMonths       int                 `yaml:"termMonths" json:"termMonths"`
	DiscountPoints   float64             `yaml:"discountPoints,omitempty" json:"discountPoints,omitempty"`
	BaseClosingCosts float64             `yaml:"baseClosingCosts,omitempty" json:"baseClosingCosts,omitempty"`
	HomeValue        float64             `yaml:"homeValue,omitempty" json:"homeValue,omitempty"`
	Overpayment      scenario.Descriptor `yaml:"overpayment,omitempty" json:"overpayment,omitempty"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	rateReduction := scenario.RateReductionPerPoint.InexactFloat64()

	var scenarios []validation.ScenarioInfo
	for _, s := range c.Scenarios {
		scenarios = append(scenarios, validation.ScenarioInfo{
			Name:           s.Name,
			Active:         s.Active,
			AnnualRate:     s.AnnualRate,
			TermMonths:     s.TermMonths,
			DiscountPoints: s.DiscountPoints,
			RateReduction:  rateReduction,
		})
	}

	validator := validation.ConfigValidator{
		StartMonth: c.Common.StartMonth,
		Scenarios:  scenarios,
	}
	return validator.ValidateAll()
}
