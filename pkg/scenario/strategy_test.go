package scenario

import (
	"errors"
	"testing"
)

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		name        string
		descriptor  Descriptor
		expectError bool
		expectType  string
	}{
		{
			name:       "Empty descriptor defaults to none",
			descriptor: Descriptor{},
			expectType: "scenario.NoOverpayment",
		},
		{
			name:       "Explicit none",
			descriptor: Descriptor{Strategy: StrategyNone},
			expectType: "scenario.NoOverpayment",
		},
		{
			name:       "Fixed extra",
			descriptor: Descriptor{Strategy: StrategyFixedExtra, Amount: 200},
			expectType: "scenario.FixedExtra",
		},
		{
			name:       "One-time extra",
			descriptor: Descriptor{Strategy: StrategyOneTimeExtra, Amount: 10000, Period: 12},
			expectType: "scenario.OneTimeExtra",
		},
		{
			name:       "Percent acceleration",
			descriptor: Descriptor{Strategy: StrategyPercentAcceleration, Fraction: 0.1},
			expectType: "scenario.PercentAcceleration",
		},
		{
			name:        "Unknown strategy",
			descriptor:  Descriptor{Strategy: "doubleEveryMonth"},
			expectError: true,
		},
		{
			name:        "Negative fixed amount",
			descriptor:  Descriptor{Strategy: StrategyFixedExtra, Amount: -5},
			expectError: true,
		},
		{
			name:        "One-time extra without period",
			descriptor:  Descriptor{Strategy: StrategyOneTimeExtra, Amount: 1000},
			expectError: true,
		},
		{
			name:        "Negative fraction",
			descriptor:  Descriptor{Strategy: StrategyPercentAcceleration, Fraction: -0.2},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strategy, err := ParseStrategy(tt.descriptor)
			if tt.expectError {
				if err == nil {
					t.Fatal("ParseStrategy() error = nil, expected ErrInvalidParameter")
				}
				if !errors.Is(err, ErrInvalidParameter) {
					t.Errorf("ParseStrategy() error = %v, expected ErrInvalidParameter", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStrategy() error = %v", err)
			}
			if got := typeName(strategy); got != tt.expectType {
				t.Errorf("ParseStrategy() = %s, expected %s", got, tt.expectType)
			}
		})
	}
}

func typeName(s OverpaymentStrategy) string {
	switch s.(type) {
	case NoOverpayment:
		return "scenario.NoOverpayment"
	case FixedExtra:
		return "scenario.FixedExtra"
	case OneTimeExtra:
		return "scenario.OneTimeExtra"
	case PercentAcceleration:
		return "scenario.PercentAcceleration"
	default:
		return "unknown"
	}
}

func TestStrategyExtraFor(t *testing.T) {
	balance := d("250000")

	t.Run("NoOverpayment returns zero every period", func(t *testing.T) {
		s := NoOverpayment{}
		for _, period := range []int{1, 2, 120, 360} {
			if extra := s.ExtraFor(period, balance); !extra.IsZero() {
				t.Errorf("ExtraFor(%d) = %s, expected 0", period, extra)
			}
		}
	})

	t.Run("FixedExtra returns the amount every period", func(t *testing.T) {
		s := FixedExtra{Amount: d("200")}
		for _, period := range []int{1, 180, 360} {
			if extra := s.ExtraFor(period, balance); !extra.Equal(d("200")) {
				t.Errorf("ExtraFor(%d) = %s, expected 200", period, extra)
			}
		}
	})

	t.Run("OneTimeExtra applies only in its period", func(t *testing.T) {
		s := OneTimeExtra{Period: 12, Amount: d("10000")}
		if extra := s.ExtraFor(12, balance); !extra.Equal(d("10000")) {
			t.Errorf("ExtraFor(12) = %s, expected 10000", extra)
		}
		for _, period := range []int{1, 11, 13, 360} {
			if extra := s.ExtraFor(period, balance); !extra.IsZero() {
				t.Errorf("ExtraFor(%d) = %s, expected 0", period, extra)
			}
		}
	})

	t.Run("PercentAcceleration uses the bound payment", func(t *testing.T) {
		s := PercentAcceleration{Fraction: d("0.1")}
		if extra := s.ExtraFor(1, balance); !extra.IsZero() {
			t.Errorf("unbound ExtraFor(1) = %s, expected 0", extra)
		}

		bound := s.BindPayment(d("1798.6515754521675"))
		extra := bound.ExtraFor(1, balance)
		if !extra.Equal(d("179.87")) {
			t.Errorf("bound ExtraFor(1) = %s, expected 179.87", extra)
		}
	})

	t.Run("Descriptions name the strategy", func(t *testing.T) {
		tests := []struct {
			strategy OverpaymentStrategy
			expected string
		}{
			{NoOverpayment{}, "none"},
			{FixedExtra{Amount: d("200")}, "extra 200.00 per period"},
			{OneTimeExtra{Period: 12, Amount: d("10000")}, "one-time extra 10000.00 in period 12"},
			{PercentAcceleration{Fraction: d("0.1")}, "accelerate by 10% of the payment"},
		}
		for _, tt := range tests {
			if got := tt.strategy.Describe(); got != tt.expected {
				t.Errorf("Describe() = %q, expected %q", got, tt.expected)
			}
		}
	})
}
