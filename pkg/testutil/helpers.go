// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/mortgage-compare/internal/compare"
)

// FindResult finds a scenario result by name in the results slice.
// Returns a pointer to the result if found, nil otherwise.
func FindResult(results []compare.Result, name string) *compare.Result {
	for i := range results {
		if results[i].Name == name {
			return &results[i]
		}
	}
	return nil
}
