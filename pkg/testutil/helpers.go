// Package testutil provides common utility functions for testing.
package testutil

import (
	"testing"

	"github.com/iwvelando/mortgage-compare/pkg/constants"
	"github.com/iwvelando/mortgage-compare/pkg/mathutil"
	"github.com/iwvelando/mortgage-compare/pkg/mortgage"
)

// FindMortgage finds a mortgage summary by name in the results slice.
// Returns a pointer to the summary if found, nil otherwise.
func FindMortgage(results []mortgage.Summary, name string) *mortgage.Summary {
	for i := range results {
		if results[i].Params.Name == name {
			return &results[i]
		}
	}
	return nil
}

// AssertCurrency fails the test when got and expected differ by more than a cent.
func AssertCurrency(t testing.TB, label string, got, expected float64) {
	t.Helper()
	if !mathutil.WithinTolerance(got, expected, constants.CurrencyTolerance) {
		t.Errorf("%s = %.4f, expected %.2f", label, got, expected)
	}
}
