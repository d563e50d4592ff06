package testutil

import (
	"testing"

	"github.com/iwvelando/mortgage-compare/pkg/mortgage"
)

func TestFindMortgage(t *testing.T) {
	results := []mortgage.Summary{
		{Params: mortgage.Params{Name: "Lender A"}, TotalCost: 100},
		{Params: mortgage.Params{Name: "Lender B"}, TotalCost: 200},
	}

	tests := []struct {
		name     string
		search   string
		expected float64
		found    bool
	}{
		{"First entry", "Lender A", 100, true},
		{"Second entry", "Lender B", 200, true},
		{"Missing entry", "Lender C", 0, false},
		{"Case sensitive", "lender a", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindMortgage(results, tt.search)
			if !tt.found {
				if got != nil {
					t.Errorf("FindMortgage(%q) = %+v, expected nil", tt.search, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("FindMortgage(%q) returned nil", tt.search)
			}
			if got.TotalCost != tt.expected {
				t.Errorf("TotalCost = %v, expected %v", got.TotalCost, tt.expected)
			}
		})
	}

	if FindMortgage(nil, "Lender A") != nil {
		t.Error("FindMortgage on nil slice should return nil")
	}
}

func TestFindMortgageReturnsPointerIntoSlice(t *testing.T) {
	results := []mortgage.Summary{{Params: mortgage.Params{Name: "Lender A"}}}
	FindMortgage(results, "Lender A").TotalCost = 42
	if results[0].TotalCost != 42 {
		t.Error("expected FindMortgage to return a pointer into the slice")
	}
}

func TestAssertCurrency(t *testing.T) {
	AssertCurrency(t, "exact", 44.21, 44.21)
	AssertCurrency(t, "within a cent", 44.2097, 44.21)
}
