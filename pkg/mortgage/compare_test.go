package mortgage

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/iwvelando/mortgage-compare/pkg/amortization"
)

func offerOne() Params {
	p := FromYears(255000, 4.01, 1099, 25, 5, amortization.Due)
	p.Name = "Mortgage 1"
	return p
}

func offerTwo() Params {
	p := FromYears(255000, 4.02, 934, 25, 5, amortization.Due)
	p.Name = "Mortgage 2"
	return p
}

func TestEvaluate(t *testing.T) {
	summary, err := Evaluate(offerOne())
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}

	checks := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"MonthlyPayment", summary.MonthlyPayment, 1342.90},
		{"InterestOverFix", summary.InterestOverFix, 46990.35},
		{"TotalCost", summary.TotalCost, 48089.35},
		{"RemainingAtFix", summary.RemainingAtFix, 222155.96},
	}
	for _, c := range checks {
		if math.Abs(c.got-c.expected) > 0.01 {
			t.Errorf("%s = %.4f, expected %.2f", c.name, c.got, c.expected)
		}
	}

	if len(summary.Balances) != 60 {
		t.Fatalf("Balances has %d entries, expected 60", len(summary.Balances))
	}
	if last := summary.Balances[59]; math.Abs(last-summary.RemainingAtFix) > 1e-6 {
		t.Errorf("last balance %.6f, expected %.6f", last, summary.RemainingAtFix)
	}
	for i := 1; i < len(summary.Balances); i++ {
		if summary.Balances[i] >= summary.Balances[i-1] {
			t.Fatalf("balance rose from month %d to %d", i, i+1)
		}
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	first, err := Evaluate(offerTwo())
	if err != nil {
		t.Fatal(err)
	}
	second, err := Evaluate(offerTwo())
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("Evaluate() returned different results for identical input")
	}
}

func TestEvaluateInvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
		field  string
	}{
		{"Zero principal", func(p *Params) { p.Principal = 0 }, "principal"},
		{"Negative rate", func(p *Params) { p.AnnualRatePercent = -1 }, "annualRatePercent"},
		{"Rate above 100%", func(p *Params) { p.AnnualRatePercent = 101 }, "annualRatePercent"},
		{"Negative fees", func(p *Params) { p.UpfrontFees = -1 }, "upfrontFees"},
		{"Zero term", func(p *Params) { p.TermMonths = 0 }, "termMonths"},
		{"Term over 40 years", func(p *Params) { p.TermMonths = 481 }, "termMonths"},
		{"Zero fix", func(p *Params) { p.FixMonths = 0 }, "fixMonths"},
		{"Fix longer than term", func(p *Params) { p.FixMonths = 301 }, "fixMonths"},
		{"Unknown timing", func(p *Params) { p.Timing = amortization.Timing(9) }, "timing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := offerOne()
			tt.mutate(&p)
			_, err := Evaluate(p)
			var inputErr *amortization.InvalidInputError
			if !errors.As(err, &inputErr) {
				t.Fatalf("expected *InvalidInputError, got %v", err)
			}
			if inputErr.Field != tt.field {
				t.Errorf("Field = %q, expected %q", inputErr.Field, tt.field)
			}
		})
	}
}

func TestEvaluateZeroRate(t *testing.T) {
	p := FromYears(120000, 0, 0, 10, 2, amortization.Due)
	summary, err := Evaluate(p)
	if err != nil {
		t.Fatal(err)
	}
	if summary.MonthlyPayment != 1000 {
		t.Errorf("MonthlyPayment = %v, expected 1000", summary.MonthlyPayment)
	}
	if summary.InterestOverFix != 0 {
		t.Errorf("InterestOverFix = %v, expected 0", summary.InterestOverFix)
	}
	if summary.RemainingAtFix != 96000 {
		t.Errorf("RemainingAtFix = %v, expected 96000", summary.RemainingAtFix)
	}
}

func TestCompareTotalCost(t *testing.T) {
	result, err := CompareTotalCost(offerOne(), offerTwo())
	if err != nil {
		t.Fatalf("CompareTotalCost() error = %v", err)
	}
	if result.Cheaper != WinnerB {
		t.Errorf("Cheaper = %v, expected B", result.Cheaper)
	}
	if result.DifferenceAbs != 44.21 {
		t.Errorf("DifferenceAbs = %v, expected 44.21", result.DifferenceAbs)
	}
	if math.Abs(result.CostA-48089.35) > 0.01 || math.Abs(result.CostB-48045.14) > 0.01 {
		t.Errorf("costs = (%.4f, %.4f), expected (48089.35, 48045.14)", result.CostA, result.CostB)
	}
}

func TestCompareTotalCostIsSymmetric(t *testing.T) {
	pairs := [][2]Params{
		{offerOne(), offerTwo()},
		{FromYears(180000, 3.5, 0, 30, 2, amortization.Ordinary), FromYears(180000, 3.2, 1999, 30, 2, amortization.Ordinary)},
		{FromYears(90000, 0, 500, 10, 10, amortization.Due), FromYears(95000, 0.5, 0, 10, 10, amortization.Due)},
	}

	for _, pair := range pairs {
		forward, err := CompareTotalCost(pair[0], pair[1])
		if err != nil {
			t.Fatal(err)
		}
		backward, err := CompareTotalCost(pair[1], pair[0])
		if err != nil {
			t.Fatal(err)
		}
		if forward.CostA != backward.CostB || forward.CostB != backward.CostA {
			t.Errorf("costs not swapped: %+v vs %+v", forward, backward)
		}
		if forward.DifferenceAbs != backward.DifferenceAbs {
			t.Errorf("difference changed: %v vs %v", forward.DifferenceAbs, backward.DifferenceAbs)
		}
		flipped := map[Winner]Winner{WinnerA: WinnerB, WinnerB: WinnerA, NoWinner: NoWinner}
		if backward.Cheaper != flipped[forward.Cheaper] {
			t.Errorf("winner not flipped: %v then %v", forward.Cheaper, backward.Cheaper)
		}
		if forward.DifferenceAbs < 0 {
			t.Errorf("negative difference %v", forward.DifferenceAbs)
		}
	}
}

func TestCompareTotalCostTie(t *testing.T) {
	result, err := CompareTotalCost(offerOne(), offerOne())
	if err != nil {
		t.Fatal(err)
	}
	if result.Cheaper != NoWinner {
		t.Errorf("Cheaper = %v, expected none", result.Cheaper)
	}
	if result.DifferenceAbs != 0 {
		t.Errorf("DifferenceAbs = %v, expected 0", result.DifferenceAbs)
	}
}

func TestCompareTotalCostInvalid(t *testing.T) {
	bad := offerTwo()
	bad.FixMonths = 400
	_, err := CompareTotalCost(offerOne(), bad)
	if !errors.Is(err, amortization.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "mortgage B") {
		t.Errorf("error %q should name mortgage B", err)
	}
}

func TestWinnerText(t *testing.T) {
	for winner, expected := range map[Winner]string{NoWinner: "none", WinnerA: "A", WinnerB: "B"} {
		text, err := winner.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		if string(text) != expected {
			t.Errorf("MarshalText() = %q, expected %q", text, expected)
		}
	}
}
