package mortgage

import (
	"fmt"
	"math"

	"github.com/iwvelando/mortgage-compare/pkg/amortization"
	"github.com/iwvelando/mortgage-compare/pkg/mathutil"
)

// Summary holds the outcome of holding one offer through its fix.
type Summary struct {
	Params          Params    `json:"params"`
	MonthlyPayment  float64   `json:"monthlyPayment"`
	InterestOverFix float64   `json:"interestOverFix"`
	TotalCost       float64   `json:"totalCost"`
	RemainingAtFix  float64   `json:"remainingAtFix"`
	Balances        []float64 `json:"balances"` // owed at the end of months 1..FixMonths
}

// Evaluate computes the payment, the interest and cost over the fix, and the
// principal trajectory for one offer.
func Evaluate(p Params) (Summary, error) {
	if err := p.Validate(); err != nil {
		return Summary{}, err
	}

	rate := p.MonthlyRate()
	payment, err := amortization.Payment(p.Principal, rate, p.TermMonths, p.Timing)
	if err != nil {
		return Summary{}, err
	}

	seq, err := amortization.Periods(payment, rate, p.TermMonths, p.Principal, p.FixMonths, p.Timing)
	if err != nil {
		return Summary{}, err
	}
	interest := 0.0
	balances := make([]float64, 0, p.FixMonths)
	for period := range seq {
		interest += period.Interest
		balances = append(balances, period.Balance)
	}

	remaining, err := amortization.FutureBalance(payment, rate, p.FixMonths, p.Principal, p.Timing)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Params:          p,
		MonthlyPayment:  payment,
		InterestOverFix: interest,
		TotalCost:       interest + p.UpfrontFees,
		RemainingAtFix:  remaining,
		Balances:        balances,
	}, nil
}

// Winner identifies the cheaper side of a comparison.
type Winner int

const (
	// NoWinner means both offers cost exactly the same.
	NoWinner Winner = iota
	// WinnerA means the first offer is strictly cheaper.
	WinnerA
	// WinnerB means the second offer is strictly cheaper.
	WinnerB
)

// String returns the name used in reports.
func (w Winner) String() string {
	switch w {
	case WinnerA:
		return "A"
	case WinnerB:
		return "B"
	default:
		return "none"
	}
}

// MarshalText encodes the winner by name.
func (w Winner) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// Comparison is the result of CompareTotalCost.
type Comparison struct {
	CostA   float64 `json:"costA"`
	CostB   float64 `json:"costB"`
	Cheaper Winner  `json:"cheaper"`
	// DifferenceAbs is |CostA-CostB| rounded to minor units, half away from zero.
	DifferenceAbs float64 `json:"differenceAbs"`
}

// CompareTotalCost evaluates both offers and reports which is cheaper to hold
// through its fix.
func CompareTotalCost(a, b Params) (Comparison, error) {
	summaryA, err := Evaluate(a)
	if err != nil {
		return Comparison{}, fmt.Errorf("mortgage A: %w", err)
	}
	summaryB, err := Evaluate(b)
	if err != nil {
		return Comparison{}, fmt.Errorf("mortgage B: %w", err)
	}
	return compareSummaries(summaryA, summaryB), nil
}

func compareSummaries(a, b Summary) Comparison {
	result := Comparison{
		CostA:         a.TotalCost,
		CostB:         b.TotalCost,
		DifferenceAbs: mathutil.RoundCurrency(math.Abs(a.TotalCost - b.TotalCost)),
	}
	switch {
	case a.TotalCost < b.TotalCost:
		result.Cheaper = WinnerA
	case b.TotalCost < a.TotalCost:
		result.Cheaper = WinnerB
	}
	return result
}
