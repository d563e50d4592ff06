// Package mortgage models a fixed-rate mortgage offer and compares two offers
// over a shared fix period. Inputs use annual percentages and years or months;
// the amortization package does the per-period math.
package mortgage

import (
	"fmt"

	"github.com/iwvelando/mortgage-compare/pkg/amortization"
	"github.com/iwvelando/mortgage-compare/pkg/constants"
	"github.com/iwvelando/mortgage-compare/pkg/mathutil"
)

// Params describes one mortgage offer.
type Params struct {
	Name              string              `json:"name,omitempty" yaml:"name,omitempty"`
	Principal         float64             `json:"principal" yaml:"principal"`
	AnnualRatePercent float64             `json:"annualRatePercent" yaml:"annualRatePercent"`
	UpfrontFees       float64             `json:"upfrontFees" yaml:"upfrontFees"`
	TermMonths        int                 `json:"termMonths" yaml:"termMonths"`
	FixMonths         int                 `json:"fixMonths" yaml:"fixMonths"`
	Timing            amortization.Timing `json:"timing" yaml:"timing"`
}

// MonthlyRate converts the annual percentage into the per-month rate.
func (p Params) MonthlyRate() float64 {
	return mathutil.PercentToMonthlyRate(p.AnnualRatePercent)
}

// Validate rejects any parameter outside the supported range. Nothing is
// clamped; the caller must re-solicit valid input.
func (p Params) Validate() error {
	if !mathutil.IsFinite(p.Principal) || p.Principal <= 0 {
		return invalid("principal", p.Principal, "must be a positive amount")
	}
	if !mathutil.IsFinite(p.AnnualRatePercent) || p.AnnualRatePercent < 0 {
		return invalid("annualRatePercent", p.AnnualRatePercent, "must not be negative")
	}
	if p.AnnualRatePercent > constants.MaxAnnualRatePercent {
		return invalid("annualRatePercent", p.AnnualRatePercent,
			fmt.Sprintf("must not exceed %.0f percent", constants.MaxAnnualRatePercent))
	}
	if !mathutil.IsFinite(p.UpfrontFees) || p.UpfrontFees < 0 {
		return invalid("upfrontFees", p.UpfrontFees, "must not be negative")
	}
	if p.TermMonths <= 0 || p.TermMonths > constants.MaxTermMonths {
		return invalid("termMonths", p.TermMonths,
			fmt.Sprintf("must be between 1 and %d", constants.MaxTermMonths))
	}
	if p.FixMonths <= 0 {
		return invalid("fixMonths", p.FixMonths, "must be at least one month")
	}
	if p.FixMonths > p.TermMonths {
		return invalid("fixMonths", p.FixMonths,
			fmt.Sprintf("must not exceed the %d-month term", p.TermMonths))
	}
	if p.Timing != amortization.Ordinary && p.Timing != amortization.Due {
		return invalid("timing", int(p.Timing), "expected ordinary or due")
	}
	return nil
}

// YearsToMonths converts a whole number of years into months.
func YearsToMonths(years int) int {
	return years * constants.MonthsPerYear
}

// FromYears builds Params from the units a borrower is quoted in.
func FromYears(principal, ratePercent, fees float64, termYears, fixYears int, timing amortization.Timing) Params {
	return Params{
		Principal:         principal,
		AnnualRatePercent: ratePercent,
		UpfrontFees:       fees,
		TermMonths:        YearsToMonths(termYears),
		FixMonths:         YearsToMonths(fixYears),
		Timing:            timing,
	}
}

func invalid(field string, value interface{}, reason string) error {
	return &amortization.InvalidInputError{Field: field, Value: value, Reason: reason}
}
