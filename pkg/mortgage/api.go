package mortgage

import (
	"github.com/iwvelando/mortgage-compare/pkg/amortization"
	"github.com/iwvelando/mortgage-compare/pkg/mathutil"
)

// The functions below take an annual rate in percent and durations in years,
// and convert to monthly units before delegating to the amortization package.

// MonthlyPayment returns the level monthly payment for a loan of termYears.
func MonthlyPayment(principal, ratePercent float64, termYears int, timing amortization.Timing) (float64, error) {
	if err := validateRatePercent(ratePercent); err != nil {
		return 0, err
	}
	return amortization.Payment(principal, mathutil.PercentToMonthlyRate(ratePercent), YearsToMonths(termYears), timing)
}

// AccruedInterest returns the interest paid during the first fixYears of a
// termYears loan repaid with the given monthly payment.
func AccruedInterest(payment, ratePercent float64, termYears int, principal float64, fixYears int, timing amortization.Timing) (float64, error) {
	if err := validateRatePercent(ratePercent); err != nil {
		return 0, err
	}
	return amortization.AccruedInterest(payment, mathutil.PercentToMonthlyRate(ratePercent),
		YearsToMonths(termYears), principal, YearsToMonths(fixYears), timing)
}

// FutureBalance returns the principal still owed after nMonths payments.
func FutureBalance(payment, ratePercent float64, nMonths int, principal float64, timing amortization.Timing) (float64, error) {
	if err := validateRatePercent(ratePercent); err != nil {
		return 0, err
	}
	return amortization.FutureBalance(payment, mathutil.PercentToMonthlyRate(ratePercent), nMonths, principal, timing)
}

func validateRatePercent(ratePercent float64) error {
	if !mathutil.IsFinite(ratePercent) || ratePercent < 0 {
		return invalid("ratePercent", ratePercent, "must not be negative")
	}
	return nil
}
