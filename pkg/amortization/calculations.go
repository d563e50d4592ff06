// Package amortization provides the annuity math for fixed-rate loans:
// periodic payment, per-period interest components and the future value of
// the outstanding balance. All rates are per period and all durations are
// counted in periods. Balances are positive amounts still owed and payments
// are positive amounts paid.
package amortization

import (
	"fmt"
	"math"
	"strings"

	"github.com/iwvelando/mortgage-compare/pkg/mathutil"
)

// Timing selects when in each period a payment is made.
type Timing int

const (
	// Ordinary payments are made at the end of each period.
	Ordinary Timing = iota
	// Due payments are made at the start of each period (annuity-due).
	Due
)

// String returns the canonical name of the timing.
func (t Timing) String() string {
	switch t {
	case Ordinary:
		return "ordinary"
	case Due:
		return "due"
	default:
		return fmt.Sprintf("Timing(%d)", int(t))
	}
}

// MarshalText encodes the timing by name.
func (t Timing) MarshalText() ([]byte, error) {
	if t != Ordinary && t != Due {
		return nil, fmt.Errorf("unknown payment timing %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText decodes a timing name accepted by ParseTiming.
func (t *Timing) UnmarshalText(text []byte) error {
	parsed, err := ParseTiming(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseTiming accepts "ordinary"/"end" and "due"/"start"/"begin".
func ParseTiming(value string) (Timing, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "ordinary", "end":
		return Ordinary, nil
	case "due", "start", "begin":
		return Due, nil
	default:
		return Ordinary, invalid("timing", value, "expected ordinary or due")
	}
}

// factor is 1 for ordinary annuities and 1+rate for annuities-due.
func (t Timing) factor(rate float64) float64 {
	if t == Due {
		return 1 + rate
	}
	return 1
}

func validateTiming(timing Timing) error {
	if timing != Ordinary && timing != Due {
		return invalid("timing", int(timing), "expected ordinary or due")
	}
	return nil
}

func validateLoan(principal, rate float64, termMonths int) error {
	if !mathutil.IsFinite(principal) || principal <= 0 {
		return invalid("principal", principal, "must be a positive amount")
	}
	if !mathutil.IsFinite(rate) || rate < 0 {
		return invalid("rate", rate, "must not be negative")
	}
	if termMonths <= 0 {
		return invalid("term", termMonths, "must be at least one period")
	}
	return nil
}

func validatePayment(payment float64) error {
	if !mathutil.IsFinite(payment) || payment < 0 {
		return invalid("payment", payment, "must not be negative")
	}
	return nil
}

// Payment calculates the level periodic payment that fully amortizes
// principal over termMonths periods at the given per-period rate.
func Payment(principal, rate float64, termMonths int, timing Timing) (float64, error) {
	if err := validateLoan(principal, rate, termMonths); err != nil {
		return 0, err
	}
	if err := validateTiming(timing); err != nil {
		return 0, err
	}

	if rate == 0 {
		return principal / float64(termMonths), nil
	}

	discountFactor := 1 - math.Pow(1+rate, -float64(termMonths))
	return rate * principal / discountFactor / timing.factor(rate), nil
}

// FutureBalance returns the principal still owed after nPeriods payments of
// the given size.
func FutureBalance(payment, rate float64, nPeriods int, principal float64, timing Timing) (float64, error) {
	if err := validateLoan(principal, rate, 1); err != nil {
		return 0, err
	}
	if err := validatePayment(payment); err != nil {
		return 0, err
	}
	if nPeriods < 0 {
		return 0, invalid("periods", nPeriods, "must not be negative")
	}
	if err := validateTiming(timing); err != nil {
		return 0, err
	}
	return futureBalance(payment, rate, nPeriods, principal, timing), nil
}

func futureBalance(payment, rate float64, nPeriods int, principal float64, timing Timing) float64 {
	n := float64(nPeriods)
	if rate == 0 {
		return principal - payment*n
	}
	growth := math.Pow(1+rate, n)
	return principal*growth - payment*timing.factor(rate)*(growth-1)/rate
}

// InterestPayment returns the interest component of the payment made in the
// given period (1-based). For annuities-due the first payment carries no
// interest because nothing has accrued yet.
func InterestPayment(rate float64, period, termMonths int, principal, payment float64, timing Timing) (float64, error) {
	if err := validateLoan(principal, rate, termMonths); err != nil {
		return 0, err
	}
	if err := validatePayment(payment); err != nil {
		return 0, err
	}
	if err := validateTiming(timing); err != nil {
		return 0, err
	}
	if period < 1 || period > termMonths {
		return 0, invalid("period", period, fmt.Sprintf("must be between 1 and %d", termMonths))
	}

	if timing == Due && period == 1 {
		return 0, nil
	}
	interest := futureBalance(payment, rate, period-1, principal, timing) * rate
	return interest / timing.factor(rate), nil
}
