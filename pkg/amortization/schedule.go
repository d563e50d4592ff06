package amortization

import (
	"fmt"
	"iter"

	"github.com/iwvelando/mortgage-compare/pkg/mathutil"
)

// Period holds the values for a given payment.
type Period struct {
	Number    int
	Payment   float64
	Interest  float64
	Principal float64
	// Balance is the amount owed at the end of the period, matching
	// FutureBalance for the same number of periods.
	Balance float64
}

// Periods returns a lazy, restartable sequence of the first n periods of the
// loan. Each range over the result recomputes from the opening balance.
func Periods(payment, rate float64, termMonths int, principal float64, n int, timing Timing) (iter.Seq[Period], error) {
	if err := validateSchedule(payment, rate, termMonths, principal, n, timing); err != nil {
		return nil, err
	}
	return periods(payment, rate, termMonths, principal, n, timing), nil
}

func periods(payment, rate float64, termMonths int, principal float64, n int, timing Timing) iter.Seq[Period] {
	return func(yield func(Period) bool) {
		balance := principal
		accrued := 0.0
		for k := 1; k <= n; k++ {
			p := Period{Number: k, Payment: payment}
			if timing == Due {
				// Paid at the start of the period: settles interest accrued
				// during the previous period, then the remainder accrues.
				p.Interest = accrued
				afterPayment := balance - payment
				accrued = afterPayment * rate
				balance = afterPayment + accrued
			} else {
				p.Interest = balance * rate
				balance -= payment - p.Interest
			}
			p.Principal = payment - p.Interest
			if k == termMonths && mathutil.IsZero(balance) {
				// Machine error otherwise, so just set to 0.
				balance = 0
			}
			p.Balance = balance
			if !yield(p) {
				return
			}
		}
	}
}

// InterestSeq returns the per-period interest components for periods
// 1..termMonths as a lazy, finite and restartable sequence keyed by period.
func InterestSeq(payment, rate float64, termMonths int, principal float64, timing Timing) (iter.Seq2[int, float64], error) {
	if err := validateSchedule(payment, rate, termMonths, principal, termMonths, timing); err != nil {
		return nil, err
	}
	seq := periods(payment, rate, termMonths, principal, termMonths, timing)
	return func(yield func(int, float64) bool) {
		for p := range seq {
			if !yield(p.Number, p.Interest) {
				return
			}
		}
	}, nil
}

// AccruedInterest sums the interest components of the first fixMonths
// payments of a termMonths loan.
func AccruedInterest(payment, rate float64, termMonths int, principal float64, fixMonths int, timing Timing) (float64, error) {
	if err := validateSchedule(payment, rate, termMonths, principal, 0, timing); err != nil {
		return 0, err
	}
	if fixMonths < 1 || fixMonths > termMonths {
		return 0, invalid("fix", fixMonths, fmt.Sprintf("must be between 1 and the %d-period term", termMonths))
	}

	total := 0.0
	for p := range periods(payment, rate, termMonths, principal, fixMonths, timing) {
		total += p.Interest
	}
	return total, nil
}

// Schedule materializes the first n periods of the loan.
func Schedule(payment, rate float64, termMonths int, principal float64, n int, timing Timing) ([]Period, error) {
	seq, err := Periods(payment, rate, termMonths, principal, n, timing)
	if err != nil {
		return nil, err
	}
	schedule := make([]Period, 0, n)
	for p := range seq {
		schedule = append(schedule, p)
	}
	return schedule, nil
}

func validateSchedule(payment, rate float64, termMonths int, principal float64, n int, timing Timing) error {
	if err := validateLoan(principal, rate, termMonths); err != nil {
		return err
	}
	if err := validatePayment(payment); err != nil {
		return err
	}
	if err := validateTiming(timing); err != nil {
		return err
	}
	if n < 0 || n > termMonths {
		return invalid("periods", n, fmt.Sprintf("must be between 0 and the %d-period term", termMonths))
	}
	return nil
}
