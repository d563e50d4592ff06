package mortgage

import (
	"fmt"

	"github.com/iwvelando/mortgage-compare/pkg/amortization"
	"github.com/iwvelando/mortgage-compare/pkg/constants"
)

// Offer is one side of a comparison request, quoted in annual terms.
type Offer struct {
	Name              string  `json:"name,omitempty"`
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annualRatePercent"`
	UpfrontFees       float64 `json:"upfrontFees"`
	TermYears         int     `json:"termYears"`
}

// Options are the comparison-wide switches.
//
// AssumeRateContinues and AssumeNoOverpayments are carried for completeness
// but have no effect on the calculation: the comparison always stops at the
// end of the fix and never models overpayments. Turning either off only
// produces a warning.
type Options struct {
	SamePrincipal        bool `json:"samePrincipal"`
	AssumeRateContinues  bool `json:"assumeRateContinues"`
	AssumeNoOverpayments bool `json:"assumeNoOverpayments"`
}

// DefaultOptions mirrors the defaults a borrower starts from.
func DefaultOptions() Options {
	return Options{
		SamePrincipal:        true,
		AssumeRateContinues:  true,
		AssumeNoOverpayments: true,
	}
}

// Request compares offers A and B over a shared fix length.
type Request struct {
	A        Offer               `json:"a"`
	B        Offer               `json:"b"`
	FixYears int                 `json:"fixYears"`
	Timing   amortization.Timing `json:"timing"`
	Options  Options             `json:"options"`
}

// Report is the outcome of Compare.
type Report struct {
	A          Summary    `json:"a"`
	B          Summary    `json:"b"`
	Comparison Comparison `json:"comparison"`
	Warnings   []string   `json:"warnings,omitempty"`
}

// Params resolves the request into the two parameter sets that are evaluated.
// With SamePrincipal set, B borrows A's principal.
func (r Request) Params() (Params, Params) {
	a := offerParams(r.A, "Mortgage 1", r.FixYears, r.Timing)
	bOffer := r.B
	if r.Options.SamePrincipal {
		bOffer.Principal = r.A.Principal
	}
	b := offerParams(bOffer, "Mortgage 2", r.FixYears, r.Timing)
	return a, b
}

func offerParams(o Offer, defaultName string, fixYears int, timing amortization.Timing) Params {
	p := FromYears(o.Principal, o.AnnualRatePercent, o.UpfrontFees, o.TermYears, fixYears, timing)
	p.Name = o.Name
	if p.Name == "" {
		p.Name = defaultName
	}
	return p
}

// Warnings lists unusual but accepted inputs.
func (r Request) Warnings() []string {
	var warnings []string

	if !r.Options.AssumeRateContinues {
		warnings = append(warnings,
			"assumeRateContinues=false has no effect: costs are only compared up to the end of the fix")
	}
	if !r.Options.AssumeNoOverpayments {
		warnings = append(warnings,
			"assumeNoOverpayments=false has no effect: overpayments are not modeled")
	}
	if r.Options.SamePrincipal && r.B.Principal != 0 && r.B.Principal != r.A.Principal {
		warnings = append(warnings, fmt.Sprintf(
			"samePrincipal is set so the principal %.2f given for mortgage 2 is replaced by %.2f",
			r.B.Principal, r.A.Principal))
	}

	a, b := r.Params()
	for _, p := range []Params{a, b} {
		if p.Principal > 0 && p.Principal < constants.MinTypicalPrincipal {
			warnings = append(warnings, fmt.Sprintf("%s: principal %.2f is below %.0f",
				p.Name, p.Principal, constants.MinTypicalPrincipal))
		}
		if p.AnnualRatePercent >= 0 && p.AnnualRatePercent < constants.MinAnnualRatePercent {
			warnings = append(warnings, fmt.Sprintf("%s: interest rate %.4f%% is below %.2f%%",
				p.Name, p.AnnualRatePercent, constants.MinAnnualRatePercent))
		}
	}

	return warnings
}

// Compare evaluates both offers with the same code path and reports which is
// cheaper to hold through the fix.
func Compare(r Request) (Report, error) {
	a, b := r.Params()

	summaryA, err := Evaluate(a)
	if err != nil {
		return Report{}, fmt.Errorf("%s: %w", a.Name, err)
	}
	summaryB, err := Evaluate(b)
	if err != nil {
		return Report{}, fmt.Errorf("%s: %w", b.Name, err)
	}

	return Report{
		A:          summaryA,
		B:          summaryB,
		Comparison: compareSummaries(summaryA, summaryB),
		Warnings:   r.Warnings(),
	}, nil
}
