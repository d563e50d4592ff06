// Package output provides utilities for formatting and displaying comparison results.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iwvelando/mortgage-compare/internal/compare"
	"github.com/iwvelando/mortgage-compare/pkg/constants"
	"github.com/iwvelando/mortgage-compare/pkg/format"
	"github.com/iwvelando/mortgage-compare/pkg/mathutil"
	"github.com/iwvelando/mortgage-compare/pkg/mortgage"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable report.
func PrettyFormat(w io.Writer, result compare.Result) {
	p := message.NewPrinter(language.English)
	money := func(v float64) string { return format.CurrencyWithSymbol(result.Currency, v) }

	for _, summary := range result.Mortgages() {
		params := summary.Params
		_, _ = fmt.Fprintf(w, "--- %s ---\n", params.Name)
		_, _ = fmt.Fprintf(w, "Principal: %s at %.2f%% over %d years (%s payments)\n",
			money(params.Principal), params.AnnualRatePercent,
			params.TermMonths/constants.MonthsPerYear, params.Timing)
		_, _ = fmt.Fprintf(w, "Monthly payment: %s\n", money(summary.MonthlyPayment))
		_, _ = fmt.Fprintf(w, "Interest paid in %d year fix period: %s\n", result.FixYears, money(summary.InterestOverFix))
		_, _ = fmt.Fprintf(w, "Upfront fees: %s\n", money(params.UpfrontFees))
		_, _ = fmt.Fprintf(w, "Total 'cost' over the %d year period: %s\n", result.FixYears, money(summary.TotalCost))
		_, _ = fmt.Fprintf(w, "Principal remaining at end of fix: %s\n\n", money(summary.RemainingAtFix))
	}

	_, _ = fmt.Fprintf(w, "Year | %s | %s\n", result.Report.A.Params.Name, result.Report.B.Params.Name)
	_, _ = fmt.Fprintf(w, "____ | %s | %s\n",
		strings.Repeat("_", len(result.Report.A.Params.Name)), strings.Repeat("_", len(result.Report.B.Params.Name)))
	for month := constants.MonthsPerYear; month <= len(result.Report.A.Balances); month += constants.MonthsPerYear {
		_, _ = fmt.Fprintf(w, "%4d | %s | %s\n", month/constants.MonthsPerYear,
			p.Sprintf("%s%.2f", result.Currency, mathutil.RoundCurrency(balanceAt(result.Report.A, month))),
			p.Sprintf("%s%.2f", result.Currency, mathutil.RoundCurrency(balanceAt(result.Report.B, month))))
	}
	_, _ = fmt.Fprintln(w)

	_, _ = fmt.Fprintln(w, Verdict(result))

	for _, warning := range result.Warnings {
		_, _ = fmt.Fprintf(w, "warning: %s\n", warning)
	}
}

// Verdict states which mortgage is cheaper over the fix and by how much.
func Verdict(result compare.Result) string {
	a, b := result.Report.A.Params.Name, result.Report.B.Params.Name
	diff := format.CurrencyWithSymbol(result.Currency, result.Report.Comparison.DifferenceAbs)
	switch result.Report.Comparison.Cheaper {
	case mortgage.WinnerA:
		return fmt.Sprintf("%s is cheaper than %s by %s", a, b, diff)
	case mortgage.WinnerB:
		return fmt.Sprintf("%s is cheaper than %s by %s", b, a, diff)
	default:
		return fmt.Sprintf("%s and %s cost the same over the %d year fix", a, b, result.FixYears)
	}
}

// CsvFormat outputs the month-by-month principal remaining in comma-separated value format.
func CsvFormat(w io.Writer, result compare.Result) error {
	writer := csv.NewWriter(w)
	a, b := result.Report.A, result.Report.B

	header := []string{"months out", "principal (" + a.Params.Name + ")", "principal (" + b.Params.Name + ")"}
	if err := writer.Write(header); err != nil {
		return err
	}
	for month := 1; month <= len(a.Balances); month++ {
		row := []string{
			strconv.Itoa(month),
			mathutil.FixedCurrency(balanceAt(a, month)),
			mathutil.FixedCurrency(balanceAt(b, month)),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// CsvString returns the CSV output as a string.
func CsvString(result compare.Result) string {
	var builder strings.Builder
	if err := CsvFormat(&builder, result); err != nil {
		return ""
	}
	return builder.String()
}

// JSONFormat outputs the rounded report as indented JSON.
func JSONFormat(w io.Writer, result compare.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewReport(result))
}

// Report is the presentation form of a comparison, with every monetary value
// rounded to minor units.
type Report struct {
	FixYears      int           `json:"fixYears"`
	Currency      string        `json:"currency"`
	Mortgages     []MortgageRow `json:"mortgages"`
	Cheaper       string        `json:"cheaper"`
	CheaperName   string        `json:"cheaperName,omitempty"`
	DifferenceAbs float64       `json:"differenceAbs"`
	Verdict       string        `json:"verdict"`
	Warnings      []string      `json:"warnings,omitempty"`
}

// MortgageRow is one mortgage within a Report.
type MortgageRow struct {
	Name              string    `json:"name"`
	Principal         float64   `json:"principal"`
	AnnualRatePercent float64   `json:"annualRatePercent"`
	UpfrontFees       float64   `json:"upfrontFees"`
	TermMonths        int       `json:"termMonths"`
	FixMonths         int       `json:"fixMonths"`
	Timing            string    `json:"timing"`
	MonthlyPayment    float64   `json:"monthlyPayment"`
	InterestOverFix   float64   `json:"interestOverFix"`
	TotalCost         float64   `json:"totalCost"`
	RemainingAtFix    float64   `json:"remainingAtFix"`
	Balances          []float64 `json:"balances"`
}

// NewReport rounds a comparison result for presentation.
func NewReport(result compare.Result) Report {
	report := Report{
		FixYears:      result.FixYears,
		Currency:      result.Currency,
		Cheaper:       result.Report.Comparison.Cheaper.String(),
		DifferenceAbs: result.Report.Comparison.DifferenceAbs,
		Verdict:       Verdict(result),
		Warnings:      result.Warnings,
	}
	switch result.Report.Comparison.Cheaper {
	case mortgage.WinnerA:
		report.CheaperName = result.Report.A.Params.Name
	case mortgage.WinnerB:
		report.CheaperName = result.Report.B.Params.Name
	}

	for _, summary := range result.Mortgages() {
		balances := make([]float64, len(summary.Balances))
		for i, balance := range summary.Balances {
			balances[i] = mathutil.RoundCurrency(balance)
		}
		report.Mortgages = append(report.Mortgages, MortgageRow{
			Name:              summary.Params.Name,
			Principal:         mathutil.RoundCurrency(summary.Params.Principal),
			AnnualRatePercent: summary.Params.AnnualRatePercent,
			UpfrontFees:       mathutil.RoundCurrency(summary.Params.UpfrontFees),
			TermMonths:        summary.Params.TermMonths,
			FixMonths:         summary.Params.FixMonths,
			Timing:            summary.Params.Timing.String(),
			MonthlyPayment:    mathutil.RoundCurrency(summary.MonthlyPayment),
			InterestOverFix:   mathutil.RoundCurrency(summary.InterestOverFix),
			TotalCost:         mathutil.RoundCurrency(summary.TotalCost),
			RemainingAtFix:    mathutil.RoundCurrency(summary.RemainingAtFix),
			Balances:          balances,
		})
	}
	return report
}

func balanceAt(summary mortgage.Summary, month int) float64 {
	if month < 1 || month > len(summary.Balances) {
		return 0
	}
	return summary.Balances[month-1]
}
