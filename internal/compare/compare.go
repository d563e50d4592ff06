// Package compare runs a configured comparison of two mortgage offers and
// collects everything the presentation layers need to render it.
package compare

import (
	"fmt"

	"github.com/iwvelando/mortgage-compare/internal/config"
	"github.com/iwvelando/mortgage-compare/pkg/constants"
	"github.com/iwvelando/mortgage-compare/pkg/mortgage"
	"go.uber.org/zap"
)

// Result holds the comparison report together with presentation settings.
type Result struct {
	Report   mortgage.Report
	FixYears int
	Currency string
	Warnings []string
}

// Mortgages returns both summaries in display order.
func (r Result) Mortgages() []mortgage.Summary {
	return []mortgage.Summary{r.Report.A, r.Report.B}
}

// GetComparison converts the configuration into a request and evaluates it.
func GetComparison(logger *zap.Logger, conf config.Configuration) (Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	req, err := conf.ToRequest()
	if err != nil {
		return Result{}, fmt.Errorf("invalid comparison settings: %w", err)
	}

	result, err := Run(logger, req)
	if err != nil {
		return Result{}, err
	}
	result.Currency = conf.Settings.Currency
	if result.Currency == "" {
		result.Currency = constants.DefaultCurrencySymbol
	}
	result.Warnings = append(conf.ValidateConfiguration(), result.Warnings...)
	return result, nil
}

// Run evaluates a comparison request.
func Run(logger *zap.Logger, req mortgage.Request) (Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	report, err := mortgage.Compare(req)
	if err != nil {
		return Result{}, fmt.Errorf("failed to compare mortgages: %w", err)
	}

	for _, summary := range []mortgage.Summary{report.A, report.B} {
		logger.Debug(fmt.Sprintf("%s: payment %.2f, interest over fix %.2f, remaining %.2f",
			summary.Params.Name, summary.MonthlyPayment, summary.InterestOverFix, summary.RemainingAtFix),
			zap.String("op", "compare.Run"),
			zap.Float64("rate", summary.Params.AnnualRatePercent),
			zap.Int("termMonths", summary.Params.TermMonths),
			zap.Int("fixMonths", summary.Params.FixMonths),
		)
	}
	logger.Debug("comparison complete",
		zap.String("op", "compare.Run"),
		zap.Stringer("cheaper", report.Comparison.Cheaper),
		zap.Float64("difference", report.Comparison.DifferenceAbs),
	)

	return Result{
		Report:   report,
		FixYears: req.FixYears,
		Currency: constants.DefaultCurrencySymbol,
		Warnings: report.Warnings,
	}, nil
}
