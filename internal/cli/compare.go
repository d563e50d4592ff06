package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/iwvelando/mortgage-compare/internal/compare"
	"github.com/iwvelando/mortgage-compare/internal/config"
	"github.com/iwvelando/mortgage-compare/internal/logging"
	"github.com/iwvelando/mortgage-compare/pkg/constants"
	"github.com/iwvelando/mortgage-compare/pkg/output"
	"github.com/iwvelando/mortgage-compare/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type offerFlags struct {
	principal float64
	rateA     float64
	rateB     float64
	feesA     float64
	feesB     float64
	termA     int
	termB     int
	fixYears  int
	timing    string
}

func compareCmd(logLevel *string) *cobra.Command {
	var configPath string
	var outputFormat string
	var overrides offerFlags

	c := &cobra.Command{
		Use:   "compare",
		Short: "Compare two offers from a comparison file and flag overrides",
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := loadComparison(configPath, cmd.Flags().Changed("config"))
			if err != nil {
				return err
			}
			applyOverrides(cmd, conf, overrides)

			logger, err := logging.New(conf.Logging, *logLevel)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer func() {
				_ = logger.Sync()
			}()

			// CLI override takes precedence over config
			format := conf.Output.Format
			if outputFormat != "" {
				format = outputFormat
			}
			if format == "" {
				format = constants.OutputFormatPretty
			}
			if err := validation.ValidateOutputFormat(format); err != nil {
				return err
			}

			result, err := compare.GetComparison(logger, *conf)
			if err != nil {
				logger.Error("failed to compare mortgages",
					zap.String("op", "cli.compare"),
					zap.Error(err),
				)
				return err
			}

			for _, warning := range result.Warnings {
				logger.Warn("Configuration warning: "+warning,
					zap.String("op", "cli.compare"),
				)
			}

			out := cmd.OutOrStdout()
			switch format {
			case constants.OutputFormatCSV:
				return output.CsvFormat(out, result)
			case constants.OutputFormatJSON:
				return output.JSONFormat(out, result)
			default:
				output.PrettyFormat(out, result)
				return nil
			}
		},
	}

	c.Flags().StringVarP(&configPath, "config", "c", constants.DefaultConfigFile, "path to comparison file")
	c.Flags().StringVarP(&outputFormat, "output-format", "o", "", "type of output override: pretty, csv, json")
	c.Flags().Float64Var(&overrides.principal, "principal", 0, "principal of mortgage 1 (shared when samePrincipal is set)")
	c.Flags().Float64Var(&overrides.rateA, "rate-a", 0, "annual interest rate percent of mortgage 1")
	c.Flags().Float64Var(&overrides.rateB, "rate-b", 0, "annual interest rate percent of mortgage 2")
	c.Flags().Float64Var(&overrides.feesA, "fees-a", 0, "upfront fees of mortgage 1")
	c.Flags().Float64Var(&overrides.feesB, "fees-b", 0, "upfront fees of mortgage 2")
	c.Flags().IntVar(&overrides.termA, "term-a", 0, "term of mortgage 1 in years")
	c.Flags().IntVar(&overrides.termB, "term-b", 0, "term of mortgage 2 in years")
	c.Flags().IntVar(&overrides.fixYears, "fix-years", 0, "length of the fix in years")
	c.Flags().StringVar(&overrides.timing, "timing", "", "payment timing: due or ordinary")
	return c
}

// loadComparison reads the comparison file. The default file may be absent,
// in which case the built-in offers are used; an explicit path must exist.
func loadComparison(path string, explicit bool) (*config.Configuration, error) {
	if !explicit {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return config.Default(), nil
		}
	}

	conf, err := config.LoadConfiguration(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration at %s: %w", path, err)
	}
	return conf, nil
}

func applyOverrides(cmd *cobra.Command, conf *config.Configuration, o offerFlags) {
	flags := cmd.Flags()
	if flags.Changed("fix-years") {
		conf.Settings.FixYears = o.fixYears
	}
	if flags.Changed("timing") {
		conf.Settings.Timing = o.timing
	}

	// A file without exactly two mortgages is rejected later by ToRequest.
	if len(conf.Mortgages) != 2 {
		return
	}
	a, b := &conf.Mortgages[0], &conf.Mortgages[1]

	if flags.Changed("principal") {
		a.Principal = o.principal
		conf.Settings.Principal = 0
	}
	if flags.Changed("rate-a") {
		a.InterestRate = o.rateA
	}
	if flags.Changed("rate-b") {
		b.InterestRate = o.rateB
	}
	if flags.Changed("fees-a") {
		a.Fees = o.feesA
	}
	if flags.Changed("fees-b") {
		b.Fees = o.feesB
	}
	if flags.Changed("term-a") {
		a.TermYears = o.termA
	}
	if flags.Changed("term-b") {
		b.TermYears = o.termB
	}
}
