// Package config defines the data structures related to configuration and
// includes functions for loading the comparison file and turning it into a
// comparison request.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/mortgage-compare/pkg/amortization"
	"github.com/iwvelando/mortgage-compare/pkg/constants"
	"github.com/iwvelando/mortgage-compare/pkg/mortgage"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for mortgage-compare.
type Configuration struct {
	Settings  Settings      `yaml:"settings"`
	Mortgages []Mortgage    `yaml:"mortgages"`
	Logging   LoggingConfig `yaml:"logging,omitempty"`
	Output    OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// Settings holds the parameters shared by both mortgages.
type Settings struct {
	SamePrincipal        bool    `yaml:"samePrincipal"`
	FixYears             int     `yaml:"fixYears"`
	Timing               string  `yaml:"timing"` // due, ordinary
	Currency             string  `yaml:"currency"`
	AssumeRateContinues  bool    `yaml:"assumeRateContinues"`
	AssumeNoOverpayments bool    `yaml:"assumeNoOverpayments"`
	Principal            float64 `yaml:"principal,omitempty"` // shared principal, used when samePrincipal is set
}

// Mortgage is one offer as written in the comparison file.
type Mortgage struct {
	Name         string  `yaml:"name"`
	Principal    float64 `yaml:"principal,omitempty"`
	InterestRate float64 `yaml:"interestRate"` // annual percent
	Fees         float64 `yaml:"fees"`
	TermYears    int     `yaml:"termYears"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("settings.samePrincipal", true)
	v.SetDefault("settings.fixYears", constants.DefaultFixYears)
	v.SetDefault("settings.timing", amortization.Due.String())
	v.SetDefault("settings.currency", constants.DefaultCurrencySymbol)
	v.SetDefault("settings.assumeRateContinues", true)
	v.SetDefault("settings.assumeNoOverpayments", true)
	v.SetDefault("settings.principal", 0)
	v.SetDefault("output.format", "")
	v.SetDefault("logging.level", "")
	v.SetDefault("logging.format", "")
	v.SetDefault("logging.outputFile", "")
	return v
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}
	return decode(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}
	return decode(v)
}

// Default returns the configuration used when no file is given: the two
// offers a borrower is first shown.
func Default() *Configuration {
	return &Configuration{
		Settings: Settings{
			SamePrincipal:        true,
			FixYears:             constants.DefaultFixYears,
			Timing:               amortization.Due.String(),
			Currency:             constants.DefaultCurrencySymbol,
			AssumeRateContinues:  true,
			AssumeNoOverpayments: true,
		},
		Mortgages: []Mortgage{
			{Name: "Mortgage 1", Principal: 255000, InterestRate: 4.01, Fees: 1099, TermYears: constants.DefaultTermYears},
			{Name: "Mortgage 2", InterestRate: 4.02, Fees: 934, TermYears: constants.DefaultTermYears},
		},
	}
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	for i := range configuration.Mortgages {
		if configuration.Mortgages[i].TermYears == 0 {
			configuration.Mortgages[i].TermYears = constants.DefaultTermYears
		}
	}
	return &configuration, nil
}

// ToRequest converts the configuration into a comparison request. Exactly
// two mortgages are required.
func (c *Configuration) ToRequest() (mortgage.Request, error) {
	if len(c.Mortgages) != 2 {
		return mortgage.Request{}, fmt.Errorf("expected exactly 2 mortgages, got %d", len(c.Mortgages))
	}

	timing, err := amortization.ParseTiming(c.Settings.Timing)
	if err != nil {
		return mortgage.Request{}, fmt.Errorf("settings.timing: %w", err)
	}

	offers := make([]mortgage.Offer, 2)
	for i, m := range c.Mortgages {
		offers[i] = mortgage.Offer{
			Name:              m.Name,
			Principal:         m.Principal,
			AnnualRatePercent: m.InterestRate,
			UpfrontFees:       m.Fees,
			TermYears:         m.TermYears,
		}
	}
	if c.Settings.SamePrincipal && c.Settings.Principal > 0 {
		offers[0].Principal = c.Settings.Principal
	}

	return mortgage.Request{
		A:        offers[0],
		B:        offers[1],
		FixYears: c.Settings.FixYears,
		Timing:   timing,
		Options: mortgage.Options{
			SamePrincipal:        c.Settings.SamePrincipal,
			AssumeRateContinues:  c.Settings.AssumeRateContinues,
			AssumeNoOverpayments: c.Settings.AssumeNoOverpayments,
		},
	}, nil
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	seen := make(map[string]bool)
	for i, m := range c.Mortgages {
		if m.Name == "" {
			continue
		}
		if seen[m.Name] {
			warnings = append(warnings, fmt.Sprintf("mortgage %d reuses the name '%s'", i+1, m.Name))
		}
		seen[m.Name] = true
	}

	for i, m := range c.Mortgages {
		if c.Settings.FixYears > 0 && c.Settings.FixYears == m.TermYears {
			warnings = append(warnings, fmt.Sprintf(
				"mortgage %d: the %d-year fix covers the whole term, so no principal remains at the end of the fix",
				i+1, c.Settings.FixYears))
		}
	}

	if c.Settings.SamePrincipal && c.Settings.Principal > 0 && len(c.Mortgages) > 0 &&
		c.Mortgages[0].Principal > 0 && c.Mortgages[0].Principal != c.Settings.Principal {
		warnings = append(warnings, fmt.Sprintf(
			"settings.principal %.2f overrides the principal %.2f given for mortgage 1",
			c.Settings.Principal, c.Mortgages[0].Principal))
	}

	return warnings
}
