// Package cli wires the mortgage-compare commands.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// Build metadata, set with -ldflags at release time.
var (
	Version   = "dev"
	GitCommit = "development"
	BuildDate = "unknown"
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:          "mortgage-compare",
		Short:        "Compare the cost of two fixed-rate mortgage offers over their fix",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	cmd.AddCommand(compareCmd(&logLevel))
	cmd.AddCommand(serveCmd(&logLevel))
	cmd.AddCommand(versionCmd())
	return cmd
}
