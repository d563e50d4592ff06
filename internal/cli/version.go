package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "mortgage-compare %s\n", Version)
			_, _ = fmt.Fprintf(out, "  Git Commit: %s\n", GitCommit)
			_, _ = fmt.Fprintf(out, "  Build Date: %s\n", BuildDate)
			_, _ = fmt.Fprintf(out, "  Go Version: %s\n", runtime.Version())
			_, _ = fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
