package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leaplint/pkg/dialect"
	"github.com/leapstack-labs/leaplint/pkg/lint"
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version   string
	GitCommit string
	BuildDate string
}

// NewVersionCommand creates the version command.
func NewVersionCommand(info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display leaplint version and build information.`,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "leaplint v%s\n", info.Version)
			_, _ = fmt.Fprintf(w, "commit %s, built %s with %s\n", info.GitCommit, info.BuildDate, runtime.Version())
			_, _ = fmt.Fprintf(w, "%d dialects, %d rules\n", len(dialect.List()), lint.Count())
		},
	}
}
