package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leaplint/internal/lsp"
)

// NewLSPCommand creates the lsp command.
func NewLSPCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		Long: `Start the LSP server for editor integration.

The server communicates over stdin/stdout using JSON-RPC. Open SQL
documents are linted on every change and fixable findings are offered
as quick fixes, together with a "fix all" source action. Configuration
is read from the directory the editor starts the server in.`,
		Example: `  # Start the server (usually launched by an editor)
  leaplint lsp`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, err := NewCommandContext(cmd, "")
			if err != nil {
				return err
			}
			d, err := cmdCtx.Dialect()
			if err != nil {
				return err
			}
			lintCfg, err := buildLintConfig(cmdCtx.Cfg, &LintOptions{})
			if err != nil {
				return err
			}

			server := lsp.NewServer(cmd.InOrStdin(), cmd.OutOrStdout(), lsp.Options{
				Dialect: d,
				Lint:    lintCfg,
				Version: version,
				Logger:  cmdCtx.Logger,
			})
			return server.Run(cmd.Context())
		},
	}
}
