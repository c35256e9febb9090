package commands

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leaplint/internal/cli/config"
	"github.com/leapstack-labs/leaplint/internal/testutil"
)

// executeCommand runs args against a minimal root that loads config from
// workDir the way the real root does, and returns combined output.
func executeCommand(t *testing.T, workDir string, args ...string) (string, error) {
	t.Helper()
	return execute(t, workDir, nil, args...)
}

// executeCommandWithInput is executeCommand with stdin set to input.
func executeCommandWithInput(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	return execute(t, "", strings.NewReader(input), args...)
}

func execute(t *testing.T, workDir string, stdin io.Reader, args ...string) (string, error) {
	t.Helper()
	if workDir == "" {
		workDir = t.TempDir()
	}

	root := &cobra.Command{
		Use:           "leaplint",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.NewLoader(workDir).Load("", cmd.Flags())
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			ctx := config.WithConfig(cmd.Context(), cfg)
			cmd.SetContext(config.WithLogger(ctx, testutil.NewTestLogger(t)))
			return nil
		},
	}
	root.PersistentFlags().String("dialect", "", "")
	root.PersistentFlags().StringP("output", "o", "", "")
	root.AddCommand(
		NewLintCommand(),
		NewRulesCommand(),
		NewDialectsCommand(),
		NewParseCommand(),
		NewInitCommand(),
		NewLSPCommand("test"),
		NewVersionCommand(BuildInfo{Version: "test"}),
	)

	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	if stdin != nil {
		root.SetIn(stdin)
	}
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestCommandMetadata(t *testing.T) {
	tests := []struct {
		cmd   *cobra.Command
		use   string
		flags []string
	}{
		{NewLintCommand(), "lint [paths...]", []string{"fix", "watch", "format", "disable", "severity", "rule", "workers", "max-loops"}},
		{NewRulesCommand(), "rules [rule-id]", []string{"group", "verbose", "format"}},
		{NewDialectsCommand(), "dialects [name]", []string{"format", "rules"}},
		{NewParseCommand(), "parse <file>", []string{"format", "code-only"}},
		{NewInitCommand(), "init [directory]", []string{"force"}},
		{NewLSPCommand("test"), "lsp", nil},
	}
	for _, tt := range tests {
		t.Run(tt.use, func(t *testing.T) {
			require.Equal(t, tt.use, tt.cmd.Use)
			require.NotEmpty(t, tt.cmd.Short, "Short should not be empty")
			require.NotEmpty(t, tt.cmd.Example, "Example should not be empty")
			for _, flag := range tt.flags {
				require.NotNil(t, tt.cmd.Flags().Lookup(flag), "flag %q should exist", flag)
			}
		})
	}
}
