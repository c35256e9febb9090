// Package commands implements the leaplint subcommands.
package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leaplint/internal/cli/config"
	"github.com/leapstack-labs/leaplint/internal/cli/output"
	"github.com/leapstack-labs/leaplint/pkg/dialect"
	_ "github.com/leapstack-labs/leaplint/pkg/dialects/all" // register dialects
	_ "github.com/leapstack-labs/leaplint/pkg/lint/rules"   // register rules
)

// CommandContext holds common dependencies for command execution.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the command's context.
// A non-empty format overrides the configured output mode.
func NewCommandContext(cmd *cobra.Command, format string) (*CommandContext, error) {
	cfg := config.FromContext(cmd.Context())
	logger := config.GetLogger(cmd.Context())

	if format == "" {
		format = cfg.OutputFormat
	}
	mode, err := output.ParseMode(format)
	if err != nil {
		return nil, err
	}

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode),
	}, nil
}

// Dialect loads the configured dialect.
func (c *CommandContext) Dialect() (*dialect.Dialect, error) {
	d, err := dialect.Load(c.Cfg.Dialect)
	if err != nil {
		return nil, fmt.Errorf("dialect: %w", err)
	}
	return d, nil
}
