package config

import (
	"fmt"

	"github.com/leapstack-labs/leaplint/internal/cli/output"
	"github.com/leapstack-labs/leaplint/pkg/dialect"
	"github.com/leapstack-labs/leaplint/pkg/lint"
)

// Validate checks that the configuration names a registered dialect and
// holds usable values.
func (c *Config) Validate() error {
	if _, err := dialect.Load(c.Dialect); err != nil {
		return fmt.Errorf("dialect: %w", err)
	}
	if _, err := output.ParseMode(c.OutputFormat); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.MaxLoops < 1 {
		return fmt.Errorf("max_loops must be at least 1, got %d", c.MaxLoops)
	}
	if _, err := lint.FromLintConfig(c.Lint); err != nil {
		return err
	}
	return nil
}
