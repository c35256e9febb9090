package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leaplint/internal/cli/config"
	"github.com/leapstack-labs/leaplint/pkg/lint"
)

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a leaplint.yaml",
		Long: `Write a leaplint.yaml with the selected dialect and the options of every
registered rule at their defaults.`,
		Example: `  # Initialize in current directory
  leaplint init

  # Initialize a postgres project in a new directory
  leaplint init --dialect postgres my-project

  # Force overwrite existing config
  leaplint init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			cmdCtx, err := NewCommandContext(cmd, "")
			if err != nil {
				return err
			}
			d, err := cmdCtx.Dialect()
			if err != nil {
				return err
			}

			path, err := writeInitConfig(dir, d.Name(), force)
			if err != nil {
				return err
			}

			r := cmdCtx.Renderer
			r.StatusLine(path, "success", "")
			r.Println("")
			r.Success("leaplint project initialized!")
			r.Println("")
			r.Println("Next steps:")
			r.Println("  leaplint rules     See what is checked")
			r.Println("  leaplint lint      Lint every .sql file below this directory")
			r.Println("  leaplint lint --fix")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")

	return cmd
}

func writeInitConfig(dir, dialectName string, force bool) (string, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, config.ConfigFileNames[0])
	if _, err := os.Stat(path); err == nil && !force {
		return "", fmt.Errorf("%s already exists. Use --force to overwrite", path)
	}

	if err := os.WriteFile(path, []byte(initConfig(dialectName)), 0o600); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// ruleDefaults holds documented defaults for rule options written by init.
var ruleDefaults = map[string]map[string]string{
	"LT08": {"comma_style": "trailing"},
}

func initConfig(dialectName string) string {
	var b strings.Builder
	b.WriteString("# leaplint configuration\n")
	fmt.Fprintf(&b, "dialect: %s\n", dialectName)
	b.WriteString("\n# Files linted in parallel (0 = one per CPU)\n")
	fmt.Fprintf(&b, "workers: %d\n", config.DefaultWorkers)
	b.WriteString("# Maximum lint/fix passes per file\n")
	fmt.Fprintf(&b, "max_loops: %d\n", config.DefaultMaxLoops)
	b.WriteString("\nlint:\n")
	b.WriteString("  disabled: []\n")
	b.WriteString("  severity: {}\n")
	b.WriteString("  rules:\n")

	wrote := false
	for _, rule := range lint.GetAll() {
		if len(rule.ConfigKeys) == 0 {
			continue
		}
		fmt.Fprintf(&b, "    # %s\n", rule.Description)
		fmt.Fprintf(&b, "    %s:\n", rule.ID)
		for _, key := range rule.ConfigKeys {
			fmt.Fprintf(&b, "      %s: %s\n", key, ruleDefaults[rule.ID][key])
		}
		wrote = true
	}
	if !wrote {
		b.WriteString("    {}\n")
	}
	return b.String()
}
