package commands

import (
	"fmt"
	"maps"
	"slices"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/leaplint/internal/cli/output"
	"github.com/leapstack-labs/leaplint/pkg/dialect"
)

// formatYAML is accepted by the dialects command in addition to the
// renderer modes.
const formatYAML = "yaml"

// DialectsOptions holds options for the dialects command.
type DialectsOptions struct {
	Format string
	Rules  bool // List grammar rule names
}

// NewDialectsCommand creates the dialects command.
func NewDialectsCommand() *cobra.Command {
	opts := &DialectsOptions{}
	cmd := &cobra.Command{
		Use:   "dialects [name]",
		Short: "List available SQL dialects",
		Long: `List the registered SQL dialects, the dialect each one derives from,
the size of its grammar rule table and its keyword sets.`,
		Example: `  # List dialects
  leaplint dialects

  # Show the duckdb dialect with its grammar rule names
  leaplint dialects duckdb --rules

  # Dump as YAML
  leaplint dialects --format yaml`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return dialect.List(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDialects(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json, markdown, yaml")
	cmd.Flags().BoolVar(&opts.Rules, "rules", false, "Include grammar rule names")

	return cmd
}

func runDialects(cmd *cobra.Command, args []string, opts *DialectsOptions) error {
	var dialects []*dialect.Dialect
	if len(args) > 0 {
		d, err := dialect.Load(args[0])
		if err != nil {
			return err
		}
		dialects = append(dialects, d)
	} else {
		for _, name := range dialect.List() {
			d, _ := dialect.Get(name)
			dialects = append(dialects, d)
		}
	}

	infos := make([]output.DialectInfo, 0, len(dialects))
	for _, d := range dialects {
		infos = append(infos, dialectInfo(d, opts.Rules))
	}

	if opts.Format == formatYAML {
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(infos); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}

	cmdCtx, err := NewCommandContext(cmd, opts.Format)
	if err != nil {
		return err
	}
	r := cmdCtx.Renderer

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(infos)
	case output.ModeMarkdown:
		r.Println(output.FormatHeader(1, "Dialects"))
		r.Println("")
	default:
		r.Header(1, "Dialects")
	}

	rows := make([]table.Row, 0, len(infos))
	for _, info := range infos {
		parent := info.Parent
		if parent == "" {
			parent = "-"
		}
		rows = append(rows, table.Row{info.Name, parent, info.Rules, len(info.KeywordSets)})
	}
	r.Table(table.Row{"Dialect", "Parent", "Rules", "Keyword Sets"}, rows)

	if len(infos) == 1 {
		renderDialectDetail(r, infos[0])
	}
	return nil
}

func dialectInfo(d *dialect.Dialect, withRules bool) output.DialectInfo {
	names := d.RuleNames()
	info := output.DialectInfo{
		Name:        d.Name(),
		Parent:      d.Parent(),
		Rules:       len(names),
		KeywordSets: make(map[string]int),
	}
	for _, set := range d.KeywordSetNames() {
		info.KeywordSets[set] = len(d.KeywordSet(set))
	}
	if withRules {
		info.RuleNames = names
	}
	return info
}

func renderDialectDetail(r *output.Renderer, info output.DialectInfo) {
	r.Println("")
	markdown := r.EffectiveMode() == output.ModeMarkdown
	if markdown {
		r.Println(output.FormatHeader(2, "Keyword sets"))
		r.Println("")
	} else {
		r.Header(2, "Keyword sets")
	}

	rows := make([]table.Row, 0, len(info.KeywordSets))
	for _, set := range slices.Sorted(maps.Keys(info.KeywordSets)) {
		rows = append(rows, table.Row{set, info.KeywordSets[set]})
	}
	r.Table(table.Row{"Set", "Size"}, rows)

	if len(info.RuleNames) == 0 {
		return
	}
	r.Println("")
	if markdown {
		r.Println(output.FormatHeader(2, "Grammar rules"))
		r.Println("")
		for _, name := range info.RuleNames {
			r.Println("- `" + name + "`")
		}
		return
	}
	r.Header(2, "Grammar rules")
	for _, name := range info.RuleNames {
		r.Println("  " + name)
	}
}
