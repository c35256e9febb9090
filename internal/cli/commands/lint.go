package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leaplint/internal/cli/config"
	"github.com/leapstack-labs/leaplint/internal/cli/output"
	"github.com/leapstack-labs/leaplint/internal/runner"
	"github.com/leapstack-labs/leaplint/pkg/core"
	"github.com/leapstack-labs/leaplint/pkg/lint"
)

// ErrLintFailed is returned when a lint run leaves issues or could not
// process a file. The CLI maps it to exit code 1.
var ErrLintFailed = errors.New("lint issues found")

// errUnknownRule is returned for rule IDs that are not registered.
var errUnknownRule = errors.New("unknown lint rule")

// LintOptions holds options for the lint command.
type LintOptions struct {
	Fix      bool     // Apply fixes in place
	Watch    bool     // Re-lint on change
	Format   string   // Output format: text, json, markdown
	Disable  []string // Rule IDs to disable
	Severity string   // Minimum severity: error, warning, info, hint
	Rules    []string // Run only specific rules
}

// NewLintCommand creates the lint command.
func NewLintCommand() *cobra.Command {
	opts := &LintOptions{}
	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Lint SQL files",
		Long: `Parse SQL files with the configured dialect and report layout issues.

Directories are searched for .sql files. With --fix, fixable issues are
rewritten in place and only what remains is reported. Rules can be
configured in leaplint.yaml.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # Lint the project
  leaplint lint

  # Lint specific files with the postgres dialect
  leaplint lint --dialect postgres models/orders.sql

  # Fix what can be fixed
  leaplint lint --fix models/

  # Only run LT08
  leaplint lint --rule LT08

  # Only report warnings and errors
  leaplint lint --severity warning

  # Re-lint on every save
  leaplint lint --watch models/`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Fix, "fix", false, "Apply fixes in place")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Watch paths and re-lint on change")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json, markdown")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")
	cmd.Flags().StringVar(&opts.Severity, "severity", "info", "Minimum severity: error, warning, info, hint")
	cmd.Flags().StringSliceVar(&opts.Rules, "rule", nil, "Run only specific rules")
	cmd.Flags().Int("workers", 0, "Files processed in parallel (0 = one per CPU)")
	cmd.Flags().Int("max-loops", config.DefaultMaxLoops, "Maximum lint/fix passes per file")

	_ = cmd.RegisterFlagCompletionFunc("rule", completeRuleIDs)
	_ = cmd.RegisterFlagCompletionFunc("disable", completeRuleIDs)
	_ = cmd.RegisterFlagCompletionFunc("severity", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"error", "warning", "info", "hint"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func completeRuleIDs(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	rules := lint.GetAll()
	ids := make([]string, 0, len(rules))
	for _, rule := range rules {
		ids = append(ids, rule.ID+"\t"+rule.Name)
	}
	return ids, cobra.ShellCompDirectiveNoFileComp
}

func runLint(cmd *cobra.Command, args []string, opts *LintOptions) error {
	cmdCtx, err := NewCommandContext(cmd, opts.Format)
	if err != nil {
		return err
	}
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	d, err := cmdCtx.Dialect()
	if err != nil {
		return err
	}
	lintCfg, err := buildLintConfig(cfg, opts)
	if err != nil {
		return err
	}
	threshold, ok := core.ParseSeverity(opts.Severity)
	if !ok {
		return fmt.Errorf("unknown severity %q (want error, warning, info or hint)", opts.Severity)
	}

	paths := args
	if len(paths) == 0 {
		root := cfg.ProjectRoot
		if root == "" {
			root = "."
		}
		paths = []string{root}
	}

	run := runner.New(runner.Options{
		Dialect:  d,
		Lint:     lintCfg,
		Fix:      opts.Fix,
		Workers:  cfg.Workers,
		MaxLoops: cfg.MaxLoops,
		Logger:   cmdCtx.Logger,
	})
	cmdCtx.Logger.Debug("linting",
		"dialect", d.Name(),
		"rules", len(run.Linter().Rules()),
		"paths", paths,
		"fix", opts.Fix)

	if opts.Watch {
		_, _ = fmt.Fprintln(r.ErrWriter(), r.Styles().Muted.Render("Watching for changes. Press Ctrl+C to stop."))
		return run.Watch(cmd.Context(), paths, 0, func(results []runner.FileResult) {
			renderLintResults(r, filterBySeverity(results, threshold), opts.Fix)
		})
	}

	results, err := run.Run(cmd.Context(), paths)
	if err != nil {
		return err
	}
	if renderLintResults(r, filterBySeverity(results, threshold), opts.Fix) {
		return ErrLintFailed
	}
	return nil
}

// buildLintConfig merges project lint settings with CLI flags. Flags win.
func buildLintConfig(cfg *config.Config, opts *LintOptions) (*lint.Config, error) {
	var projectLint *config.LintConfig
	if cfg != nil {
		projectLint = cfg.Lint
	}
	lintCfg, err := lint.FromLintConfig(projectLint)
	if err != nil {
		return nil, err
	}

	for _, id := range opts.Disable {
		lintCfg.Disable(id)
	}
	for _, id := range opts.Rules {
		if _, ok := lint.GetByID(strings.TrimSpace(id)); !ok {
			return nil, fmt.Errorf("%q: %w", id, errUnknownRule)
		}
		lintCfg.Select(id)
	}
	return lintCfg, nil
}

// filterBySeverity drops findings below threshold. Parse errors and file
// errors are always kept.
func filterBySeverity(results []runner.FileResult, threshold core.Severity) []runner.FileResult {
	out := make([]runner.FileResult, len(results))
	for i, res := range results {
		out[i] = res
		out[i].Findings = nil
		for _, f := range res.Findings {
			if f.Severity <= threshold {
				out[i].Findings = append(out[i].Findings, f)
			}
		}
	}
	return out
}

// toLintOutput flattens results into report rows and a summary.
func toLintOutput(results []runner.FileResult) output.LintOutput {
	lo := output.LintOutput{
		Files:   []output.LintFileResult{},
		Summary: output.LintSummary{FilesAnalyzed: len(results)},
	}
	for _, res := range results {
		fr := output.LintFileResult{
			Path:        res.Path,
			Fixed:       res.Fixed,
			Diagnostics: []output.LintDiagnostic{},
		}
		if res.Fixed {
			lo.Summary.FilesFixed++
		}
		if res.Fix != nil {
			addFixOutcome(&fr, &lo.Summary, res.Fix)
		}
		if res.Err != nil {
			fr.Error = res.Err.Error()
			lo.Summary.Errors++
			lo.Summary.TotalIssues++
		}

		for _, pe := range res.ParseErrors {
			fr.Diagnostics = append(fr.Diagnostics, output.LintDiagnostic{
				RuleID:   runner.ParseErrorRuleID,
				Severity: core.SeverityError.String(),
				Message:  pe.Message,
				Line:     pe.Pos.Line,
				Column:   pe.Pos.Column,
			})
			lo.Summary.Errors++
			lo.Summary.TotalIssues++
		}

		findings := append([]lint.Finding(nil), res.Findings...)
		lint.SortFindings(findings)
		for _, f := range findings {
			fr.Diagnostics = append(fr.Diagnostics, output.LintDiagnostic{
				RuleID:      f.RuleID,
				Severity:    f.Severity.String(),
				Message:     f.Message,
				Line:        f.Pos.Line,
				Column:      f.Pos.Column,
				EndLine:     f.EndPos.Line,
				EndColumn:   f.EndPos.Column,
				Fixable:     f.AutoFixable(),
				DocumentURL: f.DocumentationURL,
			})
			lo.Summary.TotalIssues++
			switch f.Severity {
			case core.SeverityError:
				lo.Summary.Errors++
			case core.SeverityWarning:
				lo.Summary.Warnings++
			case core.SeverityInfo:
				lo.Summary.Info++
			case core.SeverityHint:
				lo.Summary.Hints++
			}
		}

		if len(fr.Diagnostics) > 0 || fr.Fixed || fr.Error != "" || len(fr.SkippedFixes) > 0 || !converged(fr) {
			lo.Files = append(lo.Files, fr)
		}
	}
	return lo
}

// addFixOutcome records how the fix loop ended for one file.
func addFixOutcome(fr *output.LintFileResult, sum *output.LintSummary, res *lint.FixResult) {
	ok := !res.LoopLimitReached
	fr.Converged = &ok
	fr.FixLoops = res.Loops
	if !ok {
		sum.NotConverged++
	}
	for _, sk := range res.Skipped {
		skipped := output.LintSkippedFix{Operation: sk.Fix.Op.String(), Reason: sk.Reason}
		if sk.Fix.Target != nil {
			pos := sk.Fix.Target.Start()
			skipped.Line, skipped.Column = pos.Line, pos.Column
		}
		fr.SkippedFixes = append(fr.SkippedFixes, skipped)
	}
	sum.SkippedFixes += len(res.Skipped)
}

// converged is false only when fixing ran and hit the loop cap.
func converged(fr output.LintFileResult) bool {
	return fr.Converged == nil || *fr.Converged
}

// renderLintResults prints results and reports whether anything remains.
func renderLintResults(r *output.Renderer, results []runner.FileResult, fixing bool) bool {
	lo := toLintOutput(results)
	failed := lo.Summary.TotalIssues > 0

	switch r.EffectiveMode() {
	case output.ModeJSON:
		_ = r.JSON(lo)
		return failed
	case output.ModeMarkdown:
		renderLintMarkdown(r, lo)
	default:
		renderLintText(r, lo, fixing)
	}

	if lo.Summary.FilesFixed > 0 {
		r.Success(fmt.Sprintf("Fixed %d of %d files", lo.Summary.FilesFixed, lo.Summary.FilesAnalyzed))
	}
	if lo.Summary.NotConverged > 0 || lo.Summary.SkippedFixes > 0 {
		r.Warning(fmt.Sprintf("%d files hit the fix loop limit, %d fixes skipped",
			lo.Summary.NotConverged, lo.Summary.SkippedFixes))
	}
	if !failed {
		r.Success(fmt.Sprintf("No lint issues found in %d files", lo.Summary.FilesAnalyzed))
		return false
	}
	r.Printf("Summary: %s in %d files\n", summaryParts(lo.Summary), lo.Summary.FilesAnalyzed)
	return true
}

func renderLintText(r *output.Renderer, lo output.LintOutput, fixing bool) {
	styles := r.Styles()
	for _, file := range lo.Files {
		clean := len(file.Diagnostics) == 0 && file.Error == "" &&
			len(file.SkippedFixes) == 0 && converged(file)
		if clean {
			r.StatusLine(file.Path, "success", "fixed")
			continue
		}
		r.Println(styles.FilePath.Render(file.Path))
		if file.Error != "" {
			r.Printf("  %s  %s\n", styles.Error.Render("error  "), file.Error)
		}
		if !converged(file) {
			r.Printf("  %s  fix loop limit reached after %d passes\n", styles.Warning.Render("warning"), file.FixLoops)
		}
		for _, sk := range file.SkippedFixes {
			r.Printf("  %s  %s  skipped %s: %s\n",
				styles.Muted.Render(fmt.Sprintf("%-6s", fmt.Sprintf("%d:%d", sk.Line, sk.Column))),
				styles.Muted.Render("fix    "),
				sk.Operation,
				sk.Reason,
			)
		}
		for _, d := range file.Diagnostics {
			loc := fmt.Sprintf("%d:%d", d.Line, d.Column)
			if d.Line == 0 {
				loc = "-"
			}
			fixable := ""
			if d.Fixable && !fixing {
				fixable = styles.Muted.Render(" [fixable]")
			}
			r.Printf("  %s  %s  %s  %s%s\n",
				styles.Muted.Render(fmt.Sprintf("%-6s", loc)),
				severityLabel(styles, d.Severity),
				styles.RuleID.Render(d.RuleID),
				d.Message,
				fixable,
			)
		}
		r.Println("")
	}
}

func renderLintMarkdown(r *output.Renderer, lo output.LintOutput) {
	r.Println(output.FormatHeader(1, "Lint Results"))
	r.Println("")
	for _, file := range lo.Files {
		r.Println(output.FormatHeader(2, file.Path))
		r.Println("")
		if file.Fixed {
			r.Println(output.FormatKeyValue("Fixed", "yes"))
		}
		if !converged(file) {
			r.Println(output.FormatKeyValue("Converged", fmt.Sprintf("no, loop limit reached after %d passes", file.FixLoops)))
		}
		if n := len(file.SkippedFixes); n > 0 {
			r.Println(output.FormatKeyValue("Skipped fixes", strconv.Itoa(n)))
		}
		if file.Error != "" {
			r.Println(output.FormatKeyValue("Error", file.Error))
		}
		if len(file.Diagnostics) > 0 {
			rows := make([]table.Row, 0, len(file.Diagnostics))
			for _, d := range file.Diagnostics {
				rows = append(rows, table.Row{d.Line, d.Column, d.Severity, d.RuleID, d.Message})
			}
			r.Table(table.Row{"Line", "Col", "Severity", "Rule", "Message"}, rows)
		}
		r.Println("")
	}
}

func summaryParts(s output.LintSummary) string {
	parts := []string{fmt.Sprintf("%d issues", s.TotalIssues)}
	for _, p := range []struct {
		n     int
		label string
	}{
		{s.Errors, "errors"},
		{s.Warnings, "warnings"},
		{s.Info, "info"},
		{s.Hints, "hints"},
	} {
		if p.n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", p.n, p.label))
		}
	}
	return strings.Join(parts, ", ")
}

func severityLabel(styles *output.Styles, sev string) string {
	switch sev {
	case "error":
		return styles.Error.Render("error  ")
	case "warning":
		return styles.Warning.Render("warning")
	case "info":
		return styles.Info.Render("info   ")
	case "hint":
		return styles.Muted.Render("hint   ")
	default:
		return styles.Muted.Render("unknown")
	}
}
