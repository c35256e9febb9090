package main

import (
	"fmt"
	"log"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/leapstack-labs/leaplint/internal/cli/output"
	"github.com/leapstack-labs/leaplint/pkg/core"
	"github.com/leapstack-labs/leaplint/pkg/lint"
	_ "github.com/leapstack-labs/leaplint/pkg/lint/rules"
)

// groupDescriptions provides human-readable descriptions for rule groups.
var groupDescriptions = map[string]string{
	"layout": "Rules about whitespace and line structure.",
}

// generateRuleDocs writes an index and one page per rule group.
func generateRuleDocs(outDir string) error {
	log.Printf("Generating rule docs to %s", outDir)

	grouped := groupRules(lint.AllRules())
	groups := slices.Sorted(maps.Keys(grouped))

	if err := generateRuleIndex(outDir, groups, grouped); err != nil {
		return err
	}
	log.Printf("  Generated index.md")

	for _, group := range groups {
		if err := generateGroupPage(outDir, group, grouped[group]); err != nil {
			return err
		}
		log.Printf("  Generated %s.md", group)
	}
	return nil
}

func generateRuleIndex(outDir string, groups []string, grouped map[string][]core.RuleInfo) error {
	w := NewMarkdownWriter()

	w.Frontmatter("Lint Rules", "Lint rules for leaplint")
	w.GeneratedMarker()

	w.Header(1, "Lint Rules")
	total := 0
	for _, rules := range grouped {
		total += len(rules)
	}
	w.Paragraph(fmt.Sprintf("leaplint ships **%d rules** in %d groups.", total, len(groups)))

	w.Header(2, "Severity Levels")
	w.Table(
		[]string{"Severity", "Description"},
		[][]string{
			{InlineCode("error"), "Critical issue that should be fixed"},
			{InlineCode("warning"), "Potential issue that should be reviewed"},
			{InlineCode("info"), "Informational feedback"},
			{InlineCode("hint"), "Suggestion for improvement"},
		},
	)

	w.Header(2, "Configuration")
	w.Paragraph("Rules can be configured in `leaplint.yaml`:")
	w.CodeBlock("yaml", `lint:
  disabled: [LT12]        # disable rules
  severity:
    LT08: error           # override severity
  rules:
    LT08:
      comma_style: leading  # rule-specific option`)

	w.Header(2, "Rules")
	var rows [][]string
	for _, group := range groups {
		for _, rule := range grouped[group] {
			fixable := ""
			if rule.AutoFixable {
				fixable = "yes"
			}
			link := fmt.Sprintf("[%s](/rules/%s#%s)", InlineCode(rule.ID), group, strings.ToLower(rule.ID))
			rows = append(rows, []string{link, rule.Name, InlineCode(rule.DefaultSeverity.String()), fixable, cleanDescription(rule.Description)})
		}
	}
	w.Table([]string{"ID", "Name", "Severity", "Fixable", "Description"}, rows)

	return os.WriteFile(filepath.Join(outDir, "index.md"), w.Bytes(), 0o600)
}

func generateGroupPage(outDir, group string, rules []core.RuleInfo) error {
	w := NewMarkdownWriter()
	title := output.Title(group) + " Rules"

	w.Frontmatter(title, fmt.Sprintf("%s lint rules for leaplint", output.Title(group)))
	w.GeneratedMarker()

	w.Header(1, title)
	if desc, ok := groupDescriptions[group]; ok {
		w.Paragraph(desc)
	}
	for _, rule := range rules {
		writeRuleDoc(w, rule)
	}

	return os.WriteFile(filepath.Join(outDir, group+".md"), w.Bytes(), 0o600)
}

// groupRules organizes rules by group, sorted by ID within each group.
func groupRules(rules []core.RuleInfo) map[string][]core.RuleInfo {
	grouped := make(map[string][]core.RuleInfo)
	for _, r := range rules {
		grouped[r.Group] = append(grouped[r.Group], r)
	}
	for _, rs := range grouped {
		slices.SortFunc(rs, func(a, b core.RuleInfo) int { return strings.Compare(a.ID, b.ID) })
	}
	return grouped
}

// writeRuleDoc writes detailed documentation for a single rule.
func writeRuleDoc(w *MarkdownWriter, rule core.RuleInfo) {
	// ## LT08 - layout.cte_newline {#lt08}
	w.Line(fmt.Sprintf("## %s - %s {#%s}", rule.ID, rule.Name, strings.ToLower(rule.ID)))
	w.Newline()

	w.Line(fmt.Sprintf("%s %s", Bold("Severity:"), InlineCode(rule.DefaultSeverity.String())))
	if rule.AutoFixable {
		w.Line(Bold("Fixable:") + " yes")
	}
	w.Newline()

	w.Paragraph(cleanDescription(rule.Description))

	if rule.Rationale != "" {
		w.Header(3, "Why This Matters")
		w.Paragraph(rule.Rationale)
	}
	if rule.BadExample != "" {
		w.Header(3, "Bad")
		w.CodeBlock("sql", rule.BadExample)
	}
	if rule.GoodExample != "" {
		w.Header(3, "Good")
		w.CodeBlock("sql", rule.GoodExample)
	}
	if rule.Fix != "" {
		w.Header(3, "How to Fix")
		w.Paragraph(rule.Fix)
	}
	if len(rule.ConfigKeys) > 0 {
		w.Header(3, "Configuration")
		w.Paragraph(fmt.Sprintf("This rule accepts the following options: %s",
			InlineCode(strings.Join(rule.ConfigKeys, ", "))))
	}
	if len(rule.Dialects) > 0 {
		w.Line(fmt.Sprintf("%s %s", Bold("Dialects:"), strings.Join(rule.Dialects, ", ")))
		w.Newline()
	}

	w.Line("---")
	w.Newline()
}
