package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAll(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, run(root, "all", ""))

	for _, name := range []string{
		"cli/index.md", "cli/lint.md", "cli/rules.md",
		"rules/index.md", "rules/layout.md",
		"dialects/index.md", "dialects/ansi.md", "dialects/redshift.md",
		"configuration.md",
	} {
		assert.FileExists(t, filepath.Join(root, "docs", name))
	}

	layout, err := os.ReadFile(filepath.Join(root, "docs", "rules", "layout.md"))
	require.NoError(t, err)
	assert.Contains(t, string(layout), "## LT08 - layout.cte_newline {#lt08}")
	assert.Contains(t, string(layout), "`comma_style`")
	assert.Zero(t, strings.Count(string(layout), "```")%2)

	lintPage, err := os.ReadFile(filepath.Join(root, "docs", "cli", "lint.md"))
	require.NoError(t, err)
	assert.Contains(t, string(lintPage), "leaplint lint [paths...]")
	assert.Contains(t, string(lintPage), "`--fix`")
}

func TestGenerateUnknown(t *testing.T) {
	err := run(t.TempDir(), "nope", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown -gen value")
}

func TestMarkdownTableEscapesPipes(t *testing.T) {
	w := NewMarkdownWriter()
	w.Table([]string{"A", "B"}, [][]string{{"x|y", "z"}})
	assert.Equal(t, "| A | B |\n| --- | --- |\n| x\\|y | z |\n\n", string(w.Bytes()))
}

func TestJoinWrapped(t *testing.T) {
	assert.Equal(t, "a, b,\nc", joinWrapped([]string{"a", "b", "c"}, 2))
	assert.Empty(t, joinWrapped(nil, 2))
}

func TestCLIPages(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, generateCLIDocs(dir))

	index, err := os.ReadFile(filepath.Join(dir, "index.md"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "leaplint lint --fix models/")
	assert.Contains(t, string(index), "| `max_loops` | `LEAPLINT_MAX_LOOPS` | `--max-loops` |")
	assert.Contains(t, string(index), "| `output` | `LEAPLINT_OUTPUT` | `--output`, `--format` |")

	lintPage, err := os.ReadFile(filepath.Join(dir, "lint.md"))
	require.NoError(t, err)
	page := string(lintPage)
	assert.Contains(t, page, "- `paths` (optional, repeatable)")
	assert.Contains(t, page, "| `--workers` |  | `workers` |")
	assert.Contains(t, page, "### Fix what can be fixed")
	assert.Contains(t, page, "[`leaplint rules`](/cli/rules)")

	parsePage, err := os.ReadFile(filepath.Join(dir, "parse.md"))
	require.NoError(t, err)
	assert.Contains(t, string(parsePage), "- `file` (required)")
}

func TestUseArgs(t *testing.T) {
	tests := []struct {
		use  string
		want []argument
	}{
		{"version", nil},
		{"lint [paths...]", []argument{{name: "paths", repeatable: true}}},
		{"parse <file>", []argument{{name: "file", required: true}}},
		{"rules [rule-id]", []argument{{name: "rule-id"}}},
	}
	for _, tt := range tests {
		t.Run(tt.use, func(t *testing.T) {
			assert.Equal(t, tt.want, useArgs(tt.use))
		})
	}
}

func TestParseExamples(t *testing.T) {
	got := parseExamples(`  # List all rules
  leaplint rules

  # Show one
  leaplint rules LT08
  leaplint rules lt08`)
	assert.Equal(t, []example{
		{title: "List all rules", lines: []string{"leaplint rules"}},
		{title: "Show one", lines: []string{"leaplint rules LT08", "leaplint rules lt08"}},
	}, got)
	assert.Empty(t, parseExamples(""))
}
