package lint_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leaplint/internal/testutil"
	"github.com/leapstack-labs/leaplint/pkg/core"
	"github.com/leapstack-labs/leaplint/pkg/dialects/ansi"
	"github.com/leapstack-labs/leaplint/pkg/lint"
	"github.com/leapstack-labs/leaplint/pkg/parser"
	"github.com/leapstack-labs/leaplint/pkg/segment"
)

// upperKeywords flags lower-case keywords and replaces them.
var upperKeywords = lint.RuleDef{
	ID:           "TS01",
	Name:         "test.upper_keywords",
	Group:        "test",
	Description:  "Keywords must be upper case.",
	Severity:     core.SeverityWarning,
	SegmentTypes: []string{segment.TypeKeyword},
	Fix:          "Upper-case the keyword.",
	Check: func(ctx *lint.Context) []lint.Finding {
		raw := ctx.Segment.Raw
		if raw == strings.ToUpper(raw) {
			return nil
		}
		return []lint.Finding{ctx.Report(ctx.Segment, "keyword "+raw+" is not upper case",
			lint.Replace(ctx.Segment, segment.NewKeyword(strings.ToUpper(raw))))}
	},
}

// panics blows up on the first statement it sees.
var panics = lint.RuleDef{
	ID:           "TS02",
	Name:         "test.panics",
	Group:        "test",
	Severity:     core.SeverityInfo,
	SegmentTypes: []string{"statement"},
	Check: func(*lint.Context) []lint.Finding {
		var m map[string]int
		m["boom"]++
		return nil
	},
}

// runaway always wants one more newline at the end of the file.
var runaway = lint.RuleDef{
	ID:           "TS03",
	Name:         "test.runaway",
	Group:        "test",
	Severity:     core.SeverityHint,
	SegmentTypes: []string{segment.TypeFile},
	Check: func(ctx *lint.Context) []lint.Finding {
		last := ctx.Segment.Children[len(ctx.Segment.Children)-1]
		return []lint.Finding{ctx.Report(last, "more", lint.InsertAfter(last, segment.NewNewline()))}
	},
}

// postgresOnly reports every file, but only for postgres.
var postgresOnly = lint.RuleDef{
	ID:           "TS04",
	Name:         "test.postgres_only",
	Group:        "test",
	Severity:     core.SeverityInfo,
	Dialects:     []string{"postgres"},
	SegmentTypes: []string{segment.TypeFile},
	Check: func(ctx *lint.Context) []lint.Finding {
		return []lint.Finding{ctx.Report(ctx.Segment, "postgres file")}
	},
}

func parse(t *testing.T, sql string) *segment.Segment {
	t.Helper()
	tree, err := parser.Parse(sql, ansi.ANSI)
	require.NoError(t, err)
	return tree
}

func ruleIDs(findings []lint.Finding) []string {
	ids := make([]string, len(findings))
	for i, f := range findings {
		ids[i] = f.RuleID
	}
	return ids
}

func TestLint_FindingsCarryRuleMetadata(t *testing.T) {
	tree := parse(t, "select a FROM t")
	l := lint.NewLinter(ansi.ANSI, nil, lint.WithRules(upperKeywords))

	findings := l.Lint(tree)
	require.Len(t, findings, 1)

	f := findings[0]
	assert.Equal(t, "TS01", f.RuleID)
	assert.Equal(t, core.SeverityWarning, f.Severity)
	assert.Equal(t, "1:1", f.Pos.String())
	assert.Equal(t, "1:7", f.EndPos.String())
	assert.Equal(t, "https://leaplint.dev/docs/rules/ts01", f.DocumentationURL)
	assert.True(t, f.AutoFixable())
	assert.False(t, f.Internal)
	assert.Equal(t, []lint.TextEdit{{Pos: f.Pos, EndPos: f.EndPos, NewText: "SELECT"}}, f.TextEdits())
}

func TestLint_DoesNotModifyTree(t *testing.T) {
	tree := parse(t, "select a from t")
	lint.NewLinter(ansi.ANSI, nil, lint.WithRules(upperKeywords)).Lint(tree)
	assert.Equal(t, "select a from t", tree.RawText())
}

func TestLint_PanicBecomesInternalFinding(t *testing.T) {
	tree := parse(t, "select 1;\nselect 2")
	l := lint.NewLinter(ansi.ANSI, nil,
		lint.WithRules(panics, upperKeywords),
		lint.WithLogger(testutil.NewTestLogger(t)),
	)

	findings := l.Lint(tree)

	var internal []lint.Finding
	for _, f := range findings {
		if f.Internal {
			internal = append(internal, f)
		}
	}
	require.Len(t, internal, 1)
	assert.Equal(t, "TS02", internal[0].RuleID)
	assert.Equal(t, core.SeverityError, internal[0].Severity)
	assert.Contains(t, internal[0].Message, "internal error in rule TS02")
	assert.Empty(t, internal[0].Fixes)

	assert.Equal(t, []string{"TS01", "TS01", "TS02"}, ruleIDs(findings))
}

func TestLint_Config(t *testing.T) {
	tests := []struct {
		name    string
		config  func() *lint.Config
		dialect string
		want    []string
	}{
		{
			name:   "all rules",
			config: lint.NewConfig,
			want:   []string{"TS01", "TS01"},
		},
		{
			name:   "disabled",
			config: func() *lint.Config { return lint.NewConfig().Disable("TS01") },
			want:   nil,
		},
		{
			name:   "selected",
			config: func() *lint.Config { return lint.NewConfig().Select("TS04") },
			want:   nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := parse(t, "select a from t")
			l := lint.NewLinter(ansi.ANSI, tt.config(), lint.WithRules(upperKeywords, postgresOnly))
			assert.Equal(t, tt.want, nilIfEmpty(ruleIDs(l.Lint(tree))))
		})
	}
}

func nilIfEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}

func TestLint_SeverityOverride(t *testing.T) {
	tree := parse(t, "select 1")
	cfg := lint.NewConfig().SetSeverity("TS01", core.SeverityError)

	findings := lint.NewLinter(ansi.ANSI, cfg, lint.WithRules(upperKeywords)).Lint(tree)
	require.Len(t, findings, 1)
	assert.Equal(t, core.SeverityError, findings[0].Severity)
}

func TestNewLinter_RulesSortedAndFiltered(t *testing.T) {
	l := lint.NewLinter(ansi.ANSI, nil, lint.WithRules(runaway, postgresOnly, upperKeywords))

	var ids []string
	for _, r := range l.Rules() {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"TS01", "TS03"}, ids)
}

func TestFix_ReachesFixedPoint(t *testing.T) {
	tree := parse(t, "select a from t where b = 1")
	l := lint.NewLinter(ansi.ANSI, nil, lint.WithRules(upperKeywords))

	res, err := l.Fix(tree)
	require.NoError(t, err)

	assert.Equal(t, "SELECT a FROM t WHERE b = 1", tree.RawText())
	assert.Equal(t, 1, res.Loops)
	assert.Len(t, res.Applied, 3)
	assert.Empty(t, res.Skipped)
	assert.Empty(t, res.Remaining)
	assert.False(t, res.LoopLimitReached)
	assert.Empty(t, l.Lint(tree))
}

func TestFix_LoopLimit(t *testing.T) {
	tree := parse(t, "SELECT 1")
	l := lint.NewLinter(ansi.ANSI, nil, lint.WithRules(runaway), lint.WithMaxLoops(3))

	res, err := l.Fix(tree)
	require.ErrorIs(t, err, lint.ErrLoopLimit)
	require.NotNil(t, res)

	assert.True(t, res.LoopLimitReached)
	assert.Equal(t, 3, res.Loops)
	assert.Equal(t, "SELECT 1\n\n\n", tree.RawText())
	assert.Len(t, res.Remaining, 1)
}

func TestFix_NothingToDo(t *testing.T) {
	tree := parse(t, "SELECT 1")
	res, err := lint.NewLinter(ansi.ANSI, nil, lint.WithRules(upperKeywords)).Fix(tree)
	require.NoError(t, err)
	assert.Zero(t, res.Loops)
	assert.Empty(t, res.Applied)
}

func TestSortFindings(t *testing.T) {
	tree := parse(t, "select a from t")
	findings := lint.NewLinter(ansi.ANSI, nil, lint.WithRules(upperKeywords, runaway)).Lint(tree)
	// runaway anchors on the last statement, which starts at offset 0 like "select".
	lint.SortFindings(findings)
	assert.Equal(t, []string{"TS01", "TS03", "TS01"}, ruleIDs(findings))
}
