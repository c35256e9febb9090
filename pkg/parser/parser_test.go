package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leaplint/pkg/dialect"
	"github.com/leapstack-labs/leaplint/pkg/dialects/ansi"
	g "github.com/leapstack-labs/leaplint/pkg/grammar"
	"github.com/leapstack-labs/leaplint/pkg/parser"
	"github.com/leapstack-labs/leaplint/pkg/segment"
)

func types(segs []*segment.Segment) []string {
	out := make([]string, len(segs))
	for i, s := range segs {
		out[i] = s.Type
	}
	return out
}

func TestParseIsLossless(t *testing.T) {
	tests := []struct {
		name string
		sql  string
	}{
		{"empty", ""},
		{"whitespace only", "  \n\t\n"},
		{"select", "SELECT a, b AS c FROM t WHERE a > 1 ORDER BY b DESC\n"},
		{"cte", "WITH a AS (\n  SELECT 1\n)\nSELECT * FROM a;\n"},
		{"comments", "-- header\nSELECT /* inline */ 1 -- trailing\n"},
		{"garbage", "SELECT 1;\nthis is not sql ;\nSELECT 2"},
		{"unterminated", "SELECT 'abc"},
		{"nested", "SELECT * FROM (SELECT a FROM (SELECT 1 AS a) x) y\n"},
		{"join", "select a.x from a left join b on a.id = b.id\n"},
		{"dml", "INSERT INTO t (a, b) VALUES (1, 'x'), (2, 'y');\nUPDATE t SET a = 1 WHERE b IS NOT NULL;\nDELETE FROM t;\n"},
		{"ddl", "CREATE TABLE IF NOT EXISTS s.t (id INT PRIMARY KEY, name VARCHAR(20) NOT NULL);\nDROP TABLE s.t CASCADE;\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := parser.Parse(tt.sql, ansi.ANSI)
			require.NoError(t, err)
			assert.Equal(t, tt.sql, tree.RawText())
			assert.Equal(t, segment.TypeFile, tree.Type)
		})
	}
}

func TestParseValidSQLHasNoErrors(t *testing.T) {
	tests := []string{
		"SELECT 1",
		"SELECT DISTINCT a, count(*) FROM t GROUP BY a HAVING count(*) > 1",
		"SELECT CASE WHEN a = 1 THEN 'one' ELSE 'other' END AS label FROM t",
		"SELECT CAST(a AS INT), current_date FROM t",
		"SELECT a FROM t WHERE b IN (1, 2, 3) AND c NOT LIKE 'x%' AND d BETWEEN 1 AND 2",
		"SELECT a FROM t WHERE EXISTS (SELECT 1 FROM u WHERE u.id = t.id)",
		"SELECT row_number() OVER (PARTITION BY a ORDER BY b ROWS BETWEEN UNBOUNDED PRECEDING AND CURRENT ROW) FROM t",
		"SELECT dateadd(day, 1, created_at) FROM t",
		"SELECT a FROM t UNION ALL SELECT b FROM u ORDER BY 1 LIMIT 10",
		"WITH RECURSIVE r (n) AS (SELECT 1) SELECT n FROM r",
		"WITH x AS (SELECT 1) INSERT INTO t SELECT * FROM x",
		"CREATE VIEW v AS SELECT 1",
		"CREATE SCHEMA IF NOT EXISTS analytics",
		"BEGIN TRANSACTION; COMMIT",
		"USE analytics",
	}
	for _, sql := range tests {
		t.Run(sql, func(t *testing.T) {
			tree, err := parser.Parse(sql, ansi.ANSI)
			require.NoError(t, err)
			assert.Empty(t, parser.Errors(tree))
		})
	}
}

func TestParseCTEShape(t *testing.T) {
	tree, err := parser.Parse("WITH a AS (\n  SELECT 1\n)\nSELECT 1\n", ansi.ANSI)
	require.NoError(t, err)

	require.Len(t, tree.Children, 2)
	assert.Equal(t, "statement", tree.Children[0].Type)
	assert.Equal(t, segment.TypeNewline, tree.Children[1].Type)

	with := tree.Children[0].Children[0]
	require.Equal(t, "with_compound_statement", with.Type)
	assert.Equal(t, []string{
		segment.TypeKeyword,
		segment.TypeWhitespace,
		"common_table_expression",
		segment.TypeNewline,
		"select_statement",
	}, types(with.Children))

	cte := with.Children[2]
	assert.Equal(t, []string{
		segment.TypeIdentifier,
		segment.TypeWhitespace,
		segment.TypeKeyword,
		segment.TypeWhitespace,
		segment.TypeBracketed,
	}, types(cte.Children))

	bracketed := cte.Children[4]
	assert.Equal(t, []string{
		segment.TypeStartBracket,
		segment.TypeNewline,
		segment.TypeWhitespace,
		"select_statement",
		segment.TypeNewline,
		segment.TypeEndBracket,
	}, types(bracketed.Children))
	assert.Equal(t, "3:1", bracketed.Children[5].Start().String())
}

func TestParseRetypesKeywords(t *testing.T) {
	tree, err := parser.Parse("select a from t", ansi.ANSI)
	require.NoError(t, err)

	var keywords, identifiers []string
	for _, leaf := range tree.Leaves() {
		switch leaf.Type {
		case segment.TypeKeyword:
			keywords = append(keywords, leaf.Raw)
		case segment.TypeIdentifier:
			identifiers = append(identifiers, leaf.Raw)
		}
	}
	assert.Equal(t, []string{"select", "from"}, keywords)
	assert.Equal(t, []string{"a", "t"}, identifiers)
}

func TestParseLongestAlternative(t *testing.T) {
	tree, err := parser.Parse("SELECT a FROM t UNION SELECT b FROM u", ansi.ANSI)
	require.NoError(t, err)
	assert.Len(t, tree.FindAll("set_expression"), 1)
	assert.Len(t, tree.FindAll("select_statement"), 2)
}

func TestParseUnparsableRecovery(t *testing.T) {
	sql := "SELECT 1;\nFOO BAR baz;\nSELECT 2\n"
	tree, err := parser.Parse(sql, ansi.ANSI)
	require.NoError(t, err)
	assert.Equal(t, sql, tree.RawText())

	unparsable := tree.FindAll(segment.TypeUnparsable)
	require.Len(t, unparsable, 1)
	assert.Equal(t, "FOO BAR baz", unparsable[0].RawText())
	assert.Len(t, tree.FindAll("statement"), 2)

	errs := parser.Errors(tree)
	require.Len(t, errs, 1)
	assert.Equal(t, 2, errs[0].Pos.Line)
	assert.Equal(t, 1, errs[0].Pos.Column)
	assert.Contains(t, errs[0].Error(), `"FOO BAR baz"`)
}

func TestErrorsTruncatesSnippet(t *testing.T) {
	tree, err := parser.Parse("ÉÉÉÉÉÉÉÉÉÉ ÉÉÉÉÉÉÉÉÉÉ ÉÉÉÉÉÉÉÉÉÉ ÉÉÉÉÉÉÉÉÉÉ ÉÉÉÉÉÉÉÉÉÉ", ansi.ANSI)
	require.NoError(t, err)

	errs := parser.Errors(tree)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "...")
}

func TestParseMaxDepth(t *testing.T) {
	_, err := parser.Parse("SELECT 1", ansi.ANSI, parser.WithMaxDepth(3))
	require.ErrorIs(t, err, parser.ErrMaxDepth)
}

func TestParseNoRootRule(t *testing.T) {
	d := dialect.New("rootless").
		Add("StatementSegment", dialect.GrammarDef(g.Keyword("select"))).
		MustBuild()

	_, err := parser.Parse("SELECT", d)
	require.ErrorIs(t, err, parser.ErrNoRootRule)
}

func TestParseLeftRecursionTerminates(t *testing.T) {
	d := dialect.New("leftrec").
		Add("FileSegment", dialect.GrammarDef(g.AnyNumberOf(g.Ref("Expr")))).
		Add("Expr", dialect.SegmentDef("expr", g.OneOf(
			g.Seq(g.Ref("Expr"), g.Symbol("binary_operator", "+"), g.Leaf("numeric_literal", "")),
			g.Leaf("numeric_literal", ""),
		))).
		MustBuild()

	tree, err := parser.Parse("1+2", d)
	require.NoError(t, err)
	assert.Equal(t, "1+2", tree.RawText())
	assert.Len(t, tree.FindAll("expr"), 1)
}

func TestParseDelimitedKeepsMemoisedNodes(t *testing.T) {
	// Both alternatives start from the same memoised, untyped Pair result and
	// tie on length, so the first must survive the second's appends.
	d := dialect.New("pairs").
		Add("FileSegment", dialect.GrammarDef(g.OneOf(
			g.DelimitedTrailing(g.Ref("Pair"), g.Symbol("comma", ",")),
			g.DelimitedTrailing(g.Ref("Pair"), g.Ref("WrappedComma")),
		))).
		Add("Pair", dialect.GrammarDef(g.Seq(g.Leaf("numeric_literal", ""), g.Leaf("numeric_literal", "")))).
		Add("WrappedComma", dialect.SegmentDef("wrapped_comma", g.Symbol("comma", ","))).
		MustBuild()

	tree, err := parser.Parse("1 2,", d)
	require.NoError(t, err)
	assert.Equal(t, "1 2,", tree.RawText())
	assert.Empty(t, tree.FindAll("wrapped_comma"))
	assert.Len(t, tree.FindAll("comma"), 1)
}

func TestParserReuse(t *testing.T) {
	p := parser.New(ansi.ANSI)

	first, err := p.Parse("SELECT a FROM t")
	require.NoError(t, err)
	second, err := p.Parse("SELECT b FROM u")
	require.NoError(t, err)

	assert.Equal(t, "SELECT a FROM t", first.RawText())
	assert.Equal(t, "SELECT b FROM u", second.RawText())
}
