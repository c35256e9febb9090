// Package snowflake provides the Snowflake SQL dialect definition.
// This package is pure Go with no database driver dependencies.
package snowflake

import (
	"github.com/leapstack-labs/leaplint/pkg/dialect"
	"github.com/leapstack-labs/leaplint/pkg/dialects/ansi"
	g "github.com/leapstack-labs/leaplint/pkg/grammar"
)

func init() {
	dialect.Register(Snowflake)
}

var snowflakeReservedWords = []string{
	"ILIKE", "INCREMENT", "MINUS", "QUALIFY", "REGEXP", "RLIKE", "SAMPLE",
	"TABLESAMPLE", "TRY_CAST",
}

var snowflakeUnreservedKeywords = []string{
	"BERNOULLI", "BLOCK", "ROW", "SEED", "SYSTEM", "REPEATABLE",
}

// Snowflake is the Snowflake SQL dialect.
// On top of ANSI it adds QUALIFY, ILIKE, RLIKE/REGEXP, the :: cast shorthand
// and SAMPLE/TABLESAMPLE on table references.
var Snowflake = dialect.Derive("snowflake", ansi.ANSI).
	Keywords(dialect.ReservedKeywords, dialect.AddAll(snowflakeReservedWords...)).
	Keywords(dialect.UnreservedKeywords, dialect.AddAll(snowflakeUnreservedKeywords...)).
	Keywords(dialect.BareFunctions, dialect.AddAll("SYSDATE")).
	Extend("LikeGrammar", g.Edit{Insert: []*g.Grammar{
		g.Keyword("ilike"), g.Keyword("rlike"), g.Keyword("regexp"),
	}}).
	Replace("ShorthandCastGrammar", dialect.GrammarDef(g.Seq(
		g.Symbol("casting_operator", "::"),
		g.Ref("DatatypeSegment"),
	))).
	Add("QualifyClauseSegment", dialect.SegmentDef("qualify_clause", g.Seq(
		g.Keyword("qualify"), g.Ref("ExpressionSegment"),
	))).
	Replace("SelectStatementSegment", dialect.SegmentDef("select_statement", g.Seq(
		g.Ref("SelectClauseSegment"),
		g.Optional(g.Ref("FromClauseSegment")),
		g.Optional(g.Ref("WhereClauseSegment")),
		g.Optional(g.Ref("GroupByClauseSegment")),
		g.Optional(g.Ref("HavingClauseSegment")),
		g.Optional(g.Ref("QualifyClauseSegment")),
		g.Optional(g.Ref("OrderByClauseSegment")),
		g.Optional(g.Ref("LimitClauseSegment")),
	))).
	Add("SamplingExpressionSegment", dialect.SegmentDef("sample_expression", g.Seq(
		g.OneOf(g.Keyword("sample"), g.Keyword("tablesample")),
		g.Optional(g.OneOf(
			g.Keyword("bernoulli"), g.Keyword("row"), g.Keyword("system"), g.Keyword("block"),
		)),
		g.Bracketed(g.Ref("NumericLiteralSegment"), g.Optional(g.Keyword("rows"))),
		g.Optional(g.Seq(
			g.OneOf(g.Keyword("repeatable"), g.Keyword("seed")),
			g.Bracketed(g.Ref("NumericLiteralSegment")),
		)),
	))).
	Replace("FromExpressionElementSegment", dialect.SegmentDef("from_expression_element", g.Seq(
		g.OneOf(
			g.Ref("FunctionSegment"),
			g.Ref("TableReferenceSegment"),
			g.Bracketed(g.Ref("SelectableGrammar")),
		),
		g.Optional(g.Ref("SamplingExpressionSegment")),
		g.Optional(g.Ref("AliasExpressionSegment")),
	))).
	MustBuild()
