// Package duckdb provides the DuckDB SQL dialect definition.
// This package is pure Go with no database driver dependencies.
package duckdb

import (
	"github.com/leapstack-labs/leaplint/pkg/dialect"
	"github.com/leapstack-labs/leaplint/pkg/dialects/postgres"
	g "github.com/leapstack-labs/leaplint/pkg/grammar"
)

func init() {
	dialect.Register(DuckDB)
}

var duckDBReservedWords = []string{"ANTI", "ASOF", "POSITIONAL", "QUALIFY", "SEMI"}

var duckDBUnreservedKeywords = []string{"EXCLUDE", "RENAME"}

// DuckDB is the DuckDB dialect.
// It derives from PostgreSQL and adds QUALIFY, GROUP BY ALL, ORDER BY ALL,
// the star modifiers EXCLUDE/REPLACE/RENAME and SEMI, ANTI, ASOF and
// POSITIONAL joins.
var DuckDB = dialect.Derive("duckdb", postgres.Postgres).
	Keywords(dialect.ReservedKeywords, dialect.AddAll(duckDBReservedWords...)).
	Keywords(dialect.UnreservedKeywords, dialect.AddAll(duckDBUnreservedKeywords...)).
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
	Replace("GroupByClauseSegment", dialect.SegmentDef("groupby_clause", g.Seq(
		g.Keyword("group"), g.Keyword("by"),
		g.OneOf(
			g.Keyword("all"),
			g.Delimited(g.Ref("ExpressionSegment"), g.Ref("CommaSegment")),
		),
	))).
	Replace("OrderByClauseSegment", dialect.SegmentDef("orderby_clause", g.Seq(
		g.Keyword("order"), g.Keyword("by"),
		g.OneOf(
			g.Seq(g.Keyword("all"), g.Optional(g.OneOf(g.Keyword("asc"), g.Keyword("desc")))),
			g.Delimited(g.Seq(
				g.Ref("ExpressionSegment"),
				g.Optional(g.OneOf(g.Keyword("asc"), g.Keyword("desc"))),
				g.Optional(g.Seq(g.Keyword("nulls"), g.OneOf(g.Keyword("first"), g.Keyword("last")))),
			), g.Ref("CommaSegment")),
		),
	))).
	Add("StarModifierSegment", dialect.SegmentDef("star_modifier", g.OneOf(
		g.Seq(
			g.Keyword("exclude"),
			g.OneOf(
				g.Ref("SingleIdentifierGrammar"),
				g.Bracketed(g.Delimited(g.Ref("SingleIdentifierGrammar"), g.Ref("CommaSegment"))),
			),
		),
		g.Seq(
			g.Keyword("replace"),
			g.Bracketed(g.Delimited(
				g.Seq(g.Ref("ExpressionSegment"), g.Keyword("as"), g.Ref("SingleIdentifierGrammar")),
				g.Ref("CommaSegment"),
			)),
		),
		g.Seq(
			g.Keyword("rename"),
			g.Bracketed(g.Delimited(
				g.Seq(g.Ref("SingleIdentifierGrammar"), g.Keyword("as"), g.Ref("SingleIdentifierGrammar")),
				g.Ref("CommaSegment"),
			)),
		),
	))).
	Replace("WildcardExpressionSegment", dialect.SegmentDef("wildcard_expression", g.Seq(
		g.AnyNumberOf(g.Seq(g.Ref("SingleIdentifierGrammar"), g.Ref("DotSegment"))),
		g.Ref("StarSegment"),
		g.AnyNumberOf(g.Ref("StarModifierSegment")),
	))).
	Extend("JoinTypeKeywordsGrammar", g.Edit{Insert: []*g.Grammar{
		g.Keyword("semi"),
		g.Keyword("anti"),
		g.Keyword("positional"),
		g.Seq(g.Keyword("asof"), g.Optional(g.OneOf(g.Keyword("left"), g.Keyword("inner")))),
	}}).
	MustBuild()
