// Package databricks provides the Databricks SQL dialect definition.
// This package is pure Go with no database driver dependencies.
package databricks

import (
	"github.com/leapstack-labs/leaplint/pkg/dialect"
	"github.com/leapstack-labs/leaplint/pkg/dialects/spark3"
	g "github.com/leapstack-labs/leaplint/pkg/grammar"
)

func init() {
	dialect.Register(Databricks)
}

var databricksReservedWords = []string{"ILIKE", "QUALIFY", "REGEXP", "RLIKE"}

// Databricks is the Databricks SQL dialect.
// It is Spark 3 plus QUALIFY, ILIKE, RLIKE/REGEXP, the :: cast shorthand
// and USE CATALOG.
var Databricks = dialect.Derive("databricks", spark3.Spark3).
	Keywords(dialect.ReservedKeywords, dialect.AddAll(databricksReservedWords...)).
	Keywords(dialect.UnreservedKeywords, dialect.AddAll("CATALOG")).
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
	Add("UseCatalogStatementSegment", dialect.SegmentDef("use_catalog_statement", g.Seq(
		g.Keyword("use"), g.Keyword("catalog"), g.Ref("SingleIdentifierGrammar"),
	))).
	Extend("StatementSegment", g.Edit{
		Insert: []*g.Grammar{g.Ref("UseCatalogStatementSegment")},
		At:     g.Before,
		Anchor: "UseStatementSegment",
	}).
	MustBuild()
