// Package postgres provides the PostgreSQL SQL dialect definition.
// This package is pure Go with no database driver dependencies.
package postgres

import (
	"github.com/leapstack-labs/leaplint/pkg/dialect"
	"github.com/leapstack-labs/leaplint/pkg/dialects/ansi"
	g "github.com/leapstack-labs/leaplint/pkg/grammar"
)

func init() {
	dialect.Register(Postgres)
}

// postgresReservedWords contains common PostgreSQL reserved words on top of ANSI's.
var postgresReservedWords = []string{
	"ANALYSE", "ANALYZE", "ARRAY", "ASYMMETRIC", "BOTH", "CURRENT_CATALOG",
	"CURRENT_ROLE", "CURRENT_SCHEMA", "DEFERRABLE", "DO", "FREEZE", "ILIKE",
	"INITIALLY", "ISNULL", "LEADING", "LOCALTIME", "LOCALTIMESTAMP",
	"NOTNULL", "ONLY", "OVERLAPS", "PLACING", "RETURNING", "SESSION_USER",
	"SIMILAR", "SYMMETRIC", "TRAILING", "VARIADIC", "VERBOSE",
}

var postgresUnreservedKeywords = []string{
	"EXTENSION", "FILTER", "LINESTRING", "MULTILINESTRING", "MULTIPOINT",
	"MULTIPOLYGON", "POINT", "POLYGON", "VERSION",
}

// Postgres is the PostgreSQL dialect.
// It adds ILIKE, the :: cast shorthand, WKT geometry literals,
// CREATE EXTENSION and aggregate FILTER clauses.
var Postgres = dialect.Derive("postgres", ansi.ANSI).
	Keywords(dialect.ReservedKeywords, dialect.AddAll(postgresReservedWords...)).
	Keywords(dialect.UnreservedKeywords, dialect.AddAll(postgresUnreservedKeywords...)).
	Extend("LikeGrammar", g.Edit{Insert: []*g.Grammar{g.Keyword("ilike")}}).
	Add("CastOperatorSegment", dialect.GrammarDef(g.Symbol("casting_operator", "::"))).
	Replace("ShorthandCastGrammar", dialect.GrammarDef(g.Seq(
		g.Ref("CastOperatorSegment"),
		g.Ref("DatatypeSegment"),
	))).
	Add("WellKnownTextGeometrySegment", dialect.SegmentDef("wkt_geometry_type", g.Seq(
		g.OneOf(
			g.Keyword("point"), g.Keyword("linestring"), g.Keyword("polygon"),
			g.Keyword("multipoint"), g.Keyword("multilinestring"), g.Keyword("multipolygon"),
		),
		g.Bracketed(g.Delimited(
			g.OneOf(
				g.Repeat(1, 0, g.Ref("NumericLiteralSegment")),
				g.Bracketed(g.Delimited(g.Repeat(1, 0, g.Ref("NumericLiteralSegment")), g.Ref("CommaSegment"))),
			),
			g.Ref("CommaSegment"),
		)),
	))).
	Extend("PrimaryOperandGrammar", g.Edit{
		Insert: []*g.Grammar{g.Ref("WellKnownTextGeometrySegment")},
		At:     g.Prepend,
	}).
	Replace("FunctionSegment", dialect.SegmentDef("function", g.OneOf(
		g.Seq(
			g.Ref("DatePartFunctionNameSegment"),
			g.Bracketed(
				g.Ref("DatetimeUnitSegment"),
				g.Ref("CommaSegment"),
				g.Delimited(g.Ref("ExpressionSegment"), g.Ref("CommaSegment")),
			),
		),
		g.Seq(
			g.Ref("FunctionNameSegment"),
			g.Bracketed(g.Optional(g.Ref("FunctionContentsGrammar"))),
			g.Optional(g.Seq(g.Keyword("filter"), g.Bracketed(g.Ref("WhereClauseSegment")))),
			g.Optional(g.Ref("OverClauseSegment")),
		),
	))).
	Add("CreateExtensionStatementSegment", dialect.SegmentDef("create_extension_statement", g.Seq(
		g.Keyword("create"),
		g.Keyword("extension"),
		g.Optional(g.Ref("IfNotExistsGrammar")),
		g.Ref("SingleIdentifierGrammar"),
		g.Optional(g.Keyword("with")),
		g.Optional(g.Seq(g.Keyword("schema"), g.Ref("SchemaReferenceSegment"))),
		g.Optional(g.Seq(g.Keyword("version"), g.OneOf(g.Ref("QuotedLiteralSegment"), g.Ref("SingleIdentifierGrammar")))),
		g.Optional(g.Keyword("cascade")),
	))).
	Extend("StatementSegment", g.Edit{Insert: []*g.Grammar{g.Ref("CreateExtensionStatementSegment")}}).
	MustBuild()
