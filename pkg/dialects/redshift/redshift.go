// Package redshift provides the Amazon Redshift dialect definition.
//
// Redshift derives from PostgreSQL because it started as a Postgres 8 fork,
// but replaces its keyword sets wholesale, switches off geometry literals and
// reverts FunctionSegment to the ANSI form, which supports IGNORE NULLS.
package redshift

import (
	"github.com/leapstack-labs/leaplint/pkg/dialect"
	"github.com/leapstack-labs/leaplint/pkg/dialects/ansi"
	"github.com/leapstack-labs/leaplint/pkg/dialects/postgres"
	g "github.com/leapstack-labs/leaplint/pkg/grammar"
)

func init() {
	dialect.Register(Redshift)
}

// Redshift is the Amazon Redshift dialect.
var Redshift = dialect.Derive("redshift", postgres.Postgres).
	Keywords(dialect.ReservedKeywords, dialect.Clear(), dialect.AddAll(reservedKeywords...)).
	Keywords(dialect.UnreservedKeywords, dialect.Clear(), dialect.AddAll(unreservedKeywords...)).
	Keywords(dialect.BareFunctions, dialect.Clear(), dialect.AddAll("current_date", "sysdate")).
	Replace("WellKnownTextGeometrySegment", dialect.GrammarDef(g.Nothing())).
	Replace("DatePartFunctionNameSegment", dialect.SegmentDef("function_name", g.OneOf(
		g.Keyword("dateadd"), g.Keyword("datediff"),
	))).
	ReplaceFrom("FunctionSegment", ansi.ANSI).
	Add("ColumnEncodingSegment", dialect.SegmentDef("column_encoding_segment", g.OneOf(
		g.Keyword("raw"), g.Keyword("az64"), g.Keyword("bytedict"), g.Keyword("delta"),
		g.Keyword("delta32k"), g.Keyword("lzo"), g.Keyword("mostly8"), g.Keyword("mostly16"),
		g.Keyword("mostly32"), g.Keyword("runlength"), g.Keyword("text255"), g.Keyword("text32k"),
		g.Keyword("zstd"),
	))).
	Add("ColumnAttributeSegment", dialect.SegmentDef("column_attribute_segment", g.Repeat(1, 0,
		g.Seq(g.Keyword("default"), g.Ref("ExpressionSegment")),
		g.Seq(g.Keyword("identity"), g.Bracketed(g.Delimited(g.Ref("NumericLiteralSegment"), g.Ref("CommaSegment")))),
		g.Seq(
			g.Keyword("generated"), g.Keyword("by"), g.Keyword("default"), g.Keyword("as"), g.Keyword("identity"),
			g.Bracketed(g.Delimited(g.Ref("NumericLiteralSegment"), g.Ref("CommaSegment"))),
		),
		g.Seq(g.Keyword("encode"), g.Ref("ColumnEncodingSegment")),
		g.Keyword("distkey"),
		g.Keyword("sortkey"),
		g.Seq(g.Keyword("collate"), g.OneOf(g.Keyword("case_sensitive"), g.Keyword("case_insensitive"))),
	))).
	Replace("ColumnConstraintSegment", dialect.SegmentDef("column_constraint_segment", g.Repeat(1, 0,
		g.OneOf(g.Seq(g.Keyword("not"), g.Keyword("null")), g.Keyword("null")),
		g.OneOf(g.Keyword("unique"), g.Seq(g.Keyword("primary"), g.Keyword("key"))),
		g.Seq(
			g.Keyword("references"),
			g.Ref("TableReferenceSegment"),
			g.Optional(g.Bracketed(g.Ref("ColumnReferenceSegment"))),
		),
	))).
	Add("TableAttributeSegment", dialect.SegmentDef("table_constraint_segment", g.Repeat(1, 0,
		g.Seq(g.Keyword("diststyle"), g.OneOf(g.Keyword("auto"), g.Keyword("even"), g.Keyword("key"), g.Keyword("all"))),
		g.Seq(g.Keyword("distkey"), g.Bracketed(g.Ref("ColumnReferenceSegment"))),
		g.OneOf(
			g.Seq(
				g.Optional(g.OneOf(g.Keyword("compound"), g.Keyword("interleaved"))),
				g.Keyword("sortkey"),
				g.Bracketed(g.Delimited(g.Ref("ColumnReferenceSegment"), g.Ref("CommaSegment"))),
			),
			g.Seq(g.Keyword("sortkey"), g.Keyword("auto")),
		),
		g.Seq(g.Keyword("encode"), g.Keyword("auto")),
	))).
	Add("LikeOptionSegment", dialect.SegmentDef("like_option_segment", g.Seq(
		g.OneOf(g.Keyword("including"), g.Keyword("excluding")),
		g.Keyword("defaults"),
	))).
	Replace("CreateTableStatementSegment", dialect.SegmentDef("create_table_statement", g.Seq(
		g.Keyword("create"),
		g.Optional(g.Keyword("local")),
		g.Optional(g.Ref("TemporaryGrammar")),
		g.Keyword("table"),
		g.Optional(g.Ref("IfNotExistsGrammar")),
		g.Ref("TableReferenceSegment"),
		g.Bracketed(g.OneOf(
			g.Delimited(
				g.OneOf(
					g.Ref("TableConstraintSegment"),
					g.Seq(
						g.Ref("ColumnReferenceSegment"),
						g.Ref("DatatypeSegment"),
						g.AnyNumberOf(g.Ref("ColumnAttributeSegment"), g.Ref("ColumnConstraintSegment")),
					),
				),
				g.Ref("CommaSegment"),
			),
			g.Seq(
				g.Keyword("like"),
				g.Ref("TableReferenceSegment"),
				g.AnyNumberOf(g.Ref("LikeOptionSegment")),
			),
		)),
		g.Optional(g.Seq(g.Keyword("backup"), g.OneOf(g.Keyword("yes"), g.Keyword("no")))),
		g.AnyNumberOf(g.Ref("TableAttributeSegment")),
	))).
	Add("CreateUserSegment", dialect.SegmentDef("create_user", g.Seq(
		g.Keyword("create"),
		g.Keyword("user"),
		g.Ref("NakedIdentifierSegment"),
		g.Optional(g.Keyword("with")),
		g.Keyword("password"),
		g.OneOf(g.Ref("QuotedLiteralSegment"), g.Keyword("disable")),
		g.AnyNumberOf(
			g.OneOf(g.Keyword("createdb"), g.Keyword("nocreatedb")),
			g.OneOf(g.Keyword("createuser"), g.Keyword("nocreateuser")),
			g.Seq(g.Keyword("syslog"), g.Keyword("access"), g.OneOf(g.Keyword("restricted"), g.Keyword("unrestricted"))),
			g.Seq(g.Keyword("in"), g.Keyword("group"), g.Delimited(g.Ref("NakedIdentifierSegment"), g.Ref("CommaSegment"))),
			g.Seq(g.Keyword("valid"), g.Keyword("until"), g.Ref("QuotedLiteralSegment")),
			g.Seq(g.Keyword("connection"), g.Keyword("limit"), g.OneOf(g.Ref("NumericLiteralSegment"), g.Keyword("unlimited"))),
			g.Seq(g.Keyword("session"), g.Keyword("timeout"), g.Ref("NumericLiteralSegment")),
		),
	))).
	Add("CreateGroupSegment", dialect.SegmentDef("create_group", g.Seq(
		g.Keyword("create"),
		g.Keyword("group"),
		g.Ref("NakedIdentifierSegment"),
		g.Optional(g.Seq(
			g.Optional(g.Keyword("with")),
			g.Keyword("user"),
			g.Delimited(g.Ref("NakedIdentifierSegment"), g.Ref("CommaSegment")),
		)),
	))).
	Add("AlterGroupSegment", dialect.SegmentDef("alter_group", g.Seq(
		g.Keyword("alter"),
		g.Keyword("group"),
		g.Ref("NakedIdentifierSegment"),
		g.OneOf(
			g.Seq(
				g.OneOf(g.Keyword("add"), g.Keyword("drop")),
				g.Keyword("user"),
				g.Delimited(g.Ref("NakedIdentifierSegment"), g.Ref("CommaSegment")),
			),
			g.Seq(g.Keyword("rename"), g.Keyword("to"), g.Ref("NakedIdentifierSegment")),
		),
	))).
	Extend("StatementSegment", g.Edit{Insert: []*g.Grammar{
		g.Ref("CreateUserSegment"),
		g.Ref("CreateGroupSegment"),
		g.Ref("AlterGroupSegment"),
	}}).
	MustBuild()
