// Package hive provides the Apache Hive dialect definition.
//
// Besides its own CREATE TABLE, Hive contributes the storage grammars
// (STORED AS, ROW FORMAT, LOCATION, TBLPROPERTIES) that Spark reuses for
// Hive-format tables.
package hive

import (
	"github.com/leapstack-labs/leaplint/pkg/dialect"
	"github.com/leapstack-labs/leaplint/pkg/dialects/ansi"
	g "github.com/leapstack-labs/leaplint/pkg/grammar"
)

func init() {
	dialect.Register(Hive)
}

var hiveReservedKeywords = []string{
	"COMMENT", "DELIMITED", "ESCAPED", "FIELDS", "FORMAT", "INPUTFORMAT",
	"ITEMS", "KEYS", "LINES", "LOCATION", "OUTPUTFORMAT", "PARTITIONED",
	"SERDE", "SERDEPROPERTIES", "STORED", "TBLPROPERTIES", "TERMINATED",
}

var hiveUnreservedKeywords = []string{
	"AVRO", "COLLECTION", "DEFINED", "EXTERNAL", "JSONFILE", "MAP", "ORC",
	"PARQUET", "RCFILE", "SEQUENCEFILE", "TEXTFILE",
}

// StorageGrammars names the grammars other dialects can copy to describe
// Hive-format tables.
var StorageGrammars = []string{
	"StoredAsGrammar",
	"FileFormatGrammar",
	"StoredByGrammar",
	"StorageFormatGrammar",
	"LocationGrammar",
	"CommentGrammar",
	"PropertyGrammar",
	"BracketedPropertyListGrammar",
	"TablePropertiesGrammar",
	"SerdePropertiesGrammar",
	"RowFormatClauseSegment",
	"PartitionedByGrammar",
}

// Hive is the Apache Hive dialect.
var Hive = dialect.Derive("hive", ansi.ANSI).
	Keywords(dialect.ReservedKeywords, dialect.AddAll(hiveReservedKeywords...)).
	Keywords(dialect.UnreservedKeywords, dialect.AddAll(hiveUnreservedKeywords...)).
	Replace("QuotedIdentifierSegment", dialect.GrammarDef(g.Leaf("back_quote", "quoted_identifier"))).
	Add("FileFormatGrammar", dialect.GrammarDef(g.OneOf(
		g.Keyword("sequencefile"), g.Keyword("textfile"), g.Keyword("rcfile"),
		g.Keyword("orc"), g.Keyword("parquet"), g.Keyword("avro"), g.Keyword("jsonfile"),
		g.Seq(
			g.Keyword("inputformat"), g.Ref("QuotedLiteralSegment"),
			g.Keyword("outputformat"), g.Ref("QuotedLiteralSegment"),
		),
	))).
	Add("StoredAsGrammar", dialect.GrammarDef(g.Seq(
		g.Keyword("stored"), g.Keyword("as"), g.Ref("FileFormatGrammar"),
	))).
	Add("StoredByGrammar", dialect.GrammarDef(g.Seq(
		g.Keyword("stored"), g.Keyword("by"), g.Ref("QuotedLiteralSegment"),
		g.Optional(g.Ref("SerdePropertiesGrammar")),
	))).
	Add("StorageFormatGrammar", dialect.GrammarDef(g.OneOf(
		g.Seq(g.Optional(g.Ref("RowFormatClauseSegment")), g.Optional(g.Ref("StoredAsGrammar"))),
		g.Ref("StoredByGrammar"),
	))).
	Add("LocationGrammar", dialect.GrammarDef(g.Seq(g.Keyword("location"), g.Ref("QuotedLiteralSegment")))).
	Add("CommentGrammar", dialect.GrammarDef(g.Seq(g.Keyword("comment"), g.Ref("QuotedLiteralSegment")))).
	Add("PropertyGrammar", dialect.GrammarDef(g.Seq(
		g.Ref("QuotedLiteralSegment"), g.Ref("EqualsSegment"), g.Ref("QuotedLiteralSegment"),
	))).
	Add("BracketedPropertyListGrammar", dialect.GrammarDef(g.Bracketed(
		g.Delimited(g.Ref("PropertyGrammar"), g.Ref("CommaSegment")),
	))).
	Add("TablePropertiesGrammar", dialect.GrammarDef(g.Seq(
		g.Keyword("tblproperties"), g.Ref("BracketedPropertyListGrammar"),
	))).
	Add("SerdePropertiesGrammar", dialect.GrammarDef(g.Seq(
		g.Keyword("with"), g.Keyword("serdeproperties"), g.Ref("BracketedPropertyListGrammar"),
	))).
	Add("RowFormatClauseSegment", dialect.SegmentDef("row_format_clause", g.Seq(
		g.Keyword("row"),
		g.Keyword("format"),
		g.OneOf(
			g.Seq(
				g.Keyword("delimited"),
				g.Optional(g.Seq(
					g.Keyword("fields"), g.Keyword("terminated"), g.Keyword("by"), g.Ref("QuotedLiteralSegment"),
					g.Optional(g.Seq(g.Keyword("escaped"), g.Keyword("by"), g.Ref("QuotedLiteralSegment"))),
				)),
				g.Optional(g.Seq(
					g.Keyword("collection"), g.Keyword("items"), g.Keyword("terminated"), g.Keyword("by"),
					g.Ref("QuotedLiteralSegment"),
				)),
				g.Optional(g.Seq(
					g.Keyword("map"), g.Keyword("keys"), g.Keyword("terminated"), g.Keyword("by"),
					g.Ref("QuotedLiteralSegment"),
				)),
				g.Optional(g.Seq(
					g.Keyword("lines"), g.Keyword("terminated"), g.Keyword("by"), g.Ref("QuotedLiteralSegment"),
				)),
				g.Optional(g.Seq(
					g.Keyword("null"), g.Keyword("defined"), g.Keyword("as"), g.Ref("QuotedLiteralSegment"),
				)),
			),
			g.Seq(
				g.Keyword("serde"), g.Ref("QuotedLiteralSegment"),
				g.Optional(g.Ref("SerdePropertiesGrammar")),
			),
		),
	))).
	Add("PartitionedByGrammar", dialect.GrammarDef(g.Seq(
		g.Keyword("partitioned"), g.Keyword("by"),
		g.Bracketed(g.Delimited(
			g.Seq(g.Ref("SingleIdentifierGrammar"), g.Ref("DatatypeSegment"), g.Optional(g.Ref("CommentGrammar"))),
			g.Ref("CommaSegment"),
		)),
	))).
	Replace("CreateTableStatementSegment", dialect.SegmentDef("create_table_statement", g.Seq(
		g.Keyword("create"),
		g.Optional(g.Ref("TemporaryGrammar")),
		g.Optional(g.Keyword("external")),
		g.Keyword("table"),
		g.Optional(g.Ref("IfNotExistsGrammar")),
		g.Ref("TableReferenceSegment"),
		g.OneOf(
			g.Seq(
				g.Optional(g.Bracketed(g.Delimited(
					g.OneOf(
						g.Ref("TableConstraintSegment"),
						g.Seq(g.Ref("ColumnDefinitionSegment"), g.Optional(g.Ref("CommentGrammar"))),
					),
					g.Ref("CommaSegment"),
				))),
				g.Optional(g.Ref("CommentGrammar")),
				g.Optional(g.Ref("PartitionedByGrammar")),
				g.Optional(g.Ref("StorageFormatGrammar")),
				g.Optional(g.Ref("LocationGrammar")),
				g.Optional(g.Ref("TablePropertiesGrammar")),
				g.Optional(g.Seq(g.Keyword("as"), g.Ref("SelectableGrammar"))),
			),
			g.Seq(
				g.Keyword("like"),
				g.Ref("TableReferenceSegment"),
				g.Optional(g.Ref("LocationGrammar")),
				g.Optional(g.Ref("TablePropertiesGrammar")),
			),
		),
	))).
	MustBuild()
