// Package spark3 provides the Apache Spark 3 SQL dialect definition.
//
// Spark3 derives from ANSI and borrows Hive's storage grammars so that
// CREATE TABLE ... STORED AS / ROW FORMAT parses as a Hive-format table.
package spark3

import (
	"github.com/leapstack-labs/leaplint/pkg/dialect"
	"github.com/leapstack-labs/leaplint/pkg/dialects/ansi"
	"github.com/leapstack-labs/leaplint/pkg/dialects/hive"
	g "github.com/leapstack-labs/leaplint/pkg/grammar"
)

func init() {
	dialect.Register(Spark3)
}

var sparkReservedKeywords = []string{
	"ANTI", "DATABASE", "DBPROPERTIES", "GLOBAL", "JAR", "JARS", "MINUS",
	"OWNER", "SEMI", "WHL",
}

var sparkUnreservedKeywords = []string{
	"ARCHIVE", "ARCHIVES", "FILE", "FILES", "NAMESPACE", "PROPERTIES",
	"SCHEMA", "USER", "GROUP", "ROLE",
}

// Spark3 is the Apache Spark 3 dialect.
var Spark3 = dialect.Derive("spark3", ansi.ANSI).
	Keywords(dialect.ReservedKeywords, dialect.AddAll(sparkReservedKeywords...)).
	Keywords(dialect.UnreservedKeywords, dialect.AddAll(sparkUnreservedKeywords...)).
	Keywords(dialect.BareFunctions, dialect.Clear(),
		dialect.AddAll("CURRENT_DATE", "CURRENT_TIMESTAMP", "CURRENT_USER")).
	Keywords(dialect.DatetimeUnits, dialect.Clear(), dialect.AddAll(
		"YEAR", "YYYY", "YY", "QUARTER", "MONTH", "MON", "MM", "WEEK",
		"DAY", "DD", "HOUR", "MINUTE", "SECOND",
	)).
	Add("EqualsSegment_a", dialect.GrammarDef(g.Symbol("comparison_operator", "=="))).
	Add("EqualsSegment_b", dialect.GrammarDef(g.Symbol("comparison_operator", "<=>"))).
	Replace("ComparisonOperatorGrammar", dialect.GrammarDef(g.OneOf(
		g.Ref("EqualsSegment"),
		g.Ref("EqualsSegment_a"),
		g.Ref("EqualsSegment_b"),
		g.Ref("GreaterThanSegment"),
		g.Ref("LessThanSegment"),
		g.Ref("GreaterThanOrEqualToSegment"),
		g.Ref("LessThanOrEqualToSegment"),
		g.Ref("NotEqualToSegment_a"),
		g.Ref("NotEqualToSegment_b"),
	))).
	Replace("TemporaryGrammar", dialect.GrammarDef(g.Seq(
		g.Optional(g.Keyword("global")),
		g.OneOf(g.Keyword("temp"), g.Keyword("temporary")),
	))).
	Replace("QuotedIdentifierSegment", dialect.GrammarDef(g.Leaf("back_quote", "quoted_identifier"))).
	Add("DoubleQuotedLiteralSegment", dialect.GrammarDef(g.Leaf("quoted_identifier", "quoted_literal"))).
	Extend("LiteralGrammar", g.Edit{Insert: []*g.Grammar{g.Ref("DoubleQuotedLiteralSegment")}}).
	Keywords(dialect.ReservedKeywords, dialect.AddAll(hive.Hive.KeywordSet(dialect.ReservedKeywords)...)).
	AddFrom(hive.Hive, hive.StorageGrammars...).
	Add("CreateHiveFormatTableStatementSegment", hiveCreateTable()).
	Extend("JoinTypeKeywordsGrammar", g.Edit{Insert: []*g.Grammar{
		g.Seq(g.Optional(g.Keyword("left")), g.Keyword("semi")),
		g.Seq(g.Optional(g.Keyword("left")), g.Keyword("anti")),
	}}).
	Add("AlterDatabaseStatementSegment", dialect.SegmentDef("alter_database_statement", g.Seq(
		g.Keyword("alter"),
		g.OneOf(g.Keyword("database"), g.Keyword("schema")),
		g.Ref("SchemaReferenceSegment"),
		g.Keyword("set"),
		g.OneOf(
			g.Seq(g.Keyword("dbproperties"), g.Ref("BracketedPropertyListGrammar")),
			g.Seq(g.Keyword("location"), g.Ref("QuotedLiteralSegment")),
			g.Seq(
				g.Keyword("owner"),
				g.OneOf(g.Keyword("user"), g.Keyword("role"), g.Keyword("group")),
				g.Ref("SingleIdentifierGrammar"),
			),
		),
	))).
	Add("ResourceFileGrammar", dialect.GrammarDef(g.OneOf(
		g.Keyword("jar"), g.Keyword("whl"), g.Keyword("file"),
	))).
	Add("AddExecutablePackage", dialect.SegmentDef("add_executable_package", g.Seq(
		g.Keyword("add"),
		g.Ref("ResourceFileGrammar"),
		g.Repeat(1, 0, g.Ref("QuotedLiteralSegment")),
	))).
	Extend("StatementSegment", g.Edit{
		Insert: []*g.Grammar{
			g.Ref("AlterDatabaseStatementSegment"),
			g.Ref("CreateHiveFormatTableStatementSegment"),
			g.Ref("AddExecutablePackage"),
		},
		Remove: []string{
			"TransactionStatementSegment",
			"CreateSchemaStatementSegment",
			"SetSchemaStatementSegment",
			"DropSchemaStatementSegment",
		},
	}).
	MustBuild()

// hiveCreateTable reuses Hive's CREATE TABLE under a distinct segment type.
func hiveCreateTable() dialect.Definition {
	def, ok := hive.Hive.Rule("CreateTableStatementSegment")
	if !ok {
		panic("spark3: hive dialect has no CreateTableStatementSegment")
	}
	return dialect.SegmentDef("create_hive_format_table_statement", def.Grammar)
}
