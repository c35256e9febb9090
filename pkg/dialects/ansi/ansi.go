// Package ansi provides the base ANSI SQL dialect.
//
// This dialect serves as the foundation for all other SQL dialects. Dialects
// like PostgreSQL or Spark derive from ANSI and replace, add or extend
// individual rules; every Ref is resolved in the deriving dialect, so an
// override reaches every grammar that mentions it.
package ansi

import (
	"github.com/leapstack-labs/leaplint/pkg/dialect"
	g "github.com/leapstack-labs/leaplint/pkg/grammar"
)

func init() {
	dialect.Register(ANSI)
}

// ANSI is the base ANSI SQL dialect.
var ANSI = dialect.New("ansi").
	// Keyword sets
	Keywords(dialect.ReservedKeywords, dialect.AddAll(reservedKeywords...)).
	Keywords(dialect.UnreservedKeywords, dialect.AddAll(unreservedKeywords...)).
	Keywords(dialect.BareFunctions, dialect.AddAll(bareFunctions...)).
	Keywords(dialect.DatetimeUnits, dialect.AddAll(datetimeUnits...)).

	// File structure
	Add("FileSegment", dialect.GrammarDef(g.AnyNumberOf(g.Ref("StatementSegment"), g.Ref("DelimiterGrammar")))).
	Add("DelimiterGrammar", dialect.GrammarDef(g.Symbol("semicolon", ";"))).
	Add("StatementSegment", dialect.SegmentDef("statement", g.OneOf(
		g.Ref("SelectableGrammar"),
		g.Ref("InsertStatementSegment"),
		g.Ref("UpdateStatementSegment"),
		g.Ref("DeleteStatementSegment"),
		g.Ref("CreateTableStatementSegment"),
		g.Ref("CreateViewStatementSegment"),
		g.Ref("DropTableStatementSegment"),
		g.Ref("DropViewStatementSegment"),
		g.Ref("CreateSchemaStatementSegment"),
		g.Ref("SetSchemaStatementSegment"),
		g.Ref("DropSchemaStatementSegment"),
		g.Ref("TransactionStatementSegment"),
		g.Ref("UseStatementSegment"),
	))).

	// Symbols and operators
	Add("CommaSegment", dialect.GrammarDef(g.Symbol("comma", ","))).
	Add("DotSegment", dialect.GrammarDef(g.Symbol("dot", "."))).
	Add("StarSegment", dialect.GrammarDef(g.Symbol("star", "*"))).
	Add("EqualsSegment", dialect.GrammarDef(g.Symbol("comparison_operator", "="))).
	Add("GreaterThanSegment", dialect.GrammarDef(g.Symbol("comparison_operator", ">"))).
	Add("LessThanSegment", dialect.GrammarDef(g.Symbol("comparison_operator", "<"))).
	Add("GreaterThanOrEqualToSegment", dialect.GrammarDef(g.Symbol("comparison_operator", ">="))).
	Add("LessThanOrEqualToSegment", dialect.GrammarDef(g.Symbol("comparison_operator", "<="))).
	Add("NotEqualToSegment_a", dialect.GrammarDef(g.Symbol("comparison_operator", "!="))).
	Add("NotEqualToSegment_b", dialect.GrammarDef(g.Symbol("comparison_operator", "<>"))).
	Add("ComparisonOperatorGrammar", dialect.GrammarDef(g.OneOf(
		g.Ref("EqualsSegment"),
		g.Ref("GreaterThanSegment"),
		g.Ref("LessThanSegment"),
		g.Ref("GreaterThanOrEqualToSegment"),
		g.Ref("LessThanOrEqualToSegment"),
		g.Ref("NotEqualToSegment_a"),
		g.Ref("NotEqualToSegment_b"),
	))).
	Add("ArithmeticBinaryOperatorGrammar", dialect.GrammarDef(g.OneOf(
		g.Leaf("binary_operator", ""),
		g.Leaf("star", "binary_operator"),
	))).
	Add("BooleanBinaryOperatorGrammar", dialect.GrammarDef(g.OneOf(g.Keyword("and"), g.Keyword("or")))).
	Add("BinaryOperatorGrammar", dialect.GrammarDef(g.OneOf(
		g.Ref("ArithmeticBinaryOperatorGrammar"),
		g.Ref("ComparisonOperatorGrammar"),
		g.Ref("BooleanBinaryOperatorGrammar"),
	))).
	Add("LikeGrammar", dialect.GrammarDef(g.OneOf(g.Keyword("like")))).
	Add("ShorthandCastGrammar", dialect.GrammarDef(g.Nothing())).

	// Identifiers and references
	Add("NakedIdentifierSegment", dialect.GrammarDef(g.Word("identifier", dialect.ReservedKeywords))).
	Add("QuotedIdentifierSegment", dialect.GrammarDef(g.Leaf("quoted_identifier", ""))).
	Add("SingleIdentifierGrammar", dialect.GrammarDef(g.OneOf(g.Ref("NakedIdentifierSegment"), g.Ref("QuotedIdentifierSegment")))).
	Add("ColumnReferenceSegment", dialect.SegmentDef("column_reference", objectReference())).
	Add("TableReferenceSegment", dialect.SegmentDef("table_reference", objectReference())).
	Add("SchemaReferenceSegment", dialect.SegmentDef("schema_reference", g.Seq(g.Ref("SingleIdentifierGrammar")))).
	Add("WildcardExpressionSegment", dialect.SegmentDef("wildcard_expression", g.Seq(
		g.AnyNumberOf(g.Seq(g.Ref("SingleIdentifierGrammar"), g.Ref("DotSegment"))),
		g.Ref("StarSegment"),
	))).
	Add("BracketedColumnReferenceListGrammar", dialect.GrammarDef(g.Bracketed(
		g.Delimited(g.Ref("ColumnReferenceSegment"), g.Ref("CommaSegment")),
	))).
	Add("AliasExpressionSegment", dialect.SegmentDef("alias_expression", g.Seq(
		g.Optional(g.Keyword("as")),
		g.Ref("SingleIdentifierGrammar"),
	))).

	// Literals
	Add("QuotedLiteralSegment", dialect.GrammarDef(g.Leaf("quoted_literal", ""))).
	Add("NumericLiteralSegment", dialect.GrammarDef(g.Leaf("numeric_literal", ""))).
	Add("BooleanLiteralGrammar", dialect.GrammarDef(g.OneOf(g.Keyword("true"), g.Keyword("false")))).
	Add("NullLiteralSegment", dialect.GrammarDef(g.Keyword("null"))).
	Add("LiteralGrammar", dialect.GrammarDef(g.OneOf(
		g.Ref("QuotedLiteralSegment"),
		g.Ref("NumericLiteralSegment"),
		g.Ref("BooleanLiteralGrammar"),
		g.Ref("NullLiteralSegment"),
	))).
	Add("DatetimeUnitSegment", dialect.SegmentDef("date_part", g.SetMember(dialect.DatetimeUnits, "keyword"))).
	Add("IntervalExpressionSegment", dialect.SegmentDef("interval_expression", g.Seq(
		g.Keyword("interval"),
		g.OneOf(
			g.Seq(g.Ref("NumericLiteralSegment"), g.Ref("DatetimeUnitSegment")),
			g.Seq(g.Ref("QuotedLiteralSegment"), g.Optional(g.Ref("DatetimeUnitSegment"))),
		),
	))).
	Add("BareFunctionSegment", dialect.SegmentDef("bare_function", g.SetMember(dialect.BareFunctions, "keyword"))).

	// Expressions
	Add("ExpressionSegment", dialect.SegmentDef("expression", g.Seq(
		g.Ref("OperandGrammar"),
		g.AnyNumberOf(g.Ref("ExpressionTailGrammar")),
	))).
	Add("ExpressionTailGrammar", dialect.GrammarDef(g.OneOf(
		g.Seq(g.Ref("BinaryOperatorGrammar"), g.Ref("OperandGrammar")),
		g.Seq(g.Optional(g.Keyword("not")), g.Ref("LikeGrammar"), g.Ref("OperandGrammar")),
		g.Ref("InPredicateGrammar"),
		g.Ref("IsPredicateGrammar"),
		g.Ref("BetweenPredicateGrammar"),
	))).
	Add("InPredicateGrammar", dialect.GrammarDef(g.Seq(
		g.Optional(g.Keyword("not")),
		g.Keyword("in"),
		g.Bracketed(g.OneOf(
			g.Ref("SelectableGrammar"),
			g.Delimited(g.Ref("ExpressionSegment"), g.Ref("CommaSegment")),
		)),
	))).
	Add("IsPredicateGrammar", dialect.GrammarDef(g.Seq(
		g.Keyword("is"),
		g.Optional(g.Keyword("not")),
		g.OneOf(
			g.Ref("NullLiteralSegment"),
			g.Ref("BooleanLiteralGrammar"),
			g.Seq(g.Keyword("distinct"), g.Keyword("from"), g.Ref("OperandGrammar")),
		),
	))).
	Add("BetweenPredicateGrammar", dialect.GrammarDef(g.Seq(
		g.Optional(g.Keyword("not")),
		g.Keyword("between"),
		g.Ref("OperandGrammar"),
		g.Keyword("and"),
		g.Ref("OperandGrammar"),
	))).
	Add("OperandGrammar", dialect.GrammarDef(g.Seq(
		g.Ref("PrimaryOperandGrammar"),
		g.AnyNumberOf(g.Ref("ShorthandCastGrammar")),
	))).
	Add("PrimaryOperandGrammar", dialect.GrammarDef(g.OneOf(
		g.Ref("LiteralGrammar"),
		g.Ref("IntervalExpressionSegment"),
		g.Ref("BareFunctionSegment"),
		g.Ref("CastExpressionSegment"),
		g.Ref("FunctionSegment"),
		g.Ref("ColumnReferenceSegment"),
		g.Ref("CaseExpressionSegment"),
		g.Seq(g.Keyword("exists"), g.Bracketed(g.Ref("SelectableGrammar"))),
		g.Bracketed(g.Ref("SelectableGrammar")),
		g.Bracketed(g.Delimited(g.Ref("ExpressionSegment"), g.Ref("CommaSegment"))),
		g.Seq(g.Keyword("not"), g.Ref("OperandGrammar")),
		g.Seq(g.OneOf(g.Symbol("binary_operator", "-"), g.Symbol("binary_operator", "+")), g.Ref("OperandGrammar")),
	))).
	Add("CastExpressionSegment", dialect.SegmentDef("cast_expression", g.Seq(
		g.Keyword("cast"),
		g.Bracketed(g.Ref("ExpressionSegment"), g.Keyword("as"), g.Ref("DatatypeSegment")),
	))).
	Add("CaseExpressionSegment", dialect.SegmentDef("case_expression", g.Seq(
		g.Keyword("case"),
		g.Optional(g.Ref("ExpressionSegment")),
		g.Repeat(1, 0, g.Ref("WhenClauseSegment")),
		g.Optional(g.Ref("ElseClauseSegment")),
		g.Keyword("end"),
	))).
	Add("WhenClauseSegment", dialect.SegmentDef("when_clause", g.Seq(
		g.Keyword("when"), g.Ref("ExpressionSegment"), g.Keyword("then"), g.Ref("ExpressionSegment"),
	))).
	Add("ElseClauseSegment", dialect.SegmentDef("else_clause", g.Seq(g.Keyword("else"), g.Ref("ExpressionSegment")))).

	// Functions
	Add("FunctionNameSegment", dialect.SegmentDef("function_name", g.Word("function_name_identifier", dialect.ReservedKeywords))).
	Add("DatePartFunctionNameSegment", dialect.SegmentDef("function_name", g.Keyword("dateadd"))).
	Add("FunctionContentsGrammar", dialect.GrammarDef(g.OneOf(
		g.Ref("StarSegment"),
		g.Seq(
			g.Optional(g.OneOf(g.Keyword("distinct"), g.Keyword("all"))),
			g.Delimited(g.Ref("ExpressionSegment"), g.Ref("CommaSegment")),
		),
	))).
	Add("FunctionSegment", dialect.SegmentDef("function", g.OneOf(
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
			g.Optional(g.Seq(g.OneOf(g.Keyword("ignore"), g.Keyword("respect")), g.Keyword("nulls"))),
			g.Optional(g.Ref("OverClauseSegment")),
		),
	))).
	Add("OverClauseSegment", dialect.SegmentDef("over_clause", g.Seq(
		g.Keyword("over"),
		g.OneOf(
			g.Ref("SingleIdentifierGrammar"),
			g.Bracketed(
				g.Optional(g.Ref("PartitionClauseSegment")),
				g.Optional(g.Ref("OrderByClauseSegment")),
				g.Optional(g.Ref("FrameClauseSegment")),
			),
		),
	))).
	Add("PartitionClauseSegment", dialect.SegmentDef("partitionby_clause", g.Seq(
		g.Keyword("partition"), g.Keyword("by"),
		g.Delimited(g.Ref("ExpressionSegment"), g.Ref("CommaSegment")),
	))).
	Add("FrameClauseSegment", dialect.SegmentDef("frame_clause", g.Seq(
		g.OneOf(g.Keyword("rows"), g.Keyword("range")),
		g.OneOf(
			g.Ref("FrameBoundGrammar"),
			g.Seq(g.Keyword("between"), g.Ref("FrameBoundGrammar"), g.Keyword("and"), g.Ref("FrameBoundGrammar")),
		),
	))).
	Add("FrameBoundGrammar", dialect.GrammarDef(g.OneOf(
		g.Seq(g.Keyword("current"), g.Keyword("row")),
		g.Seq(
			g.OneOf(g.Keyword("unbounded"), g.Ref("NumericLiteralSegment")),
			g.OneOf(g.Keyword("preceding"), g.Keyword("following")),
		),
	))).
	Add("DatatypeSegment", dialect.SegmentDef("data_type", g.Seq(
		g.Word("data_type_identifier", dialect.ReservedKeywords),
		g.Optional(g.Word("data_type_identifier", dialect.ReservedKeywords)),
		g.Optional(g.Bracketed(g.Delimited(g.Ref("NumericLiteralSegment"), g.Ref("CommaSegment")))),
	))).

	// Selects
	Add("SelectableGrammar", dialect.GrammarDef(g.OneOf(
		g.Ref("WithCompoundStatementSegment"),
		g.Ref("NonWithSelectableGrammar"),
	))).
	Add("NonWithSelectableGrammar", dialect.GrammarDef(g.OneOf(
		g.Ref("SetExpressionSegment"),
		g.Ref("NonSetSelectableGrammar"),
	))).
	Add("NonSetSelectableGrammar", dialect.GrammarDef(g.OneOf(
		g.Ref("SelectStatementSegment"),
		g.Bracketed(g.Ref("SelectableGrammar")),
	))).
	Add("NonWithNonSelectableGrammar", dialect.GrammarDef(g.OneOf(
		g.Ref("InsertStatementSegment"),
		g.Ref("UpdateStatementSegment"),
		g.Ref("DeleteStatementSegment"),
	))).
	Add("WithCompoundStatementSegment", dialect.SegmentDef("with_compound_statement", g.Seq(
		g.Keyword("with"),
		g.Optional(g.Keyword("recursive")),
		g.Delimited(g.Ref("CTEDefinitionSegment"), g.Ref("CommaSegment")),
		g.OneOf(g.Ref("NonWithSelectableGrammar"), g.Ref("NonWithNonSelectableGrammar")),
	))).
	Add("CTEDefinitionSegment", dialect.SegmentDef("common_table_expression", g.Seq(
		g.Ref("SingleIdentifierGrammar"),
		g.Optional(g.Ref("CTEColumnListSegment")),
		g.Keyword("as"),
		g.Bracketed(g.Ref("SelectableGrammar")),
	))).
	Add("CTEColumnListSegment", dialect.SegmentDef("cte_column_list", g.Bracketed(
		g.Delimited(g.Ref("SingleIdentifierGrammar"), g.Ref("CommaSegment")),
	))).
	Add("SetExpressionSegment", dialect.SegmentDef("set_expression", g.Seq(
		g.Ref("NonSetSelectableGrammar"),
		g.Repeat(1, 0, g.Seq(g.Ref("SetOperatorSegment"), g.Ref("NonSetSelectableGrammar"))),
		g.Optional(g.Ref("OrderByClauseSegment")),
		g.Optional(g.Ref("LimitClauseSegment")),
	))).
	Add("SetOperatorSegment", dialect.SegmentDef("set_operator", g.OneOf(
		g.Seq(g.Keyword("union"), g.Optional(g.OneOf(g.Keyword("all"), g.Keyword("distinct")))),
		g.Keyword("intersect"),
		g.Keyword("except"),
	))).
	Add("SelectStatementSegment", dialect.SegmentDef("select_statement", g.Seq(
		g.Ref("SelectClauseSegment"),
		g.Optional(g.Ref("FromClauseSegment")),
		g.Optional(g.Ref("WhereClauseSegment")),
		g.Optional(g.Ref("GroupByClauseSegment")),
		g.Optional(g.Ref("HavingClauseSegment")),
		g.Optional(g.Ref("OrderByClauseSegment")),
		g.Optional(g.Ref("LimitClauseSegment")),
	))).
	Add("SelectClauseSegment", dialect.SegmentDef("select_clause", g.Seq(
		g.Keyword("select"),
		g.Optional(g.Ref("SelectClauseModifierSegment")),
		g.Delimited(g.Ref("SelectClauseElementSegment"), g.Ref("CommaSegment")),
	))).
	Add("SelectClauseModifierSegment", dialect.SegmentDef("select_clause_modifier", g.OneOf(
		g.Keyword("distinct"), g.Keyword("all"),
	))).
	Add("SelectClauseElementSegment", dialect.SegmentDef("select_clause_element", g.OneOf(
		g.Ref("WildcardExpressionSegment"),
		g.Seq(g.Ref("ExpressionSegment"), g.Optional(g.Ref("AliasExpressionSegment"))),
	))).
	Add("FromClauseSegment", dialect.SegmentDef("from_clause", g.Seq(
		g.Keyword("from"),
		g.Delimited(g.Ref("FromExpressionSegment"), g.Ref("CommaSegment")),
	))).
	Add("FromExpressionSegment", dialect.SegmentDef("from_expression", g.Seq(
		g.Ref("FromExpressionElementSegment"),
		g.AnyNumberOf(g.Ref("JoinClauseSegment")),
	))).
	Add("FromExpressionElementSegment", dialect.SegmentDef("from_expression_element", g.Seq(
		g.OneOf(
			g.Ref("FunctionSegment"),
			g.Ref("TableReferenceSegment"),
			g.Bracketed(g.Ref("SelectableGrammar")),
		),
		g.Optional(g.Ref("AliasExpressionSegment")),
	))).
	Add("JoinClauseSegment", dialect.SegmentDef("join_clause", g.Seq(
		g.Optional(g.Ref("JoinTypeKeywordsGrammar")),
		g.Ref("JoinKeywordsGrammar"),
		g.Ref("FromExpressionElementSegment"),
		g.Optional(g.OneOf(g.Ref("JoinOnConditionSegment"), g.Ref("JoinUsingConditionGrammar"))),
	))).
	Add("JoinTypeKeywordsGrammar", dialect.GrammarDef(g.OneOf(
		g.Keyword("cross"),
		g.Keyword("inner"),
		g.Keyword("natural"),
		g.Seq(g.OneOf(g.Keyword("full"), g.Keyword("left"), g.Keyword("right")), g.Optional(g.Keyword("outer"))),
	))).
	Add("JoinKeywordsGrammar", dialect.GrammarDef(g.Keyword("join"))).
	Add("JoinOnConditionSegment", dialect.SegmentDef("join_on_condition", g.Seq(g.Keyword("on"), g.Ref("ExpressionSegment")))).
	Add("JoinUsingConditionGrammar", dialect.GrammarDef(g.Seq(
		g.Keyword("using"),
		g.Bracketed(g.Delimited(g.Ref("SingleIdentifierGrammar"), g.Ref("CommaSegment"))),
	))).
	Add("WhereClauseSegment", dialect.SegmentDef("where_clause", g.Seq(g.Keyword("where"), g.Ref("ExpressionSegment")))).
	Add("GroupByClauseSegment", dialect.SegmentDef("groupby_clause", g.Seq(
		g.Keyword("group"), g.Keyword("by"),
		g.Delimited(g.Ref("ExpressionSegment"), g.Ref("CommaSegment")),
	))).
	Add("HavingClauseSegment", dialect.SegmentDef("having_clause", g.Seq(g.Keyword("having"), g.Ref("ExpressionSegment")))).
	Add("OrderByClauseSegment", dialect.SegmentDef("orderby_clause", g.Seq(
		g.Keyword("order"), g.Keyword("by"),
		g.Delimited(g.Seq(
			g.Ref("ExpressionSegment"),
			g.Optional(g.OneOf(g.Keyword("asc"), g.Keyword("desc"))),
			g.Optional(g.Seq(g.Keyword("nulls"), g.OneOf(g.Keyword("first"), g.Keyword("last")))),
		), g.Ref("CommaSegment")),
	))).
	Add("LimitClauseSegment", dialect.SegmentDef("limit_clause", g.Seq(
		g.Keyword("limit"),
		g.OneOf(g.Ref("NumericLiteralSegment"), g.Keyword("all")),
		g.Optional(g.Seq(g.Keyword("offset"), g.Ref("NumericLiteralSegment"))),
	))).

	// Data manipulation
	Add("InsertStatementSegment", dialect.SegmentDef("insert_statement", g.Seq(
		g.Keyword("insert"),
		g.Keyword("into"),
		g.Ref("TableReferenceSegment"),
		g.Optional(g.Ref("BracketedColumnReferenceListGrammar")),
		g.OneOf(
			g.Ref("ValuesClauseSegment"),
			g.Ref("SelectableGrammar"),
			g.Seq(g.Keyword("default"), g.Keyword("values")),
		),
	))).
	Add("ValuesClauseSegment", dialect.SegmentDef("values_clause", g.Seq(
		g.Keyword("values"),
		g.Delimited(
			g.Bracketed(g.Delimited(g.Ref("ExpressionSegment"), g.Ref("CommaSegment"))),
			g.Ref("CommaSegment"),
		),
	))).
	Add("UpdateStatementSegment", dialect.SegmentDef("update_statement", g.Seq(
		g.Keyword("update"),
		g.Ref("TableReferenceSegment"),
		g.Optional(g.Ref("AliasExpressionSegment")),
		g.Ref("SetClauseListSegment"),
		g.Optional(g.Ref("FromClauseSegment")),
		g.Optional(g.Ref("WhereClauseSegment")),
	))).
	Add("SetClauseListSegment", dialect.SegmentDef("set_clause_list", g.Seq(
		g.Keyword("set"),
		g.Delimited(g.Ref("SetClauseSegment"), g.Ref("CommaSegment")),
	))).
	Add("SetClauseSegment", dialect.SegmentDef("set_clause", g.Seq(
		g.Ref("ColumnReferenceSegment"), g.Ref("EqualsSegment"), g.Ref("ExpressionSegment"),
	))).
	Add("DeleteStatementSegment", dialect.SegmentDef("delete_statement", g.Seq(
		g.Keyword("delete"),
		g.Keyword("from"),
		g.Ref("TableReferenceSegment"),
		g.Optional(g.Ref("AliasExpressionSegment")),
		g.Optional(g.Ref("WhereClauseSegment")),
	))).

	// Data definition
	Add("OrReplaceGrammar", dialect.GrammarDef(g.Seq(g.Keyword("or"), g.Keyword("replace")))).
	Add("TemporaryGrammar", dialect.GrammarDef(g.OneOf(g.Keyword("temp"), g.Keyword("temporary")))).
	Add("IfExistsGrammar", dialect.GrammarDef(g.Seq(g.Keyword("if"), g.Keyword("exists")))).
	Add("IfNotExistsGrammar", dialect.GrammarDef(g.Seq(g.Keyword("if"), g.Keyword("not"), g.Keyword("exists")))).
	Add("DropBehaviorGrammar", dialect.GrammarDef(g.OneOf(g.Keyword("cascade"), g.Keyword("restrict")))).
	Add("CreateTableStatementSegment", dialect.SegmentDef("create_table_statement", g.Seq(
		g.Keyword("create"),
		g.Optional(g.Ref("OrReplaceGrammar")),
		g.Optional(g.Ref("TemporaryGrammar")),
		g.Keyword("table"),
		g.Optional(g.Ref("IfNotExistsGrammar")),
		g.Ref("TableReferenceSegment"),
		g.OneOf(
			g.Bracketed(g.Delimited(
				g.OneOf(g.Ref("TableConstraintSegment"), g.Ref("ColumnDefinitionSegment")),
				g.Ref("CommaSegment"),
			)),
			g.Seq(g.Keyword("as"), g.Ref("SelectableGrammar")),
		),
	))).
	Add("ColumnDefinitionSegment", dialect.SegmentDef("column_definition", g.Seq(
		g.Ref("SingleIdentifierGrammar"),
		g.Ref("DatatypeSegment"),
		g.AnyNumberOf(g.Ref("ColumnConstraintSegment")),
	))).
	Add("ColumnConstraintSegment", dialect.SegmentDef("column_constraint_segment", g.Seq(
		g.Optional(g.Seq(g.Keyword("constraint"), g.Ref("NakedIdentifierSegment"))),
		g.OneOf(
			g.Seq(g.Optional(g.Keyword("not")), g.Keyword("null")),
			g.Seq(g.Keyword("primary"), g.Keyword("key")),
			g.Keyword("unique"),
			g.Seq(g.Keyword("default"), g.Ref("OperandGrammar")),
			g.Ref("ReferenceDefinitionGrammar"),
			g.Seq(g.Keyword("check"), g.Bracketed(g.Ref("ExpressionSegment"))),
			g.Seq(g.Keyword("collate"), g.Ref("NakedIdentifierSegment")),
		),
	))).
	Add("ReferenceDefinitionGrammar", dialect.GrammarDef(g.Seq(
		g.Keyword("references"),
		g.Ref("TableReferenceSegment"),
		g.Optional(g.Ref("BracketedColumnReferenceListGrammar")),
	))).
	Add("TableConstraintSegment", dialect.SegmentDef("table_constraint", g.Seq(
		g.Optional(g.Seq(g.Keyword("constraint"), g.Ref("NakedIdentifierSegment"))),
		g.OneOf(
			g.Seq(g.Keyword("unique"), g.Ref("BracketedColumnReferenceListGrammar")),
			g.Seq(g.Keyword("primary"), g.Keyword("key"), g.Ref("BracketedColumnReferenceListGrammar")),
			g.Seq(
				g.Keyword("foreign"), g.Keyword("key"),
				g.Ref("BracketedColumnReferenceListGrammar"),
				g.Ref("ReferenceDefinitionGrammar"),
			),
		),
	))).
	Add("CreateViewStatementSegment", dialect.SegmentDef("create_view_statement", g.Seq(
		g.Keyword("create"),
		g.Optional(g.Ref("OrReplaceGrammar")),
		g.Optional(g.Ref("TemporaryGrammar")),
		g.Keyword("view"),
		g.Optional(g.Ref("IfNotExistsGrammar")),
		g.Ref("TableReferenceSegment"),
		g.Optional(g.Ref("BracketedColumnReferenceListGrammar")),
		g.Keyword("as"),
		g.Ref("SelectableGrammar"),
	))).
	Add("DropTableStatementSegment", dialect.SegmentDef("drop_table_statement", g.Seq(
		g.Keyword("drop"),
		g.Optional(g.Ref("TemporaryGrammar")),
		g.Keyword("table"),
		g.Optional(g.Ref("IfExistsGrammar")),
		g.Delimited(g.Ref("TableReferenceSegment"), g.Ref("CommaSegment")),
		g.Optional(g.Ref("DropBehaviorGrammar")),
	))).
	Add("DropViewStatementSegment", dialect.SegmentDef("drop_view_statement", g.Seq(
		g.Keyword("drop"),
		g.Keyword("view"),
		g.Optional(g.Ref("IfExistsGrammar")),
		g.Ref("TableReferenceSegment"),
		g.Optional(g.Ref("DropBehaviorGrammar")),
	))).
	Add("CreateSchemaStatementSegment", dialect.SegmentDef("create_schema_statement", g.Seq(
		g.Keyword("create"),
		g.Keyword("schema"),
		g.Optional(g.Ref("IfNotExistsGrammar")),
		g.Ref("SchemaReferenceSegment"),
	))).
	Add("SetSchemaStatementSegment", dialect.SegmentDef("set_schema_statement", g.Seq(
		g.Keyword("set"),
		g.Keyword("schema"),
		g.Ref("SchemaReferenceSegment"),
	))).
	Add("DropSchemaStatementSegment", dialect.SegmentDef("drop_schema_statement", g.Seq(
		g.Keyword("drop"),
		g.Keyword("schema"),
		g.Optional(g.Ref("IfExistsGrammar")),
		g.Ref("SchemaReferenceSegment"),
		g.Optional(g.Ref("DropBehaviorGrammar")),
	))).
	Add("TransactionStatementSegment", dialect.SegmentDef("transaction_statement", g.Seq(
		g.OneOf(g.Keyword("start"), g.Keyword("begin"), g.Keyword("commit"), g.Keyword("rollback"), g.Keyword("end")),
		g.Optional(g.OneOf(g.Keyword("transaction"), g.Keyword("work"))),
	))).
	Add("UseStatementSegment", dialect.SegmentDef("use_statement", g.Seq(
		g.Keyword("use"),
		g.Ref("SchemaReferenceSegment"),
	))).
	MustBuild()

// objectReference matches a dotted name such as db.schema.table.
func objectReference() *g.Grammar {
	return g.Seq(
		g.Ref("SingleIdentifierGrammar"),
		g.AnyNumberOf(g.Seq(g.Ref("DotSegment"), g.Ref("SingleIdentifierGrammar"))),
	)
}
