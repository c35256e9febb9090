package postgres_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leaplint/pkg/dialect"
	"github.com/leapstack-labs/leaplint/pkg/dialects/ansi"
	"github.com/leapstack-labs/leaplint/pkg/dialects/postgres"
	"github.com/leapstack-labs/leaplint/pkg/parser"
)

func TestPostgresParses(t *testing.T) {
	tests := []struct {
		name    string
		sql     string
		segment string
	}{
		{"cast shorthand", "SELECT a::int FROM t", "data_type"},
		{"ilike", "SELECT a FROM t WHERE b ILIKE 'x%'", "where_clause"},
		{"geometry", "SELECT POINT(1 2)", "wkt_geometry_type"},
		{"filter", "SELECT count(*) FILTER (WHERE a > 1) FROM t", "function"},
		{"extension", "CREATE EXTENSION IF NOT EXISTS postgis WITH SCHEMA public CASCADE", "create_extension_statement"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := parser.Parse(tt.sql, postgres.Postgres)
			require.NoError(t, err)
			assert.Empty(t, parser.Errors(tree))
			assert.NotEmpty(t, tree.FindAll(tt.segment))
		})
	}
}

func TestPostgresOverridesReachANSIGrammars(t *testing.T) {
	sql := "SELECT a::int FROM t"

	tree, err := parser.Parse(sql, ansi.ANSI)
	require.NoError(t, err)
	assert.NotEmpty(t, parser.Errors(tree))

	tree, err = parser.Parse(sql, postgres.Postgres)
	require.NoError(t, err)
	assert.Empty(t, parser.Errors(tree))
}

func TestPostgresLeavesANSIUntouched(t *testing.T) {
	assert.Equal(t, "ansi", postgres.Postgres.Parent())
	assert.False(t, ansi.ANSI.HasRule("CastOperatorSegment"))
	assert.True(t, postgres.Postgres.HasRule("CastOperatorSegment"))

	like, _ := ansi.ANSI.Rule("LikeGrammar")
	assert.Len(t, like.Grammar.Elements, 1)
	like, _ = postgres.Postgres.Rule("LikeGrammar")
	assert.Len(t, like.Grammar.Elements, 2)

	assert.True(t, postgres.Postgres.IsKeyword(dialect.ReservedKeywords, "ilike"))
	assert.False(t, ansi.ANSI.IsKeyword(dialect.ReservedKeywords, "ilike"))
}
