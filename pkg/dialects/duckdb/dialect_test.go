package duckdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leaplint/pkg/dialect"
	"github.com/leapstack-labs/leaplint/pkg/parser"
)

func TestDialectRegistration(t *testing.T) {
	d, ok := dialect.Get("duckdb")
	require.True(t, ok, "duckdb dialect should be registered")
	assert.Equal(t, "postgres", d.Parent())
}

func TestParses(t *testing.T) {
	tests := []struct {
		name    string
		sql     string
		segment string
	}{
		{"exclude", "SELECT * EXCLUDE (a, b) FROM t", "star_modifier"},
		{"replace", "SELECT * REPLACE (a + 1 AS a) FROM t", "star_modifier"},
		{"group by all", "SELECT a, sum(b) FROM t GROUP BY ALL", "groupby_clause"},
		{"order by all", "SELECT a FROM t ORDER BY ALL DESC", "orderby_clause"},
		{"qualify", "SELECT a FROM t QUALIFY a > 1", "qualify_clause"},
		{"asof join", "SELECT * FROM t ASOF JOIN u ON t.ts >= u.ts", "join_clause"},
		{"positional join", "SELECT * FROM t POSITIONAL JOIN u", "join_clause"},
		{"ilike from postgres", "SELECT a FROM t WHERE a ILIKE 'x'", "where_clause"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := parser.Parse(tt.sql, DuckDB)
			require.NoError(t, err)
			assert.Empty(t, parser.Errors(tree))
			assert.NotEmpty(t, tree.FindAll(tt.segment))
		})
	}
}
