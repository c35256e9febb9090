package snowflake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leaplint/pkg/dialect"
	"github.com/leapstack-labs/leaplint/pkg/parser"
)

func TestDialectRegistration(t *testing.T) {
	d, ok := dialect.Get("snowflake")
	require.True(t, ok, "snowflake dialect should be registered")
	assert.Equal(t, "ansi", d.Parent())
	assert.True(t, d.IsKeyword(dialect.ReservedKeywords, "qualify"))
}

func TestParses(t *testing.T) {
	tests := []struct {
		name    string
		sql     string
		segment string
	}{
		{"sample", "SELECT a FROM t SAMPLE BERNOULLI (10) SEED (42) QUALIFY a = 1", "sample_expression"},
		{"qualify", "SELECT a FROM t QUALIFY a = 1", "qualify_clause"},
		{"regexp", "SELECT a FROM t WHERE a REGEXP '^x'", "where_clause"},
		{"cast shorthand", "SELECT a::number FROM t", "data_type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := parser.Parse(tt.sql, Snowflake)
			require.NoError(t, err)
			assert.Empty(t, parser.Errors(tree))
			assert.NotEmpty(t, tree.FindAll(tt.segment))
		})
	}
}
