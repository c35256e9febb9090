package databricks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leaplint/pkg/dialect"
	"github.com/leapstack-labs/leaplint/pkg/parser"
)

func TestDialectRegistration(t *testing.T) {
	d, ok := dialect.Get("databricks")
	require.True(t, ok, "databricks dialect should be registered")
	assert.Equal(t, "spark3", d.Parent())
}

func TestParses(t *testing.T) {
	tests := []struct {
		name    string
		sql     string
		segment string
	}{
		{"qualify", "SELECT a FROM t QUALIFY row_number() OVER (PARTITION BY a ORDER BY b) = 1", "qualify_clause"},
		{"rlike", "SELECT a FROM t WHERE a RLIKE '^x'", "where_clause"},
		{"cast shorthand", "SELECT a::string FROM t", "data_type"},
		{"use catalog", "USE CATALOG main", "use_catalog_statement"},
		{"inherits spark", "SELECT * FROM a LEFT ANTI JOIN b ON a.x = b.x", "join_clause"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := parser.Parse(tt.sql, Databricks)
			require.NoError(t, err)
			assert.Empty(t, parser.Errors(tree))
			assert.NotEmpty(t, tree.FindAll(tt.segment))
		})
	}
}
