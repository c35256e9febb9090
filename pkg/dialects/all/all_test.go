package all_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leapstack-labs/leaplint/pkg/dialect"
	_ "github.com/leapstack-labs/leaplint/pkg/dialects/all"
)

func TestAllDialectsRegistered(t *testing.T) {
	assert.Equal(t, []string{
		"ansi", "databricks", "duckdb", "hive", "postgres", "redshift", "snowflake", "spark3",
	}, dialect.List())
}
