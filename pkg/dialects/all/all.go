// Package all registers every built-in dialect with the dialect registry.
package all

import (
	_ "github.com/leapstack-labs/leaplint/pkg/dialects/ansi"
	_ "github.com/leapstack-labs/leaplint/pkg/dialects/databricks"
	_ "github.com/leapstack-labs/leaplint/pkg/dialects/duckdb"
	_ "github.com/leapstack-labs/leaplint/pkg/dialects/hive"
	_ "github.com/leapstack-labs/leaplint/pkg/dialects/postgres"
	_ "github.com/leapstack-labs/leaplint/pkg/dialects/redshift"
	_ "github.com/leapstack-labs/leaplint/pkg/dialects/snowflake"
	_ "github.com/leapstack-labs/leaplint/pkg/dialects/spark3"
)
