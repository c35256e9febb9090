package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/leaplint/internal/cli/output"
	"github.com/leapstack-labs/leaplint/pkg/dialect"
)

func TestDialectsCommandList(t *testing.T) {
	out, err := executeCommand(t, "", "dialects", "--format", "markdown")
	require.NoError(t, err)

	assert.Contains(t, out, "# Dialects")
	assert.Contains(t, out, "| Dialect | Parent | Rules | Keyword Sets |")
	for _, name := range dialect.List() {
		assert.Contains(t, out, "| "+name+" |")
	}
	assert.NotContains(t, out, "Grammar rules")
}

func TestDialectsCommandJSON(t *testing.T) {
	out, err := executeCommand(t, "", "dialects", "--format", "json")
	require.NoError(t, err)

	var infos []output.DialectInfo
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	require.Len(t, infos, len(dialect.List()))

	byName := make(map[string]output.DialectInfo, len(infos))
	for _, info := range infos {
		byName[info.Name] = info
	}
	assert.Empty(t, byName["ansi"].Parent)
	assert.Equal(t, "ansi", byName["postgres"].Parent)
	assert.Positive(t, byName["postgres"].KeywordSets[dialect.ReservedKeywords])
	assert.Greater(t, byName["postgres"].KeywordSets[dialect.ReservedKeywords],
		byName["ansi"].KeywordSets[dialect.ReservedKeywords])
	assert.Empty(t, byName["ansi"].RuleNames)
}

func TestDialectsCommandDetail(t *testing.T) {
	out, err := executeCommand(t, "", "dialects", "Postgres", "--rules", "--format", "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "| postgres | ansi |")
	assert.Contains(t, out, "## Keyword sets")
	assert.Contains(t, out, "## Grammar rules")
	assert.Contains(t, out, "- `SelectStatementSegment`")
}

func TestDialectsCommandYAML(t *testing.T) {
	out, err := executeCommand(t, "", "dialects", "duckdb", "--rules", "--format", "yaml")
	require.NoError(t, err)

	var infos []output.DialectInfo
	require.NoError(t, yaml.Unmarshal([]byte(out), &infos))
	require.Len(t, infos, 1)
	assert.Equal(t, "duckdb", infos[0].Name)
	assert.Equal(t, len(infos[0].RuleNames), infos[0].Rules)
}

func TestDialectsCommandUnknown(t *testing.T) {
	_, err := executeCommand(t, "", "dialects", "oracle")
	require.ErrorIs(t, err, dialect.ErrUnknownDialect)
}
