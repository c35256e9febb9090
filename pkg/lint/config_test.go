package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leaplint/pkg/core"
	"github.com/leapstack-labs/leaplint/pkg/lint"
)

func TestFromLintConfig(t *testing.T) {
	cfg, err := lint.FromLintConfig(&core.LintConfig{
		Disabled: []string{"LT12"},
		Severity: map[string]string{"LT08": "Error"},
		Rules: map[string]core.RuleOptions{
			"LT08": {"comma_style": "leading"},
		},
	})
	require.NoError(t, err)

	assert.True(t, cfg.IsDisabled("LT12"))
	assert.False(t, cfg.IsDisabled("LT08"))
	assert.Equal(t, core.SeverityError, cfg.GetSeverity("LT08", core.SeverityWarning))
	assert.Equal(t, core.SeverityInfo, cfg.GetSeverity("LT12", core.SeverityInfo))
	assert.Equal(t, map[string]any{"comma_style": "leading"}, cfg.GetRuleOptions("LT08"))
}

func TestFromLintConfig_Nil(t *testing.T) {
	cfg, err := lint.FromLintConfig(nil)
	require.NoError(t, err)
	assert.False(t, cfg.IsDisabled("LT08"))
	assert.Nil(t, cfg.GetRuleOptions("LT08"))
}

func TestFromLintConfig_BadSeverity(t *testing.T) {
	_, err := lint.FromLintConfig(&core.LintConfig{Severity: map[string]string{"LT08": "fatal"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `lint.severity.LT08: unknown severity "fatal"`)
}

func TestConfig_NilReceiver(t *testing.T) {
	var cfg *lint.Config
	assert.False(t, cfg.IsDisabled("LT08"))
	assert.Equal(t, core.SeverityHint, cfg.GetSeverity("LT08", core.SeverityHint))
	assert.Nil(t, cfg.GetRuleOptions("LT08"))
}

func TestConfig_SetRuleOptionsMerges(t *testing.T) {
	cfg := lint.NewConfig().
		SetRuleOptions("LT08", map[string]any{"comma_style": "leading"}).
		SetRuleOptions("LT08", map[string]any{"extra": 1})

	assert.Equal(t, map[string]any{"comma_style": "leading", "extra": 1}, cfg.GetRuleOptions("LT08"))
}

func TestConfig_SelectWinsOverDefault(t *testing.T) {
	cfg := lint.NewConfig().Select("LT08")
	assert.False(t, cfg.IsDisabled("LT08"))
	assert.True(t, cfg.IsDisabled("LT12"))

	cfg.Disable("LT08")
	assert.True(t, cfg.IsDisabled("LT08"))
}

func TestConfigRuleIDsAreCaseInsensitive(t *testing.T) {
	cfg := lint.NewConfig().
		Disable(" lt12 ").
		SetSeverity("lt08", core.SeverityError).
		SetRuleOptions("Lt08", map[string]any{"comma_style": "leading"})

	assert.True(t, cfg.IsDisabled("LT12"))
	assert.Equal(t, core.SeverityError, cfg.GetSeverity("LT08", core.SeverityWarning))
	assert.Equal(t, "leading", cfg.GetRuleOptions("LT08")["comma_style"])
}
