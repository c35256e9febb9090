package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in     string
		want   Severity
		wantOK bool
	}{
		{"error", SeverityError, true},
		{"WARNING", SeverityWarning, true},
		{" info ", SeverityInfo, true},
		{"hint", SeverityHint, true},
		{"fatal", SeverityWarning, false},
		{"", SeverityWarning, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseSeverity(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestSeverityJSON(t *testing.T) {
	b, err := json.Marshal(RuleInfo{ID: "LT08", DefaultSeverity: SeverityWarning})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"default_severity":"warning"`)
	assert.Equal(t, "unknown", Severity(42).String())
}

func TestLintConfigIsDisabled(t *testing.T) {
	var nilCfg *LintConfig
	assert.False(t, nilCfg.IsDisabled("LT08"))

	cfg := &LintConfig{Disabled: []string{"LT12"}}
	assert.True(t, cfg.IsDisabled("LT12"))
	assert.False(t, cfg.IsDisabled("LT08"))
}
