package lint

import (
	"fmt"
	"maps"
	"strings"

	"github.com/leapstack-labs/leaplint/pkg/core"
)

// Config controls which rules are enabled, their severity and options.
type Config struct {
	// DisabledRules contains rule IDs to skip
	DisabledRules map[string]bool

	// SelectedRules, when non-empty, restricts evaluation to these rule IDs
	SelectedRules map[string]bool

	// SeverityOverrides changes the default severity of rules
	SeverityOverrides map[string]core.Severity

	// RuleOptions holds rule-specific options keyed by rule ID
	RuleOptions map[string]map[string]any
}

// NewConfig creates a default configuration with all rules enabled.
func NewConfig() *Config {
	return &Config{
		DisabledRules:     make(map[string]bool),
		SelectedRules:     make(map[string]bool),
		SeverityOverrides: make(map[string]core.Severity),
		RuleOptions:       make(map[string]map[string]any),
	}
}

// FromLintConfig converts the file-level lint section into a Config.
// A nil section yields the default configuration.
func FromLintConfig(lc *core.LintConfig) (*Config, error) {
	cfg := NewConfig()
	if lc == nil {
		return cfg, nil
	}
	for _, id := range lc.Disabled {
		cfg.Disable(id)
	}
	for id, name := range lc.Severity {
		sev, ok := core.ParseSeverity(name)
		if !ok {
			return nil, fmt.Errorf("lint.severity.%s: unknown severity %q", id, name)
		}
		cfg.SetSeverity(id, sev)
	}
	for id, opts := range lc.Rules {
		cfg.SetRuleOptions(id, opts)
	}
	return cfg, nil
}

// IsDisabled returns true if the rule should be skipped.
func (c *Config) IsDisabled(ruleID string) bool {
	if c == nil {
		return false
	}
	ruleID = normalizeID(ruleID)
	if c.DisabledRules[ruleID] {
		return true
	}
	return len(c.SelectedRules) > 0 && !c.SelectedRules[ruleID]
}

// GetSeverity returns the severity for a rule, applying any override.
func (c *Config) GetSeverity(ruleID string, defaultSeverity core.Severity) core.Severity {
	if c != nil {
		if sev, ok := c.SeverityOverrides[normalizeID(ruleID)]; ok {
			return sev
		}
	}
	return defaultSeverity
}

// GetRuleOptions returns the options bound to a rule, or nil.
func (c *Config) GetRuleOptions(ruleID string) map[string]any {
	if c == nil {
		return nil
	}
	return c.RuleOptions[normalizeID(ruleID)]
}

// Disable disables a rule by ID.
func (c *Config) Disable(ruleID string) *Config {
	c.DisabledRules[normalizeID(ruleID)] = true
	return c
}

// Select restricts evaluation to the given rules.
func (c *Config) Select(ruleIDs ...string) *Config {
	for _, id := range ruleIDs {
		c.SelectedRules[normalizeID(id)] = true
	}
	return c
}

// SetSeverity overrides the severity for a rule.
func (c *Config) SetSeverity(ruleID string, severity core.Severity) *Config {
	c.SeverityOverrides[normalizeID(ruleID)] = severity
	return c
}

// SetRuleOptions merges opts into the options for a rule.
func (c *Config) SetRuleOptions(ruleID string, opts map[string]any) *Config {
	ruleID = normalizeID(ruleID)
	cur := c.RuleOptions[ruleID]
	if cur == nil {
		cur = make(map[string]any, len(opts))
		c.RuleOptions[ruleID] = cur
	}
	maps.Copy(cur, opts)
	return c
}

// normalizeID makes rule IDs from config files and flags case-insensitive.
func normalizeID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}
