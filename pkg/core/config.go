package core

// LintConfig holds lint rule configuration as read from the lint section of
// leaplint.yaml.
type LintConfig struct {
	// Disabled contains rule IDs to disable
	Disabled []string `koanf:"disabled"`

	// Severity maps rule ID to severity override (error, warning, info, hint)
	Severity map[string]string `koanf:"severity"`

	// Rules contains rule-specific options, e.g. rules.LT08.comma_style
	Rules map[string]RuleOptions `koanf:"rules"`
}

// RuleOptions holds rule-specific configuration options.
type RuleOptions map[string]any

// IsDisabled reports whether id appears in the disabled list.
func (c *LintConfig) IsDisabled(id string) bool {
	if c == nil {
		return false
	}
	for _, d := range c.Disabled {
		if d == id {
			return true
		}
	}
	return false
}
