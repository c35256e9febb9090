// Package core defines the shared vocabulary of leaplint.
//
// This package contains:
//   - Severity levels for lint findings
//   - Rule metadata (RuleInfo) used by documentation and the CLI
//   - The lint configuration DTO (LintConfig) decoded by koanf
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
