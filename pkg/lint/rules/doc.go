// Package rules groups the lint rule implementations for leaplint.
//
// Rules are organized by category:
//   - layout: Rules about whitespace and line structure (LT08, LT12)
//
// To register all rules with the global lint registry, import this package
// with a blank identifier:
//
//	import _ "github.com/leapstack-labs/leaplint/pkg/lint/rules"
package rules
