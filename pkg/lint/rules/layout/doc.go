// Package layout contains rules about whitespace and line structure (LT).
//
//   - LT08: Blank line after each CTE closing bracket
//   - LT12: Exactly one newline at end of file
package layout
