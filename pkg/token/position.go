// Package token defines source positions shared by the lexer, the segment tree and lint findings.
package token

import "fmt"

// Position represents a location in the source code.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset
}

// Start is the position of the first byte of a file.
var Start = Position{Line: 1, Column: 1, Offset: 0}

// IsValid returns true if the position is valid (line > 0).
func (p Position) IsValid() bool {
	return p.Line > 0
}

// String formats the position as line:column.
func (p Position) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Advance returns the position reached after consuming raw.
func (p Position) Advance(raw string) Position {
	for _, r := range raw {
		if r == '\n' {
			p.Line++
			p.Column = 1
		} else {
			p.Column++
		}
	}
	p.Offset += len(raw)
	return p
}

// Span represents a range in source code.
type Span struct {
	Start Position
	End   Position
}

// SpanOf returns the span covered by raw starting at start.
func SpanOf(start Position, raw string) Span {
	return Span{Start: start, End: start.Advance(raw)}
}

// Contains returns true if the span contains the given offset.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start.Offset && offset < s.End.Offset
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End.Offset - s.Start.Offset
}

// IsValid returns true if both start and end positions are valid.
func (s Span) IsValid() bool {
	return s.Start.IsValid() && s.End.IsValid()
}
