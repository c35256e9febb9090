// Package segment defines the lossless syntax tree shared by the parser, lint rules and the fix applier.
//
// A tree is made of leaf segments, which carry raw source text and a span, and
// composite segments, which carry an ordered list of children. Concatenating the
// raw text of every leaf in document order reproduces the source exactly, which
// is what makes structural fixes safe to apply.
package segment

import (
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/leapstack-labs/leaplint/pkg/token"
)

// Leaf and composite type tags used across the engine.
const (
	TypeFile         = "file"
	TypeKeyword      = "keyword"
	TypeIdentifier   = "identifier"
	TypeWord         = "word"
	TypeWhitespace   = "whitespace"
	TypeNewline      = "newline"
	TypeComment      = "comment"
	TypeComma        = "comma"
	TypeDot          = "dot"
	TypeSemicolon    = "semicolon"
	TypeStar         = "star"
	TypeStartBracket = "start_bracket"
	TypeEndBracket   = "end_bracket"
	TypeBracketed    = "bracketed"
	TypeUnparsable   = "unparsable"
	TypeCode         = "code"
)

// Segment is a node in the syntax tree.
//
// Leaves have no children and carry Raw and Span. Composites carry Children;
// their raw text and span are derived from their leaves.
type Segment struct {
	ID       uuid.UUID
	Type     string
	Raw      string
	Span     token.Span
	Code     bool
	Children []*Segment
}

// NewLeaf creates a leaf segment. The span is left zero until positions are
// recalculated or the lexer sets it.
func NewLeaf(typ, raw string, code bool) *Segment {
	return &Segment{ID: uuid.New(), Type: typ, Raw: raw, Code: code}
}

// NewComposite creates a composite segment owning children.
func NewComposite(typ string, children ...*Segment) *Segment {
	return &Segment{ID: uuid.New(), Type: typ, Children: children, Code: true}
}

// NewKeyword returns a keyword leaf.
func NewKeyword(raw string) *Segment { return NewLeaf(TypeKeyword, raw, true) }

// NewIdentifier returns an identifier leaf.
func NewIdentifier(raw string) *Segment { return NewLeaf(TypeIdentifier, raw, true) }

// NewWhitespace returns a whitespace leaf.
func NewWhitespace(raw string) *Segment { return NewLeaf(TypeWhitespace, raw, false) }

// NewNewline returns a single "\n" leaf.
func NewNewline() *Segment { return NewLeaf(TypeNewline, "\n", false) }

// NewComment returns a comment leaf.
func NewComment(raw string) *Segment { return NewLeaf(TypeComment, raw, false) }

// NewComma returns a comma leaf.
func NewComma() *Segment { return NewLeaf(TypeComma, ",", true) }

// Newlines returns n fresh newline leaves.
func Newlines(n int) []*Segment {
	out := make([]*Segment, n)
	for i := range out {
		out[i] = NewNewline()
	}
	return out
}

// IsLeaf reports whether the segment has no children.
// A composite that lost all its children through fixes is not a leaf.
func (s *Segment) IsLeaf() bool {
	return s.Children == nil
}

// IsType reports whether the segment has any of the given types.
func (s *Segment) IsType(types ...string) bool {
	return slices.Contains(types, s.Type)
}

// IsCode reports whether the segment is semantically significant.
// A composite is code when any of its leaves is.
func (s *Segment) IsCode() bool {
	if s.IsLeaf() {
		return s.Code
	}
	for _, c := range s.Children {
		if c.IsCode() {
			return true
		}
	}
	return false
}

// RawText returns the concatenated raw text of all leaves under s.
func (s *Segment) RawText() string {
	if s.IsLeaf() {
		return s.Raw
	}
	var b strings.Builder
	s.writeRaw(&b)
	return b.String()
}

func (s *Segment) writeRaw(b *strings.Builder) {
	if s.IsLeaf() {
		b.WriteString(s.Raw)
		return
	}
	for _, c := range s.Children {
		c.writeRaw(b)
	}
}

// RawUpper returns RawText upper-cased, for keyword comparisons.
func (s *Segment) RawUpper() string {
	return strings.ToUpper(s.RawText())
}

// Leaves returns all leaves under s in document order.
func (s *Segment) Leaves() []*Segment {
	var out []*Segment
	s.collectLeaves(&out)
	return out
}

func (s *Segment) collectLeaves(out *[]*Segment) {
	if s.IsLeaf() {
		*out = append(*out, s)
		return
	}
	for _, c := range s.Children {
		c.collectLeaves(out)
	}
}

// Start returns the start position of the segment.
func (s *Segment) Start() token.Position {
	if s.IsLeaf() {
		return s.Span.Start
	}
	if len(s.Children) == 0 {
		return s.Span.Start
	}
	return s.Children[0].Start()
}

// End returns the end position of the segment.
func (s *Segment) End() token.Position {
	if s.IsLeaf() || len(s.Children) == 0 {
		return s.Span.End
	}
	return s.Children[len(s.Children)-1].End()
}

// Expand returns the direct children of s, inlining (recursively) any child
// whose type is in expanding. Brackets and other composites not listed stay
// opaque, so lookahead logic can cross a structural boundary it does not care about.
func (s *Segment) Expand(expanding ...string) []*Segment {
	var out []*Segment
	for _, c := range s.Children {
		if !c.IsLeaf() && c.IsType(expanding...) {
			out = append(out, c.Expand(expanding...)...)
			continue
		}
		out = append(out, c)
	}
	return out
}

// WalkFunc is called for every segment with its ancestor chain (root first).
// Returning false skips the segment's children.
type WalkFunc func(seg *Segment, parents []*Segment) bool

// Walk visits s and its descendants depth-first in document order.
func (s *Segment) Walk(fn WalkFunc) {
	s.walk(fn, nil)
}

func (s *Segment) walk(fn WalkFunc, parents []*Segment) {
	if !fn(s, parents) {
		return
	}
	if len(s.Children) == 0 {
		return
	}
	// Clip capacity so sibling walks never share a backing array.
	next := append(parents[:len(parents):len(parents)], s)
	for _, c := range s.Children {
		c.walk(fn, next)
	}
}

// Find returns the first segment (depth-first) for which match returns true.
func (s *Segment) Find(match func(*Segment) bool) *Segment {
	var found *Segment
	s.Walk(func(seg *Segment, _ []*Segment) bool {
		if found != nil {
			return false
		}
		if match(seg) {
			found = seg
			return false
		}
		return true
	})
	return found
}

// FindAll returns every segment of the given types, in document order.
func (s *Segment) FindAll(types ...string) []*Segment {
	var out []*Segment
	s.Walk(func(seg *Segment, _ []*Segment) bool {
		if seg.IsType(types...) {
			out = append(out, seg)
		}
		return true
	})
	return out
}

// RecalculatePositions assigns fresh spans to every leaf under s, starting at
// start, and returns the position after the last leaf. Fixes insert leaves
// without positions; the applier calls this after each pass.
func (s *Segment) RecalculatePositions(start token.Position) token.Position {
	pos := start
	for _, leaf := range s.Leaves() {
		leaf.Span = token.SpanOf(pos, leaf.Raw)
		pos = leaf.Span.End
	}
	return pos
}

// Clone returns a deep copy of the tree that keeps segment IDs.
func (s *Segment) Clone() *Segment {
	c := *s
	if s.Children != nil {
		c.Children = make([]*Segment, len(s.Children))
		for i, child := range s.Children {
			c.Children[i] = child.Clone()
		}
	}
	return &c
}
