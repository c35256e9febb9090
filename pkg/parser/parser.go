// Package parser matches lexed leaves against a dialect's rule table and
// produces a lossless segment tree.
//
// # Usage
//
//	d, err := dialect.Load("ansi")
//	tree, err := parser.Parse("SELECT a FROM t\n", d)
//
// The root rule is FileSegment. Grammars are matched with backtracking:
// OneOf takes the longest alternative (the first one on ties) and Ref results
// are memoised per position. Non-code leaves between matched elements become
// children of the enclosing composite; non-code after the last element is left
// for the parent. Code that no statement matches is wrapped in an
// "unparsable" segment, so parsing never loses input.
package parser

import (
	"errors"
	"fmt"
	"slices"

	"github.com/leapstack-labs/leaplint/pkg/dialect"
	"github.com/leapstack-labs/leaplint/pkg/grammar"
	"github.com/leapstack-labs/leaplint/pkg/lexer"
	"github.com/leapstack-labs/leaplint/pkg/segment"
)

// RootRule is the rule every dialect must define for whole-file parsing.
const RootRule = "FileSegment"

// DefaultMaxDepth bounds nested rule references.
const DefaultMaxDepth = 512

var (
	// ErrMaxDepth is returned when rule references nest deeper than the limit.
	ErrMaxDepth = errors.New("maximum parse depth exceeded")
	// ErrNoRootRule is returned when the dialect has no FileSegment rule.
	ErrNoRootRule = errors.New("dialect has no " + RootRule + " rule")
)

// Option configures a Parser.
type Option func(*Parser)

// WithMaxDepth overrides DefaultMaxDepth.
func WithMaxDepth(n int) Option {
	return func(p *Parser) {
		p.maxDepth = n
	}
}

type memoKey struct {
	rule string
	pos  int
}

type result struct {
	nodes []*segment.Segment
	end   int
	ok    bool
}

var fail = result{}

// Parser turns leaves into a segment tree for one dialect.
// A Parser is not safe for concurrent use; create one per file.
type Parser struct {
	dialect  *dialect.Dialect
	maxDepth int

	leaves     []*segment.Segment
	memo       map[memoKey]result
	inProgress map[memoKey]bool
	depth      int
	err        error
}

// New creates a parser for d.
func New(d *dialect.Dialect, opts ...Option) *Parser {
	p := &Parser{dialect: d, maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse lexes and parses src with d.
func Parse(src string, d *dialect.Dialect, opts ...Option) (*segment.Segment, error) {
	return New(d, opts...).Parse(src)
}

// Parse lexes and parses src.
func (p *Parser) Parse(src string) (*segment.Segment, error) {
	return p.ParseLeaves(lexer.Lex(src))
}

// ParseLeaves parses already-lexed leaves.
func (p *Parser) ParseLeaves(leaves []*segment.Segment) (*segment.Segment, error) {
	if !p.dialect.HasRule(RootRule) {
		return nil, fmt.Errorf("%s: %w", p.dialect.Name(), ErrNoRootRule)
	}
	p.leaves = leaves
	p.memo = make(map[memoKey]result)
	p.inProgress = make(map[memoKey]bool)
	p.depth = 0
	p.err = nil

	var children []*segment.Segment
	pos := 0
	for {
		next := p.nextCode(pos)
		if next >= len(leaves) {
			children = append(children, leaves[pos:]...)
			break
		}

		r := p.matchRef(RootRule, next)
		if p.err != nil {
			return nil, p.err
		}
		if r.ok && r.end > next {
			children = append(children, leaves[pos:next]...)
			children = append(children, r.nodes...)
			pos = r.end
			continue
		}

		last := p.recoveryPoint(next)
		children = append(children, leaves[pos:next]...)
		children = append(children, segment.NewComposite(segment.TypeUnparsable, leaves[next:last]...))
		pos = last
	}

	return segment.NewComposite(segment.TypeFile, children...), nil
}

// recoveryPoint returns the end of an unparsable run starting at from: the
// last code leaf before the next statement terminator.
func (p *Parser) recoveryPoint(from int) int {
	stop := from
	for stop < len(p.leaves) && !p.leaves[stop].IsType(segment.TypeSemicolon) {
		stop++
	}
	for stop > from && !p.leaves[stop-1].Code {
		stop--
	}
	if stop == from {
		stop = from + 1
	}
	return stop
}

func (p *Parser) nextCode(i int) int {
	for i < len(p.leaves) && !p.leaves[i].Code {
		i++
	}
	return i
}

func (p *Parser) match(g *grammar.Grammar, i int) result {
	if p.err != nil {
		return fail
	}
	switch g.Kind {
	case grammar.KindLiteral:
		return p.matchLiteral(g, i)
	case grammar.KindSequence:
		return p.matchSequence(g.Elements, i)
	case grammar.KindOneOf:
		return p.matchLongest(g.Elements, i)
	case grammar.KindAnyNumberOf:
		return p.matchRepeat(g, i)
	case grammar.KindDelimited:
		return p.matchDelimited(g, i)
	case grammar.KindBracketed:
		return p.matchBracketed(g, i)
	case grammar.KindRef:
		return p.matchRef(g.Name, i)
	case grammar.KindOptional:
		if r := p.match(g.Elements[0], i); r.ok {
			return r
		}
		return result{end: i, ok: true}
	default:
		return fail
	}
}

func (p *Parser) matchLiteral(g *grammar.Grammar, i int) result {
	if i >= len(p.leaves) {
		return fail
	}
	leaf := p.leaves[i]
	if leaf.Type != g.Match {
		return fail
	}
	if g.Value != "" {
		if g.Match == segment.TypeWord {
			if leaf.RawUpper() != g.Value {
				return fail
			}
		} else if leaf.Raw != g.Value {
			return fail
		}
	}
	if g.Exclude != "" && p.dialect.IsKeyword(g.Exclude, leaf.Raw) {
		return fail
	}
	if g.Only != "" && !p.dialect.IsKeyword(g.Only, leaf.Raw) {
		return fail
	}

	out := leaf
	if g.As != "" {
		retyped := *leaf
		retyped.Type = g.As
		out = &retyped
	}
	return result{nodes: []*segment.Segment{out}, end: i + 1, ok: true}
}

func (p *Parser) matchSequence(elements []*grammar.Grammar, i int) result {
	var nodes []*segment.Segment
	pos := i
	for _, el := range elements {
		next := p.nextCode(pos)
		r := p.match(el, next)
		if !r.ok {
			return fail
		}
		if r.end == next {
			continue
		}
		nodes = append(nodes, p.leaves[pos:next]...)
		nodes = append(nodes, r.nodes...)
		pos = r.end
	}
	return result{nodes: nodes, end: pos, ok: true}
}

func (p *Parser) matchLongest(alternatives []*grammar.Grammar, i int) result {
	best := fail
	for _, alt := range alternatives {
		r := p.match(alt, i)
		if r.ok && (!best.ok || r.end > best.end) {
			best = r
		}
	}
	return best
}

func (p *Parser) matchRepeat(g *grammar.Grammar, i int) result {
	var nodes []*segment.Segment
	pos := i
	count := 0
	for g.Max == 0 || count < g.Max {
		next := p.nextCode(pos)
		r := p.matchLongest(g.Elements, next)
		if !r.ok || r.end == next {
			break
		}
		nodes = append(nodes, p.leaves[pos:next]...)
		nodes = append(nodes, r.nodes...)
		pos = r.end
		count++
	}
	if count < g.Min {
		return fail
	}
	return result{nodes: nodes, end: pos, ok: true}
}

func (p *Parser) matchDelimited(g *grammar.Grammar, i int) result {
	item, delimiter := g.Elements[0], g.Elements[1]

	first := p.match(item, i)
	if !first.ok || first.end == i {
		return fail
	}
	// first.nodes may be a memoised Ref result; clip so appends never write
	// into its backing array.
	nodes := slices.Clip(first.nodes)
	pos := first.end
	for {
		dn := p.nextCode(pos)
		d := p.match(delimiter, dn)
		if !d.ok || d.end == dn {
			break
		}
		in := p.nextCode(d.end)
		it := p.match(item, in)
		if !it.ok || it.end == in {
			if g.AllowTrailing {
				nodes = append(nodes, p.leaves[pos:dn]...)
				nodes = append(nodes, d.nodes...)
				pos = d.end
			}
			break
		}
		nodes = append(nodes, p.leaves[pos:dn]...)
		nodes = append(nodes, d.nodes...)
		nodes = append(nodes, p.leaves[d.end:in]...)
		nodes = append(nodes, it.nodes...)
		pos = it.end
	}
	return result{nodes: nodes, end: pos, ok: true}
}

func (p *Parser) matchBracketed(g *grammar.Grammar, i int) result {
	if i >= len(p.leaves) || !p.leaves[i].IsType(segment.TypeStartBracket) {
		return fail
	}
	start := i + 1
	first := p.nextCode(start)
	inner := p.matchSequence(g.Elements, first)
	if !inner.ok {
		return fail
	}
	closing := p.nextCode(inner.end)
	if closing >= len(p.leaves) || !p.leaves[closing].IsType(segment.TypeEndBracket) {
		return fail
	}

	children := make([]*segment.Segment, 0, closing-i+1)
	children = append(children, p.leaves[i])
	children = append(children, p.leaves[start:first]...)
	children = append(children, inner.nodes...)
	children = append(children, p.leaves[inner.end:closing]...)
	children = append(children, p.leaves[closing])
	return result{
		nodes: []*segment.Segment{segment.NewComposite(segment.TypeBracketed, children...)},
		end:   closing + 1,
		ok:    true,
	}
}

func (p *Parser) matchRef(name string, i int) result {
	key := memoKey{rule: name, pos: i}
	if r, ok := p.memo[key]; ok {
		return r
	}
	// Left recursion fails instead of looping.
	if p.inProgress[key] {
		return fail
	}
	def, ok := p.dialect.Lookup(name)
	if !ok {
		return fail
	}

	p.depth++
	if p.depth > p.maxDepth {
		p.err = fmt.Errorf("%s at leaf %d: %w", name, i, ErrMaxDepth)
		p.depth--
		return fail
	}
	p.inProgress[key] = true
	r := p.match(def.Grammar, i)
	delete(p.inProgress, key)
	p.depth--

	if r.ok && def.Type != "" && r.end > i {
		r.nodes = []*segment.Segment{segment.NewComposite(def.Type, r.nodes...)}
	}
	p.memo[key] = r
	return r
}
