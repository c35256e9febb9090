// Package dialect provides the dialect composition engine.
//
// A dialect is a named table of grammar rules plus named keyword sets. Dialects
// are built with a Builder, either from scratch (New) or by deriving from a
// parent (Derive, DeriveFrom). Derivation deep-copies the parent's tables, so a
// child can replace, add or extend rules without affecting the parent or any
// sibling. Once built, a Dialect is frozen and safe for concurrent use.
//
// Concrete dialects are registered from pkg/dialects/*/ packages.
package dialect

import (
	"maps"
	"slices"
	"strings"

	"github.com/leapstack-labs/leaplint/pkg/grammar"
)

// Keyword set names shared by the bundled dialects.
const (
	ReservedKeywords   = "reserved_keywords"
	UnreservedKeywords = "unreserved_keywords"
	BareFunctions      = "bare_functions"
	DatetimeUnits      = "datetime_units"
)

// Definition is one entry in a dialect's rule table.
type Definition struct {
	// Type is the segment type a successful match is wrapped in.
	// Empty means the match is spliced into the caller's output.
	Type    string
	Grammar *grammar.Grammar
}

// SegmentDef returns a definition that produces a composite segment of type typ.
func SegmentDef(typ string, g *grammar.Grammar) Definition {
	return Definition{Type: typ, Grammar: g}
}

// GrammarDef returns a definition whose matches are not wrapped.
func GrammarDef(g *grammar.Grammar) Definition {
	return Definition{Grammar: g}
}

// Copy returns a deep copy of the definition.
func (d Definition) Copy() Definition {
	return Definition{Type: d.Type, Grammar: d.Grammar.Copy()}
}

// Equal reports whether two definitions have the same type and grammar.
func (d Definition) Equal(o Definition) bool {
	return d.Type == o.Type && grammar.Equal(d.Grammar, o.Grammar)
}

// Dialect is a frozen rule table and keyword sets.
type Dialect struct {
	name     string
	parent   string
	rules    map[string]Definition
	keywords map[string]map[string]struct{}
}

// Name returns the dialect name.
func (d *Dialect) Name() string {
	return d.name
}

// Parent returns the name of the dialect this one was derived from, or "".
func (d *Dialect) Parent() string {
	return d.parent
}

// Rule returns a copy of the named definition from this dialect's own table.
func (d *Dialect) Rule(name string) (Definition, bool) {
	def, ok := d.rules[name]
	if !ok {
		return Definition{}, false
	}
	return def.Copy(), true
}

// Lookup is Rule without the copy. The returned grammar is shared by every
// parser using the dialect and must not be modified.
func (d *Dialect) Lookup(name string) (Definition, bool) {
	def, ok := d.rules[name]
	return def, ok
}

// HasRule reports whether the rule table contains name.
func (d *Dialect) HasRule(name string) bool {
	_, ok := d.rules[name]
	return ok
}

// RuleNames returns all rule names, sorted.
func (d *Dialect) RuleNames() []string {
	return slices.Sorted(maps.Keys(d.rules))
}

// KeywordSet returns the members of a keyword set, sorted.
// Unknown sets return nil.
func (d *Dialect) KeywordSet(set string) []string {
	members, ok := d.keywords[set]
	if !ok {
		return nil
	}
	return slices.Sorted(maps.Keys(members))
}

// KeywordSetNames returns the names of all keyword sets, sorted.
func (d *Dialect) KeywordSetNames() []string {
	return slices.Sorted(maps.Keys(d.keywords))
}

// IsKeyword reports whether word (case-insensitive) is a member of set.
func (d *Dialect) IsKeyword(set, word string) bool {
	_, ok := d.keywords[set][strings.ToUpper(word)]
	return ok
}

// String returns the dialect name.
func (d *Dialect) String() string {
	return d.name
}
