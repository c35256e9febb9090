// Package grammar provides the declarative grammar nodes dialects are built from.
//
// A Grammar is a small tree of matchers. Ref nodes name another rule in the
// same dialect and are resolved late, by the parser, so a derived dialect can
// override a rule and every grammar that refers to it picks up the override.
package grammar

import (
	"fmt"
	"slices"
	"strings"
)

// Kind identifies the matcher a Grammar node represents.
type Kind int

// Grammar kinds.
const (
	KindNothing Kind = iota
	KindLiteral
	KindSequence
	KindOneOf
	KindAnyNumberOf
	KindDelimited
	KindBracketed
	KindRef
	KindOptional
)

var kindNames = map[Kind]string{
	KindNothing:     "Nothing",
	KindLiteral:     "Literal",
	KindSequence:    "Sequence",
	KindOneOf:       "OneOf",
	KindAnyNumberOf: "AnyNumberOf",
	KindDelimited:   "Delimited",
	KindBracketed:   "Bracketed",
	KindRef:         "Ref",
	KindOptional:    "Optional",
}

// String returns the kind name.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Grammar is one matcher node.
//
// Fields are interpreted per Kind:
//   - Literal: Match is the leaf type to accept, Value (if set) the
//     case-insensitive raw text, Exclude a keyword set whose members are
//     rejected, Only a keyword set the word must belong to, As the type the
//     matched leaf is retagged with.
//   - Ref: Name is the rule looked up in the dialect at match time.
//   - AnyNumberOf: Min and Max bound the repetitions (Max 0 = unbounded).
//   - Delimited: Elements[0] is the item, Elements[1] the delimiter.
//   - everything else: Elements are the children in order.
type Grammar struct {
	Kind          Kind
	Match         string
	Value         string
	Exclude       string
	Only          string
	As            string
	Name          string
	Elements      []*Grammar
	Min           int
	Max           int
	AllowTrailing bool
}

// Keyword matches a word whose text equals kw (case-insensitive) and retags it as a keyword.
func Keyword(kw string) *Grammar {
	return &Grammar{Kind: KindLiteral, Match: "word", Value: strings.ToUpper(kw), As: "keyword"}
}

// Symbol matches a leaf of type typ with the exact text value.
func Symbol(typ, value string) *Grammar {
	return &Grammar{Kind: KindLiteral, Match: typ, Value: value}
}

// Leaf matches any leaf of type typ, optionally retagging it.
func Leaf(typ, as string) *Grammar {
	return &Grammar{Kind: KindLiteral, Match: typ, As: as}
}

// Word matches any word not in the exclude keyword set and retags it as as.
func Word(as, exclude string) *Grammar {
	return &Grammar{Kind: KindLiteral, Match: "word", As: as, Exclude: exclude}
}

// SetMember matches a word that belongs to keyword set and retags it as as.
func SetMember(set, as string) *Grammar {
	return &Grammar{Kind: KindLiteral, Match: "word", Only: set, As: as}
}

// Seq matches every element in order.
func Seq(elements ...*Grammar) *Grammar {
	return &Grammar{Kind: KindSequence, Elements: elements}
}

// OneOf matches exactly one of the alternatives.
func OneOf(alternatives ...*Grammar) *Grammar {
	return &Grammar{Kind: KindOneOf, Elements: alternatives}
}

// AnyNumberOf matches its alternatives zero or more times.
func AnyNumberOf(alternatives ...*Grammar) *Grammar {
	return &Grammar{Kind: KindAnyNumberOf, Elements: alternatives}
}

// Repeat matches its alternatives between min and max times (max 0 = unbounded).
func Repeat(minimum, maximum int, alternatives ...*Grammar) *Grammar {
	return &Grammar{Kind: KindAnyNumberOf, Elements: alternatives, Min: minimum, Max: maximum}
}

// Delimited matches item one or more times separated by delimiter.
func Delimited(item, delimiter *Grammar) *Grammar {
	return &Grammar{Kind: KindDelimited, Elements: []*Grammar{item, delimiter}}
}

// DelimitedTrailing is Delimited that tolerates a trailing delimiter.
func DelimitedTrailing(item, delimiter *Grammar) *Grammar {
	g := Delimited(item, delimiter)
	g.AllowTrailing = true
	return g
}

// Bracketed matches "(" elements... ")".
func Bracketed(elements ...*Grammar) *Grammar {
	return &Grammar{Kind: KindBracketed, Elements: elements}
}

// Ref refers to the named rule of the dialect the grammar is matched in.
func Ref(name string) *Grammar {
	return &Grammar{Kind: KindRef, Name: name}
}

// Optional matches g or nothing.
func Optional(g *Grammar) *Grammar {
	return &Grammar{Kind: KindOptional, Elements: []*Grammar{g}}
}

// Nothing never matches. Dialects use it to switch a rule off.
func Nothing() *Grammar {
	return &Grammar{Kind: KindNothing}
}

// Copy returns a deep copy of g.
func (g *Grammar) Copy() *Grammar {
	if g == nil {
		return nil
	}
	c := *g
	if g.Elements != nil {
		c.Elements = make([]*Grammar, len(g.Elements))
		for i, e := range g.Elements {
			c.Elements[i] = e.Copy()
		}
	}
	return &c
}

// Refs returns the distinct rule names referenced anywhere under g, sorted.
func (g *Grammar) Refs() []string {
	seen := make(map[string]struct{})
	g.collectRefs(seen)
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

func (g *Grammar) collectRefs(seen map[string]struct{}) {
	if g == nil {
		return
	}
	if g.Kind == KindRef {
		seen[g.Name] = struct{}{}
	}
	for _, e := range g.Elements {
		e.collectRefs(seen)
	}
}

// Equal reports whether a and b describe the same grammar.
func Equal(a, b *Grammar) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind || a.Match != b.Match || a.Value != b.Value ||
		a.Exclude != b.Exclude || a.Only != b.Only || a.As != b.As || a.Name != b.Name ||
		a.Min != b.Min || a.Max != b.Max || a.AllowTrailing != b.AllowTrailing ||
		len(a.Elements) != len(b.Elements) {
		return false
	}
	for i := range a.Elements {
		if !Equal(a.Elements[i], b.Elements[i]) {
			return false
		}
	}
	return true
}

// String renders g in a compact constructor-like form.
func (g *Grammar) String() string {
	if g == nil {
		return "<nil>"
	}
	switch g.Kind {
	case KindNothing:
		return "Nothing()"
	case KindRef:
		return "Ref(" + g.Name + ")"
	case KindLiteral:
		switch {
		case g.Value != "" && g.As == "keyword":
			return "Keyword(" + g.Value + ")"
		case g.Value != "":
			return fmt.Sprintf("Symbol(%s %q)", g.Match, g.Value)
		case g.Only != "":
			return fmt.Sprintf("Word(%s in %s)", g.As, g.Only)
		case g.Exclude != "":
			return fmt.Sprintf("Word(%s !%s)", g.As, g.Exclude)
		default:
			return "Leaf(" + g.Match + ")"
		}
	}

	parts := make([]string, len(g.Elements))
	for i, e := range g.Elements {
		parts[i] = e.String()
	}
	name := g.Kind.String()
	if g.Kind == KindAnyNumberOf && (g.Min != 0 || g.Max != 0) {
		name = fmt.Sprintf("Repeat[%d,%d]", g.Min, g.Max)
	}
	return name + "(" + strings.Join(parts, ", ") + ")"
}
