package grammar

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrNotExtensible is returned when an edit targets a grammar without an element list.
	ErrNotExtensible = errors.New("grammar is not extensible")
	// ErrAnchorNotFound is returned when Before/After names a ref that is not a direct element.
	ErrAnchorNotFound = errors.New("insert anchor not found")
	// ErrRemoveNotFound is returned when Remove names a ref that is not a direct element.
	ErrRemoveNotFound = errors.New("remove target not found")
)

// Placement says where Edit.Insert goes.
type Placement int

// Placements.
const (
	Append Placement = iota
	Prepend
	Before
	After
)

// Edit describes a structural change to a Sequence, OneOf or AnyNumberOf.
//
// Remove is applied first; it drops every direct element that is a Ref to one
// of the listed names. Each name must match at least one element. Insert is then placed according to At. For Before and
// After, Anchor names the Ref the insertion is positioned against.
type Edit struct {
	Insert []*Grammar
	At     Placement
	Anchor string
	Remove []string
}

// Extensible reports whether g has an ordered element list that edits may change.
func (g *Grammar) Extensible() bool {
	switch g.Kind {
	case KindSequence, KindOneOf, KindAnyNumberOf:
		return true
	default:
		return false
	}
}

// Apply returns a copy of g with e applied. g is left untouched.
func (g *Grammar) Apply(e Edit) (*Grammar, error) {
	if !g.Extensible() {
		return nil, fmt.Errorf("%s: %w", g.Kind, ErrNotExtensible)
	}
	out := g.Copy()

	if len(e.Remove) > 0 {
		removed := make(map[string]bool, len(e.Remove))
		out.Elements = slices.DeleteFunc(out.Elements, func(el *Grammar) bool {
			if el.Kind == KindRef && slices.Contains(e.Remove, el.Name) {
				removed[el.Name] = true
				return true
			}
			return false
		})
		for _, name := range e.Remove {
			if !removed[name] {
				return nil, fmt.Errorf("%q: %w", name, ErrRemoveNotFound)
			}
		}
	}

	insert := make([]*Grammar, len(e.Insert))
	for i, el := range e.Insert {
		insert[i] = el.Copy()
	}

	switch e.At {
	case Append:
		out.Elements = append(out.Elements, insert...)
	case Prepend:
		out.Elements = append(insert, out.Elements...)
	case Before, After:
		idx := slices.IndexFunc(out.Elements, func(el *Grammar) bool {
			return el.Kind == KindRef && el.Name == e.Anchor
		})
		if idx < 0 {
			return nil, fmt.Errorf("%q: %w", e.Anchor, ErrAnchorNotFound)
		}
		if e.At == After {
			idx++
		}
		out.Elements = slices.Insert(out.Elements, idx, insert...)
	default:
		return nil, fmt.Errorf("unknown placement %d", e.At)
	}
	return out, nil
}
