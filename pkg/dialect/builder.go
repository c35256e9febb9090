package dialect

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/leapstack-labs/leaplint/pkg/grammar"
)

var (
	// ErrUnknownDialect is returned when a dialect name is not registered.
	ErrUnknownDialect = errors.New("unknown dialect")
	// ErrRuleNotFound is returned when an operation targets a rule the table does not have.
	ErrRuleNotFound = errors.New("rule not found")
	// ErrDuplicateRule is returned when Add targets a rule that already exists.
	ErrDuplicateRule = errors.New("rule already exists")
	// ErrUnresolvedRef is returned by Build when a Ref names a rule missing from the table.
	ErrUnresolvedRef = errors.New("unresolved rule reference")
	// ErrBuilderUsed is returned when a Builder is used after Build.
	ErrBuilderUsed = errors.New("builder already built")
)

// Builder constructs a Dialect.
//
// Builder methods chain; the first error is kept and every later call is a
// no-op, so construction reads as a single expression ending in Build or
// MustBuild.
type Builder struct {
	d     *Dialect
	err   error
	built bool
}

// New starts a dialect with empty tables.
func New(name string) *Builder {
	return &Builder{d: &Dialect{
		name:     name,
		rules:    make(map[string]Definition),
		keywords: make(map[string]map[string]struct{}),
	}}
}

// Derive starts a dialect as a deep copy of parent. Later changes to the
// builder never reach parent.
func Derive(name string, parent *Dialect) *Builder {
	b := New(name)
	b.d.parent = parent.name
	for rule, def := range parent.rules {
		b.d.rules[rule] = def.Copy()
	}
	for set, members := range parent.keywords {
		b.d.keywords[set] = maps.Clone(members)
	}
	return b
}

// DeriveFrom resolves parentName in the registry and derives from it.
func DeriveFrom(name, parentName string) *Builder {
	parent, err := Load(parentName)
	if err != nil {
		b := New(name)
		b.err = fmt.Errorf("derive %s: %w", name, err)
		return b
	}
	return Derive(name, parent)
}

func (b *Builder) ok() bool {
	if b.err != nil {
		return false
	}
	if b.built {
		b.err = ErrBuilderUsed
		return false
	}
	return true
}

// Replace swaps the definition of an existing rule.
func (b *Builder) Replace(name string, def Definition) *Builder {
	if !b.ok() {
		return b
	}
	if _, exists := b.d.rules[name]; !exists {
		b.err = fmt.Errorf("%s: replace %s: %w", b.d.name, name, ErrRuleNotFound)
		return b
	}
	b.d.rules[name] = def.Copy()
	return b
}

// Add installs a rule that does not exist yet.
func (b *Builder) Add(name string, def Definition) *Builder {
	if !b.ok() {
		return b
	}
	if _, exists := b.d.rules[name]; exists {
		b.err = fmt.Errorf("%s: add %s: %w", b.d.name, name, ErrDuplicateRule)
		return b
	}
	b.d.rules[name] = def.Copy()
	return b
}

// Extend rewrites the current definition of name with a structural edit.
// The definition is copied first; other dialects sharing the pre-edit
// grammar are unaffected.
func (b *Builder) Extend(name string, edit grammar.Edit) *Builder {
	if !b.ok() {
		return b
	}
	def, exists := b.d.rules[name]
	if !exists {
		b.err = fmt.Errorf("%s: extend %s: %w", b.d.name, name, ErrRuleNotFound)
		return b
	}
	g, err := def.Grammar.Apply(edit)
	if err != nil {
		b.err = fmt.Errorf("%s: extend %s: %w", b.d.name, name, err)
		return b
	}
	b.d.rules[name] = Definition{Type: def.Type, Grammar: g}
	return b
}

// ReplaceFrom replaces name with the definition src has for the same rule.
func (b *Builder) ReplaceFrom(name string, src *Dialect) *Builder {
	if !b.ok() {
		return b
	}
	def, exists := src.rules[name]
	if !exists {
		b.err = fmt.Errorf("%s: replace %s from %s: %w", b.d.name, name, src.name, ErrRuleNotFound)
		return b
	}
	return b.Replace(name, def)
}

// AddFrom imports the named rules from src. Each must be missing here.
func (b *Builder) AddFrom(src *Dialect, names ...string) *Builder {
	for _, name := range names {
		if !b.ok() {
			return b
		}
		def, exists := src.rules[name]
		if !exists {
			b.err = fmt.Errorf("%s: add %s from %s: %w", b.d.name, name, src.name, ErrRuleNotFound)
			return b
		}
		b.Add(name, def)
	}
	return b
}

// KeywordOp mutates a keyword set.
type KeywordOp func(members map[string]struct{})

// Clear empties the set.
func Clear() KeywordOp {
	return func(members map[string]struct{}) {
		clear(members)
	}
}

// AddAll inserts values, upper-cased and trimmed. Empty values are dropped.
func AddAll(values ...string) KeywordOp {
	return func(members map[string]struct{}) {
		for _, v := range values {
			v = strings.ToUpper(strings.TrimSpace(v))
			if v == "" {
				continue
			}
			members[v] = struct{}{}
		}
	}
}

// RemoveAll deletes values from the set.
func RemoveAll(values ...string) KeywordOp {
	return func(members map[string]struct{}) {
		for _, v := range values {
			delete(members, strings.ToUpper(strings.TrimSpace(v)))
		}
	}
}

// Keywords applies ops in order to the named keyword set, creating it if needed.
func (b *Builder) Keywords(set string, ops ...KeywordOp) *Builder {
	if !b.ok() {
		return b
	}
	members, exists := b.d.keywords[set]
	if !exists {
		members = make(map[string]struct{})
		b.d.keywords[set] = members
	}
	for _, op := range ops {
		op(members)
	}
	return b
}

// Err returns the first construction error, if any.
func (b *Builder) Err() error {
	return b.err
}

// Build checks that every Ref resolves and returns the frozen dialect.
func (b *Builder) Build() (*Dialect, error) {
	if !b.ok() {
		return nil, b.err
	}

	missing := make(map[string]struct{})
	for _, def := range b.d.rules {
		for _, ref := range def.Grammar.Refs() {
			if _, exists := b.d.rules[ref]; !exists {
				missing[ref] = struct{}{}
			}
		}
	}
	if len(missing) > 0 {
		names := slices.Sorted(maps.Keys(missing))
		b.err = fmt.Errorf("%s: %w: %s", b.d.name, ErrUnresolvedRef, strings.Join(names, ", "))
		return nil, b.err
	}

	b.built = true
	return b.d, nil
}

// MustBuild is Build that panics on error. Dialect packages use it for
// package-level variables so a broken grammar fails at start-up.
func (b *Builder) MustBuild() *Dialect {
	d, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("dialect: %v", err))
	}
	return d
}
