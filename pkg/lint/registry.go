package lint

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/leapstack-labs/leaplint/pkg/core"
)

// globalRegistry is the single global registry for all lint rules.
var globalRegistry = NewRegistry()

// Registry stores registered lint rules for discovery.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]RuleDef // keyed by ID
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[string]RuleDef)}
}

// Register adds a rule. It panics on an empty or duplicate ID.
func (r *Registry) Register(rule RuleDef) {
	if rule.ID == "" || rule.Check == nil {
		panic(fmt.Sprintf("lint: rule %q needs an ID and a Check func", rule.Name))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.rules[rule.ID]; dup {
		panic(fmt.Sprintf("lint: rule %s registered twice", rule.ID))
	}
	r.rules[rule.ID] = rule
}

// GetAll returns all registered rules sorted by ID.
func (r *Registry) GetAll() []RuleDef {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rules := make([]RuleDef, 0, len(r.rules))
	for _, rule := range r.rules {
		rules = append(rules, rule)
	}
	sortRules(rules)
	return rules
}

// GetByID returns a rule by its ID, case-insensitively.
func (r *Registry) GetByID(id string) (RuleDef, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rule, ok := r.rules[strings.ToUpper(id)]
	return rule, ok
}

// GetByGroup returns all rules in a specific group.
func (r *Registry) GetByGroup(group string) []RuleDef {
	var rules []RuleDef
	for _, rule := range r.GetAll() {
		if rule.Group == group {
			rules = append(rules, rule)
		}
	}
	return rules
}

// GetByDialect returns rules applicable to a specific dialect.
// Rules with empty/nil Dialects field are included (they apply to all dialects).
func (r *Registry) GetByDialect(dialectName string) []RuleDef {
	var rules []RuleDef
	for _, rule := range r.GetAll() {
		if rule.AppliesTo(dialectName) {
			rules = append(rules, rule)
		}
	}
	return rules
}

// Count returns the number of registered rules.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rules)
}

// Clear removes all registered rules. Used for testing.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules = make(map[string]RuleDef)
}

func sortRules(rules []RuleDef) {
	slices.SortFunc(rules, func(a, b RuleDef) int {
		return strings.Compare(a.ID, b.ID)
	})
}

// Register adds a rule to the global registry.
// Call this from init() functions in rule packages.
func Register(rule RuleDef) {
	globalRegistry.Register(rule)
}

// GetAll returns all globally registered rules sorted by ID.
func GetAll() []RuleDef {
	return globalRegistry.GetAll()
}

// GetByID returns a globally registered rule by its ID.
func GetByID(id string) (RuleDef, bool) {
	return globalRegistry.GetByID(id)
}

// GetByGroup returns globally registered rules in a group.
func GetByGroup(group string) []RuleDef {
	return globalRegistry.GetByGroup(group)
}

// GetByDialect returns globally registered rules applicable to a dialect.
func GetByDialect(dialectName string) []RuleDef {
	return globalRegistry.GetByDialect(dialectName)
}

// Count returns the number of globally registered rules.
func Count() int {
	return globalRegistry.Count()
}

// AllRules returns metadata for every registered rule, sorted by ID.
func AllRules() []core.RuleInfo {
	rules := GetAll()
	infos := make([]core.RuleInfo, len(rules))
	for i, r := range rules {
		infos[i] = GetRuleInfo(r)
	}
	return infos
}
