package dialect

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Dialect registry
var (
	dialectsMu sync.RWMutex
	dialects   = make(map[string]*Dialect)
)

// Get returns a dialect by name.
func Get(name string) (*Dialect, bool) {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	d, ok := dialects[strings.ToLower(name)]
	return d, ok
}

// Load returns a dialect by name or ErrUnknownDialect.
func Load(name string) (*Dialect, error) {
	d, ok := Get(name)
	if !ok {
		return nil, fmt.Errorf("%q: %w (available: %s)", name, ErrUnknownDialect, strings.Join(List(), ", "))
	}
	return d, nil
}

// Register registers a dialect in the global registry.
// Called by dialect implementations in their init() functions.
// Registering the same name twice panics.
func Register(d *Dialect) {
	dialectsMu.Lock()
	defer dialectsMu.Unlock()
	key := strings.ToLower(d.name)
	if _, exists := dialects[key]; exists {
		panic(fmt.Sprintf("dialect: %s registered twice", d.name))
	}
	dialects[key] = d
}

// List returns all registered dialect names (sorted).
func List() []string {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

