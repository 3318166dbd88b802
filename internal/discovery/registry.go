package discovery

import (
	"fmt"
	"sort"

	"github.com/raphi011/grit/internal/hook"
)

// DuplicateHookError reports two sources defining the same hook name.
// A collision is always a hard error; no source wins over another.
type DuplicateHookError struct {
	Name   string
	First  string
	Second string
}

func (e *DuplicateHookError) Error() string {
	return fmt.Sprintf("duplicate hook %q: defined by both %s and %s", e.Name, e.First, e.Second)
}

// Registry maps hook names to definitions. It is rebuilt on every
// discovery run and never persisted.
type Registry struct {
	defs    map[string]hook.Definition
	sources map[string]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		defs:    make(map[string]hook.Definition),
		sources: make(map[string]string),
	}
}

// Add inserts a definition, recording where it came from.
// Returns a *DuplicateHookError if the name is already taken.
func (r *Registry) Add(def hook.Definition, source string) error {
	name := def.Name()
	if first, exists := r.sources[name]; exists {
		return &DuplicateHookError{Name: name, First: first, Second: source}
	}
	r.defs[name] = def
	r.sources[name] = source
	return nil
}

// Lookup returns the definition registered under name.
func (r *Registry) Lookup(name string) (hook.Definition, bool) {
	def, ok := r.defs[name]
	return def, ok
}

// Source returns the source location a name was discovered from.
func (r *Registry) Source(name string) string {
	return r.sources[name]
}

// Names returns all registered hook names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int {
	return len(r.defs)
}
