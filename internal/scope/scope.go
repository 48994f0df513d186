// Package scope implements component B: a name->value environment with a
// current-value slot, strictness flag, and import stack. Grounded on
// _examples/funvibe-funxy/internal/evaluator/environment.go's
// Environment{store, outer} parent-chain lookup, extended with the
// UCG-specific current-value slot, import stack, strict flag, and
// duplicate-binding rejection spec.md §4.B requires.
package scope

import (
	"sync"

	"github.com/jfranklin9000/ucg/internal/value"
)

// Scope is a lexical environment. Child scopes inherit the parent's
// bindings (read-through); new bindings shadow but never mutate the
// parent.
type Scope struct {
	mu       sync.Mutex
	bindings map[string]value.Value
	order    []string // insertion order of this scope's own bindings only
	parent   *Scope

	currentVal value.Value
	hasCurrent bool

	strict      bool
	importStack []string // shared slice across a spawned family of scopes
}

// New creates a root scope.
func New(strict bool) *Scope {
	return &Scope{bindings: make(map[string]value.Value), strict: strict}
}

// Bind inserts name=val in this scope. Returns false if name is already
// bound in this exact scope (not a parent) — callers translate that into
// DuplicateBinding.
func (s *Scope) Bind(name string, val value.Value) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.bindings[name]; exists {
		return false
	}
	s.bindings[name] = val
	s.order = append(s.order, name)
	return true
}

// OrderedBindings returns this scope's own bindings (not a parent's) in the
// order they were Bind-ed, used to build a module's implicit output tuple
// (spec §4.F step 5, "a tuple of the child's accumulated bindings in
// insertion order").
func (s *Scope) OrderedBindings() []value.Field {
	s.mu.Lock()
	defer s.mu.Unlock()
	fields := make([]value.Field, 0, len(s.order))
	for _, name := range s.order {
		fields = append(fields, value.Field{Name: name, Value: s.bindings[name]})
	}
	return fields
}

// HasLocal reports whether name is bound directly in this scope (not a
// parent), used to check for duplicate bindings before Bind.
func (s *Scope) HasLocal(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.bindings[name]
	return ok
}

// LookupSym resolves name: when searchCurrVal is true and a current-value
// tuple is present, its fields are searched first, then lexical bindings
// are searched from this scope outward through parents (spec §4.B).
func (s *Scope) LookupSym(name string, searchCurrVal bool) (value.Value, bool) {
	if searchCurrVal {
		if cur, ok := s.CurrentVal(); ok {
			if tup, ok := cur.(*value.Tuple); ok {
				if v, ok := tup.Get(name); ok {
					return v, true
				}
			}
		}
	}
	for sc := s; sc != nil; sc = sc.parent {
		sc.mu.Lock()
		v, ok := sc.bindings[name]
		sc.mu.Unlock()
		if ok {
			return v, true
		}
	}
	return nil, false
}

// LookupIdx indexes into the current-value slot, which must be a List.
func (s *Scope) LookupIdx(i int64) (value.Value, bool) {
	cur, ok := s.CurrentVal()
	if !ok {
		return nil, false
	}
	list, ok := cur.(*value.List)
	if !ok {
		return nil, false
	}
	if i < 0 || i >= int64(len(list.Elements)) {
		return nil, false
	}
	return list.Elements[i], true
}

// SpawnChild returns a fresh scope inheriting bindings (via the parent
// chain) and import stack.
func (s *Scope) SpawnChild() *Scope {
	return &Scope{
		bindings:    make(map[string]value.Value),
		parent:      s,
		strict:      s.strict,
		importStack: s.importStack,
	}
}

// SpawnClean returns a fresh scope inheriting policy (strictness, import
// stack) but starting with no bindings and no parent — used for
// sub-evaluators spawned across an import boundary.
func (s *Scope) SpawnClean() *Scope {
	return &Scope{
		bindings:    make(map[string]value.Value),
		strict:      s.strict,
		importStack: s.importStack,
	}
}

// SetCurrVal sets the current-value slot on this scope (used by dot-lookup
// and selectors); it does not mutate parents.
func (s *Scope) SetCurrVal(v value.Value) {
	s.currentVal = v
	s.hasCurrent = true
}

// CurrentVal returns the current-value slot if this scope has one; unlike
// bindings, the current-value slot does not read through to parents,
// matching spec §4.B ("dot-lookup" resolves against a child scope whose
// current value was just set).
func (s *Scope) CurrentVal() (value.Value, bool) {
	if s.hasCurrent {
		return s.currentVal, true
	}
	return nil, false
}

// Strict reports the strictness flag.
func (s *Scope) Strict() bool { return s.strict }

// ImportStack returns the ordered list of absolute paths currently being
// imported (outermost first).
func (s *Scope) ImportStack() []string {
	return s.importStack
}

// PushImport returns a new scope whose import stack has path appended;
// the caller is responsible for using the returned scope only for the
// duration of that import (push-before/pop-after discipline lives in the
// eval package, which simply stops using the pre-push scope afterward).
func (s *Scope) PushImport(path string) *Scope {
	stack := make([]string, len(s.importStack)+1)
	copy(stack, s.importStack)
	stack[len(stack)-1] = path
	return &Scope{
		bindings:    make(map[string]value.Value),
		strict:      s.strict,
		importStack: stack,
	}
}

// OnImportStack reports whether path is already being imported.
func (s *Scope) OnImportStack(path string) bool {
	for _, p := range s.importStack {
		if p == path {
			return true
		}
	}
	return false
}
