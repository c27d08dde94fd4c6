// Package namespace implements tiny-clj's namespace registry: a
// process-wide table of namespaces, each owning a map from symbol name
// to bound value, plus the current-namespace resolution used by the
// evaluator when a symbol isn't found in any lexical environment frame.
package namespace

import (
	"sync"

	"tinyclj/pkg/value"
)

// Namespace owns a name -> value binding map. def writes into it;
// lookups read from it once the lexical environment chain is exhausted.
type Namespace struct {
	mu   sync.RWMutex
	Name string
	vars map[string]value.Value
}

func newNamespace(name string) *Namespace {
	return &Namespace{Name: name, vars: make(map[string]value.Value)}
}

func (n *Namespace) Define(name string, v value.Value) {
	n.mu.Lock()
	n.vars[name] = v
	n.mu.Unlock()
}

func (n *Namespace) Lookup(name string) (value.Value, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	v, ok := n.vars[name]
	return v, ok
}

// Registry is the process-wide table of namespaces, keyed by
// name. "core" holds the bootstrapped standard library; "user" is the
// default namespace a fresh state starts in.
type Registry struct {
	mu sync.Mutex
	ns map[string]*Namespace
}

func NewRegistry() *Registry {
	return &Registry{ns: make(map[string]*Namespace)}
}

// GetOrCreate returns the named namespace, creating it on first access.
func (r *Registry) GetOrCreate(name string) *Namespace {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ns, ok := r.ns[name]; ok {
		return ns
	}
	ns := newNamespace(name)
	r.ns[name] = ns
	return ns
}

// Get returns the named namespace if it already exists.
func (r *Registry) Get(name string) (*Namespace, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ns, ok := r.ns[name]
	return ns, ok
}

// Resolve looks up an unqualified or ns-qualified name. A qualified
// lookup ("ns/name") goes straight to that namespace; an unqualified
// lookup tries currentNS first, then falls back to "core" — the host
// namespace every user namespace implicitly sees.
func (r *Registry) Resolve(currentNS, ns, name string) (value.Value, bool) {
	if ns != "" {
		if n, ok := r.Get(ns); ok {
			return n.Lookup(name)
		}
		return value.Nil, false
	}
	if n, ok := r.Get(currentNS); ok {
		if v, ok := n.Lookup(name); ok {
			return v, true
		}
	}
	if currentNS != "core" {
		if n, ok := r.Get("core"); ok {
			return n.Lookup(name)
		}
	}
	return value.Nil, false
}
