// Package symbol implements tiny-clj's symbol intern table, keyed by
// (namespace, name) so that two reads of the same qualified name yield
// the identical *value.Heap and can be compared by pointer.
package symbol

import (
	"strings"
	"sync"

	"tinyclj/pkg/value"
)

// Table interns symbols for one interpreter state. Interned symbols are
// immortal: they are never passed through an autorelease pool and never
// released, matching the design's "static bootstrap symbols allocated
// once" note.
type Table struct {
	mu    sync.Mutex
	byKey map[string]value.Value
}

// NewTable builds a table pre-loaded with the special-form and
// rewrite-form symbol names, so callers can compare against them by
// pointer (see Is) rather than by string.
func NewTable() *Table {
	t := &Table{byKey: make(map[string]value.Value)}
	for _, name := range bootstrapSymbols {
		t.Intern("", name)
	}
	return t
}

var bootstrapSymbols = []string{
	"def", "defn", "fn", "let", "if", "do", "quote", "quasiquote",
	"unquote", "splice-unquote", "loop", "recur", "try", "catch",
	"finally", "throw", "var", "&",
	"cond", "when", "when-not", "->", "->>", "ns",
}

func key(ns, name string) string {
	if ns == "" {
		return name
	}
	return ns + "/" + name
}

// Intern returns the canonical symbol Value for (ns, name), allocating
// one if this is the first time it's been seen.
func (t *Table) Intern(ns, name string) value.Value {
	t.mu.Lock()
	defer t.mu.Unlock()
	k := key(ns, name)
	if v, ok := t.byKey[k]; ok {
		return v
	}
	v := value.Value{Tag: value.TagHeap, Obj: &value.Heap{
		Kind: value.KindSymbol,
		Name: name,
		NS:   ns,
		// Singleton, so a stray retain/release on a symbol (e.g. one
		// bound as an env value) is a no-op rather than a double free:
		// interned symbols are immortal and never enter a pool.
		Singleton: true,
	}}
	t.byKey[k] = v
	return v
}

// InternQualified parses "ns/name" (or a bare "name") and interns it.
func (t *Table) InternQualified(full string) value.Value {
	if idx := strings.IndexByte(full, '/'); idx > 0 && idx < len(full)-1 {
		return t.Intern(full[:idx], full[idx+1:])
	}
	return t.Intern("", full)
}

// Is reports whether v is the interned bootstrap symbol named name.
func (t *Table) Is(v value.Value, name string) bool {
	if !v.IsSymbol() {
		return false
	}
	return value.SameObject(v, t.byKey[key("", name)])
}

// QualifiedName renders "ns/name", or just "name" when ns is empty.
func QualifiedName(v value.Value) string {
	if !v.IsSymbol() {
		return ""
	}
	if v.Obj.NS == "" {
		return v.Obj.Name
	}
	return v.Obj.NS + "/" + v.Obj.Name
}
