// Package symbol implements the per-interpreter symbol interner:
// name-equal symbols must share one canonical atom
// forever, so that EQ? and environment lookup can use pointer identity
// instead of text comparison.
package symbol

import (
	"github.com/aledsdavies/golisp/atom"
	"github.com/aledsdavies/golisp/internal/invariant"
)

// Table is the symbol table: every interned symbol atom, plus the
// name→atom index that makes interning O(1). The Table itself is a GC
// root and pins every symbol forever - symbol identity must survive any
// number of collection cycles.
type Table struct {
	reg    *atom.Registry
	byName map[string]atom.Atom
	order  []atom.Atom
}

// NewTable creates an empty symbol table backed by reg.
func NewTable(reg *atom.Registry) *Table {
	return &Table{
		reg:    reg,
		byName: make(map[string]atom.Atom),
	}
}

// Intern returns the canonical Symbol atom for name, allocating one if this
// is the first request for that exact text. Callers are responsible for
// any case-folding - upper-casing happens in the parser, not here, so a
// host embedding symbols directly keeps full control of identity.
func (t *Table) Intern(name string) atom.Atom {
	if sym, ok := t.byName[name]; ok {
		invariant.Invariant(sym.Sym.Value == name,
			"interned symbol text must match requested name exactly")
		return sym
	}

	text := t.reg.NewText(name)
	sym := atom.Atom{Tag: atom.TagSymbol, Sym: text}
	t.byName[name] = sym
	t.order = append(t.order, sym)
	return sym
}

// Lookup returns the canonical atom for name without interning it, for
// callers that want to test membership (e.g. diagnostics suggestions)
// without growing the table.
func (t *Table) Lookup(name string) (atom.Atom, bool) {
	sym, ok := t.byName[name]
	return sym, ok
}

// Names returns every interned symbol's name, in interning order. Used as
// fuzzy-suggestion candidates for UNBOUND diagnostics (see package diag)
// and by DISPLAY-ENV-style introspection.
func (t *Table) Names() []string {
	names := make([]string, len(t.order))
	for i, s := range t.order {
		names[i] = s.Sym.Value
	}
	return names
}

// Roots returns every interned symbol for the collector's root walk,
// pinning the whole table against collection - symbol identity is never
// invalidated by a collection cycle.
func (t *Table) Roots() []atom.Atom {
	return t.order
}

// Len reports how many distinct symbols have been interned.
func (t *Table) Len() int { return len(t.order) }
