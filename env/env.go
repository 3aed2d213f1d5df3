// Package env implements lexical environment frames. An environment is
// not a distinct Go type but a cons-cell chain laid out
// (parent_env . bindings), so that closures can capture an
// environment as an ordinary atom and the evaluator's GC can mark it the
// same way it marks any other pair.
package env

import (
	"github.com/aledsdavies/golisp/atom"
	"github.com/aledsdavies/golisp/diag"
	"github.com/aledsdavies/golisp/internal/invariant"
)

// New allocates a fresh, empty frame whose parent is parent (atom.Nil for
// the root environment).
func New(reg *atom.Registry, parent atom.Atom) atom.Atom {
	return atom.NewPair(reg, parent, atom.Nil)
}

// Parent returns e's enclosing frame, or atom.Nil at the root.
func Parent(e atom.Atom) atom.Atom {
	invariant.Precondition(e.Tag == atom.TagPair, "environment frame must be a pair")
	return atom.Car(e)
}

// Bindings returns e's own binding alist - pairs of (symbol . value) - not
// including any enclosing frame.
func Bindings(e atom.Atom) atom.Atom {
	invariant.Precondition(e.Tag == atom.TagPair, "environment frame must be a pair")
	return atom.Cdr(e)
}

// Get resolves sym by walking e and its ancestors child-first, comparing
// symbols by pointer identity (they are always canonical, interned atoms).
// candidates feeds the UNBOUND diagnostic's fuzzy "did you mean"
// suggestion and is typically symbol.Table.Names() plus the builtin table's
// names.
func Get(e atom.Atom, sym atom.Atom, candidates []string) (atom.Atom, *diag.Error) {
	for frame := e; frame.Tag == atom.TagPair; frame = Parent(frame) {
		for b := Bindings(frame); b.Tag == atom.TagPair; b = atom.Cdr(b) {
			binding := atom.Car(b)
			if atom.Eq(atom.Car(binding), sym) {
				return atom.Cdr(binding), nil
			}
		}
	}
	return atom.Nil, diag.NewUnbound(sym.Sym.Value, candidates)
}

// Set binds sym to value in e's own frame only - DEFINE never reaches
// into an enclosing frame. An existing binding for sym in this frame is
// mutated in place; otherwise a new binding is prepended.
func Set(reg *atom.Registry, e atom.Atom, sym atom.Atom, value atom.Atom) {
	invariant.Precondition(e.Tag == atom.TagPair, "environment frame must be a pair")

	for b := Bindings(e); b.Tag == atom.TagPair; b = atom.Cdr(b) {
		binding := atom.Car(b)
		if atom.Eq(atom.Car(binding), sym) {
			binding.Cell.Tail = value
			return
		}
	}

	binding := atom.NewPair(reg, sym, value)
	e.Cell.Tail = atom.NewPair(reg, binding, Bindings(e))
}

// SetBuiltin binds name (case-sensitive, expected already upper-cased by the
// caller) to a Builtin atom wrapping fn, in e's own frame. A convenience for
// populating the root environment with the builtin library.
func SetBuiltin(reg *atom.Registry, e atom.Atom, sym atom.Atom, name string, fn atom.BuiltinFunc) {
	Set(reg, e, sym, atom.NewBuiltin(name, fn))
}
