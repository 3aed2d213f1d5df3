// Package gc orchestrates the mark/sweep cycle: gather roots (the symbol
// table plus whatever live atoms the caller supplies), mark them, and
// sweep the registry. The mark/sweep mechanics themselves live on
// atom.Registry/atom.Mark; this package only assembles the root set.
package gc

import (
	"github.com/aledsdavies/golisp/atom"
	"github.com/aledsdavies/golisp/symbol"
)

// Collect marks every symbol in syms plus every atom in live, then sweeps
// reg conditionally. Cycle safety comes from
// atom.Mark's own mark-before-recurse check, so passing the same atom (e.g.
// an environment reachable from several live frames) more than once in live
// is harmless.
func Collect(reg *atom.Registry, syms *symbol.Table, live []atom.Atom) (freedCells, freedTexts int) {
	for _, root := range syms.Roots() {
		atom.Mark(root)
	}
	for _, a := range live {
		atom.Mark(a)
	}
	return reg.Sweep(false)
}

// Teardown performs an unconditional sweep that frees
// every registry entry regardless of mark state, used by the embedding
// facade's Destroy.
func Teardown(reg *atom.Registry) (freedCells, freedTexts int) {
	return reg.Sweep(true)
}
