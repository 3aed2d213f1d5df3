package eval

import (
	"github.com/aledsdavies/golisp/atom"
	"github.com/aledsdavies/golisp/diag"
)

// listToSlice flattens a proper list into a slice, in order. A non-Nil,
// non-Pair tail (a dotted list) is a WRONG_TYPE error: argument lists and
// APPLY's spliced list must be proper.
func listToSlice(list atom.Atom) ([]atom.Atom, *diag.Error) {
	var out []atom.Atom
	for list.Tag == atom.TagPair {
		out = append(out, atom.Car(list))
		list = atom.Cdr(list)
	}
	if list.Tag != atom.TagNil {
		return nil, diag.New(diag.WrongType, "expected a proper list")
	}
	return out, nil
}

// sliceToList builds a fresh, Nil-terminated proper list from items.
func sliceToList(reg *atom.Registry, items []atom.Atom) atom.Atom {
	result := atom.Nil
	for i := len(items) - 1; i >= 0; i-- {
		result = atom.NewPair(reg, items[i], result)
	}
	return result
}
