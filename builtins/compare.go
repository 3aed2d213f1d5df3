package builtins

import (
	"github.com/aledsdavies/golisp/atom"
)

// numCompare implements =, <, >: true iff holds of every adjacent pair.
func numCompare(name string, args []atom.Atom, holds func(a, b float64) bool) (atom.Atom, error) {
	if err := checkNumericArgs(name, args); err != nil {
		return atom.Nil, err
	}
	for i := 1; i < len(args); i++ {
		if !holds(asFloat(args[i-1]), asFloat(args[i])) {
			return atom.NewBoolean(false), nil
		}
	}
	return atom.NewBoolean(true), nil
}

func numEqual(args []atom.Atom) (atom.Atom, error) {
	return numCompare("=", args, func(a, b float64) bool { return a == b })
}

func numLess(args []atom.Atom) (atom.Atom, error) {
	return numCompare("<", args, func(a, b float64) bool { return a < b })
}

func numGreater(args []atom.Atom) (atom.Atom, error) {
	return numCompare(">", args, func(a, b float64) bool { return a > b })
}
