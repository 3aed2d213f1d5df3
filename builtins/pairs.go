package builtins

import (
	"github.com/aledsdavies/golisp/atom"
	"github.com/aledsdavies/golisp/diag"
)

// carBuiltin implements CAR: Nil passes through unchanged, non-Pair is
// WRONG_TYPE.
func carBuiltin(args []atom.Atom) (atom.Atom, error) {
	a, err := exactlyOneArg("CAR", args)
	if err != nil {
		return atom.Nil, err
	}
	if a.Tag == atom.TagNil {
		return atom.Nil, nil
	}
	if a.Tag != atom.TagPair {
		return atom.Nil, diag.New(diag.WrongType, "CAR requires a pair or nil, got %s", atom.Render(a))
	}
	return atom.Car(a), nil
}

// cdrBuiltin implements CDR, mirroring carBuiltin.
func cdrBuiltin(args []atom.Atom) (atom.Atom, error) {
	a, err := exactlyOneArg("CDR", args)
	if err != nil {
		return atom.Nil, err
	}
	if a.Tag == atom.TagNil {
		return atom.Nil, nil
	}
	if a.Tag != atom.TagPair {
		return atom.Nil, diag.New(diag.WrongType, "CDR requires a pair or nil, got %s", atom.Render(a))
	}
	return atom.Cdr(a), nil
}

// consBuiltinFor closes over the registry a cons allocates new cells from -
// the only built-in in this package that needs to allocate.
func consBuiltinFor(reg *atom.Registry) atom.BuiltinFunc {
	return func(args []atom.Atom) (atom.Atom, error) {
		if len(args) != 2 {
			return atom.Nil, diag.New(diag.Arguments, "CONS requires exactly 2 arguments")
		}
		return atom.NewPair(reg, args[0], args[1]), nil
	}
}
