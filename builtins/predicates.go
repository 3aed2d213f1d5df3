package builtins

import (
	"github.com/aledsdavies/golisp/atom"
	"github.com/aledsdavies/golisp/diag"
)

// tagPredicate builds a 1-arg builtin testing a.Tag against want - the
// NIL?/PAIR?/SYMBOL?/.../MACRO? family.
func tagPredicate(name string, want atom.Tag) atom.BuiltinFunc {
	return func(args []atom.Atom) (atom.Atom, error) {
		a, err := exactlyOneArg(name, args)
		if err != nil {
			return atom.Nil, err
		}
		return atom.NewBoolean(a.Tag == want), nil
	}
}

func exactlyOneArg(name string, args []atom.Atom) (atom.Atom, error) {
	if len(args) != 1 {
		return atom.Nil, diag.New(diag.Arguments, "%s requires exactly 1 argument", name)
	}
	return args[0], nil
}

func numericPredicate(args []atom.Atom) (atom.Atom, error) {
	a, err := exactlyOneArg("NUMERIC?", args)
	if err != nil {
		return atom.Nil, err
	}
	return atom.NewBoolean(isNumeric(a)), nil
}
