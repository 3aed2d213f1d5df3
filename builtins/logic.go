package builtins

import (
	"github.com/aledsdavies/golisp/atom"
	"github.com/aledsdavies/golisp/diag"
)

// AND and OR are NOT classical logical conjunction/disjunction over all
// arguments: they compare consecutive-pair truthiness instead. Callers
// should not assume (AND a b c) means "a and b and c are all truthy" in
// the usual Scheme sense.
//
// Both built-ins receive their arguments already evaluated by the
// trampoline: there is no short-circuiting here, unlike the IF special
// form.

func andBuiltin(args []atom.Atom) (atom.Atom, error) {
	if len(args) < 2 {
		return atom.Nil, diag.New(diag.Arguments, "AND requires at least 2 arguments")
	}
	for i := 1; i < len(args); i++ {
		if atom.Truthy(args[i-1]) != atom.Truthy(args[i]) {
			return atom.NewBoolean(false), nil
		}
	}
	return atom.NewBoolean(true), nil
}

func orBuiltin(args []atom.Atom) (atom.Atom, error) {
	if len(args) < 2 {
		return atom.Nil, diag.New(diag.Arguments, "OR requires at least 2 arguments")
	}
	for i := 1; i < len(args); i++ {
		if atom.Truthy(args[i-1]) || atom.Truthy(args[i]) {
			return atom.NewBoolean(true), nil
		}
	}
	return atom.NewBoolean(false), nil
}
