package builtins

import (
	"github.com/aledsdavies/golisp/atom"
	"github.com/aledsdavies/golisp/diag"
)

// eqBuiltin implements EQ?: the full per-tag identity/equality table,
// delegated entirely to atom.Eq so the evaluator's own symbol comparisons
// and this built-in never drift apart.
func eqBuiltin(args []atom.Atom) (atom.Atom, error) {
	if len(args) != 2 {
		return atom.Nil, diag.New(diag.Arguments, "EQ? requires exactly 2 arguments")
	}
	return atom.NewBoolean(atom.Eq(args[0], args[1])), nil
}

// notBuiltin implements NOT: the truthiness inverse.
func notBuiltin(args []atom.Atom) (atom.Atom, error) {
	a, err := exactlyOneArg("NOT", args)
	if err != nil {
		return atom.Nil, err
	}
	return atom.NewBoolean(!atom.Truthy(a)), nil
}
