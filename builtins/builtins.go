// Package builtins implements the native function library installed into
// a fresh interpreter's root environment. Every built-in receives its
// argument list already evaluated by the trampoline and returns
// (result, error). EQ? on builtins is function-pointer identity, enforced
// here by registering exactly one *atom.Builtin per name via
// env.SetBuiltin.
package builtins

import (
	"io"

	"github.com/aledsdavies/golisp/atom"
	"github.com/aledsdavies/golisp/env"
	"github.com/aledsdavies/golisp/symbol"
)

// Install populates root with the full built-in library, interning each
// name through syms so lookup and EQ? behave exactly as they would for any
// other bound symbol. out is where DISPLAY, NEWLINE, and DISPLAY-ENV write;
// a caller with no use for program output can pass io.Discard.
func Install(reg *atom.Registry, syms *symbol.Table, root atom.Atom, out io.Writer) {
	set := func(name string, fn atom.BuiltinFunc) {
		env.SetBuiltin(reg, root, syms.Intern(name), name, fn)
	}

	set("+", add)
	set("-", sub)
	set("*", mul)
	set("/", div)

	set("=", numEqual)
	set("<", numLess)
	set(">", numGreater)

	set("NIL?", tagPredicate("NIL?", atom.TagNil))
	set("PAIR?", tagPredicate("PAIR?", atom.TagPair))
	set("SYMBOL?", tagPredicate("SYMBOL?", atom.TagSymbol))
	set("INTEGER?", tagPredicate("INTEGER?", atom.TagInteger))
	set("FLOAT?", tagPredicate("FLOAT?", atom.TagFloat))
	set("NUMERIC?", numericPredicate)
	set("BOOLEAN?", tagPredicate("BOOLEAN?", atom.TagBoolean))
	set("BUILTIN?", tagPredicate("BUILTIN?", atom.TagBuiltin))
	set("CLOSURE?", tagPredicate("CLOSURE?", atom.TagClosure))
	set("MACRO?", tagPredicate("MACRO?", atom.TagMacro))

	set("EQ?", eqBuiltin)
	set("NOT", notBuiltin)
	set("AND", andBuiltin)
	set("OR", orBuiltin)

	set("CAR", carBuiltin)
	set("CDR", cdrBuiltin)
	set("CONS", consBuiltinFor(reg))

	set("DISPLAY", displayBuiltinFor(out))
	set("CONCAT", concatBuiltinFor(reg))
	set("NEWLINE", newlineBuiltinFor(out))
	set("DISPLAY-ENV", displayEnvBuiltinFor(out, root))
}

// Names returns the library's built-in names, in registration order - fed
// into env.Get's fuzzy-suggestion candidates alongside symbol.Table.Names()
// so an UNBOUND error can suggest a mistyped built-in, not just a mistyped
// user symbol.
func Names() []string {
	return []string{
		"+", "-", "*", "/",
		"=", "<", ">",
		"NIL?", "PAIR?", "SYMBOL?", "INTEGER?", "FLOAT?", "NUMERIC?",
		"BOOLEAN?", "BUILTIN?", "CLOSURE?", "MACRO?",
		"EQ?", "NOT", "AND", "OR",
		"CAR", "CDR", "CONS",
		"DISPLAY", "CONCAT", "NEWLINE", "DISPLAY-ENV",
	}
}
