package builtins

import (
	"fmt"
	"io"
	"strings"

	"github.com/aledsdavies/golisp/atom"
	"github.com/aledsdavies/golisp/env"
)

// displayBuiltinFor closes over the interpreter's configured output writer
// rather than writing straight to os.Stdout, so an embedding host can
// redirect program output.
func displayBuiltinFor(w io.Writer) atom.BuiltinFunc {
	return func(args []atom.Atom) (atom.Atom, error) {
		var b strings.Builder
		for _, a := range args {
			b.WriteString(atom.RenderUnquoted(a))
		}
		_, _ = fmt.Fprintln(w, b.String())
		return atom.Nil, nil
	}
}

// concatBuiltinFor closes over reg to intern the resulting String atom.
func concatBuiltinFor(reg *atom.Registry) atom.BuiltinFunc {
	return func(args []atom.Atom) (atom.Atom, error) {
		var b strings.Builder
		for _, a := range args {
			b.WriteString(atom.RenderUnquoted(a))
		}
		return atom.NewString(reg, b.String()), nil
	}
}

// newlineBuiltinFor closes over the output writer; takes no arguments.
func newlineBuiltinFor(w io.Writer) atom.BuiltinFunc {
	return func(args []atom.Atom) (atom.Atom, error) {
		_, _ = fmt.Fprintln(w)
		return atom.Nil, nil
	}
}

// displayEnvBuiltinFor closes over the output writer and the root
// environment, printing every user-level binding in root's own frame and
// skipping the builtins installed by Install.
func displayEnvBuiltinFor(w io.Writer, root atom.Atom) atom.BuiltinFunc {
	return func(args []atom.Atom) (atom.Atom, error) {
		for b := env.Bindings(root); b.Tag == atom.TagPair; b = atom.Cdr(b) {
			binding := atom.Car(b)
			name := atom.Car(binding)
			value := atom.Cdr(binding)
			if value.Tag == atom.TagBuiltin {
				continue
			}
			_, _ = fmt.Fprintf(w, "%s = %s\n", atom.Render(name), atom.Render(value))
		}
		return atom.Nil, nil
	}
}
