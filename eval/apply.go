package eval

import (
	"github.com/aledsdavies/golisp/atom"
	"github.com/aledsdavies/golisp/diag"
	"github.com/aledsdavies/golisp/env"
)

// apply performs the APPLY/BIND/EXEC steps for an already-
// evaluated operator and already-evaluated argument values, resuming the
// trampoline under parent once done. The six return values are
// (stack, expr, env, mode, result, err): when mode is modeReturn, result
// is the finished value and expr/env are unused; when modeEval, expr/env
// name the first body form to run next and result is unused.
func (e *Evaluator) apply(op atom.Atom, args []atom.Atom, parent *frame) (*frame, atom.Atom, atom.Atom, mode, atom.Atom, *diag.Error) {
	switch op.Tag {
	case atom.TagBuiltin:
		res, callErr := op.Fn.Fn(args)
		if callErr != nil {
			return nil, atom.Nil, atom.Nil, modeReturn, atom.Nil, toDiagError(callErr)
		}
		return parent, atom.Nil, atom.Nil, modeReturn, res, nil

	case atom.TagClosure:
		bodyEnv, berr := e.bindFormals(op, args)
		if berr != nil {
			return nil, atom.Nil, atom.Nil, modeReturn, atom.Nil, berr
		}
		body := atom.Body(op)
		if body.Tag != atom.TagPair {
			return parent, atom.Nil, atom.Nil, modeReturn, atom.Nil, nil
		}
		bodyFrame := &frame{kind: kindBody, parent: parent, env: bodyEnv, remaining: atom.Cdr(body)}
		return bodyFrame, atom.Car(body), bodyEnv, modeEval, atom.Nil, nil

	default:
		return nil, atom.Nil, atom.Nil, modeReturn, atom.Nil,
			diag.New(diag.WrongType, "applyable operator must be a builtin or closure, got %s", atom.Render(op))
	}
}

// enterMacro implements the macro application path: the pending
// arguments are bound to the macro's formals verbatim, unevaluated, then the
// macro body executes; its result is scheduled for re-evaluation in the
// caller's environment via a kindMacroReeval frame.
func (e *Evaluator) enterMacro(f *frame) (*frame, atom.Atom, atom.Atom, mode, *diag.Error) {
	rawArgs, lerr := listToSlice(f.pendingArgs)
	if lerr != nil {
		return nil, atom.Nil, atom.Nil, modeReturn, lerr
	}
	bodyEnv, berr := e.bindFormals(f.op, rawArgs)
	if berr != nil {
		return nil, atom.Nil, atom.Nil, modeReturn, berr
	}

	body := atom.Body(f.op)
	if body.Tag != atom.TagPair {
		// An empty macro body expands to Nil, re-evaluated (trivially) in
		// the caller's environment.
		return f.parent, atom.Nil, f.env, modeEval, nil
	}

	reevalFrame := &frame{kind: kindMacroReeval, parent: f.parent, env: f.env}
	bodyFrame := &frame{kind: kindBody, parent: reevalFrame, env: bodyEnv, remaining: atom.Cdr(body)}
	return bodyFrame, atom.Car(body), bodyEnv, modeEval, nil
}

// bindFormals implements the BIND step: a fresh child of the
// closure's captured environment, with formals and args walked in lockstep.
func (e *Evaluator) bindFormals(closure atom.Atom, args []atom.Atom) (atom.Atom, *diag.Error) {
	capturedEnv := atom.CapturedEnv(closure)
	formals := atom.Formals(closure)
	newEnv := env.New(e.reg, capturedEnv)

	i := 0
	cur := formals
	for {
		switch cur.Tag {
		case atom.TagNil:
			if i < len(args) {
				return atom.Nil, diag.New(diag.Arguments, "too many arguments: expected %d, got %d", i, len(args))
			}
			return newEnv, nil
		case atom.TagSymbol:
			env.Set(e.reg, newEnv, cur, sliceToList(e.reg, args[i:]))
			return newEnv, nil
		case atom.TagPair:
			if i >= len(args) {
				return atom.Nil, diag.New(diag.Arguments, "too few arguments")
			}
			env.Set(e.reg, newEnv, atom.Car(cur), args[i])
			i++
			cur = atom.Cdr(cur)
		default:
			return atom.Nil, diag.New(diag.Syntax, "illegal closure formals")
		}
	}
}

// toDiagError normalizes a builtin's returned error into *diag.Error.
// Builtins are expected to always return one (see package builtins), but
// this keeps Eval's error channel type-safe even against a misbehaving
// host-supplied builtin that returns a plain error.
func toDiagError(err error) *diag.Error {
	if err == nil {
		return nil
	}
	if de, ok := err.(*diag.Error); ok {
		return de
	}
	return diag.New(diag.Unknown, "%s", err.Error())
}
