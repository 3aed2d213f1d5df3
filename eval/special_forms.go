package eval

import (
	"github.com/aledsdavies/golisp/atom"
	"github.com/aledsdavies/golisp/diag"
	"github.com/aledsdavies/golisp/env"
)

// dispatchCompound handles a compound expression: expr is a Pair,
// (op . args).
// Special forms are handled directly; anything else pushes a kindArgs frame
// and evaluates op first, so operator evaluation always goes through the
// normal trampoline loop rather than special-casing an already-evaluated
// Builtin/Closure/Macro sitting directly in head position.
func (e *Evaluator) dispatchCompound(op, args, curEnv atom.Atom, stack *frame) (*frame, atom.Atom, atom.Atom, mode, *diag.Error) {
	switch e.matchSpecialForm(op) {
	case sfQuoteForm:
		a, err := exactlyOne(args, "QUOTE")
		if err != nil {
			return nil, atom.Nil, atom.Nil, modeReturn, err
		}
		return stack, a, curEnv, modeReturn, nil

	case sfIfForm:
		test, thenB, elseB, err := exactlyThree(args, "IF")
		if err != nil {
			return nil, atom.Nil, atom.Nil, modeReturn, err
		}
		newStack := &frame{kind: kindIf, parent: stack, env: curEnv, thenBranch: thenB, elseBranch: elseB}
		return newStack, test, curEnv, modeEval, nil

	case sfDefineForm:
		return e.dispatchDefine(args, curEnv, stack)

	case sfLambdaForm:
		closure, err := e.buildLambda(args, curEnv)
		if err != nil {
			return nil, atom.Nil, atom.Nil, modeReturn, err
		}
		return stack, closure, curEnv, modeReturn, nil

	case sfDefmacroForm:
		nameSym, macro, err := e.buildMacro(args, curEnv)
		if err != nil {
			return nil, atom.Nil, atom.Nil, modeReturn, err
		}
		env.Set(e.reg, curEnv, nameSym, macro)
		return stack, nameSym, curEnv, modeReturn, nil

	case sfApplyForm:
		fnExpr, argsListExpr, err := exactlyTwo(args, "APPLY")
		if err != nil {
			return nil, atom.Nil, atom.Nil, modeReturn, err
		}
		newStack := &frame{kind: kindApplyFn, parent: stack, env: curEnv, applyArgsExpr: argsListExpr}
		return newStack, fnExpr, curEnv, modeEval, nil
	}

	return e.dispatchGeneral(op, args, curEnv, stack)
}

// dispatchDefine handles (DEFINE symbol value) and (DEFINE (name . formals)
// body...).
func (e *Evaluator) dispatchDefine(args, curEnv atom.Atom, stack *frame) (*frame, atom.Atom, atom.Atom, mode, *diag.Error) {
	if args.Tag != atom.TagPair {
		return nil, atom.Nil, atom.Nil, modeReturn, diag.New(diag.Arguments, "DEFINE requires a target and a value")
	}
	target := atom.Car(args)

	switch target.Tag {
	case atom.TagSymbol:
		rest := atom.Cdr(args)
		if rest.Tag != atom.TagPair || atom.Cdr(rest).Tag != atom.TagNil {
			return nil, atom.Nil, atom.Nil, modeReturn, diag.New(diag.Arguments, "DEFINE requires exactly one value expression")
		}
		newStack := &frame{kind: kindDefineValue, parent: stack, env: curEnv, defineSym: target}
		return newStack, atom.Car(rest), curEnv, modeEval, nil

	case atom.TagPair:
		nameSym := atom.Car(target)
		if nameSym.Tag != atom.TagSymbol {
			return nil, atom.Nil, atom.Nil, modeReturn, diag.New(diag.Syntax, "DEFINE shorthand requires a symbol name")
		}
		formals := atom.Cdr(target)
		if !validFormals(formals) {
			return nil, atom.Nil, atom.Nil, modeReturn, diag.New(diag.Syntax, "illegal closure formals")
		}
		body := atom.Cdr(args)
		closure := atom.NewClosure(e.reg, curEnv, formals, body)
		env.Set(e.reg, curEnv, nameSym, closure)
		return stack, nameSym, curEnv, modeReturn, nil

	default:
		return nil, atom.Nil, atom.Nil, modeReturn, diag.New(diag.Syntax, "DEFINE target must be a symbol or (name . formals)")
	}
}

// buildLambda validates formals and constructs a Closure for (LAMBDA formals
// body...).
func (e *Evaluator) buildLambda(args, curEnv atom.Atom) (atom.Atom, *diag.Error) {
	if args.Tag != atom.TagPair {
		return atom.Nil, diag.New(diag.Syntax, "LAMBDA requires a formals list and a body")
	}
	formals := atom.Car(args)
	if !validFormals(formals) {
		return atom.Nil, diag.New(diag.Syntax, "illegal closure formals")
	}
	body := atom.Cdr(args)
	return atom.NewClosure(e.reg, curEnv, formals, body), nil
}

// buildMacro validates formals and constructs a Macro for
// (DEFMACRO (name . formals) body...).
func (e *Evaluator) buildMacro(args, curEnv atom.Atom) (atom.Atom, atom.Atom, *diag.Error) {
	if args.Tag != atom.TagPair {
		return atom.Nil, atom.Nil, diag.New(diag.Syntax, "DEFMACRO requires (name . formals) and a body")
	}
	target := atom.Car(args)
	if target.Tag != atom.TagPair {
		return atom.Nil, atom.Nil, diag.New(diag.Syntax, "DEFMACRO requires (name . formals)")
	}
	nameSym := atom.Car(target)
	if nameSym.Tag != atom.TagSymbol {
		return atom.Nil, atom.Nil, diag.New(diag.Syntax, "DEFMACRO shorthand requires a symbol name")
	}
	formals := atom.Cdr(target)
	if !validFormals(formals) {
		return atom.Nil, atom.Nil, diag.New(diag.Syntax, "illegal closure formals")
	}
	body := atom.Cdr(args)
	closure := atom.NewClosure(e.reg, curEnv, formals, body)
	return nameSym, atom.AsMacro(closure), nil
}

// dispatchGeneral handles a non-special-form compound expression: evaluate
// the operator, then evaluate the arguments, then invoke. The APPLY special
// form is handled separately in dispatchCompound via a kindApplyFn frame.
func (e *Evaluator) dispatchGeneral(op, args, curEnv atom.Atom, stack *frame) (*frame, atom.Atom, atom.Atom, mode, *diag.Error) {
	newStack := &frame{kind: kindArgs, parent: stack, env: curEnv, pendingArgs: args}
	return newStack, op, curEnv, modeEval, nil
}

func exactlyOne(args atom.Atom, form string) (atom.Atom, *diag.Error) {
	if args.Tag != atom.TagPair || atom.Cdr(args).Tag != atom.TagNil {
		return atom.Nil, diag.New(diag.Arguments, "%s requires exactly one argument", form)
	}
	return atom.Car(args), nil
}

func exactlyThree(args atom.Atom, form string) (atom.Atom, atom.Atom, atom.Atom, *diag.Error) {
	if args.Tag != atom.TagPair {
		return atom.Nil, atom.Nil, atom.Nil, diag.New(diag.Arguments, "%s requires exactly three arguments", form)
	}
	first := atom.Car(args)
	rest1 := atom.Cdr(args)
	if rest1.Tag != atom.TagPair {
		return atom.Nil, atom.Nil, atom.Nil, diag.New(diag.Arguments, "%s requires exactly three arguments", form)
	}
	second := atom.Car(rest1)
	rest2 := atom.Cdr(rest1)
	if rest2.Tag != atom.TagPair || atom.Cdr(rest2).Tag != atom.TagNil {
		return atom.Nil, atom.Nil, atom.Nil, diag.New(diag.Arguments, "%s requires exactly three arguments", form)
	}
	return first, second, atom.Car(rest2), nil
}

func exactlyTwo(args atom.Atom, form string) (atom.Atom, atom.Atom, *diag.Error) {
	if args.Tag != atom.TagPair {
		return atom.Nil, atom.Nil, diag.New(diag.Arguments, "%s requires exactly two arguments", form)
	}
	first := atom.Car(args)
	rest := atom.Cdr(args)
	if rest.Tag != atom.TagPair || atom.Cdr(rest).Tag != atom.TagNil {
		return atom.Nil, atom.Nil, diag.New(diag.Arguments, "%s requires exactly two arguments", form)
	}
	return first, atom.Car(rest), nil
}

// validFormals checks a formal parameter list: Nil, a bare
// Symbol, or a list of Symbols optionally ending in a bare Symbol (rest).
func validFormals(f atom.Atom) bool {
	for {
		switch f.Tag {
		case atom.TagNil, atom.TagSymbol:
			return true
		case atom.TagPair:
			if atom.Car(f).Tag != atom.TagSymbol {
				return false
			}
			f = atom.Cdr(f)
		default:
			return false
		}
	}
}
