// Package eval implements the trampoline evaluator. It replaces native
// recursion with an explicit loop over heap-allocated frames so that
// deeply recursive golisp programs never grow the Go call stack.
//
// The loop alternates between two modes: evaluate (inspect expr/env and
// either produce a result directly or transition/push a frame) and return
// (pop a produced result into the frame that is waiting on it).
package eval

import (
	"log/slog"

	"github.com/aledsdavies/golisp/atom"
	"github.com/aledsdavies/golisp/diag"
	"github.com/aledsdavies/golisp/env"
	"github.com/aledsdavies/golisp/gc"
	"github.com/aledsdavies/golisp/symbol"
)

// defaultGCThreshold makes a collection run every 10,000 trampoline
// iterations.
const defaultGCThreshold = 10000

// Evaluator holds the canonical special-form symbols and GC/logging
// configuration for one interpreter instance. It carries no evaluation
// state between calls to Eval - each call starts its own frame stack.
type Evaluator struct {
	reg  *atom.Registry
	syms *symbol.Table

	logger      *slog.Logger
	gcThreshold int

	sfQuote    atom.Atom
	sfIf       atom.Atom
	sfDefine   atom.Atom
	sfLambda   atom.Atom
	sfDefmacro atom.Atom
	sfApply    atom.Atom
}

// Option configures an Evaluator, matching the ambient-stack functional
// options pattern used across golisp's construction surface.
type Option func(*Evaluator)

// WithGCThreshold overrides the default 10,000-iteration GC trigger.
func WithGCThreshold(n int) Option {
	return func(e *Evaluator) { e.gcThreshold = n }
}

// WithLogger overrides the default logger (slog.Default()).
func WithLogger(logger *slog.Logger) Option {
	return func(e *Evaluator) { e.logger = logger }
}

// New builds an Evaluator over reg/syms, interning the six special-form
// symbols once so every later comparison is a pointer check (atom.Eq) not a
// string compare.
func New(reg *atom.Registry, syms *symbol.Table, opts ...Option) *Evaluator {
	e := &Evaluator{
		reg:         reg,
		syms:        syms,
		logger:      slog.Default(),
		gcThreshold: defaultGCThreshold,
		sfQuote:     syms.Intern("QUOTE"),
		sfIf:        syms.Intern("IF"),
		sfDefine:    syms.Intern("DEFINE"),
		sfLambda:    syms.Intern("LAMBDA"),
		sfDefmacro:  syms.Intern("DEFMACRO"),
		sfApply:     syms.Intern("APPLY"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type specialForm int

const (
	sfNone specialForm = iota
	sfQuoteForm
	sfIfForm
	sfDefineForm
	sfLambdaForm
	sfDefmacroForm
	sfApplyForm
)

func (e *Evaluator) matchSpecialForm(op atom.Atom) specialForm {
	if op.Tag != atom.TagSymbol {
		return sfNone
	}
	switch {
	case atom.Eq(op, e.sfQuote):
		return sfQuoteForm
	case atom.Eq(op, e.sfIf):
		return sfIfForm
	case atom.Eq(op, e.sfDefine):
		return sfDefineForm
	case atom.Eq(op, e.sfLambda):
		return sfLambdaForm
	case atom.Eq(op, e.sfDefmacro):
		return sfDefmacroForm
	case atom.Eq(op, e.sfApply):
		return sfApplyForm
	default:
		return sfNone
	}
}

type mode int

const (
	modeEval mode = iota
	modeReturn
)

// Eval runs the trampoline to completion against expr in rootEnv,
// returning the result or the first error encountered. There is no
// suspension point: an evaluation runs to completion before returning.
func (e *Evaluator) Eval(expr atom.Atom, rootEnv atom.Atom) (atom.Atom, *diag.Error) {
	m := modeEval
	env_ := rootEnv
	var result atom.Atom
	var stack *frame
	iterations := 0

	for {
		iterations++
		if iterations >= e.gcThreshold {
			e.collect(expr, env_, result, stack)
			iterations = 0
		}

		if m == modeEval {
			switch {
			case expr.Tag == atom.TagSymbol:
				v, err := env.Get(env_, expr, e.syms.Names())
				if err != nil {
					return atom.Nil, err
				}
				result = v
				m = modeReturn

			case expr.Tag != atom.TagPair:
				result = expr
				m = modeReturn

			default:
				op := atom.Car(expr)
				args := atom.Cdr(expr)
				newStack, val, newEnv, newMode, serr := e.dispatchCompound(op, args, env_, stack)
				if serr != nil {
					return atom.Nil, serr
				}
				stack, env_, m = newStack, newEnv, newMode
				if newMode == modeEval {
					expr = val
				} else {
					result = val
				}
			}
			continue
		}

		// m == modeReturn
		if stack == nil {
			return result, nil
		}
		f := stack

		switch f.kind {
		case kindIf:
			stack = f.parent
			if atom.Truthy(result) {
				expr = f.thenBranch
			} else {
				expr = f.elseBranch
			}
			env_ = f.env
			m = modeEval

		case kindDefineValue:
			env.Set(e.reg, f.env, f.defineSym, result)
			stack = f.parent
			result = f.defineSym
			// m stays modeReturn: pop again into whatever awaited the DEFINE.

		case kindMacroReeval:
			stack = f.parent
			expr = result
			env_ = f.env
			m = modeEval

		case kindBody:
			if f.remaining.Tag == atom.TagPair {
				expr = atom.Car(f.remaining)
				f.remaining = atom.Cdr(f.remaining)
				env_ = f.env
				m = modeEval
				continue
			}
			stack = f.parent
			// result already holds the last body form's value.

		case kindApplyFn:
			if !f.haveFn {
				f.haveFn = true
				f.fn = result
				expr = f.applyArgsExpr
				env_ = f.env
				m = modeEval
				continue
			}
			args, lerr := listToSlice(result)
			if lerr != nil {
				return atom.Nil, lerr
			}
			var aerr *diag.Error
			stack, expr, env_, m, result, aerr = e.apply(f.fn, args, f.parent)
			if aerr != nil {
				return atom.Nil, aerr
			}

		case kindArgs:
			if !f.haveOp {
				f.haveOp = true
				f.op = result
				if f.op.Tag == atom.TagMacro {
					var merr *diag.Error
					stack, expr, env_, m, merr = e.enterMacro(f)
					if merr != nil {
						return atom.Nil, merr
					}
					continue
				}
			} else {
				f.args = append(f.args, result)
			}

			if f.pendingArgs.Tag == atom.TagPair {
				expr = atom.Car(f.pendingArgs)
				f.pendingArgs = atom.Cdr(f.pendingArgs)
				env_ = f.env
				m = modeEval
				continue
			}

			var aerr *diag.Error
			stack, expr, env_, m, result, aerr = e.apply(f.op, f.args, f.parent)
			if aerr != nil {
				return atom.Nil, aerr
			}
		}
	}
}

// collect gathers the evaluator's live state at the checkpoint - the
// current expression, environment, in-flight result, and the whole frame
// stack - and runs a collection cycle via package gc. The in-flight result
// must be a root too: when a cycle fires in return mode, a freshly consed
// result may be reachable from nowhere else yet.
func (e *Evaluator) collect(expr, env_, result atom.Atom, stack *frame) {
	live := []atom.Atom{expr, env_, result}
	for f := stack; f != nil; f = f.parent {
		live = append(live, f.liveAtoms()...)
	}
	freedCells, freedTexts := gc.Collect(e.reg, e.syms, live)
	e.logger.Debug("trampoline gc cycle", "freed_cells", freedCells, "freed_texts", freedTexts)
}
