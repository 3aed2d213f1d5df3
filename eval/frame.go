package eval

import "github.com/aledsdavies/golisp/atom"

// frameKind discriminates the heap-stack frame's meaning. A kind tag plus
// one named field cluster per kind, rather than a generic list walked by
// position, keeps each frame's fields self-describing.
type frameKind int

const (
	// kindIf resumes an IF special form once its test has been evaluated.
	kindIf frameKind = iota
	// kindDefineValue resumes a (DEFINE symbol value) once value is evaluated.
	kindDefineValue
	// kindArgs gathers a compound call's operator, then its arguments, left
	// to right.
	kindArgs
	// kindApplyFn gathers the APPLY special form's two arguments: the
	// function expression, then the argument-list expression.
	kindApplyFn
	// kindBody executes a closure/macro body's forms in sequence, returning
	// the value of the last one.
	kindBody
	// kindMacroReeval re-evaluates a macro's expansion in the caller's
	// environment once the macro body has produced it.
	kindMacroReeval
)

// frame is one heap-allocated trampoline frame. Only the fields relevant to
// kind are populated; the rest are zero values.
type frame struct {
	kind   frameKind
	parent *frame
	env    atom.Atom

	// kindIf
	thenBranch atom.Atom
	elseBranch atom.Atom

	// kindDefineValue
	defineSym atom.Atom

	// kindArgs
	op          atom.Atom
	haveOp      bool
	pendingArgs atom.Atom
	args        []atom.Atom

	// kindApplyFn
	haveFn        bool
	fn            atom.Atom
	applyArgsExpr atom.Atom

	// kindBody
	remaining atom.Atom
}

// liveAtoms returns every atom this single frame (not its ancestors) is
// holding live, for the GC root walk.
func (f *frame) liveAtoms() []atom.Atom {
	live := make([]atom.Atom, 0, 8)
	live = append(live, f.env, f.thenBranch, f.elseBranch, f.defineSym,
		f.op, f.pendingArgs, f.fn, f.applyArgsExpr, f.remaining)
	live = append(live, f.args...)
	return live
}
