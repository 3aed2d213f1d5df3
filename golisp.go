// Package golisp is the embedding facade: the surface a host CLI/REPL
// (itself outside this module) links against to run golisp programs. It owns one interpreter instance's
// allocation registry, symbol table, root environment, and last-error
// buffer, and wires package eval/parser/builtins/gc together behind a
// small, stable method set.
package golisp

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aledsdavies/golisp/atom"
	"github.com/aledsdavies/golisp/builtins"
	"github.com/aledsdavies/golisp/diag"
	"github.com/aledsdavies/golisp/env"
	"github.com/aledsdavies/golisp/eval"
	"github.com/aledsdavies/golisp/gc"
	"github.com/aledsdavies/golisp/parser"
	"github.com/aledsdavies/golisp/symbol"
)

// Error is the embedding surface's error type: a discriminated kind plus
// a detail string.
type Error = diag.Error

// ParseStatus mirrors diag.ParseStatus for embedders that want the
// sentinel without importing package diag directly.
type ParseStatus = diag.ParseStatus

// EmptyLine is the only ParseStatus sentinel that can cross ParseExpr's
// boundary: the input held nothing but whitespace.
const EmptyLine = diag.EmptyLine

// Interp is one interpreter instance. Every registry, symbol table, and
// environment below belongs to exactly one Interp and is not shared
// across instances.
type Interp struct {
	reg  *atom.Registry
	syms *symbol.Table
	ev   *eval.Evaluator
	root atom.Atom
	out  io.Writer
	last diag.Last
}

type config struct {
	gcThreshold int
	logger      *slog.Logger
	out         io.Writer
}

// Option configures Init, matching the ambient-stack functional-options
// pattern used across golisp's construction surface.
type Option func(*config)

// WithGCThreshold overrides the default 10,000-iteration GC trigger.
func WithGCThreshold(n int) Option {
	return func(c *config) { c.gcThreshold = n }
}

// WithLogger overrides the default logger (slog.Default()).
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithOutput overrides where DISPLAY, NEWLINE, and DISPLAY-ENV write
// (default os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(c *config) { c.out = w }
}

// Init creates a root environment, seeds the built-in library, and returns
// a ready-to-use interpreter handle.
func Init(opts ...Option) *Interp {
	cfg := config{
		gcThreshold: 10000,
		logger:      slog.Default(),
		out:         os.Stdout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	reg := atom.NewRegistry(cfg.logger)
	syms := symbol.NewTable(reg)
	ev := eval.New(reg, syms, eval.WithGCThreshold(cfg.gcThreshold), eval.WithLogger(cfg.logger))
	root := env.New(reg, atom.Nil)
	builtins.Install(reg, syms, root, cfg.out)

	return &Interp{reg: reg, syms: syms, ev: ev, root: root, out: cfg.out}
}

// Destroy performs an unconditional sweep, freeing every cell and interned
// symbol/string regardless of reachability. The Interp must not be used
// afterward.
func (i *Interp) Destroy() {
	gc.Teardown(i.reg)
}

// ParseExpr parses one top-level form from input.
// rest points past the consumed span; status is diag.EmptyLine when input
// held only whitespace.
func (i *Interp) ParseExpr(input string) (result atom.Atom, rest string, status ParseStatus, err *Error) {
	result, rest, status, err = parser.Parse(input, i.reg, i.syms)
	if err != nil {
		i.last.Set(err)
	}
	return result, rest, status, err
}

// EvalExpr runs the trampoline evaluator over expr in e.
func (i *Interp) EvalExpr(expr atom.Atom, e atom.Atom) (atom.Atom, *Error) {
	result, err := i.ev.Eval(expr, e)
	if err != nil {
		i.last.Set(err)
	}
	return result, err
}

// EnvNew allocates a fresh child frame of parent.
func (i *Interp) EnvNew(parent atom.Atom) atom.Atom {
	return env.New(i.reg, parent)
}

// EnvGet resolves sym by walking e and its ancestors.
func (i *Interp) EnvGet(e, sym atom.Atom) (atom.Atom, *Error) {
	result, err := env.Get(e, sym, i.candidateNames())
	if err != nil {
		i.last.Set(err)
	}
	return result, err
}

// EnvSet binds sym to value in e's own frame.
func (i *Interp) EnvSet(e, sym, value atom.Atom) {
	env.Set(i.reg, e, sym, value)
}

// EnvSetBuiltin binds name to a native function in e's own frame - the
// hook a host-provided built-in such as LOAD uses to extend the language
// from outside this module.
func (i *Interp) EnvSetBuiltin(e atom.Atom, name string, fn atom.BuiltinFunc) {
	env.SetBuiltin(i.reg, e, i.syms.Intern(name), name, fn)
}

// GetRootEnv returns the interpreter's root environment, for host built-ins
// that must install bindings visible everywhere, such as a file LOAD.
func (i *Interp) GetRootEnv() atom.Atom {
	return i.root
}

// ExprStr renders a as a human-readable string.
func (i *Interp) ExprStr(a atom.Atom) string {
	return atom.Render(a)
}

// PrintExpr writes a's rendered form followed by a line break to the
// interpreter's configured output.
func (i *Interp) PrintExpr(a atom.Atom) {
	_, _ = fmt.Fprintln(i.out, atom.Render(a))
}

// ErrorTypeStr returns the kind name of the last recorded error, or
// "UNKNOWN" if none has been recorded.
func (i *Interp) ErrorTypeStr() string {
	return i.last.TypeString()
}

// ErrorDetail returns the detail text of the last recorded error, or "" if
// none has been recorded.
func (i *Interp) ErrorDetail() string {
	return i.last.Detail()
}

// PrintError writes the last recorded error's rendered diagnostic line to
// the interpreter's configured output.
func (i *Interp) PrintError() {
	if line := i.last.Print(); line != "" {
		_, _ = fmt.Fprintln(i.out, line)
	}
}

// candidateNames feeds UNBOUND's fuzzy "did you mean" suggestion every
// interned user symbol plus every built-in name.
func (i *Interp) candidateNames() []string {
	names := make([]string, 0, i.syms.Len()+len(builtins.Names()))
	names = append(names, i.syms.Names()...)
	names = append(names, builtins.Names()...)
	return names
}
