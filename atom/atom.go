package atom

// Atom is the universal tagged value. It is a plain struct, not
// an interface: inline scalars (Integer, Float, Boolean, Nil) live directly
// in the value and need no registry tracking, while Pair/Closure/Macro,
// Symbol, String, and Builtin carry a pointer into registry-owned (or, for
// Builtin, interpreter-owned) storage.
type Atom struct {
	Tag Tag

	Int   int64
	Float float64
	Bool  bool

	Sym  *Text    // set when Tag == TagSymbol
	Str  *Text    // set when Tag == TagString
	Cell *Cell    // set when Tag == TagPair, TagClosure, or TagMacro
	Fn   *Builtin // set when Tag == TagBuiltin
}

// Nil is the singleton empty value.
var Nil = Atom{Tag: TagNil}

// BuiltinFunc is a native function: it receives its already-evaluated
// argument list and returns a result or an error.
type BuiltinFunc func(args []Atom) (Atom, error)

// Builtin is a native function reference. EQ? compares Builtin atoms by
// this pointer;
// Go func values are not comparable, so the indirection through a named,
// addressable struct is what makes that identity comparison possible.
type Builtin struct {
	Name string
	Fn   BuiltinFunc
}

// NewInteger builds an Integer atom.
func NewInteger(v int64) Atom { return Atom{Tag: TagInteger, Int: v} }

// NewFloat builds a Float atom.
func NewFloat(v float64) Atom { return Atom{Tag: TagFloat, Float: v} }

// NewBoolean builds a Boolean atom.
func NewBoolean(v bool) Atom { return Atom{Tag: TagBoolean, Bool: v} }

// NewString interns v as a content-addressed text cell and returns a
// String atom referencing it.
func NewString(reg *Registry, v string) Atom {
	return Atom{Tag: TagString, Str: reg.InternString(v)}
}

// NewPair allocates a fresh cell and returns a Pair atom over it.
func NewPair(reg *Registry, head, tail Atom) Atom {
	return Atom{Tag: TagPair, Cell: reg.NewCell(head, tail)}
}

// NewBuiltin wraps fn as a Builtin atom. Builtins are not registry-tracked:
// they live for the lifetime of the interpreter instance that registered
// them, like the native-code entry points they are.
func NewBuiltin(name string, fn BuiltinFunc) Atom {
	return Atom{Tag: TagBuiltin, Fn: &Builtin{Name: name, Fn: fn}}
}

// NewClosure builds a cell laid out as (capturedEnv . (formals . body)) and
// returns a Closure atom over it.
func NewClosure(reg *Registry, capturedEnv, formals, body Atom) Atom {
	inner := NewPair(reg, formals, body)
	cell := reg.NewCell(capturedEnv, inner)
	return Atom{Tag: TagClosure, Cell: cell}
}

// AsMacro returns a as a Macro atom over the same underlying cell - the
// "build a Closure, retag as Macro" step of DEFMACRO. Panics if a is not
// a Closure; callers always
// build one with NewClosure first.
func AsMacro(a Atom) Atom {
	if a.Tag != TagClosure {
		panic("AsMacro requires a Closure atom")
	}
	return Atom{Tag: TagMacro, Cell: a.Cell}
}

// CapturedEnv, Formals, and Body extract the three logical fields of a
// Closure/Macro cell, mirroring its (env . (formals . body)) layout.
func CapturedEnv(a Atom) Atom { return a.Cell.Head }
func Formals(a Atom) Atom     { return a.Cell.Tail.Cell.Head }
func Body(a Atom) Atom        { return a.Cell.Tail.Cell.Tail }

// Car returns the head of a pair cell. The caller must have already
// checked a.Tag == TagPair.
func Car(a Atom) Atom { return a.Cell.Head }

// Cdr returns the tail of a pair cell. The caller must have already
// checked a.Tag == TagPair.
func Cdr(a Atom) Atom { return a.Cell.Tail }

// Truthy implements the truthiness rule: only the literal #f is
// false, everything else - including Nil, 0, "", and empty lists - is true.
func Truthy(a Atom) bool {
	return !(a.Tag == TagBoolean && !a.Bool)
}

// Eq implements the EQ? built-in's comparison rules.
func Eq(a, b Atom) bool {
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case TagNil:
		return true
	case TagSymbol:
		return a.Sym == b.Sym
	case TagPair, TagClosure, TagMacro:
		return a.Cell == b.Cell
	case TagString:
		return a.Str.Value == b.Str.Value
	case TagInteger:
		return a.Int == b.Int
	case TagFloat:
		return a.Float == b.Float
	case TagBoolean:
		return a.Bool == b.Bool
	case TagBuiltin:
		return a.Fn == b.Fn
	default:
		return false
	}
}
