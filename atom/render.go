package atom

import (
	"strconv"
	"strings"
)

// Render turns an atom into its human-readable printed form: pairs as
// (...) or (a . b), closures as #<FUNCTION: formals body>, macros as
// #<MACRO: formals body>, booleans as #t/#f, strings quoted. This backs
// the embedding surface's PrintExpr/ExprStr operations; CONCAT and
// DISPLAY use RenderUnquoted below where their looser formatting diverges
// (strings unquoted, booleans as TRUE/FALSE).
func Render(a Atom) string {
	switch a.Tag {
	case TagNil:
		return "NIL"
	case TagSymbol:
		return a.Sym.Value
	case TagInteger:
		return strconv.FormatInt(a.Int, 10)
	case TagFloat:
		return strconv.FormatFloat(a.Float, 'g', -1, 64)
	case TagBoolean:
		if a.Bool {
			return "#t"
		}
		return "#f"
	case TagString:
		return strconv.Quote(a.Str.Value)
	case TagPair:
		return renderPair(a.Cell)
	case TagBuiltin:
		return "#<BUILTIN: " + a.Fn.Name + ">"
	case TagClosure:
		return "#<FUNCTION: " + Render(Formals(a)) + " " + Render(Body(a)) + ">"
	case TagMacro:
		return "#<MACRO: " + Render(Formals(a)) + " " + Render(Body(a)) + ">"
	default:
		return "#<UNKNOWN>"
	}
}

func renderPair(c *Cell) string {
	var b strings.Builder
	b.WriteByte('(')
	first := true
	for {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		b.WriteString(Render(c.Head))

		switch c.Tail.Tag {
		case TagNil:
			b.WriteByte(')')
			return b.String()
		case TagPair:
			c = c.Tail.Cell
		default:
			b.WriteString(" . ")
			b.WriteString(Render(c.Tail))
			b.WriteByte(')')
			return b.String()
		}
	}
}

// RenderUnquoted renders a the way CONCAT and DISPLAY do:
// strings inserted unquoted, symbols as their name, integers/floats in
// their usual form, booleans as TRUE/FALSE, Nil as empty.
func RenderUnquoted(a Atom) string {
	switch a.Tag {
	case TagNil:
		return ""
	case TagString:
		return a.Str.Value
	case TagBoolean:
		if a.Bool {
			return "TRUE"
		}
		return "FALSE"
	default:
		return Render(a)
	}
}
