// Package atom implements the interpreter's value model: the tagged Atom
// union, the Pair cell, and the allocation registry the collector walks.
//
// Closures and macros share the Pair cell's physical layout (a cell laid
// out as (captured_env . (params . body))), distinguished only by Tag.
package atom

import "fmt"

// Tag discriminates the variants an Atom may hold.
type Tag int

const (
	// TagNil is the singleton empty value.
	TagNil Tag = iota
	// TagSymbol carries an interned name; identity is canonical-pointer
	// equality after interning.
	TagSymbol
	// TagInteger carries a signed 64-bit integer.
	TagInteger
	// TagFloat carries a float64 (IEEE 754 double precision); wider
	// extended-precision formats are not represented.
	TagFloat
	// TagBoolean carries a single bit; prints as #t/#f.
	TagBoolean
	// TagString carries an owned text reference, content-addressed only
	// for equality.
	TagString
	// TagPair references a two-slot cell; the sole composite container.
	TagPair
	// TagBuiltin carries a native function reference.
	TagBuiltin
	// TagClosure references a cell laid out as
	// (captured_env . (params . body)), created by LAMBDA or by DEFMACRO
	// then retagged.
	TagClosure
	// TagMacro has the same physical layout as TagClosure; arguments are
	// not evaluated before application.
	TagMacro
)

var tagNames = [...]string{
	TagNil:     "NIL",
	TagSymbol:  "SYMBOL",
	TagInteger: "INTEGER",
	TagFloat:   "FLOAT",
	TagBoolean: "BOOLEAN",
	TagString:  "STRING",
	TagPair:    "PAIR",
	TagBuiltin: "BUILTIN",
	TagClosure: "CLOSURE",
	TagMacro:   "MACRO",
}

// String renders the tag name, used in WRONG_TYPE diagnostics.
func (t Tag) String() string {
	if int(t) >= 0 && int(t) < len(tagNames) {
		return tagNames[t]
	}
	return fmt.Sprintf("Tag(%d)", int(t))
}
