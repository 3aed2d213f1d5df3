// Package parser assembles token spans (package lexer) into atoms by
// recursive descent, dispatching on the first character of each token:
// string literals, lists and dotted pairs, the ' quote shorthand, #t/#f
// hash literals, integer and float literals, and case-folded symbols.
package parser

import (
	"strconv"
	"strings"

	"github.com/aledsdavies/golisp/atom"
	"github.com/aledsdavies/golisp/diag"
	"github.com/aledsdavies/golisp/lexer"
	"github.com/aledsdavies/golisp/symbol"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// upperFolder case-folds symbol tokens to upper case on read. Every
// predefined name (NIL, QUOTE, IF, ...) is registered upper-cased, so
// lookup depends on this fold. golang.org/x/text/cases gives table-driven
// Unicode folding rather than an ASCII-only byte loop.
var upperFolder = cases.Upper(language.Und)

// Parse parses exactly one top-level form from src starting at offset 0.
// It returns the parsed atom, the unconsumed remainder of src, the
// parser's status (None on success, EmptyLine if src held only
// whitespace), and any error.
//
// Only diag.EmptyLine ever crosses this boundary as a status; every other
// internal continuation condition (an unexpected ')' outside any list, a
// dangling quote, a malformed dotted pair) is resolved into a diag.Syntax
// error before Parse returns. Continuation signals are control flow, not
// failures, and must never reach the host as errors.
func Parse(src string, reg *atom.Registry, syms *symbol.Table) (result atom.Atom, rest string, status diag.ParseStatus, err *diag.Error) {
	p := &parser{src: src, reg: reg, syms: syms}
	a, st, e := p.term()
	if e != nil {
		return atom.Nil, src[p.pos:], diag.None, e
	}
	if st == diag.ParenEnd {
		return atom.Nil, src[p.pos:], diag.None, diag.New(diag.Syntax, "unexpected ')'")
	}
	return a, src[p.pos:], st, nil
}

type parser struct {
	src  string
	pos  int
	reg  *atom.Registry
	syms *symbol.Table
}

// term consumes the next token and returns either a parsed atom (status
// None), or a sentinel (EmptyLine: nothing left; ParenEnd: a ')' was
// consumed, terminating a list), or an error.
func (p *parser) term() (atom.Atom, diag.ParseStatus, *diag.Error) {
	tok, ok := lexer.Next(p.src, p.pos)
	if !ok {
		p.pos = len(p.src)
		return atom.Nil, diag.EmptyLine, nil
	}
	if tok.Text(p.src) == ")" {
		p.pos = tok.End
		return atom.Nil, diag.ParenEnd, nil
	}
	p.pos = tok.End
	a, err := p.dispatch(tok)
	if err != nil {
		return atom.Nil, diag.None, err
	}
	return a, diag.None, nil
}

// dispatch assembles one atom from tok, consuming further input from
// p.src/p.pos as needed (list bodies, string bodies, quoted sub-forms).
func (p *parser) dispatch(tok lexer.Token) (atom.Atom, *diag.Error) {
	text := tok.Text(p.src)
	switch text[0] {
	case '"':
		return p.stringLiteral()
	case '(':
		return p.list()
	case '\'':
		return p.quote()
	case '#':
		return p.hashLiteral(text)
	}

	if looksNumeric(text) {
		if a, ok, err := p.number(text); ok {
			return a, err
		}
		// Falls through: not actually parseable as a number (e.g. a digit
		// followed by non-numeric characters, like 1+); treat as a symbol.
	}
	return p.symbolAtom(text), nil
}

// stringLiteral scans raw source text (not through the lexer) from just
// past the opening quote until the next unescaped '"', copying characters
// verbatim - there is no escape processing.
func (p *parser) stringLiteral() (atom.Atom, *diag.Error) {
	start := p.pos
	idx := strings.IndexByte(p.src[start:], '"')
	if idx < 0 {
		p.pos = len(p.src)
		return atom.Nil, diag.New(diag.Syntax, "unterminated string literal")
	}
	content := p.src[start : start+idx]
	p.pos = start + idx + 1
	return atom.NewString(p.reg, content), nil
}

// list parses list elements until ')', handling a '.' dotted-pair tail.
func (p *parser) list() (atom.Atom, *diag.Error) {
	var elems []atom.Atom
	tail := atom.Nil

	for {
		tok, ok := lexer.Next(p.src, p.pos)
		if !ok {
			return atom.Nil, diag.New(diag.Syntax, "unterminated list: expected ')'")
		}
		text := tok.Text(p.src)

		if text == ")" {
			p.pos = tok.End
			break
		}

		if text == "." {
			if len(elems) == 0 {
				return atom.Nil, diag.New(diag.Syntax, "'.' cannot be the first element of a list")
			}
			p.pos = tok.End
			tailAtom, status, err := p.term()
			if err != nil {
				return atom.Nil, err
			}
			if status != diag.None {
				return atom.Nil, diag.New(diag.Syntax, "'.' must be followed by exactly one expression")
			}
			closeTok, ok := lexer.Next(p.src, p.pos)
			if !ok || closeTok.Text(p.src) != ")" {
				return atom.Nil, diag.New(diag.Syntax, "dotted pair must be followed immediately by ')'")
			}
			p.pos = closeTok.End
			tail = tailAtom
			break
		}

		p.pos = tok.End
		elem, err := p.dispatch(tok)
		if err != nil {
			return atom.Nil, err
		}
		elems = append(elems, elem)
	}

	result := tail
	for i := len(elems) - 1; i >= 0; i-- {
		result = atom.NewPair(p.reg, elems[i], result)
	}
	return result, nil
}

// quote implements the ' shorthand: parse the next atom X and return
// (QUOTE X). Quoting a list directly is rejected; callers must spell out
// (QUOTE (...)) instead.
func (p *parser) quote() (atom.Atom, *diag.Error) {
	if peek, ok := lexer.Next(p.src, p.pos); ok && peek.Text(p.src) == "(" {
		return atom.Nil, diag.New(diag.Syntax, "quoting a list with ' is not supported; use (QUOTE ...)")
	}

	x, status, err := p.term()
	if err != nil {
		return atom.Nil, err
	}
	if status != diag.None {
		return atom.Nil, diag.New(diag.Syntax, "' must be followed by an expression")
	}

	quoteSym := p.syms.Intern("QUOTE")
	inner := atom.NewPair(p.reg, x, atom.Nil)
	return atom.NewPair(p.reg, quoteSym, inner), nil
}

// hashLiteral parses a full "#..." token.
func (p *parser) hashLiteral(text string) (atom.Atom, *diag.Error) {
	switch text {
	case "#t", "#T":
		return atom.NewBoolean(true), nil
	case "#f", "#F":
		return atom.NewBoolean(false), nil
	default:
		return atom.Nil, diag.New(diag.Syntax, "invalid hash literal: %s", text)
	}
}

// looksNumeric reports whether text has a leading digit, or a leading sign
// followed immediately by a digit.
func looksNumeric(text string) bool {
	if text == "" {
		return false
	}
	if isDigitByte(text[0]) {
		return true
	}
	if (text[0] == '+' || text[0] == '-') && len(text) > 1 {
		return isDigitByte(text[1])
	}
	return false
}

func isDigitByte(b byte) bool { return b >= '0' && b <= '9' }

// number tries an integer parse, then a float parse. ok is false when
// neither succeeds, signaling the caller to fall back to a symbol. A
// literal that is syntactically valid but numerically out of range - an
// integer outside int64, or a float outside float64 - is a terminal
// NUM_OVERFLOW/NUM_UNDERFLOW error rather than a silent promotion or a
// fall-through to symbol; there is no numeric tower beyond int64 and
// float64.
func (p *parser) number(text string) (atom.Atom, bool, *diag.Error) {
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return atom.NewInteger(i), true, nil
	} else if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
		if strings.HasPrefix(text, "-") {
			return atom.Nil, true, diag.New(diag.NumUnderflow, "integer literal %q underflows a signed 64-bit integer", text)
		}
		return atom.Nil, true, diag.New(diag.NumOverflow, "integer literal %q overflows a signed 64-bit integer", text)
	}

	if f, err := strconv.ParseFloat(text, 64); err == nil {
		return atom.NewFloat(f), true, nil
	} else if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
		if strings.HasPrefix(text, "-") {
			return atom.Nil, true, diag.New(diag.NumUnderflow, "float literal %q underflows a 64-bit float", text)
		}
		return atom.Nil, true, diag.New(diag.NumOverflow, "float literal %q overflows a 64-bit float", text)
	}

	return atom.Nil, false, nil
}

// symbolAtom case-folds text to upper case and either returns the Nil atom
// (for "NIL") or interns the result.
func (p *parser) symbolAtom(text string) atom.Atom {
	folded := upperFolder.String(text)
	if folded == "NIL" {
		return atom.Nil
	}
	return p.syms.Intern(folded)
}
