// Package diag implements the interpreter's error taxonomy and last-error
// reporting channel.
//
// Every operation that can fail returns a *diag.Error carrying a Kind and a
// bounded detail string. Parser continuation sentinels (EMPTY_LINE,
// QUOTE_END, PAREN_END, PAREN_QUOTE_END) are NOT errors - they are control
// signals the parser uses internally to terminate recursive list parsing,
// and are modeled as the separate ParseStatus type so they can never leak to
// an embedder as a failure.
package diag

import (
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Kind discriminates the interpreter's error taxonomy.
type Kind int

const (
	// Unknown is the fallback kind; it should never occur in practice.
	Unknown Kind = iota
	// Syntax covers malformed input: unterminated strings, bad dotted
	// pairs, bad hash literals, illegal closure formals, and 'quote-of-list.
	Syntax
	// Empty is reserved; the parser uses the EMPTY_LINE ParseStatus
	// sentinel instead of ever returning this kind.
	Empty
	// Unbound means a symbol lookup failed in every reachable environment.
	Unbound
	// Arguments means wrong arity, or leftover arguments, to a
	// closure/macro/built-in application.
	Arguments
	// WrongType means an atom of unexpected tag was supplied to an
	// operation that requires a specific tag.
	WrongType
	// NumOverflow means an integer or float literal exceeded the
	// representable range on the high end.
	NumOverflow
	// NumUnderflow means an integer or float literal exceeded the
	// representable range on the low end.
	NumUnderflow
	// Allocation means a fundamental allocation failed. This is the only
	// non-recoverable kind: callers that observe it should treat it as
	// fatal.
	Allocation
)

// String renders the kind name as reported to the host.
func (k Kind) String() string {
	switch k {
	case Syntax:
		return "SYNTAX"
	case Empty:
		return "EMPTY"
	case Unbound:
		return "UNBOUND"
	case Arguments:
		return "ARGUMENTS"
	case WrongType:
		return "WRONG_TYPE"
	case NumOverflow:
		return "NUM_OVERFLOW"
	case NumUnderflow:
		return "NUM_UNDERFLOW"
	case Allocation:
		return "ALLOCATION"
	default:
		return "UNKNOWN"
	}
}

// maxDetailRunes bounds the last-error message buffer to about 200 code
// points.
const maxDetailRunes = 200

// Error is the interpreter's discriminated error type. It implements the
// standard error interface so it composes with normal Go error handling,
// while still exposing Kind/Detail for callers that want to type-switch on
// the failure kind directly.
type Error struct {
	Kind   Kind
	Detail string
}

// New builds an Error, truncating the detail to the last-error buffer bound.
func New(kind Kind, format string, args ...any) *Error {
	detail := fmt.Sprintf(format, args...)
	if runes := []rune(detail); len(runes) > maxDetailRunes {
		detail = string(runes[:maxDetailRunes])
	}
	return &Error{Kind: kind, Detail: detail}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// ParseStatus represents the parser's non-error continuation signals -
// control signals that must never surface to the host as failures.
type ParseStatus int

const (
	// None means parsing produced a real atom; not a sentinel.
	None ParseStatus = iota
	// EmptyLine means the remaining input was only whitespace.
	EmptyLine
	// QuoteEnd means a quote shorthand ran off the end of input.
	QuoteEnd
	// ParenEnd means a ')' was consumed, terminating list parsing.
	ParenEnd
	// ParenQuoteEnd means a ')' was consumed while parsing a quoted form.
	ParenQuoteEnd
)

func (s ParseStatus) String() string {
	switch s {
	case EmptyLine:
		return "EMPTY_LINE"
	case QuoteEnd:
		return "QUOTE_END"
	case ParenEnd:
		return "PAREN_END"
	case ParenQuoteEnd:
		return "PAREN_QUOTE_END"
	default:
		return "NONE"
	}
}

// Last is a bounded last-error buffer, one per interpreter instance,
// mutated only by the single executing evaluator.
type Last struct {
	err *Error
}

// Set records err as the most recent error. A nil err clears the buffer.
func (l *Last) Set(err *Error) {
	l.err = err
}

// Error returns the most recently recorded error, or nil if none.
func (l *Last) Error() *Error {
	return l.err
}

// TypeString returns the kind name of the last recorded error, or
// "UNKNOWN" if none has been recorded.
func (l *Last) TypeString() string {
	if l.err == nil {
		return Unknown.String()
	}
	return l.err.Kind.String()
}

// Detail returns the detail text of the last recorded error, or "" if
// none has been recorded.
func (l *Last) Detail() string {
	if l.err == nil {
		return ""
	}
	return l.err.Detail
}

// Print renders the last error as the host-facing diagnostic line.
// Returns "" when there is nothing to print.
func (l *Last) Print() string {
	if l.err == nil {
		return ""
	}
	return l.err.Error()
}

// NewUnbound builds an UNBOUND error for symbol name, enriching the
// detail with a fuzzy-matched "did you mean" suggestion drawn from
// candidates (as passed by callers: the interned symbol names, plus the
// builtin names). The suggestion only decorates the detail
// string; the Kind and the failure itself are unchanged.
func NewUnbound(name string, candidates []string) *Error {
	detail := fmt.Sprintf("unbound symbol: %s", name)
	if best := closest(name, candidates); best != "" {
		detail = fmt.Sprintf("%s (did you mean %s?)", detail, best)
	}
	return New(Unbound, "%s", detail)
}

// closest returns the candidate with the smallest Levenshtein distance to
// name that is still a plausible typo (distance no greater than a third of
// name's length, rounded down, plus one), or "" if nothing is close enough
// to suggest.
func closest(name string, candidates []string) string {
	best := ""
	bestDist := -1
	threshold := len(name)/3 + 1
	for _, c := range candidates {
		if strings.EqualFold(c, name) {
			continue
		}
		d := fuzzy.LevenshteinDistance(name, c)
		if d > threshold {
			continue
		}
		if bestDist == -1 || d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
