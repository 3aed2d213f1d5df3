// Package lexer turns a position in the source text into the next token
// span or a terminal status. The lexer is pure - it
// never allocates and never mutates state; Next takes the source and a
// byte offset and returns a fresh Token plus whether one was found.
//
// Tokenization is deliberately shallow: it does not classify tokens beyond
// recognizing the single-character delimiters (, ), ', and ". Dispatch on
// the token's leading character - including the parser's own raw scan of
// quoted string bodies - is package parser's job; lexing and
// parsing are kept as separate packages so the tokenizer stays reusable
// independent of grammar decisions.
package lexer

import "unicode/utf8"

// ASCII classification tables, precomputed once at init time rather than
// computed per rune, even though this grammar has only four delimiter
// runes and one whitespace class.
var (
	isSpace     [128]bool
	isDelimiter [128]bool
)

func init() {
	for i := 0; i < 128; i++ {
		ch := byte(i)
		isSpace[i] = ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
	}
	isDelimiter['('] = true
	isDelimiter[')'] = true
	isDelimiter['\''] = true
	isDelimiter['"'] = true
}

func spaceAt(src string, i int) bool {
	b := src[i]
	return b < 128 && isSpace[b]
}

func delimiterAt(src string, i int) bool {
	b := src[i]
	return b < 128 && isDelimiter[b]
}

// Token is a span of source text, identified by byte offsets.
type Token struct {
	Start int
	End   int
}

// Text returns the token's underlying source text.
func (t Token) Text(src string) string { return src[t.Start:t.End] }

// Next returns the next token at or after pos in src. ok is false when
// only whitespace remains from pos onward; package parser is responsible
// for turning that into diag.EmptyLine - the lexer itself has no opinion
// on error taxonomy.
func Next(src string, pos int) (tok Token, ok bool) {
	n := len(src)
	for pos < n && spaceAt(src, pos) {
		pos++
	}
	if pos >= n {
		return Token{}, false
	}

	if delimiterAt(src, pos) {
		_, size := utf8.DecodeRuneInString(src[pos:])
		return Token{Start: pos, End: pos + size}, true
	}

	start := pos
	for pos < n && !spaceAt(src, pos) && !delimiterAt(src, pos) {
		_, size := utf8.DecodeRuneInString(src[pos:])
		pos += size
	}
	return Token{Start: start, End: pos}, true
}
