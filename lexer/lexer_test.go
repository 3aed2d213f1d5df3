package lexer_test

import (
	"testing"

	"github.com/aledsdavies/golisp/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextSkipsWhitespace(t *testing.T) {
	src := "   \t\n  foo"
	tok, ok := lexer.Next(src, 0)
	require.True(t, ok)
	assert.Equal(t, "foo", tok.Text(src))
}

func TestNextEmptyLineSentinel(t *testing.T) {
	_, ok := lexer.Next("   \t\n  ", 0)
	assert.False(t, ok)

	_, ok = lexer.Next("", 0)
	assert.False(t, ok)
}

func TestNextSingleCharDelimiters(t *testing.T) {
	for _, src := range []string{"(", ")", "'", "\""} {
		tok, ok := lexer.Next(src, 0)
		require.True(t, ok)
		assert.Equal(t, src, tok.Text(src))
	}
}

func TestNextRunsUntilDelimiterOrSpace(t *testing.T) {
	src := "fact-helper(x)"
	tok, ok := lexer.Next(src, 0)
	require.True(t, ok)
	assert.Equal(t, "fact-helper", tok.Text(src))
	assert.Equal(t, 11, tok.End)
}

func TestNextSequenceOfTokens(t *testing.T) {
	src := "(+ 1 2)"
	var texts []string
	pos := 0
	for {
		tok, ok := lexer.Next(src, pos)
		if !ok {
			break
		}
		texts = append(texts, tok.Text(src))
		pos = tok.End
	}
	assert.Equal(t, []string{"(", "+", "1", "2", ")"}, texts)
}

func TestNextStopsAtQuoteWithoutConsumingBody(t *testing.T) {
	src := `"hello world"`
	tok, ok := lexer.Next(src, 0)
	require.True(t, ok)
	assert.Equal(t, `"`, tok.Text(src))
}
