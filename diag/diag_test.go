package diag_test

import (
	"strings"
	"testing"

	"github.com/aledsdavies/golisp/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	cases := map[diag.Kind]string{
		diag.Syntax:       "SYNTAX",
		diag.Empty:        "EMPTY",
		diag.Unbound:      "UNBOUND",
		diag.Arguments:    "ARGUMENTS",
		diag.WrongType:    "WRONG_TYPE",
		diag.NumOverflow:  "NUM_OVERFLOW",
		diag.NumUnderflow: "NUM_UNDERFLOW",
		diag.Allocation:   "ALLOCATION",
		diag.Unknown:      "UNKNOWN",
	}
	for kind, want := range cases {
		assert.Equal(t, want, kind.String())
	}
}

func TestNewTruncatesDetail(t *testing.T) {
	long := strings.Repeat("x", 500)
	err := diag.New(diag.Syntax, "%s", long)
	require.Len(t, []rune(err.Detail), 200)
}

func TestErrorStringIncludesKind(t *testing.T) {
	err := diag.New(diag.WrongType, "CAR requires a pair")
	assert.Contains(t, err.Error(), "WRONG_TYPE")
	assert.Contains(t, err.Error(), "CAR requires a pair")
}

func TestParseStatusString(t *testing.T) {
	assert.Equal(t, "EMPTY_LINE", diag.EmptyLine.String())
	assert.Equal(t, "QUOTE_END", diag.QuoteEnd.String())
	assert.Equal(t, "PAREN_END", diag.ParenEnd.String())
	assert.Equal(t, "PAREN_QUOTE_END", diag.ParenQuoteEnd.String())
	assert.Equal(t, "NONE", diag.None.String())
}

func TestLastBuffer(t *testing.T) {
	var last diag.Last
	assert.Equal(t, "UNKNOWN", last.TypeString())
	assert.Equal(t, "", last.Detail())
	assert.Equal(t, "", last.Print())

	last.Set(diag.New(diag.Unbound, "unbound symbol: FOO"))
	assert.Equal(t, "UNBOUND", last.TypeString())
	assert.Contains(t, last.Detail(), "FOO")
	assert.Contains(t, last.Print(), "UNBOUND")

	last.Set(nil)
	assert.Equal(t, "UNKNOWN", last.TypeString())
}

func TestUnboundSuggestsClosestMatch(t *testing.T) {
	err := diag.NewUnbound("FACT", []string{"FACT-HELPER", "FACTT", "SUM-TO", "+"})
	assert.Equal(t, diag.Unbound, err.Kind)
	assert.Contains(t, err.Detail, "FACTT")
	assert.Contains(t, err.Detail, "did you mean")
}

func TestUnboundNoSuggestionWhenNothingClose(t *testing.T) {
	err := diag.NewUnbound("ZZZZZZ", []string{"+", "-", "CAR", "CDR"})
	assert.NotContains(t, err.Detail, "did you mean")
}
