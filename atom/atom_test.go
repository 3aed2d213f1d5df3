package atom_test

import (
	"testing"

	"github.com/aledsdavies/golisp/atom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruthyOnlyFalseIsFalse(t *testing.T) {
	assert.True(t, atom.Truthy(atom.Nil))
	assert.True(t, atom.Truthy(atom.NewInteger(0)))
	reg := atom.NewRegistry(nil)
	assert.True(t, atom.Truthy(atom.NewString(reg, "")))
	assert.True(t, atom.Truthy(atom.NewBoolean(true)))
	assert.False(t, atom.Truthy(atom.NewBoolean(false)))
}

func TestEqByTag(t *testing.T) {
	reg := atom.NewRegistry(nil)
	assert.False(t, atom.Eq(atom.NewInteger(1), atom.NewFloat(1)))
	assert.True(t, atom.Eq(atom.Nil, atom.Nil))
	assert.True(t, atom.Eq(atom.NewInteger(5), atom.NewInteger(5)))
	assert.True(t, atom.Eq(atom.NewString(reg, "hi"), atom.NewString(reg, "hi")))
	assert.False(t, atom.Eq(atom.NewString(reg, "hi"), atom.NewString(reg, "bye")))
}

func TestEqPairIsPointerIdentity(t *testing.T) {
	reg := atom.NewRegistry(nil)
	a := atom.NewPair(reg, atom.NewInteger(1), atom.Nil)
	b := atom.NewPair(reg, atom.NewInteger(1), atom.Nil)
	assert.False(t, atom.Eq(a, b), "distinct cons cells must not be EQ? even with equal contents")
	assert.True(t, atom.Eq(a, a))
}

func TestStringContentAddressing(t *testing.T) {
	reg := atom.NewRegistry(nil)
	a := atom.NewString(reg, "shared")
	b := atom.NewString(reg, "shared")
	assert.Same(t, a.Str, b.Str, "identical string literals should share one registry text cell")

	_, texts := reg.Counts()
	require.Equal(t, 1, texts)
}

func TestClosureRetagToMacroSharesCell(t *testing.T) {
	reg := atom.NewRegistry(nil)
	formals := atom.Nil
	body := atom.Nil
	env := atom.Nil
	closure := atom.NewClosure(reg, env, formals, body)
	macro := atom.AsMacro(closure)

	assert.Equal(t, atom.TagMacro, macro.Tag)
	assert.Same(t, closure.Cell, macro.Cell)
	assert.True(t, atom.Eq(atom.Atom{Tag: atom.TagMacro, Cell: closure.Cell}, macro))
}

func TestRenderList(t *testing.T) {
	reg := atom.NewRegistry(nil)
	list := atom.NewPair(reg, atom.NewInteger(1),
		atom.NewPair(reg, atom.NewInteger(2),
			atom.NewPair(reg, atom.NewInteger(3), atom.Nil)))
	assert.Equal(t, "(1 2 3)", atom.Render(list))
}

func TestRenderDottedPair(t *testing.T) {
	reg := atom.NewRegistry(nil)
	pair := atom.NewPair(reg, atom.NewInteger(1), atom.NewInteger(2))
	assert.Equal(t, "(1 . 2)", atom.Render(pair))
}

func TestRenderBooleanAndString(t *testing.T) {
	reg := atom.NewRegistry(nil)
	assert.Equal(t, "#t", atom.Render(atom.NewBoolean(true)))
	assert.Equal(t, "#f", atom.Render(atom.NewBoolean(false)))
	assert.Equal(t, `"hi"`, atom.Render(atom.NewString(reg, "hi")))
}

func TestRenderUnquotedForConcat(t *testing.T) {
	reg := atom.NewRegistry(nil)
	assert.Equal(t, "hi", atom.RenderUnquoted(atom.NewString(reg, "hi")))
	assert.Equal(t, "TRUE", atom.RenderUnquoted(atom.NewBoolean(true)))
	assert.Equal(t, "", atom.RenderUnquoted(atom.Nil))
}

func TestCellProper(t *testing.T) {
	reg := atom.NewRegistry(nil)
	proper := atom.NewPair(reg, atom.NewInteger(1), atom.Nil)
	dotted := atom.NewPair(reg, atom.NewInteger(1), atom.NewInteger(2))
	assert.True(t, proper.Cell.Proper())
	assert.False(t, dotted.Cell.Proper())
}
