package atom_test

import (
	"testing"

	"github.com/aledsdavies/golisp/atom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocationFailureReportsFatalKind(t *testing.T) {
	reg := atom.NewRegistry(nil)
	err := reg.AllocationFailure("out of memory")
	require.NotNil(t, err)
	assert.Equal(t, "ALLOCATION", err.Kind.String())
	assert.Equal(t, "out of memory", err.Detail)
}

func TestSweepFreesUnmarkedAndKeepsMarked(t *testing.T) {
	reg := atom.NewRegistry(nil)
	live := atom.NewPair(reg, atom.NewInteger(1), atom.Nil)
	garbage := atom.NewPair(reg, atom.NewInteger(2), atom.Nil)

	cellsBefore, _ := reg.Counts()
	require.Equal(t, 2, cellsBefore)

	atom.Mark(live)
	freedCells, _ := reg.Sweep(false)
	assert.Equal(t, 1, freedCells)

	cellsAfter, _ := reg.Counts()
	assert.Equal(t, 1, cellsAfter)
	assert.False(t, live.Cell.Marked(), "surviving cells must have their mark cleared after sweep")
	_ = garbage
}

func TestSweepCycleSafe(t *testing.T) {
	reg := atom.NewRegistry(nil)
	a := atom.NewPair(reg, atom.Nil, atom.Nil)
	b := atom.NewPair(reg, atom.Nil, atom.Nil)
	a.Cell.Tail = b
	b.Cell.Tail = a // cycle

	atom.Mark(a)
	freedCells, _ := reg.Sweep(false)
	assert.Equal(t, 0, freedCells, "cyclic but reachable cells must survive")
}

func TestUnconditionalSweepFreesEverything(t *testing.T) {
	reg := atom.NewRegistry(nil)
	live := atom.NewPair(reg, atom.NewInteger(1), atom.Nil)
	atom.Mark(live)

	freedCells, _ := reg.Sweep(true)
	assert.Equal(t, 1, freedCells)
	cellsAfter, _ := reg.Counts()
	assert.Equal(t, 0, cellsAfter)
}
