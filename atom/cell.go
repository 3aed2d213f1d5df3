package atom

// Cell is a two-slot pair cell, the sole composite container. Lists are
// right-nested cells terminated by Nil; a dotted pair has a Tail that is
// neither Nil nor another Pair. Environment frames, closures, and macros
// are all built from Cells too, so the collector's mark logic is uniform
// across all of them.
type Cell struct {
	Head Atom
	Tail Atom

	mark bool
	link Tracked
}

// Marked reports whether the collector has marked this cell live in the
// current cycle.
func (c *Cell) Marked() bool { return c.mark }

// SetMark sets or clears the cell's mark bit.
func (c *Cell) SetMark(m bool) { c.mark = m }

func (c *Cell) next() Tracked     { return c.link }
func (c *Cell) setNext(n Tracked) { c.link = n }

// Proper reports whether the cell's right spine (starting from this cell)
// terminates in Nil, i.e. forms a proper list.
func (c *Cell) Proper() bool {
	for {
		if c.Tail.Tag == TagNil {
			return true
		}
		if c.Tail.Tag != TagPair {
			return false
		}
		c = c.Tail.Cell
	}
}
