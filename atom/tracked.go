package atom

// Tracked is implemented by every heap-allocated, registry-owned value:
// Cell (pairs, closures, macros) and Text (interned symbol/string content).
// The Registry links Tracked values into an intrusive singly-linked list;
// a node's concrete type is its kind, and the mark bit and payload live
// directly on the node instead of a separate wrapper entry.
type Tracked interface {
	Marked() bool
	SetMark(bool)
	next() Tracked
	setNext(Tracked)
}
