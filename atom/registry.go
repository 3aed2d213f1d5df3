package atom

import (
	"log/slog"

	"github.com/aledsdavies/golisp/diag"
	"github.com/aledsdavies/golisp/internal/invariant"
)

// Registry is the allocation registry: the universe of
// pair/closure/macro cells and symbol/string text cells the collector
// walks. One Registry belongs to exactly one interpreter instance and is
// not safe for concurrent use.
type Registry struct {
	head Tracked

	cellCount int
	textCount int

	stringTable map[[32]byte]*Text

	logger *slog.Logger
}

// NewRegistry creates an empty registry. A nil logger defaults to
// slog.Default(). GC cycles and allocation failures are logged as pure
// observation, never control flow.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		stringTable: make(map[[32]byte]*Text),
		logger:      logger,
	}
}

// link prepends n to the intrusive allocation list.
func (r *Registry) link(n Tracked) {
	n.setNext(r.head)
	r.head = n
}

// NewCell allocates a fresh pair cell holding (head . tail) and registers
// it for collection.
func (r *Registry) NewCell(head, tail Atom) *Cell {
	c := &Cell{Head: head, Tail: tail}
	r.link(c)
	r.cellCount++
	return c
}

// NewText allocates a fresh, always-unique text cell. Used by the symbol
// interner, where identity (not content dedup) is the point: two calls
// with the same name must still be told apart by the caller's own
// intern-or-reuse check.
func (r *Registry) NewText(value string) *Text {
	t := &Text{Value: value, hash: contentHash(value)}
	r.link(t)
	r.textCount++
	return t
}

// InternString returns the registry's canonical text cell for value,
// content-addressing it via BLAKE2b-256 (see Text's doc comment). Repeated
// string literals with identical content share one allocation; this is a
// storage optimization only - Eq still compares String atoms by Value.
func (r *Registry) InternString(value string) *Text {
	h := contentHash(value)
	if t, ok := r.stringTable[h]; ok && t.Value == value {
		return t
	}
	t := &Text{Value: value, hash: h}
	r.link(t)
	r.textCount++
	r.stringTable[h] = t
	return t
}

// Counts returns the number of live cell and text allocations currently
// tracked by the registry (diagnostic use only).
func (r *Registry) Counts() (cells, texts int) {
	return r.cellCount, r.textCount
}

// Sweep walks the registry, dropping every Tracked node whose mark bit is
// clear, then clears the mark on every survivor. Passing
// unconditional=true ignores marks entirely and drops everything - used by
// Destroy's teardown sweep.
func (r *Registry) Sweep(unconditional bool) (freedCells, freedTexts int) {
	var kept Tracked
	var tail Tracked

	appendKept := func(n Tracked) {
		n.SetMark(false)
		n.setNext(nil)
		if kept == nil {
			kept = n
			tail = n
			return
		}
		tail.setNext(n)
		tail = n
	}

	for n := r.head; n != nil; {
		next := n.next()
		if unconditional || !n.Marked() {
			switch n.(type) {
			case *Cell:
				freedCells++
			case *Text:
				freedTexts++
			}
			if t, ok := n.(*Text); ok {
				delete(r.stringTable, t.hash)
			}
		} else {
			appendKept(n)
		}
		n = next
	}

	r.head = kept
	r.cellCount -= freedCells
	r.textCount -= freedTexts
	invariant.Invariant(r.cellCount >= 0 && r.textCount >= 0,
		"registry counts must not go negative after sweep")

	r.logger.Debug("gc sweep complete",
		"freed_cells", freedCells, "freed_texts", freedTexts,
		"live_cells", r.cellCount, "live_texts", r.textCount,
		"unconditional", unconditional)

	return freedCells, freedTexts
}

// AllocationFailure reports a fatal allocation error, the only
// non-recoverable diagnostic kind the interpreter produces. Package atom
// itself cannot allocate in a way that fails (Go's runtime allocator is the
// backing store), so this exists for callers with some external allocation
// limit of their own; it logs and returns the error rather than calling
// os.Exit, leaving the termination decision to the embedder.
func (r *Registry) AllocationFailure(reason string) *diag.Error {
	err := diag.New(diag.Allocation, "%s", reason)
	r.logger.Error("fatal allocation failure", "reason", reason)
	return err
}
