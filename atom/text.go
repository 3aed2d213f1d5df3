package atom

import "golang.org/x/crypto/blake2b"

// Text is a registry-owned text cell backing both interned symbol names
// and string literals, so the collector's descent logic is uniform across
// the two.
//
// Symbol text cells are allocated one per unique name by package symbol and
// are never content-deduplicated against each other beyond that uniqueness
// (identity is the point of interning). String text cells additionally
// carry a content hash so that package atom itself can deduplicate
// identical string literals at allocation time - a storage optimization
// using golang.org/x/crypto/blake2b, not a change to the language's
// equality semantics (Eq still compares String atoms by Value, never by
// pointer).
type Text struct {
	Value string
	hash  [32]byte

	mark bool
	link Tracked
}

// Marked reports whether the collector has marked this text cell live in
// the current cycle.
func (t *Text) Marked() bool { return t.mark }

// SetMark sets or clears the text cell's mark bit.
func (t *Text) SetMark(m bool) { t.mark = m }

func (t *Text) next() Tracked     { return t.link }
func (t *Text) setNext(n Tracked) { t.link = n }

func contentHash(value string) [32]byte {
	return blake2b.Sum256([]byte(value))
}
