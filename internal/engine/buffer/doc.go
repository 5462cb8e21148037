// Package buffer provides the line-indexed text buffer at the core of the
// editor engine.
//
// Unlike a byte-oriented rope, the buffer stores one opaque payload per
// logical line and exposes a 1-indexed slot API. Capacity grows and shrinks
// in fixed blocks so that repeated Change/Delete commands amortize to O(1)
// per affected line.
//
// Basic usage:
//
//	buf := buffer.New()
//	buf.SetLength(3)
//	buf.Set(1, buffer.Line("alpha\n"))
//	buf.Set(2, buffer.Line("beta\n"))
//	buf.Set(3, buffer.Line("gamma\n"))
//	buf.Get(2) // "beta\n"
//
// Slots beyond Len() are never read by callers. SetLength never initializes
// newly live slots: within the current capacity they hold whatever they held
// before, while slots in a block that was reclaimed by a shrink and is
// allocated again by growth hold nil.
package buffer
