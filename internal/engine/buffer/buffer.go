package buffer

// Line is an opaque single-line payload, including its trailing newline.
// Lines are value-semantic for the buffer: copying a Line value (a slice
// header) never duplicates the underlying bytes, so the same payload can be
// referenced from a buffer slot and an undo/redo record at once.
type Line = []byte

// Buffer is an ordered, 1-indexed sequence of line payloads. Slots
// 1..Len() hold valid payloads; slots beyond Len() are not meaningful.
//
// Buffer is not safe for concurrent use. The engine it belongs to is
// strictly single-threaded by design.
type Buffer struct {
	slots     []Line
	length    int
	blockSize int
}

// New creates an empty buffer.
func New(opts ...Option) *Buffer {
	b := &Buffer{blockSize: DefaultBlockSize}
	for _, opt := range opts {
		opt(b)
	}
	b.adjustCapacity(0)
	return b
}

// Len returns the number of live lines.
func (b *Buffer) Len() int {
	return b.length
}

// Get returns the payload at the given 1-indexed slot.
func (b *Buffer) Get(i int) Line {
	if i < 1 || i > b.length {
		panic(ErrIndexOutOfRange)
	}
	return b.slots[i-1]
}

// Set overwrites the payload at the given 1-indexed slot.
func (b *Buffer) Set(i int, l Line) {
	if i < 1 || i > b.length {
		panic(ErrIndexOutOfRange)
	}
	b.slots[i-1] = l
}

// AppendLine grows the buffer by one slot and installs l there, returning
// the new slot's 1-indexed location.
func (b *Buffer) AppendLine(l Line) int {
	b.SetLength(b.length + 1)
	b.Set(b.length, l)
	return b.length
}

// SetLength grows or shrinks the live length to n. Growth does not
// initialize the newly live slots; it is the caller's responsibility to
// fill them (via Set) before they are observed, exactly as the rest of the
// engine does when replaying Change records.
func (b *Buffer) SetLength(n int) {
	if n < 0 {
		panic(ErrNegativeLength)
	}
	b.length = n
	b.adjustCapacity(n)
}

// adjustCapacity grows or shrinks the backing slice in blocks of
// b.blockSize so that reallocation is amortized O(1) per slot.
func (b *Buffer) adjustCapacity(required int) {
	capacity := len(b.slots)
	if required < capacity {
		for capacity-b.blockSize >= required {
			capacity -= b.blockSize
		}
	} else {
		for required > capacity {
			capacity += b.blockSize
		}
	}
	if capacity == len(b.slots) {
		return
	}
	grown := make([]Line, capacity)
	copy(grown, b.slots)
	b.slots = grown
}

// ShiftLeft copies slot i+offset into slot i for every i in [from, length)
// where i+offset is still within the current length. It implements the
// forward application of a Delete: the surviving tail is pulled left to
// close the gap left by the removed span, using the buffer's length as it
// stood before the caller shrinks it with SetLength.
func (b *Buffer) ShiftLeft(from, offset int) {
	for i := from; i+offset <= b.length; i++ {
		b.slots[i-1] = b.slots[i+offset-1]
	}
}

// ShiftRight copies slot i-offset into slot i for every i in
// [from, length], descending so that a source slot is always read before a
// later iteration could overwrite it. It implements the half of an undone
// Delete that re-opens room for the removed span; the caller has already
// grown the buffer to its pre-delete length with SetLength.
func (b *Buffer) ShiftRight(from, offset int) {
	for i := b.length; i >= from; i-- {
		if i-offset < 1 {
			continue
		}
		b.slots[i-1] = b.slots[i-offset-1]
	}
}
