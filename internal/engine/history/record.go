package history

import "github.com/kvlevich/ched/internal/engine/buffer"

// Line is an alias for buffer.Line for convenience.
type Line = buffer.Line

// EditKind discriminates the shape of an EditRecord's payload.
type EditKind uint8

const (
	// Skip is a no-op record, emitted for commands (an out-of-range Delete)
	// that must still advance the timeline without touching the buffer.
	Skip EditKind = iota
	// Change records an overwrite/append of a line span.
	Change
	// Delete records the removal of a line span.
	Delete
)

// String returns a short, lowercase name for the kind.
func (k EditKind) String() string {
	switch k {
	case Change:
		return "change"
	case Delete:
		return "delete"
	default:
		return "skip"
	}
}

// EditRecord is the payload of a single reversible mutation. A mutating
// command produces two of these — one that undoes it, one that redoes it.
// The redo record is stored on the state the command started from and the
// undo record on the state the command creates.
//
// PreLength and PostLength are always the buffer length before and after
// the command ran; undo application only consults PreLength and redo
// application only consults PostLength, but both are kept on every record
// so undo and redo records carry identical, self-describing metadata.
type EditRecord struct {
	Kind       EditKind
	Location   int // 1-based line index where the edit begins
	PreLength  int
	PostLength int
	Span       int    // lines overwritten/appended (Change) or removed (Delete)
	Lines      []Line // Change undo: overwritten lines that existed; Change redo: new lines; Delete undo: removed lines; Delete redo, Skip: none
}

// NewRecord creates an EditRecord with the given shape and an empty Lines
// slice preallocated to the expected span.
func NewRecord(kind EditKind, location, preLength, postLength, span int) *EditRecord {
	r := &EditRecord{
		Kind:       kind,
		Location:   location,
		PreLength:  preLength,
		PostLength: postLength,
		Span:       span,
	}
	if span > 0 {
		r.Lines = make([]Line, 0, span)
	}
	return r
}

// AppendLine records one more line payload onto the record.
func (r *EditRecord) AppendLine(l Line) {
	r.Lines = append(r.Lines, l)
}
