package history

// DefaultBlockSize is the number of states allocated or reclaimed at a
// time, mirroring the predecessor program's EDIT_BLOCK_SIZE. The Go slice
// backing the timeline grows automatically, so this is kept only as
// documented intent and exposed for parity with Buffer's block policy; it
// does not otherwise affect observable behavior.
const DefaultBlockSize = 8

// timelineState pairs the undo and redo records attached to one point in
// history. Either may be nil until the owning command fills it in.
type timelineState struct {
	undo *EditRecord
	redo *EditRecord
}

// Timeline is the ordered sequence of states produced by mutating
// commands. State 0 is the empty-buffer origin and never owns an undo
// record.
type Timeline struct {
	states  []timelineState
	current int
}

// New creates a Timeline containing only the origin state.
func New() *Timeline {
	return &Timeline{states: []timelineState{{}}}
}

// Count returns the number of states, always >= 1.
func (t *Timeline) Count() int {
	return len(t.states)
}

// Current returns the current state index.
func (t *Timeline) Current() int {
	return t.current
}

// SetCurrent moves the current-state pointer without touching the buffer.
// Callers are responsible for keeping buffer contents in sync.
func (t *Timeline) SetCurrent(i int) {
	t.current = i
}

// Advance moves the current-state pointer forward by one, as a redo step
// does.
func (t *Timeline) Advance() {
	t.current++
}

// Retreat moves the current-state pointer back by one, as an undo step
// does.
func (t *Timeline) Retreat() {
	t.current--
}

// CreateSuccessor prepares a new state to receive the next mutation's
// records and returns its index.
//
// If current is already the tip, the new state is simply appended. If the
// caller has undone first, every state above current is discarded (branch
// truncation) before the new state is appended — current itself never
// moves here; the caller advances it once the mutation's records are in
// place.
func (t *Timeline) CreateSuccessor() int {
	if t.current != len(t.states)-1 {
		t.states = t.states[:t.current+1]
	}
	t.states = append(t.states, timelineState{})
	return len(t.states) - 1
}

// SetUndo attaches the undo record for state i.
func (t *Timeline) SetUndo(i int, r *EditRecord) {
	t.states[i].undo = r
}

// SetRedo attaches the redo record for state i.
func (t *Timeline) SetRedo(i int, r *EditRecord) {
	t.states[i].redo = r
}

// UndoRecord returns the record that brings the buffer from state i to
// state i-1.
func (t *Timeline) UndoRecord(i int) *EditRecord {
	return t.states[i].undo
}

// RedoRecord returns the record that brings the buffer from state i to
// state i+1.
func (t *Timeline) RedoRecord(i int) *EditRecord {
	return t.states[i].redo
}
