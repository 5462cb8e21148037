package history

import "github.com/kvlevich/ched/internal/engine/buffer"

// ShortcutSnapshot caches a full copy of the buffer at the highest state
// reached before the current undo excursion began.
//
// Present and origin are kept as separate fields rather than folding
// "absent" into origin==0: state 0 (the empty-buffer origin) is a valid
// state to snapshot, and an int-only sentinel would make that case
// indistinguishable from "never captured".
type ShortcutSnapshot struct {
	present bool
	origin  int
	lines   []Line
	length  int
}

// Present reports whether a snapshot has been captured since the last
// Invalidate.
func (s *ShortcutSnapshot) Present() bool {
	return s.present
}

// Origin returns the state index the snapshot was captured at. Only
// meaningful when Present returns true.
func (s *ShortcutSnapshot) Origin() int {
	return s.origin
}

// Capture records a full copy of buf's live lines, tagged as belonging to
// the given state index.
func (s *ShortcutSnapshot) Capture(buf *buffer.Buffer, state int) {
	length := buf.Len()
	lines := make([]Line, length)
	for i := 1; i <= length; i++ {
		lines[i-1] = buf.Get(i)
	}
	s.present = true
	s.origin = state
	s.length = length
	s.lines = lines
}

// Restore overwrites buf's contents with the snapshot's. The caller must
// check Present first; Restore panics if no snapshot has been captured.
func (s *ShortcutSnapshot) Restore(buf *buffer.Buffer) {
	if !s.present {
		panic("history: restore of absent snapshot")
	}
	buf.SetLength(s.length)
	for i := 1; i <= s.length; i++ {
		buf.Set(i, s.lines[i-1])
	}
}

// Invalidate discards the cached snapshot, as any mutation performed while
// the navigation queue is empty must.
func (s *ShortcutSnapshot) Invalidate() {
	s.present = false
	s.lines = nil
}
