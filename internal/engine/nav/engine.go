package nav

import (
	"github.com/kvlevich/ched/internal/engine/buffer"
	"github.com/kvlevich/ched/internal/engine/history"
)

// Engine accumulates pending undo/redo counts against a buffer and
// timeline, and applies them lazily.
type Engine struct {
	buf     *buffer.Buffer
	tl      *history.Timeline
	snap    *history.ShortcutSnapshot
	pending int
}

// New creates a navigation engine over the given buffer and timeline,
// sharing a fresh shortcut snapshot.
func New(buf *buffer.Buffer, tl *history.Timeline) *Engine {
	return &Engine{buf: buf, tl: tl, snap: &history.ShortcutSnapshot{}}
}

// Pending returns the current signed, not-yet-applied step count.
func (e *Engine) Pending() int {
	return e.pending
}

// QueueUndo enqueues k additional undo steps, clamping so the eventual
// target never falls below state 0.
func (e *Engine) QueueUndo(k int) {
	e.pending -= k
	if floor := -e.tl.Current(); e.pending < floor {
		e.pending = floor
	}
}

// QueueRedo enqueues k additional redo steps, clamping so the eventual
// target never exceeds the tip state.
func (e *Engine) QueueRedo(k int) {
	e.pending += k
	if ceil := e.tl.Count() - 1 - e.tl.Current(); e.pending > ceil {
		e.pending = ceil
	}
}

// Flush materializes any pending navigation against the buffer, choosing
// between plain replay and a shortcut jump, then clears pending to zero.
func (e *Engine) Flush() {
	if e.pending == 0 {
		return
	}
	target := e.tl.Current() + e.pending

	if e.pending < 0 {
		e.captureShortcut()

		if target < -e.pending {
			e.buf.SetLength(0)
			e.tl.SetCurrent(0)
			e.pending = target
		}
	} else if e.snap.Present() && e.snap.Origin() > 0 {
		origin := e.snap.Origin()
		dist := target - origin
		if dist < 0 {
			dist = -dist
		}
		if dist < e.pending {
			e.snap.Restore(e.buf)
			e.tl.SetCurrent(origin)
			e.pending = target - origin
		}
	}

	for e.pending > 0 {
		e.applyRedoStep()
		e.pending--
	}
	for e.pending < 0 {
		e.applyUndoStep()
		e.pending++
	}
}

// captureShortcut snapshots the buffer the first time an undo excursion
// departs from the tip state, per the flush algorithm's shortcut-capture
// rule. It is a no-op once a snapshot is already live or the current state
// is not the tip.
func (e *Engine) captureShortcut() {
	if e.snap.Present() {
		return
	}
	if e.tl.Current() != e.tl.Count()-1 {
		return
	}
	e.snap.Capture(e.buf, e.tl.Current())
}

// Invalidate discards the shortcut snapshot. Dispatcher calls this after
// every mutating command.
func (e *Engine) Invalidate() {
	e.snap.Invalidate()
}

func (e *Engine) applyUndoStep() {
	r := e.tl.UndoRecord(e.tl.Current())
	switch r.Kind {
	case history.Change:
		e.buf.SetLength(r.PreLength)
		fill := r.Span
		if max := r.PreLength - r.Location + 1; fill > max {
			fill = max
		}
		if fill < 0 {
			fill = 0
		}
		for i := 0; i < fill; i++ {
			e.buf.Set(r.Location+i, r.Lines[i])
		}
	case history.Delete:
		e.buf.SetLength(r.PreLength)
		e.buf.ShiftRight(r.Location, r.Span)
		for i := 0; i < r.Span; i++ {
			e.buf.Set(r.Location+i, r.Lines[i])
		}
	case history.Skip:
	}
	e.tl.Retreat()
}

func (e *Engine) applyRedoStep() {
	r := e.tl.RedoRecord(e.tl.Current())
	switch r.Kind {
	case history.Change:
		e.buf.SetLength(r.PostLength)
		for i := 0; i < r.Span; i++ {
			e.buf.Set(r.Location+i, r.Lines[i])
		}
	case history.Delete:
		e.buf.ShiftLeft(r.Location, r.Span)
		e.buf.SetLength(r.PostLength)
	case history.Skip:
	}
	e.tl.Advance()
}
