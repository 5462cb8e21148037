package dispatcher

import (
	"errors"
	"io"

	"github.com/kvlevich/ched/internal/diag"
	"github.com/kvlevich/ched/internal/engine/buffer"
	"github.com/kvlevich/ched/internal/engine/history"
	"github.com/kvlevich/ched/internal/engine/nav"
	"github.com/kvlevich/ched/internal/input"
	"github.com/kvlevich/ched/internal/output"
)

// Dispatcher reads commands from a Parser and drives the buffer, timeline,
// and navigation engine to realize them.
type Dispatcher struct {
	buf   *buffer.Buffer
	tl    *history.Timeline
	nav   *nav.Engine
	in    *input.Parser
	out   *output.Writer
	trace *diag.Recorder
}

// New wires a Dispatcher over the given collaborators. trace may be nil.
func New(buf *buffer.Buffer, tl *history.Timeline, nav *nav.Engine, in *input.Parser, out *output.Writer, trace *diag.Recorder) *Dispatcher {
	return &Dispatcher{buf: buf, tl: tl, nav: nav, in: in, out: out, trace: trace}
}

// Run processes commands until Quit or end of input.
func (d *Dispatcher) Run() error {
	for {
		cmd, err := d.in.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if err := d.dispatch(cmd); err != nil {
			return err
		}
		if cmd.Kind == input.Quit {
			return nil
		}
	}
}

func (d *Dispatcher) dispatch(cmd input.Command) error {
	switch cmd.Kind {
	case input.Undo:
		d.nav.QueueUndo(cmd.K)
		return d.trace.Event("undo", map[string]any{"k": cmd.K})
	case input.Redo:
		d.nav.QueueRedo(cmd.K)
		return d.trace.Event("redo", map[string]any{"k": cmd.K})
	case input.Quit:
		return d.trace.Event("quit", nil)
	case input.Print:
		d.nav.Flush()
		if err := d.trace.Event("print", map[string]any{"from": cmd.From, "to": cmd.To}); err != nil {
			return err
		}
		return d.print(cmd.From, cmd.To)
	case input.Change:
		d.nav.Flush()
		if err := d.trace.Event("change", map[string]any{"from": cmd.From, "to": cmd.To}); err != nil {
			return err
		}
		return d.change(cmd.From, cmd.To)
	case input.Delete:
		d.nav.Flush()
		if err := d.trace.Event("delete", map[string]any{"from": cmd.From, "to": cmd.To}); err != nil {
			return err
		}
		return d.delete(cmd.From, cmd.To)
	}
	return nil
}

// print implements Print(from, to): §4.5.
func (d *Dispatcher) print(from, to int) error {
	for i := from; i <= to; i++ {
		if i >= 1 && i <= d.buf.Len() {
			if err := d.out.Line(d.buf.Get(i)); err != nil {
				return err
			}
			continue
		}
		if err := d.out.Missing(); err != nil {
			return err
		}
	}
	return nil
}

// change implements Change(from, to): §4.5.
func (d *Dispatcher) change(from, to int) error {
	prevLen := d.buf.Len()
	newLen := prevLen
	if to > newLen {
		newLen = to
	}
	d.buf.SetLength(newLen)

	origin := d.tl.Current()
	state := d.tl.CreateSuccessor()
	span := to - from + 1
	undo := history.NewRecord(history.Change, from, prevLen, newLen, span)
	redo := history.NewRecord(history.Change, from, prevLen, newLen, span)

	for i := from; i <= to; i++ {
		line, err := d.in.ReadContentLine()
		if line == nil {
			if err == nil {
				err = io.ErrUnexpectedEOF
			}
			return err
		}
		if i <= prevLen {
			undo.AppendLine(d.buf.Get(i))
		}
		d.buf.Set(i, line)
		redo.AppendLine(line)
	}

	// redo[origin] and undo[state] are the forward and inverse halves of
	// this same edit: redo[origin] carries the buffer from origin to
	// state, undo[state] carries it back.
	d.tl.SetRedo(origin, redo)
	d.tl.SetUndo(state, undo)
	d.tl.Advance()
	d.nav.Invalidate()
	return nil
}

// delete implements Delete(from, to): §4.5, including the Skip path for a
// range wholly outside the live buffer.
func (d *Dispatcher) delete(from, to int) error {
	length := d.buf.Len()
	origin := d.tl.Current()
	state := d.tl.CreateSuccessor()

	if from > length || to < 1 {
		undo := history.NewRecord(history.Skip, 0, length, length, 0)
		redo := history.NewRecord(history.Skip, 0, length, length, 0)
		d.tl.SetRedo(origin, redo)
		d.tl.SetUndo(state, undo)
		d.tl.Advance()
		d.nav.Invalidate()
		return nil
	}

	last := to
	if last > length {
		last = length
	}
	offset := last - from + 1

	undo := history.NewRecord(history.Delete, from, length, length-offset, offset)
	redo := history.NewRecord(history.Delete, from, length, length-offset, offset)
	for i := from; i <= last; i++ {
		undo.AppendLine(d.buf.Get(i))
	}

	d.buf.ShiftLeft(from, offset)
	d.buf.SetLength(length - offset)

	d.tl.SetRedo(origin, redo)
	d.tl.SetUndo(state, undo)
	d.tl.Advance()
	d.nav.Invalidate()
	return nil
}
