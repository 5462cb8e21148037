package history

import (
	"testing"

	"github.com/kvlevich/ched/internal/engine/buffer"
)

func TestShortcutSnapshotAbsentByDefault(t *testing.T) {
	var s ShortcutSnapshot
	if s.Present() {
		t.Error("new ShortcutSnapshot reports Present")
	}
}

func TestShortcutSnapshotCaptureAndRestore(t *testing.T) {
	buf := buffer.New()
	buf.AppendLine(buffer.Line("a\n"))
	buf.AppendLine(buffer.Line("b\n"))

	var s ShortcutSnapshot
	s.Capture(buf, 3)
	if !s.Present() {
		t.Fatal("Capture did not mark the snapshot present")
	}
	if got := s.Origin(); got != 3 {
		t.Errorf("Origin() = %d, want 3", got)
	}

	buf.Set(1, buffer.Line("mutated\n"))
	buf.AppendLine(buffer.Line("c\n"))

	s.Restore(buf)
	if got := buf.Len(); got != 2 {
		t.Errorf("Len() after restore = %d, want 2", got)
	}
	if got := string(buf.Get(1)); got != "a\n" {
		t.Errorf("Get(1) after restore = %q, want %q", got, "a\n")
	}
	if got := string(buf.Get(2)); got != "b\n" {
		t.Errorf("Get(2) after restore = %q, want %q", got, "b\n")
	}
}

func TestShortcutSnapshotInvalidate(t *testing.T) {
	buf := buffer.New()
	var s ShortcutSnapshot
	s.Capture(buf, 1)
	s.Invalidate()
	if s.Present() {
		t.Error("Invalidate did not clear Present")
	}
}

func TestShortcutSnapshotRestoreWithoutCapturePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Restore of absent snapshot did not panic")
		}
	}()
	var s ShortcutSnapshot
	s.Restore(buffer.New())
}
