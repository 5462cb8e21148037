package buffer

import (
	"bytes"
	"testing"
)

func TestNewIsEmpty(t *testing.T) {
	b := New()
	if got := b.Len(); got != 0 {
		t.Errorf("Len() = %d, want 0", got)
	}
}

func TestAppendLineAndGet(t *testing.T) {
	b := New()
	loc := b.AppendLine(Line("alpha\n"))
	if loc != 1 {
		t.Errorf("AppendLine returned %d, want 1", loc)
	}
	if got := string(b.Get(1)); got != "alpha\n" {
		t.Errorf("Get(1) = %q, want %q", got, "alpha\n")
	}
	if got := b.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
}

func TestSetOverwritesSlot(t *testing.T) {
	b := New()
	b.AppendLine(Line("old\n"))
	b.Set(1, Line("new\n"))
	if got := string(b.Get(1)); got != "new\n" {
		t.Errorf("Get(1) = %q, want %q", got, "new\n")
	}
}

func TestGetOutOfRangePanics(t *testing.T) {
	b := New()
	b.AppendLine(Line("a\n"))

	cases := []int{0, -1, 2}
	for _, i := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Get(%d) did not panic", i)
				}
			}()
			b.Get(i)
		}()
	}
}

func TestSetLengthNegativePanics(t *testing.T) {
	b := New()
	defer func() {
		if recover() == nil {
			t.Error("SetLength(-1) did not panic")
		}
	}()
	b.SetLength(-1)
}

func TestSetLengthGrowsAndShrinks(t *testing.T) {
	b := New(WithBlockSize(4))
	b.SetLength(10)
	if got := b.Len(); got != 10 {
		t.Errorf("Len() = %d, want 10", got)
	}
	for i := 1; i <= 10; i++ {
		b.Set(i, Line{byte(i)})
	}

	b.SetLength(3)
	if got := b.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
	for i := 1; i <= 3; i++ {
		if got := b.Get(i)[0]; got != byte(i) {
			t.Errorf("Get(%d) = %d, want %d", i, got, i)
		}
	}
}

func TestWithBlockSizeIgnoresNonPositive(t *testing.T) {
	b := New(WithBlockSize(0))
	if b.blockSize != DefaultBlockSize {
		t.Errorf("blockSize = %d, want default %d", b.blockSize, DefaultBlockSize)
	}
	b2 := New(WithBlockSize(-5))
	if b2.blockSize != DefaultBlockSize {
		t.Errorf("blockSize = %d, want default %d", b2.blockSize, DefaultBlockSize)
	}
}

func TestShiftLeftClosesGap(t *testing.T) {
	b := New()
	for _, s := range []string{"1", "2", "3", "4", "5"} {
		b.AppendLine(Line(s))
	}
	// Remove the 2-line span at location 2 (values "2","3") by shifting
	// the tail left by 2, mirroring Delete's redo/forward application.
	b.ShiftLeft(2, 2)
	b.SetLength(3)

	want := []string{"1", "4", "5"}
	for i, w := range want {
		if got := string(b.Get(i + 1)); got != w {
			t.Errorf("Get(%d) = %q, want %q", i+1, got, w)
		}
	}
}

func TestShiftRightReopensGap(t *testing.T) {
	b := New()
	for _, s := range []string{"1", "4", "5"} {
		b.AppendLine(Line(s))
	}
	// Reverse of TestShiftLeftClosesGap: re-expand to 5 and shift the
	// surviving tail right by 2 to re-open the window at location 2.
	b.SetLength(5)
	b.ShiftRight(2, 2)
	b.Set(2, Line("2"))
	b.Set(3, Line("3"))

	want := []string{"1", "2", "3", "4", "5"}
	for i, w := range want {
		if got := string(b.Get(i + 1)); got != w {
			t.Errorf("Get(%d) = %q, want %q", i+1, got, w)
		}
	}
}

func TestLinesAreByteIdentical(t *testing.T) {
	b := New()
	payload := Line("hello\n")
	b.AppendLine(payload)
	if !bytes.Equal(b.Get(1), payload) {
		t.Error("stored payload diverged from the appended bytes")
	}
}
