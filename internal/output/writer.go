package output

import "io"

// Placeholder is emitted in place of an out-of-range line.
var Placeholder = []byte(".\n")

// Writer emits printed lines to an underlying stream.
type Writer struct {
	w io.Writer
}

// New wraps w for line output.
func New(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Line writes a stored payload verbatim.
func (w *Writer) Line(payload []byte) error {
	_, err := w.w.Write(payload)
	return err
}

// Missing writes the placeholder for an out-of-range index.
func (w *Writer) Missing() error {
	_, err := w.w.Write(Placeholder)
	return err
}
