package diag

import (
	"io"

	"github.com/tidwall/sjson"
)

// Recorder writes one JSON object per line to an underlying stream.
type Recorder struct {
	w   io.Writer
	seq int
}

// New wraps w for trace output. A nil Recorder is valid and every method
// on it is a no-op, so callers can hold a *Recorder unconditionally and
// only construct one when tracing is enabled.
func New(w io.Writer) *Recorder {
	return &Recorder{w: w}
}

// Event appends a record with the given event name and fields. Map
// iteration order is unspecified, which is fine here: each key is set
// independently and the resulting object's key order has no meaning.
func (r *Recorder) Event(name string, fields map[string]any) error {
	if r == nil {
		return nil
	}
	r.seq++
	line, err := sjson.Set("{}", "seq", r.seq)
	if err != nil {
		return err
	}
	line, err = sjson.Set(line, "event", name)
	if err != nil {
		return err
	}
	for k, v := range fields {
		line, err = sjson.Set(line, k, v)
		if err != nil {
			return err
		}
	}
	_, err = io.WriteString(r.w, line+"\n")
	return err
}
