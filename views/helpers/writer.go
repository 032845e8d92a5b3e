package helpers

import (
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Writer accumulates HTML output and carries the first write error, so view
// code stays linear instead of checking every write.
type Writer struct {
	w   io.Writer
	err error
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Raw writes s verbatim. Use only for trusted markup.
func (w *Writer) Raw(s string) *Writer {
	if w.err == nil {
		_, w.err = io.WriteString(w.w, s)
	}
	return w
}

// Rawf writes formatted trusted markup. Dynamic values interpolated here must
// already be escaped.
func (w *Writer) Rawf(format string, args ...any) *Writer {
	if w.err == nil {
		_, w.err = fmt.Fprintf(w.w, format, args...)
	}
	return w
}

// Text writes s HTML-escaped.
func (w *Writer) Text(s string) *Writer {
	if w.err == nil {
		_, w.err = io.WriteString(w.w, templ.EscapeString(s))
	}
	return w
}

func (w *Writer) Err() error {
	return w.err
}
