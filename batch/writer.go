package batch

import (
	"bufio"
	"io"
)

// Writer writes results, one line per record.
type Writer struct {
	w      *bufio.Writer
	format Format
}

// NewWriter creates a new result writer.
func NewWriter(w io.Writer, format Format) *Writer {
	return &Writer{w: bufio.NewWriter(w), format: format}
}

// WriteResult writes the result of one record. A non-nil recErr marks the
// record as failed.
func (w *Writer) WriteResult(rec *Record, out string, recErr error) error {
	if w.format == FormatTSV {
		if _, err := w.w.WriteString(rec.Text); err != nil {
			return err
		}
		if err := w.w.WriteByte('\t'); err != nil {
			return err
		}
		if recErr != nil {
			out = "!" + recErr.Error()
		}
	} else if recErr != nil {
		out = ""
	}
	if _, err := w.w.WriteString(out); err != nil {
		return err
	}
	return w.w.WriteByte('\n')
}

// Flush writes any buffered data to the underlying io.Writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}
