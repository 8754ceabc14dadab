package batch

import (
	"errors"
	"fmt"
	"io"
)

// Func transforms one record.
type Func func(text string) (string, error)

// Run applies fn to every record of r and writes the results to w.
// Failing records are counted and collected; only I/O errors end the run.
func Run(r *Reader, w *Writer, fn Func) (Stats, error) {
	var stats Stats
	for {
		rec, err := r.Next()
		if err == io.EOF {
			break
		}
		var perr *ParseError
		if errors.As(err, &perr) {
			stats.fail(perr.Line, err)
			if werr := w.WriteResult(&Record{Line: perr.Line}, "", err); werr != nil {
				return stats, fmt.Errorf("write line %d: %w", perr.Line, werr)
			}
			continue
		}
		if err != nil {
			return stats, err
		}

		stats.Records++
		stats.InputBytes += len(rec.Text)
		out, ferr := fn(rec.Text)
		if ferr != nil {
			stats.fail(rec.Line, ferr)
		} else {
			stats.OutputBytes += len(out)
		}
		if err := w.WriteResult(rec, out, ferr); err != nil {
			return stats, fmt.Errorf("write line %d: %w", rec.Line, err)
		}
	}
	return stats, w.Flush()
}

func (s *Stats) fail(line int, err error) {
	s.Failed++
	s.Errors = append(s.Errors, &RecordError{Line: line, Err: err})
}
