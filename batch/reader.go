package batch

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Reader reads records from an io.Reader.
type Reader struct {
	r         *bufio.Reader
	line      int
	maxLine   int
	skipBlank bool
}

// ReaderOption configures a Reader.
type ReaderOption func(*Reader)

// WithMaxLine sets the maximum record length in bytes (default: 1 MiB).
func WithMaxLine(max int) ReaderOption {
	return func(r *Reader) {
		r.maxLine = max
	}
}

// WithSkipBlank drops empty lines instead of returning them as records.
func WithSkipBlank() ReaderOption {
	return func(r *Reader) {
		r.skipBlank = true
	}
}

// NewReader creates a new record reader.
func NewReader(r io.Reader, opts ...ReaderOption) *Reader {
	reader := &Reader{
		r:       bufio.NewReader(r),
		maxLine: DefaultMaxLine,
	}
	for _, opt := range opts {
		opt(reader)
	}
	return reader
}

// Next reads and returns the next record.
// Returns io.EOF when no more records are available. A *ParseError leaves
// the reader positioned at the following line.
func (r *Reader) Next() (*Record, error) {
	for {
		text, err := r.r.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("read line %d: %w", r.line+1, err)
		}
		if err == io.EOF && text == "" {
			return nil, io.EOF
		}
		r.line++

		text = strings.TrimSuffix(text, "\n")
		text = strings.TrimSuffix(text, "\r")
		if len(text) > r.maxLine {
			return nil, &ParseError{Reason: fmt.Sprintf("line too long: %d > %d", len(text), r.maxLine), Line: r.line}
		}
		if text == "" && r.skipBlank {
			continue
		}
		return &Record{Line: r.line, Text: text}, nil
	}
}

// ReadAll reads all records until EOF.
func (r *Reader) ReadAll() ([]*Record, error) {
	var records []*Record
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return records, err
		}
		records = append(records, rec)
	}
}
