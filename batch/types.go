// Package batch runs the codec over newline-delimited records.
//
// Each input line is one record. Results are written one per line, either
// bare or next to their input as tab-separated values. A record that fails
// does not stop the run; it is reported in Stats.
package batch

import (
	"fmt"
	"strings"
)

// Format selects how results are written.
type Format uint8

const (
	FormatPlain Format = 0 // result only; failed records leave an empty line
	FormatTSV   Format = 1 // input<TAB>result, or input<TAB>!error
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatPlain:
		return "plain"
	case FormatTSV:
		return "tsv"
	default:
		return fmt.Sprintf("unknown(%d)", f)
	}
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, bool) {
	switch strings.ToLower(s) {
	case "plain", "":
		return FormatPlain, true
	case "tsv":
		return FormatTSV, true
	default:
		return 0, false
	}
}

// Record is one input line.
type Record struct {
	Line int    // 1-based line number
	Text string // line content without the line terminator
}

// DefaultMaxLine is the default maximum record length (1 MiB).
const DefaultMaxLine = 1 << 20

// ParseError is returned when a line cannot be used as a record.
type ParseError struct {
	Reason string
	Line   int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("batch: %s at line %d", e.Reason, e.Line)
}

// RecordError is a failed record.
type RecordError struct {
	Line int
	Err  error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// Stats summarises a run.
type Stats struct {
	Records     int
	Failed      int
	InputBytes  int
	OutputBytes int
	Errors      []*RecordError
}

// Ratio returns output bytes per input byte, or 0 for an empty run.
func (s Stats) Ratio() float64 {
	if s.InputBytes == 0 {
		return 0
	}
	return float64(s.OutputBytes) / float64(s.InputBytes)
}
