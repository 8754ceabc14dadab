package urncode40

import "strings"

// maxPadding is the most padding a flushed triplet can carry: it always holds
// at least one real symbol.
const maxPadding = 2

// DecodeOptions controls how padding is removed after decoding.
//
// Padding and the space symbol are the same value, so a trailing space in the
// original text cannot be told apart from padding. Both modes resolve that
// ambiguity in favour of padding.
type DecodeOptions struct {
	// PreserveTrailingPadding keeps the spaces that pad a run of standard
	// blocks ahead of an extension block, and only drops the padding of the
	// final block of the stream.
	//
	// By default every run of standard blocks is stripped of trailing spaces,
	// both before each extension block and at the end of the text.
	PreserveTrailingPadding bool
}

// DefaultDecodeOptions returns the options Decode uses.
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{}
}

// Decode decodes an encoded stream with the default options.
func Decode(s string) (string, error) {
	return DecodeWithOptions(s, DefaultDecodeOptions())
}

// DecodeWithOptions decodes an encoded stream. Nothing is returned unless
// every block decodes.
func DecodeWithOptions(s string, opts DecodeOptions) (string, error) {
	blocks, err := Inspect(s)
	if err != nil {
		return "", err
	}
	if opts.PreserveTrailingPadding {
		return joinPreserving(blocks), nil
	}
	return joinTrimmed(blocks), nil
}

// joinTrimmed concatenates blocks, trimming spaces at the end of every run
// of standard blocks.
func joinTrimmed(blocks []Block) string {
	var sb strings.Builder
	var run strings.Builder
	for _, b := range blocks {
		if b.Kind == KindStandard {
			run.WriteString(b.Text)
			continue
		}
		if run.Len() > 0 {
			sb.WriteString(strings.TrimRight(run.String(), " "))
			run.Reset()
		}
		sb.WriteString(b.Text)
	}
	sb.WriteString(strings.TrimRight(run.String(), " "))
	return sb.String()
}

// joinPreserving concatenates blocks verbatim and drops the padding of the
// last block only.
func joinPreserving(blocks []Block) string {
	var sb strings.Builder
	for _, b := range blocks {
		sb.WriteString(b.Text)
	}
	out := sb.String()
	if last := blocks[len(blocks)-1]; last.Kind == KindStandard {
		for i := 0; i < maxPadding && strings.HasSuffix(out, " "); i++ {
			out = out[:len(out)-1]
		}
	}
	return out
}
