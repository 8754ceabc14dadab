package urncode40

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeSpecial(t *testing.T) {
	for _, tc := range []struct {
		in   rune
		want string
	}{
		{'~', "FC7E"},
		{'&', "FC26"},
		{'\t', "FC09"},
		{0, "FC00"},
		{0x7F, "FC7F"},
		{0x80, "FDC280"},
		{'é', "FDC3A9"},
		{0x7FF, "FDDFBF"},
		{0x800, "FEE0A080"},
		{'€', "FEE282AC"},
		{0xFFFF, "FEEFBFBF"},
	} {
		got, err := EncodeSpecial(tc.in)
		require.NoError(t, err, "%U", tc.in)
		assert.Equal(t, tc.want, got, "%U", tc.in)
		assert.Len(t, got, specialLen(tc.in))

		back, err := DecodeSpecial(got)
		require.NoError(t, err, got)
		assert.Equal(t, tc.in, back)
	}
}

func TestEncodeSpecial_Unsupported(t *testing.T) {
	for _, r := range []rune{0x10000, 0x1F600, -1} {
		_, err := EncodeSpecial(r)
		assert.ErrorIs(t, err, ErrUnsupportedRune, "%U", r)
		assert.Equal(t, -1, specialLen(r))
	}
	_, err := EncodeSpecial(0xD800)
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestDecodeSpecial_Errors(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want error
	}{
		{"F", ErrMalformed},
		{"FC", ErrTruncated},
		{"FC8", ErrTruncated},
		{"FD", ErrTruncated},
		{"FDC3", ErrTruncated},
		{"FEE282", ErrTruncated},
		{"FC80", ErrMalformed},   // not ASCII
		{"FDE3A9", ErrMalformed}, // lead byte of a 3-byte sequence
		{"FDC329", ErrMalformed}, // missing continuation bit
		{"FDC1BF", ErrMalformed}, // overlong
		{"FEC282AC", ErrMalformed},
		{"FEE2822C", ErrMalformed},
		{"FEE08080", ErrMalformed}, // overlong
		{"FEEDA080", ErrMalformed}, // surrogate
		{"FCZZ", ErrMalformed},
		{"FB00", ErrMalformed},
		{"FC7E00", ErrMalformed},
	} {
		_, err := DecodeSpecial(tc.in)
		assert.ErrorIs(t, err, tc.want, tc.in)
	}
}
