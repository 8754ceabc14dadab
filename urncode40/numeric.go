package urncode40

import (
	"fmt"
	"math/big"
	"strings"
)

// Long-numeric ("FB") block layout:
//
//	FB <digits-9:4 bits><bytes-4:4 bits> <bytes × big-endian value>
//
// The digit count restores leading zeros the integer cannot carry.
const (
	MinNumericDigits = 9
	MaxNumericDigits = 24

	minNumericBytes = 4
	maxNumericBytes = 19
)

// numericLen returns the encoded width of a digit run using FB, or -1.
func numericLen(run string) int {
	if len(run) < MinNumericDigits || len(run) > MaxNumericDigits {
		return -1
	}
	n, ok := new(big.Int).SetString(run, 10)
	if !ok {
		return -1
	}
	size := numericBytes(n)
	if size > maxNumericBytes {
		return -1
	}
	return 4 + 2*size
}

func numericBytes(n *big.Int) int {
	size := (n.BitLen() + 7) / 8
	if size < minNumericBytes {
		size = minNumericBytes
	}
	return size
}

// EncodeNumeric packs a run of 9 to 24 decimal digits into an FB block.
func EncodeNumeric(run string) (string, error) {
	out, err := appendNumeric(nil, run)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func appendNumeric(dst []byte, run string) ([]byte, error) {
	if len(run) < MinNumericDigits || len(run) > MaxNumericDigits {
		return dst, fmt.Errorf("%w: %d digits, want %d to %d", ErrNumericRange, len(run), MinNumericDigits, MaxNumericDigits)
	}
	for i := 0; i < len(run); i++ {
		if run[i] < '0' || run[i] > '9' {
			return dst, &EncodeError{Offset: i, Rune: rune(run[i]), Err: ErrNumericRange}
		}
	}
	n, _ := new(big.Int).SetString(run, 10)
	size := numericBytes(n)
	if size > maxNumericBytes {
		return dst, fmt.Errorf("%w: value needs %d bytes", ErrNumericRange, size)
	}

	dst = appendByte(dst, MarkerNumeric)
	dst = appendByte(dst, byte(len(run)-MinNumericDigits)<<4|byte(size-minNumericBytes))
	for _, b := range n.FillBytes(make([]byte, size)) {
		dst = appendByte(dst, b)
	}
	return dst, nil
}

// DecodeNumeric decodes a complete FB block, marker included.
func DecodeNumeric(block string) (string, error) {
	if m, ok := markerAt(block, 0); !ok || m != MarkerNumeric {
		return "", malformed(0, "not a numeric block")
	}
	text, width, err := decodeNumeric(block, 0)
	if err != nil {
		return "", err
	}
	if width != len(block) {
		return "", malformed(width, "trailing data after numeric block")
	}
	return text, nil
}

// decodeNumeric decodes the FB block starting at s[off] and returns the
// digits and the block width.
func decodeNumeric(s string, off int) (string, int, error) {
	if len(s)-off < 4 {
		return "", 0, truncated(off, "numeric block header needs 4 hex digits")
	}
	hdr, err := hexByte(s, off+2)
	if err != nil {
		return "", 0, err
	}
	digits := int(hdr>>4) + MinNumericDigits
	size := int(hdr&0x0F) + minNumericBytes
	width := 4 + 2*size
	if len(s)-off < width {
		return "", 0, truncated(off, "numeric block declares %d bytes, %d hex digits remain", size, len(s)-off-4)
	}

	raw := make([]byte, size)
	for i := range raw {
		if raw[i], err = hexByte(s, off+4+2*i); err != nil {
			return "", 0, err
		}
	}
	text := new(big.Int).SetBytes(raw).String()
	if len(text) > digits {
		return "", 0, malformed(off, "numeric value has %d digits, header declares %d", len(text), digits)
	}
	return strings.Repeat("0", digits-len(text)) + text, width, nil
}
