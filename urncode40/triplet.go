package urncode40

import (
	"fmt"
	"unicode/utf8"
)

const (
	// BlockWidth is the hex width of a standard block.
	BlockWidth = 4

	// MaxStandardValue is the largest value a standard block can hold ("999").
	// Every marker byte sorts above it.
	MaxStandardValue = 1600*39 + 40*39 + 39 + 1

	padValue = 0 // the space symbol
)

const hexDigits = "0123456789ABCDEF"

// StandardLen returns the encoded width of n symbols packed as standard blocks.
func StandardLen(n int) int {
	return (n + 2) / 3 * BlockWidth
}

// EncodeTriplet packs one to three alphabet symbols into a 4-digit block.
// Short triplets are padded with spaces.
func EncodeTriplet(triplet string) (string, error) {
	n := utf8.RuneCountInString(triplet)
	if n == 0 || n > 3 {
		return "", fmt.Errorf("%w: triplet must hold 1 to 3 symbols, got %d", ErrNotInAlphabet, n)
	}
	vals := make([]int, 0, 3)
	for i, r := range triplet {
		v, ok := SymbolValue(r)
		if !ok {
			return "", &EncodeError{Offset: i, Rune: r, Err: ErrNotInAlphabet}
		}
		vals = append(vals, v)
	}
	return string(appendStandard(nil, vals)), nil
}

// appendStandard packs vals three at a time, padding the final triplet.
func appendStandard(dst []byte, vals []int) []byte {
	for i := 0; i < len(vals); i += 3 {
		v := [3]int{padValue, padValue, padValue}
		copy(v[:], vals[i:])
		dst = appendBlock(dst, 1600*v[0]+40*v[1]+v[2]+1)
	}
	return dst
}

func appendBlock(dst []byte, n int) []byte {
	return append(dst,
		hexDigits[n>>12&0xF],
		hexDigits[n>>8&0xF],
		hexDigits[n>>4&0xF],
		hexDigits[n&0xF])
}

func appendByte(dst []byte, b byte) []byte {
	return append(dst, hexDigits[b>>4], hexDigits[b&0x0F])
}

// DecodeTriplet unpacks a 4-digit standard block into three upper-case
// symbols. Padding is returned as spaces.
func DecodeTriplet(block string) (string, error) {
	if len(block) != BlockWidth {
		return "", malformed(0, "standard block must be %d hex digits, got %d", BlockWidth, len(block))
	}
	sym, err := decodeTriplet(block, 0)
	if err != nil {
		return "", err
	}
	return string(sym[:]), nil
}

// decodeTriplet decodes the standard block at s[off:off+4].
func decodeTriplet(s string, off int) ([3]byte, error) {
	var sym [3]byte
	n := 0
	for i := 0; i < BlockWidth; i++ {
		d := hexDigit(s[off+i])
		if d < 0 {
			return sym, malformed(off+i, "invalid hex digit %q", s[off+i])
		}
		n = n<<4 | d
	}
	n--
	if n < 0 {
		return sym, malformed(off, "standard block value out of range")
	}
	v1, r := n/1600, n%1600
	v2, v3 := r/40, r%40
	for i, v := range [3]int{v1, v2, v3} {
		c, ok := ValueSymbol(v)
		if !ok {
			return sym, malformed(off, "standard block value %04X out of range", n+1)
		}
		sym[i] = c
	}
	return sym, nil
}

func hexDigit(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c - 'a' + 10)
	case c >= 'A' && c <= 'F':
		return int(c - 'A' + 10)
	default:
		return -1
	}
}

// hexByte parses the two hex digits at s[off:off+2].
func hexByte(s string, off int) (byte, error) {
	hi, lo := hexDigit(s[off]), hexDigit(s[off+1])
	if hi < 0 {
		return 0, malformed(off, "invalid hex digit %q", s[off])
	}
	if lo < 0 {
		return 0, malformed(off+1, "invalid hex digit %q", s[off+1])
	}
	return byte(hi<<4 | lo), nil
}
