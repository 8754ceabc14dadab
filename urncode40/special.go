package urncode40

import "unicode/utf8"

// Extension markers. A block starting with one of these bytes can never be a
// standard block because MaxStandardValue is 0xFA00.
const (
	MarkerNumeric byte = 0xFB // long digit run
	MarkerASCII   byte = 0xFC // one ASCII character outside the alphabet
	MarkerUTF8x2  byte = 0xFD // one 2-byte UTF-8 character
	MarkerUTF8x3  byte = 0xFE // one 3-byte UTF-8 character
)

// MaxRune is the largest code point the codec can carry.
const MaxRune = 0xFFFF

// specialLen returns the encoded width of r as a single-character block.
func specialLen(r rune) int {
	switch {
	case r < 0:
		return -1
	case r <= 0x7F:
		return 4
	case r <= 0x7FF:
		return 6
	case r <= MaxRune:
		return 8
	default:
		return -1
	}
}

// EncodeSpecial escapes a single character as an FC, FD or FE block.
func EncodeSpecial(r rune) (string, error) {
	out, err := appendSpecial(nil, r)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func appendSpecial(dst []byte, r rune) ([]byte, error) {
	if r < 0 || r > MaxRune {
		return dst, &EncodeError{Rune: r, Err: ErrUnsupportedRune}
	}
	if r >= 0xD800 && r <= 0xDFFF {
		return dst, &EncodeError{Rune: r, Err: ErrInvalidUTF8}
	}
	if r <= 0x7F {
		dst = appendByte(dst, MarkerASCII)
		return appendByte(dst, byte(r)), nil
	}

	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	if n == 2 {
		dst = appendByte(dst, MarkerUTF8x2)
	} else {
		dst = appendByte(dst, MarkerUTF8x3)
	}
	for _, b := range buf[:n] {
		dst = appendByte(dst, b)
	}
	return dst, nil
}

// DecodeSpecial decodes a complete FC, FD or FE block, marker included.
func DecodeSpecial(block string) (rune, error) {
	if len(block) < 2 {
		return 0, malformed(-1, "special block too short")
	}
	marker, err := hexByte(block, 0)
	if err != nil {
		return 0, err
	}
	r, width, err := decodeSpecial(block, 0, marker)
	if err != nil {
		return 0, err
	}
	if width != len(block) {
		return 0, malformed(width, "trailing data after special block")
	}
	return r, nil
}

// decodeSpecial decodes the block at s[off] introduced by marker.
func decodeSpecial(s string, off int, marker byte) (rune, int, error) {
	var size int
	switch marker {
	case MarkerASCII:
		size = 1
	case MarkerUTF8x2:
		size = 2
	case MarkerUTF8x3:
		size = 3
	default:
		return 0, 0, malformed(off, "not a special marker: %02X", marker)
	}
	width := 2 + 2*size
	if len(s)-off < width {
		return 0, 0, truncated(off, "%02X block needs %d hex digits, %d remain", marker, width, len(s)-off)
	}

	var b [3]byte
	for i := 0; i < size; i++ {
		v, err := hexByte(s, off+2+2*i)
		if err != nil {
			return 0, 0, err
		}
		b[i] = v
	}

	var r rune
	switch marker {
	case MarkerASCII:
		if b[0] > 0x7F {
			return 0, 0, malformed(off+2, "FC payload %02X is not ASCII", b[0])
		}
		r = rune(b[0])
	case MarkerUTF8x2:
		if b[0]&0xE0 != 0xC0 || b[1]&0xC0 != 0x80 {
			return 0, 0, malformed(off+2, "FD payload %02X%02X is not 2-byte UTF-8", b[0], b[1])
		}
		r = rune(b[0]&0x1F)<<6 | rune(b[1]&0x3F)
		if r < 0x80 {
			return 0, 0, malformed(off+2, "FD payload is an overlong encoding of %U", r)
		}
	case MarkerUTF8x3:
		if b[0]&0xF0 != 0xE0 || b[1]&0xC0 != 0x80 || b[2]&0xC0 != 0x80 {
			return 0, 0, malformed(off+2, "FE payload %02X%02X%02X is not 3-byte UTF-8", b[0], b[1], b[2])
		}
		r = rune(b[0]&0x0F)<<12 | rune(b[1]&0x3F)<<6 | rune(b[2]&0x3F)
		if r < 0x800 {
			return 0, 0, malformed(off+2, "FE payload is an overlong encoding of %U", r)
		}
		if r >= 0xD800 && r <= 0xDFFF {
			return 0, 0, malformed(off+2, "FE payload encodes surrogate %U", r)
		}
	}
	return r, width, nil
}
