package urncode40

import "fmt"

// BlockKind identifies how a block of the encoded stream was packed.
type BlockKind uint8

const (
	KindStandard BlockKind = iota // three alphabet symbols
	KindNumeric                   // FB: 9 to 24 digit run
	KindASCII                     // FC: ASCII outside the alphabet
	KindUTF8x2                    // FD: 2-byte UTF-8 character
	KindUTF8x3                    // FE: 3-byte UTF-8 character
)

// String returns the kind name.
func (k BlockKind) String() string {
	switch k {
	case KindStandard:
		return "standard"
	case KindNumeric:
		return "numeric"
	case KindASCII:
		return "ascii"
	case KindUTF8x2:
		return "utf8-2"
	case KindUTF8x3:
		return "utf8-3"
	default:
		return fmt.Sprintf("unknown(%d)", k)
	}
}

// Marker returns the marker byte that introduces the block, or 0 for
// standard blocks.
func (k BlockKind) Marker() byte {
	switch k {
	case KindNumeric:
		return MarkerNumeric
	case KindASCII:
		return MarkerASCII
	case KindUTF8x2:
		return MarkerUTF8x2
	case KindUTF8x3:
		return MarkerUTF8x3
	default:
		return 0
	}
}

// Block is one unit of an encoded stream.
type Block struct {
	Kind   BlockKind
	Offset int    // position in the encoded stream
	Raw    string // the block's hex digits, marker included
	Text   string // decoded text; standard blocks keep their padding
}

// Inspect splits an encoded stream into blocks, decoding each one.
// It fails on the first block that cannot be decoded.
func Inspect(s string) ([]Block, error) {
	if len(s) < 2 {
		return nil, malformed(-1, "stream too short: %d hex digits", len(s))
	}
	blocks := make([]Block, 0, len(s)/BlockWidth+1)
	for off := 0; off < len(s); {
		b, err := nextBlock(s, off)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
		off += len(b.Raw)
	}
	return blocks, nil
}

// nextBlock decodes the block at s[off]. A marker pair is always an
// extension block; anything else must be a complete standard block.
func nextBlock(s string, off int) (Block, error) {
	if m, ok := markerAt(s, off); ok {
		if m == MarkerNumeric {
			text, width, err := decodeNumeric(s, off)
			if err != nil {
				return Block{}, err
			}
			return Block{Kind: KindNumeric, Offset: off, Raw: s[off : off+width], Text: text}, nil
		}
		r, width, err := decodeSpecial(s, off, m)
		if err != nil {
			return Block{}, err
		}
		kind := KindASCII
		switch m {
		case MarkerUTF8x2:
			kind = KindUTF8x2
		case MarkerUTF8x3:
			kind = KindUTF8x3
		}
		return Block{Kind: kind, Offset: off, Raw: s[off : off+width], Text: string(r)}, nil
	}

	if len(s)-off < BlockWidth {
		return Block{}, malformed(off, "standard block needs %d hex digits, %d remain", BlockWidth, len(s)-off)
	}
	sym, err := decodeTriplet(s, off)
	if err != nil {
		return Block{}, err
	}
	return Block{Kind: KindStandard, Offset: off, Raw: s[off : off+BlockWidth], Text: string(sym[:])}, nil
}

// markerAt reports whether s[off:off+2] is one of FB, FC, FD, FE in
// either case.
func markerAt(s string, off int) (byte, bool) {
	if len(s)-off < 2 || hexDigit(s[off]) != 0xF {
		return 0, false
	}
	lo := hexDigit(s[off+1])
	if lo < 0xB || lo > 0xE {
		return 0, false
	}
	return byte(0xF0 | lo), true
}
