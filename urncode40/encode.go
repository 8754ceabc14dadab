package urncode40

import "unicode/utf8"

// Encode packs text into the shortest stream the codec can produce.
//
// Symbols of the alphabet are packed three per standard block. Runs of 9 to
// 24 digits become an FB block when that is no longer than packing them with
// whatever symbols are pending; on a tie FB wins. Characters outside the
// alphabet are escaped one at a time. When the whole input fits the alphabet,
// the mixed result is only used if it is strictly shorter than plain standard
// packing.
func Encode(text string) (string, error) {
	if text == "" {
		return "", ErrEmptyInput
	}
	mixed, err := encodeMixed(text)
	if err != nil {
		return "", err
	}
	if n, ok := standardOnly(text); ok && len(mixed) >= StandardLen(n) {
		return EncodeStandard(text)
	}
	return string(mixed), nil
}

// EncodeStandard packs text using standard blocks only. It fails if any
// character is outside the alphabet.
func EncodeStandard(text string) (string, error) {
	if text == "" {
		return "", ErrEmptyInput
	}
	vals := make([]int, 0, len(text))
	for i, r := range text {
		v, ok := SymbolValue(r)
		if !ok {
			return "", &EncodeError{Offset: i, Rune: r, Err: ErrNotInAlphabet}
		}
		vals = append(vals, v)
	}
	return string(appendStandard(make([]byte, 0, StandardLen(len(vals))), vals)), nil
}

// standardOnly reports whether every character of text is in the alphabet,
// and how many there are.
func standardOnly(text string) (int, bool) {
	n := 0
	for _, r := range text {
		if !InAlphabet(r) {
			return 0, false
		}
		n++
	}
	return n, true
}

// planner accumulates alphabet symbols until an extended block forces them
// out as standard blocks.
type planner struct {
	out     []byte
	pending []int
}

func (p *planner) flush() {
	p.out = appendStandard(p.out, p.pending)
	p.pending = p.pending[:0]
}

// takeNumeric decides between an FB block and standard packing for a digit
// run, comparing both against the symbols already pending.
func (p *planner) takeNumeric(run string) error {
	if fb := numericLen(run); fb > 0 {
		withFB := StandardLen(len(p.pending)) + fb
		withoutFB := StandardLen(len(p.pending) + len(run))
		if withFB <= withoutFB {
			p.flush()
			out, err := appendNumeric(p.out, run)
			if err != nil {
				return err
			}
			p.out = out
			return nil
		}
	}
	for i := 0; i < len(run); i++ {
		p.pending = append(p.pending, int(symbolValues[run[i]]))
	}
	return nil
}

func encodeMixed(text string) ([]byte, error) {
	p := planner{
		out:     make([]byte, 0, StandardLen(len(text))),
		pending: make([]int, 0, 16),
	}
	for i := 0; i < len(text); {
		if c := text[i]; c >= '0' && c <= '9' {
			j := i + 1
			for j < len(text) && text[j] >= '0' && text[j] <= '9' {
				j++
			}
			if err := p.takeNumeric(text[i:j]); err != nil {
				return nil, err
			}
			i = j
			continue
		}

		r, size := utf8.DecodeRuneInString(text[i:])
		if r == utf8.RuneError && size == 1 {
			return nil, &EncodeError{Offset: i, Rune: rune(text[i]), Err: ErrInvalidUTF8}
		}
		if v, ok := SymbolValue(r); ok {
			p.pending = append(p.pending, v)
		} else {
			if r > MaxRune {
				return nil, &EncodeError{Offset: i, Rune: r, Err: ErrUnsupportedRune}
			}
			p.flush()
			out, err := appendSpecial(p.out, r)
			if err != nil {
				return nil, err
			}
			p.out = out
		}
		i += size
	}
	p.flush()
	return p.out, nil
}
