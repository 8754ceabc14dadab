package urncode40

// alphabet lists the 40 symbols in value order.
const alphabet = " ABCDEFGHIJKLMNOPQRSTUVWXYZ-.:0123456789"

// AlphabetSize is the number of symbols a standard block can carry.
const AlphabetSize = len(alphabet)

// symbolValues maps a byte to its alphabet value, or -1.
// Lower-case ASCII letters share the value of their upper-case form.
var symbolValues [256]int8

func init() {
	for i := range symbolValues {
		symbolValues[i] = -1
	}
	for v := 0; v < AlphabetSize; v++ {
		c := alphabet[v]
		symbolValues[c] = int8(v)
		if c >= 'A' && c <= 'Z' {
			symbolValues[c+'a'-'A'] = int8(v)
		}
	}
}

// SymbolValue returns the alphabet value of r and whether r is in the table.
// Only ASCII letters are case-folded.
func SymbolValue(r rune) (int, bool) {
	if r < 0 || r > 0x7F {
		return 0, false
	}
	v := symbolValues[r]
	if v < 0 {
		return 0, false
	}
	return int(v), true
}

// ValueSymbol returns the upper-case symbol for v.
func ValueSymbol(v int) (byte, bool) {
	if v < 0 || v >= AlphabetSize {
		return 0, false
	}
	return alphabet[v], true
}

// InAlphabet reports whether r can be carried by a standard block.
func InAlphabet(r rune) bool {
	_, ok := SymbolValue(r)
	return ok
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
