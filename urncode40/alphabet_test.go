package urncode40

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphabet_Bijective(t *testing.T) {
	require.Equal(t, 40, AlphabetSize)
	seen := make(map[byte]bool)
	for v := 0; v < AlphabetSize; v++ {
		c, ok := ValueSymbol(v)
		require.True(t, ok)
		assert.False(t, seen[c], "symbol %q repeated", c)
		seen[c] = true

		back, ok := SymbolValue(rune(c))
		require.True(t, ok)
		assert.Equal(t, v, back)
	}
}

func TestAlphabet_KnownValues(t *testing.T) {
	for _, tc := range []struct {
		r rune
		v int
	}{
		{' ', 0}, {'A', 1}, {'Z', 26}, {'-', 27}, {'.', 28}, {':', 29}, {'0', 30}, {'9', 39},
	} {
		v, ok := SymbolValue(tc.r)
		require.True(t, ok, "%q", tc.r)
		assert.Equal(t, tc.v, v, "%q", tc.r)
	}
}

func TestAlphabet_CaseFolding(t *testing.T) {
	for c := 'a'; c <= 'z'; c++ {
		lower, ok := SymbolValue(c)
		require.True(t, ok)
		upper, _ := SymbolValue(c - 'a' + 'A')
		assert.Equal(t, upper, lower)
	}
}

func TestAlphabet_Rejects(t *testing.T) {
	for _, r := range []rune{'~', '&', '_', '\t', '/', 'é', 'ſ', 'ı', '€', -1, 0x10000} {
		assert.False(t, InAlphabet(r), "%U", r)
	}
	_, ok := ValueSymbol(40)
	assert.False(t, ok)
	_, ok = ValueSymbol(-1)
	assert.False(t, ok)
}
