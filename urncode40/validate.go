package urncode40

import "unicode/utf8"

// Validate reports whether Encode would succeed for text.
func Validate(text string) bool {
	if text == "" {
		return false
	}
	for i, r := range text {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(text[i:]); size == 1 {
				return false
			}
		}
		if r > MaxRune {
			return false
		}
	}
	return true
}
