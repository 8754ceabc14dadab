package urncode40

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func FuzzRoundTrip(f *testing.F) {
	for _, s := range []string{"ABC", "A&B", "0000000000001", "ABC-123:456789012345678XYZ€é~", "Hello, World!"} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		enc, err := Encode(s)
		if !Validate(s) {
			if err == nil {
				t.Fatalf("Encode(%q) succeeded but Validate is false", s)
			}
			return
		}
		if err != nil {
			t.Fatalf("Encode(%q): %v", s, err)
		}
		got, err := Decode(enc)
		if err != nil {
			t.Fatalf("Decode(%q): %v", enc, err)
		}
		// Case and spaces next to run boundaries are not preserved.
		norm := func(s string) string {
			return strings.ReplaceAll(strings.ToUpper(s), " ", "")
		}
		if norm(got) != norm(asciiUpper(s)) {
			t.Fatalf("round trip %q -> %q -> %q", s, enc, got)
		}
	})
}

func FuzzDecode(f *testing.F) {
	for _, s := range []string{"0694", "FB730462D53C8ABAC0", "FEE282AC", "0641FC260C81", "FB0F"} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		got, err := Decode(s)
		if err != nil {
			return
		}
		if !utf8.ValidString(got) {
			t.Fatalf("Decode(%q) returned invalid UTF-8", s)
		}
	})
}

func asciiUpper(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r - 'a' + 'A'
		}
		return r
	}, s)
}
