package resume

import (
	"strings"

	"golang.org/x/text/width"
)

// DisplayWidth returns the number of terminal columns s occupies.
// Control characters take no columns and East Asian wide or fullwidth
// characters take two.
func DisplayWidth(s string) int {
	w := 0
	for _, r := range s {
		switch {
		case isControl(r):
		case isWide(r):
			w += 2
		default:
			w++
		}
	}
	return w
}

// PadRight left-aligns s in a field of the given display width.
// Strings already at least that wide are returned unchanged.
func PadRight(s string, w int) string {
	if n := DisplayWidth(s); n < w {
		return s + strings.Repeat(" ", w-n)
	}
	return s
}

// PadLeft right-aligns s in a field of the given display width.
func PadLeft(s string, w int) string {
	if n := DisplayWidth(s); n < w {
		return strings.Repeat(" ", w-n) + s
	}
	return s
}

func isControl(r rune) bool {
	return r <= 0x1f || (r >= 0x7f && r <= 0x9f)
}

func isWide(r rune) bool {
	if r < 0x1100 {
		return false
	}
	switch {
	case r <= 0x115f,
		r == 0x2329, r == 0x232a,
		r >= 0x2e80 && r <= 0xa4cf && r != 0x303f,
		r >= 0xac00 && r <= 0xd7a3,
		r >= 0xf900 && r <= 0xfaff,
		r >= 0xfe10 && r <= 0xfe19,
		r >= 0xfe30 && r <= 0xfe6f,
		r >= 0xff00 && r <= 0xff60,
		r >= 0xffe0 && r <= 0xffe6:
		return true
	}
	// Supplementary ideographs and other wide blocks outside the table above.
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return true
	}
	return false
}
