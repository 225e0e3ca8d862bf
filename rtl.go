package androidutil

import "unicode/utf8"

// Hebrew and Arabic blocks.
const (
	rtlFirst = 0x590
	rtlLast  = 0x6ff
)

func isRTLRune(r rune) bool {
	return rtlFirst <= r && r <= rtlLast
}

// IsRTL reports whether text contains a rune in the Hebrew or Arabic
// block, U+0590 through U+06FF. It is a cheap heuristic: other right to left
// scripts and presentation forms are not detected.
// See text.Direction for a bidi class based answer.
func IsRTL(text string) bool {
	if len(text) == 0 {
		return false
	}
	for _, r := range text {
		if isRTLRune(r) {
			return true
		}
	}
	return false
}

// IsRTLBytes is IsRTL for UTF-8 encoded bytes. nil is treated as empty text.
func IsRTLBytes(text []byte) bool {
	for len(text) > 0 {
		r, size := utf8.DecodeRune(text)
		if isRTLRune(r) {
			return true
		}
		text = text[size:]
	}
	return false
}

// IsRTLRunes is IsRTL for runes. nil is treated as empty text.
func IsRTLRunes(text []rune) bool {
	for _, r := range text {
		if isRTLRune(r) {
			return true
		}
	}
	return false
}
