// Package diacritics folds accented text down to its base letters so
// that "Café" and "cafe" compare equal.
package diacritics

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// letters that carry no combining mark under NFD and need an explicit mapping
var letterTable = strings.NewReplacer(
	"ß", "ss", "ẞ", "SS",
	"æ", "ae", "Æ", "AE",
	"œ", "oe", "Œ", "OE",
	"ø", "o", "Ø", "O",
	"đ", "d", "Đ", "D",
	"ð", "d", "Ð", "D",
	"ł", "l", "Ł", "L",
	"ħ", "h", "Ħ", "H",
	"ŧ", "t", "Ŧ", "T",
	"ı", "i",
	"ĸ", "k",
	"ŋ", "n", "Ŋ", "N",
	"þ", "th", "Þ", "TH",
)

// Strip removes diacritics from s. ASCII input is returned unchanged.
func Strip(s string) string {
	if isASCII(s) {
		return s
	}
	s = letterTable.Replace(s)
	// transformers keep state between calls, so build a fresh chain each time
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Fold strips diacritics and upper-cases s for case-insensitive matching
func Fold(s string) string {
	return strings.ToUpper(Strip(s))
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
