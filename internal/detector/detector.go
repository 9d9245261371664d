// Package detector picks the translation direction between Korean and English
// from the characters present in a text.
package detector

import "unicode"

// Language codes as DeepL expects them.
const (
	Korean  = "KO"
	English = "EN"
)

const (
	hangulFirst = '\uAC00'
	hangulLast  = '\uD7A3'
)

// Pair is a detected source/target language combination.
type Pair struct {
	Source string
	Target string
}

// Detect classifies text as Korean or English.
//
// Any Hangul syllable makes the text Korean, even when Latin letters are
// present as well. Otherwise any ASCII letter makes it English. Text with
// neither (digits, punctuation, other scripts) is unsupported and ok is false.
// Other Latin-script languages are reported as English.
func Detect(text string) (Pair, bool) {
	if HasHangul(text) {
		return Pair{Source: Korean, Target: English}, true
	}
	if HasLatin(text) {
		return Pair{Source: English, Target: Korean}, true
	}
	return Pair{}, false
}

// HasHangul reports whether text contains a precomposed Hangul syllable.
func HasHangul(text string) bool {
	for _, r := range text {
		if r >= hangulFirst && r <= hangulLast {
			return true
		}
	}
	return false
}

// HasLatin reports whether text contains an ASCII letter.
func HasLatin(text string) bool {
	for _, r := range text {
		if l := unicode.ToLower(r); l >= 'a' && l <= 'z' {
			return true
		}
	}
	return false
}
