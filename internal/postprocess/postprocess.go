// Package postprocess turns the highlighted HTML returned by the speller into
// plain text.
//
// The speller marks every correction with a coloured <em> or <span> tag and
// encodes line breaks and special characters as HTML. Those have to go before
// the corrected line is shown to the user or sent on for translation.
package postprocess

import (
	"html"
	"regexp"
	"strings"

	strip "github.com/grokify/html-strip-tags-go"
)

// breakRe matches the <br> variants the speller emits.
var breakRe = regexp.MustCompile(`(?i)<br\s*/?>`)

// StripMarkup removes tags, turns <br> into newlines and unescapes entities.
func StripMarkup(text string) string {
	text = breakRe.ReplaceAllString(text, "\n")
	text = strip.StripTags(text)
	return Unescape(text)
}

// Unescape decodes HTML entities, including the double-escaped forms the
// speller sometimes returns (&amp;lt; and friends).
func Unescape(text string) string {
	for i := 0; i < 2 && strings.Contains(text, "&"); i++ {
		text = html.UnescapeString(text)
	}
	return text
}
