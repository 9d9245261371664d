// Package chunker splits text into lines for per-line processing and joins
// them back without disturbing the original layout.
package chunker

import "strings"

// Line is one newline-delimited piece of text. A carriage return that
// preceded the newline is kept in Ending so CRLF input round-trips.
type Line struct {
	Text   string
	Ending string
}

// Blank reports whether the line has no visible content.
func (l Line) Blank() bool {
	return strings.TrimSpace(l.Text) == ""
}

// String returns the line as it appeared in the input, minus the newline.
func (l Line) String() string {
	return l.Text + l.Ending
}

// Split breaks text on "\n". The result always has strings.Count(text, "\n")+1
// elements, so an empty string yields a single blank line and a trailing
// newline yields a trailing blank line.
func Split(text string) []Line {
	parts := strings.Split(text, "\n")
	lines := make([]Line, len(parts))
	for i, p := range parts {
		if strings.HasSuffix(p, "\r") {
			lines[i] = Line{Text: p[:len(p)-1], Ending: "\r"}
			continue
		}
		lines[i] = Line{Text: p}
	}
	return lines
}

// Join is the inverse of Split.
func Join(lines []Line) string {
	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(l.String())
	}
	return b.String()
}
