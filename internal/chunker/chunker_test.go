package chunker

import (
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantTexts []string
		wantBlank []bool
	}{
		{
			name:      "empty string",
			input:     "",
			wantTexts: []string{""},
			wantBlank: []bool{true},
		},
		{
			name:      "single line",
			input:     "hello",
			wantTexts: []string{"hello"},
			wantBlank: []bool{false},
		},
		{
			name:      "blank line in the middle",
			input:     "hello\n\nworld",
			wantTexts: []string{"hello", "", "world"},
			wantBlank: []bool{false, true, false},
		},
		{
			name:      "whitespace-only line",
			input:     "a\n  \t\nb",
			wantTexts: []string{"a", "  \t", "b"},
			wantBlank: []bool{false, true, false},
		},
		{
			name:      "trailing newline",
			input:     "안녕\n",
			wantTexts: []string{"안녕", ""},
			wantBlank: []bool{false, true},
		},
		{
			name:      "crlf endings",
			input:     "one\r\ntwo",
			wantTexts: []string{"one", "two"},
			wantBlank: []bool{false, false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := Split(tt.input)
			if len(lines) != len(tt.wantTexts) {
				t.Fatalf("Split(%q) returned %d lines, want %d", tt.input, len(lines), len(tt.wantTexts))
			}
			for i, l := range lines {
				if l.Text != tt.wantTexts[i] {
					t.Errorf("line %d text = %q, want %q", i, l.Text, tt.wantTexts[i])
				}
				if l.Blank() != tt.wantBlank[i] {
					t.Errorf("line %d blank = %v, want %v", i, l.Blank(), tt.wantBlank[i])
				}
			}
		})
	}
}

func TestJoin_RoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"\n",
		"\n\n\n",
		"hello\n\nworld",
		"첫 줄\r\n\r\n둘째 줄\r\n",
		"  leading and trailing  \n",
	}

	for _, in := range inputs {
		if got := Join(Split(in)); got != in {
			t.Errorf("Join(Split(%q)) = %q", in, got)
		}
	}
}

func TestJoin_ReplacedText(t *testing.T) {
	lines := Split("a\r\n\r\nb")
	lines[0].Text = "A"
	lines[2].Text = "B"

	if got := Join(lines); got != "A\r\n\r\nB" {
		t.Errorf("expected %q, got %q", "A\r\n\r\nB", got)
	}
}
