package notice

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestRecorder(t *testing.T) {
	r := NewRecorder(nil)

	if _, ok := r.Last(); ok {
		t.Error("expected no notice on a fresh recorder")
	}

	Warn(r, "nothing to check")
	Fail(r, "translation API error: 456 - quota exceeded")
	Done(r, "translation complete")

	notices := r.Notices()
	if len(notices) != 3 {
		t.Fatalf("expected 3 notices, got %d", len(notices))
	}
	if notices[0].Level != Warning || notices[1].Level != Error || notices[2].Level != Success {
		t.Errorf("unexpected levels: %v", notices)
	}

	last, ok := r.Last()
	if !ok || last.Message != "translation complete" {
		t.Errorf("expected last notice 'translation complete', got %+v", last)
	}

	if !r.Contains(Error, "456") {
		t.Error("expected error notice containing 456")
	}
	if r.Contains(Warning, "456") {
		t.Error("456 was reported as an error, not a warning")
	}

	r.Reset()
	if len(r.Notices()) != 0 {
		t.Error("expected empty recorder after Reset")
	}
}

func TestRecorder_Forwards(t *testing.T) {
	inner := NewRecorder(nil)
	outer := NewRecorder(inner)

	Warn(outer, "forwarded")

	if !inner.Contains(Warning, "forwarded") {
		t.Error("expected notice to reach the wrapped notifier")
	}
}

func TestLogNotifier(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	n := NewLogNotifier(logger)

	Warn(n, "careful")
	Fail(n, "broken")
	Done(n, "finished")

	out := buf.String()
	for _, want := range []string{"WARN", "careful", "ERR", "broken", "INFO", "finished"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in log output %q", want, out)
		}
	}
}

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{Warning, "warning"},
		{Error, "error"},
		{Success, "success"},
		{Level(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}
