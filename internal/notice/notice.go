// Package notice carries the short user-facing messages emitted by the spell
// check and translation clients.
package notice

import (
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

type Level int

const (
	Warning Level = iota
	Error
	Success
)

func (l Level) String() string {
	switch l {
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Success:
		return "success"
	default:
		return "unknown"
	}
}

type Notice struct {
	Level   Level
	Message string
}

// Notifier receives notices. Implementations must not block for long; the
// clients call Notify inline.
type Notifier interface {
	Notify(n Notice)
}

func Warn(n Notifier, msg string) {
	n.Notify(Notice{Level: Warning, Message: msg})
}

func Fail(n Notifier, msg string) {
	n.Notify(Notice{Level: Error, Message: msg})
}

func Done(n Notifier, msg string) {
	n.Notify(Notice{Level: Success, Message: msg})
}

// LogNotifier prints notices through a charmbracelet logger.
type LogNotifier struct {
	logger *log.Logger
}

func NewLogNotifier(logger *log.Logger) *LogNotifier {
	if logger == nil {
		logger = log.Default()
	}
	return &LogNotifier{logger: logger}
}

func (l *LogNotifier) Notify(n Notice) {
	switch n.Level {
	case Warning:
		l.logger.Warn(n.Message)
	case Error:
		l.logger.Error(n.Message)
	default:
		l.logger.Info(n.Message)
	}
}

// Recorder keeps every notice it receives, optionally forwarding them.
type Recorder struct {
	mu      sync.Mutex
	notices []Notice
	next    Notifier
}

func NewRecorder(next Notifier) *Recorder {
	return &Recorder{next: next}
}

func (r *Recorder) Notify(n Notice) {
	r.mu.Lock()
	r.notices = append(r.notices, n)
	r.mu.Unlock()

	if r.next != nil {
		r.next.Notify(n)
	}
}

// Notices returns a copy of everything recorded so far.
func (r *Recorder) Notices() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notice, len(r.notices))
	copy(out, r.notices)
	return out
}

// Last returns the most recent notice, if any.
func (r *Recorder) Last() (Notice, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notices) == 0 {
		return Notice{}, false
	}
	return r.notices[len(r.notices)-1], true
}

// Contains reports whether a notice at level mentions substr.
func (r *Recorder) Contains(level Level, substr string) bool {
	for _, n := range r.Notices() {
		if n.Level == level && strings.Contains(n.Message, substr) {
			return true
		}
	}
	return false
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	r.notices = nil
	r.mu.Unlock()
}
