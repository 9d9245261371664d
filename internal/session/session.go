// Package session holds the state of one interactive run: the last corrected
// text and the last translation.
package session

import (
	"context"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/valpere/kospell/internal/notice"
)

// Corrector is satisfied by *speller.Client.
type Corrector interface {
	Correct(ctx context.Context, text string) (string, bool)
}

// Translator is satisfied by *translator.Client.
type Translator interface {
	Translate(ctx context.Context, text string) (string, bool)
}

type slot struct {
	text string
	set  bool
}

type Session struct {
	ID string

	corrector  Corrector
	translator Translator
	notifier   notice.Notifier
	logger     *log.Logger

	corrected  slot
	translated slot
}

func New(corrector Corrector, translator Translator, notifier notice.Notifier) *Session {
	id := uuid.New().String()
	return &Session{
		ID:         id,
		corrector:  corrector,
		translator: translator,
		notifier:   notifier,
		logger:     log.Default().With("session", id[:8]),
	}
}

// CheckSpelling corrects input and keeps the result as the session's
// corrected text. When the speller fails the uncorrected input is kept
// instead, so a following translation still has something to work on.
func (s *Session) CheckSpelling(ctx context.Context, input string) {
	if strings.TrimSpace(input) == "" {
		return
	}

	s.logger.Info("checking spelling...")
	text, ok := s.corrector.Correct(ctx, input)
	if text == "" {
		return
	}

	s.corrected = slot{text: text, set: true}
	if ok {
		notice.Done(s.notifier, "spell check complete")
	}
}

// Translate translates the corrected text if there is one, otherwise input.
// A failed translation leaves the previous result in place.
func (s *Session) Translate(ctx context.Context, input string) {
	source := input
	if s.corrected.set {
		source = s.corrected.text
	}
	if strings.TrimSpace(source) == "" {
		return
	}

	s.logger.Info("translating...")
	text, ok := s.translator.Translate(ctx, source)
	if !ok || text == "" {
		return
	}

	s.translated = slot{text: text, set: true}
	notice.Done(s.notifier, "translation complete")
}

func (s *Session) Corrected() (string, bool) {
	return s.corrected.text, s.corrected.set
}

func (s *Session) Translated() (string, bool) {
	return s.translated.text, s.translated.set
}

// Reset forgets both results.
func (s *Session) Reset() {
	s.corrected = slot{}
	s.translated = slot{}
}
