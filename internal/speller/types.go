package speller

import (
	"context"
	"fmt"
	"time"
)

// Result is the speller's answer for a single line.
type Result struct {
	Original   string        `json:"original"`
	Checked    string        `json:"checked"`
	ErrorCount int           `json:"error_count"`
	Time       time.Duration `json:"time"`
}

// Service checks one line of text.
type Service interface {
	Name() string
	Check(ctx context.Context, line string) (*Result, error)
}

// Kind names the category of a speller failure.
type Kind string

const (
	KindRequest Kind = "RequestError"
	KindStatus  Kind = "StatusError"
	KindDecode  Kind = "DecodeError"
	KindService Kind = "ServiceError"
	KindLimit   Kind = "LimitError"
)

type Error struct {
	Kind       Kind
	StatusCode int
	Body       string
	Err        error
}

func (e *Error) Error() string {
	switch {
	case e.Kind == KindStatus:
		return fmt.Sprintf("speller returned status %d: %s", e.StatusCode, e.Body)
	case e.Err != nil:
		return e.Err.Error()
	default:
		return string(e.Kind)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}
