package speller

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/valpere/kospell/internal/chunker"
	"github.com/valpere/kospell/internal/notice"
)

// Client corrects whole blocks of text one line at a time.
type Client struct {
	service  Service
	notifier notice.Notifier
}

func NewClient(service Service, notifier notice.Notifier) *Client {
	return &Client{service: service, notifier: notifier}
}

// Correct sends every non-blank line of text to the speller and returns the
// corrected block with the original line layout. ok is false when there was
// nothing to check or the speller failed; text is then returned unchanged.
func (c *Client) Correct(ctx context.Context, text string) (string, bool) {
	if strings.TrimSpace(text) == "" {
		notice.Warn(c.notifier, "nothing to check")
		return text, false
	}

	lines := chunker.Split(text)
	for i, line := range lines {
		if line.Blank() {
			continue
		}

		res, err := c.service.Check(ctx, line.Text)
		if err != nil {
			notice.Fail(c.notifier, fmt.Sprintf("spell check failed: %v (error type: %s)", err, errorKind(err)))
			return text, false
		}

		log.Debug("line checked", "service", c.service.Name(), "line", i+1, "errors", res.ErrorCount, "latency", res.Time)
		lines[i].Text = res.Checked
	}

	return chunker.Join(lines), true
}

func errorKind(err error) string {
	var sErr *Error
	if errors.As(err, &sErr) {
		return string(sErr.Kind)
	}
	return fmt.Sprintf("%T", err)
}
