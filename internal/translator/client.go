package translator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/valpere/kospell/internal/detector"
	"github.com/valpere/kospell/internal/notice"
)

// Client translates between Korean and English, choosing the direction from
// the text itself.
type Client struct {
	service  TranslationService
	notifier notice.Notifier
}

func NewClient(service TranslationService, notifier notice.Notifier) *Client {
	return &Client{service: service, notifier: notifier}
}

// Translate returns the translation of text and true, or "" and false when
// nothing was translated. Every failure is reported through the notifier.
func (c *Client) Translate(ctx context.Context, text string) (string, bool) {
	if strings.TrimSpace(text) == "" {
		notice.Warn(c.notifier, "nothing to translate")
		return "", false
	}

	pair, ok := detector.Detect(text)
	if !ok {
		notice.Warn(c.notifier, "unsupported language, enter Korean or English only")
		return "", false
	}

	if err := c.service.IsAvailable(ctx); err != nil {
		notice.Fail(c.notifier, fmt.Sprintf("translation failed: %v", err))
		return "", false
	}

	res, err := c.service.Translate(ctx, TranslateRequest{
		Text:       text,
		SourceLang: pair.Source,
		TargetLang: pair.Target,
	})
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			notice.Fail(c.notifier, apiErr.Error())
		} else {
			notice.Fail(c.notifier, fmt.Sprintf("translation failed: %v", err))
		}
		return "", false
	}

	log.Debug("text translated", "service", res.ServiceName, "source", pair.Source, "target", pair.Target, "latency", res.Latency)
	return res.TranslatedText, true
}
