package translator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const DefaultDeepLURL = "https://api-free.deepl.com/v2/translate"

type DeepLService struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

func NewDeepLService(cfg ServiceConfig) *DeepLService {
	endpoint := cfg.BaseURL
	if endpoint == "" {
		endpoint = DefaultDeepLURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &DeepLService{
		apiKey:   cfg.APIKey,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

func (s *DeepLService) Name() string {
	return "deepl"
}

func (s *DeepLService) Translate(ctx context.Context, req TranslateRequest) (*ServiceResult, error) {
	start := time.Now()

	if err := s.IsAvailable(ctx); err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("text", req.Text)
	form.Set("source_lang", req.SourceLang)
	form.Set("target_lang", req.TargetLang)
	form.Set("preserve_formatting", "1")

	httpReq, err := http.NewRequestWithContext(ctx, "POST", s.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Authorization", "DeepL-Auth-Key "+s.apiKey)
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var deeplResp struct {
		Translations []struct {
			Text string `json:"text"`
		} `json:"translations"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&deeplResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(deeplResp.Translations) == 0 {
		return nil, fmt.Errorf("empty translation response")
	}

	return &ServiceResult{
		ServiceName:    s.Name(),
		TranslatedText: deeplResp.Translations[0].Text,
		Latency:        time.Since(start),
	}, nil
}

// IsAvailable reports whether a request could be sent at all; it does not
// contact DeepL.
func (s *DeepLService) IsAvailable(ctx context.Context) error {
	if s.apiKey == "" {
		return fmt.Errorf("DeepL API key not configured")
	}
	return nil
}

// Usage is the character quota reported by DeepL for the current billing period.
type Usage struct {
	CharacterCount int64 `json:"character_count"`
	CharacterLimit int64 `json:"character_limit"`
}

// Remaining returns how many characters can still be translated.
func (u Usage) Remaining() int64 {
	if u.CharacterLimit <= u.CharacterCount {
		return 0
	}
	return u.CharacterLimit - u.CharacterCount
}

// Usage queries the /v2/usage endpoint next to the configured translate endpoint.
func (s *DeepLService) Usage(ctx context.Context) (*Usage, error) {
	if err := s.IsAvailable(ctx); err != nil {
		return nil, err
	}

	usageURL, err := url.Parse(s.endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint %q: %w", s.endpoint, err)
	}
	usageURL.Path = strings.TrimSuffix(usageURL.Path, "/translate") + "/usage"

	httpReq, err := http.NewRequestWithContext(ctx, "GET", usageURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "DeepL-Auth-Key "+s.apiKey)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var usage Usage
	if err := json.NewDecoder(resp.Body).Decode(&usage); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &usage, nil
}
