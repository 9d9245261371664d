package speller

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/andybalholm/brotli"
	"github.com/tidwall/gjson"

	"github.com/valpere/kospell/internal/postprocess"
)

const (
	DefaultNaverURL = "https://m.search.naver.com/p/csearch/ocontent/util/SpellerProxy"

	// MaxLineLength is the longest line the Naver speller accepts, in runes.
	MaxLineLength = 500

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	referer   = "https://search.naver.com/"
)

// NaverService talks to the speller proxy behind Naver search.
type NaverService struct {
	baseURL     string
	passportKey string
	client      *http.Client
}

func NewNaverService(baseURL, passportKey string, timeout time.Duration) *NaverService {
	if baseURL == "" {
		baseURL = DefaultNaverURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &NaverService{
		baseURL:     baseURL,
		passportKey: passportKey,
		client:      &http.Client{Timeout: timeout},
	}
}

func (s *NaverService) Name() string {
	return "naver"
}

func (s *NaverService) Check(ctx context.Context, line string) (*Result, error) {
	start := time.Now()

	if utf8.RuneCountInString(line) > MaxLineLength {
		return nil, &Error{
			Kind: KindLimit,
			Err:  fmt.Errorf("line exceeds %d characters", MaxLineLength),
		}
	}

	params := url.Values{}
	params.Set("passportKey", s.passportKey)
	params.Set("color_blindness", "0")
	params.Set("q", line)

	httpReq, err := http.NewRequestWithContext(ctx, "GET", s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, &Error{Kind: KindRequest, Err: fmt.Errorf("failed to create request: %w", err)}
	}

	httpReq.Header.Set("User-Agent", userAgent)
	httpReq.Header.Set("Referer", referer)
	httpReq.Header.Set("Accept-Encoding", "br")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, &Error{Kind: KindRequest, Err: fmt.Errorf("request failed: %w", err)}
	}
	defer resp.Body.Close()

	body, err := readBody(resp)
	if err != nil {
		return nil, &Error{Kind: KindDecode, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{Kind: KindStatus, StatusCode: resp.StatusCode, Body: string(body)}
	}

	res, err := parseResponse(body)
	if err != nil {
		return nil, err
	}

	res.Original = line
	res.Time = time.Since(start)
	return res, nil
}

func readBody(resp *http.Response) ([]byte, error) {
	var r io.Reader = resp.Body
	if strings.EqualFold(resp.Header.Get("Content-Encoding"), "br") {
		r = brotli.NewReader(resp.Body)
	}
	return io.ReadAll(r)
}

// parseResponse accepts both plain JSON and the JSONP form older endpoints
// wrap it in.
func parseResponse(body []byte) (*Result, error) {
	payload := unwrapJSONP(bytes.TrimSpace(body))
	if !gjson.ValidBytes(payload) {
		return nil, &Error{Kind: KindDecode, Err: fmt.Errorf("invalid JSON in speller response")}
	}

	doc := gjson.ParseBytes(payload)

	if msg := doc.Get("message.error"); msg.Exists() && msg.String() != "" {
		return nil, &Error{Kind: KindService, Err: fmt.Errorf("speller rejected the request: %s", msg.String())}
	}

	result := doc.Get("message.result")
	if !result.Exists() {
		return nil, &Error{Kind: KindDecode, Err: fmt.Errorf("speller response has no result")}
	}

	var checked string
	if plain := result.Get("notag_html"); plain.Exists() {
		checked = postprocess.Unescape(plain.String())
	} else if marked := result.Get("html"); marked.Exists() {
		checked = postprocess.StripMarkup(marked.String())
	} else {
		return nil, &Error{Kind: KindDecode, Err: fmt.Errorf("speller result has no corrected text")}
	}

	return &Result{
		Checked:    checked,
		ErrorCount: int(result.Get("errata_count").Int()),
	}, nil
}

func unwrapJSONP(body []byte) []byte {
	if len(body) == 0 || body[0] == '{' {
		return body
	}
	open := bytes.IndexByte(body, '(')
	end := bytes.LastIndexByte(body, ')')
	if open < 0 || end <= open {
		return body
	}
	return body[open+1 : end]
}
