package translation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/oversett/oversett/internal/language"
	"github.com/oversett/oversett/internal/validate"
)

const (
	// DefaultReversoBaseURL is the JSON translation endpoint.
	DefaultReversoBaseURL = "https://api.reverso.net/translate/v1/translation"

	// reversoMaxChars is the character ceiling per request.
	reversoMaxChars = 5000

	// reversoTimeout bounds every request to the endpoint.
	reversoTimeout = 30 * time.Second

	// reversoMaxAttempts bounds the connection-failure retry loop.
	reversoMaxAttempts = 3

	// reversoInitialBackoff is the first retry delay; it doubles after
	// every failed attempt.
	reversoInitialBackoff = time.Second
)

// reversoHeaders mimics the browser client the endpoint expects.
var reversoHeaders = map[string]string{
	"Accept":           "application/json, text/plain, */*",
	"Accept-Language":  "fr,fr-FR;q=0.8,en-US;q=0.5,en;q=0.3",
	"Content-Type":     "application/json",
	"Origin":           "https://www.reverso.net",
	"Referer":          "https://www.reverso.net/",
	"Sec-Fetch-Dest":   "empty",
	"Sec-Fetch-Mode":   "cors",
	"Sec-Fetch-Site":   "same-site",
	"User-Agent":       "Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:109.0) Gecko/20100101 Firefox/118.0",
	"X-Reverso-Origin": "translation.web",
}

// reversoRequest is the JSON payload. A fresh value is built per call;
// nothing request-scoped lives on the adapter.
type reversoRequest struct {
	Format  string         `json:"format"`
	From    string         `json:"from"`
	To      string         `json:"to"`
	Input   string         `json:"input"`
	Options reversoOptions `json:"options"`
}

type reversoOptions struct {
	LanguageDetection bool   `json:"languageDetection"`
	SentenceSplitter  bool   `json:"sentenceSplitter"`
	Origin            string `json:"origin"`
	ContextResults    bool   `json:"contextResults"`
}

type reversoResponse struct {
	Translation []string `json:"translation"`
}

// ReversoOptions configures a Reverso adapter.
type ReversoOptions struct {
	// Source is an ISO 639-1 code from the Reverso allow-list, or
	// "auto". Tags like "EN" or "de-DE" reduce to their primary
	// subtag; full names are not accepted by this backend.
	Source string
	// Target is an ISO 639-1 code from the allow-list.
	Target string
	// BaseURL overrides DefaultReversoBaseURL.
	BaseURL string
	// ProxyURL routes outbound requests through an HTTP proxy.
	ProxyURL string
	// HTTPClient overrides the owned 30s-timeout client.
	HTTPClient *http.Client

	Logger zerolog.Logger
}

// Reverso translates text through the Reverso JSON endpoint. Unlike
// the Google adapter it validates its language pair eagerly against a
// fixed code allow-list, and it retries connection-level failures with
// exponential backoff. HTTP error statuses are never retried.
type Reverso struct {
	baseURL  string
	registry *language.Registry
	source   string
	target   string
	client   *http.Client
	logger   zerolog.Logger

	// sleep is swapped out in tests to observe the backoff schedule.
	sleep func(time.Duration)
}

// NewReverso builds a Reverso adapter, rejecting unsupported codes
// immediately rather than on first call.
func NewReverso(opts ReversoOptions) (*Reverso, error) {
	if strings.TrimSpace(opts.Source) == "" || strings.TrimSpace(opts.Target) == "" {
		return nil, ErrInvalidSourceOrTarget
	}

	registry := language.Reverso()
	source, err := resolveCode(registry, opts.Source)
	if err != nil {
		return nil, err
	}
	target, err := resolveCode(registry, opts.Target)
	if err != nil {
		return nil, err
	}

	baseURL := strings.TrimSpace(opts.BaseURL)
	if baseURL == "" {
		baseURL = DefaultReversoBaseURL
	}

	client := opts.HTTPClient
	if client == nil {
		client, err = newHTTPClient(reversoTimeout, opts.ProxyURL)
		if err != nil {
			return nil, err
		}
	}

	return &Reverso{
		baseURL:  baseURL,
		registry: registry,
		source:   source,
		target:   target,
		client:   client,
		logger:   opts.Logger,
		sleep:    time.Sleep,
	}, nil
}

func (r *Reverso) Name() string {
	return "reverso"
}

func (r *Reverso) Source() string {
	return r.source
}

func (r *Reverso) Target() string {
	return r.target
}

// SupportedLanguages returns the ISO 639-1 allow-list.
func (r *Reverso) SupportedLanguages() []string {
	return r.registry.Codes()
}

// IsLanguageSupported reports whether the adapter accepts the code.
func (r *Reverso) IsLanguageSupported(lang string) bool {
	return r.registry.Contains(lang)
}

// Translate returns the primary translation.
func (r *Reverso) Translate(ctx context.Context, text string) (string, error) {
	candidates, err := r.TranslateAll(ctx, text)
	if err != nil {
		return "", err
	}
	return candidates[0], nil
}

// TranslateAll returns every candidate translation the backend offers,
// primary first.
func (r *Reverso) TranslateAll(ctx context.Context, text string) ([]string, error) {
	if err := validate.Check(text, reversoMaxChars); err != nil {
		return nil, err
	}
	trimmed := strings.TrimSpace(text)
	if r.source == r.target || validate.IsEmpty(trimmed) {
		return []string{trimmed}, nil
	}

	payload := reversoRequest{
		Format: "text",
		From:   r.source,
		To:     r.target,
		Input:  trimmed,
		Options: reversoOptions{
			LanguageDetection: r.source == language.Auto,
			SentenceSplitter:  true,
			Origin:            "translation.web",
			ContextResults:    true,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal translation request: %w", err)
	}

	backoff := reversoInitialBackoff
	for attempt := 1; ; attempt++ {
		candidates, err := r.send(ctx, body, trimmed)
		if err == nil {
			return candidates, nil
		}
		if attempt >= reversoMaxAttempts || !retryableError(err) || ctx.Err() != nil {
			return nil, err
		}

		r.logger.Warn().
			Err(err).
			Int("attempt", attempt).
			Dur("backoff", backoff).
			Msg("reverso request failed, retrying")
		r.sleep(backoff)
		backoff *= 2
	}
}

// TranslateWords translates each word sequentially. The batch is
// all-or-nothing: the first failure aborts and no partial result is
// returned.
func (r *Reverso) TranslateWords(ctx context.Context, words []string) ([]string, error) {
	if len(words) == 0 {
		return nil, ErrEmptyBatch
	}

	translated := make([]string, 0, len(words))
	for i, word := range words {
		result, err := r.Translate(ctx, word)
		if err != nil {
			return nil, fmt.Errorf("translate word %d of %d: %w", i+1, len(words), err)
		}
		translated = append(translated, result)
	}
	return translated, nil
}

// send performs one POST attempt and maps its failure modes.
func (r *Reverso) send(ctx context.Context, body []byte, text string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build translation request: %w", err)
	}
	for key, value := range reversoHeaders {
		req.Header.Set(key, value)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send translation request: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		drainBody(resp.Body)
		return nil, ErrTooManyRequests
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		drainBody(resp.Body)
		return nil, &RequestError{Status: resp.StatusCode}
	}

	raw, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("read translation response: %w", err)
	}

	var parsed reversoResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("decode translation response: %w", err)
	}
	if len(parsed.Translation) == 0 {
		return nil, &NotFoundError{Text: text}
	}
	return parsed.Translation, nil
}

// retryableError is the named retry policy: connection-level transport
// failures, timeouts, and truncated bodies retry; HTTP error statuses
// and everything mapped to the error taxonomy do not. A url.Error from
// the client's own Timeout also matches context.DeadlineExceeded, so
// the transport check has to run first; caller cancellation is kept
// out of the loop by the ctx.Err guard at the retry site.
func retryableError(err error) bool {
	if err == nil {
		return false
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF)
}
