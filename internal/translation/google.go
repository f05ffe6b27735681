package translation

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/andybalholm/cascadia"
	"github.com/rs/zerolog"
	"golang.org/x/net/html"

	"github.com/oversett/oversett/internal/language"
	"github.com/oversett/oversett/internal/validate"
)

const (
	// DefaultGoogleBaseURL is the mobile translation page, which
	// returns plain server-rendered HTML.
	DefaultGoogleBaseURL = "https://translate.google.com/m"

	// googleMaxChars is the character ceiling the endpoint accepts in
	// one request.
	googleMaxChars = 5000

	// googlePayloadKey is the query parameter carrying the text.
	googlePayloadKey = "q"

	// The page markup changed at some point; the element carrying the
	// translation moved from div.t0 to div.result-container. Both
	// queries are kept, current markup first.
	googleElementQuery  = "div.t0"
	googleFallbackQuery = "div.result-container"
)

// GoogleOptions configures a Google adapter. The zero value of every
// field has a usable default except Source and Target.
type GoogleOptions struct {
	// Source is a canonical name, a code, or "auto".
	Source string
	// Target is a canonical name or a code.
	Target string
	// BaseURL overrides DefaultGoogleBaseURL.
	BaseURL string
	// ProxyURL routes outbound requests through an HTTP proxy.
	ProxyURL string
	// Timeout bounds each request. Defaults to 30s.
	Timeout time.Duration
	// ExtraParams are appended to the query string verbatim.
	ExtraParams url.Values
	// HTTPClient overrides the owned client; ProxyURL and Timeout are
	// ignored when set.
	HTTPClient *http.Client

	Logger zerolog.Logger
}

// Google translates text by scraping the Google Translate web page.
// Selectors are brittle by nature; parse failures surface as
// NotFoundError rather than being papered over.
type Google struct {
	baseURL  string
	registry *language.Registry
	source   string
	target   string
	extra    url.Values
	primary  cascadia.Selector
	fallback cascadia.Selector
	client   *http.Client
	logger   zerolog.Logger
}

// NewGoogle builds a Google adapter. Source and target are resolved
// through the full Google language registry once, here; names and
// codes are both accepted (lax casing and spacing in names included),
// and "auto" asks the backend to detect the source.
func NewGoogle(opts GoogleOptions) (*Google, error) {
	if strings.TrimSpace(opts.Source) == "" || strings.TrimSpace(opts.Target) == "" {
		return nil, ErrInvalidSourceOrTarget
	}

	registry := language.Google()
	source, err := resolveName(registry, opts.Source)
	if err != nil {
		return nil, err
	}
	target, err := resolveName(registry, opts.Target)
	if err != nil {
		return nil, err
	}

	baseURL := strings.TrimSpace(opts.BaseURL)
	if baseURL == "" {
		baseURL = DefaultGoogleBaseURL
	}

	primary, err := cascadia.Compile(googleElementQuery)
	if err != nil {
		return nil, fmt.Errorf("compile element query: %w", err)
	}
	fallback, err := cascadia.Compile(googleFallbackQuery)
	if err != nil {
		return nil, fmt.Errorf("compile fallback query: %w", err)
	}

	client := opts.HTTPClient
	if client == nil {
		client, err = newHTTPClient(opts.Timeout, opts.ProxyURL)
		if err != nil {
			return nil, err
		}
	}

	return &Google{
		baseURL:  baseURL,
		registry: registry,
		source:   source,
		target:   target,
		extra:    opts.ExtraParams,
		primary:  primary,
		fallback: fallback,
		client:   client,
		logger:   opts.Logger,
	}, nil
}

func (g *Google) Name() string {
	return "google"
}

func (g *Google) Source() string {
	return g.source
}

func (g *Google) Target() string {
	return g.target
}

// SupportedLanguages returns the canonical language names.
func (g *Google) SupportedLanguages() []string {
	return g.registry.Names()
}

// Languages returns the full name→code mapping.
func (g *Google) Languages() map[string]string {
	return g.registry.AsMap()
}

// IsLanguageSupported reports whether the adapter accepts the language
// as a name, a code, or "auto".
func (g *Google) IsLanguageSupported(lang string) bool {
	return g.registry.Contains(lang)
}

// Translate performs one GET against the translation page and extracts
// the translated text from the returned HTML. There is no retry on
// this path; transient failures surface immediately.
func (g *Google) Translate(ctx context.Context, text string) (string, error) {
	if err := validate.Check(text, googleMaxChars); err != nil {
		return "", err
	}
	trimmed := strings.TrimSpace(text)
	if g.source == g.target || validate.IsEmpty(trimmed) {
		return trimmed, nil
	}

	params := url.Values{}
	for key, values := range g.extra {
		for _, v := range values {
			params.Add(key, v)
		}
	}
	params.Set("sl", g.source)
	params.Set("tl", g.target)
	params.Set(googlePayloadKey, trimmed)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("build translation request: %w", err)
	}

	g.logger.Debug().Str("source", g.source).Str("target", g.target).Int("chars", len(trimmed)).Msg("google translate request")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send translation request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", ErrTooManyRequests
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &RequestError{Status: resp.StatusCode}
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parse translation page: %w", err)
	}

	// Deliberately wider than the live page needs: the current markup
	// matches div.result-container, and div.t0 (the older markup) is
	// still probed before reporting the text missing, so mirrors
	// serving either generation keep working.
	element := g.fallback.MatchFirst(doc)
	if element == nil {
		element = g.primary.MatchFirst(doc)
	}
	if element == nil {
		g.logger.Warn().Str("target", g.target).Msg("translation element not found in page")
		return "", &NotFoundError{Text: trimmed}
	}

	return elementText(element), nil
}

// elementText collapses the text content of a node, matching the
// stripped-text extraction the page scrape relies on.
func elementText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			b.WriteString(node.Data)
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}

// newHTTPClient builds the adapter-owned client with an optional
// outbound proxy.
func newHTTPClient(timeout time.Duration, proxyURL string) (*http.Client, error) {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	client := &http.Client{Timeout: timeout}

	if trimmed := strings.TrimSpace(proxyURL); trimmed != "" {
		parsed, err := url.Parse(trimmed)
		if err != nil {
			return nil, fmt.Errorf("parse proxy URL: %w", err)
		}
		client.Transport = &http.Transport{Proxy: http.ProxyURL(parsed)}
	}

	return client, nil
}

// drainBody reads and discards a response body so the connection can be
// reused.
func drainBody(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, io.LimitReader(body, 4096))
	_ = body.Close()
}
