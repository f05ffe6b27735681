package translation

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/oversett/oversett/internal/language"
)

// flakyTransport fails the first failures round trips with a connection
// error before delegating to the real transport.
type flakyTransport struct {
	failures int
	calls    int
	next     http.RoundTripper
}

func (t *flakyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.calls++
	if t.calls <= t.failures {
		return nil, errors.New("connection reset by peer")
	}
	return t.next.RoundTrip(req)
}

func newReversoForTest(t *testing.T, serverURL string, client *http.Client, source, target string) *Reverso {
	t.Helper()
	tr, err := NewReverso(ReversoOptions{
		Source:     source,
		Target:     target,
		BaseURL:    serverURL,
		HTTPClient: client,
	})
	if err != nil {
		t.Fatalf("new reverso adapter: %v", err)
	}
	return tr
}

func reversoStubHandler(t *testing.T, candidates []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
		}
		if got := r.Header.Get("X-Reverso-Origin"); got != "translation.web" {
			t.Errorf("unexpected origin header: %q", got)
		}

		var payload reversoRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode request payload: %v", err)
		}
		if payload.Format != "text" {
			t.Errorf("unexpected format: %q", payload.Format)
		}
		if !payload.Options.SentenceSplitter || !payload.Options.ContextResults {
			t.Errorf("unexpected options: %+v", payload.Options)
		}

		_ = json.NewEncoder(w).Encode(reversoResponse{Translation: candidates})
	}
}

func TestReversoTranslateReturnsPrimaryCandidate(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(reversoStubHandler(t, []string{"Hallo", "Hallo du"}))
	defer server.Close()

	tr := newReversoForTest(t, server.URL, server.Client(), "en", "de")

	got, err := tr.Translate(context.Background(), "hello")
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if got != "Hallo" {
		t.Fatalf("unexpected translation: %q", got)
	}
}

func TestReversoTranslateAllReturnsEveryCandidate(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(reversoStubHandler(t, []string{"Hallo", "Hallo du"}))
	defer server.Close()

	tr := newReversoForTest(t, server.URL, server.Client(), "en", "de")

	got, err := tr.TranslateAll(context.Background(), "hello")
	if err != nil {
		t.Fatalf("translate all: %v", err)
	}
	if len(got) != 2 || got[0] != "Hallo" || got[1] != "Hallo du" {
		t.Fatalf("unexpected candidates: %v", got)
	}
}

func TestReversoAutoSourceEnablesLanguageDetection(t *testing.T) {
	t.Parallel()

	var detection bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload reversoRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode request payload: %v", err)
		}
		detection = payload.Options.LanguageDetection
		_ = json.NewEncoder(w).Encode(reversoResponse{Translation: []string{"Hallo"}})
	}))
	defer server.Close()

	tr := newReversoForTest(t, server.URL, server.Client(), "auto", "de")
	if _, err := tr.Translate(context.Background(), "hello"); err != nil {
		t.Fatalf("translate: %v", err)
	}
	if !detection {
		t.Fatalf("expected languageDetection to be enabled for auto source")
	}
}

func TestReversoRetriesConnectionFailures(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(reversoStubHandler(t, []string{"Hallo"}))
	defer server.Close()

	transport := &flakyTransport{failures: 2, next: server.Client().Transport}
	tr := newReversoForTest(t, server.URL, &http.Client{Transport: transport}, "en", "de")

	var slept []time.Duration
	tr.sleep = func(d time.Duration) { slept = append(slept, d) }

	got, err := tr.Translate(context.Background(), "hello")
	if err != nil {
		t.Fatalf("translate after retries: %v", err)
	}
	if got != "Hallo" {
		t.Fatalf("unexpected translation: %q", got)
	}
	if transport.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", transport.calls)
	}
	if len(slept) != 2 || slept[0] != time.Second || slept[1] != 2*time.Second {
		t.Fatalf("unexpected backoff schedule: %v", slept)
	}
}

func TestReversoRetriesClientTimeouts(t *testing.T) {
	t.Parallel()

	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		// Drain the body so the server starts its background read and
		// cancels the request context when the client disconnects;
		// otherwise the deferred server.Close deadlocks.
		io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer server.Close()

	client := &http.Client{Timeout: 50 * time.Millisecond}
	tr := newReversoForTest(t, server.URL, client, "en", "de")
	tr.sleep = func(time.Duration) {}

	_, err := tr.Translate(context.Background(), "hello")
	var urlErr *url.Error
	if !errors.As(err, &urlErr) || !urlErr.Timeout() {
		t.Fatalf("expected a transport timeout, got %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != reversoMaxAttempts {
		t.Fatalf("expected %d attempts, got %d", reversoMaxAttempts, got)
	}
}

func TestReversoDoesNotRetryCallerCancellation(t *testing.T) {
	t.Parallel()

	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		// Drain the body so the server starts its background read and
		// cancels the request context when the client disconnects;
		// otherwise the deferred server.Close deadlocks.
		io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer server.Close()

	tr := newReversoForTest(t, server.URL, server.Client(), "en", "de")
	tr.sleep = func(time.Duration) { t.Error("sleep must not be called when the caller gave up") }

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := tr.Translate(ctx, "hello")
	if err == nil {
		t.Fatal("expected error after caller deadline")
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("expected a single attempt, got %d", got)
	}
}

func TestReversoGivesUpAfterMaxAttempts(t *testing.T) {
	t.Parallel()

	transport := &flakyTransport{failures: 10}
	tr := newReversoForTest(t, "http://unreachable.invalid", &http.Client{Transport: transport}, "en", "de")
	tr.sleep = func(time.Duration) {}

	_, err := tr.Translate(context.Background(), "hello")
	if err == nil {
		t.Fatal("expected error after exhausting attempts")
	}
	if transport.calls != reversoMaxAttempts {
		t.Fatalf("expected %d attempts, got %d", reversoMaxAttempts, transport.calls)
	}
}

func TestReversoDoesNotRetryHTTPErrors(t *testing.T) {
	t.Parallel()

	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	tr := newReversoForTest(t, server.URL, server.Client(), "en", "de")
	tr.sleep = func(time.Duration) { t.Error("sleep must not be called for HTTP errors") }

	_, err := tr.Translate(context.Background(), "hello")
	if !errors.Is(err, ErrTooManyRequests) {
		t.Fatalf("expected ErrTooManyRequests, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected a single attempt, got %d", calls)
	}
}

func TestReversoNotFoundOnEmptyCandidates(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(reversoResponse{Translation: nil})
	}))
	defer server.Close()

	tr := newReversoForTest(t, server.URL, server.Client(), "en", "de")

	_, err := tr.Translate(context.Background(), "hello")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestNewReversoResolvesLaxCodes(t *testing.T) {
	t.Parallel()

	tr := newReversoForTest(t, "http://unreachable.invalid", &http.Client{}, "EN", "de-DE")
	if tr.Source() != "en" || tr.Target() != "de" {
		t.Fatalf("unexpected resolved pair: %s→%s", tr.Source(), tr.Target())
	}
}

func TestNewReversoRejectsNamesAndUnknownCodes(t *testing.T) {
	t.Parallel()

	for _, lang := range []string{"french", "klingon"} {
		_, err := NewReverso(ReversoOptions{Source: lang, Target: "en"})
		var notSupported *language.NotSupportedError
		if !errors.As(err, &notSupported) {
			t.Fatalf("language %q: expected NotSupportedError, got %v", lang, err)
		}
	}
}

func TestReversoSameSourceTargetSkipsNetwork(t *testing.T) {
	t.Parallel()

	transport := &flakyTransport{failures: 10}
	tr := newReversoForTest(t, "http://unreachable.invalid", &http.Client{Transport: transport}, "de", "de")

	got, err := tr.TranslateAll(context.Background(), "  hallo  ")
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if len(got) != 1 || got[0] != "hallo" {
		t.Fatalf("unexpected identity result: %v", got)
	}
	if transport.calls != 0 {
		t.Fatalf("expected zero network calls, got %d", transport.calls)
	}
}

func TestReversoOverlongTextFailsBeforeNetwork(t *testing.T) {
	t.Parallel()

	transport := &flakyTransport{failures: 10}
	tr := newReversoForTest(t, "http://unreachable.invalid", &http.Client{Transport: transport}, "en", "de")

	if _, err := tr.Translate(context.Background(), strings.Repeat("a", reversoMaxChars+1)); err == nil {
		t.Fatal("expected validation error")
	}
	if transport.calls != 0 {
		t.Fatalf("expected zero network calls, got %d", transport.calls)
	}
}

func TestReversoTranslateWords(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload reversoRequest
		raw, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(raw, &payload); err != nil {
			t.Errorf("decode request payload: %v", err)
		}
		_ = json.NewEncoder(w).Encode(reversoResponse{Translation: []string{strings.ToUpper(payload.Input)}})
	}))
	defer server.Close()

	tr := newReversoForTest(t, server.URL, server.Client(), "en", "de")

	got, err := tr.TranslateWords(context.Background(), []string{"one", "two"})
	if err != nil {
		t.Fatalf("translate words: %v", err)
	}
	if len(got) != 2 || got[0] != "ONE" || got[1] != "TWO" {
		t.Fatalf("unexpected results: %v", got)
	}

	if _, err := tr.TranslateWords(context.Background(), nil); !errors.Is(err, ErrEmptyBatch) {
		t.Fatalf("expected ErrEmptyBatch, got %v", err)
	}
}
