package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/oversett/oversett/internal/langdetect"
	"github.com/oversett/oversett/internal/language"
	"github.com/oversett/oversett/internal/translation"
	"github.com/oversett/oversett/internal/validate"
)

type translateRequest struct {
	Text      string `json:"text"`
	Source    string `json:"source,omitempty"`
	Target    string `json:"target,omitempty"`
	Provider  string `json:"provider,omitempty"`
	ReturnAll bool   `json:"return_all,omitempty"`
}

type translateResponse struct {
	Translation string   `json:"translation,omitempty"`
	Candidates  []string `json:"candidates,omitempty"`
	Provider    string   `json:"provider"`
	Source      string   `json:"source"`
	Target      string   `json:"target"`
}

type batchRequest struct {
	Texts    []string `json:"texts"`
	Source   string   `json:"source,omitempty"`
	Target   string   `json:"target,omitempty"`
	Provider string   `json:"provider,omitempty"`
}

type batchResponse struct {
	Translations []string `json:"translations"`
	Provider     string   `json:"provider"`
	Source       string   `json:"source"`
	Target       string   `json:"target"`
}

type detectRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleHealth(c echo.Context) error {
	return success(c, map[string]any{
		"service":          "oversett",
		"default_provider": s.registry.DefaultProvider(),
	})
}

func (s *Server) handleLanguages(c echo.Context) error {
	tr, err := s.newTranslator(c.QueryParam("provider"), "", "")
	if err != nil {
		return s.mapError(c, err)
	}

	if strings.EqualFold(c.QueryParam("as_map"), "true") {
		if mapped, ok := tr.(interface{ Languages() map[string]string }); ok {
			return success(c, map[string]any{
				"provider":  tr.Name(),
				"languages": mapped.Languages(),
			})
		}
	}
	return success(c, map[string]any{
		"provider":  tr.Name(),
		"languages": tr.SupportedLanguages(),
	})
}

func (s *Server) handleTranslate(c echo.Context) error {
	var req translateRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body", nil)
	}
	if validate.IsEmpty(req.Text) {
		return fail(c, http.StatusBadRequest, "text is required", nil)
	}

	tr, err := s.newTranslator(req.Provider, req.Source, req.Target)
	if err != nil {
		return s.mapError(c, err)
	}

	resp := translateResponse{
		Provider: tr.Name(),
		Source:   s.resolvedSource(req.Source, req.Text),
		Target:   s.resolvedTarget(req.Target),
	}

	if req.ReturnAll {
		candidates, ok := tr.(translation.CandidateTranslator)
		if !ok {
			return fail(c, http.StatusBadRequest, "provider does not return candidate translations", nil)
		}
		all, err := candidates.TranslateAll(c.Request().Context(), req.Text)
		if err != nil {
			return s.mapError(c, err)
		}
		resp.Candidates = all
		return success(c, resp)
	}

	translated, err := tr.Translate(c.Request().Context(), req.Text)
	if err != nil {
		return s.mapError(c, err)
	}
	resp.Translation = translated
	return success(c, resp)
}

func (s *Server) handleTranslateBatch(c echo.Context) error {
	var req batchRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body", nil)
	}

	tr, err := s.newTranslator(req.Provider, req.Source, req.Target)
	if err != nil {
		return s.mapError(c, err)
	}

	translations, err := translation.TranslateBatch(c.Request().Context(), tr, req.Texts)
	if err != nil {
		return s.mapError(c, err)
	}

	return success(c, batchResponse{
		Translations: translations,
		Provider:     tr.Name(),
		Source:       s.resolvedSource(req.Source, ""),
		Target:       s.resolvedTarget(req.Target),
	})
}

func (s *Server) handleDetect(c echo.Context) error {
	var req detectRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body", nil)
	}
	if validate.IsEmpty(req.Text) {
		return fail(c, http.StatusBadRequest, "text is required", nil)
	}

	code, confidence := langdetect.DetectWithConfidence(req.Text)
	if code == "" {
		return fail(c, http.StatusUnprocessableEntity, "language could not be detected", nil)
	}
	return success(c, map[string]any{
		"language":   code,
		"confidence": confidence,
	})
}

// newTranslator builds an adapter for one request, falling back to the
// configured defaults for any omitted field.
func (s *Server) newTranslator(provider, source, target string) (translation.Translator, error) {
	if strings.TrimSpace(provider) == "" {
		provider = s.cfg.Provider
	}
	if strings.TrimSpace(source) == "" {
		source = s.cfg.Source
	}
	if strings.TrimSpace(target) == "" {
		target = s.cfg.Target
	}

	return s.registry.New(provider, translation.FactoryOptions{
		Source:   source,
		Target:   target,
		ProxyURL: s.cfg.ProxyURL,
		Timeout:  s.cfg.HTTPTimeout,
		BaseURL:  s.cfg.BaseURLFor(provider),
		Logger:   s.logger,
	})
}

// resolvedSource reports the source code for the response, running the
// detector when the caller asked for auto-detection and gave us text.
func (s *Server) resolvedSource(source, text string) string {
	if strings.TrimSpace(source) == "" {
		source = s.cfg.Source
	}
	if source == language.Auto && strings.TrimSpace(text) != "" {
		if detected := langdetect.DetectISO6391(text); detected != "" {
			return detected
		}
	}
	return source
}

func (s *Server) resolvedTarget(target string) string {
	if strings.TrimSpace(target) == "" {
		return s.cfg.Target
	}
	return target
}

// mapError translates the error taxonomy into HTTP statuses.
func (s *Server) mapError(c echo.Context, err error) error {
	var (
		notSupported *language.NotSupportedError
		notFound     *translation.NotFoundError
		requestErr   *translation.RequestError
		invalidInput *validate.Error
	)

	switch {
	case errors.As(err, &invalidInput),
		errors.As(err, &notSupported),
		errors.Is(err, translation.ErrEmptyBatch),
		errors.Is(err, translation.ErrInvalidSourceOrTarget):
		return fail(c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, translation.ErrTooManyRequests):
		return fail(c, http.StatusTooManyRequests, err.Error(), nil)
	case errors.As(err, &notFound):
		return fail(c, http.StatusNotFound, err.Error(), nil)
	case errors.As(err, &requestErr):
		return fail(c, http.StatusBadGateway, err.Error(), nil)
	default:
		s.logger.Error().Err(err).Msg("translation request failed")
		return internalError(c, "Translation failed")
	}
}
