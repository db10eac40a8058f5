package ghananlp

import (
	"context"
	"io"
	"net/http"

	"github.com/asetenapa/kasa/internal/language"
)

// TranslationRequest is the input for Translate. Source and Target are
// client-facing language codes; mapping to provider codes happens here.
type TranslationRequest struct {
	Text   string
	Source string
	Target string
}

// TranslationResult is the outcome of a successful translation.
type TranslationResult struct {
	TranslatedText string
	OriginalText   string
	Source         string // client-facing code, as requested
	Target         string
	Provider       string
}

// translatePayload is the provider wire format: the text and a single
// composite "<source>-<target>" language-pair token.
type translatePayload struct {
	In   string `json:"in"`
	Lang string `json:"lang"`
}

// Translate forwards a translation request to GhanaNLP.
//
// Precondition failures (empty text, missing API key) return before
// any network call. A 200 response with no usable translation is
// ErrEmptyTranslation, distinct from transport failures; non-2xx
// responses become UpstreamError with the provider status preserved.
func (c *Client) Translate(ctx context.Context, req TranslationRequest) (*TranslationResult, error) {
	if req.Text == "" {
		return nil, ErrMissingText
	}
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	payload := translatePayload{
		In:   req.Text,
		Lang: language.ProviderCode(req.Source) + "-" + language.ProviderCode(req.Target),
	}

	resp, err := c.post(ctx, c.cfg.TranslateURL, payload, c.cfg.TranslateTimeout)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, upstreamError(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransportError(err)
	}

	translated := extractTranslation(body)
	if translated == "" {
		return nil, ErrEmptyTranslation
	}

	return &TranslationResult{
		TranslatedText: translated,
		OriginalText:   req.Text,
		Source:         req.Source,
		Target:         req.Target,
		Provider:       c.Name(),
	}, nil
}
