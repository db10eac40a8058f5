// Package ghananlp is the adapter for the GhanaNLP translation and
// text-to-speech APIs. It maps client-facing language codes to
// provider codes, forwards requests with per-call-type timeouts, and
// reconciles the provider's heterogeneous response shapes (JSON
// object, bare string, raw audio bytes) into stable results.
package ghananlp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

const (
	defaultTranslateURL  = "https://translation-api.ghananlp.org/v1/translate"
	defaultSynthesizeURL = "https://translation-api.ghananlp.org/tts/v1/synthesize"

	defaultTranslateTimeout  = 15 * time.Second
	defaultSynthesizeTimeout = 30 * time.Second

	// Non-success bodies are read up to this limit when extracting an
	// error message.
	maxErrorBody = 2048
)

// Config holds the GhanaNLP client settings.
type Config struct {
	APIKey        string
	TranslateURL  string // default: the public translation endpoint
	SynthesizeURL string // default: the public TTS endpoint

	TranslateTimeout  time.Duration // default: 15s
	SynthesizeTimeout time.Duration // default: 30s; also bounds the secondary audio fetch
}

// Client talks to the GhanaNLP APIs. The API key is read-only after
// construction; a Client is safe for concurrent use.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// New creates a Client with defaults applied.
func New(cfg Config) *Client {
	if cfg.TranslateURL == "" {
		cfg.TranslateURL = defaultTranslateURL
	}
	if cfg.SynthesizeURL == "" {
		cfg.SynthesizeURL = defaultSynthesizeURL
	}
	if cfg.TranslateTimeout <= 0 {
		cfg.TranslateTimeout = defaultTranslateTimeout
	}
	if cfg.SynthesizeTimeout <= 0 {
		cfg.SynthesizeTimeout = defaultSynthesizeTimeout
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{},
	}
}

func (c *Client) Name() string { return "GhanaNLP" }

// Configured reports whether an API key is present. No network call.
func (c *Client) Configured() bool { return c.cfg.APIKey != "" }

// post sends a JSON payload to the given endpoint with the
// subscription key attached and the per-call timeout applied. The
// caller owns the response body.
func (c *Client) post(ctx context.Context, url string, payload any, timeout time.Duration) (*http.Response, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		cancel()
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Ocp-Apim-Subscription-Key", c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		cancel()
		return nil, classifyTransportError(err)
	}

	// Tie the context's lifetime to the body.
	resp.Body = &cancelBody{ReadCloser: resp.Body, cancel: cancel}
	return resp, nil
}

type cancelBody struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (b *cancelBody) Close() error {
	b.cancel()
	return b.ReadCloser.Close()
}

// classifyTransportError folds a client-side failure into the timeout
// or connection sentinel.
func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrConnection, err)
}

// upstreamError builds an UpstreamError from a non-success response,
// preferring the most specific message available: a structured error
// or message field, then the raw body, then a generic status line.
func upstreamError(resp *http.Response) *UpstreamError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	msg := fmt.Sprintf("API returned status %d", resp.StatusCode)
	var parsed struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && (parsed.Error != "" || parsed.Message != "") {
		if parsed.Error != "" {
			msg = parsed.Error
		} else {
			msg = parsed.Message
		}
	} else if trimmed := bytes.TrimSpace(body); len(trimmed) > 0 {
		msg = string(trimmed)
	}

	return &UpstreamError{StatusCode: resp.StatusCode, Message: msg}
}
