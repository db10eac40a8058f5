package ghananlp

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/asetenapa/kasa/internal/language"
)

// SpeechRequest is the input for Synthesize. Language is the
// client-facing code and must be in the TTS-capable set.
type SpeechRequest struct {
	Text     string
	Language string
}

// SpeechResult is the outcome of a successful synthesis. AudioData is
// base64-encoded so it can travel inside a JSON envelope.
type SpeechResult struct {
	AudioData string
	Format    string
	Language  string // client-facing code, as requested
	SpeakerID string
	Text      string
}

type synthesizePayload struct {
	Text      string `json:"text"`
	Language  string `json:"language"`
	SpeakerID string `json:"speaker_id"`
}

// Synthesize forwards a text-to-speech request to GhanaNLP.
//
// The speaker is always the first entry of the language's speaker
// list. The provider answers in one of three shapes, tried in order:
// raw audio bytes, JSON with inline base64 audio, or JSON with a URL
// to fetch the audio from. A 200 matching none of them is ErrNoAudio.
func (c *Client) Synthesize(ctx context.Context, req SpeechRequest) (*SpeechResult, error) {
	if req.Text == "" {
		return nil, ErrMissingText
	}
	speaker, ok := language.DefaultSpeaker(req.Language)
	if !ok {
		return nil, &UnsupportedLanguageError{Language: req.Language}
	}
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	langCode, _ := language.SynthesisCode(req.Language)
	payload := synthesizePayload{
		Text:      req.Text,
		Language:  langCode,
		SpeakerID: speaker,
	}

	slog.Debug("tts request", "language", langCode, "speaker", speaker)

	resp, err := c.post(ctx, c.cfg.SynthesizeURL, payload, c.cfg.SynthesizeTimeout)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to payload reconciliation
	case http.StatusUnauthorized:
		return nil, ErrAuthentication
	case http.StatusForbidden:
		return nil, ErrForbidden
	default:
		return nil, upstreamError(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransportError(err)
	}

	result := &SpeechResult{
		Format:    "audio/wav",
		Language:  req.Language,
		SpeakerID: speaker,
		Text:      req.Text,
	}

	if isBinaryAudio(resp.Header.Get("Content-Type"), body) {
		result.AudioData = encodeAudio(body)
		slog.Debug("tts audio encoded", "bytes", len(body))
		return result, nil
	}

	if data, ok := extractInlineAudio(body); ok {
		result.AudioData = data
		return result, nil
	}

	if url, ok := extractAudioURL(body); ok {
		audio, err := c.fetchAudio(ctx, url)
		if err != nil {
			return nil, err
		}
		result.AudioData = encodeAudio(audio)
		return result, nil
	}

	return nil, ErrNoAudio
}

// fetchAudio performs the secondary bounded fetch when the provider
// returns a redirect URL instead of audio bytes.
func (c *Client) fetchAudio(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.SynthesizeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrNoAudio
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	return audio, nil
}
