package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/asetenapa/kasa/internal/language"
	"github.com/asetenapa/kasa/internal/provider/ghananlp"
)

type SpeechHandler struct {
	svc ghananlp.Synthesizer
}

func NewSpeechHandler(svc ghananlp.Synthesizer) *SpeechHandler {
	return &SpeechHandler{svc: svc}
}

type speechRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

type speechResponse struct {
	Success     bool   `json:"success"`
	AudioData   string `json:"audio_data"`
	AudioFormat string `json:"audio_format"`
	Language    string `json:"language"`
	SpeakerID   string `json:"speaker_id"`
	Text        string `json:"text"`
}

// Synthesize converts text to speech via GhanaNLP and returns the
// audio as base64 for direct playback in the browser.
//
// @Summary     Text to speech
// @Description Synthesizes speech for Twi, Ewe or Kikuyu text. Audio is returned base64-encoded inside the JSON envelope.
// @Tags        text-to-speech
// @Accept      json
// @Produce     json
// @Param       request  body      speechRequest  true  "Text and language"
// @Success     200  {object}  speechResponse
// @Failure     400  {object}  errorResponse  "Missing text or unsupported language"
// @Failure     401  {object}  errorResponse  "Missing or rejected API key"
// @Failure     403  {object}  errorResponse  "TTS not enabled for this key"
// @Failure     500  {object}  errorResponse  "No audio payload"
// @Failure     503  {object}  errorResponse  "Provider unreachable"
// @Failure     504  {object}  errorResponse  "Provider timed out"
// @Router      /api/text-to-speech [post]
func (h *SpeechHandler) Synthesize(w http.ResponseWriter, r *http.Request) {
	var req speechRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if req.Language == "" {
		req.Language = "tw"
	}

	result, err := h.svc.Synthesize(r.Context(), ghananlp.SpeechRequest{
		Text:     req.Text,
		Language: req.Language,
	})
	if err != nil {
		h.writeSpeechError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, speechResponse{
		Success:     true,
		AudioData:   result.AudioData,
		AudioFormat: result.Format,
		Language:    result.Language,
		SpeakerID:   result.SpeakerID,
		Text:        result.Text,
	})
}

func (h *SpeechHandler) writeSpeechError(w http.ResponseWriter, err error) {
	var unsupported *ghananlp.UnsupportedLanguageError
	var upstream *ghananlp.UpstreamError
	switch {
	case errors.Is(err, ghananlp.ErrMissingText):
		writeError(w, http.StatusBadRequest, "Missing text", "")
	case errors.As(err, &unsupported):
		// Browser-native speech only covers the host language, never
		// the synthesis targets.
		fallback := unsupported.Language == language.Host
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: "TTS not available",
			Details: "Text-to-speech is not available for " + unsupported.Language +
				". Supported languages: Twi, Ewe, Kikuyu.",
			UseBrowserTTS: &fallback,
		})
	case errors.Is(err, ghananlp.ErrNotConfigured):
		writeError(w, http.StatusUnauthorized, "API key not configured",
			"Please add your GhanaNLP API key to .env file")
	case errors.Is(err, ghananlp.ErrAuthentication):
		writeError(w, http.StatusUnauthorized, "Authentication failed",
			"Your GhanaNLP API key is invalid or expired.")
	case errors.Is(err, ghananlp.ErrForbidden):
		writeError(w, http.StatusForbidden, "Access forbidden",
			"TTS access is not enabled for your API key.")
	case errors.Is(err, ghananlp.ErrNoAudio):
		writeError(w, http.StatusInternalServerError, "No audio data in response",
			"The TTS API did not return audio data.")
	case errors.Is(err, ghananlp.ErrTimeout):
		writeError(w, http.StatusGatewayTimeout, "TTS request timed out",
			"The speech generation took too long. Try with shorter text.")
	case errors.Is(err, ghananlp.ErrConnection):
		writeError(w, http.StatusServiceUnavailable, "Connection error",
			"Unable to connect to GhanaNLP TTS API.")
	case errors.As(err, &upstream):
		writeError(w, upstream.StatusCode, upstream.Message,
			"Please check your API key and try again.")
	default:
		slog.Error("tts failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error(),
			"An unexpected error occurred during speech generation")
	}
}
