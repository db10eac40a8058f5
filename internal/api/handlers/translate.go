package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/asetenapa/kasa/internal/provider/ghananlp"
)

type TranslateHandler struct {
	svc ghananlp.Translator
}

func NewTranslateHandler(svc ghananlp.Translator) *TranslateHandler {
	return &TranslateHandler{svc: svc}
}

type translateRequest struct {
	Text   string `json:"text"`
	Source string `json:"source"`
	Target string `json:"target"`
}

type translateResponse struct {
	Success        bool   `json:"success"`
	TranslatedText string `json:"translated_text"`
	OriginalText   string `json:"original_text"`
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
	Provider       string `json:"provider"`
}

// Translate forwards a translation request to GhanaNLP.
//
// @Summary     Translate text
// @Description Translates text between English and the supported Ghanaian and Kenyan languages via the GhanaNLP API.
// @Tags        translate
// @Accept      json
// @Produce     json
// @Param       request  body      translateRequest  true  "Text and language pair"
// @Success     200  {object}  translateResponse
// @Failure     400  {object}  errorResponse  "Missing text"
// @Failure     401  {object}  errorResponse  "API key not configured"
// @Failure     500  {object}  errorResponse  "Empty or unexpected result"
// @Failure     503  {object}  errorResponse  "Provider unreachable"
// @Failure     504  {object}  errorResponse  "Provider timed out"
// @Router      /api/translate [post]
func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if req.Source == "" {
		req.Source = "en"
	}
	if req.Target == "" {
		req.Target = "tw"
	}

	result, err := h.svc.Translate(r.Context(), ghananlp.TranslationRequest{
		Text:   req.Text,
		Source: req.Source,
		Target: req.Target,
	})
	if err != nil {
		h.writeTranslateError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, translateResponse{
		Success:        true,
		TranslatedText: result.TranslatedText,
		OriginalText:   result.OriginalText,
		SourceLanguage: result.Source,
		TargetLanguage: result.Target,
		Provider:       result.Provider,
	})
}

func (h *TranslateHandler) writeTranslateError(w http.ResponseWriter, err error) {
	var upstream *ghananlp.UpstreamError
	switch {
	case errors.Is(err, ghananlp.ErrMissingText):
		writeError(w, http.StatusBadRequest, "Missing text", "")
	case errors.Is(err, ghananlp.ErrNotConfigured):
		writeError(w, http.StatusUnauthorized, "API key not configured",
			"Please add your GhanaNLP API key to .env file. Get one at https://translation.ghananlp.org")
	case errors.Is(err, ghananlp.ErrEmptyTranslation):
		writeError(w, http.StatusInternalServerError, "Empty translation received",
			"The API returned an empty translation. Please try again.")
	case errors.Is(err, ghananlp.ErrTimeout):
		writeError(w, http.StatusGatewayTimeout, "Translation request timed out",
			"The server took too long to respond. Please try again.")
	case errors.Is(err, ghananlp.ErrConnection):
		writeError(w, http.StatusServiceUnavailable, "Connection error",
			"Unable to connect to GhanaNLP API. Please check your internet connection.")
	case errors.As(err, &upstream):
		writeError(w, upstream.StatusCode, upstream.Message,
			"Please check your API key and try again.")
	default:
		slog.Error("translate failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error(),
			"An unexpected error occurred. Please try again.")
	}
}
