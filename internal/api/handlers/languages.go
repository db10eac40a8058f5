package handlers

import (
	"net/http"

	"github.com/asetenapa/kasa/internal/language"
)

type LanguagesHandler struct{}

func NewLanguagesHandler() *LanguagesHandler {
	return &LanguagesHandler{}
}

type languagesResponse struct {
	Languages []language.Descriptor `json:"languages"`
}

// List returns the static language catalog.
//
// @Summary     List supported languages
// @Tags        languages
// @Produce     json
// @Success     200  {object}  languagesResponse
// @Router      /api/languages [get]
func (h *LanguagesHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, languagesResponse{Languages: language.Catalog()})
}
