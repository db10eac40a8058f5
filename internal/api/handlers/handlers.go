// Package handlers contains the HTTP handlers for the public API.
// Each handler decodes and validates its request, calls the provider
// adapter, and converts adapter failures into the structured
// {error, details} body the client expects. No failure crashes the
// process; upstream status codes are propagated unchanged when
// available.
package handlers

import (
	"encoding/json"
	"net/http"
)

// errorResponse is the client-visible failure shape: a short
// human-readable error plus a longer hint.
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`

	// UseBrowserTTS tells the client whether its own speech engine can
	// cover the request. Only set on unsupported-language TTS failures.
	UseBrowserTTS *bool `json:"use_browser_tts,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg, details string) {
	writeJSON(w, status, errorResponse{Error: msg, Details: details})
}

// Root serves a small service descriptor on /. The interactive page
// lives in a separate frontend; API clients hitting the bare host get
// something useful instead of a 404.
func Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"service": "kasa",
		"docs":    "/swagger/index.html",
		"health":  "/api/health",
	})
}
