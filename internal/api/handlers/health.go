package handlers

import (
	"net/http"
)

// configChecker reports whether the provider credential is present.
type configChecker interface {
	Configured() bool
}

type HealthHandler struct {
	provider configChecker
}

func NewHealthHandler(provider configChecker) *HealthHandler {
	return &HealthHandler{provider: provider}
}

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Health reports whether the GhanaNLP API key is configured. It never
// calls the provider.
//
// @Summary     Configuration health check
// @Tags        health
// @Produce     json
// @Success     200  {object}  healthResponse
// @Router      /api/health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status:  "configured",
		Message: "Ready to translate!",
	}
	if !h.provider.Configured() {
		resp.Status = "needs_setup"
		resp.Message = "Please configure your GhanaNLP API key in .env file"
	}
	writeJSON(w, http.StatusOK, resp)
}
