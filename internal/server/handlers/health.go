package handlers

import (
	"log/slog"
	"net/http"
)

// HealthHandler serves health check requests
type HealthHandler struct {
	logger  *slog.Logger
	version string
}

// NewHealthHandler creates a new health check handler
func NewHealthHandler(logger *slog.Logger, version string) *HealthHandler {
	return &HealthHandler{
		logger:  logger,
		version: version,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// Health handles GET /api/v1/health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:  "ok",
		Version: h.version,
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}
