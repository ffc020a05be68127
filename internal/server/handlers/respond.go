package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/BBongSu/AdvanceKeep/pkg/api"
)

// sendJSON writes a JSON response with the given status code
func sendJSON(logger *slog.Logger, w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError writes a JSON error response
func sendError(logger *slog.Logger, w http.ResponseWriter, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	sendJSON(logger, w, resp, statusCode)
}

// bearerToken extracts the token from an "Authorization: Bearer" header.
// Returns empty string when the header is missing or malformed.
func bearerToken(r *http.Request) string {
	const bearerPrefix = "Bearer "
	authHeader := r.Header.Get("Authorization")
	if len(authHeader) <= len(bearerPrefix) || authHeader[:len(bearerPrefix)] != bearerPrefix {
		return ""
	}
	return authHeader[len(bearerPrefix):]
}
