package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// WriteJSON sets the JSON content type, writes the status code and encodes payload.
func WriteJSON(w http.ResponseWriter, statusCode int, payload any, log *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// The status line is already on the wire, so only log.
		if log != nil {
			log.Error("failed to encode response", "error", err)
		}
	}
}
