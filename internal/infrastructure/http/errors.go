package http

import (
	"log/slog"
	"net/http"
)

// ErrorResponse represents a standardized error response format.
type ErrorResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

// WriteError writes a standardized JSON error response to the HTTP response writer.
func WriteError(w http.ResponseWriter, statusCode int, message string, errors []string, log *slog.Logger) {
	WriteJSON(w, statusCode, ErrorResponse{
		Message: message,
		Errors:  errors,
	}, log)
}

// NotFound answers requests for routes the service does not expose.
func NotFound(w http.ResponseWriter, r *http.Request) {
	WriteError(w, http.StatusNotFound, "Not Found", []string{"no route for " + r.URL.Path}, nil)
}

// MethodNotAllowed answers requests using a verb the route does not accept.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	WriteError(w, http.StatusMethodNotAllowed, "Method Not Allowed", []string{r.Method + " is not supported on " + r.URL.Path}, nil)
}
