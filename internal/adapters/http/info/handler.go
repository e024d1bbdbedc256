package info

import (
	"log/slog"
	"net/http"

	appinfo "3tcapital/bluegreen/internal/application/info"
	httpresponse "3tcapital/bluegreen/internal/infrastructure/http"
)

// Handler bridges HTTP traffic with the info application service.
type Handler struct {
	service *appinfo.Service
	log     *slog.Logger
}

// NewHandler creates a new info HTTP handler.
func NewHandler(service *appinfo.Service, log *slog.Logger) *Handler {
	return &Handler{service: service, log: log}
}

// GetInfo handles GET /api/info requests.
func (h *Handler) GetInfo(w http.ResponseWriter, r *http.Request) {
	httpresponse.WriteJSON(w, http.StatusOK, h.service.Info(r.Context()), h.log)
}
