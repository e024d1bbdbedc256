package health

import (
	"log/slog"
	"net/http"

	apphealth "3tcapital/bluegreen/internal/application/health"
	httpresponse "3tcapital/bluegreen/internal/infrastructure/http"
)

// Handler bridges HTTP traffic with the health application service.
type Handler struct {
	service *apphealth.Service
	log     *slog.Logger
}

func NewHandler(service *apphealth.Service, log *slog.Logger) *Handler {
	return &Handler{service: service, log: log}
}

// Status handles GET /health. Orchestrators poll it for liveness.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	httpresponse.WriteJSON(w, http.StatusOK, h.service.Status(r.Context()), h.log)
}
