package page

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"3tcapital/bluegreen/internal/core/deployment"
	coreinfo "3tcapital/bluegreen/internal/core/info"
	ctxutil "3tcapital/bluegreen/internal/infrastructure/context"
	httperrors "3tcapital/bluegreen/internal/infrastructure/http"
)

//go:embed templates/index.html
var templatesFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

type viewModel struct {
	AppName    string
	CommitID   string
	Revision   string
	Stage      string
	StageLabel string
	ShowBanner bool
}

// Handler renders the landing page describing the running deployment.
type Handler struct {
	view viewModel
	tmpl *template.Template
	log  *slog.Logger
}

// NewHandler creates the landing page handler. The identity never changes after
// startup, so the view model is built once.
func NewHandler(identity deployment.Identity, log *slog.Logger) *Handler {
	return &Handler{
		view: viewModel{
			AppName:    coreinfo.AppName,
			CommitID:   identity.CommitID,
			Revision:   identity.RevisionName,
			Stage:      identity.Stage,
			StageLabel: strings.ToUpper(identity.Stage),
			ShowBanner: identity.IsGreen(),
		},
		tmpl: indexTemplate,
		log:  log,
	}
}

// Index handles GET /.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.tmpl.Execute(&buf, h.view); err != nil {
		var log *slog.Logger
		if h.log != nil {
			log = ctxutil.Logger(r.Context(), h.log)
			log.Error("failed to render index page", "error", err)
		}
		httperrors.WriteError(w, http.StatusInternalServerError, "Internal Server Error", []string{"failed to render page"}, log)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
