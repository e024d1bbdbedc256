package middleware

import (
	"net/http"

	"3tcapital/bluegreen/internal/infrastructure/config"

	"github.com/go-chi/cors"
)

// CORS applies the cross-origin policy from configuration.
// With the wildcard origin every request origin is echoed back, which keeps
// credentialed requests working in browsers.
func CORS(cfg config.CORSSettings) func(http.Handler) http.Handler {
	opts := cors.Options{
		AllowedMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"X-Correlation-ID"},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           600,
	}

	if cfg.AllowsAnyOrigin() {
		opts.AllowOriginFunc = func(_ *http.Request, _ string) bool { return true }
	} else {
		opts.AllowedOrigins = cfg.AllowedOrigins
	}

	return cors.Handler(opts)
}
