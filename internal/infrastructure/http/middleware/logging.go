package middleware

import (
	"log/slog"
	"net/http"
	"time"

	ctxutil "3tcapital/bluegreen/internal/infrastructure/context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestLogger returns a middleware that logs every HTTP request once it completes.
// Log levels are determined by status code:
//   - Info: 2xx, 3xx
//   - Warn: 4xx
//   - Error: 5xx
func RequestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			attrs := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"remote_addr", r.RemoteAddr,
				"status", status,
				"duration_ms", float64(time.Since(start).Nanoseconds()) / 1e6,
				"bytes", ww.BytesWritten(),
			}

			if id := ctxutil.GetCorrelationID(r.Context()); id != "" {
				attrs = append(attrs, "correlation_id", id)
			}
			if requestID := chimw.GetReqID(r.Context()); requestID != "" {
				attrs = append(attrs, "request_id", requestID)
			}
			if userAgent := r.Header.Get("User-Agent"); userAgent != "" {
				attrs = append(attrs, "user_agent", userAgent)
			}

			switch {
			case status >= 500:
				log.Error("HTTP request", attrs...)
			case status >= 400:
				log.Warn("HTTP request", attrs...)
			default:
				log.Info("HTTP request", attrs...)
			}
		})
	}
}
