package middleware

import (
	"net/http"

	ctxutil "3tcapital/bluegreen/internal/infrastructure/context"

	"github.com/google/uuid"
)

// Correlation attaches a correlation ID to the request context and echoes it
// on the response. An inbound X-Correlation-ID header is honored, otherwise a
// new UUID is generated. chi's request ID stays a separate identifier.
func Correlation(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(ctxutil.CorrelationIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set(ctxutil.CorrelationIDHeader, id)
		next.ServeHTTP(w, r.WithContext(ctxutil.WithCorrelationID(r.Context(), id)))
	})
}
