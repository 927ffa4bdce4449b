package middleware

import (
	"log/slog"
	"net/http"

	"github.com/taskwell/tasks-api/internal/api/shared"
	"github.com/taskwell/tasks-api/internal/platform/logger"
)

// Recoverer converts a panic in a handler into the JSON 500 envelope so a
// failure on one connection never takes down the process or affects other
// in-flight requests.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					// The connection is gone; nothing sensible to write.
					panic(rec)
				}

				log := logger.FromContextOrDefault(r.Context(), nil)
				log.Error("panic recovered while handling request",
					slog.Any("panic", rec),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path))

				shared.RespondWithError(w, r, http.StatusInternalServerError, "Internal server error")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
