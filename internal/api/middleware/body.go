package middleware

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/taskwell/tasks-api/internal/api/shared"
	"github.com/taskwell/tasks-api/internal/platform/logger"
	"github.com/taskwell/tasks-api/internal/transport"
)

// BodyAssembler drains the request body of mutating requests through a
// per-request transport.BodyAccumulator before the handler runs, so that
// handlers always parse a fully assembled body. Each request owns its own
// accumulator; the assembled buffer replaces r.Body and the accumulator is
// spent once the buffer is taken.
//
// limit caps the accumulated body size (zero means unlimited); chunkSize is
// the read size per delivery.
func BodyAssembler(limit int64, chunkSize int) func(http.Handler) http.Handler {
	if chunkSize <= 0 {
		chunkSize = 4096
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body == nil || (r.Method != http.MethodPost && r.Method != http.MethodPut && r.Method != http.MethodPatch) {
				next.ServeHTTP(w, r)
				return
			}

			body, err := assembleBody(r.Body, limit, chunkSize)
			if err != nil {
				log := logger.FromContextOrDefault(r.Context(), nil)

				if errors.Is(err, transport.ErrBodyTooLarge) {
					log.Warn("request body too large",
						slog.String("path", r.URL.Path),
						slog.Int64("limit_bytes", limit))
					shared.RespondWithError(w, r, http.StatusBadRequest, "Request body too large")
					return
				}

				log.Warn("failed to read request body",
					slog.String("path", r.URL.Path),
					slog.String("error", err.Error()))
				shared.RespondWithError(w, r, http.StatusBadRequest, "Failed to read request body")
				return
			}

			r.Body = io.NopCloser(bytes.NewReader(body))
			r.ContentLength = int64(len(body))

			next.ServeHTTP(w, r)
		})
	}
}

// assembleBody drives one accumulator through its full lifecycle: the first
// feed allocates, each read chunk is appended, and the end-of-stream feed
// completes it. The buffer is taken exactly once and the accumulator is not
// referenced afterwards.
func assembleBody(rc io.ReadCloser, limit int64, chunkSize int) ([]byte, error) {
	defer func() { _ = rc.Close() }()

	acc := transport.NewBodyAccumulator(limit)
	if err := acc.Feed(nil); err != nil {
		return nil, err
	}

	chunk := make([]byte, chunkSize)
	for {
		n, readErr := rc.Read(chunk)
		if n > 0 {
			if err := acc.Feed(chunk[:n]); err != nil {
				return nil, err
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, readErr
		}
	}

	if err := acc.Feed(nil); err != nil {
		return nil, err
	}

	return acc.Take()
}
