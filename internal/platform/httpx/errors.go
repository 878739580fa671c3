package httpx

import (
	"log/slog"
	"net/http"
)

const internalMessage = "Internal server error"

// Internal logs err and answers with an opaque 500.
func Internal(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Error("request failed",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)
	Error(w, http.StatusInternalServerError, internalMessage)
}
