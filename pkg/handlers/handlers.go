// Package handlers provides HTTP response utilities shared by route handlers.
// These stateless functions standardize response formatting across handlers.
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
)

// RespondText writes body with the given status code and Content-Type.
// Content-Length is set from the body so clients see the complete size up front.
func RespondText(w http.ResponseWriter, status int, contentType, body string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)
	w.Write([]byte(body))
}

// RespondError logs err and writes the generic status text for status.
// The error detail stays in the log; clients only see the status text.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, err error, attrs ...any) {
	logger.Error("handler error", append([]any{"error", err, "status", status}, attrs...)...)
	http.Error(w, http.StatusText(status), status)
}
