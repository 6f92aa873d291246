package web

// errors.go provides unified error response handling for the web layer.
//
// Every failure is logged with full technical detail server-side, then
// returned to the client as JSON carrying the verbatim pipeline message
// plus the mapped user-friendly message, action, and support code from
// recon.MapError. The web layer never reinterprets pipeline messages.

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/opsdesk/loareturn/internal/recon"
)

// ErrorResponse is the JSON structure for error responses. Error carries
// the pipeline's message verbatim; Message/Action/Code are the mapped
// user-facing fields.
type ErrorResponse struct {
	Status  string `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
	Code    string `json:"code"`
}

// respondError logs the technical error with request context and writes
// the JSON error body.
func respondError(w http.ResponseWriter, r *http.Request, err error, statusCode int) {
	userMsg := recon.MapError(err)

	slog.Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", statusCode,
		"error", err.Error(),
		"code", userMsg.Code,
		"request_id", middleware.GetReqID(r.Context()),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{
		Status:  "error",
		Error:   err.Error(),
		Message: userMsg.Message,
		Action:  userMsg.Action,
		Code:    userMsg.Code,
	})
}

// writeJSON encodes v as JSON and writes it to w.
// Logs encoding errors since headers are already sent.
func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode error", "error", err)
	}
}
