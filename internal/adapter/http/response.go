package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"jeju-ads/internal/core/port"
)

type errorBody struct {
	Error errorInfo `json:"error"`
}

type errorInfo struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// the status line is already sent, nothing useful to do on failure
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string, details map[string]string) {
	writeJSON(w, status, errorBody{Error: errorInfo{Code: code, Message: msg, Details: details}})
}

// fail maps use case errors onto HTTP statuses. Unknown errors are logged
// and reported as 500 without leaking their text.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, port.ErrNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "advertisement not found", nil)
	case errors.Is(err, port.ErrBudgetExhausted):
		writeError(w, http.StatusConflict, "BUDGET_EXHAUSTED", err.Error(), nil)
	case errors.Is(err, port.ErrBudgetExceeded):
		writeError(w, http.StatusConflict, "BUDGET_EXCEEDED", err.Error(), nil)
	case errors.Is(err, port.ErrForbidden):
		writeError(w, http.StatusForbidden, "FORBIDDEN", err.Error(), nil)
	case errors.Is(err, port.ErrUploadsDisabled):
		writeError(w, http.StatusServiceUnavailable, "UPLOADS_DISABLED", err.Error(), nil)
	case errors.Is(err, port.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", err.Error(), nil)
	default:
		h.logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "internal error", nil)
	}
}
