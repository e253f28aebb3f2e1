package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/memid/pkg/logger"
	"github.com/dmitrymomot/memid/pkg/memorableid"
)

var ErrInvalidCount = errors.New("invalid count")

type errorResponse struct {
	Error string `json:"error"`
}

// statusFor maps generation errors onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, memorableid.ErrInvalidConfig), errors.Is(err, ErrInvalidCount):
		return http.StatusBadRequest
	case errors.Is(err, memorableid.ErrRetryExhausted):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (a *API) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	a.log.Log(r.Context(), level, "request failed", logger.Error(err), slog.Int("status", status))

	msg := err.Error()
	if status >= http.StatusInternalServerError {
		msg = http.StatusText(status)
	}
	respondError(w, status, msg)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorResponse{Error: msg})
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
